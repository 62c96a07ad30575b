package debug

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/interlayer-space/elementary-go/node"
)

var logColor = color.New(color.Faint)

func init() {
	fd := os.Stderr.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		logColor.DisableColor()
	}
}

// Logf writes a trace line to stderr, dimmed on terminals. Node
// arguments render through node.Dump, plain maps and slices through
// indented JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case node.Node:
			args[i] = node.Dump(x)
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(x, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", x)
				continue
			}
			args[i] = string(d)
		}
	}
	logColor.Fprintf(os.Stderr, msg, args...)
}
