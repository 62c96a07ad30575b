// Package debug gates tracing output for the manipulation engine.
// Flags are read once from the environment at startup and take the
// usual boolean spellings: ELEMENTARY_DEBUG_OP traces operation and
// condition dispatch, ELEMENTARY_DEBUG_LOCATE traces locator walks,
// ELEMENTARY_DEBUG_EVAL traces directive resolution and
// ELEMENTARY_DEBUG_DIFF traces tree diffing.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Op     bool
	Locate bool
	Eval   bool
	Diff   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Op = boolEnv("ELEMENTARY_DEBUG_OP")
	d.Locate = boolEnv("ELEMENTARY_DEBUG_LOCATE")
	d.Eval = boolEnv("ELEMENTARY_DEBUG_EVAL")
	d.Diff = boolEnv("ELEMENTARY_DEBUG_DIFF")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Op() bool {
	return d.Op
}
func Locate() bool {
	return d.Locate
}
func Eval() bool {
	return d.Eval
}
func Diff() bool {
	return d.Diff
}
