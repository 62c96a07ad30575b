package treeop

import (
	"encoding/json"

	jsonpatch "github.com/evanphx/json-patch/v5"

	"github.com/interlayer-space/elementary-go/debug"
	"github.com/interlayer-space/elementary-go/node"
	"github.com/interlayer-space/elementary-go/translate"
)

// JSONPatch builds an operation applying an RFC 6902 patch document.
// The patch decodes once, up front; a malformed document fails here
// rather than at apply time. Applying routes the cursor node through
// the any-tree translation, so attributes do not survive and a node
// the translation rejects is left unchanged, as is one the patch
// itself refuses.
func JSONPatch(patch []byte) (Operation, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, err
	}
	return jsonPatchOp{ops: ops}, nil
}

type jsonPatchOp struct {
	ops jsonpatch.Patch
}

func (o jsonPatchOp) Apply(ctx Context) node.Node {
	if debug.Op() {
		debug.Logf("json-patch op at %s\n", ctx.Location)
	}
	tr := translate.AnyTree{}
	v, err := tr.Encode(ctx.Node)
	if err != nil {
		return o.failed(ctx, err)
	}
	d, err := json.Marshal(v)
	if err != nil {
		return o.failed(ctx, err)
	}
	out, err := o.ops.Apply(d)
	if err != nil {
		return o.failed(ctx, err)
	}
	var back any
	if err := json.Unmarshal(out, &back); err != nil {
		return o.failed(ctx, err)
	}
	n, err := tr.Decode(back)
	if err != nil {
		return o.failed(ctx, err)
	}
	return n
}

func (o jsonPatchOp) failed(ctx Context, err error) node.Node {
	if debug.Op() {
		debug.Logf("json-patch op left %s unchanged: %v\n", ctx.Location, err)
	}
	return ctx.Node
}
