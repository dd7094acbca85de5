package manifest

import (
	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cuejson "cuelang.org/go/encoding/json"
	"github.com/tidwall/jsonc"

	oerrors "github.com/litebms/bms/internal/errors"
)

// DefaultFilename names the manifest in positions reported by the decoder.
const DefaultFilename = "config.json"

// DecodeOptions controls manifest decoding.
type DecodeOptions struct {
	// Filename is used in decode error positions. Default: config.json.
	Filename string

	// AllowComments strips comments and trailing commas before decoding.
	AllowComments bool
}

// Decode parses manifest text into a tree rooted at a JSON object.
//
// Every call evaluates in its own CUE context, so the returned tree shares
// nothing with other calls and is dropped as a whole with its last Node.
func Decode(data []byte, opts DecodeOptions) (Node, error) {
	name := opts.Filename
	if name == "" {
		name = DefaultFilename
	}

	if opts.AllowComments {
		data = jsonc.ToJSON(data)
	}

	expr, err := cuejson.Extract(name, data)
	if err != nil {
		return Node{}, oerrors.WrapCode(oerrors.CodeParseProfile, "", "manifest is not valid JSON", err)
	}

	ctx := cuecontext.New()
	v := ctx.BuildExpr(expr)
	if err := v.Err(); err != nil {
		return Node{}, oerrors.WrapCode(oerrors.CodeParseProfile, "", "evaluating manifest", err)
	}

	if v.Kind() != cue.StructKind {
		return Node{}, oerrors.New(oerrors.CodeParseProfile, "", "manifest root is not an object")
	}

	return Node{v: v}, nil
}
