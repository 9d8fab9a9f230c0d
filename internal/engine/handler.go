package engine

import (
	"context"

	"github.com/Cyclone1070/gitfs/internal/tool"
	"github.com/mitchellh/mapstructure"
)

// handler adapts one typed tool to the untyped Call surface.
type handler interface {
	Declaration() tool.Declaration
	Execute(ctx context.Context, args map[string]any) (any, error)
}

type typedHandler[Req, Resp any] struct {
	decl tool.Declaration
	run  func(context.Context, *Req) (*Resp, error)
}

func newHandler[Req, Resp any](decl tool.Declaration, run func(context.Context, *Req) (*Resp, error)) *typedHandler[Req, Resp] {
	return &typedHandler[Req, Resp]{decl: decl, run: run}
}

func (h *typedHandler[Req, Resp]) Declaration() tool.Declaration {
	return h.decl
}

// Execute decodes args into the request type and runs the tool.
func (h *typedHandler[Req, Resp]) Execute(ctx context.Context, args map[string]any) (any, error) {
	req := new(Req)
	if err := decodeArgs(args, req); err != nil {
		return nil, &ArgumentError{Tool: h.decl.Name, Cause: err}
	}
	resp, err := h.run(ctx, req)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// decodeArgs maps JSON-style arguments onto a request struct. Field names follow the json
// tags, numbers and booleans are weakly typed and unknown keys are rejected.
func decodeArgs(args map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Squash:           true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	if args == nil {
		args = map[string]any{}
	}
	return dec.Decode(args)
}
