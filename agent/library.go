package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Library answers the function calls of a model.
type Library func(context.Context, *genai.FunctionCall) *genai.FunctionResponse

// Function is a Go function exposed to a model.
type Function interface {
	// Declaration describes the function to the model.
	Declaration() *genai.FunctionDeclaration
	// Call runs the function with the model's arguments.
	Call(ctx context.Context, args map[string]any) (map[string]any, error)
}

// NewLibrary dispatches calls to functions by declared name. Errors are
// reported to the model in the "error" key, never to the caller.
func NewLibrary(functions ...Function) Library {
	return func(ctx context.Context, call *genai.FunctionCall) *genai.FunctionResponse {
		resp := &genai.FunctionResponse{ID: call.ID, Name: call.Name}
		for _, f := range functions {
			if f.Declaration().Name != call.Name {
				continue
			}
			out, err := f.Call(ctx, call.Args)
			if err != nil {
				resp.Response = map[string]any{"error": err.Error()}
				return resp
			}
			resp.Response = map[string]any{"output": out}
			return resp
		}
		resp.Response = map[string]any{"error": fmt.Sprintf("unknown function %s", call.Name)}
		return resp
	}
}

// NewDeclarations lists the declarations of functions.
func NewDeclarations(functions ...Function) []*genai.FunctionDeclaration {
	res := make([]*genai.FunctionDeclaration, 0, len(functions))
	for _, f := range functions {
		res = append(res, f.Declaration())
	}
	return res
}

// number reads a numeric argument. JSON numbers arrive as float64 but tests
// and hand-built calls may pass ints.
func number(args map[string]any, name string) (float64, error) {
	switch v := args[name].(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case nil:
		return 0, fmt.Errorf("missing argument %q", name)
	default:
		return 0, fmt.Errorf("argument %q: invalid type got %T, expected a number", name, v)
	}
}
