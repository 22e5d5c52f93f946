package contract

import "context"

// Assistant answers one catalog question per call. Implementations keep no
// conversation state between calls.
type Assistant interface {
	Answer(ctx context.Context, query string) (string, error)
}

type FunctionGateway interface {
	Execute(ctx context.Context, call FunctionCall) (ToolResult, error)
}
