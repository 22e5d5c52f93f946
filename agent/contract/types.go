package contract

// FunctionCall is a model-issued request to run one registered function.
type FunctionCall struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

type ToolRequest struct {
	Tool string         `json:"tool"`
	Args map[string]any `json:"args,omitempty"`
}

type ToolResult struct {
	Tool   string `json:"tool"`
	Result any    `json:"result,omitempty"`
}

// NotFound is the fixed-shape result of a lookup with no match. It is fed back
// to the model as ordinary content, not treated as an error.
type NotFound struct {
	Message string `json:"message"`
}
