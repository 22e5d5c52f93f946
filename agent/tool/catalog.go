package tool

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/schema"
	"github.com/tanpawarit/ShopBot/agent/catalog"
	contractx "github.com/tanpawarit/ShopBot/agent/contract"
)

type Executor func(ctx context.Context, tool string, args map[string]any) (contractx.ToolResult, error)

type lookupFunc func(c *catalog.Catalog, name string) any

var lookups = map[string]lookupFunc{
	ToolGetProductDetails: GetProductDetails,
	ToolCheckStock:        CheckStock,
	ToolGetProductPrice:   GetProductPrice,
}

func BuildRegistry(c *catalog.Catalog) ([]*schema.ToolInfo, Executor) {
	return Infos(), NewExecutor(c)
}

func NewExecutor(c *catalog.Catalog) Executor {
	return func(ctx context.Context, tool string, args map[string]any) (contractx.ToolResult, error) {
		lookup, ok := lookups[tool]
		if !ok {
			return contractx.ToolResult{}, fmt.Errorf("%w: %q", contractx.ErrUnknownFunction, tool)
		}

		name, err := productName(args)
		if err != nil {
			return contractx.ToolResult{}, fmt.Errorf("%w: tool=%s: %v", contractx.ErrValidation, tool, err)
		}

		return contractx.ToolResult{
			Tool:   tool,
			Result: lookup(c, name),
		}, nil
	}
}

func productName(args map[string]any) (string, error) {
	raw, ok := args[ArgProductName]
	if !ok {
		return "", fmt.Errorf("%s is required", ArgProductName)
	}
	name, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%s must be a string", ArgProductName)
	}
	return name, nil
}

// Gateway decodes model-issued function calls and runs them through an Executor.
type Gateway struct {
	exec Executor
}

var _ contractx.FunctionGateway = (*Gateway)(nil)

func NewGateway(c *catalog.Catalog) *Gateway {
	return &Gateway{exec: NewExecutor(c)}
}

func (g *Gateway) Execute(ctx context.Context, call contractx.FunctionCall) (contractx.ToolResult, error) {
	req, err := toToolRequest(call)
	if err != nil {
		return contractx.ToolResult{}, err
	}
	return g.exec(ctx, req.Tool, req.Args)
}

func toToolRequest(call contractx.FunctionCall) (contractx.ToolRequest, error) {
	tool := strings.TrimSpace(call.Name)
	if tool == "" {
		return contractx.ToolRequest{}, fmt.Errorf("%w: function call name is empty", contractx.ErrSchemaViolation)
	}

	args := map[string]any{}
	rawArgs := strings.TrimSpace(call.Arguments)
	if rawArgs != "" {
		if err := json.Unmarshal([]byte(rawArgs), &args); err != nil {
			return contractx.ToolRequest{}, fmt.Errorf("%w: invalid args for tool=%s: %v", contractx.ErrSchemaViolation, tool, err)
		}
	}

	return contractx.ToolRequest{Tool: tool, Args: args}, nil
}
