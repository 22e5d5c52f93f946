package assistantnode

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cloudwego/eino/schema"
	"github.com/rs/zerolog/log"
	contractx "github.com/tanpawarit/ShopBot/agent/contract"
)

// InvokeFunction runs the requested catalog function and appends the
// assistant call and its result to the conversation.
func InvokeFunction(ctx context.Context, in *GraphState, gateway contractx.FunctionGateway) (*GraphState, error) {
	if in == nil {
		return nil, ErrNilState
	}
	if in.Call == nil || in.FirstReply == nil {
		return nil, ErrNoFirstCall
	}

	result, err := gateway.Execute(ctx, *in.Call)
	if err != nil {
		return nil, err
	}

	content, err := json.Marshal(result.Result)
	if err != nil {
		return nil, fmt.Errorf("%w: encode result of %s: %v", contractx.ErrValidation, in.Call.Name, err)
	}

	log.Ctx(ctx).Debug().
		Str("function", in.Call.Name).
		Str("arguments", in.Call.Arguments).
		RawJSON("result", content).
		Msg("catalog function executed")

	toolCall := schema.ToolCall{
		ID:   in.Call.ID,
		Type: "function",
		Function: schema.FunctionCall{
			Name:      in.Call.Name,
			Arguments: in.Call.Arguments,
		},
	}

	in.Result = result
	in.Messages = append(in.Messages,
		schema.AssistantMessage(in.FirstReply.Content, []schema.ToolCall{toolCall}),
		&schema.Message{
			Role:       schema.Tool,
			Content:    string(content),
			Name:       in.Call.Name,
			ToolCallID: in.Call.ID,
		},
	)
	return in, nil
}
