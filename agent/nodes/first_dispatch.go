package assistantnode

import (
	"context"
	"fmt"
	"strings"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/rs/zerolog/log"
	contractx "github.com/tanpawarit/ShopBot/agent/contract"
)

// FirstDispatch sends the opening conversation to a model that has the
// function registry bound.
func FirstDispatch(ctx context.Context, in *GraphState, functionModel einomodel.BaseChatModel) (*GraphState, error) {
	if in == nil {
		return nil, ErrNilState
	}

	msg, err := functionModel.Generate(ctx, in.Messages)
	if err != nil {
		return nil, fmt.Errorf("%w: first dispatch: %v", contractx.ErrModelInvoke, err)
	}
	if msg == nil {
		return nil, fmt.Errorf("%w: empty first dispatch response", contractx.ErrSchemaViolation)
	}
	in.FirstReply = msg

	if len(msg.ToolCalls) == 0 {
		return in, nil
	}

	call := msg.ToolCalls[0]
	name := strings.TrimSpace(call.Function.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: function call name is empty", contractx.ErrSchemaViolation)
	}
	if len(msg.ToolCalls) > 1 {
		log.Ctx(ctx).Warn().
			Int("tool_calls", len(msg.ToolCalls)).
			Str("function", name).
			Msg("model requested several functions; only the first is run")
	}

	id := strings.TrimSpace(call.ID)
	if id == "" {
		id = "call_" + name
	}
	in.Call = &contractx.FunctionCall{
		ID:        id,
		Name:      name,
		Arguments: call.Function.Arguments,
	}
	return in, nil
}

func HasFunctionCall(in *GraphState) bool {
	return in != nil && in.Call != nil
}
