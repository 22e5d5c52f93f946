package assistantnode

import (
	"context"
	"fmt"
	"strings"

	einomodel "github.com/cloudwego/eino/components/model"
	contractx "github.com/tanpawarit/ShopBot/agent/contract"
)

// FollowUp asks the answer model to narrate the function result. No tools are
// attached to this call.
func FollowUp(ctx context.Context, in *GraphState, answerModel einomodel.BaseChatModel) (GraphOutput, error) {
	if in == nil {
		return GraphOutput{}, ErrNilState
	}
	if in.Call == nil {
		return GraphOutput{}, ErrNoFirstCall
	}

	msg, err := answerModel.Generate(ctx, in.Messages)
	if err != nil {
		return GraphOutput{}, fmt.Errorf("%w: follow up: %v", contractx.ErrModelInvoke, err)
	}
	if msg == nil {
		return GraphOutput{}, fmt.Errorf("%w: empty follow up response", contractx.ErrSchemaViolation)
	}

	reply := strings.TrimSpace(msg.Content)
	if reply == "" {
		return GraphOutput{}, fmt.Errorf("%w: follow up returned empty message", contractx.ErrSchemaViolation)
	}
	return GraphOutput{Reply: reply, Function: in.Call.Name}, nil
}

func DirectAnswer(in *GraphState) (GraphOutput, error) {
	if in == nil {
		return GraphOutput{}, ErrNilState
	}
	if in.FirstReply == nil {
		return GraphOutput{}, ErrNoFirstCall
	}

	reply := strings.TrimSpace(in.FirstReply.Content)
	if reply == "" {
		return GraphOutput{}, fmt.Errorf("%w: model returned empty message", contractx.ErrSchemaViolation)
	}
	return GraphOutput{Reply: reply}, nil
}
