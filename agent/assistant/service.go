package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/compose"
	"github.com/rs/zerolog/log"
	"github.com/tanpawarit/ShopBot/agent/catalog"
	contractx "github.com/tanpawarit/ShopBot/agent/contract"
	llmx "github.com/tanpawarit/ShopBot/agent/llm"
	nodex "github.com/tanpawarit/ShopBot/agent/nodes"
	promptx "github.com/tanpawarit/ShopBot/agent/prompt"
	toolx "github.com/tanpawarit/ShopBot/agent/tool"
)

var ErrEmptyQuery = nodex.ErrEmptyQuery

type Config struct {
	SystemPrompt string
}

// Assistant answers catalog questions with at most two model calls: one that
// may pick a catalog function, and one that narrates the function's result.
type Assistant struct {
	functionModel einomodel.BaseChatModel
	answerModel   einomodel.BaseChatModel
	gateway       contractx.FunctionGateway
	systemPrompt  string

	graphRunner compose.Runnable[nodex.GraphInput, nodex.GraphOutput]
}

var _ contractx.Assistant = (*Assistant)(nil)

func New(
	functionModel einomodel.ToolCallingChatModel,
	answerModel einomodel.BaseChatModel,
	gateway contractx.FunctionGateway,
	cfg Config,
) (*Assistant, error) {
	if functionModel == nil {
		return nil, errors.New("function model is required")
	}
	if answerModel == nil {
		return nil, errors.New("answer model is required")
	}
	if gateway == nil {
		return nil, errors.New("function gateway is required")
	}

	systemPrompt := strings.TrimSpace(cfg.SystemPrompt)
	if systemPrompt == "" {
		systemPrompt = promptx.LoadPromptSet().System
	}

	toolModel, err := functionModel.WithTools(toolx.Infos())
	if err != nil {
		return nil, fmt.Errorf("%w: bind catalog functions: %v", contractx.ErrModelInvoke, err)
	}

	a := &Assistant{
		functionModel: toolModel,
		answerModel:   answerModel,
		gateway:       gateway,
		systemPrompt:  systemPrompt,
	}

	graphRunner, err := a.compileAnswerGraph(context.Background())
	if err != nil {
		return nil, err
	}
	a.graphRunner = graphRunner

	return a, nil
}

// NewForCatalog wires the stage models to a gateway over c.
func NewForCatalog(models llmx.Models, c *catalog.Catalog, cfg Config) (*Assistant, error) {
	return New(models.Function, models.Answer, toolx.NewGateway(c), cfg)
}

func (a *Assistant) Answer(ctx context.Context, query string) (string, error) {
	out, err := a.graphRunner.Invoke(ctx, nodex.GraphInput{Query: query})
	if err != nil {
		return "", err
	}

	log.Ctx(ctx).Info().
		Str("function", out.Function).
		Int("reply_len", len(out.Reply)).
		Msg("query answered")
	return out.Reply, nil
}
