package llm

import (
	"context"
	"fmt"
	"strings"

	einomodel "github.com/cloudwego/eino/components/model"
	contractx "github.com/tanpawarit/ShopBot/agent/contract"
	openaix "github.com/tanpawarit/ShopBot/pkg/openai"
)

type Stage string

const (
	// StageFunctionCall is the first call, made with the function registry attached.
	StageFunctionCall Stage = "function_call"
	// StageAnswer turns a function result into prose.
	StageAnswer Stage = "answer"
)

// The two stages default to different model tags.
type Config struct {
	FunctionModel       string  `envconfig:"FUNCTION_MODEL" split_words:"true" default:"gpt-4"`
	AnswerModel         string  `envconfig:"ANSWER_MODEL" split_words:"true" default:"gpt-4-0613"`
	MaxCompletionToken  int     `envconfig:"MAX_COMPLETION_TOKEN" split_words:"true" default:"0"`
	FunctionTemperature float32 `envconfig:"FUNCTION_TEMPERATURE" split_words:"true" default:"-1"`
	AnswerTemperature   float32 `envconfig:"ANSWER_TEMPERATURE" split_words:"true" default:"-1"`
	VerifyModels        bool    `envconfig:"VERIFY_MODELS" split_words:"true" default:"false"`
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.FunctionModel) == "" {
		return fmt.Errorf("%w: function model is required", contractx.ErrValidation)
	}
	if strings.TrimSpace(c.AnswerModel) == "" {
		return fmt.Errorf("%w: answer model is required", contractx.ErrValidation)
	}
	if c.MaxCompletionToken < 0 {
		return fmt.Errorf("%w: max completion token must be >= 0", contractx.ErrValidation)
	}
	return nil
}

func (c Config) OptionsFor(stage Stage) openaix.ModelOptions {
	modelName := strings.TrimSpace(c.FunctionModel)
	temp := c.FunctionTemperature
	if stage == StageAnswer {
		modelName = strings.TrimSpace(c.AnswerModel)
		temp = c.AnswerTemperature
	}

	opts := openaix.ModelOptions{Model: modelName}
	if c.MaxCompletionToken > 0 {
		maxCompletionToken := c.MaxCompletionToken
		opts.MaxCompletionToken = &maxCompletionToken
	}
	if temp >= 0 {
		opts.Temperature = &temp
	}
	return opts
}

func (c Config) ModelNames() []string {
	return []string{strings.TrimSpace(c.FunctionModel), strings.TrimSpace(c.AnswerModel)}
}

type Models struct {
	Function einomodel.ToolCallingChatModel
	Answer   einomodel.BaseChatModel
}

// NewModels builds one chat model per stage against the same endpoint.
func NewModels(ctx context.Context, cfg Config, api openaix.Config) (Models, error) {
	if err := cfg.Validate(); err != nil {
		return Models{}, err
	}

	functionModel, err := api.NewChatModel(ctx, cfg.OptionsFor(StageFunctionCall))
	if err != nil {
		return Models{}, fmt.Errorf("%w: create function model: %v", contractx.ErrModelInvoke, err)
	}
	answerModel, err := api.NewChatModel(ctx, cfg.OptionsFor(StageAnswer))
	if err != nil {
		return Models{}, fmt.Errorf("%w: create answer model: %v", contractx.ErrModelInvoke, err)
	}

	return Models{
		Function: functionModel,
		Answer:   answerModel,
	}, nil
}
