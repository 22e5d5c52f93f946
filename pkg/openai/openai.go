package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	openaimodel "github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	openaisdk "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

type Config struct {
	BaseURL string        `envconfig:"BASE_URL" split_words:"true" default:"https://api.openai.com/v1"`
	APIKey  string        `envconfig:"API_KEY" split_words:"true" required:"true"`
	Timeout time.Duration `envconfig:"TIMEOUT" split_words:"true" default:"60s"`
}

// ModelOptions selects a model tag and sampling settings for one chat model.
// Nil pointers leave the provider default in place.
type ModelOptions struct {
	Model              string
	MaxCompletionToken *int
	Temperature        *float32
}

func (c Config) NewChatModel(ctx context.Context, opts ModelOptions) (model.ToolCallingChatModel, error) {
	modelName := strings.TrimSpace(opts.Model)
	if modelName == "" {
		return nil, errors.New("openai: model is required")
	}

	conf := &openaimodel.ChatModelConfig{
		BaseURL:     strings.TrimRight(strings.TrimSpace(c.BaseURL), "/"),
		APIKey:      strings.TrimSpace(c.APIKey),
		Model:       modelName,
		MaxTokens:   opts.MaxCompletionToken,
		Temperature: opts.Temperature,
		Timeout:     c.Timeout,
	}

	m, err := openaimodel.NewChatModel(ctx, conf)
	if err != nil {
		return nil, fmt.Errorf("openai: create chat model %s: %w", modelName, err)
	}
	return m, nil
}

// NewClient creates an OpenAI SDK client. Retries are disabled; a failed call
// surfaces to the caller as-is.
func NewClient(cfg Config) *openaisdk.Client {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil
	}

	opts := []option.RequestOption{
		option.WithAPIKey(strings.TrimSpace(cfg.APIKey)),
		option.WithMaxRetries(0),
	}
	if trimmed := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"); trimmed != "" {
		opts = append(opts, option.WithBaseURL(trimmed+"/"))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}

	client := openaisdk.NewClient(opts...)
	return &client
}

// VerifyModels checks that every model tag is known to the endpoint.
func VerifyModels(ctx context.Context, client *openaisdk.Client, models ...string) error {
	if client == nil {
		return errors.New("openai: client is nil")
	}

	seen := make(map[string]struct{}, len(models))
	for _, name := range models {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}

		if _, err := client.Models.Get(ctx, name); err != nil {
			return fmt.Errorf("openai: model %s unavailable: %w", name, err)
		}
	}
	return nil
}
