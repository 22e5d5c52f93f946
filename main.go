package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	assistantx "github.com/tanpawarit/ShopBot/agent/assistant"
	catalogx "github.com/tanpawarit/ShopBot/agent/catalog"
	llmx "github.com/tanpawarit/ShopBot/agent/llm"
	configx "github.com/tanpawarit/ShopBot/pkg/config"
	logx "github.com/tanpawarit/ShopBot/pkg/logger"
	_ "github.com/tanpawarit/ShopBot/pkg/logger/autoload"
	openaix "github.com/tanpawarit/ShopBot/pkg/openai"
	webx "github.com/tanpawarit/ShopBot/web"
)

type AppConfig struct {
	CatalogPath string `envconfig:"CATALOG_PATH" split_words:"true" default:"shop_bot.json"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logx.Init(*configx.MustNew[logx.Config]("LOG"))

	appCfg := configx.MustNew[AppConfig]("")
	openaiCfg := configx.MustNew[openaix.Config]("OPENAI")
	llmCfg := configx.MustNew[llmx.Config]("LLM")
	webCfg := configx.MustNew[webx.Config]("HTTP")

	catalog := catalogx.MustLoad(appCfg.CatalogPath)
	log.Info().Str("path", appCfg.CatalogPath).Int("products", catalog.Len()).Msg("catalog loaded")

	if llmCfg.VerifyModels {
		client := openaix.NewClient(*openaiCfg)
		if client == nil {
			panic("failed to initialize openai client")
		}
		if err := openaix.VerifyModels(ctx, client, llmCfg.ModelNames()...); err != nil {
			log.Fatal().Err(err).Msg("model verification failed")
		}
	}

	models, err := llmx.NewModels(ctx, *llmCfg, *openaiCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create chat models")
	}

	assistant, err := assistantx.NewForCatalog(models, catalog, assistantx.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create assistant")
	}

	server, err := webx.NewServer(assistant, *webCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create web server")
	}

	if err := server.ListenAndServe(ctx); err != nil {
		log.Fatal().Err(err).Msg("web server stopped")
	}
	log.Info().Msg("shopbot stopped")
}
