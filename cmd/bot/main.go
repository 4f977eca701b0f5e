package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"

	"polyglot-bot/internal/artifact"
	"polyglot-bot/internal/config"
	"polyglot-bot/internal/pipeline"
	"polyglot-bot/internal/prefs"
	"polyglot-bot/internal/speech"
	"polyglot-bot/internal/telegram"
	"polyglot-bot/internal/transcode"
	"polyglot-bot/internal/translate"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg := config.New()
	// SIGINT/SIGTERM cancel the context, which stops update consumption
	// and lets the deferred janitor shutdown run.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	prefStore, err := prefs.NewFileStore(cfg.PrefsFilePath)
	if err != nil {
		log.Fatalf("failed to init preference store: %v", err)
	}

	artifacts, err := artifact.NewStore(cfg.ArtifactsDir)
	if err != nil {
		log.Fatalf("failed to init artifact store: %v", err)
	}
	janitor := artifact.NewJanitor(artifacts, cfg.ArtifactMaxAge)
	if err := janitor.Start(cfg.CleanupSchedule); err != nil {
		log.Fatalf("failed to start artifact janitor: %v", err)
	}
	defer janitor.Stop()

	factory := &translate.Factory{
		OpenaiAPIKey:     cfg.OpenAIAPIKey,
		OpenaiBaseURL:    cfg.OpenAIBaseURL,
		OpenaiModel:      cfg.OpenAIModel,
		YandexOAuthToken: cfg.YandexOAuthToken,
		YandexFolderID:   cfg.YandexFolderID,
		GoogleAPIKey:     cfg.GoogleAPIKey,
	}
	translator, err := factory.CreateClient(ctx, cfg.TranslateProvider)
	if err != nil {
		log.Fatalf("failed to create translator: %v", err)
	}

	api, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		log.Fatalf("failed to create telegram api: %v", err)
	}

	pl := pipeline.New(
		prefStore,
		artifacts,
		telegram.NewFileFetcher(api),
		transcode.NewFFmpeg(cfg.FFmpegPath, cfg.FFprobePath),
		speech.NewOpenAIRecognizer(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.SpeechModel),
		translator,
		speech.NewOpenAISynthesizer(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.TTSModel, cfg.TTSVoice),
		cfg.ExternalCallTimeout,
	)

	bot := telegram.New(api, prefStore, pl)
	log.Printf("bot started, provider %s", cfg.TranslateProvider)
	bot.Start(ctx)
	log.Printf("bot stopped")
}
