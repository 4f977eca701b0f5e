package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	TelegramBotToken string `env:"TELEGRAM_BOT_TOKEN,required"`

	// Translation settings
	TranslateProvider string `env:"TRANSLATE_PROVIDER" envDefault:"openai"`
	OpenAIAPIKey      string `env:"OPENAI_API_KEY"`
	OpenAIBaseURL     string `env:"OPENAI_BASE_URL"`
	OpenAIModel       string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	YandexOAuthToken  string `env:"YANDEX_OAUTH_TOKEN"`
	YandexFolderID    string `env:"YANDEX_FOLDER_ID"`
	GoogleAPIKey      string `env:"GOOGLE_API_KEY"`

	// Speech settings
	SpeechModel string `env:"SPEECH_MODEL" envDefault:"whisper-1"`
	TTSModel    string `env:"TTS_MODEL" envDefault:"tts-1"`
	TTSVoice    string `env:"TTS_VOICE" envDefault:"alloy"`

	// Media decoding
	FFmpegPath  string `env:"FFMPEG_PATH" envDefault:"ffmpeg"`
	FFprobePath string `env:"FFPROBE_PATH" envDefault:"ffprobe"`

	// Storage
	PrefsFilePath string `env:"PREFS_FILE_PATH" envDefault:"data/user_langs.json"`
	ArtifactsDir  string `env:"ARTIFACTS_DIR" envDefault:"data/artifacts"`

	// Limits and cleanup
	ExternalCallTimeout time.Duration `env:"EXTERNAL_CALL_TIMEOUT" envDefault:"60s"`
	ArtifactMaxAge      time.Duration `env:"ARTIFACT_MAX_AGE" envDefault:"1h"`
	CleanupSchedule     string        `env:"CLEANUP_SCHEDULE" envDefault:"*/30 * * * *"`
}

func New() *Config {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	return cfg
}
