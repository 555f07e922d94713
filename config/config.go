package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultFeedbackFormURL = "https://docs.google.com/forms/d/e/1FAIpQLSdhxeYH_fgDSjAi9nMbx5BJes23_-XJBg1mHviSpgXgKeBM_g/formResponse"
	defaultFeedbackEntryID = "entry.1302998468"
)

// Config holds all application configuration
type Config struct {
	Environment string
	Server      ServerConfig
	Log         LogConfig
	Models      ModelConfig
	Translator  TranslatorConfig
	Cloud       CloudConfig
	History     HistoryConfig
	Feedback    FeedbackConfig
	Warmup      WarmupConfig
	Bluesky     BlueskyConfig
}

type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	CorsOrigins     []string
}

type LogConfig struct {
	Level  string
	Format string
}

// ModelConfig selects the detection and classification backends.
type ModelConfig struct {
	DetectorBackend  string
	SentimentBackend string
	HFToken          string
	HFBaseURL        string
	EmotionModel     string
	SentimentModel   string
	Timeout          time.Duration
}

type TranslatorConfig struct {
	Backend     string
	Tries       int
	OpenAIKey   string
	OpenAIModel string
}

// CloudConfig holds base64 encoded service account JSON for Google APIs.
type CloudConfig struct {
	NaturalLanguageCredentials string
	FirebaseCredentials        string
}

type HistoryConfig struct {
	Backend string
	Size    int
}

type FeedbackConfig struct {
	FormURL string
	EntryID string
	Timeout time.Duration
}

type WarmupConfig struct {
	// Schedule is a cron expression. Empty disables warm-up.
	Schedule string
}

type BlueskyConfig struct {
	Host    string
	Timeout time.Duration
}

// Backend names.
const (
	DetectorLingua   = "lingua"
	DetectorWhatlang = "whatlang"
	DetectorGCP      = "gcp"

	TranslatorGoogle = "google"
	TranslatorOpenAI = "openai"

	SentimentHuggingFace = "huggingface"
	SentimentVader       = "vader"
	SentimentGCP         = "gcp"

	HistoryNone      = "none"
	HistoryMemory    = "memory"
	HistoryFirestore = "firestore"
)

// Load reads .env (when present) and the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("error loading .env file: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (Config, error) {
	config := Config{
		Environment: getEnv("APP_ENV", "development"),
		Server: ServerConfig{
			Host:            getEnv("SERVER_HOST", "0.0.0.0"),
			Port:            getEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:     getEnvAsDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getEnvAsDuration("SERVER_WRITE_TIMEOUT", 90*time.Second),
			ShutdownTimeout: getEnvAsDuration("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
			CorsOrigins:     getEnvAsSlice("SERVER_CORS_ORIGINS", []string{"*"}),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
		Models: ModelConfig{
			DetectorBackend:  strings.ToLower(getEnv("DETECTOR_BACKEND", DetectorLingua)),
			SentimentBackend: strings.ToLower(getEnv("SENTIMENT_BACKEND", SentimentHuggingFace)),
			HFToken:          getEnv("HF_API_TOKEN", ""),
			HFBaseURL:        getEnv("HF_BASE_URL", "https://router.huggingface.co/hf-inference/models"),
			EmotionModel:     getEnv("EMOTION_MODEL", "bhadresh-savani/bert-base-go-emotion"),
			SentimentModel:   getEnv("SENTIMENT_MODEL", "cardiffnlp/twitter-roberta-base-sentiment"),
			Timeout:          getEnvAsDuration("INFERENCE_TIMEOUT", 30*time.Second),
		},
		Translator: TranslatorConfig{
			Backend:     strings.ToLower(getEnv("TRANSLATOR_BACKEND", TranslatorGoogle)),
			Tries:       getEnvAsInt("TRANSLATE_TRIES", 1),
			OpenAIKey:   getEnv("OPENAI_API_KEY", ""),
			OpenAIModel: getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		},
		Cloud: CloudConfig{
			NaturalLanguageCredentials: getEnv("NATURAL_LANGUAGE_CREDENTIALS", ""),
			FirebaseCredentials:        getEnv("FIREBASE_CREDENTIALS", ""),
		},
		History: HistoryConfig{
			Backend: strings.ToLower(getEnv("HISTORY_BACKEND", HistoryNone)),
			Size:    getEnvAsInt("HISTORY_SIZE", 100),
		},
		Feedback: FeedbackConfig{
			FormURL: getEnv("FEEDBACK_FORM_URL", defaultFeedbackFormURL),
			EntryID: getEnv("FEEDBACK_ENTRY_ID", defaultFeedbackEntryID),
			Timeout: getEnvAsDuration("FEEDBACK_TIMEOUT", 10*time.Second),
		},
		Warmup: WarmupConfig{
			Schedule: getEnv("WARMUP_SCHEDULE", ""),
		},
		Bluesky: BlueskyConfig{
			Host:    getEnv("BLUESKY_HOST", "https://public.api.bsky.app"),
			Timeout: getEnvAsDuration("BLUESKY_TIMEOUT", 10*time.Second),
		},
	}

	return config, validate(config)
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// validate checks if config is valid
func validate(config Config) error {
	switch config.Models.DetectorBackend {
	case DetectorLingua, DetectorWhatlang, DetectorGCP:
	default:
		return fmt.Errorf("unknown detector backend %q", config.Models.DetectorBackend)
	}
	switch config.Models.SentimentBackend {
	case SentimentHuggingFace, SentimentVader, SentimentGCP:
	default:
		return fmt.Errorf("unknown sentiment backend %q", config.Models.SentimentBackend)
	}
	switch config.Translator.Backend {
	case TranslatorGoogle:
	case TranslatorOpenAI:
		if config.Translator.OpenAIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY must be set for the openai translator")
		}
	default:
		return fmt.Errorf("unknown translator backend %q", config.Translator.Backend)
	}
	switch config.History.Backend {
	case HistoryNone, HistoryMemory:
	case HistoryFirestore:
		if config.Cloud.FirebaseCredentials == "" {
			return fmt.Errorf("FIREBASE_CREDENTIALS must be set for the firestore history")
		}
	default:
		return fmt.Errorf("unknown history backend %q", config.History.Backend)
	}
	usesGCP := config.Models.DetectorBackend == DetectorGCP || config.Models.SentimentBackend == SentimentGCP
	if usesGCP && config.Cloud.NaturalLanguageCredentials == "" {
		return fmt.Errorf("NATURAL_LANGUAGE_CREDENTIALS must be set for gcp backends")
	}
	if config.Server.Port <= 0 {
		return fmt.Errorf("invalid server port %d", config.Server.Port)
	}
	return nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	parts := strings.Split(valueStr, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
