package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Провайдеры генерации текста
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
	ProviderStub   = "stub"
)

// Режимы авторизации Gemini
const (
	GeminiAuthAPIKey = "apikey"
	GeminiAuthADC    = "adc"
)

// DefaultGeminiEndpoint фиксированный endpoint генерации.
const DefaultGeminiEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.0-flash:generateContent"

type Config struct {
	DebugMode       bool          `env:"DEBUG_MODE"`                       // Режим дебага (development‑логгер)
	BindAddr        string        `env:"BIND_ADDR"`                        // Адрес HTTP сервера
	HistoryFilePath string        `env:"HISTORY_FILE_PATH"`                // Файл с историей рассказов и оценок
	AllowedOrigins  []string      `env:"ALLOWED_ORIGINS" envSeparator:";"` // Разрешённые CORS origins
	Provider        string        `env:"LLM_PROVIDER"`                     // gemini|openai|stub
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT"`                  // Таймаут одного запроса к модели

	Gemini GeminiConfig
	OpenAI OpenAIConfig
	Speech SpeechConfig
}

// GeminiConfig конфигурация REST клиента Gemini generateContent.
type GeminiConfig struct {
	APIKey   string `env:"GEMINI_API_KEY"`
	Endpoint string `env:"GEMINI_ENDPOINT"`
	// apikey — ключ в query параметре; adc — OAuth2 через Application Default Credentials.
	Auth string `env:"GEMINI_AUTH"`
}

// OpenAIConfig конфигурация клиента OpenAI Responses API.
type OpenAIConfig struct {
	APIKey string `env:"OPENAI_API_KEY"`
	Model  string `env:"OPENAI_MODEL"`
}

// SpeechConfig конфигурация озвучки рассказов через Google Cloud Text-to-Speech.
type SpeechConfig struct {
	Enabled bool `env:"SPEECH_ENABLED"`
	// Путь к ключу сервисного аккаунта. SDK читает его из ENV GOOGLE_APPLICATION_CREDENTIALS.
	CredentialsPath string  `env:"GOOGLE_APPLICATION_CREDENTIALS"`
	Language        string  `env:"SPEECH_LANGUAGE"`
	Voice           string  `env:"SPEECH_VOICE"`
	SpeakingRate    float64 `env:"SPEECH_SPEAKING_RATE"`
}

// Defaults возвращает конфигурацию с предустановленными значениями по умолчанию.
// Эти значения перекрываются .env, переменными окружения и флагами CLI.
func Defaults() *Config {
	return &Config{
		DebugMode:       false,
		BindAddr:        "127.0.0.1:8000",
		HistoryFilePath: "history.json",
		AllowedOrigins:  []string{"http://localhost:5173"},
		Provider:        ProviderGemini,
		RequestTimeout:  60 * time.Second,
		Gemini: GeminiConfig{
			Endpoint: DefaultGeminiEndpoint,
			Auth:     GeminiAuthAPIKey,
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o",
		},
		Speech: SpeechConfig{
			Enabled:         false,
			CredentialsPath: "service-account.json",
			Language:        "ru-RU",
			Voice:           "ru-RU-Standard-A",
			SpeakingRate:    0.9, // чуть медленнее для учащихся
		},
	}
}

// NewConfig загружает конфигурацию приложения из .env, окружения и os.Args.
func NewConfig() *Config {
	cfg, err := Load(os.Args[1:])
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load собирает конфигурацию: дефолты -> .env -> окружение -> флаги из args.
func Load(args []string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Defaults()
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet("storytutor", flag.ContinueOnError)
	fs.BoolVar(&cfg.DebugMode, "debug-mode", cfg.DebugMode, "включить режим дебага")
	fs.StringVar(&cfg.BindAddr, "bind-addr", cfg.BindAddr, "адрес HTTP сервера (напр. 127.0.0.1:8000)")
	fs.StringVar(&cfg.HistoryFilePath, "history-file", cfg.HistoryFilePath, "путь к файлу истории")
	originsFlag := strings.Join(cfg.AllowedOrigins, ";")
	fs.StringVar(&originsFlag, "allowed-origins", originsFlag, "разрешённые CORS origins, разделённые ';'")
	fs.StringVar(&cfg.Provider, "llm-provider", cfg.Provider, "провайдер генерации: gemini|openai|stub")
	fs.DurationVar(&cfg.RequestTimeout, "request-timeout", cfg.RequestTimeout, "таймаут запроса к модели, напр. 60s")
	// Gemini
	fs.StringVar(&cfg.Gemini.APIKey, "gemini-api-key", cfg.Gemini.APIKey, "API ключ Gemini (перекрывает ENV)")
	fs.StringVar(&cfg.Gemini.Endpoint, "gemini-endpoint", cfg.Gemini.Endpoint, "URL generateContent")
	fs.StringVar(&cfg.Gemini.Auth, "gemini-auth", cfg.Gemini.Auth, "авторизация Gemini: apikey|adc")
	// OpenAI
	fs.StringVar(&cfg.OpenAI.Model, "openai-model", cfg.OpenAI.Model, "модель OpenAI")
	// Speech
	fs.BoolVar(&cfg.Speech.Enabled, "speech-enabled", cfg.Speech.Enabled, "включить озвучку рассказов (POST /speak)")
	fs.StringVar(&cfg.Speech.CredentialsPath, "speech-credentials", cfg.Speech.CredentialsPath, "путь к service-account.json")
	fs.StringVar(&cfg.Speech.Language, "speech-language", cfg.Speech.Language, "язык синтеза, напр. ru-RU")
	fs.StringVar(&cfg.Speech.Voice, "speech-voice", cfg.Speech.Voice, "имя голоса, напр. ru-RU-Wavenet-A")
	fs.Float64Var(&cfg.Speech.SpeakingRate, "speech-speaking-rate", cfg.Speech.SpeakingRate, "скорость речи (1.0 обычная)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	cfg.AllowedOrigins = parseListFlag(originsFlag, nil)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	c.Provider = strings.ToLower(strings.TrimSpace(c.Provider))
	switch c.Provider {
	case ProviderGemini, ProviderOpenAI, ProviderStub:
	default:
		return fmt.Errorf("config: unknown llm provider %q", c.Provider)
	}
	c.Gemini.Auth = strings.ToLower(strings.TrimSpace(c.Gemini.Auth))
	switch c.Gemini.Auth {
	case GeminiAuthAPIKey, GeminiAuthADC:
	default:
		return fmt.Errorf("config: unknown gemini auth mode %q", c.Gemini.Auth)
	}
	if strings.TrimSpace(c.Gemini.Endpoint) == "" {
		c.Gemini.Endpoint = DefaultGeminiEndpoint
	}
	if c.RequestTimeout <= 0 {
		return errors.New("config: request timeout must be positive")
	}

	// Если ENV пуст, но в конфиге указан путь — выставляем ENV для SDK.
	if c.Speech.Enabled {
		cred := strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
		if cred == "" {
			if cp := strings.TrimSpace(c.Speech.CredentialsPath); cp != "" {
				_ = os.Setenv("GOOGLE_APPLICATION_CREDENTIALS", cp)
				cred = cp
			}
		}
		if cred == "" {
			return errors.New("speech: GOOGLE_APPLICATION_CREDENTIALS is not set; use ENV or -speech-credentials")
		}
		if _, err := os.Stat(cred); err != nil {
			return fmt.Errorf("speech: credentials file not found: %s", cred)
		}
	}
	return nil
}

// parseListFlag разбирает значение флага со списком, разделённым ';'
func parseListFlag(v string, def []string) []string {
	if v == "" {
		return def
	}
	parts := strings.Split(v, ";")
	cleaned := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			cleaned = append(cleaned, p)
		}
	}
	if len(cleaned) == 0 {
		return def
	}
	return cleaned
}
