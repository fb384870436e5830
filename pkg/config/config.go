package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	ProviderGigaChat = "gigachat"
	ProviderGroq     = "groq"
	ProviderGemini   = "gemini"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Reasoning ReasoningConfig
	Auth      AuthConfig
	Dataset   DatasetConfig
	Logger    LoggerConfig
}

type LoggerConfig struct {
	Level string
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	CORSOrigins  string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	MaxConns int32
}

// ReasoningConfig selects and configures the text-generation collaborator.
type ReasoningConfig struct {
	Provider    string
	Temperature float64
	GigaChat    GigaChatConfig
	Groq        GroqConfig
	Gemini      GeminiConfig
}

type GigaChatConfig struct {
	APIKey             string
	Scope              string
	Model              string
	InsecureSkipVerify bool
}

type GroqConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type AuthConfig struct {
	SecretKey  string
	Issuer     string
	Expiration time.Duration
}

type DatasetConfig struct {
	Path string
}

// setting binds a viper key to the environment variable that overrides it.
type setting struct {
	key      string
	env      string
	fallback interface{}
}

var settings = []setting{
	{"server.port", "SERVER_PORT", "5000"},
	{"server.read_timeout", "SERVER_READ_TIMEOUT", 30},
	{"server.write_timeout", "SERVER_WRITE_TIMEOUT", 120},
	{"server.cors_origins", "CORS_ORIGINS", "*"},

	{"database.host", "DB_HOST", "localhost"},
	{"database.port", "DB_PORT", "5432"},
	{"database.user", "DB_USER", "postgres"},
	{"database.password", "DB_PASSWORD", "postgres"},
	{"database.name", "DB_NAME", "schemes"},
	{"database.sslmode", "DB_SSLMODE", "disable"},
	{"database.max_conns", "DB_MAX_CONNS", 10},

	{"reasoning.provider", "REASONING_PROVIDER", ProviderGroq},
	{"reasoning.temperature", "REASONING_TEMPERATURE", 0.3},
	{"reasoning.gigachat.api_key", "GIGACHAT_API_KEY", ""},
	{"reasoning.gigachat.scope", "GIGACHAT_SCOPE", "GIGACHAT_API_PERS"},
	{"reasoning.gigachat.model", "GIGACHAT_MODEL", "GigaChat"},
	{"reasoning.gigachat.insecure_skip_verify", "GIGACHAT_INSECURE_SKIP_VERIFY", true},
	{"reasoning.groq.api_key", "GROQ_API_KEY", ""},
	{"reasoning.groq.base_url", "GROQ_BASE_URL", "https://api.groq.com/openai/v1"},
	{"reasoning.groq.model", "GROQ_MODEL", "llama-3.3-70b-versatile"},
	{"reasoning.gemini.api_key", "GEMINI_API_KEY", ""},
	{"reasoning.gemini.model", "GEMINI_MODEL", "gemini-2.0-flash"},

	{"auth.secret_key", "JWT_SECRET_KEY", "your-secret-key-change-in-production"},
	{"auth.issuer", "JWT_ISSUER", "scheme-navigator"},
	{"auth.expiration_hours", "JWT_EXPIRATION_HOURS", 24},

	{"dataset.path", "DATASET_PATH", "./dataset"},

	{"logger.level", "LOG_LEVEL", "info"},
}

// Load reads configuration from an optional .env file, an optional
// config.yaml and the environment, in increasing order of precedence.
func Load() (*Config, error) {
	loadEnvFile()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return fromViper(v)
}

func loadEnvFile() {
	for _, envFile := range []string{".env", "../.env", "../../.env"} {
		if err := godotenv.Load(envFile); err == nil {
			return
		}
	}
}

func fromViper(v *viper.Viper) (*Config, error) {
	for _, s := range settings {
		v.SetDefault(s.key, s.fallback)
		if err := v.BindEnv(s.key, s.env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", s.env, err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:         v.GetString("server.port"),
			ReadTimeout:  time.Duration(v.GetInt("server.read_timeout")) * time.Second,
			WriteTimeout: time.Duration(v.GetInt("server.write_timeout")) * time.Second,
			CORSOrigins:  v.GetString("server.cors_origins"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("database.host"),
			Port:     v.GetString("database.port"),
			User:     v.GetString("database.user"),
			Password: v.GetString("database.password"),
			DBName:   v.GetString("database.name"),
			SSLMode:  v.GetString("database.sslmode"),
			MaxConns: v.GetInt32("database.max_conns"),
		},
		Reasoning: ReasoningConfig{
			Provider:    strings.ToLower(strings.TrimSpace(v.GetString("reasoning.provider"))),
			Temperature: v.GetFloat64("reasoning.temperature"),
			GigaChat: GigaChatConfig{
				APIKey:             v.GetString("reasoning.gigachat.api_key"),
				Scope:              v.GetString("reasoning.gigachat.scope"),
				Model:              v.GetString("reasoning.gigachat.model"),
				InsecureSkipVerify: v.GetBool("reasoning.gigachat.insecure_skip_verify"),
			},
			Groq: GroqConfig{
				APIKey:  v.GetString("reasoning.groq.api_key"),
				BaseURL: v.GetString("reasoning.groq.base_url"),
				Model:   v.GetString("reasoning.groq.model"),
			},
			Gemini: GeminiConfig{
				APIKey: v.GetString("reasoning.gemini.api_key"),
				Model:  v.GetString("reasoning.gemini.model"),
			},
		},
		Auth: AuthConfig{
			SecretKey:  v.GetString("auth.secret_key"),
			Issuer:     v.GetString("auth.issuer"),
			Expiration: time.Duration(v.GetInt("auth.expiration_hours")) * time.Hour,
		},
		Dataset: DatasetConfig{
			Path: v.GetString("dataset.path"),
		},
		Logger: LoggerConfig{
			Level: v.GetString("logger.level"),
		},
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	switch cfg.Reasoning.Provider {
	case ProviderGigaChat, ProviderGroq, ProviderGemini:
	default:
		return fmt.Errorf("unknown reasoning provider %q", cfg.Reasoning.Provider)
	}
	if cfg.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}
	if cfg.Auth.SecretKey == "" {
		return fmt.Errorf("JWT secret key is required")
	}
	return nil
}
