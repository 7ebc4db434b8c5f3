package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	AppHost  string `mapstructure:"APP_HOST"`
	AppPort  int    `mapstructure:"APP_PORT"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	StorageDriver string `mapstructure:"STORAGE_DRIVER"`
	DatabasePath  string `mapstructure:"DATABASE_PATH"`
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	ClaudeURL    string `mapstructure:"CLAUDE_URL"`
	ClaudeModel  string `mapstructure:"CLAUDE_MODEL"`
	GeminiURL    string `mapstructure:"GEMINI_URL"`
	GeminiModel  string `mapstructure:"GEMINI_MODEL"`
	ChatGPTURL   string `mapstructure:"CHATGPT_URL"`
	ChatGPTModel string `mapstructure:"CHATGPT_MODEL"`
	OllamaURL    string `mapstructure:"OLLAMA_URL"`
	OllamaModel  string `mapstructure:"OLLAMA_MODEL"`

	// ValidateFolderMoves rejects moves into folders that do not exist.
	ValidateFolderMoves bool `mapstructure:"VALIDATE_FOLDER_MOVES"`
}

// ConfigFileKey is the viper key holding an explicit config file path.
const ConfigFileKey = "config"

// Storage drivers understood by the application.
const (
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
)

func setDefaults() {
	viper.SetDefault("APP_HOST", "127.0.0.1")
	viper.SetDefault("APP_PORT", 8000)
	viper.SetDefault("LOG_LEVEL", "INFO")

	viper.SetDefault("STORAGE_DRIVER", DriverSQLite)
	viper.SetDefault("DATABASE_PATH", "./data/workspace.db")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)

	viper.SetDefault("CLAUDE_URL", "https://api.anthropic.com/v1/messages")
	viper.SetDefault("CLAUDE_MODEL", "claude-sonnet-4-5-20250929")
	viper.SetDefault("GEMINI_URL", "https://generativelanguage.googleapis.com/v1beta/models")
	viper.SetDefault("GEMINI_MODEL", "gemini-2.0-flash")
	viper.SetDefault("CHATGPT_URL", "https://api.openai.com/v1/chat/completions")
	viper.SetDefault("CHATGPT_MODEL", "gpt-4o-mini")
	viper.SetDefault("OLLAMA_URL", "http://localhost:11434")
	viper.SetDefault("OLLAMA_MODEL", "llama3.2")

	viper.SetDefault("VALIDATE_FOLDER_MOVES", false)
}

func LoadConfig() (*Config, error) {
	setDefaults()

	// An explicit file (the CLI's --config flag) wins over the search path.
	if file := viper.GetString(ConfigFileKey); file != "" {
		viper.SetConfigFile(file)
	} else {
		viper.SetConfigName(".env")
		viper.SetConfigType("env")
		viper.AddConfigPath(".")
		viper.AddConfigPath("./backend")
	}

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
