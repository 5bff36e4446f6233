package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port          string        `mapstructure:"port"`
	Provider      string        `mapstructure:"provider"`
	AIEndpoint    string        `mapstructure:"ai_endpoint"`
	Model         string        `mapstructure:"model"`
	OpenAIAPIKey  string        `mapstructure:"OPENAI_API_KEY"`
	GeminiAPIKeys string        `mapstructure:"GEMINI_API_KEYS"` // comma-separated, rotated on failure
	UploadDir     string        `mapstructure:"upload_dir"`
	PublicDir     string        `mapstructure:"public_dir"`
	MaxUploadSize int64         `mapstructure:"max_upload_size"`
	AskTimeout    time.Duration `mapstructure:"ask_timeout"`
	LogFile       string        `mapstructure:"log_file"`
}

func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	// Set up Viper to read from config file
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	v.SetDefault("port", "8080")
	v.SetDefault("provider", "openai")
	v.SetDefault("upload_dir", "uploads")
	v.SetDefault("public_dir", "public")
	v.SetDefault("max_upload_size", 10<<20)
	v.SetDefault("ask_timeout", "2m")
	v.SetDefault("log_file", "logs/docchat.log")

	// Set up Viper to read from environment variables
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Secrets come from the environment, not the config file
	v.BindEnv("OPENAI_API_KEY")
	v.BindEnv("GEMINI_API_KEYS")
	v.BindEnv("port", "PORT")

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}
