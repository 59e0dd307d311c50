package config

import (
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/samber/oops"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Log    Log    `yaml:"log"`
	Server Server `yaml:"server"`
	Jokes  Jokes  `yaml:"jokes"`
}

type Server struct {
	// Address the HTTP server listens on
	Listen string `yaml:"listen" example:":8080" validate:"required"`
}

type Jokes struct {
	// Base URL of the joke API
	BaseURL string `yaml:"base_url" example:"https://api.chucknorris.io" validate:"required,url"`
	// Outbound request timeout in seconds
	TimeoutSec int `yaml:"timeout_sec" example:"10" validate:"required,min=1"`
}

func (j Jokes) Timeout() time.Duration {
	return time.Duration(j.TimeoutSec) * time.Second
}

type Log struct {
	// Telegram logging config
	Telegram TelegramLog `yaml:"telegram"`
}

type TelegramLog struct {
	// Chat bot token, obtain it via BotFather
	Token string `yaml:"token" example:"1234567890:ABCdefGHIjklMNopQRstUVwxyZ-123456789"`
	// Chat ID to send messages to
	ChatID string `yaml:"chat_id" example:"1001234567890"`
}

func Load() (*Config, error) {
	var result Config

	data, err := os.ReadFile("config.yaml")
	if err != nil {
		return nil, oops.Errorf("failed to read config file: %w", err)
	}

	if err = yaml.Unmarshal(data, &result); err != nil {
		return nil, oops.Errorf("failed to parse YAML config: %w", err)
	}

	if result.Server.Listen == "" {
		result.Server.Listen = ":8080"
	}
	if result.Jokes.BaseURL == "" {
		result.Jokes.BaseURL = "https://api.chucknorris.io"
	}
	if result.Jokes.TimeoutSec == 0 {
		result.Jokes.TimeoutSec = 10
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(result); err != nil {
		return nil, oops.Errorf("failed to validate config: %w", err)
	}

	return &result, nil
}
