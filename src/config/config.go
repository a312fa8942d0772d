package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	LogLevel       string
	CurrencySymbol string
	Suggestions    bool
}

func LoadConfig(envFiles ...string) (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	err := godotenv.Load(envFiles...)
	if err != nil {
		log.Println("Warning: .env file not found, using environment variables only")
	}

	config := &Config{
		LogLevel:       os.Getenv("LOG_LEVEL"),
		CurrencySymbol: os.Getenv("CURRENCY_SYMBOL"),
		Suggestions:    parseBool(os.Getenv("SUGGESTIONS"), true),
	}

	// Set default values if environment variables are not set
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
	if config.CurrencySymbol == "" {
		config.CurrencySymbol = "тг"
	}

	return config, nil
}

func parseBool(value string, fallback bool) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return b
}
