package config

import (
	"log"
	"os"

	"github.com/claimlens/claimlens/src/data"
	"gorm.io/gorm"
)

type Config struct {
	Port        string
	MySQLDSN    string
	RedisURL    string
	OllamaURL   string
	OllamaModel string
}

func Load(db *gorm.DB) Config {
	if err := data.LoadSettings(db); err != nil {
		log.Printf("Failed to load settings: %v", err)
	}

	port := data.GetSetting("port")
	if port == "" {
		port = os.Getenv("PORT")
	}
	if port == "" {
		port = "5000"
	}

	redisURL := data.GetSetting("redis_url")
	if redisURL == "" {
		redisURL = os.Getenv("REDIS_URL")
	}
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	ollamaURL := data.GetSetting("ollama_url")
	if ollamaURL == "" {
		ollamaURL = os.Getenv("OLLAMA_URL")
	}
	if ollamaURL == "" {
		ollamaURL = "http://localhost:11434"
	}

	ollamaModel := data.GetSetting("ollama_model")
	if ollamaModel == "" {
		ollamaModel = os.Getenv("OLLAMA_MODEL")
	}
	if ollamaModel == "" {
		ollamaModel = "llama3.2:3b"
	}

	return Config{
		Port:        port,
		MySQLDSN:    data.GetMySQLDSN(),
		RedisURL:    redisURL,
		OllamaURL:   ollamaURL,
		OllamaModel: ollamaModel,
	}
}
