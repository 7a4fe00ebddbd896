package configs

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	ListenAddr     string
	BrowseRowLimit int
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using default config")
	}

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":2222"
	}

	limit := 200
	if limitStr := os.Getenv("BROWSE_ROW_LIMIT"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 {
			log.Printf("Invalid BROWSE_ROW_LIMIT value: %v. Using default limit 200.", limitStr)
		} else {
			limit = parsed
		}
	}

	return &Config{
		ListenAddr:     addr,
		BrowseRowLimit: limit,
	}
}
