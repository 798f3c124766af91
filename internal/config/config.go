// Package config loads the server settings from the environment.
package config

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

const (
	DefaultPort    = "8080"
	DefaultEnvFile = ".env"
)

// Config holds the server settings.
type Config struct {
	Port    string
	APIKey  string // empty disables authentication
	GinMode string // empty, or one of gin's debug, release and test modes
}

// Load reads DefaultEnvFile when present, then the environment.
func Load() Config {
	return LoadFile(DefaultEnvFile)
}

// LoadFile reads the env file at path when it exists, then the environment.
// Variables already set in the environment win over the file.
func LoadFile(path string) Config {
	if err := godotenv.Load(path); err != nil && !os.IsNotExist(err) {
		log.Println("Warning: failed to read", path+":", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment. An unknown GIN_MODE
// is logged and ignored.
func FromEnv() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = DefaultPort
	}
	mode := os.Getenv("GIN_MODE")
	switch mode {
	case "", gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		log.Printf("Warning: ignoring unknown GIN_MODE %q", mode)
		mode = ""
	}
	return Config{
		Port:    port,
		APIKey:  os.Getenv("API_KEY"),
		GinMode: mode,
	}
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}
