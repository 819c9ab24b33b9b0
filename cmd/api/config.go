package main

import (
	"log"
	"os"

	"sewaaset-prediction/internal/models"
	"sewaaset-prediction/pkg/config"
	"sewaaset-prediction/pkg/logger"

	"github.com/joho/godotenv"
)

// LoadConfiguration reads .env, the YAML config and the zone table, and
// initializes the global logger at the configured level.
func LoadConfiguration() (*config.Config, models.ReferenceData) {
	loadEnvironment()
	cfg := loadConfigFile()
	logger.InitLogger(os.Stdout, cfg.Logging.Level)

	ref, err := config.LoadReferenceData(cfg.ReferenceData.Path)
	if err != nil {
		logger.GlobalLogger.Fatalf("Failed to load reference data: %v", err)
	}
	return cfg, ref
}

// load environment variables from .env file
func loadEnvironment() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, relying on system environment variables: %v", err)
	}
}

// load the application configuration from a YAML file
func loadConfigFile() *config.Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/config.yaml"
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}
