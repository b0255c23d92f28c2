package main

import (
	"context"
	"log"

	"github.com/address-parsing/internal/config"
	"github.com/address-parsing/internal/engine"
	"github.com/address-parsing/internal/logger"
	"github.com/address-parsing/internal/web"
)

func main() {
	// Load environment configuration
	if err := config.LoadEnv(); err != nil {
		log.Fatalf("Failed to load .env: %v", err)
	}
	logger.Setup()

	cfg := config.FromEnv()
	eng, err := engine.Open(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to load dictionary: %v", err)
	}

	webConfig := web.ConfigFromEnv()
	server, err := web.NewServer(webConfig, eng)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	logger.L().Info("address parsing web interface",
		"dictionary", cfg.DictFormat,
		"regions", eng.Tree().Len(),
		"auth", webConfig.Auth.Enabled,
	)

	if err := server.Start(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
