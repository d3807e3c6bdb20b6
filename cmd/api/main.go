package main

import (
	"context"
	"flag"

	"github.com/engbowl/engbowl/internal/bootstrap"
	"github.com/engbowl/engbowl/internal/pkg/logger"
	"github.com/engbowl/engbowl/internal/server"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to configuration file")
	flag.Parse()

	cfg, err := bootstrap.LoadConfigAndSetupLogger(*configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load configuration")
	}

	deps, err := bootstrap.BuildDependencies(context.Background(), cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to build dependencies")
	}
	defer deps.Close()

	srv := server.New(cfg.Server.Port, deps.Handler)
	if err := srv.Run(); err != nil {
		logger.Fatal().Err(err).Msg("Server error")
	}
}
