package main

import (
	"hotel/config"
	"hotel/di"
	"hotel/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()
	logger.SetLogLevel(cfg)

	log.Info().
		Str("app", cfg.App.Name).
		Str("env", cfg.Server.Env).
		Str("timezone", cfg.App.Timezone).
		Msg("starting hotel api")

	server := di.InitializeService()
	server.Serve()
}
