package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"hotel/config"
	"hotel/di"
	"hotel/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumer := di.InitializeWorker()

	if err := consumer.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("Notification worker stopped")
	}

	log.Info().Msg("Notification worker shut down.")
}
