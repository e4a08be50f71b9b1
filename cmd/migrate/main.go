package main

import (
	"context"
	"os"
	"slices"
	"strings"

	"hotel/config"
	"hotel/di"
	"hotel/helper"
	"hotel/shared/logger"

	"github.com/rs/zerolog/log"
)

const (
	argLength  = 2
	seedAction = "seed-admin"
)

func main() {
	logger.InitLogger()

	usage := strings.Join(append(helper.Actions(), seedAction), ", ")

	if len(os.Args) < argLength {
		log.Fatal().Str("actions", usage).Msg("Migration action is required")
	}

	cfg := config.Get()
	logger.SetLogLevel(cfg)

	action := os.Args[1]

	switch {
	case action == seedAction:
		if err := helper.SeedAdmin(context.Background(), cfg, di.InitializeUserService()); err != nil {
			log.Fatal().Err(err).Msg("Failed to seed admin user")
		}
	case slices.Contains(helper.Actions(), action):
		if err := helper.Runner(cfg, action); err != nil {
			log.Fatal().Err(err).Msg("Failed to run migration")
		}
	default:
		log.Fatal().Str("action", action).Str("actions", usage).Msg("Invalid migration action")
	}
}
