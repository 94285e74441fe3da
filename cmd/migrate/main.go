package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"hotelier/config"
	"hotelier/helper"
	"hotelier/shared/logger"
)

func main() {
	logger.InitLogger()

	if err := config.Init(); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize configuration")
	}

	cfg := config.Get()

	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	switch command {
	case "up":
		if err := helper.Migrate(cfg); err != nil {
			log.Fatal().Err(err).Msg("Migration failed")
		}
	case "down":
		if err := helper.Rollback(cfg); err != nil {
			log.Fatal().Err(err).Msg("Rollback failed")
		}
	default:
		log.Fatal().Str("command", command).Msg("Unknown migration command, use 'up' or 'down'")
	}
}
