package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/viant/sts/cli"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(zerolog.InfoLevel).With().Timestamp().Logger()
	if os.Getenv("STS_DEBUG") != "" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	}
	if err := cli.Run(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("sts failed")
	}
}
