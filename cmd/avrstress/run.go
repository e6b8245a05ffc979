// run.go implements the 'avrstress run' command.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mbuesch/avr-atomic/internal/stress"
)

// initLogger configures the process-wide zerolog logger.
func initLogger() zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	logger := zerolog.New(output).With().Timestamp().Str("app", "avrstress").Logger()
	log.Logger = logger
	return logger
}

// runCommand implements the 'avrstress run' command.
//
// Flow:
//  1. Load the workload config (defaults, or a TOML file if given)
//  2. Run the stress harness
//  3. Render the report and exit nonzero if any torn value was observed
func runCommand(args []string) {
	initLogger()

	cfg := stress.DefaultConfig()
	switch len(args) {
	case 0:
	case 1:
		var err error
		cfg, err = stress.LoadConfig(args[0])
		if err != nil {
			log.Fatal().Err(err).Str("path", args[0]).Msg("failed to load stress config")
		}
		log.Info().Str("path", args[0]).Msg("loaded stress config")
	default:
		fmt.Fprintf(os.Stderr, "Usage: avrstress run [config.toml]\n")
		os.Exit(1)
	}

	log.Info().
		Int("writers", cfg.Writers).
		Int("readers", cfg.Readers).
		Int("iterations", cfg.Iterations).
		Msg("starting stress run")

	report, err := stress.Run(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("stress run failed")
	}

	report.Render(os.Stdout)

	if !report.Clean() {
		log.Error().Uint64("torn", report.Torn).Msg("torn values observed")
		os.Exit(1)
	}
	log.Info().
		Uint64("stores", report.Stores).
		Uint64("loads", report.Loads).
		Dur("elapsed", report.Elapsed).
		Msg("stress run clean")
}
