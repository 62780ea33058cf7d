package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/aleister1102/siftview/internal/commands"
	"github.com/aleister1102/siftview/internal/config"
	"github.com/aleister1102/siftview/internal/logger"
	"github.com/rs/zerolog"
)

func main() {
	flags, err := ParseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "[FATAL] %v\n", err)
		os.Exit(2)
	}

	gCfg, err := config.LoadGlobalConfig(flags.GlobalConfigFile, zerolog.Nop())
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] Main: Could not load global config using path '%s': %v\n", flags.GlobalConfigFile, err)
		os.Exit(1)
	}

	if err := config.ValidateConfig(gCfg); err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] Main: Configuration validation failed: %v\n", err)
		os.Exit(1)
	}

	zLogger, err := logger.New(gCfg.LogConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] Main: Could not initialize logger: %v\n", err)
		os.Exit(1)
	}
	zLogger.Debug().Str("mode", flags.Mode).Msg("Logger initialized successfully.")

	workbench, err := commands.NewWorkbench(gCfg, zLogger)
	if err != nil {
		zLogger.Fatal().Err(err).Msg("Failed to initialize workbench")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := NewApp(flags, workbench, os.Stdin, os.Stdout, zLogger)
	if err := app.Run(ctx); err != nil {
		zLogger.Debug().Err(err).Str("mode", flags.Mode).Msg("Command failed")
		fmt.Fprintln(os.Stderr, err.Error())
		stop()
		os.Exit(1)
	}
}
