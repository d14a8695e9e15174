package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"palaeo-events/core"
	"palaeo-events/pkg/resources"
)

const defaultLogoPath = "files/aps-logo-black.svg"

const usageHeader = `palaeo-events - generate SVG graphics for APS weekly events.

Usage:
  palaeo-events <start_date> [end_date] [options]

Arguments:
  start_date
    Start date in YYYY-MM-DD format (e.g. 2025-01-15).
  end_date
    End date in YYYY-MM-DD format. Defaults to 7 days after start_date.

Options:
`

// exitError carries a specific process exit code out of run.
type exitError struct {
	code    int
	message string
}

func (e *exitError) Error() string {
	return e.message
}

func main() {
	if err := run(os.Stderr, os.Args[1:]); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			if exitErr.message != "" {
				fmt.Fprintln(os.Stderr, exitErr.message)
			}

			os.Exit(exitErr.code)
		}

		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run holds the actual wiring so main stays a thin exit-code shim.
func run(outW io.Writer, args []string) error {
	// 1. Flags
	flags := pflag.NewFlagSet("palaeo-events", pflag.ContinueOnError)
	flags.SetOutput(outW)
	flags.Usage = func() {
		fmt.Fprint(outW, usageHeader)
		flags.PrintDefaults()
	}

	flags.String("output-dir", "", "Output directory for generated SVG files. Defaults to the start date.")
	flags.String("base-url", core.DefaultBaseURL, "Base URL for the events API.")
	flags.String("logo", defaultLogoPath, "Path to the logo asset referenced by each graphic.")
	flags.BoolP("verbose", "v", false, "Enable verbose logging (debug level).")
	flags.BoolP("quiet", "q", false, "Suppress informational messages (warnings only).")
	flags.Bool("dry-run", false, "Preview what would be generated without creating files.")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}

		return &exitError{code: 2, message: err.Error()}
	}

	if flags.NArg() < 1 || flags.NArg() > 2 {
		flags.Usage()
		return &exitError{code: 2}
	}

	// 2. Config (.env file is optional; PALAEO_* variables sit below flags)
	_ = godotenv.Load()

	if err := resources.CreateConfig(flags); err != nil {
		return &exitError{code: 2, message: err.Error()}
	}

	// 3. Logging
	log.Logger = resources.CreateLogger(viper.GetBool("verbose"), viper.GetBool("quiet"))

	// 4. Wiring
	client := core.NewClient(core.ClientConfig{
		BaseURL: viper.GetString("base-url"),
		Timeout: viper.GetDuration("timeout"),
	})

	runner := core.NewRunner(client)

	opts := core.Options{
		StartDate: flags.Arg(0),
		EndDate:   flags.Arg(1),
		OutputDir: viper.GetString("output-dir"),
		LogoPath:  viper.GetString("logo"),
		DryRun:    viper.GetBool("dry-run"),
	}

	// 5. Run until done or interrupted
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := runner.Run(ctx, opts); err != nil {
		if errors.Is(err, context.Canceled) {
			return &exitError{code: 130, message: "interrupted"}
		}

		log.Error().Err(err).Msg("generation failed")

		return &exitError{code: 1}
	}

	return nil
}
