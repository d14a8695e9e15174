package core

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// Options carries one invocation's worth of generation settings, already
// parsed from the command line.
type Options struct {
	StartDate string
	EndDate   string
	OutputDir string
	LogoPath  string
	DryRun    bool
}

type Runner interface {
	Run(ctx context.Context, opts Options) error
}

type runner struct {
	client Client
}

func NewRunner(client Client) Runner {
	return &runner{client: client}
}

// Run drives the whole pipeline: validate -> fetch -> generate -> write.
// Any failure short-circuits; invalid input never reaches the network, and a
// fetch failure never reaches the filesystem.
func (r *runner) Run(ctx context.Context, opts Options) error {
	// Validates dates before any I/O happens.
	if err := ValidateDateFormat(opts.StartDate); err != nil {
		return err
	}

	if opts.EndDate == "" {
		opts.EndDate = DefaultEndDate(opts.StartDate)
		log.Info().Str("end_date", opts.EndDate).Msg("end date not provided, defaulting to 7 days after start date")
	} else {
		if err := ValidateDateFormat(opts.EndDate); err != nil {
			return err
		}

		if err := ValidateDateRange(opts.StartDate, opts.EndDate); err != nil {
			return err
		}
	}

	log.Info().Str("start_date", opts.StartDate).Str("end_date", opts.EndDate).Msg("fetching event data")

	// Output directory defaults to the start date.
	outputDir := opts.OutputDir
	if outputDir == "" {
		outputDir = opts.StartDate
	}

	events, err := r.client.GetEvents(ctx, opts.StartDate, opts.EndDate)
	if err != nil {
		return fmt.Errorf("failed to fetch event data: %w", err)
	}

	if len(events) == 0 {
		log.Warn().Msg("no events found for the specified date range")
		return nil
	}

	log.Info().Int("count", len(events)).Msg("events to process")

	if !opts.DryRun {
		if err := os.MkdirAll(outputDir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	for index, event := range events {
		filename := filepath.Join(outputDir, fmt.Sprintf("event_%02d.svg", index))

		// Render fully in memory first so a failure never leaves a
		// partial file behind.
		markup := RenderSVG(event, opts.LogoPath)

		if opts.DryRun {
			log.Info().Str("file", filename).Msg("DRY RUN: would create")
			continue
		}

		if err := os.WriteFile(filename, markup, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", filename, err)
		}

		log.Info().Str("file", filename).Str("title", event.Title).Msg("created event graphic")
	}

	contentFile := filepath.Join(outputDir, "content.txt")

	if opts.DryRun {
		log.Info().Str("file", contentFile).Msg("DRY RUN: would create")
		log.Info().Int("count", len(events)).Str("dir", outputDir).
			Msgf("DRY RUN: would generate %d SVG file(s) and content.txt", len(events))

		return nil
	}

	if err := os.WriteFile(contentFile, []byte(BuildContent(events)), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", contentFile, err)
	}

	log.Info().Int("count", len(events)).Str("dir", outputDir).
		Msgf("completed, generated %d SVG file(s) and content.txt", len(events))

	return nil
}
