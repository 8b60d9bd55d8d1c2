// Command audioflo aligns clustered story sentences with generated MIDI
// interpolations for a batch of stories.
//
// For every configured story it reads the cluster statistics and clustered
// sentences CSVs, derives the partition count of each transition from the
// interpolation files on disk, computes the bottleneck partition plan and
// fair-share media assignment, and writes the partition detail CSVs, story
// summary CSV, and MIDI mapping JSON.
//
// Configuration comes from the environment (optionally via a .env file):
//
//	AUDIOFLO_STORIES      comma-separated story names (required)
//	AUDIOFLO_CLUSTER_DIR  root of the cluster outputs (default "cluster_outputs")
//	AUDIOFLO_MELODY_DIR   root of the melody outputs (default "outputs/piano_melodies")
//	AUDIOFLO_OUTPUT_DIR   root of the mapping outputs (default "sentence_to_midi")
//	AUDIOFLO_TRANSITIONS  comma-separated transitions (default "1to2,2to3,3to4")
//	AUDIOFLO_DEBUG        enable debug logging
package main

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	charmlog "github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	audioflo "github.com/luckydeignan/audioFloInterpolationGenerator"
	"github.com/luckydeignan/audioFloInterpolationGenerator/types"
)

// Config is the environment configuration of the batch run.
type Config struct {
	Stories     []string `env:"AUDIOFLO_STORIES" envSeparator:","`
	ClusterDir  string   `env:"AUDIOFLO_CLUSTER_DIR" envDefault:"cluster_outputs"`
	MelodyDir   string   `env:"AUDIOFLO_MELODY_DIR" envDefault:"outputs/piano_melodies"`
	OutputDir   string   `env:"AUDIOFLO_OUTPUT_DIR" envDefault:"sentence_to_midi"`
	Transitions []string `env:"AUDIOFLO_TRANSITIONS" envSeparator:"," envDefault:"1to2,2to3,3to4"`
	Debug       bool     `env:"AUDIOFLO_DEBUG"`
}

func main() {
	// A missing .env file is fine; the environment may be set directly.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "parse config: %v\n", err)
		os.Exit(1)
	}

	logger := newConsoleLogger(cfg.Debug)
	if len(cfg.Stories) == 0 {
		logger.Fatal("no stories configured; set AUDIOFLO_STORIES")
	}

	aligner, err := audioflo.NewAligner(audioflo.WithLogger(logger))
	if err != nil {
		logger.Fatal("create aligner", "error", err)
	}

	p := &pipeline{cfg: cfg, logger: logger, aligner: aligner}
	if err := p.run(); err != nil {
		logger.Fatal("batch failed", "error", err)
	}
}

// consoleLogger adapts charmbracelet/log to types.Logger.
type consoleLogger struct {
	logger *charmlog.Logger
}

var _ types.Logger = (*consoleLogger)(nil)

func newConsoleLogger(debug bool) *consoleLogger {
	level := charmlog.InfoLevel
	if debug {
		level = charmlog.DebugLevel
	}

	return &consoleLogger{
		logger: charmlog.NewWithOptions(os.Stderr, charmlog.Options{
			ReportTimestamp: true,
			Level:           level,
		}),
	}
}

func (c *consoleLogger) Debug(msg string, keysAndValues ...any) {
	c.logger.Debug(msg, keysAndValues...)
}

func (c *consoleLogger) Info(msg string, keysAndValues ...any) {
	c.logger.Info(msg, keysAndValues...)
}

func (c *consoleLogger) Warn(msg string, keysAndValues ...any) {
	c.logger.Warn(msg, keysAndValues...)
}

func (c *consoleLogger) Error(msg string, keysAndValues ...any) {
	c.logger.Error(msg, keysAndValues...)
}

func (c *consoleLogger) Fatal(msg string, keysAndValues ...any) {
	c.logger.Fatal(msg, keysAndValues...)
}
