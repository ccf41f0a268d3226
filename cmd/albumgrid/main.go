package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/pixelfold/albumgrid/internal/app"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		albumURL    string
		relayURL    string
		outputPath  string
		pdfPath     string
		userAgent   string
		timeout     time.Duration
		cacheDir    string
		cacheMaxAge time.Duration
		cacheClear  bool
		configPath  string
		verbose     bool
	)

	flag.StringVar(&albumURL, "album", "", "Public photo-album page URL to fetch")
	flag.StringVar(&relayURL, "relay", "", "Optional fetch-relay prefix; the escaped album URL is appended")
	flag.StringVar(&outputPath, "output", "", "Path to write the JSON grid document (default stdout)")
	flag.StringVar(&pdfPath, "pdf", "", "Optional path to write a PDF contact-sheet preview of the grid")
	flag.StringVar(&userAgent, "ua", "", "Custom User-Agent for album page requests")
	flag.DurationVar(&timeout, "timeout", 0, "Per-request fetch timeout (e.g. 20s)")
	flag.StringVar(&cacheDir, "cache.dir", "", "Page cache directory; empty disables caching")
	flag.DurationVar(&cacheMaxAge, "cache.maxAge", 0, "Max age for cache entries before purge (e.g. 24h); 0 disables")
	flag.BoolVar(&cacheClear, "cache.clear", false, "Clear cache directory before run")
	flag.StringVar(&configPath, "config", "", "Path to YAML or JSON config file")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	cfg := app.Config{
		AlbumURL:    albumURL,
		RelayURL:    relayURL,
		OutputPath:  outputPath,
		PDFPath:     pdfPath,
		UserAgent:   userAgent,
		Timeout:     timeout,
		CacheDir:    cacheDir,
		CacheMaxAge: cacheMaxAge,
		CacheClear:  cacheClear,
		Verbose:     verbose,
	}

	// Precedence: flags, then env, then config file defaults.
	app.ApplyEnvToConfig(&cfg)
	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Error().Err(err).Str("path", configPath).Msg("config file unreadable")
			os.Exit(1)
		}
		app.ApplyFileConfig(&cfg, fc)
	}

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if err := run(cfg); err != nil {
		// Exit code policy: 2 when the album yields zero photos (the
		// document was still written with its unavailable marker), 1 for
		// everything else.
		if errors.Is(err, app.ErrNoPhotos) {
			log.Warn().Msg("album yielded no photos")
			os.Exit(2)
		}
		log.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
}

func run(cfg app.Config) error {
	ctx := context.Background()

	a, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	return a.Run(ctx)
}
