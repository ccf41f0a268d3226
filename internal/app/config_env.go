package app

import (
	"os"
	"strings"
	"time"
)

// ApplyEnvToConfig populates unset fields of cfg from environment
// variables. Explicit cfg values take precedence over env.
func ApplyEnvToConfig(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.AlbumURL == "" {
		cfg.AlbumURL = os.Getenv("ALBUM_URL")
	}
	if cfg.RelayURL == "" {
		cfg.RelayURL = os.Getenv("RELAY_URL")
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = os.Getenv("OUTPUT")
	}
	if cfg.PDFPath == "" {
		cfg.PDFPath = os.Getenv("OUTPUT_PDF")
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = os.Getenv("ALBUMGRID_UA")
	}
	if cfg.CacheDir == "" {
		cfg.CacheDir = os.Getenv("CACHE_DIR")
	}
	if cfg.Timeout == 0 {
		if v := strings.TrimSpace(os.Getenv("FETCH_TIMEOUT")); v != "" {
			if d, err := time.ParseDuration(v); err == nil {
				cfg.Timeout = d
			}
		}
	}
	if cfg.CacheMaxAge == 0 {
		if v := strings.TrimSpace(os.Getenv("CACHE_MAX_AGE")); v != "" {
			if d, err := time.ParseDuration(v); err == nil {
				cfg.CacheMaxAge = d
			}
		}
	}
}
