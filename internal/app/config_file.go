package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig represents the single-file configuration schema. Nested
// sections map naturally to flags and env.
type FileConfig struct {
	Album  string `yaml:"album" json:"album"`
	Relay  string `yaml:"relay" json:"relay"`
	Output string `yaml:"output" json:"output"`
	PDF    string `yaml:"pdf" json:"pdf"`

	UA string `yaml:"ua" json:"ua"`
	// Durations are Go duration strings ("20s", "24h"); parsed on overlay.
	Timeout string `yaml:"timeout" json:"timeout"`

	Cache struct {
		Dir    string `yaml:"dir" json:"dir"`
		MaxAge string `yaml:"maxAge" json:"maxAge"`
		Clear  bool   `yaml:"clear" json:"clear"`
	} `yaml:"cache" json:"cache"`

	Verbose bool `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig overlays values from FileConfig into cfg for any fields
// that are currently unset/zero in cfg. Flags should already have been
// parsed; this lets file config supply defaults while preserving explicit
// flags and env.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	if cfg.AlbumURL == "" {
		cfg.AlbumURL = fc.Album
	}
	if cfg.RelayURL == "" {
		cfg.RelayURL = fc.Relay
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = fc.Output
	}
	if cfg.PDFPath == "" {
		cfg.PDFPath = fc.PDF
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = fc.UA
	}
	if cfg.Timeout == 0 && fc.Timeout != "" {
		if d, err := time.ParseDuration(fc.Timeout); err == nil {
			cfg.Timeout = d
		}
	}
	if cfg.CacheDir == "" {
		cfg.CacheDir = fc.Cache.Dir
	}
	if cfg.CacheMaxAge == 0 && fc.Cache.MaxAge != "" {
		if d, err := time.ParseDuration(fc.Cache.MaxAge); err == nil {
			cfg.CacheMaxAge = d
		}
	}
	if !cfg.CacheClear {
		cfg.CacheClear = fc.Cache.Clear
	}
	if !cfg.Verbose {
		cfg.Verbose = fc.Verbose
	}
}
