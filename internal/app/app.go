package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/pixelfold/albumgrid/internal/cache"
	"github.com/pixelfold/albumgrid/internal/extract"
	"github.com/pixelfold/albumgrid/internal/fetch"
	"github.com/pixelfold/albumgrid/internal/layout"
	"github.com/pixelfold/albumgrid/internal/pagemeta"
)

// ErrNoPhotos is returned when the run ends with zero accepted photos,
// either because the page could not be fetched or because it contained no
// usable descriptors. The hand-off document is still written with its
// unavailable marker set; the sentinel only drives the process exit code.
var ErrNoPhotos = errors.New("no photos extracted")

const (
	defaultUserAgent = "albumgrid/1.0 (+https://github.com/pixelfold/albumgrid)"
	defaultTimeout   = 20 * time.Second
	unavailableMsg   = "Photos are unavailable right now."
)

// Entry is one photo with its assigned grid slot, in acceptance order.
type Entry struct {
	URL     string           `json:"url"`
	Width   int              `json:"width"`
	Height  int              `json:"height"`
	Size    layout.SizeClass `json:"size"`
	Overlay bool             `json:"overlay"`
}

// Document is the ordered hand-off to the presentation layer. A consumer
// renders one element per entry, using Size for the size treatment and
// Overlay to decide whether to draw caption text; when Unavailable is set
// it renders Message instead of an empty grid.
type Document struct {
	Title       string  `json:"title,omitempty"`
	Cover       string  `json:"cover,omitempty"`
	SourceURL   string  `json:"source_url"`
	Unavailable bool    `json:"unavailable"`
	Message     string  `json:"message,omitempty"`
	Entries     []Entry `json:"entries"`
}

type App struct {
	cfg       Config
	client    *fetch.Client
	pageCache *cache.PageCache
}

func New(cfg Config) (*App, error) {
	if cfg.AlbumURL == "" {
		return nil, errors.New("album URL is required")
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	a := &App{cfg: cfg}
	if cfg.CacheDir != "" {
		if cfg.CacheClear {
			_ = cache.ClearDir(cfg.CacheDir)
		}
		if cfg.CacheMaxAge > 0 {
			// Ignore purge errors to avoid failing startup on a stale dir
			_, _ = cache.PurgeByAge(cfg.CacheDir, cfg.CacheMaxAge)
		}
		a.pageCache = &cache.PageCache{Dir: cfg.CacheDir}
	}
	a.client = &fetch.Client{
		UserAgent:         cfg.UserAgent,
		Relay:             cfg.RelayURL,
		MaxAttempts:       3,
		PerRequestTimeout: cfg.Timeout,
		Cache:             a.pageCache,
	}
	return a, nil
}

// Run fetches the album page, extracts photos, assigns the grid, and
// writes the hand-off document. Fetch failure degrades to the unavailable
// state rather than failing the pipeline.
func (a *App) Run(ctx context.Context) error {
	doc := a.buildDocument(ctx)

	if err := a.writeDocument(doc); err != nil {
		return err
	}
	if a.cfg.PDFPath != "" {
		if err := writeContactSheet(doc, a.cfg.PDFPath); err != nil {
			return fmt.Errorf("write contact sheet: %w", err)
		}
		log.Info().Str("out", a.cfg.PDFPath).Msg("wrote contact sheet")
	}
	if doc.Unavailable {
		return ErrNoPhotos
	}
	return nil
}

func (a *App) buildDocument(ctx context.Context) Document {
	doc := Document{SourceURL: a.cfg.AlbumURL, Entries: []Entry{}}

	body, _, err := a.client.Get(ctx, a.cfg.AlbumURL)
	if err != nil {
		log.Warn().Err(err).Str("album", a.cfg.AlbumURL).Msg("fetch failed; degrading to unavailable state")
		doc.Unavailable = true
		doc.Message = unavailableMsg
		return doc
	}

	meta := pagemeta.FromHTML(body)
	doc.Title = meta.Title
	doc.Cover = meta.Cover

	photos := extract.Extract(string(body))
	if len(photos) == 0 {
		log.Warn().Str("album", a.cfg.AlbumURL).Msg("no photo descriptors found in page")
		doc.Unavailable = true
		doc.Message = unavailableMsg
		return doc
	}

	slots, err := layout.Assign(len(photos))
	if err != nil {
		// Unreachable while the extractor caps at layout.MaxSlots; treat a
		// violation as a bug, not an unavailable album.
		log.Error().Err(err).Int("count", len(photos)).Msg("layout assignment rejected photo count")
		doc.Unavailable = true
		doc.Message = unavailableMsg
		return doc
	}

	for i, p := range photos {
		doc.Entries = append(doc.Entries, Entry{
			URL:     p.URL,
			Width:   p.Width,
			Height:  p.Height,
			Size:    slots[i].Size,
			Overlay: slots[i].Overlay,
		})
	}
	log.Info().Int("count", len(doc.Entries)).Str("title", doc.Title).Msg("album grid assembled")
	return doc
}

func (a *App) writeDocument(doc Document) error {
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	b = append(b, '\n')
	if a.cfg.OutputPath == "" {
		_, err = os.Stdout.Write(b)
		return err
	}
	if err := os.WriteFile(a.cfg.OutputPath, b, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	log.Info().Str("out", a.cfg.OutputPath).Msg("wrote output")
	return nil
}
