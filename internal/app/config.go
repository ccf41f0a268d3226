package app

import "time"

// Config holds runtime configuration for the application.
type Config struct {
	// AlbumURL is the public photo-album page to fetch.
	AlbumURL string
	// RelayURL, when set, is prefixed to the escaped album URL before the
	// fetch (third-party fetch relay support).
	RelayURL string
	// OutputPath receives the JSON hand-off document; empty means stdout.
	OutputPath string
	// PDFPath, when set, additionally writes a contact-sheet preview of
	// the computed grid.
	PDFPath string

	UserAgent string
	Timeout   time.Duration

	CacheDir    string
	CacheMaxAge time.Duration
	CacheClear  bool

	Verbose bool
}
