package pagemeta

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Meta is page-level album metadata used to label the rendered grid.
type Meta struct {
	Title string
	Cover string
}

// FromHTML pulls the album title and cover image from page markup,
// preferring Open Graph tags over the document title. Unparseable input
// yields a zero Meta; the grid still renders without a heading.
func FromHTML(body []byte) Meta {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return Meta{}
	}
	var m Meta
	if v, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok {
		m.Title = strings.TrimSpace(v)
	}
	if m.Title == "" {
		m.Title = strings.TrimSpace(doc.Find("title").First().Text())
	}
	if v, ok := doc.Find(`meta[property="og:image"]`).Attr("content"); ok {
		m.Cover = strings.TrimSpace(v)
	}
	return m
}
