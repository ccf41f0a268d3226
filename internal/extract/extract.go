package extract

import (
	"regexp"
	"strconv"
)

// Photo is one accepted image candidate found in the album page markup.
// Width and Height are the pixel dimensions declared next to the URL in
// the embedded descriptor, not measured from the image itself.
type Photo struct {
	URL    string
	Width  int
	Height int
}

const (
	// HostPrefix is the fixed origin the album page embeds its image
	// descriptors under. Candidates on any other host are not descriptors.
	HostPrefix = "https://lh3.googleusercontent.com/"

	// MinDimension is the exclusive lower bound on both declared
	// dimensions. Thumbnails and icons embedded in the same markup sit at
	// or below this size.
	MinDimension = 300

	// MaxPhotos caps one extraction run. The grid has six slots; scanning
	// stops as soon as they are filled.
	MaxPhotos = 6
)

// descriptorRe matches one embedded descriptor: a bracketed triple of a
// quoted URL under HostPrefix followed by two decimal dimensions.
var descriptorRe = regexp.MustCompile(`\["(` + regexp.QuoteMeta(HostPrefix) + `[^"]*)",(\d+),(\d+)\]`)

// Extract scans page text left to right for image descriptors and returns
// up to MaxPhotos accepted photos in first-occurrence order. A candidate is
// accepted when both declared dimensions exceed MinDimension and its URL
// has not been accepted earlier in the same run. Candidates that fail to
// parse are skipped; malformed or empty input yields an empty result
// rather than an error. The seen-URL set is local to the call, so repeated
// or concurrent runs over the same text behave identically.
func Extract(sourceText string) []Photo {
	photos := make([]Photo, 0, MaxPhotos)
	seen := make(map[string]struct{}, MaxPhotos)
	rest := sourceText
	for len(photos) < MaxPhotos {
		m := descriptorRe.FindStringSubmatchIndex(rest)
		if m == nil {
			break
		}
		url := rest[m[2]:m[3]]
		w, werr := strconv.Atoi(rest[m[4]:m[5]])
		h, herr := strconv.Atoi(rest[m[6]:m[7]])
		rest = rest[m[1]:]
		if werr != nil || herr != nil {
			// Dimensions too large for int still count as unparseable.
			continue
		}
		if w <= MinDimension || h <= MinDimension {
			continue
		}
		if _, ok := seen[url]; ok {
			continue
		}
		seen[url] = struct{}{}
		photos = append(photos, Photo{URL: url, Width: w, Height: h})
	}
	return photos
}
