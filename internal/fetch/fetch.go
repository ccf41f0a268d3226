package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/transform"

	"github.com/pixelfold/albumgrid/internal/cache"
)

// Client wraps http.Client with timeouts, limited retry on transient
// errors, and optional relay and disk-cache support for album page fetches.
type Client struct {
	HTTPClient *http.Client
	UserAgent  string
	// Relay, when set, is prefixed to the escaped target URL before the
	// request is issued. The original front end fetched album pages through
	// a third-party relay to sidestep cross-origin limits; a native client
	// does not need one, but deployments behind a relay stay supported.
	// Cache entries are keyed by the target URL, never the relay URL.
	Relay string
	// MaxAttempts includes the initial attempt. Minimum 1.
	MaxAttempts int
	// PerRequestTimeout bounds each request.
	PerRequestTimeout time.Duration
	// Optional on-disk cache for page bodies and revalidation headers.
	Cache *cache.PageCache
	// If true, bypass cache reads entirely and fetch fresh (no conditional
	// headers), but still save the latest response to cache.
	BypassCache bool
	// RedirectMaxHops caps redirect following to avoid loops. Zero means
	// default (5).
	RedirectMaxHops int
}

func (c *Client) getHTTPClient() *http.Client {
	if c.HTTPClient != nil {
		// Clone to attach our redirect policy without mutating caller's client
		base := *c.HTTPClient
		base.CheckRedirect = c.checkRedirectFunc()
		return &base
	}
	return &http.Client{Timeout: c.PerRequestTimeout, CheckRedirect: c.checkRedirectFunc()}
}

// requestURL maps the target album URL through the relay when configured.
func (c *Client) requestURL(target string) string {
	if strings.TrimSpace(c.Relay) == "" {
		return target
	}
	return c.Relay + url.QueryEscape(target)
}

// Get issues a GET for the target URL and returns the body decoded to
// UTF-8 together with the response content type. Transient errors (5xx,
// deadline) are retried with linear backoff up to MaxAttempts.
func (c *Client) Get(ctx context.Context, target string) ([]byte, string, error) {
	// If cache exists, attempt a conditional request
	var etag, lastMod string
	if c.Cache != nil && !c.BypassCache {
		if meta, err := c.Cache.LoadMeta(ctx, target); err == nil && meta != nil {
			etag = meta.ETag
			lastMod = meta.LastModified
		}
	}
	attempts := c.MaxAttempts
	if attempts <= 0 {
		attempts = 1
	}
	var lastErr error
	for i := 0; i < attempts; i++ {
		body, ct, newEtag, newLastMod, status, err := c.tryOnce(ctx, target, etag, lastMod)
		if err == nil {
			if c.Cache != nil && status == http.StatusOK {
				_ = c.Cache.Save(ctx, target, ct, newEtag, newLastMod, body)
			}
			if status == http.StatusNotModified && c.Cache != nil {
				if cached, err := c.Cache.LoadBody(ctx, target); err == nil {
					return decodeToUTF8(cached, ct), ct, nil
				}
			}
			return decodeToUTF8(body, ct), ct, nil
		}
		if !isTransient(err) || i == attempts-1 {
			return nil, "", err
		}
		lastErr = err
		time.Sleep(time.Duration(i+1) * 200 * time.Millisecond)
	}
	if lastErr == nil {
		lastErr = errors.New("unknown error")
	}
	return nil, "", lastErr
}

func (c *Client) tryOnce(ctx context.Context, target, etag, lastMod string) ([]byte, string, string, string, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.requestURL(target), nil)
	if err != nil {
		return nil, "", "", "", 0, fmt.Errorf("new request: %w", err)
	}
	// Reject non-HTTP(S) schemes early
	if req.URL == nil || !isHTTPScheme(req.URL) {
		return nil, "", "", "", 0, fmt.Errorf("unsupported URL scheme: %q", req.URL.String())
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	if etag != "" {
		req.Header.Set("If-None-Match", etag)
	}
	if lastMod != "" {
		req.Header.Set("If-Modified-Since", lastMod)
	}

	httpClient := c.getHTTPClient()
	if c.PerRequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(req.Context(), c.PerRequestTimeout)
		defer cancel()
		req = req.WithContext(ctx)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, "", "", "", 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 && resp.StatusCode <= 599 {
		return nil, "", "", "", resp.StatusCode, fmt.Errorf("server error: %d", resp.StatusCode)
	}
	if resp.StatusCode == http.StatusNotModified {
		// 304: no body expected; return no error with status 304
		return nil, resp.Header.Get("Content-Type"), resp.Header.Get("ETag"), resp.Header.Get("Last-Modified"), resp.StatusCode, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", "", "", resp.StatusCode, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	if !isAllowedHTMLContentType(contentType) {
		return nil, "", "", "", resp.StatusCode, fmt.Errorf("unsupported content type: %s", contentType)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", "", "", resp.StatusCode, fmt.Errorf("read body: %w", err)
	}
	return b, contentType, resp.Header.Get("ETag"), resp.Header.Get("Last-Modified"), resp.StatusCode, nil
}

// decodeToUTF8 converts the body to UTF-8 using the declared or sniffed
// charset so the descriptor scan always sees UTF-8 text. On any decode
// problem the raw bytes are returned unchanged.
func decodeToUTF8(body []byte, contentType string) []byte {
	if len(body) == 0 {
		return body
	}
	e, _, _ := charset.DetermineEncoding(body, contentType)
	if e == nil {
		return body
	}
	out, _, err := transform.Bytes(e.NewDecoder(), body)
	if err != nil {
		return body
	}
	return out
}

func isTransient(err error) bool {
	// Treat HTTP 5xx and context deadline as transient.
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	return strings.Contains(err.Error(), "server error:")
}

func (c *Client) checkRedirectFunc() func(req *http.Request, via []*http.Request) error {
	max := c.RedirectMaxHops
	if max <= 0 {
		max = 5
	}
	return func(req *http.Request, via []*http.Request) error {
		if len(via) >= max {
			return errors.New("too many redirects")
		}
		// Only allow http/https during redirects
		if req.URL == nil || !isHTTPScheme(req.URL) {
			return errors.New("redirect to unsupported scheme")
		}
		return nil
	}
}

func isHTTPScheme(u *url.URL) bool {
	if u == nil {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	return scheme == "http" || scheme == "https"
}

func isAllowedHTMLContentType(ct string) bool {
	ct = strings.ToLower(strings.TrimSpace(ct))
	// allow text/html variants and application/xhtml+xml
	return strings.HasPrefix(ct, "text/html") || strings.HasPrefix(ct, "application/xhtml+xml")
}
