package job

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"
)

const (
	fetchTimeout = 30 * time.Second
	fetchRetries = 2
	fetchBackoff = 500 * time.Millisecond
	maxBodyBytes = 2 << 20
)

// Job boards frequently reject requests that do not look like a
// browser, so the fetcher sends a desktop Chrome profile.
var browserHeaders = map[string]string{
	"User-Agent":                "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8",
	"Accept-Language":           "en-US,en;q=0.5",
	"DNT":                       "1",
	"Connection":                "keep-alive",
	"Upgrade-Insecure-Requests": "1",
}

// Fetcher downloads job posting pages. Server errors and transport
// failures are retried a couple of times with a short constant
// backoff; client errors are not.
type Fetcher struct {
	client *http.Client
	log    *zap.Logger
}

func NewFetcher(log *zap.Logger) *Fetcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Fetcher{
		client: &http.Client{Timeout: fetchTimeout},
		log:    log,
	}
}

// Page returns the body of the page at rawURL, following redirects.
func (f *Fetcher) Page(ctx context.Context, rawURL string) (string, error) {
	var body string
	backoff := retry.WithMaxRetries(fetchRetries, retry.NewConstant(fetchBackoff))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return err
		}
		for k, v := range browserHeaders {
			req.Header.Set(k, v)
		}

		resp, err := f.client.Do(req)
		if err != nil {
			f.log.Debug("page fetch attempt failed", zap.String("url", rawURL), zap.Error(err))
			return retry.RetryableError(err)
		}
		defer resp.Body.Close()

		if resp.StatusCode >= http.StatusInternalServerError {
			f.log.Debug("page fetch got server error",
				zap.String("url", rawURL), zap.Int("status", resp.StatusCode))
			return retry.RetryableError(fmt.Errorf("job: fetch %s: status %d", rawURL, resp.StatusCode))
		}
		if resp.StatusCode >= http.StatusBadRequest {
			return fmt.Errorf("job: fetch %s: status %d", rawURL, resp.StatusCode)
		}

		b, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
		if err != nil {
			return retry.RetryableError(err)
		}
		body = string(b)
		return nil
	})
	return body, err
}
