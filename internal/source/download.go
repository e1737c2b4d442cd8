package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"time"
)

// maxErrorBody caps how much of a failed response is kept on HTTPError.
const maxErrorBody = 4 << 10

// HTTPError represents a non-success response from the remote host.
type HTTPError struct {
	URL        string
	StatusCode int
	Message    string
	Body       []byte
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("download %s: status %d: %s", e.URL, e.StatusCode, e.Message)
}

// IsRetryable returns true if the error should trigger a retry.
func (e *HTTPError) IsRetryable() bool {
	return e.StatusCode >= 500 || e.StatusCode == http.StatusTooManyRequests
}

// Download fetches url and writes the body to dst. It returns the number of
// bytes written by the successful attempt.
//
// Only HTTP error statuses are retried, so dst never sees a partial body
// followed by a second one.
func (c *Client) Download(ctx context.Context, url string, dst io.Writer) (int64, error) {
	var lastErr error
	backoff := c.retryBackoff

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			// Add jitter: backoff * (0.5 to 1.5)
			jitter := backoff/2 + time.Duration(rand.Int64N(int64(backoff)+1))
			c.logger.Debug("retrying download",
				"attempt", attempt,
				"backoff", jitter,
				"url", url,
			)

			select {
			case <-ctx.Done():
				return 0, ctx.Err()
			case <-time.After(jitter):
			}

			backoff *= 2
		}

		n, err := c.doDownload(ctx, url, dst)
		if err == nil {
			return n, nil
		}

		lastErr = err

		var httpErr *HTTPError
		if !errors.As(err, &httpErr) || !httpErr.IsRetryable() {
			return n, err
		}
	}

	if c.maxRetries == 0 {
		return 0, lastErr
	}
	return 0, fmt.Errorf("max retries exceeded: %w", lastErr)
}

func (c *Client) doDownload(ctx context.Context, url string, dst io.Writer) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return 0, &HTTPError{
			URL:        url,
			StatusCode: resp.StatusCode,
			Message:    http.StatusText(resp.StatusCode),
			Body:       body,
		}
	}

	n, err := io.Copy(dst, resp.Body)
	if err != nil {
		return n, fmt.Errorf("read response: %w", err)
	}

	c.logger.Debug("download complete",
		"url", url,
		"bytes", n,
		"content_length", resp.ContentLength,
		"duration", time.Since(start),
	)

	return n, nil
}
