package fetcher

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Fetcher retrieves the source page with a hard timeout and a fixed
// User-Agent so the bot's traffic stays identifiable on the remote side.
type Fetcher struct {
	client    *http.Client
	userAgent string
}

func NewFetcher(userAgent string, timeout time.Duration) *Fetcher {
	return &Fetcher{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// GetHTML fetches url and returns the response body as text. Byte sequences
// that are not valid UTF-8 are substituted rather than treated as an error;
// a timeout, transport error or non-2xx status aborts with an error.
func (f *Fetcher) GetHTML(url string) (string, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to make HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("failed to fetch HTML, status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}
	return strings.ToValidUTF8(string(body), "�"), nil
}
