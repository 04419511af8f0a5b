package scraper

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/yanqian/calorie-advisor/pkg/errors"
	"github.com/yanqian/calorie-advisor/pkg/metrics"
)

const (
	DefaultAcceptLanguage = "en-US,en;q=0.9"
	DefaultTimeout        = 10 * time.Second

	maxBodyBytes = 2 << 20 // 2 MiB
)

// DefaultUserAgents is the browser pool rotated across requests.
var DefaultUserAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/58.0.3029.110 Safari/537.3",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_12_6) AppleWebKit/603.3.8 (KHTML, like Gecko) Version/10.1.2 Safari/603.3.8",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:55.0) Gecko/20100101 Firefox/55.0",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/74.0.3729.169 Safari/537.36",
	"Mozilla/5.0 (X11; Ubuntu; Linux x86_64; rv:88.0) Gecko/20100101 Firefox/88.0",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_14_5) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/12.1.1 Safari/605.1.15",
	"Mozilla/5.0 (Windows NT 6.1; WOW64; Trident/7.0; AS; rv:11.0) like Gecko",
	"Mozilla/5.0 (Windows NT 6.1; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/43.0.2357.130 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/88.0.4324.150 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
	"Mozilla/5.0 (Windows NT 6.3; Win64; x64; rv:93.0) Gecko/20100101 Firefox/93.0",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.114 Safari/537.36",
}

// Config controls outbound page requests.
type Config struct {
	Timeout        time.Duration
	AcceptLanguage string
	UserAgents     []string
}

// Fetcher issues GET requests that look like a regular browser visit.
type Fetcher struct {
	httpClient     *http.Client
	acceptLanguage string
	userAgents     []string
	pick           func(n int) int
}

// NewFetcher builds a fetcher; zero config values fall back to defaults.
func NewFetcher(cfg Config) *Fetcher {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	lang := strings.TrimSpace(cfg.AcceptLanguage)
	if lang == "" {
		lang = DefaultAcceptLanguage
	}
	agents := cfg.UserAgents
	if len(agents) == 0 {
		agents = DefaultUserAgents
	}
	return &Fetcher{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		acceptLanguage: lang,
		userAgents:     agents,
		pick:           rand.Intn,
	}
}

// Fetch returns the body of url. Transport failures and non-2xx statuses are
// reported as network_error; nothing is retried.
func (f *Fetcher) Fetch(ctx context.Context, url string, headers http.Header) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", apperrors.Wrap(apperrors.CodeNetwork, "build page request", err)
	}
	for key, values := range headers {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	req.Header.Set("User-Agent", f.userAgent())
	req.Header.Set("Accept-Language", f.acceptLanguage)

	start := time.Now()
	resp, err := f.httpClient.Do(req)
	metrics.PageFetchLatency.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.PageFetchTotal.WithLabelValues("error").Inc()
		return "", apperrors.Wrap(apperrors.CodeNetwork, "page request failed", err)
	}
	defer resp.Body.Close()
	metrics.PageFetchTotal.WithLabelValues(strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", apperrors.Wrap(apperrors.CodeNetwork, fmt.Sprintf("page request error: status=%d url=%s", resp.StatusCode, url), nil)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	if err != nil {
		return "", apperrors.Wrap(apperrors.CodeNetwork, "read page body", err)
	}
	if len(body) > maxBodyBytes {
		return "", apperrors.Wrap(apperrors.CodeNetwork, fmt.Sprintf("page body exceeds %d bytes: url=%s", maxBodyBytes, url), nil)
	}
	return string(body), nil
}

func (f *Fetcher) userAgent() string {
	return f.userAgents[f.pick(len(f.userAgents))]
}
