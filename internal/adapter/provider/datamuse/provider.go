package datamuse

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/wordlens/internal/config"
	"github.com/heartmarshall/wordlens/internal/provider"
)

// DefaultBaseURL is the public Datamuse endpoint.
const DefaultBaseURL = "https://api.datamuse.com"

const frequencyTagPrefix = "f:"

// Provider looks up word frequencies (occurrences per million words) in the
// Datamuse API.
type Provider struct {
	baseURL    string
	retryDelay time.Duration
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider from the frequency provider settings.
// An empty BaseURL falls back to DefaultBaseURL.
func NewProvider(cfg config.ProviderConfig, logger *slog.Logger) *Provider {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Provider{
		baseURL:    baseURL,
		retryDelay: cfg.RetryDelay,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger.With("adapter", "datamuse"),
	}
}

// FetchFrequency returns the frequency of word. PerMillion is nil when the
// response carries no frequency tag. Any non-200 status is an error.
func (p *Provider) FetchFrequency(ctx context.Context, word string) (*provider.FrequencyResult, error) {
	q := url.Values{}
	q.Set("sp", word)
	q.Set("md", "f")
	reqURL := p.baseURL + "/words?" + q.Encode()

	p.log.DebugContext(ctx, "datamuse request", slog.String("word", word))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("datamuse: create request: %w", err)
	}

	resp, err := p.doWithRetry(ctx, req, word)
	if err != nil {
		return nil, fmt.Errorf("datamuse: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("datamuse: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("datamuse: read body: %w", err)
	}

	var words []apiWord
	if err := json.Unmarshal(body, &words); err != nil {
		return nil, fmt.Errorf("datamuse: decode json: %w", err)
	}

	freq, err := firstFrequency(words)
	if err != nil {
		return nil, fmt.Errorf("datamuse: %w", err)
	}

	result := &provider.FrequencyResult{Word: word, PerMillion: freq}
	if freq != nil {
		p.log.DebugContext(ctx, "datamuse response",
			slog.String("word", word),
			slog.Float64("frequency", *freq),
		)
	}
	return result, nil
}

// firstFrequency returns the value of the first "f:" tag, scanning results
// and their tags in response order. Only that tag is considered.
func firstFrequency(words []apiWord) (*float64, error) {
	for _, w := range words {
		for _, tag := range w.Tags {
			raw, ok := strings.CutPrefix(tag, frequencyTagPrefix)
			if !ok {
				continue
			}
			f, err := strconv.ParseFloat(raw, 64)
			if err != nil || math.IsNaN(f) || f < 0 {
				return nil, fmt.Errorf("invalid frequency tag %q", tag)
			}
			return &f, nil
		}
	}
	return nil, nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (p *Provider) doWithRetry(ctx context.Context, req *http.Request, word string) (*http.Response, error) {
	resp, err := p.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry || ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	p.log.WarnContext(ctx, "datamuse retry", slog.String("word", word), slog.String("reason", reason))

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(p.retryDelay):
	}

	return p.httpClient.Do(req)
}
