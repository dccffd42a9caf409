package freedict

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/heartmarshall/wordlens/internal/config"
	"github.com/heartmarshall/wordlens/internal/provider"
)

// DefaultBaseURL is the public FreeDictionary endpoint.
const DefaultBaseURL = "https://api.dictionaryapi.dev/api/v2/entries/en"

// Provider fetches dictionary data from the FreeDictionary API.
type Provider struct {
	baseURL    string
	retryDelay time.Duration
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider from the dictionary provider settings.
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
		log:        logger.With("adapter", "freedict"),
	}
}

// FetchEntry fetches a dictionary entry for the given word.
// Returns nil, nil if the word is not found (HTTP 404).
func (p *Provider) FetchEntry(ctx context.Context, word string) (*provider.DictionaryResult, error) {
	reqURL := p.baseURL + "/" + url.PathEscape(word)

	p.log.DebugContext(ctx, "freedict request", slog.String("word", word))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("freedict: create request: %w", err)
	}

	resp, err := p.doWithRetry(ctx, req, word)
	if err != nil {
		p.log.ErrorContext(ctx, "freedict request failed", slog.String("word", word), slog.String("error", err.Error()))
		return nil, fmt.Errorf("freedict: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("freedict: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("freedict: read body: %w", err)
	}

	var entries []apiEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("freedict: decode json: %w", err)
	}

	result := mapAPIResponse(entries)

	p.log.DebugContext(ctx, "freedict response",
		slog.String("word", word),
		slog.Int("senses", len(result.Senses)),
	)

	return result, nil
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
	p.log.WarnContext(ctx, "freedict retry", slog.String("word", word), slog.String("reason", reason))

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

// mapAPIResponse flattens all entries into one result, keeping senses in
// response order so the first definition stays first.
func mapAPIResponse(entries []apiEntry) *provider.DictionaryResult {
	result := &provider.DictionaryResult{Senses: []provider.SenseResult{}}
	if len(entries) == 0 {
		return result
	}

	result.Word = entries[0].Word

	for _, entry := range entries {
		for _, meaning := range entry.Meanings {
			for _, def := range meaning.Definitions {
				sense := provider.SenseResult{Definition: def.Definition}
				if meaning.PartOfSpeech != "" {
					pos := meaning.PartOfSpeech
					sense.PartOfSpeech = &pos
				}
				if def.Example != "" {
					ex := def.Example
					sense.Example = &ex
				}
				result.Senses = append(result.Senses, sense)
			}
		}
	}

	return result
}
