package analysis

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/heartmarshall/wordlens/internal/provider"
)

// ---------------------------------------------------------------------------
// Manual mocks (moq-style with func fields)
// ---------------------------------------------------------------------------

type mockFrequencyProvider struct {
	FetchFrequencyFunc func(ctx context.Context, word string) (*provider.FrequencyResult, error)

	mu    sync.Mutex
	calls []string
}

func (m *mockFrequencyProvider) FetchFrequency(ctx context.Context, word string) (*provider.FrequencyResult, error) {
	m.mu.Lock()
	m.calls = append(m.calls, word)
	m.mu.Unlock()
	return m.FetchFrequencyFunc(ctx, word)
}

func (m *mockFrequencyProvider) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

type mockDictionaryProvider struct {
	FetchEntryFunc func(ctx context.Context, word string) (*provider.DictionaryResult, error)
}

func (m *mockDictionaryProvider) FetchEntry(ctx context.Context, word string) (*provider.DictionaryResult, error) {
	return m.FetchEntryFunc(ctx, word)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func freq(f float64) *provider.FrequencyResult {
	return &provider.FrequencyResult{PerMillion: &f}
}

// frequencyTable answers from a fixed word -> frequency map; unknown words
// have no frequency tag.
func frequencyTable(table map[string]float64) *mockFrequencyProvider {
	return &mockFrequencyProvider{
		FetchFrequencyFunc: func(_ context.Context, word string) (*provider.FrequencyResult, error) {
			if f, ok := table[word]; ok {
				return freq(f), nil
			}
			return &provider.FrequencyResult{Word: word}, nil
		},
	}
}

func dictionaryWith(defs map[string]string) *mockDictionaryProvider {
	return &mockDictionaryProvider{
		FetchEntryFunc: func(_ context.Context, word string) (*provider.DictionaryResult, error) {
			def, ok := defs[word]
			if !ok {
				return nil, nil
			}
			return &provider.DictionaryResult{
				Word:   word,
				Senses: []provider.SenseResult{{Definition: def}},
			}, nil
		},
	}
}
