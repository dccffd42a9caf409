package analysis

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/wordlens/internal/domain"
	"github.com/heartmarshall/wordlens/internal/provider"
)

type dictionaryProvider interface {
	FetchEntry(ctx context.Context, word string) (*provider.DictionaryResult, error)
}

// DefinitionResolver turns a normalized key into a human-readable definition.
type DefinitionResolver struct {
	log  *slog.Logger
	dict dictionaryProvider
}

// NewDefinitionResolver creates a DefinitionResolver.
func NewDefinitionResolver(logger *slog.Logger, dict dictionaryProvider) *DefinitionResolver {
	return &DefinitionResolver{
		log:  logger.With("component", "definitions"),
		dict: dict,
	}
}

// Resolve returns the first definition of key.
//
// A word unknown to the dictionary yields an error wrapping
// domain.ErrNotFound; transport failures are returned wrapped as well. A
// known word without any definition text yields
// domain.DefinitionNotFoundMessage as a normal result.
func (r *DefinitionResolver) Resolve(ctx context.Context, key string) (string, error) {
	result, err := r.dict.FetchEntry(ctx, key)
	if err != nil {
		return "", fmt.Errorf("fetch definition %q: %w", key, err)
	}
	if result == nil {
		return "", fmt.Errorf("definition %q: %w", key, domain.ErrNotFound)
	}

	sense, ok := result.FirstDefinition()
	if !ok {
		r.log.DebugContext(ctx, "entry has no definitions", slog.String("word", key))
		return domain.DefinitionNotFoundMessage, nil
	}
	return sense.Definition, nil
}
