package analysis

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/wordlens/internal/config"
	"github.com/heartmarshall/wordlens/internal/domain"
	"github.com/heartmarshall/wordlens/internal/provider"
)

type frequencyProvider interface {
	FetchFrequency(ctx context.Context, word string) (*provider.FrequencyResult, error)
}

// Thresholds maps a frequency (occurrences per million words) to a tier.
type Thresholds struct {
	EasyAbove  float64
	MediumFrom float64
}

// DefaultThresholds returns the standard bands: f > 4.0 easy,
// 2.5 <= f <= 4.0 medium, f < 2.5 hard.
func DefaultThresholds() Thresholds {
	return Thresholds{EasyAbove: 4.0, MediumFrom: 2.5}
}

// ThresholdsFromConfig converts the difficulty section of the config.
func ThresholdsFromConfig(cfg config.DifficultyConfig) Thresholds {
	return Thresholds{EasyAbove: cfg.EasyAbove, MediumFrom: cfg.MediumFrom}
}

// TierFor returns the tier of a word with frequency f.
func (t Thresholds) TierFor(f float64) domain.Tier {
	switch {
	case f > t.EasyAbove:
		return domain.TierEasy
	case f >= t.MediumFrom:
		return domain.TierMedium
	default:
		return domain.TierHard
	}
}

// Classifier assigns a difficulty tier to a normalized key.
//
// It fails closed: when the frequency lookup errors or yields no frequency,
// the word is Easy. Errors are logged, never returned, so one unreachable
// word cannot abort the analysis of a sentence.
type Classifier struct {
	log        *slog.Logger
	freq       frequencyProvider
	thresholds Thresholds
}

// NewClassifier creates a Classifier.
func NewClassifier(logger *slog.Logger, freq frequencyProvider, thresholds Thresholds) *Classifier {
	return &Classifier{
		log:        logger.With("component", "classifier"),
		freq:       freq,
		thresholds: thresholds,
	}
}

// Classify returns the tier of key. An empty key is Easy without a lookup.
func (c *Classifier) Classify(ctx context.Context, key string) domain.Tier {
	if key == "" {
		return domain.TierEasy
	}

	result, err := c.freq.FetchFrequency(ctx, key)
	if err != nil {
		c.log.WarnContext(ctx, "frequency lookup failed, treating word as easy",
			slog.String("word", key),
			slog.String("error", err.Error()),
		)
		return domain.TierEasy
	}
	if result == nil || result.PerMillion == nil {
		return domain.TierEasy
	}

	return c.thresholds.TierFor(*result.PerMillion)
}
