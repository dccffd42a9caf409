package analysis

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/heartmarshall/wordlens/internal/domain"
	"github.com/heartmarshall/wordlens/pkg/ctxutil"
)

// ClassifiedToken is a token together with its difficulty tier.
type ClassifiedToken struct {
	domain.Token
	Tier domain.Tier
}

// Result is the outcome of one analysis, in rendering order.
type Result struct {
	Tokens []ClassifiedToken
	// Rendered is the text the token offsets refer to: every token
	// followed by one space.
	Rendered string
}

// Tiers returns the tier of every token in order.
func (r *Result) Tiers() []domain.Tier {
	tiers := make([]domain.Tier, len(r.Tokens))
	for i, t := range r.Tokens {
		tiers[i] = t.Tier
	}
	return tiers
}

// Definition is what a click or a direct lookup produces.
type Definition struct {
	Word  string
	Text  string
	Found bool
}

// Service runs the analysis pipeline and answers clicks against a session.
type Service struct {
	log         *slog.Logger
	classifier  *Classifier
	definitions *DefinitionResolver
}

// NewService creates the analysis service.
func NewService(
	logger *slog.Logger,
	freq frequencyProvider,
	dict dictionaryProvider,
	thresholds Thresholds,
) *Service {
	return &Service{
		log:         logger.With("service", "analysis"),
		classifier:  NewClassifier(logger, freq, thresholds),
		definitions: NewDefinitionResolver(logger, dict),
	}
}

// Analyze tokenizes text, classifies every word and rebuilds the session's
// position index from scratch.
//
// Lookups run sequentially, once per distinct key within this call. The new
// index replaces the old one only once every word is classified. If ctx is
// cancelled midway the session is left with an empty index and ctx.Err()
// is returned.
func (s *Service) Analyze(ctx context.Context, sess *Session, text string) (*Result, error) {
	sess.analyzeMu.Lock()
	defer sess.analyzeMu.Unlock()

	tokens := Tokenize(text)
	idx := NewPositionIndex()
	tiers := make(map[string]domain.Tier)

	result := &Result{Tokens: make([]ClassifiedToken, 0, len(tokens))}
	var rendered strings.Builder

	for _, tok := range tokens {
		tier := domain.TierEasy
		if tok.Key != "" {
			t, seen := tiers[tok.Key]
			if !seen {
				t = s.classifier.Classify(ctx, tok.Key)
				tiers[tok.Key] = t
			}
			tier = t
		}

		if tier.Marked() {
			idx.Record(tok.Offset, tok.Key)
		}

		result.Tokens = append(result.Tokens, ClassifiedToken{Token: tok, Tier: tier})
		rendered.WriteString(tok.Raw)
		rendered.WriteByte(' ')
	}
	result.Rendered = rendered.String()

	if err := ctx.Err(); err != nil {
		sess.publish(NewPositionIndex(), nil)
		return nil, err
	}

	sess.publish(idx, result)

	s.log.InfoContext(ctx, "sentence analyzed",
		slog.String("session_id", sess.ID.String()),
		slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
		slog.Int("tokens", len(result.Tokens)),
		slog.Int("lookups", len(tiers)),
		slog.Int("marked", idx.Len()),
	)

	return result, nil
}

// Click resolves offset against the session's index and looks up the
// definition of the word found there. It returns ErrNoWordAtOffset when the
// offset does not fall on a medium or hard word.
func (s *Service) Click(ctx context.Context, sess *Session, offset int) (*Definition, error) {
	if offset < 0 {
		return nil, domain.NewValidationError("offset", "must be >= 0")
	}

	key, ok := sess.Index().Resolve(offset)
	if !ok {
		return nil, ErrNoWordAtOffset
	}

	return s.define(ctx, key), nil
}

// Define looks up the definition of an arbitrary word. The word is
// normalized first; a word with no letters is a validation error.
func (s *Service) Define(ctx context.Context, word string) (*Definition, error) {
	key := domain.NormalizeKey(word)
	if key == "" {
		return nil, domain.NewValidationError("word", "must contain letters")
	}
	return s.define(ctx, key), nil
}

// define never fails: every lookup error becomes the not-found message.
func (s *Service) define(ctx context.Context, key string) *Definition {
	text, err := s.definitions.Resolve(ctx, key)
	if err != nil {
		level := slog.LevelWarn
		if errors.Is(err, domain.ErrNotFound) {
			level = slog.LevelDebug
		}
		s.log.Log(ctx, level, "definition unavailable",
			slog.String("word", key),
			slog.String("error", err.Error()),
		)
		return &Definition{Word: key, Text: domain.DefinitionNotFoundMessage}
	}

	return &Definition{
		Word:  key,
		Text:  text,
		Found: text != domain.DefinitionNotFoundMessage,
	}
}
