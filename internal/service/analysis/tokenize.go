package analysis

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/wordlens/internal/domain"
)

const wordSeparator = "--"

// Tokenize splits text into tokens in rendering order.
//
// Text is split on single spaces. A fragment containing "--" is split again
// on "--" and only its non-empty parts are kept. Other fragments are kept
// as-is, so consecutive spaces yield empty tokens (with empty keys).
// Trailing empty fragments are dropped, so trailing spaces produce nothing.
//
// Each token is rendered followed by one space; Offset is the rune offset
// of the token in that rendering.
func Tokenize(text string) []domain.Token {
	fragments := strings.Split(text, " ")
	for len(fragments) > 0 && fragments[len(fragments)-1] == "" {
		fragments = fragments[:len(fragments)-1]
	}

	tokens := make([]domain.Token, 0, len(fragments))
	offset := 0
	emit := func(raw string) {
		tokens = append(tokens, domain.Token{
			Raw:    raw,
			Offset: offset,
			Key:    domain.NormalizeKey(raw),
		})
		offset += utf8.RuneCountInString(raw) + 1
	}

	for _, fragment := range fragments {
		if !strings.Contains(fragment, wordSeparator) {
			emit(fragment)
			continue
		}
		for _, part := range strings.Split(fragment, wordSeparator) {
			if part != "" {
				emit(part)
			}
		}
	}
	return tokens
}
