package domain

// Tier is the difficulty band assigned to a word from its frequency.
type Tier string

const (
	TierEasy   Tier = "EASY"
	TierMedium Tier = "MEDIUM"
	TierHard   Tier = "HARD"
)

func (t Tier) String() string { return string(t) }

func (t Tier) IsValid() bool {
	switch t {
	case TierEasy, TierMedium, TierHard:
		return true
	}
	return false
}

// Rank orders tiers by increasing rarity: Easy < Medium < Hard.
// Unknown values rank with Easy.
func (t Tier) Rank() int {
	switch t {
	case TierMedium:
		return 1
	case TierHard:
		return 2
	default:
		return 0
	}
}

// Marked reports whether words of this tier are highlighted and clickable.
func (t Tier) Marked() bool { return t == TierMedium || t == TierHard }

// Token is a lexical unit cut from an input sentence.
type Token struct {
	// Raw is the text as it appeared in the input, punctuation included.
	Raw string
	// Offset is the rune offset of Raw in the rendered output.
	Offset int
	// Key is NormalizeKey(Raw). Empty keys are never classified or indexed.
	Key string
}
