package provider

// DictionaryResult is the structured result from a dictionary API provider.
type DictionaryResult struct {
	Word   string
	Senses []SenseResult
}

// SenseResult represents a single word sense from an external dictionary.
type SenseResult struct {
	Definition   string
	PartOfSpeech *string
	Example      *string
}

// FirstDefinition returns the first non-empty definition in provider order.
func (r *DictionaryResult) FirstDefinition() (SenseResult, bool) {
	if r == nil {
		return SenseResult{}, false
	}
	for _, s := range r.Senses {
		if s.Definition != "" {
			return s, true
		}
	}
	return SenseResult{}, false
}

// FrequencyResult is the word-frequency data returned by a frequency provider.
type FrequencyResult struct {
	Word string
	// PerMillion is nil when the provider has no frequency tag for the word.
	PerMillion *float64
}
