package freedict

// apiEntry is one element of the FreeDictionary response array
// (the API returns one entry per etymology).
type apiEntry struct {
	Word     string       `json:"word"`
	Meanings []apiMeaning `json:"meanings"`
}

type apiMeaning struct {
	PartOfSpeech string          `json:"partOfSpeech"`
	Definitions  []apiDefinition `json:"definitions"`
}

type apiDefinition struct {
	Definition string `json:"definition"`
	Example    string `json:"example"`
}
