package datamuse

// apiWord is one element of the Datamuse /words response array.
// With md=f the tags carry the frequency as "f:<per-million>".
type apiWord struct {
	Word  string   `json:"word"`
	Score int      `json:"score"`
	Tags  []string `json:"tags"`
}
