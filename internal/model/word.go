package model

// WordRecord is one dictionary entry as stored in words.json.
type WordRecord struct {
	Translation   string        `json:"translation"`
	Phonetic      *string       `json:"phonetic"` // nil when the entry has no pronunciation
	WordClass     string        `json:"wordClass"`
	Meanings      []string      `json:"meanings"`
	AffixAnalysis []AffixPart   `json:"affixAnalysis"`
	SimilarWords  []SimilarWord `json:"similarWords"`
}

// AffixPart is a precomputed morpheme breakdown entry of a word.
type AffixPart struct {
	Type    AffixType `json:"type"`
	Part    string    `json:"part"`
	Meaning string    `json:"meaning"`
}

// SimilarWord is a contrastive note against a near synonym.
type SimilarWord struct {
	Word        string `json:"word"`
	Translation string `json:"translation"`
	Difference  string `json:"difference"`
}

// Clone returns a copy that shares no slices with r.
func (r WordRecord) Clone() WordRecord {
	out := r
	if r.Phonetic != nil {
		p := *r.Phonetic
		out.Phonetic = &p
	}
	out.Meanings = append([]string(nil), r.Meanings...)
	out.AffixAnalysis = append([]AffixPart(nil), r.AffixAnalysis...)
	out.SimilarWords = append([]SimilarWord(nil), r.SimilarWords...)
	if out.Meanings == nil {
		out.Meanings = []string{}
	}
	if out.AffixAnalysis == nil {
		out.AffixAnalysis = []AffixPart{}
	}
	if out.SimilarWords == nil {
		out.SimilarWords = []SimilarWord{}
	}
	return out
}
