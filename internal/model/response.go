package model

type SearchResponse struct {
	Success bool        `json:"success"`
	Word    string      `json:"word"`
	Data    *WordRecord `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

type SuggestionsResponse struct {
	Success     bool     `json:"success"`
	Suggestions []string `json:"suggestions"`
	Count       int      `json:"count"`
}

type AffixExamplesResponse struct {
	Success  bool     `json:"success"`
	Affix    string   `json:"affix"`
	Examples []string `json:"examples"`
	Count    int      `json:"count"`
}

type WordsResponse struct {
	Success bool     `json:"success"`
	Words   []string `json:"words"`
	Count   int      `json:"count"`
}

type HealthResponse struct {
	Status      string `json:"status"`
	WordCount   int    `json:"word_count"`
	PrefixCount int    `json:"prefix_count"`
	RootCount   int    `json:"root_count"`
}

// AnalysisResponse is the combined morphology classification of a raw word.
// Empty slots serialise as null.
type AnalysisResponse struct {
	Word   string       `json:"word"`
	Prefix *AffixRecord `json:"prefix"`
	Suffix *AffixRecord `json:"suffix"`
	Root   *AffixRecord `json:"root"`
}

// AffixExamples groups example words under one analysed part of a word.
type AffixExamples struct {
	Affix    string   `json:"affix"`
	Examples []string `json:"examples"`
}

type OverviewResponse struct {
	Success       bool            `json:"success"`
	Word          string          `json:"word"`
	Data          *WordRecord     `json:"data,omitempty"`
	AffixExamples []AffixExamples `json:"affix_examples"`
	Message       string          `json:"message,omitempty"`
}
