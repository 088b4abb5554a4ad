package service

import (
	"strings"

	"github.com/dongchun97/trans-test/internal/dataset"
	"github.com/dongchun97/trans-test/internal/model"
	"github.com/dongchun97/trans-test/internal/morphology"
)

// OverviewExampleLimit is how many examples Overview collects per analysed part.
const OverviewExampleLimit = 5

// WordLookup is the query surface over a loaded dataset. Every method is a
// read over immutable data; callers validate limits and empty inputs.
type WordLookup interface {
	Lookup(word string) (model.WordRecord, bool)
	Suggestions(prefix string, limit int) []string
	AffixExamples(affix string, limit int) []string
	AllWords() []string
	Exists(word string) bool
	Analyze(word string) morphology.Analysis
	Overview(word string) (model.WordRecord, []model.AffixExamples, bool)
	Stats() Stats
}

// Stats are the sizes of the in-memory indices.
type Stats struct {
	Words    int
	Prefixes int
	Roots    int
}

type wordLookup struct {
	ds *dataset.Dataset
}

func NewWordLookup(ds *dataset.Dataset) WordLookup {
	return &wordLookup{ds: ds}
}

func (s *wordLookup) Lookup(word string) (model.WordRecord, bool) {
	return s.ds.Lexicon.Get(word)
}

// Suggestions returns up to limit words starting with prefix, in lexicon
// order. Comparison is on the lowercase form.
func (s *wordLookup) Suggestions(prefix string, limit int) []string {
	suggestions := make([]string, 0)
	if limit <= 0 {
		return suggestions
	}

	prefix = strings.ToLower(prefix)
	s.ds.Lexicon.Each(func(word string) bool {
		if strings.HasPrefix(word, prefix) {
			suggestions = append(suggestions, word)
		}
		return len(suggestions) < limit
	})
	return suggestions
}

// AffixExamples returns the curated examples of a known affix key. For any
// other input it falls back to every lexicon word containing the affix with
// its hyphens removed. The fallback is a plain substring test and will
// report words where the letters merely occur inside the word.
func (s *wordLookup) AffixExamples(affix string, limit int) []string {
	examples := make([]string, 0)
	if limit <= 0 {
		return examples
	}

	if rec, ok := s.ds.Affixes.Get(affix); ok {
		if len(rec.Examples) > limit {
			return rec.Examples[:limit]
		}
		return append(examples, rec.Examples...)
	}

	clean := strings.ReplaceAll(affix, "-", "")
	s.ds.Lexicon.Each(func(word string) bool {
		if strings.Contains(word, clean) {
			examples = append(examples, word)
		}
		return len(examples) < limit
	})
	return examples
}

func (s *wordLookup) AllWords() []string {
	return s.ds.Lexicon.Words()
}

func (s *wordLookup) Exists(word string) bool {
	return s.ds.Lexicon.Exists(word)
}

// Analyze classifies the raw word against the catalog. Unlike Lookup it does
// not fold case.
func (s *wordLookup) Analyze(word string) morphology.Analysis {
	return s.ds.Matcher.Classify(word)
}

// Overview returns the word record together with examples for each part of
// its stored affix analysis. Parts without any example are left out.
func (s *wordLookup) Overview(word string) (model.WordRecord, []model.AffixExamples, bool) {
	rec, ok := s.ds.Lexicon.Get(word)
	if !ok {
		return model.WordRecord{}, nil, false
	}

	groups := make([]model.AffixExamples, 0, len(rec.AffixAnalysis))
	for _, part := range rec.AffixAnalysis {
		examples := s.AffixExamples(part.Part, OverviewExampleLimit)
		if len(examples) == 0 {
			continue
		}
		groups = append(groups, model.AffixExamples{Affix: part.Part, Examples: examples})
	}
	return rec, groups, true
}

func (s *wordLookup) Stats() Stats {
	return Stats{
		Words:    s.ds.Lexicon.Len(),
		Prefixes: s.ds.Affixes.Len(),
		Roots:    s.ds.Roots.Len(),
	}
}
