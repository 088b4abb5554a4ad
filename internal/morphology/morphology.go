// Package morphology classifies which prefix, suffix and root of a catalog
// apply to a word.
//
// Each slot holds at most one record. When several records of the same type
// match, the one appearing last in the catalog wins; no length or specificity
// tie-break is applied. Matching is case-sensitive on the word as given.
package morphology

import (
	"strings"

	"github.com/dongchun97/trans-test/internal/model"
)

// Analysis is the classification result. A nil slot means no record matched.
type Analysis struct {
	Word   string
	Prefix *model.AffixRecord
	Suffix *model.AffixRecord
	Root   *model.AffixRecord
}

// Response converts the analysis to its wire shape.
func (a Analysis) Response() model.AnalysisResponse {
	return model.AnalysisResponse{
		Word:   a.Word,
		Prefix: a.Prefix,
		Suffix: a.Suffix,
		Root:   a.Root,
	}
}

// Classify scans catalog once in order. A prefix record matches when word
// starts with its literal, a suffix record when word ends with it and a root
// record when word contains it. Later matches overwrite earlier ones.
func Classify(word string, catalog []model.AffixRecord) Analysis {
	res := Analysis{Word: word}
	for i := range catalog {
		rec := catalog[i]
		lit := rec.MatchLiteral()
		if lit == "" {
			continue
		}
		switch rec.Type {
		case model.AffixPrefix:
			if strings.HasPrefix(word, lit) {
				res.Prefix = &rec
			}
		case model.AffixSuffix:
			if strings.HasSuffix(word, lit) {
				res.Suffix = &rec
			}
		case model.AffixRoot:
			if strings.Contains(word, lit) {
				res.Root = &rec
			}
		}
	}
	return res
}
