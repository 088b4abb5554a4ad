package morphology

import (
	"strings"

	aho "github.com/petar-dambovaliev/aho-corasick"

	"github.com/dongchun97/trans-test/internal/model"
)

// Matcher is a precompiled form of Classify for a fixed catalog. Root
// literals are compiled into an Aho-Corasick automaton so a word is scanned
// once regardless of how many roots the catalog holds.
type Matcher struct {
	catalog  []model.AffixRecord
	prefixes []int // catalog indices, in catalog order
	suffixes []int

	roots     aho.AhoCorasick
	rootOwner []int // pattern index -> last catalog index with that literal
	hasRoots  bool
}

// NewMatcher builds a matcher over a private copy of catalog.
func NewMatcher(catalog []model.AffixRecord) *Matcher {
	m := &Matcher{catalog: make([]model.AffixRecord, len(catalog))}
	copy(m.catalog, catalog)

	var patterns []string
	patternIdx := make(map[string]int)

	for i, rec := range m.catalog {
		lit := rec.MatchLiteral()
		if lit == "" {
			continue
		}
		switch rec.Type {
		case model.AffixPrefix:
			m.prefixes = append(m.prefixes, i)
		case model.AffixSuffix:
			m.suffixes = append(m.suffixes, i)
		case model.AffixRoot:
			if p, ok := patternIdx[lit]; ok {
				m.rootOwner[p] = i
				continue
			}
			patternIdx[lit] = len(patterns)
			patterns = append(patterns, lit)
			m.rootOwner = append(m.rootOwner, i)
		}
	}

	if len(patterns) > 0 {
		// The zero MatchKind is standard matching, required for overlapping iteration.
		builder := aho.NewAhoCorasickBuilder(aho.Opts{
			DFA: true,
		})
		m.roots = builder.Build(patterns)
		m.hasRoots = true
	}
	return m
}

// Classify returns the same result as Classify(word, catalog) for the
// catalog the matcher was built with.
func (m *Matcher) Classify(word string) Analysis {
	res := Analysis{Word: word}

	for j := len(m.prefixes) - 1; j >= 0; j-- {
		rec := m.catalog[m.prefixes[j]]
		if strings.HasPrefix(word, rec.MatchLiteral()) {
			res.Prefix = &rec
			break
		}
	}
	for j := len(m.suffixes) - 1; j >= 0; j-- {
		rec := m.catalog[m.suffixes[j]]
		if strings.HasSuffix(word, rec.MatchLiteral()) {
			res.Suffix = &rec
			break
		}
	}

	if m.hasRoots && word != "" {
		best := -1
		iter := m.roots.IterOverlappingByte([]byte(word))
		for match := iter.Next(); match != nil; match = iter.Next() {
			if owner := m.rootOwner[match.Pattern()]; owner > best {
				best = owner
			}
		}
		if best >= 0 {
			rec := m.catalog[best]
			res.Root = &rec
		}
	}
	return res
}

// Catalog returns a copy of the catalog the matcher was built from.
func (m *Matcher) Catalog() []model.AffixRecord {
	out := make([]model.AffixRecord, len(m.catalog))
	copy(out, m.catalog)
	return out
}
