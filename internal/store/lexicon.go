package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dongchun97/trans-test/internal/model"
)

// Lexicon maps lowercase words to their records. It is filled once by
// LoadLexicon and is safe for concurrent readers afterwards.
type Lexicon struct {
	words      []string
	records    map[string]model.WordRecord
	duplicates []string
}

// wordEntry mirrors the JSON value of a words.json entry. Required fields are
// pointers so absence can be told apart from an empty string.
type wordEntry struct {
	Translation   *string             `json:"translation"`
	Phonetic      *string             `json:"phonetic"`
	WordClass     *string             `json:"wordClass"`
	Meanings      []string            `json:"meanings"`
	AffixAnalysis []model.AffixPart   `json:"affixAnalysis"`
	SimilarWords  []model.SimilarWord `json:"similarWords"`
}

func (e wordEntry) record() (model.WordRecord, error) {
	if e.Translation == nil {
		return model.WordRecord{}, errors.New("missing translation")
	}
	if e.WordClass == nil {
		return model.WordRecord{}, errors.New("missing wordClass")
	}
	rec := model.WordRecord{
		Translation:   *e.Translation,
		Phonetic:      e.Phonetic,
		WordClass:     *e.WordClass,
		Meanings:      e.Meanings,
		AffixAnalysis: e.AffixAnalysis,
		SimilarWords:  e.SimilarWords,
	}
	return rec.Clone(), nil
}

// LoadLexicon decodes a words.json document. Any malformed entry fails the
// whole load.
func LoadLexicon(r io.Reader) (*Lexicon, error) {
	keys := newOrderedKeys()
	records := make(map[string]model.WordRecord)

	err := decodeObject(r, func(key string, raw json.RawMessage) error {
		var entry wordEntry
		if err := json.Unmarshal(raw, &entry); err != nil {
			return fmt.Errorf("word %q: %w", key, err)
		}
		rec, err := entry.record()
		if err != nil {
			return fmt.Errorf("word %q: %w", key, err)
		}
		word := strings.ToLower(key)
		keys.add(word)
		records[word] = rec
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load lexicon: %w", err)
	}

	return &Lexicon{
		words:      keys.keys,
		records:    records,
		duplicates: keys.dups,
	}, nil
}

// Get returns the record for word regardless of its letter case.
func (l *Lexicon) Get(word string) (model.WordRecord, bool) {
	rec, ok := l.records[strings.ToLower(word)]
	if !ok {
		return model.WordRecord{}, false
	}
	return rec.Clone(), true
}

func (l *Lexicon) Exists(word string) bool {
	_, ok := l.records[strings.ToLower(word)]
	return ok
}

// Words returns every key in load order.
func (l *Lexicon) Words() []string {
	out := make([]string, len(l.words))
	copy(out, l.words)
	return out
}

// Each visits keys in load order until fn returns false.
func (l *Lexicon) Each(fn func(word string) bool) {
	for _, w := range l.words {
		if !fn(w) {
			return
		}
	}
}

func (l *Lexicon) Len() int {
	return len(l.words)
}

// Duplicates lists keys that appeared more than once in the source (after
// lowercasing). The last value loaded won for each of them.
func (l *Lexicon) Duplicates() []string {
	return append([]string(nil), l.duplicates...)
}
