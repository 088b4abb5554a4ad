// Package dataset loads the dictionary data (words, affixes and roots) from a
// Source in a single all-or-nothing step.
package dataset

import (
	"context"
	"fmt"
	"io"

	"github.com/dongchun97/trans-test/internal/common"
	"github.com/dongchun97/trans-test/internal/model"
	"github.com/dongchun97/trans-test/internal/morphology"
	"github.com/dongchun97/trans-test/internal/store"
)

const (
	WordsFile    = "words.json"
	PrefixesFile = "prefixes.json"
	RootsFile    = "roots.json"
)

// Files lists every document a dataset is made of, in load order.
var Files = []string{WordsFile, PrefixesFile, RootsFile}

// Dataset is the loaded dictionary. All fields are read-only after Load.
type Dataset struct {
	Lexicon *store.Lexicon
	Affixes *store.AffixIndex
	Roots   *store.AffixIndex

	// Catalog is every affix record followed by every root record, each in
	// file order. It is the flat list the morphology matcher scans.
	Catalog []model.AffixRecord
	Matcher *morphology.Matcher
}

// Load reads and parses all documents from src. If any of them is missing or
// malformed no dataset is returned.
func Load(ctx context.Context, src Source, logger *common.Logger) (*Dataset, error) {
	lex, err := loadOne(ctx, src, WordsFile, store.LoadLexicon)
	if err != nil {
		return nil, err
	}
	affixes, err := loadOne(ctx, src, PrefixesFile, store.LoadAffixes)
	if err != nil {
		return nil, err
	}
	roots, err := loadOne(ctx, src, RootsFile, store.LoadRoots)
	if err != nil {
		return nil, err
	}

	catalog := append(affixes.Records(), roots.Records()...)
	ds := &Dataset{
		Lexicon: lex,
		Affixes: affixes,
		Roots:   roots,
		Catalog: catalog,
		Matcher: morphology.NewMatcher(catalog),
	}

	for _, w := range lex.Duplicates() {
		logger.Warn().Str("source", src.String()).Str("word", w).Msg("Duplicate word in lexicon, last entry kept")
	}
	for _, a := range affixes.Duplicates() {
		logger.Warn().Str("source", src.String()).Str("affix", a).Msg("Duplicate affix, last entry kept")
	}
	for _, r := range roots.Duplicates() {
		logger.Warn().Str("source", src.String()).Str("root", r).Msg("Duplicate root, last entry kept")
	}

	logger.Info().
		Str("source", src.String()).
		Int("words", lex.Len()).
		Int("affixes", affixes.Len()).
		Int("roots", roots.Len()).
		Msg("Dataset loaded")

	return ds, nil
}

func loadOne[T any](ctx context.Context, src Source, name string, parse func(io.Reader) (T, error)) (T, error) {
	var zero T
	rc, err := src.Open(ctx, name)
	if err != nil {
		return zero, fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer rc.Close()

	v, err := parse(rc)
	if err != nil {
		return zero, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return v, nil
}
