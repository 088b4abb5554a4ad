// Package datasettest provides a small in-memory dictionary for tests.
package datasettest

import (
	"context"
	"testing"

	"github.com/dongchun97/trans-test/internal/common"
	"github.com/dongchun97/trans-test/internal/dataset"
)

const Words = `{
	"unhappy": {"translation": "不快乐的", "phonetic": "/ʌnˈhæpi/", "wordClass": "adj",
		"meanings": ["not happy", "sad"],
		"affixAnalysis": [
			{"type": "prefix", "part": "un-", "meaning": "not"},
			{"type": "root", "part": "happ", "meaning": "luck"}
		],
		"similarWords": [{"word": "sad", "translation": "悲伤的", "difference": "sad describes a stronger feeling"}]},
	"understand": {"translation": "理解", "wordClass": "v", "meanings": ["to grasp the meaning"],
		"affixAnalysis": [{"type": "prefix", "part": "under-", "meaning": "beneath"}], "similarWords": []},
	"unable": {"translation": "不能的", "wordClass": "adj", "meanings": ["not able"], "affixAnalysis": [], "similarWords": []},
	"kindness": {"translation": "善良", "wordClass": "n", "meanings": ["being kind"],
		"affixAnalysis": [{"type": "suffix", "part": "-ness", "meaning": "state of"}], "similarWords": []},
	"transport": {"translation": "运输", "wordClass": "v", "meanings": ["to carry across"],
		"affixAnalysis": [{"type": "root", "part": "port", "meaning": "carry"}], "similarWords": []},
	"fun": {"translation": "乐趣", "wordClass": "n", "meanings": ["enjoyment"], "affixAnalysis": [], "similarWords": []},
	"sunny": {"translation": "晴朗的", "wordClass": "adj", "meanings": ["full of sun"],
		"affixAnalysis": [{"type": "prefix", "part": "xyz-", "meaning": "no examples anywhere"}], "similarWords": []}
}`

const Prefixes = `{
	"un-": {"meaning": "not", "examples": ["unhappy", "unable", "unfair", "unknown", "unusual", "untidy"]},
	"under-": {"meaning": "beneath", "examples": ["understand", "underline"]},
	"-ness": {"meaning": "state of", "examples": ["kindness", "darkness"]}
}`

const Roots = `{
	"port": {"affix": "port", "type": "root", "meaning": "carry"},
	"happ": {"affix": "happ", "type": "root", "meaning": "luck"}
}`

// Source returns a memory source holding the fixture documents.
func Source() dataset.MemorySource {
	return dataset.MemorySource{
		dataset.WordsFile:    []byte(Words),
		dataset.PrefixesFile: []byte(Prefixes),
		dataset.RootsFile:    []byte(Roots),
	}
}

// Load builds the fixture dataset, failing the test on error.
func Load(t testing.TB) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.Load(context.Background(), Source(), common.NewSilentLogger())
	if err != nil {
		t.Fatalf("load fixture dataset: %v", err)
	}
	return ds
}
