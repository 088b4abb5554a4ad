package morphology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dongchun97/trans-test/internal/model"
)

func prefix(a string) model.AffixRecord {
	return model.AffixRecord{Affix: a, Type: model.AffixPrefix, Meaning: "p:" + a}
}

func suffix(a string) model.AffixRecord {
	return model.AffixRecord{Affix: a, Type: model.AffixSuffix, Meaning: "s:" + a}
}

func root(a string) model.AffixRecord {
	return model.AffixRecord{Affix: a, Type: model.AffixRoot, Meaning: "r:" + a}
}

func affixOf(r *model.AffixRecord) string {
	if r == nil {
		return ""
	}
	return r.Affix
}

var testCatalog = []model.AffixRecord{
	prefix("un-"),
	prefix("under-"),
	prefix("re-"),
	suffix("-ness"),
	suffix("-ss"),
	suffix("-able"),
	root("stand"),
	root("and"),
	root("happ"),
	root("port"),
	root("or"),
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name                 string
		word                 string
		prefix, suffix, root string
	}{
		{"last prefix wins", "understand", "under-", "", "and"},
		{"later suffix wins", "unhappiness", "un-", "-ss", "happ"},
		{"later suffix wins over longer", "kindness", "", "-ss", ""},
		{"later root wins", "report", "re-", "", "or"},
		{"nothing", "cat", "", "", ""},
		{"empty word", "", "", "", ""},
		{"case sensitive", "UNHAPPY", "", "", ""},
		{"suffix only", "portable", "", "-able", "or"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.word, testCatalog)
			assert.Equal(t, tt.word, got.Word)
			assert.Equal(t, tt.prefix, affixOf(got.Prefix), "prefix")
			assert.Equal(t, tt.suffix, affixOf(got.Suffix), "suffix")
			assert.Equal(t, tt.root, affixOf(got.Root), "root")
		})
	}
}

func TestClassify_LastMatchWinsNotLongest(t *testing.T) {
	catalog := []model.AffixRecord{prefix("un-"), prefix("under-")}
	got := Classify("understand", catalog)
	require.NotNil(t, got.Prefix)
	assert.Equal(t, "under-", got.Prefix.Affix)

	reversed := []model.AffixRecord{prefix("under-"), prefix("un-")}
	got = Classify("understand", reversed)
	require.NotNil(t, got.Prefix)
	assert.Equal(t, "un-", got.Prefix.Affix)
}

func TestClassify_LiteralWithoutHyphens(t *testing.T) {
	catalog := []model.AffixRecord{prefix("un"), suffix("ness"), root("happ")}
	got := Classify("unhappiness", catalog)
	assert.Equal(t, "un", affixOf(got.Prefix))
	assert.Equal(t, "ness", affixOf(got.Suffix))
	assert.Equal(t, "happ", affixOf(got.Root))
}

func TestClassify_EmptyLiteralNeverMatches(t *testing.T) {
	catalog := []model.AffixRecord{prefix("-"), root(""), suffix("-")}
	got := Classify("anything", catalog)
	assert.Nil(t, got.Prefix)
	assert.Nil(t, got.Suffix)
	assert.Nil(t, got.Root)
}

func TestClassify_DoesNotModifyCatalog(t *testing.T) {
	catalog := []model.AffixRecord{prefix("un-")}
	got := Classify("unhappy", catalog)
	require.NotNil(t, got.Prefix)
	got.Prefix.Meaning = "changed"
	assert.Equal(t, "p:un-", catalog[0].Meaning)
}

func TestMatcher_AgreesWithClassify(t *testing.T) {
	catalogs := [][]model.AffixRecord{
		testCatalog,
		{root("a"), root("ab"), root("b"), root("a")},
		{root("ab"), root("a"), root("abc"), root("bc")},
		{root("spect"), prefix("in-"), root("spec"), suffix("-ion"), root("ect")},
		{},
		{root("-")},
	}
	words := []string{
		"understand", "unhappiness", "kindness", "report", "cat", "", "UNHAPPY",
		"portable", "abc", "bca", "a", "b", "inspection", "spectacle", "aaa", "-",
	}

	for ci, catalog := range catalogs {
		m := NewMatcher(catalog)
		for _, w := range words {
			want := Classify(w, catalog)
			got := m.Classify(w)
			assert.Equal(t, want, got, "catalog %d word %q", ci, w)
		}
	}
}

func TestMatcher_DuplicateRootLiteralUsesLastRecord(t *testing.T) {
	first := root("port")
	first.Meaning = "first"
	second := root("port")
	second.Meaning = "second"

	m := NewMatcher([]model.AffixRecord{first, root("or"), second})
	got := m.Classify("export")
	require.NotNil(t, got.Root)
	assert.Equal(t, "second", got.Root.Meaning)
}

func TestMatcher_CatalogIsCopied(t *testing.T) {
	catalog := []model.AffixRecord{prefix("un-")}
	m := NewMatcher(catalog)
	catalog[0] = prefix("re-")

	assert.Equal(t, "un-", affixOf(m.Classify("unhappy").Prefix))
	assert.Equal(t, "un-", m.Catalog()[0].Affix)
}

func TestAnalysis_Response(t *testing.T) {
	got := Classify("unhappy", []model.AffixRecord{prefix("un-")}).Response()
	assert.Equal(t, "unhappy", got.Word)
	require.NotNil(t, got.Prefix)
	assert.Nil(t, got.Suffix)
	assert.Nil(t, got.Root)
}
