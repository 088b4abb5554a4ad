package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dongchun97/trans-test/internal/common"
	"github.com/dongchun97/trans-test/internal/config"
	"github.com/dongchun97/trans-test/internal/dataset/datasettest"
	"github.com/dongchun97/trans-test/internal/model"
	"github.com/dongchun97/trans-test/internal/service"
)

func newTestServer(t *testing.T, cfg *config.Config) *Server {
	t.Helper()
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}
	return New(cfg, service.NewWordLookup(datasettest.Load(t)), common.NewSilentLogger())
}

func doGet(t *testing.T, s *Server, target string) (int, []byte) {
	t.Helper()
	resp, err := s.App().Test(httptest.NewRequest(http.MethodGet, target, nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body
}

func decode[T any](t *testing.T, body []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(body, &v), string(body))
	return v
}

func TestSearch_Found(t *testing.T) {
	s := newTestServer(t, nil)

	for _, target := range []string{"/api/search?word=UNHAPPY", "/api/search/UNHAPPY"} {
		code, body := doGet(t, s, target)
		require.Equal(t, http.StatusOK, code)

		got := decode[model.SearchResponse](t, body)
		assert.True(t, got.Success)
		assert.Equal(t, "UNHAPPY", got.Word)
		require.NotNil(t, got.Data)
		assert.Equal(t, "不快乐的", got.Data.Translation)
		assert.Empty(t, got.Message)
	}
}

func TestSearch_NotFoundIsStructured(t *testing.T) {
	s := newTestServer(t, nil)

	code, body := doGet(t, s, "/api/search?word=happy")
	require.Equal(t, http.StatusOK, code)

	got := decode[model.SearchResponse](t, body)
	assert.False(t, got.Success)
	assert.Nil(t, got.Data)
	assert.Equal(t, `word "happy" not found`, got.Message)
}

func TestSearch_PhoneticNullWhenAbsent(t *testing.T) {
	s := newTestServer(t, nil)

	_, body := doGet(t, s, "/api/search?word=fun")
	var raw struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &raw))
	v, ok := raw.Data["phonetic"]
	assert.True(t, ok, "phonetic key must be present")
	assert.Nil(t, v)
}

func TestSearch_RequiresWord(t *testing.T) {
	s := newTestServer(t, nil)

	code, body := doGet(t, s, "/api/search?word=%20%20")
	assert.Equal(t, http.StatusBadRequest, code)
	got := decode[map[string]any](t, body)
	assert.Equal(t, false, got["success"])
	assert.Equal(t, "word is required", got["error"])
}

func TestSuggestions(t *testing.T) {
	s := newTestServer(t, nil)

	tests := []struct {
		target string
		want   []string
	}{
		{"/api/suggestions?prefix=un", []string{"unhappy", "understand", "unable"}},
		{"/api/suggestions?prefix=un&limit=2", []string{"unhappy", "understand"}},
		{"/api/suggestions?prefix=un&limit=0", []string{"unhappy"}},
		{"/api/suggestions?prefix=un&limit=-3", []string{"unhappy"}},
		{"/api/suggestions?prefix=un&limit=99", []string{"unhappy", "understand", "unable"}},
		{"/api/suggestions?prefix=qq", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			code, body := doGet(t, s, tt.target)
			require.Equal(t, http.StatusOK, code)
			got := decode[model.SuggestionsResponse](t, body)
			assert.True(t, got.Success)
			assert.Equal(t, tt.want, got.Suggestions)
			assert.Equal(t, len(tt.want), got.Count)
		})
	}
}

func TestSuggestions_Validation(t *testing.T) {
	s := newTestServer(t, nil)

	code, _ := doGet(t, s, "/api/suggestions")
	assert.Equal(t, http.StatusBadRequest, code)

	code, body := doGet(t, s, "/api/suggestions?prefix=un&limit=many")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, string(body), "limit must be an integer")
}

func TestAffixExamples(t *testing.T) {
	s := newTestServer(t, nil)

	code, body := doGet(t, s, "/api/affix-examples?affix=un-&limit=3")
	require.Equal(t, http.StatusOK, code)
	got := decode[model.AffixExamplesResponse](t, body)
	assert.True(t, got.Success)
	assert.Equal(t, "un-", got.Affix)
	assert.Equal(t, []string{"unhappy", "unable", "unfair"}, got.Examples)
	assert.Equal(t, 3, got.Count)

	_, body = doGet(t, s, "/api/affix-examples?affix=port")
	got = decode[model.AffixExamplesResponse](t, body)
	assert.Equal(t, []string{"transport"}, got.Examples)

	code, _ = doGet(t, s, "/api/affix-examples")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestAllWords(t *testing.T) {
	s := newTestServer(t, nil)

	code, body := doGet(t, s, "/api/words")
	require.Equal(t, http.StatusOK, code)
	got := decode[model.WordsResponse](t, body)
	assert.True(t, got.Success)
	assert.Equal(t, 7, got.Count)
	assert.Equal(t, "unhappy", got.Words[0])
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, nil)

	code, body := doGet(t, s, "/api/health")
	require.Equal(t, http.StatusOK, code)
	got := decode[model.HealthResponse](t, body)
	assert.Equal(t, model.HealthResponse{Status: "healthy", WordCount: 7, PrefixCount: 3, RootCount: 2}, got)
}

func TestAnalyze(t *testing.T) {
	s := newTestServer(t, nil)

	code, body := doGet(t, s, "/api/analyze?word=understand")
	require.Equal(t, http.StatusOK, code)
	got := decode[model.AnalysisResponse](t, body)
	assert.Equal(t, "understand", got.Word)
	require.NotNil(t, got.Prefix)
	assert.Equal(t, "under-", got.Prefix.Affix)
	assert.Equal(t, model.AffixPrefix, got.Prefix.Type)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(body, &raw))
	assert.Contains(t, raw, "suffix")
	assert.Nil(t, raw["suffix"])
	assert.Nil(t, raw["root"])
}

func TestOverview(t *testing.T) {
	s := newTestServer(t, nil)

	code, body := doGet(t, s, "/api/overview?word=unhappy")
	require.Equal(t, http.StatusOK, code)
	got := decode[model.OverviewResponse](t, body)
	assert.True(t, got.Success)
	require.Len(t, got.AffixExamples, 2)
	assert.Equal(t, "un-", got.AffixExamples[0].Affix)

	_, body = doGet(t, s, "/api/overview?word=nothing")
	got = decode[model.OverviewResponse](t, body)
	assert.False(t, got.Success)
	assert.NotNil(t, got.AffixExamples)
	assert.NotEmpty(t, got.Message)
}

func TestRequestIDHeader(t *testing.T) {
	s := newTestServer(t, nil)

	resp, err := s.App().Test(httptest.NewRequest(http.MethodGet, "/api/health", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Len(t, resp.Header.Get("X-Request-ID"), 36)
}

func TestStaticAssets(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>words</h1>"), 0o644))

	cfg := config.NewDefaultConfig()
	cfg.Server.StaticDir = dir
	s := newTestServer(t, cfg)

	code, body := doGet(t, s, "/")
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(body), "<h1>words</h1>")

	code, _ = doGet(t, s, "/api/health")
	assert.Equal(t, http.StatusOK, code)
}

func TestUnknownRoute(t *testing.T) {
	s := newTestServer(t, nil)

	code, body := doGet(t, s, "/api/nope")
	assert.Equal(t, http.StatusNotFound, code)
	got := decode[map[string]any](t, body)
	assert.Equal(t, false, got["success"])
}
