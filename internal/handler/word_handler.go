package handler

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/dongchun97/trans-test/internal/model"
	"github.com/dongchun97/trans-test/internal/service"
)

type WordHandler struct {
	lookup service.WordLookup
}

func NewWordHandler(lookup service.WordLookup) *WordHandler {
	return &WordHandler{
		lookup: lookup,
	}
}

func notFoundMessage(word string) string {
	return fmt.Sprintf("word %q not found", word)
}

// Search handles exact word lookup from ?word= or the :word path segment.
// A missing word is a 200 with success=false.
func (h *WordHandler) Search(c *fiber.Ctx) error {
	word := strings.TrimSpace(c.Params("word"))
	if word == "" {
		var err error
		if word, err = requiredQuery(c, "word"); err != nil {
			return err
		}
	}

	rec, ok := h.lookup.Lookup(word)
	if !ok {
		return c.JSON(model.SearchResponse{
			Success: false,
			Word:    word,
			Message: notFoundMessage(word),
		})
	}
	return c.JSON(model.SearchResponse{
		Success: true,
		Word:    word,
		Data:    &rec,
	})
}

// GetSuggestions handles prefix-based word suggestions
func (h *WordHandler) GetSuggestions(c *fiber.Ctx) error {
	prefix, err := requiredQuery(c, "prefix")
	if err != nil {
		return err
	}
	limit, err := limitQuery(c)
	if err != nil {
		return err
	}

	suggestions := h.lookup.Suggestions(prefix, limit)
	return c.JSON(model.SuggestionsResponse{
		Success:     true,
		Suggestions: suggestions,
		Count:       len(suggestions),
	})
}

func (h *WordHandler) GetAffixExamples(c *fiber.Ctx) error {
	affix, err := requiredQuery(c, "affix")
	if err != nil {
		return err
	}
	limit, err := limitQuery(c)
	if err != nil {
		return err
	}

	examples := h.lookup.AffixExamples(affix, limit)
	return c.JSON(model.AffixExamplesResponse{
		Success:  true,
		Affix:    affix,
		Examples: examples,
		Count:    len(examples),
	})
}

func (h *WordHandler) GetAllWords(c *fiber.Ctx) error {
	words := h.lookup.AllWords()
	return c.JSON(model.WordsResponse{
		Success: true,
		Words:   words,
		Count:   len(words),
	})
}

// Analyze classifies the word exactly as given; it is not lowercased.
func (h *WordHandler) Analyze(c *fiber.Ctx) error {
	word, err := requiredQuery(c, "word")
	if err != nil {
		return err
	}
	return c.JSON(h.lookup.Analyze(word).Response())
}

func (h *WordHandler) Overview(c *fiber.Ctx) error {
	word, err := requiredQuery(c, "word")
	if err != nil {
		return err
	}

	rec, groups, ok := h.lookup.Overview(word)
	if !ok {
		return c.JSON(model.OverviewResponse{
			Success:       false,
			Word:          word,
			AffixExamples: []model.AffixExamples{},
			Message:       notFoundMessage(word),
		})
	}
	return c.JSON(model.OverviewResponse{
		Success:       true,
		Word:          word,
		Data:          &rec,
		AffixExamples: groups,
	})
}
