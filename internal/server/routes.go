package server

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dongchun97/trans-test/internal/handler"
)

func setupRoutes(app *fiber.App, wordHandler *handler.WordHandler, healthHandler *handler.HealthHandler) {
	api := app.Group("/api")

	// Lookup routes
	api.Get("/search", wordHandler.Search)
	api.Get("/search/:word", wordHandler.Search)
	api.Get("/suggestions", wordHandler.GetSuggestions)
	api.Get("/affix-examples", wordHandler.GetAffixExamples)
	api.Get("/words", wordHandler.GetAllWords)
	api.Get("/overview", wordHandler.Overview)

	// Morphology
	api.Get("/analyze", wordHandler.Analyze)

	api.Get("/health", healthHandler.GetStatus)
}
