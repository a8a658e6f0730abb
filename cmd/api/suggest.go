package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"socialup-discovery/internal/types"
)

// SuggestionsInput defines the query parameters for location suggestions
type SuggestionsInput struct {
	Query string `form:"q"`
	Limit int    `form:"limit"`
}

// handleSuggestions godoc
// @Summary Suggest locations
// @Description Return location suggestions matching a partial query. Queries shorter than two characters yield an empty list. Suggestion failures degrade to an empty list rather than an error.
// @Tags location
// @Produce json
// @Param q query string false "Partial city name or zip code"
// @Param limit query int false "Maximum suggestions" default(8)
// @Success 200 {object} map[string][]types.Suggestion
// @Router /locations/suggestions [get]
func (app *App) handleSuggestions(c *gin.Context) {
	var input SuggestionsInput
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	limit := input.Limit
	if limit <= 0 {
		limit = app.cfg.App.SuggestionLimit
	}

	suggestions, err := app.fetcher.Fetch(input.Query, limit)
	if err != nil {
		// Suggestions are assistive; never fail the request over them.
		app.logger.Warn("suggestion lookup failed", "query", input.Query, "error", err)
		suggestions = nil
	}
	if suggestions == nil {
		suggestions = []types.Suggestion{}
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}
