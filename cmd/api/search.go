package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"socialup-discovery/internal/filters"
	"socialup-discovery/internal/providers/socialapi"
	"socialup-discovery/internal/search"
)

// eventFilterSpecs declares the event surface's filters and their defaults.
// Sorting defaults to date so an unfiltered listing is still chronological.
func eventFilterSpecs() []filters.Spec {
	return []filters.Spec{
		{Key: filters.KeyDateRange, Default: "all", Visible: true, Options: []filters.Option{
			{Label: "All dates", Value: "all"},
			{Label: "Today", Value: "today"},
			{Label: "Tomorrow", Value: "tomorrow"},
			{Label: "This week", Value: "week"},
			{Label: "This month", Value: "month"},
		}},
		{Key: filters.KeyCategory, Default: "", Visible: true},
		{Key: filters.KeyLocationType, Default: "", Visible: true},
		{Key: filters.KeyDistance, Default: "25", Visible: true},
		{Key: filters.KeySortBy, Default: "date", Visible: true, Options: []filters.Option{
			{Label: "Date", Value: "date"},
			{Label: "Popularity", Value: "popularity"},
			{Label: "Relevance", Value: "relevance"},
		}},
	}
}

// groupFilterSpecs declares the group surface's filters. Groups keep the
// server's ordering unless the caller asks for one.
func groupFilterSpecs() []filters.Spec {
	return []filters.Spec{
		{Key: filters.KeyCategory, Default: "", Visible: true},
		{Key: filters.KeyPrivacy, Default: "", Visible: true, Options: []filters.Option{
			{Label: "Public", Value: "public"},
			{Label: "Private", Value: "private"},
		}},
		{Key: filters.KeySortBy, Default: "", Visible: true},
	}
}

// collectFilters applies the bound query values on top of the surface's
// declared defaults. Absent parameters keep their default.
func collectFilters(specs []filters.Spec, values map[string]string) map[string]string {
	m := filters.NewManager(specs...)
	for key, value := range values {
		if value != "" {
			m.Set(key, value)
		}
	}
	return m.Values()
}

// SearchEventsInput defines the query parameters for the event search endpoint
type SearchEventsInput struct {
	Query        string `form:"q"`            // Free-text query, may be empty
	Page         int    `form:"page"`         // Page number, defaults to 1
	Limit        int    `form:"limit"`        // Page size
	DateRange    string `form:"dateRange"`    // today, tomorrow, week, month, all
	Category     string `form:"category"`     // Event category filter
	LocationType string `form:"locationType"` // in-person, online, hybrid
	Distance     string `form:"distance"`     // Search radius in miles
	SortBy       string `form:"sortBy"`       // date, popularity, relevance
}

// SearchGroupsInput defines the query parameters for the group search endpoint
type SearchGroupsInput struct {
	Query    string `form:"q"`
	Page     int    `form:"page"`
	Limit    int    `form:"limit"`
	Category string `form:"category"`
	Privacy  string `form:"privacy"`
	SortBy   string `form:"sortBy"`
}

// handleSearchEvents godoc
// @Summary Search events
// @Description List or search events scoped to the resolved location, with date-window and sort post-processing applied
// @Tags search
// @Produce json
// @Param q query string false "Free-text query"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Param dateRange query string false "Date bucket" Enums(today, tomorrow, week, month, all)
// @Param category query string false "Event category"
// @Param locationType query string false "Location type"
// @Param distance query string false "Radius in miles"
// @Param sortBy query string false "Sort order" Enums(date, popularity, relevance)
// @Success 200 {object} socialapi.EventsPage
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /search/events [get]
func (app *App) handleSearchEvents(c *gin.Context) {
	var input SearchEventsInput
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	page, err := app.assembler.FindEvents(search.Request{
		Query:    input.Query,
		Page:     input.Page,
		Limit:    input.Limit,
		Location: app.resolver.Current(),
		Filters: collectFilters(eventFilterSpecs(), map[string]string{
			filters.KeyDateRange:    input.DateRange,
			filters.KeyCategory:     input.Category,
			filters.KeyLocationType: input.LocationType,
			filters.KeyDistance:     input.Distance,
			filters.KeySortBy:       input.SortBy,
		}),
	})
	if err != nil {
		app.renderListingError(c, err, "failed to search events")
		return
	}

	c.JSON(http.StatusOK, page)
}

// handleSearchGroups godoc
// @Summary Search groups
// @Description List or search groups with category, privacy, and sort filters
// @Tags search
// @Produce json
// @Param q query string false "Free-text query"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Param category query string false "Group category"
// @Param privacy query string false "Privacy filter" Enums(public, private)
// @Param sortBy query string false "Sort order"
// @Success 200 {object} socialapi.GroupsPage
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /search/groups [get]
func (app *App) handleSearchGroups(c *gin.Context) {
	var input SearchGroupsInput
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	page, err := app.assembler.FindGroups(search.Request{
		Query: input.Query,
		Page:  input.Page,
		Limit: input.Limit,
		Filters: collectFilters(groupFilterSpecs(), map[string]string{
			filters.KeyCategory: input.Category,
			filters.KeyPrivacy:  input.Privacy,
			filters.KeySortBy:   input.SortBy,
		}),
	})
	if err != nil {
		app.renderListingError(c, err, "failed to search groups")
		return
	}

	c.JSON(http.StatusOK, page)
}

// handleGetCategories godoc
// @Summary List event categories
// @Tags search
// @Produce json
// @Success 200 {object} map[string][]types.Category
// @Failure 502 {object} map[string]string
// @Router /categories [get]
func (app *App) handleGetCategories(c *gin.Context) {
	categories, err := app.assembler.Categories()
	if err != nil {
		app.renderListingError(c, err, "failed to fetch categories")
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// renderListingError surfaces a primary-data failure to the client. Upstream
// API errors keep their user-presentable message and status; anything else is
// an internal error.
func (app *App) renderListingError(c *gin.Context, err error, logMsg string) {
	var apiErr *socialapi.APIError
	if errors.As(err, &apiErr) {
		app.logger.Warn(logMsg, "status_code", apiErr.StatusCode, "error", err)
		c.JSON(apiErr.StatusCode, gin.H{"error": apiErr.Message})
		return
	}
	app.logger.Error(logMsg, "error", err)
	c.JSON(http.StatusBadGateway, gin.H{"error": "upstream request failed"})
}
