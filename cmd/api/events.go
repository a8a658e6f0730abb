package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"socialup-discovery/internal/types"
)

// handleRsvp godoc
// @Summary RSVP to an event
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /events/{id}/rsvp [post]
func (app *App) handleRsvp(c *gin.Context) {
	if err := app.api.Rsvp(c.Param("id")); err != nil {
		app.renderListingError(c, err, "failed to rsvp")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "attending"})
}

// handleCancelRsvp godoc
// @Summary Cancel an RSVP
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /events/{id}/rsvp [delete]
func (app *App) handleCancelRsvp(c *gin.Context) {
	if err := app.api.CancelRsvp(c.Param("id")); err != nil {
		app.renderListingError(c, err, "failed to cancel rsvp")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "not attending"})
}

// handleListComments godoc
// @Summary List event comments
// @Description Return the comments for an event. An unauthenticated caller gets an empty list, not an error.
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} map[string][]types.Comment
// @Failure 404 {object} map[string]string
// @Router /events/{id}/comments [get]
func (app *App) handleListComments(c *gin.Context) {
	comments, err := app.api.ListComments(c.Param("id"))
	if err != nil {
		app.renderListingError(c, err, "failed to fetch comments")
		return
	}
	if comments == nil {
		comments = []types.Comment{}
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments})
}
