package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"socialup-discovery/internal/location"
	"socialup-discovery/internal/types"
)

// UpdateLocationInput is the request body for replacing the current location
type UpdateLocationInput struct {
	City      *string  `json:"city"`
	State     *string  `json:"state"`
	ZipCode   *string  `json:"zipCode"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Label     string   `json:"label"`
}

// GeolocateInput optionally carries a device position measured by the caller
type GeolocateInput struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// GeolocateResponse reports the resolved location and, when the attempt
// failed, why the fallback was used
type GeolocateResponse struct {
	Location types.Location `json:"location"`
	Fallback bool           `json:"fallback"`
	Reason   string         `json:"reason,omitempty" example:"denied"`
}

// handleGetLocation godoc
// @Summary Get the current location
// @Description Return the resolved location used to scope searches
// @Tags location
// @Produce json
// @Success 200 {object} types.Location
// @Router /location [get]
func (app *App) handleGetLocation(c *gin.Context) {
	c.JSON(http.StatusOK, app.resolver.Current())
}

// handleUpdateLocation godoc
// @Summary Update the current location
// @Description Replace the current location and persist the choice. An empty body resets to the default location.
// @Tags location
// @Accept json
// @Produce json
// @Param location body UpdateLocationInput false "New location"
// @Success 200 {object} types.Location
// @Failure 400 {object} map[string]string
// @Router /location [put]
func (app *App) handleUpdateLocation(c *gin.Context) {
	var input UpdateLocationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	loc := types.Location{
		City:      input.City,
		State:     input.State,
		ZipCode:   input.ZipCode,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		Label:     input.Label,
	}
	c.JSON(http.StatusOK, app.resolver.UpdateLocation(c.Request.Context(), &loc))
}

// handleClearLocation godoc
// @Summary Clear the current location
// @Description Drop the stored location and fall back to the default
// @Tags location
// @Produce json
// @Success 200 {object} types.Location
// @Router /location [delete]
func (app *App) handleClearLocation(c *gin.Context) {
	c.JSON(http.StatusOK, app.resolver.Clear(c.Request.Context()))
}

// handleGeolocate godoc
// @Summary Resolve the location from a device position
// @Description Adopt coordinates supplied by the caller, or ask the configured position source for a fresh fix. A failed attempt falls back to the default location and reports the reason.
// @Tags location
// @Accept json
// @Produce json
// @Param position body GeolocateInput false "Device position"
// @Success 200 {object} GeolocateResponse
// @Failure 400 {object} map[string]string
// @Router /location/geolocate [post]
func (app *App) handleGeolocate(c *gin.Context) {
	var input GeolocateInput
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	if input.Latitude != nil && input.Longitude != nil {
		loc := app.resolver.AdoptCoordinates(c.Request.Context(), *input.Latitude, *input.Longitude)
		c.JSON(http.StatusOK, GeolocateResponse{Location: loc})
		return
	}

	loc, err := app.resolver.RequestGeolocation(c.Request.Context())
	if err != nil {
		resp := GeolocateResponse{Location: app.resolver.Current(), Fallback: true}
		var geoErr *location.GeolocationError
		if errors.As(err, &geoErr) {
			resp.Reason = string(geoErr.Reason)
		}
		c.JSON(http.StatusOK, resp)
		return
	}
	c.JSON(http.StatusOK, GeolocateResponse{Location: loc})
}
