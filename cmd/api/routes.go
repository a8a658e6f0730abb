package main

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	// Health check endpoint
	app.router.GET("/ping", app.handlePing)

	// Search surfaces
	app.router.GET("/search/events", app.handleSearchEvents)
	app.router.GET("/search/groups", app.handleSearchGroups)
	app.router.GET("/categories", app.handleGetCategories)

	// Location resolution
	app.router.GET("/location", app.handleGetLocation)
	app.router.PUT("/location", app.handleUpdateLocation)
	app.router.DELETE("/location", app.handleClearLocation)
	app.router.POST("/location/geolocate", app.handleGeolocate)
	app.router.GET("/locations/suggestions", app.handleSuggestions)

	// Event interaction proxies
	app.router.POST("/events/:id/rsvp", app.handleRsvp)
	app.router.DELETE("/events/:id/rsvp", app.handleCancelRsvp)
	app.router.GET("/events/:id/comments", app.handleListComments)

	// Swagger documentation
	app.router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(301, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})
}
