package main

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"socialup-discovery/internal/config"
	"socialup-discovery/internal/geocode"
	"socialup-discovery/internal/location"
	"socialup-discovery/internal/providers/nominatim"
	"socialup-discovery/internal/providers/socialapi"
	"socialup-discovery/internal/search"
	"socialup-discovery/internal/suggest"
)

// App encapsulates application dependencies
type App struct {
	router    *gin.Engine
	logger    *slog.Logger
	cfg       *config.Config
	resolver  *location.Resolver
	fetcher   *suggest.Fetcher
	assembler *search.Assembler
	api       *socialapi.Client
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())

	// Upstream clients
	api := socialapi.NewClient(logger, cfg.API.SocialBaseURL)
	places := nominatim.NewClientWithBaseURL(logger, cfg.API.NominatimBaseURL)

	// Location resolution pipeline. The server has no positioning hardware;
	// clients that do POST their coordinates to /location/geolocate.
	geocoder := geocode.NewServiceWithProvider(logger, places)
	store := location.NewRedisStore(location.NewRedisClient(cfg.Redis.Address, cfg.Redis.DB))
	resolver := location.NewResolver(logger, store, location.UnsupportedSource{}, geocoder, cfg.DefaultLocation())

	app := &App{
		router:    router,
		logger:    logger,
		cfg:       cfg,
		resolver:  resolver,
		fetcher:   suggest.NewFetcher(logger, places, api),
		assembler: search.NewAssembler(logger, api),
		api:       api,
	}

	// Register routes
	app.registerRoutes()

	return app, nil
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}
