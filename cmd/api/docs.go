package main

// @title SocialUp Discovery API
// @version 1.0
// @description Location-aware search and discovery backend for events and groups.

// @host localhost:8080
// @BasePath /
