//go:build integration

package nominatim

import (
	"log/slog"
	"os"
	"testing"
)

func integrationLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

func TestClient_Search_Integration(t *testing.T) {
	client := NewClient(integrationLogger())

	t.Logf("Making API call to Nominatim search...")

	results, err := client.Search("seattle", 5)
	if err != nil {
		t.Fatalf("Failed to search places: %v", err)
	}

	if len(results) == 0 {
		t.Fatal("No results returned for a major city")
	}

	t.Logf("Got %d results", len(results))
	for i, r := range results {
		t.Logf("  [%d] %s (lat=%s lon=%s)", i, r.DisplayName, r.Lat, r.Lon)
		t.Logf("      city=%q town=%q state=%q postcode=%q",
			r.Address.City, r.Address.Town, r.Address.State, r.Address.Postcode)
	}

	// Basic sanity checks
	first := results[0]
	if first.DisplayName == "" {
		t.Error("DisplayName is empty")
	}
	if first.Lat == "" || first.Lon == "" {
		t.Error("Coordinates are empty")
	}
	if first.Address.CountryCode != "us" {
		t.Errorf("CountryCode = %q, want us (countrycodes filter)", first.Address.CountryCode)
	}

	t.Log("✓ Search API call successful, response structure valid")
}

func TestClient_Reverse_Integration(t *testing.T) {
	// Test coordinates: downtown Seattle
	lat := 47.6062
	lon := -122.3321

	client := NewClient(integrationLogger())

	t.Logf("Making API call to Nominatim reverse...")
	t.Logf("Coordinates: lat=%f, lon=%f", lat, lon)

	resp, err := client.Reverse(lat, lon)
	if err != nil {
		t.Fatalf("Failed to reverse geocode: %v", err)
	}

	if resp == nil {
		t.Fatal("Response is nil")
	}

	t.Logf("Reverse Details:")
	t.Logf("  Display Name: %s", resp.DisplayName)
	t.Logf("  City: %s", resp.Address.City)
	t.Logf("  State: %s", resp.Address.State)
	t.Logf("  Postcode: %s", resp.Address.Postcode)

	if resp.DisplayName == "" {
		t.Error("DisplayName is empty")
	}
	if resp.Address.State == "" {
		t.Error("State is empty")
	}

	t.Log("✓ Reverse API call successful, response structure valid")
}
