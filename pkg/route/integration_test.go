package route

import (
	"context"
	"os"
	"testing"
	"time"
)

// TestRouteIntegration_Search talks to a running route service.
// Set KUMOOV_ROUTE_ENDPOINT to the service URL to enable it.
func TestRouteIntegration_Search(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	endpoint := os.Getenv("KUMOOV_ROUTE_ENDPOINT")
	if endpoint == "" {
		t.Skip("KUMOOV_ROUTE_ENDPOINT not set, skipping integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result, err := NewClient(endpoint).Search(ctx, "Kadikoy")
	if err != nil {
		t.Fatalf("Failed to search routes: %v", err)
	}

	for i, r := range result.Routes {
		if r == "" {
			t.Errorf("route %d is empty", i)
		}
	}
}
