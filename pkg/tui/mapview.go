package tui

import (
	"fmt"

	"kumoov/pkg/config"
	"kumoov/pkg/mapview"
)

// RenderMarker describes the map marker and where to open it.
func RenderMarker(m mapview.Marker) string {
	return fmt.Sprintf("%s\n📍 %s (%.6f, %.6f)\n%s\n",
		accentStyle.Render("--- 🗺️ Campus Map ---"),
		courseStyle.Render(m.Title), m.Lat, m.Lng,
		mutedStyle.Render(m.URL()))
}

// RunMapTUI prints the configured map marker
func RunMapTUI() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Print(RenderMarker(mapview.FromConfig(cfg)))
	fmt.Println()
	return nil
}
