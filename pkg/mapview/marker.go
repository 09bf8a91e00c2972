package mapview

import (
	"fmt"

	"kumoov/pkg/config"
)

// Marker is the single labelled point shown on the map page
type Marker struct {
	Title string
	Lat   float64
	Lng   float64
	Zoom  int
}

// Default is the campus marker used when none is configured.
var Default = Marker{Title: "Istanbul", Lat: 41.204958, Lng: 29.073858, Zoom: 15}

// FromConfig returns the configured marker, filling gaps from Default.
func FromConfig(cfg *config.AppConfig) Marker {
	if cfg == nil || cfg.Marker == nil {
		return Default
	}
	m := Marker{Title: cfg.Marker.Title, Lat: cfg.Marker.Lat, Lng: cfg.Marker.Lng, Zoom: cfg.Marker.Zoom}
	if m.Title == "" {
		m.Title = Default.Title
	}
	if m.Zoom <= 0 {
		m.Zoom = Default.Zoom
	}
	return m
}

// Validate checks that the coordinates are on the globe.
func (m Marker) Validate() error {
	if m.Lat < -90 || m.Lat > 90 {
		return fmt.Errorf("latitude %f out of range [-90, 90]", m.Lat)
	}
	if m.Lng < -180 || m.Lng > 180 {
		return fmt.Errorf("longitude %f out of range [-180, 180]", m.Lng)
	}
	return nil
}

// URL links to the marker on OpenStreetMap.
func (m Marker) URL() string {
	return fmt.Sprintf("https://www.openstreetmap.org/?mlat=%.6f&mlon=%.6f#map=%d/%.6f/%.6f", m.Lat, m.Lng, m.Zoom, m.Lat, m.Lng)
}
