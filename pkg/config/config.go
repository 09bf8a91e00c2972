package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// EnvRouteEndpoint overrides the route service URL.
	EnvRouteEndpoint = "KUMOOV_ROUTE_ENDPOINT"
	// EnvDatabase overrides the schedule database path.
	EnvDatabase = "KUMOOV_DB"

	DefaultRouteEndpoint = "http://localhost:5010/process_destination"
)

// MarkerConfig is the single point shown by the map command
type MarkerConfig struct {
	Title string  `json:"title"`
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
	Zoom  int     `json:"zoom,omitempty"`
}

// AppConfig holds all user-defined persistent settings
type AppConfig struct {
	RouteEndpoint string        `json:"route_endpoint,omitempty"`
	DatabasePath  string        `json:"database_path,omitempty"`
	AccentColor   string        `json:"accent_color,omitempty"`
	CSVDelimiter  string        `json:"csv_delimiter,omitempty"`
	Marker        *MarkerConfig `json:"marker,omitempty"`
	LastSearch    string        `json:"last_search,omitempty"`
}

// getConfigPath returns the absolute path to ~/.kumoov.json
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".kumoov.json"), nil
}

// Load reads the application configuration from disk.
// Returns an empty struct if the file does not exist.
// A .env file in the working directory is loaded into the environment so the
// KUMOOV_* overrides can live there.
func Load() (*AppConfig, error) {
	_ = godotenv.Load()

	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &AppConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg AppConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Save writes the application configuration back to disk.
func Save(cfg *AppConfig) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Endpoint returns the route service URL: environment first, then the file, then the default.
func (c *AppConfig) Endpoint() string {
	if v := strings.TrimSpace(os.Getenv(EnvRouteEndpoint)); v != "" {
		return v
	}
	if c != nil && c.RouteEndpoint != "" {
		return c.RouteEndpoint
	}
	return DefaultRouteEndpoint
}

// Database returns the SQLite file path, defaulting to ~/.kumoov.db.
func (c *AppConfig) Database() (string, error) {
	if v := strings.TrimSpace(os.Getenv(EnvDatabase)); v != "" {
		return v, nil
	}
	if c != nil && c.DatabasePath != "" {
		return c.DatabasePath, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".kumoov.db"), nil
}

// Delimiter returns the CSV field separator, a comma unless configured otherwise.
func (c *AppConfig) Delimiter() rune {
	if c == nil || c.CSVDelimiter == "" {
		return ','
	}
	if c.CSVDelimiter == `\t` {
		return '\t'
	}
	return []rune(c.CSVDelimiter)[0]
}
