package tui

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"kumoov/pkg/config"
	"kumoov/pkg/mapview"
)

// RunConfigTUI launches the interactive experience for managing configurations
func RunConfigTUI() error {
	for {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		var action string

		initialForm := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Configuration Settings").
					Options(
						huh.NewOption("Set Accent Color (Theme)", "theme"),
						huh.NewOption("Set Route Service URL", "endpoint"),
						huh.NewOption("Set Map Marker", "marker"),
						huh.NewOption("View Current Config", "view"),
						huh.NewOption("Back to Main Menu", "back"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := initialForm.Run(); err != nil {
			return err
		}

		switch action {
		case "back":
			return nil
		case "theme":
			err = runSetThemeTUI(cfg)
		case "endpoint":
			err = runSetEndpointTUI(cfg)
		case "marker":
			err = runSetMarkerTUI(cfg)
		case "view":
			fmt.Print(RenderConfig(cfg))
		}

		if err != nil {
			return err
		}
	}
}

// RenderConfig lists the effective settings, including environment overrides.
func RenderConfig(cfg *config.AppConfig) string {
	var b strings.Builder
	b.WriteString(accentStyle.Render("\n--- Current Configuration (~/.kumoov.json) ---"))
	b.WriteString("\n")

	fmt.Fprintf(&b, "Route Service: %s\n", cfg.Endpoint())
	if db, err := cfg.Database(); err == nil {
		fmt.Fprintf(&b, "Database: %s\n", db)
	}
	m := mapview.FromConfig(cfg)
	fmt.Fprintf(&b, "Map Marker: %s (%.6f, %.6f)\n", m.Title, m.Lat, m.Lng)
	fmt.Fprintf(&b, "CSV Delimiter: %q\n", string(cfg.Delimiter()))
	accent := cfg.AccentColor
	if accent == "" {
		accent = defaultAccent
	}
	fmt.Fprintf(&b, "Accent Color: %s\n\n", accent)
	return b.String()
}

// ValidateEndpoint accepts absolute http and https URLs.
func ValidateEndpoint(s string) error {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("not a valid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("URL must start with http:// or https://")
	}
	if u.Host == "" {
		return fmt.Errorf("URL must include a host")
	}
	return nil
}

func runSetEndpointTUI(cfg *config.AppConfig) error {
	input := cfg.Endpoint()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Route service URL").
				Description("Destinations are POSTed here as JSON.").
				Placeholder(config.DefaultRouteEndpoint).
				Value(&input).
				Validate(ValidateEndpoint),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.RouteEndpoint = strings.TrimSpace(input)
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Route service set to: %s\n", cfg.RouteEndpoint)))
	return nil
}

func runSetMarkerTUI(cfg *config.AppConfig) error {
	current := mapview.FromConfig(cfg)
	title := current.Title
	lat := strconv.FormatFloat(current.Lat, 'f', 6, 64)
	lng := strconv.FormatFloat(current.Lng, 'f', 6, 64)

	validateFloat := func(lo, hi float64) func(string) error {
		return func(s string) error {
			v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			if err != nil || v < lo || v > hi {
				return fmt.Errorf("enter a number between %.0f and %.0f", lo, hi)
			}
			return nil
		}
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Marker title").Value(&title),
			huh.NewInput().Title("Latitude").Value(&lat).Validate(validateFloat(-90, 90)),
			huh.NewInput().Title("Longitude").Value(&lng).Validate(validateFloat(-180, 180)),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	latF, _ := strconv.ParseFloat(strings.TrimSpace(lat), 64)
	lngF, _ := strconv.ParseFloat(strings.TrimSpace(lng), 64)
	cfg.Marker = &config.MarkerConfig{Title: strings.TrimSpace(title), Lat: latF, Lng: lngF, Zoom: current.Zoom}

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Map marker saved: %s\n", cfg.Marker.Title)))
	return nil
}

func colorBlock(color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("██")
}

func runSetThemeTUI(cfg *config.AppConfig) error {
	var input string

	inputForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Choose an Accent Color").
				Description("Select a curated color or choose Custom to enter your own Hex.").
				Options(
					huh.NewOption(fmt.Sprintf("%s Purple", colorBlock("99")), "99"),
					huh.NewOption(fmt.Sprintf("%s Pink", colorBlock("205")), "205"),
					huh.NewOption(fmt.Sprintf("%s Ocean Blue", colorBlock("86")), "86"),
					huh.NewOption(fmt.Sprintf("%s Green", colorBlock("42")), "42"),
					huh.NewOption("✨ Custom Hex Code", "custom"),
				).
				Value(&input),
		),
	).WithTheme(GetTheme())

	if err := inputForm.Run(); err != nil {
		return err
	}

	if input == "custom" {
		var hexInput string
		hexForm := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Enter a Hex Color Code").
					Description("Include the `#` symbol. Example: #FF00FF").
					Placeholder("#").
					Value(&hexInput).
					Validate(ValidateHexColor),
			),
		).WithTheme(GetTheme())

		if err := hexForm.Run(); err != nil {
			return err
		}
		cfg.AccentColor = hexInput
	} else {
		cfg.AccentColor = input
	}

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(GetCustomTheme(cfg.AccentColor).Focused.Title.Render("\n✅ The theme color is now saved.\n"))
	return nil
}

// ValidateHexColor accepts "#RRGGBB".
func ValidateHexColor(s string) error {
	if len(s) != 7 || !strings.HasPrefix(s, "#") {
		return fmt.Errorf("must be a valid 6-character hex code starting with #")
	}
	if _, err := strconv.ParseUint(s[1:], 16, 32); err != nil {
		return fmt.Errorf("must be a valid 6-character hex code starting with #")
	}
	return nil
}
