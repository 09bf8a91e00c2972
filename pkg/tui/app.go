package tui

import (
	"context"

	"kumoov/pkg/config"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const defaultAccent = "99"

var (
	// These act as fallbacks until GetTheme() applies the saved accent color
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(defaultAccent))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	timeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	courseStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
)

// GetTheme loads the user's saved accent color and builds the form theme from it.
func GetTheme() *huh.Theme {
	cfg, err := config.Load()
	baseColor := defaultAccent

	if err == nil && cfg != nil && cfg.AccentColor != "" {
		baseColor = cfg.AccentColor
	}

	// Keep plain CLI output in the same color as the forms
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(baseColor))

	return GetCustomTheme(baseColor)
}

// GetCustomTheme returns a huh.Theme using the given lipgloss color string.
// Used to preview a color before it is saved.
func GetCustomTheme(baseColor string) *huh.Theme {
	t := huh.ThemeCharm()
	p := lipgloss.Color(baseColor)

	t.Focused.Title = t.Focused.Title.Foreground(p).Bold(true)
	t.Focused.Base = t.Focused.Base.Border(lipgloss.RoundedBorder()).BorderForeground(p).Padding(0, 1)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(p)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(p)
	t.Focused.SelectedPrefix = t.Focused.SelectedPrefix.Foreground(p)
	t.Focused.UnselectedPrefix = t.Focused.UnselectedPrefix.Foreground(lipgloss.AdaptiveColor{Light: "", Dark: "235"})
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(p)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(p)
	t.Focused.FocusedButton = t.Focused.FocusedButton.Foreground(lipgloss.Color("0")).Background(p)

	t.Blurred.Base = t.Blurred.Base.Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1)

	return t
}

// RunTUI launches the main menu and loops until the user quits.
func RunTUI(ctx context.Context) error {
	for {
		var action string

		menu := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("What would you like to do?").
					Options(
						huh.NewOption("📅 View Schedule", "schedule"),
						huh.NewOption("➕ Add Course", "add"),
						huh.NewOption("✏️ Edit Course", "edit"),
						huh.NewOption("🗑️ Remove Course", "remove"),
						huh.NewOption("🔎 Search Route", "search"),
						huh.NewOption("🗺️ Campus Map", "map"),
						huh.NewOption("⚙️ Settings", "config"),
						huh.NewOption("Quit", "quit"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := menu.Run(); err != nil {
			return err
		}

		var err error
		switch action {
		case "schedule":
			err = RunScheduleTUI(ctx)
		case "add":
			err = RunItemEntryTUI(ctx)
		case "edit":
			err = RunItemEditTUI(ctx)
		case "remove":
			err = RunItemRemoveTUI(ctx)
		case "search":
			err = RunSearchTUI(ctx)
		case "map":
			err = RunMapTUI()
		case "config":
			err = RunConfigTUI()
		default:
			return nil
		}

		if err != nil {
			return err
		}
	}
}
