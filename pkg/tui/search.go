package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/rs/zerolog/log"

	"kumoov/pkg/config"
	"kumoov/pkg/route"
)

// RenderRoutes formats a search result for the terminal.
func RenderRoutes(destination string, result route.Result) string {
	var b strings.Builder
	b.WriteString(accentStyle.Render(fmt.Sprintf("--- 🧭 Routes to %s ---", destination)))
	b.WriteString("\n")

	if len(result.Routes) == 0 {
		b.WriteString(mutedStyle.Render("No data received"))
		b.WriteString("\n")
		return b.String()
	}

	for i, r := range result.Routes {
		fmt.Fprintf(&b, "%d. %s\n", i+1, r)
	}
	return b.String()
}

// SearchWithSpinner runs one route search behind a spinner. Every failure, including
// an interrupted spinner, is returned as a *route.RequestError.
func SearchWithSpinner(ctx context.Context, client *route.Client, destination string) (route.Result, error) {
	start := time.Now()
	result, err := WithSpinner(ctx, fmt.Sprintf("Searching routes to '%s'...", destination), func(ctx context.Context) (route.Result, error) {
		return client.Search(ctx, destination)
	})

	var reqErr *route.RequestError
	if err != nil && !errors.As(err, &reqErr) {
		err = &route.RequestError{Destination: destination, Op: "send", Err: err}
	}

	logger := log.With().Str("endpoint", client.Endpoint()).Dur("took", time.Since(start)).Logger()
	if err != nil {
		logger.Debug().Err(err).Msg("Route search failed")
	} else {
		logger.Debug().Int("routes", len(result.Routes)).Msg("Route search finished")
	}
	return result, err
}

// RunSearchTUI asks for a destination and lists the routes the service suggests
func RunSearchTUI(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	destination := cfg.LastSearch

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Enter destination").
				Description("The destination is sent as-is to the route service.").
				Placeholder("e.g. Kadikoy").
				Value(&destination),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	client := route.NewClient(cfg.Endpoint())
	result, err := SearchWithSpinner(ctx, client, destination)
	if err != nil {
		fmt.Println(errorStyle.Render(route.FailureMessage(err)))
		return nil
	}

	fmt.Println()
	fmt.Print(RenderRoutes(destination, result))
	fmt.Println()

	cfg.LastSearch = destination
	if err := config.Save(cfg); err != nil {
		log.Warn().Err(err).Msg("Could not remember last search")
	}
	return nil
}
