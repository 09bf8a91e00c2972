package tui

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/charmbracelet/huh/spinner"

	"kumoov/pkg/route"
)

func fakeSpinner(t *testing.T, run func(*spinner.Spinner) error) {
	t.Helper()
	origShow, origRun := showSpinner, runSpinner
	showSpinner = func() bool { return true }
	runSpinner = run
	t.Cleanup(func() {
		showSpinner, runSpinner = origShow, origRun
	})
}

func TestSearchWithSpinner_Interrupted(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`{"output":["Route A"]}`))
	}))
	defer server.Close()

	// ctrl+c ends the program before the action reports back
	fakeSpinner(t, func(*spinner.Spinner) error { return errors.New("program was interrupted") })

	result, err := SearchWithSpinner(context.Background(), route.NewClient(server.URL), "Kadikoy")

	var reqErr *route.RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected *route.RequestError, got %T: %v", err, err)
	}
	if reqErr.Destination != "Kadikoy" || !errors.Is(err, context.Canceled) {
		t.Errorf("expected cancelled search for Kadikoy, got %v", err)
	}
	if len(result.Routes) != 0 {
		t.Errorf("expected no routes, got %v", result.Routes)
	}
	if calls != 0 {
		t.Errorf("expected no request to reach the service, got %d", calls)
	}
}

func TestWithSpinner_ParentCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fakeSpinner(t, func(s *spinner.Spinner) error { return s.Run() })

	ran := false
	_, err := WithSpinner(ctx, "Loading...", func(context.Context) (int, error) {
		ran = true
		return 1, nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if ran {
		t.Error("action must not run on a cancelled context")
	}
}

func TestWithSpinner_NoTerminal(t *testing.T) {
	showOrig := showSpinner
	showSpinner = func() bool { return false }
	t.Cleanup(func() { showSpinner = showOrig })

	got, err := WithSpinner(context.Background(), "Loading...", func(context.Context) (string, error) {
		return "done", nil
	})
	if err != nil || got != "done" {
		t.Errorf("WithSpinner = %q, %v", got, err)
	}
}
