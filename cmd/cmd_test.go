package cmd

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"kumoov/pkg/schedule"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	orig := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	done := make(chan string)
	go func() {
		data, _ := io.ReadAll(r)
		done <- string(data)
	}()

	fn()

	_ = w.Close()
	os.Stdout = orig
	return <-done
}

func setupHome(t *testing.T) {
	t.Helper()
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir)
	t.Setenv("KUMOOV_DB", filepath.Join(tempDir, "test.db"))
	t.Setenv("KUMOOV_ROUTE_ENDPOINT", "")
}

func TestParseID(t *testing.T) {
	for in, want := range map[string]int64{"3": 3, "#12": 12} {
		got, err := parseID(in)
		if err != nil || got != want {
			t.Errorf("parseID(%q) = %d, %v; want %d", in, got, err, want)
		}
	}
	for _, in := range []string{"", "0", "-1", "abc"} {
		if _, err := parseID(in); err == nil {
			t.Errorf("parseID(%q) expected error", in)
		}
	}
}

func TestAddThenListJSON(t *testing.T) {
	setupHome(t)

	runs := [][]string{
		{"add", "--course", "Comp302", "--name", "Software Engineering", "--day", "monday", "--start", "11.20", "--end", "12.30"},
		{"add", "--course", "Comp132", "--day", "Monday", "--start", "8.30", "--end", "9.40"},
	}
	for _, args := range runs {
		rootCmd.SetArgs(args)
		captureStdout(t, func() {
			if err := rootCmd.Execute(); err != nil {
				t.Fatalf("%v failed: %v", args, err)
			}
		})
		// Flag values persist on the shared command between runs
		addCmd.Flags().Set("name", "")
	}

	rootCmd.SetArgs([]string{"list", "--json"})
	out := captureStdout(t, func() {
		if err := rootCmd.Execute(); err != nil {
			t.Fatalf("list failed: %v", err)
		}
	})

	var groups []schedule.DayGroup
	if err := json.Unmarshal([]byte(out), &groups); err != nil {
		t.Fatalf("list output is not JSON: %v\n%s", err, out)
	}
	if len(groups) != 1 || groups[0].Day != schedule.Monday {
		t.Fatalf("expected one Monday group, got %+v", groups)
	}
	if len(groups[0].Items) != 2 || groups[0].Items[0].CourseID != "Comp132" {
		t.Errorf("expected Comp132 first, got %+v", groups[0].Items)
	}
}

func TestSearchCommand(t *testing.T) {
	setupHome(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"output":["Route A","Route B"]}`))
	}))
	defer server.Close()

	rootCmd.SetArgs([]string{"search", "--endpoint", server.URL, "Kadikoy"})
	out := captureStdout(t, func() {
		if err := rootCmd.Execute(); err != nil {
			t.Fatalf("search failed: %v", err)
		}
	})

	if !strings.Contains(out, "1. Route A\n2. Route B\n") {
		t.Errorf("expected routes in order, got:\n%s", out)
	}
}

func TestSearchCommand_Failure(t *testing.T) {
	setupHome(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	rootCmd.SetArgs([]string{"search", "--endpoint", url, "Kadikoy"})
	var err error
	captureStdout(t, func() {
		err = rootCmd.Execute()
	})

	if err == nil || !strings.HasPrefix(err.Error(), "Failed to fetch data: ") {
		t.Errorf("expected friendly failure message, got %v", err)
	}
}

func TestImportTSV(t *testing.T) {
	setupHome(t)

	path := filepath.Join(t.TempDir(), "week.tsv")
	data := "course_id\tname\tday_of_week\tstart_time\tend_time\n" +
		"Comp302\tSoftware, Engineering\tMonday\t11.20\t12.30\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	rootCmd.SetArgs([]string{"import", path})
	out := captureStdout(t, func() {
		if err := rootCmd.Execute(); err != nil {
			t.Fatalf("import failed: %v", err)
		}
	})
	if !strings.Contains(out, "Imported 1 course(s)") {
		t.Errorf("expected one imported course, got:\n%s", out)
	}
}

func TestWriteAtomic_FailureKeepsExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "schedule.ics")
	if err := os.WriteFile(path, []byte("previous export"), 0o644); err != nil {
		t.Fatal(err)
	}

	err := writeAtomic(path, func(w io.Writer) error {
		io.WriteString(w, "BEGIN:VCALENDAR")
		return errors.New("store unavailable")
	})
	if err == nil {
		t.Fatal("expected the write error to be returned")
	}

	data, _ := os.ReadFile(path)
	if string(data) != "previous export" {
		t.Errorf("existing file was modified: %q", data)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("expected no leftover temp files, got %d entries", len(entries))
	}

	missing := filepath.Join(dir, "new.csv")
	if err := writeAtomic(missing, func(io.Writer) error { return errors.New("boom") }); err == nil {
		t.Fatal("expected error")
	}
	if _, err := os.Stat(missing); !os.IsNotExist(err) {
		t.Errorf("failed export must not create %s", missing)
	}
}

func TestWriteAtomic_Success(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedule.csv")
	if err := writeAtomic(path, func(w io.Writer) error {
		_, err := io.WriteString(w, "course_id\n")
		return err
	}); err != nil {
		t.Fatalf("writeAtomic failed: %v", err)
	}
	if data, _ := os.ReadFile(path); string(data) != "course_id\n" {
		t.Errorf("unexpected content %q", data)
	}
}
