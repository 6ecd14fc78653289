package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-stacker/internal/storage"
)

func openScoresStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestPrintScoresTopAndAll(t *testing.T) {
	store := openScoresStore(t)
	for i := 1; i <= topScores+2; i++ {
		if _, err := store.SaveScore("stacker", i, i == 35); err != nil {
			t.Fatal(err)
		}
	}
	store.SaveScore("stacker", 35, true)

	var top bytes.Buffer
	if err := printScores(&top, store, "stacker", "Cube Stacker", false); err != nil {
		t.Fatalf("printScores() failed: %v", err)
	}
	out := top.String()
	if !strings.Contains(out, "High Scores - Cube Stacker") || !strings.Contains(out, "WIN") {
		t.Errorf("unexpected output:\n%s", out)
	}
	if !strings.Contains(out, "Best: 35  Wins: 1  Runs: 13") {
		t.Errorf("stats line missing:\n%s", out)
	}
	if strings.Contains(out, "\n  11  ") {
		t.Errorf("top view should stop at %d rows:\n%s", topScores, out)
	}

	var all bytes.Buffer
	if err := printScores(&all, store, "stacker", "Cube Stacker", true); err != nil {
		t.Fatalf("printScores(all) failed: %v", err)
	}
	if !strings.Contains(all.String(), "\n  13  ") {
		t.Errorf("--all should list every run:\n%s", all.String())
	}
}

func TestClearScores(t *testing.T) {
	store := openScoresStore(t)
	store.SaveScore("stacker", 12, false)
	store.SaveScore("stacker_endless", 40, false)

	var buf bytes.Buffer
	if err := clearScores(&buf, store, "stacker", "Cube Stacker"); err != nil {
		t.Fatalf("clearScores() failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Cleared all runs for Cube Stacker") {
		t.Errorf("unexpected output %q", buf.String())
	}

	if best, _ := store.HighScore("stacker"); best != 0 {
		t.Errorf("classic best = %d after clear, expected 0", best)
	}
	if best, _ := store.HighScore("stacker_endless"); best != 40 {
		t.Errorf("endless best = %d, clear should not touch other modes", best)
	}

	buf.Reset()
	if err := printScores(&buf, store, "stacker", "Cube Stacker", false); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "No runs recorded yet.") {
		t.Errorf("cleared mode should print the empty message:\n%s", buf.String())
	}
}
