package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestScoreboardShowsRunsAndWins(t *testing.T) {
	store := openModelStore(t)
	store.SaveScore("stacker", 35, true)
	store.SaveScore("stacker", 12, false)
	store.SaveScore("stacker_endless", 48, false)

	m := NewScoreboardModel(store, 100, 30)

	if len(m.games) != 2 {
		t.Fatalf("expected both modes on the scoreboard, got %d", len(m.games))
	}
	rows := m.table.Rows()
	if len(rows) != 2 {
		t.Fatalf("expected 2 classic rows, got %d", len(rows))
	}
	if rows[0][1] != "35" || rows[0][2] != "WIN" || rows[1][2] != "" {
		t.Errorf("unexpected rows: %v", rows)
	}
	if got := m.statsLine(); got != "Runs: 2  |  Wins: 1  |  Best: 35" {
		t.Errorf("statsLine() = %q", got)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	rows = m.table.Rows()
	if len(rows) != 1 || rows[0][1] != "48" {
		t.Errorf("tab should switch to the endless scores, got %v", rows)
	}
	if !strings.Contains(m.View(), "Cube Stacker (Endless)") {
		t.Error("title should name the selected mode")
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)

	if len(m.table.Rows()) != 0 {
		t.Error("no store should mean no rows")
	}
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Errorf("empty scoreboard should say so:\n%s", m.View())
	}

	next, _ := m.Update(runeKey("b"))
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("b should go back")
	}
}
