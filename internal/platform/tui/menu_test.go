package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func testMenu() MenuModel {
	return MenuModel{
		items: []MenuItem{
			{GameID: "lander", Title: "Lunar Lander", Best: 120, Runs: 3},
			{GameID: "pong", Title: "Pong", VsCPU: true},
			{GameID: "scene", Title: "Scene"},
		},
		keys: NewKeyMapper(),
	}
}

func press(m MenuModel, keys ...string) MenuModel {
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		m = next.(MenuModel)
	}
	return m
}

func TestMenuCursorWraps(t *testing.T) {
	tests := []struct {
		keys     []string
		expected int
	}{
		{nil, 0},
		{[]string{"down"}, 1},
		{[]string{"up"}, 2},
		{[]string{"down", "down", "down"}, 0},
		{[]string{"j", "k", "k"}, 2},
	}
	for _, tc := range tests {
		if got := press(testMenu(), tc.keys...).cursor; got != tc.expected {
			t.Errorf("cursor after %v = %d, expected %d", tc.keys, got, tc.expected)
		}
	}
}

func TestMenuSelect(t *testing.T) {
	m := press(testMenu(), "down", "enter")
	if m.Selected() != "pong" {
		t.Errorf("Selected() = %q, expected %q", m.Selected(), "pong")
	}
	if m.IsQuitting() {
		t.Error("IsQuitting() = true after select, expected false")
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	if m := press(testMenu(), "tab"); !m.WantsScoreboard() {
		t.Error("WantsScoreboard() = false after tab, expected true")
	}
	if m := press(testMenu(), "q"); !m.IsQuitting() {
		t.Error("IsQuitting() = false after q, expected true")
	}
}

func TestMenuRecord(t *testing.T) {
	m := testMenu()
	if got, expected := m.record(), "best 120 over 3 runs"; got != expected {
		t.Errorf("record() = %q, expected %q", got, expected)
	}
	m = press(m, "down")
	if got, expected := m.record(), "not played yet"; got != expected {
		t.Errorf("record() = %q, expected %q", got, expected)
	}
}

func TestMenuTracksWindowSize(t *testing.T) {
	next, _ := testMenu().Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	cfg := next.(MenuModel).Config()
	if cfg.ScreenW != 100 || cfg.ScreenH != 40 {
		t.Errorf("Config() = %dx%d, expected 100x40", cfg.ScreenW, cfg.ScreenH)
	}
}
