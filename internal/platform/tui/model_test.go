package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-stickman/internal/config"
	"github.com/vovakirdan/tui-stickman/internal/scene"
	"github.com/vovakirdan/tui-stickman/internal/storage"
)

func testConfig() config.Config {
	return config.Config{
		Stickman: config.StickmanConfig{Width: 40, Height: 10, FPS: 4},
		Player: config.PlayerConfig{
			X:                 10,
			WalkRightVelocity: -5,
			DefaultSize:       "Normal",
		},
		Sizes: []config.SizePreset{{Name: "Normal", Scale: 1}},
	}
}

func testAssets() scene.Assets {
	return scene.Assets{
		Background: scene.ParseSprite("__________"),
		Walk:       scene.BuiltinWalk(),
	}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return model, cmd
}

func TestModelTickStepsScene(t *testing.T) {
	m := NewModel(testConfig(), testAssets(), Options{})

	m, cmd := update(t, m, TickMsg{})
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if d := m.Scene().State().Distance; d != 2 {
		t.Errorf("Distance = %d after one tick, expected 2", d)
	}
}

func TestModelPauseKey(t *testing.T) {
	m := NewModel(testConfig(), testAssets(), Options{})

	m, _ = update(t, m, runeKey('p'))
	m, _ = update(t, m, TickMsg{})
	if !m.Scene().State().Paused {
		t.Fatal("scene should be paused")
	}

	m, _ = update(t, m, TickMsg{})
	if d := m.Scene().State().Distance; d != 0 {
		t.Errorf("Distance = %d while paused, expected 0", d)
	}
}

func TestModelQuitSavesRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := NewModel(testConfig(), testAssets(), Options{Store: store, Source: "alice"})
	for i := 0; i < 3; i++ {
		m, _ = update(t, m, TickMsg{})
	}

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("len(runs) = %d, expected 1", len(runs))
	}
	if runs[0].Distance != 6 || runs[0].Source != "alice" || runs[0].Size != "Normal" {
		t.Errorf("saved run = %+v", runs[0])
	}
}

func TestModelQuitWithoutDistanceSavesNothing(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := NewModel(testConfig(), testAssets(), Options{Store: store})
	update(t, m, runeKey('q'))

	best, err := store.BestDistance()
	if err != nil {
		t.Fatalf("BestDistance() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("BestDistance() = %d, expected no runs", best)
	}
}

func TestModelView(t *testing.T) {
	m := NewModel(testConfig(), testAssets(), Options{})

	view := m.View()
	if !strings.Contains(view, "Distance: 0") {
		t.Error("view should contain the HUD")
	}
	if !strings.Contains(view, "pause") {
		t.Error("view should contain the help line")
	}
}

func TestModelConfigReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".config")
	if err := os.WriteFile(path, config.ExampleINI(), 0o600); err != nil {
		t.Fatal(err)
	}

	m := NewModel(testConfig(), testAssets(), Options{})
	m, _ = update(t, m, ConfigChangedMsg{Path: path})

	if !strings.HasPrefix(m.Status(), "config reloaded") {
		t.Fatalf("Status() = %q, expected a reload", m.Status())
	}
	// The example file has no assets next to it, so it warns.
	if !strings.Contains(m.Status(), "warning") {
		t.Errorf("Status() = %q, expected missing asset warnings", m.Status())
	}
	if w := m.Scene().Width(); w != config.DefaultWidth {
		t.Errorf("scene width = %d, expected %d", w, config.DefaultWidth)
	}
}

func TestModelConfigReloadFailureKeepsScene(t *testing.T) {
	m := NewModel(testConfig(), testAssets(), Options{})
	before := m.Scene()

	m, _ = update(t, m, ConfigChangedMsg{Path: filepath.Join(t.TempDir(), "missing")})

	if !strings.HasPrefix(m.Status(), "reload failed") {
		t.Errorf("Status() = %q, expected a failure", m.Status())
	}
	if m.Scene() != before {
		t.Error("failed reload should keep the running scene")
	}
}
