package scene

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-stickman/internal/config"
	"github.com/vovakirdan/tui-stickman/internal/core"
)

func testConfig() config.Config {
	return config.Config{
		Stickman: config.StickmanConfig{Width: 40, Height: 10, FPS: 4},
		Background: config.BackgroundConfig{
			Image: "background.txt",
			Color: "gray",
		},
		Player: config.PlayerConfig{
			X:                 10,
			Y:                 0,
			WalkRightVelocity: -5,
			WalkRight:         []string{"walk1.txt", "walk2.txt"},
			DefaultSize:       "Normal",
			Color:             "white",
		},
		Sizes: []config.SizePreset{{Name: "Normal", Scale: 1}},
	}
}

func testAssets() Assets {
	return Assets{
		Background: ParseSprite("..........\n__________"),
		Walk:       BuiltinWalk(),
	}
}

func TestNewScenePlacement(t *testing.T) {
	s := New(testConfig(), testAssets())

	x, y := s.Player().Position()
	if x != 4 {
		t.Errorf("player x = %d, expected 4 (10%% of 40)", x)
	}
	// Y=0% puts the feet on the bottom row.
	if expected := 10 - 3; y != expected {
		t.Errorf("player y = %d, expected %d", y, expected)
	}

	bgs := s.Backgrounds()
	if bgs[0].X() != 0 || bgs[1].X() != 40 {
		t.Errorf("background tiles at %d and %d, expected 0 and 40", bgs[0].X(), bgs[1].X())
	}
}

func TestSceneStepScrollsAndCountsDistance(t *testing.T) {
	s := New(testConfig(), testAssets())

	// Velocity is -5% of 40 = -2 cells per tick.
	var state core.GameState
	for i := 0; i < 3; i++ {
		state = s.Step(core.NewInputFrame()).State
	}

	if state.Distance != 6 {
		t.Errorf("Distance = %d, expected 6", state.Distance)
	}
	if x := s.Backgrounds()[0].X(); x != -6 {
		t.Errorf("background x = %d, expected -6", x)
	}
}

func TestScenePauseToggle(t *testing.T) {
	s := New(testConfig(), testAssets())

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)

	if !s.Step(pause).State.Paused {
		t.Fatal("scene should be paused after ActionPause")
	}
	s.Step(core.NewInputFrame())
	if s.State().Distance != 0 {
		t.Errorf("Distance = %d while paused, expected 0", s.State().Distance)
	}
	if s.Step(pause).State.Paused {
		t.Error("second ActionPause should resume")
	}
}

func TestSceneMovesWhilePausedAndClamps(t *testing.T) {
	s := New(testConfig(), testAssets())

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	s.Step(pause)

	up := core.NewInputFrame()
	up.Set(core.ActionUp)
	_, before := s.Player().Position()
	s.Step(up)
	if _, after := s.Player().Position(); after != before-MoveStep {
		t.Errorf("y = %d after Up, expected %d", after, before-MoveStep)
	}

	for i := 0; i < 50; i++ {
		s.Step(up)
	}
	if _, y := s.Player().Position(); y != 0 {
		t.Errorf("y = %d after many Up presses, expected 0", y)
	}

	down := core.NewInputFrame()
	down.Set(core.ActionDown)
	for i := 0; i < 50; i++ {
		s.Step(down)
	}
	if _, y := s.Player().Position(); y != 10-3 {
		t.Errorf("y = %d after many Down presses, expected %d", y, 10-3)
	}
}

func TestSceneScalesPlayer(t *testing.T) {
	cfg := testConfig()
	cfg.Sizes = []config.SizePreset{{Name: "Normal", Scale: 2}}

	s := New(cfg, testAssets())
	if h := s.Player().Frame().Height(); h != 6 {
		t.Errorf("frame height = %d, expected 6", h)
	}
}

func TestSceneRender(t *testing.T) {
	s := New(testConfig(), testAssets())
	dst := core.NewScreen(s.Width(), s.Height())
	s.Render(dst)

	if !strings.Contains(dst.Row(0), "Distance: 0") {
		t.Errorf("HUD missing, row 0 = %q", dst.Row(0))
	}
	if !strings.HasPrefix(dst.Row(9), "____") {
		t.Errorf("background should sit on the bottom row, got %q", dst.Row(9))
	}
	if dst.Get(5, 7) != 'o' {
		t.Errorf("expected player head at (5, 7), got %q", dst.Get(5, 7))
	}

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	s.Step(pause)
	s.Render(dst)
	if !strings.Contains(dst.String(), "PAUSED") {
		t.Error("paused scene should show PAUSED")
	}
}

func TestLoadAssets(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "walk1.txt"), []byte(" O \n-|-\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := testConfig()
	cfg.Stickman.ImagesDir = dir

	var buf bytes.Buffer
	logger := log.New(&buf)

	a := LoadAssets(cfg, logger)

	if !a.Background.Empty() {
		t.Error("missing background should stay blank")
	}
	if len(a.Walk) != 1 {
		t.Fatalf("len(Walk) = %d, expected 1 (missing frame skipped)", len(a.Walk))
	}
	if a.Walk[0].At(1, 0) != 'O' {
		t.Errorf("loaded frame = %q, expected the file contents", a.Walk[0].At(1, 0))
	}

	out := buf.String()
	if !strings.Contains(out, "background.txt") || !strings.Contains(out, "walk2.txt") {
		t.Errorf("expected warnings for both missing files, got:\n%s", out)
	}
}

func TestLoadAssetsFallsBackToBuiltin(t *testing.T) {
	cfg := testConfig()
	cfg.Stickman.ImagesDir = t.TempDir()

	a := LoadAssets(cfg, log.New(&bytes.Buffer{}))
	if len(a.Walk) != len(BuiltinWalk()) {
		t.Errorf("len(Walk) = %d, expected built-in frames", len(a.Walk))
	}
}

func TestBuiltinFiles(t *testing.T) {
	files, err := BuiltinFiles()
	if err != nil {
		t.Fatalf("BuiltinFiles() failed: %v", err)
	}
	for _, name := range []string{"background.txt", "walk1.txt", "walk2.txt"} {
		if len(files[name]) == 0 {
			t.Errorf("built-in %s missing", name)
		}
	}
}
