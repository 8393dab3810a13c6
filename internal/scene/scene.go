// Package scene implements the stickman animation: a walking player in front
// of a backdrop that scrolls past. It is pure per-tick state mutation with no
// Bubble Tea dependency.
package scene

import (
	"fmt"

	"github.com/vovakirdan/tui-stickman/internal/config"
	"github.com/vovakirdan/tui-stickman/internal/core"
)

// MoveStep is how many rows one Up/Down press moves the player.
const MoveStep = 1

// Scene holds the entities of one run.
type Scene struct {
	width    int
	height   int
	velocity int
	bgs      [2]*Background
	player   *Player
	paused   bool
	distance int
}

// New builds a scene from a resolved configuration and loaded assets.
func New(cfg config.Config, assets Assets) *Scene {
	s := &Scene{
		width:    cfg.Stickman.Width,
		height:   cfg.Stickman.Height,
		velocity: cfg.Velocity(),
	}

	bgColor := colorOr(cfg.Background.Color, core.ColorGray)
	tile := assets.Background.Tile(s.width)
	s.bgs[0] = NewBackground(tile, 0, s.velocity, bgColor)
	s.bgs[1] = NewBackground(tile, tile.Width(), s.velocity, bgColor)

	scale := cfg.Scale()
	s.player = NewPlayer(cfg.Stickman.FPS, colorOr(cfg.Player.Color, core.ColorWhite))
	for _, frame := range assets.Walk {
		s.player.AddFrame(frame.Scale(scale))
	}

	// StartY is measured from the bottom edge to the player's feet.
	frameH := s.player.Frame().Height()
	s.player.SetPosition(cfg.StartX(), s.height-cfg.StartY()-frameH)
	s.player.MoveBy(0, s.maxPlayerY())

	return s
}

func colorOr(name string, fallback core.Color) core.Color {
	if c, ok := core.ColorByName(name); ok {
		return c
	}
	return fallback
}

func (s *Scene) maxPlayerY() int {
	return s.height - s.player.Frame().Height()
}

// Width returns the scene width in cells.
func (s *Scene) Width() int {
	return s.width
}

// Height returns the scene height in cells.
func (s *Scene) Height() int {
	return s.height
}

// Player returns the scene's player.
func (s *Scene) Player() *Player {
	return s.player
}

// Backgrounds returns the two backdrop tiles.
func (s *Scene) Backgrounds() [2]*Background {
	return s.bgs
}

// Step advances the scene by one tick. Up/Down moves apply even while
// paused; animation and scrolling do not.
func (s *Scene) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		s.paused = !s.paused
	}
	if in.Has(core.ActionUp) {
		s.player.MoveBy(-MoveStep, s.maxPlayerY())
	}
	if in.Has(core.ActionDown) {
		s.player.MoveBy(MoveStep, s.maxPlayerY())
	}

	if !s.paused {
		for _, bg := range s.bgs {
			bg.Advance()
		}
		s.player.Advance()
		s.distance += core.Abs(s.velocity)
	}

	return core.StepResult{State: s.State()}
}

// State returns the current scene state.
func (s *Scene) State() core.GameState {
	return core.GameState{
		Distance: s.distance,
		Paused:   s.paused,
	}
}

// Render draws the scene into dst. dst is expected to be scene-sized.
func (s *Scene) Render(dst *core.Screen) {
	dst.Clear()

	ground := s.height - 1
	for _, bg := range s.bgs {
		bg.Draw(dst, ground)
	}
	s.player.Draw(dst)

	dst.DrawTextColor(1, 0, fmt.Sprintf(" Distance: %d ", s.distance), core.ColorYellow)

	if s.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawCenteredMessage draws a message box in the middle of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
