package scene

import (
	"github.com/vovakirdan/tui-stickman/internal/core"
)

// Player is the animated stickman. It cycles through its walk frames so the
// whole cycle takes roughly one second at the configured frame rate.
type Player struct {
	frames   []Sprite
	current  Sprite
	index    int // Next frame to show
	tick     int // Ticks since creation
	fps      int
	changeAt int // Ticks between frame changes
	x, y     int
	color    core.Color
}

// NewPlayer creates a player with no frames.
func NewPlayer(fps int, color core.Color) *Player {
	fps = core.Max(fps, 1)
	return &Player{
		fps:      fps,
		changeAt: fps,
		color:    color,
	}
}

// AddFrame appends an animation frame. The first frame becomes visible
// immediately so the player has a size before the first tick.
func (p *Player) AddFrame(s Sprite) {
	p.frames = append(p.frames, s)
	if len(p.frames) == 1 {
		p.current = s
	}
	p.changeAt = core.Max(1, p.fps/len(p.frames))
}

// Advance moves the animation forward by one tick.
func (p *Player) Advance() {
	if len(p.frames) == 0 {
		return
	}
	if p.tick%p.changeAt == 0 {
		p.index %= len(p.frames)
		p.current = p.frames[p.index]
		p.index++
	}
	p.tick++
}

// Frame returns the frame currently shown.
func (p *Player) Frame() Sprite {
	return p.current
}

// FrameCount returns the number of animation frames.
func (p *Player) FrameCount() int {
	return len(p.frames)
}

// Position returns the top-left corner of the player.
func (p *Player) Position() (int, int) {
	return p.x, p.y
}

// SetPosition places the player's top-left corner.
func (p *Player) SetPosition(x, y int) {
	p.x, p.y = x, y
}

// MoveBy shifts the player vertically, keeping it inside [0, maxY].
func (p *Player) MoveBy(dy, maxY int) {
	p.y = core.Clamp(p.y+dy, 0, core.Max(maxY, 0))
}

// Draw renders the current frame.
func (p *Player) Draw(dst *core.Screen) {
	p.current.Draw(dst, p.x, p.y, p.color)
}

// Background is one tile of the scrolling backdrop. Two tiles placed one
// tile-width apart scroll seamlessly: a tile leaving the range [-w, w) on
// one side re-enters on the other.
type Background struct {
	tile     Sprite
	x        int
	velocity int
	color    core.Color
}

// NewBackground creates a tile at column x moving velocity cells per tick.
func NewBackground(tile Sprite, x, velocity int, color core.Color) *Background {
	return &Background{tile: tile, x: x, velocity: velocity, color: color}
}

// Advance moves the tile and wraps it around.
func (b *Background) Advance() {
	w := b.tile.Width()
	if w == 0 {
		return
	}
	span := 2 * w
	b.x = ((b.x+b.velocity+w)%span+span)%span - w
}

// X returns the tile's current column.
func (b *Background) X() int {
	return b.x
}

// Draw renders the tile with its bottom edge on row bottom.
func (b *Background) Draw(dst *core.Screen, bottom int) {
	b.tile.Draw(dst, b.x, bottom-b.tile.Height()+1, b.color)
}
