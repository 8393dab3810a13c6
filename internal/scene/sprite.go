package scene

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/vovakirdan/tui-stickman/internal/core"
)

// Sprite is a block of ASCII art. Spaces are transparent when drawn.
type Sprite struct {
	rows  [][]rune
	width int
}

// ParseSprite builds a sprite from multi-line text. Trailing blank lines are
// dropped and short rows are padded to the widest row.
func ParseSprite(text string) Sprite {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	var s Sprite
	for _, line := range lines {
		row := []rune(line)
		s.width = core.Max(s.width, len(row))
		s.rows = append(s.rows, row)
	}
	for i, row := range s.rows {
		if pad := s.width - len(row); pad > 0 {
			s.rows[i] = append(row, []rune(strings.Repeat(" ", pad))...)
		}
	}
	return s
}

// LoadSprite reads a sprite from a text file.
func LoadSprite(path string) (Sprite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Sprite{}, fmt.Errorf("scene: cannot read sprite %s: %w", path, err)
	}
	return ParseSprite(string(data)), nil
}

// Width returns the sprite width in cells.
func (s Sprite) Width() int {
	return s.width
}

// Height returns the sprite height in cells.
func (s Sprite) Height() int {
	return len(s.rows)
}

// Empty reports whether the sprite has no visible area.
func (s Sprite) Empty() bool {
	return s.width == 0 || len(s.rows) == 0
}

// At returns the rune at (x, y), or a space outside the sprite.
func (s Sprite) At(x, y int) rune {
	if y < 0 || y >= len(s.rows) || x < 0 || x >= s.width {
		return ' '
	}
	return s.rows[y][x]
}

// Scale resamples the sprite by factor using nearest-neighbour lookup.
// Non-empty sprites never shrink below one cell. Factors that are not
// positive and finite leave the sprite unchanged.
func (s Sprite) Scale(factor float64) Sprite {
	if s.Empty() || factor <= 0 || factor == 1 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return s
	}

	w := core.Max(1, int(math.Round(float64(s.width)*factor)))
	h := core.Max(1, int(math.Round(float64(len(s.rows))*factor)))

	out := Sprite{width: w, rows: make([][]rune, h)}
	for y := range out.rows {
		srcY := core.Min(int(float64(y)/factor), len(s.rows)-1)
		row := make([]rune, w)
		for x := range row {
			srcX := core.Min(int(float64(x)/factor), s.width-1)
			row[x] = s.rows[srcY][srcX]
		}
		out.rows[y] = row
	}
	return out
}

// Tile repeats the sprite horizontally until it is at least minWidth wide.
func (s Sprite) Tile(minWidth int) Sprite {
	if s.Empty() || s.width >= minWidth {
		return s
	}

	copies := (minWidth + s.width - 1) / s.width
	out := Sprite{width: s.width * copies, rows: make([][]rune, len(s.rows))}
	for y, row := range s.rows {
		tiled := make([]rune, 0, out.width)
		for i := 0; i < copies; i++ {
			tiled = append(tiled, row...)
		}
		out.rows[y] = tiled
	}
	return out
}

// Draw blits the sprite onto dst with its top-left corner at (x, y).
func (s Sprite) Draw(dst *core.Screen, x, y int, c core.Color) {
	for dy, row := range s.rows {
		for dx, r := range row {
			if r == ' ' {
				continue
			}
			dst.SetCell(x+dx, y+dy, core.Cell{Rune: r, Color: c})
		}
	}
}
