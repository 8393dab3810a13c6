// Package config turns a parsed INI store into the settings the stickman
// scene is built from. Every value is pulled through the store's typed reads
// with an inline default, so a sparse file still yields a playable scene.
package config

import (
	"path/filepath"
)

// Config is the resolved scene configuration.
type Config struct {
	Path       string           `yaml:"path"`
	Stickman   StickmanConfig   `yaml:"stickman"`
	Background BackgroundConfig `yaml:"background"`
	Player     PlayerConfig     `yaml:"player"`
	Sizes      []SizePreset     `yaml:"sizes"`
}

// StickmanConfig holds the scene-wide settings.
type StickmanConfig struct {
	Width     int    `yaml:"width"`  // Scene width in cells
	Height    int    `yaml:"height"` // Scene height in cells
	FPS       int    `yaml:"fps"`
	ImagesDir string `yaml:"images_dir"` // Resolved against the config file's directory
}

// BackgroundConfig describes the scrolling backdrop.
type BackgroundConfig struct {
	Image string `yaml:"image"`
	Color string `yaml:"color"`
}

// PlayerConfig describes the walking stickman. Positions and velocity are
// percentages of the scene size, exactly as written in the file.
type PlayerConfig struct {
	X                 int      `yaml:"x"`
	Y                 int      `yaml:"y"`
	WalkRightVelocity int      `yaml:"walk_right_velocity"`
	WalkRight         []string `yaml:"walk_right"`
	DefaultSize       string   `yaml:"default_size"`
	Color             string   `yaml:"color"`
}

// SizePreset is a named scaling factor for the player sprite.
type SizePreset struct {
	Name  string  `yaml:"name"`
	Scale float64 `yaml:"scale"`
}

// StartX returns the player's starting column.
func (c Config) StartX() int {
	return (c.Player.X * c.Stickman.Width) / 100
}

// StartY returns the player's starting height above the bottom edge, in rows.
func (c Config) StartY() int {
	return (c.Player.Y * c.Stickman.Height) / 100
}

// Velocity returns the background scroll speed in cells per tick.
func (c Config) Velocity() int {
	return (c.Player.WalkRightVelocity * c.Stickman.Width) / 100
}

// Scale returns the scaling factor of the default size preset.
func (c Config) Scale() float64 {
	if p, ok := c.Size(c.Player.DefaultSize); ok {
		return p.Scale
	}
	return 1.0
}

// Size looks up a size preset by name.
func (c Config) Size(name string) (SizePreset, bool) {
	for _, p := range c.Sizes {
		if p.Name == name {
			return p, true
		}
	}
	return SizePreset{}, false
}

// ImagePath returns the path of an image file inside ImagesDir.
func (c Config) ImagePath(name string) string {
	return filepath.Join(c.Stickman.ImagesDir, name)
}

// BackgroundPath returns the path of the background image.
func (c Config) BackgroundPath() string {
	return c.ImagePath(c.Background.Image)
}

// WalkPaths returns the paths of the walk animation frames in order.
func (c Config) WalkPaths() []string {
	paths := make([]string, 0, len(c.Player.WalkRight))
	for _, name := range c.Player.WalkRight {
		paths = append(paths, c.ImagePath(name))
	}
	return paths
}
