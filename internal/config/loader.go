package config

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/vovakirdan/tui-stickman/internal/ini"
)

// Errors returned by Load beyond the store's own status errors.
var (
	ErrNoSizes      = errors.New("config: no player size has been specified")
	ErrUnknownSize  = errors.New("config: default size is not a listed size")
	ErrInvalidValue = errors.New("config: invalid value")
)

// Load parses the INI file at path and resolves the scene configuration.
// A non-OK parse status is returned as an error wrapping the matching ini
// sentinel; no values are read from an untrusted store.
func Load(path string) (Config, error) {
	store := ini.Load(path)
	if err := store.Status().Err(); err != nil {
		return Config{}, fmt.Errorf("config: cannot parse %q: %w", path, err)
	}

	cfg, err := FromStore(store, filepath.Dir(path))
	if err != nil {
		return Config{}, err
	}
	cfg.Path = path
	return cfg, nil
}

// FromStore reads every setting from a parsed store. Relative ImagesDir
// values are resolved against baseDir.
func FromStore(store *ini.Store, baseDir string) (Config, error) {
	cfg := Config{
		Stickman: StickmanConfig{
			Width:     store.ReadInteger("Stickman", "Width", DefaultWidth),
			Height:    store.ReadInteger("Stickman", "Height", DefaultHeight),
			FPS:       store.ReadInteger("Stickman", "FPS", DefaultFPS),
			ImagesDir: store.ReadString("Stickman", "ImagesDir", DefaultImagesDir),
		},
		Background: BackgroundConfig{
			Image: store.ReadString("Background", "Image", DefaultBackgroundImage),
			Color: store.ReadString("Background", "Color", DefaultBackgroundColor),
		},
		Player: PlayerConfig{
			X:                 store.ReadInteger("Player", "X", DefaultPlayerX),
			Y:                 store.ReadInteger("Player", "Y", DefaultPlayerY),
			WalkRightVelocity: store.ReadInteger("Player", "WalkRightVelocity", DefaultWalkRightVelocity),
			WalkRight:         splitList(store.ReadString("Player", "WalkRight", DefaultWalkRight)),
			DefaultSize:       store.ReadString("Player", "DefaultSize", DefaultSize),
			Color:             store.ReadString("Player", "Color", DefaultPlayerColor),
		},
	}

	if err := validate(cfg.Stickman); err != nil {
		return Config{}, err
	}

	if !filepath.IsAbs(cfg.Stickman.ImagesDir) && baseDir != "" {
		cfg.Stickman.ImagesDir = filepath.Join(baseDir, cfg.Stickman.ImagesDir)
	}

	names := splitList(store.ReadString("Sizes", "Sizes", ""))
	if len(names) == 0 {
		return Config{}, ErrNoSizes
	}
	for _, name := range names {
		scale := store.ReadReal("Size"+name, "Scale", DefaultScale)
		if math.IsNaN(scale) || scale <= 0 || scale > MaxScale {
			return Config{}, fmt.Errorf("%w: scale %v for size %q", ErrInvalidValue, scale, name)
		}
		cfg.Sizes = append(cfg.Sizes, SizePreset{Name: name, Scale: scale})
	}

	if _, ok := cfg.Size(cfg.Player.DefaultSize); !ok {
		return Config{}, fmt.Errorf("%w: %q (have %s)", ErrUnknownSize, cfg.Player.DefaultSize, strings.Join(names, ", "))
	}

	return cfg, nil
}

func validate(s StickmanConfig) error {
	if s.Width <= 0 || s.Height <= 0 || s.Width > MaxSceneSize || s.Height > MaxSceneSize {
		return fmt.Errorf("%w: scene size %dx%d", ErrInvalidValue, s.Width, s.Height)
	}
	if s.FPS <= 0 || s.FPS > MaxFPS {
		return fmt.Errorf("%w: fps %d", ErrInvalidValue, s.FPS)
	}
	return nil
}

// splitList splits a '+'-separated list, dropping empty names.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, "+") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
