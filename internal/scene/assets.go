package scene

import (
	"embed"
	"errors"
	"io/fs"
	"path"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-stickman/internal/config"
)

//go:embed sprites/*.txt
var builtinSprites embed.FS

// Assets are the sprites a scene is built from.
type Assets struct {
	Background Sprite
	Walk       []Sprite
}

// LoadAssets resolves and reads the image files named by cfg. Missing or
// unreadable files are logged and skipped. When no walk frame could be read
// the built-in stick figure is used; a missing background stays blank.
func LoadAssets(cfg config.Config, logger *log.Logger) Assets {
	var a Assets

	bgPath := cfg.BackgroundPath()
	bg, err := LoadSprite(bgPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		logger.Warn("background image does not exist, the scene will be very bland", "path", bgPath)
	case err != nil:
		logger.Warn("cannot read background image", "path", bgPath, "error", err)
	default:
		a.Background = bg
	}

	for _, framePath := range cfg.WalkPaths() {
		frame, err := LoadSprite(framePath)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				logger.Warn("image file does not exist, skipping", "path", framePath)
			} else {
				logger.Warn("cannot read image file, skipping", "path", framePath, "error", err)
			}
			continue
		}
		a.Walk = append(a.Walk, frame)
	}

	if len(a.Walk) == 0 {
		logger.Warn("no player image could be loaded, using the built-in stickman")
		a.Walk = BuiltinWalk()
	}

	return a
}

// BuiltinWalk returns the embedded two-frame walk cycle.
func BuiltinWalk() []Sprite {
	return []Sprite{mustBuiltin("sprites/walk1.txt"), mustBuiltin("sprites/walk2.txt")}
}

// BuiltinFiles returns the raw embedded sprite files keyed by base name,
// matching the names used by the example configuration.
func BuiltinFiles() (map[string][]byte, error) {
	entries, err := builtinSprites.ReadDir("sprites")
	if err != nil {
		return nil, err
	}
	files := make(map[string][]byte, len(entries))
	for _, e := range entries {
		data, err := builtinSprites.ReadFile(path.Join("sprites", e.Name()))
		if err != nil {
			return nil, err
		}
		files[e.Name()] = data
	}
	return files, nil
}

func mustBuiltin(name string) Sprite {
	data, err := builtinSprites.ReadFile(name)
	if err != nil {
		panic("scene: missing embedded sprite " + name)
	}
	return ParseSprite(string(data))
}
