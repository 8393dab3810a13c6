package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-stickman/internal/config"
	"github.com/vovakirdan/tui-stickman/internal/scene"
)

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Write an example config with sprites",
	Long: `Write the example config file and its sprites into a directory
(the current one by default). Existing files are never overwritten.

The layout is:
  <dir>/.config
  <dir>/assets/background.txt
  <dir>/assets/walk1.txt
  <dir>/assets/walk2.txt

Examples:
  stickman init
  stickman init ./scene && cd scene && stickman play`,
	Args: cobra.MaximumNArgs(1),
	Run:  runInit,
}

func runInit(_ *cobra.Command, args []string) {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	files, err := scaffold(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	for _, f := range files {
		fmt.Println("wrote", f)
	}
}

// scaffold writes the example config and sprites under dir and returns the
// paths written. Nothing is written if any target already exists.
func scaffold(dir string) ([]string, error) {
	sprites, err := scene.BuiltinFiles()
	if err != nil {
		return nil, fmt.Errorf("cannot read built-in sprites: %w", err)
	}

	targets := map[string][]byte{
		filepath.Join(dir, ".config"): config.ExampleINI(),
	}
	for name, data := range sprites {
		targets[filepath.Join(dir, config.DefaultImagesDir, name)] = data
	}

	paths := make([]string, 0, len(targets))
	for path := range targets {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return nil, fmt.Errorf("%s already exists", path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	if err := os.MkdirAll(filepath.Join(dir, config.DefaultImagesDir), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create assets directory: %w", err)
	}

	written := make([]string, 0, len(paths))
	for _, path := range paths {
		if err := os.WriteFile(path, targets[path], 0o644); err != nil {
			return written, fmt.Errorf("cannot write %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}
