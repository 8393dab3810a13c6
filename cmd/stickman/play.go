package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-stickman/internal/config"
	"github.com/vovakirdan/tui-stickman/internal/core"
	"github.com/vovakirdan/tui-stickman/internal/platform/tui"
	"github.com/vovakirdan/tui-stickman/internal/scene"
	"github.com/vovakirdan/tui-stickman/internal/storage"
)

var flagWatch bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Run the scene",
	Long: `Run the stickman scene described by the config file.

Controls:
  Up/W       - Move up
  Down/S     - Move down
  P          - Pause
  Esc/Q      - Quit

Examples:
  stickman play
  stickman play --config ./my.ini
  stickman play --watch          # Reload when the config file changes`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the scene when the config file changes")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	assets := scene.LoadAssets(cfg, logger)

	runtime := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		runtime.ScreenW, runtime.ScreenH = w, h
		// One extra row for the help line.
		if w < cfg.Stickman.Width || h < cfg.Stickman.Height+1 {
			logger.Warn("terminal is smaller than the scene",
				"terminal", fmt.Sprintf("%dx%d", w, h),
				"scene", fmt.Sprintf("%dx%d", cfg.Stickman.Width, cfg.Stickman.Height),
			)
		}
	}

	// Continue without storage - the scene still runs
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run history", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	var watcher *tui.ConfigWatcher
	if flagWatch {
		watcher, err = tui.WatchConfig(flagConfig)
		if err != nil {
			logger.Warn("config reload disabled", "error", err)
			watcher = nil
		} else {
			defer watcher.Close()
		}
	}

	runErr := tui.Run(cfg, assets, tui.Options{
		Store:   store,
		Watcher: watcher,
		Runtime: runtime,
	})
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
