// stickman walks an ASCII stickman across a scrolling skyline in the terminal.
// Everything about the scene is read from an INI-style config file.
//
// Usage:
//
//	stickman play            - Run the scene
//	stickman init [dir]      - Write an example config and sprites
//	stickman config          - Show the resolved configuration
//	stickman scores          - Show the longest runs
//	stickman serve           - Start SSH server for remote viewing
//
// Global flags:
//
//	--config <path> - Config file (default: .config)
//	--db <path>     - Run history database (default: ~/.stickman/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "stickman",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "stickman",
	Short: "Stickman - a walking stickman in your terminal",
	Long: `Stickman animates a walking stick figure over a scrolling background.
The scene size, speed, sprites and player sizes all come from an INI file.

Available commands:
  play     - Run the scene
  init     - Write an example config with sprites
  config   - Show the resolved configuration
  scores   - View the longest runs
  serve    - Start SSH server for remote viewing

Examples:
  stickman init
  stickman play
  stickman play --config ./scenes/night.ini --watch
  stickman config --raw
  stickman serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", ".config", "Path to the scene config file")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.stickman/runs.db", "Path to run history database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
