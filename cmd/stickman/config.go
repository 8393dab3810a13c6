package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-stickman/internal/config"
	"github.com/vovakirdan/tui-stickman/internal/ini"
)

var (
	flagExample bool
	flagRaw     bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved configuration",
	Long: `Print the configuration the scene would run with, as YAML.

By default every setting is shown after defaults are applied and paths
are resolved. --raw shows the sections and keys exactly as parsed.
--example prints the built-in example config file.

Examples:
  stickman config
  stickman config --raw
  stickman config --example > .config`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagExample, "example", false, "Print the example config file")
	configCmd.Flags().BoolVar(&flagRaw, "raw", false, "Print the parsed sections without defaults")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagExample {
		os.Stdout.Write(config.ExampleINI())
		return
	}

	var out any
	if flagRaw {
		store := ini.Load(flagConfig)
		if err := store.Status().Err(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", flagConfig, err)
			os.Exit(1)
		}
		out = store.Snapshot()
	} else {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		out = cfg
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding config: %v\n", err)
		os.Exit(1)
	}
	enc.Close()
}
