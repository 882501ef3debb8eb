package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rooftop-run/internal/config"
)

var flagWrite bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the default game configuration as YAML.

With --write, the defaults are saved to ~/.rooftop/configs/rooftop.yaml
where they are picked up automatically on the next run. Edit that file
to tune physics and world generation.

Examples:
  rooftop config
  rooftop config --write
  rooftop config > my-rooftop.yaml`,
	Run: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagWrite, "write", false, "Write defaults to ~/.rooftop/configs/rooftop.yaml")
}

func runConfig(cmd *cobra.Command, args []string) {
	if !flagWrite {
		fmt.Print(string(config.DefaultYAML()))
		return
	}

	home, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot resolve home directory: %v\n", err)
		os.Exit(1)
	}

	path := filepath.Join(home, ".rooftop", "configs", "rooftop.yaml")
	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(os.Stderr, "Error: %s already exists, refusing to overwrite\n", path)
		os.Exit(1)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot create config directory: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(path, config.DefaultYAML(), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot write config: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote defaults to %s\n", path)
}
