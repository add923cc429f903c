package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/flappy/internal/config"
)

var flagResolved bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the game configuration",
	Long: `Print the embedded default configuration as YAML.

Save it to ~/.flappy/configs/flappy.yaml or ./configs/flappy.yaml to
customize the game, or pass it with --config. Keys you leave out keep
their defaults.

With --resolved, prints the configuration the game would actually run
with after applying --config and --preset.

Examples:
  flappy config > ~/.flappy/configs/flappy.yaml
  flappy config --resolved --preset wide`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagResolved, "resolved", false, "Print the loaded config with the preset applied")
}

func runConfig(_ *cobra.Command, _ []string) {
	if !flagResolved {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	_, cfg, _, err := loadGameConfig()
	if err != nil {
		fail("%v", err)
	}
	out, err := yaml.Marshal(cfg)
	if err != nil {
		fail("encoding config: %v", err)
	}
	fmt.Print(string(out))
}
