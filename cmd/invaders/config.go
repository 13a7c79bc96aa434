package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

var flagConfigResolved bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the game configuration",
	Long: `Print the embedded default configuration as YAML.

Save it to ~/.arcade/configs/invaders.yaml or ./configs/invaders.yaml and
edit it to customise the game; missing keys keep their defaults.

With --resolved, prints the configuration that would actually be used,
after the search order and --config are applied.

Examples:
  invaders config > ~/.arcade/configs/invaders.yaml
  invaders config --resolved --config ./my-invaders.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigResolved, "resolved", false, "Print the effective configuration")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	if !flagConfigResolved {
		data := config.GetDefaultYAML(invaders.GameID)
		if data == nil {
			return fmt.Errorf("no embedded config for %q", invaders.GameID)
		}
		_, err := out.Write(data)
		return err
	}

	cfg, source, err := config.ResolveInvaders(flagConfig)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	fmt.Fprintf(out, "# source: %s\n", source)
	_, err = out.Write(data)
	return err
}
