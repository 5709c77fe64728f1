package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

var flagEffective bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print game settings as YAML",
	Long: `Prints the built-in settings file. Save it to ~/.snake/configs/snake.yaml
and edit it to change the defaults.

With --effective, prints the settings after --config, the user file and
--difficulty have been applied.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagEffective, "effective", false, "Print the settings in use instead of the defaults")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if !flagEffective {
		_, err := out.Write(config.DefaultSnakeYAML())
		return err
	}

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(snake.PresetConfig(preset)); err != nil {
		return err
	}
	return enc.Close()
}
