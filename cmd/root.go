package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/misterclayt0n/liftcalc/internal/config"
	"github.com/misterclayt0n/liftcalc/internal/form"
	"github.com/spf13/cobra"
)

var cfg = config.Default()

var rootCmd = &cobra.Command{
	Use:           "liftcalc",
	Short:         "Lean body mass, lift targets and RPE based 1RM estimates",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		color.NoColor = color.NoColor || !cfg.Output.Color
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func parser() form.Parser {
	return form.Parser{Expressions: cfg.Input.Expressions}
}
