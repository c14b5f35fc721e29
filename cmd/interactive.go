package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/misterclayt0n/liftcalc/internal/form"
	"github.com/spf13/cobra"
)

const interactiveHelp = `Set a field with "<field> <value>", e.g.:
  weight 100        bf 20        target 80        dumbbell on
  rpe.weight 140    rpe 8.5      reps 3           rpe.unit lbs
  unit lbs          (lift form unless prefixed with rpe.)
Other commands: show, help, quit`

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"i"},
	Short:   "Fill in both calculators field by field, recomputing after every change",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		session := form.NewSession(cfg.Units.Lift, cfg.Units.RPE, parser())

		printBoxedHeader(out, "LIFTCALC")
		fmt.Fprintln(out, interactiveHelp)

		scanner := bufio.NewScanner(cmd.InOrStdin())
		for {
			fmt.Fprint(out, "> ")
			if !scanner.Scan() {
				break
			}

			line := strings.TrimSpace(scanner.Text())
			switch line {
			case "":
				continue
			case "quit", "exit":
				return nil
			case "help":
				fmt.Fprintln(out, interactiveHelp)
				continue
			case "show":
				printLines(out, session.Snapshot())
				continue
			}

			update, err := session.Apply(line)
			if err != nil {
				fmt.Fprintln(out, errLine(err.Error()))
				continue
			}
			printLines(out, update.Lines)
			if update.Form == form.TargetLift && session.Lift.Result().NonPositiveLBM {
				printWarning(out, "body fat of 100% or more leaves no lean body mass")
			}
		}
		fmt.Fprintln(out)
		return scanner.Err()
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
