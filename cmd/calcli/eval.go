package main

import (
	"github.com/aretw0/calcli/internal/cli"
	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval <expression>...",
	Short: "Evaluate expressions without starting the REPL",
	Long: `Each argument is processed as one line typed at the prompt, in order and in one session,
so later arguments can use ans and variables assigned earlier. Commands such as :d2 are accepted.`,
	Example: `  calcli eval "r = 2" "pi * r^2"
  calcli eval :s2 "6.02214076 * 10^23"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := loadRunOptions(cmd)
		if err != nil {
			return err
		}
		return cli.RunEval(cmd.Context(), opts, args, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)
	addFormatFlags(evalCmd)
}
