package main

import (
	"fmt"
	"os"

	"github.com/aretw0/calcli/internal/cli"
	"github.com/aretw0/calcli/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "calcli",
	Short:         "calcli is a calculator for the command line",
	Long:          `calcli evaluates arithmetic expressions interactively, with variables, the previous answer (ans) and configurable number formatting.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := loadRunOptions(cmd)
		if err != nil {
			return err
		}
		return cli.RunSession(opts)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", config.DefaultPath(), "Path to the YAML configuration file")
	rootCmd.PersistentFlags().Bool("debug", false, "Write debug logs to stderr")

	addFormatFlags(rootCmd)
	rootCmd.Flags().Bool("no-banner", false, "Do not print the banner")
	rootCmd.Flags().String("metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :2112)")
}

func addFormatFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("decimals", "d", 0, "Number of decimal places to display")
	cmd.Flags().BoolP("scientific", "s", false, "Display results in scientific notation")
	cmd.Flags().Bool("no-color", false, "Disable colored output")
}

// loadRunOptions merges the config file, CALCLI_* environment and explicit flags.
func loadRunOptions(cmd *cobra.Command) (cli.RunOptions, error) {
	path, _ := cmd.Flags().GetString("config")
	debug, _ := cmd.Flags().GetBool("debug")

	cfg, err := config.Load(path, cmd.Flags().Changed("config"))
	if err != nil {
		return cli.RunOptions{}, err
	}

	if cmd.Flags().Changed("decimals") {
		cfg.Decimals, _ = cmd.Flags().GetInt("decimals")
	}
	if scientific, _ := cmd.Flags().GetBool("scientific"); scientific {
		cfg.Notation = "scientific"
	}
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		cfg.Color = false
	}
	if f := cmd.Flags().Lookup("no-banner"); f != nil && f.Changed {
		noBanner, _ := cmd.Flags().GetBool("no-banner")
		cfg.Banner = !noBanner
	}
	if f := cmd.Flags().Lookup("metrics-addr"); f != nil && f.Changed {
		cfg.MetricsAddr, _ = cmd.Flags().GetString("metrics-addr")
	}

	if err := cfg.Validate(); err != nil {
		return cli.RunOptions{}, err
	}
	return cli.RunOptions{Config: cfg, Debug: debug}, nil
}
