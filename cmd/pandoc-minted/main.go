// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pandoc-minted filter.
// Pandoc runs it as `pandoc --filter pandoc-minted`, passing the output
// format as the only argument and the document AST as JSON on stdin.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pandoc-minted/internal/minted"
	"github.com/pdiddy/pandoc-minted/internal/pandoc"
	"github.com/pdiddy/pandoc-minted/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd runs the filters over the document on stdin.
var rootCmd = &cobra.Command{
	Use:   "pandoc-minted [format]",
	Short: "Pandoc filter that typesets code with the LaTeX minted package",
	Long: `pandoc-minted reads a pandoc JSON AST on stdin and writes it back on
stdout. For latex and beamer output, code blocks and inline code become raw
LaTeX using minted; for beamer output, headers are marked fragile.

The default language for code without a class comes from the document
metadata:

  pandoc-minted:
    language: python

Use it as: pandoc --filter pandoc-minted -t latex input.md`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runFilter,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pandoc-minted.yaml or ~/.config/pandoc-minted/pandoc-minted.yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "print a rewrite summary to stderr")
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pandoc-minted")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pandoc-minted"))
		}
	}

	viper.SetEnvPrefix("PANDOC_MINTED")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// filterConfig builds the filter configuration from viper, letting the
// positional format argument override the configured format.
func filterConfig(args []string) types.FilterConfig {
	cfg := types.FilterConfig{
		Format:  types.OutputFormat(viper.GetString("format")),
		Verbose: viper.GetBool("verbose"),
	}
	if len(args) > 0 {
		cfg.Format = types.OutputFormat(args[0])
	}
	return cfg
}

func runFilter(cmd *cobra.Command, args []string) error {
	cfg := filterConfig(args)

	summary, err := pandoc.Run(cmd.InOrStdin(), cmd.OutOrStdout(), string(cfg.Format), minted.Filters()...)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		w := cmd.ErrOrStderr()
		for _, f := range summary.Filters {
			fmt.Fprintf(w, "%s: %d node(s) rewritten\n", f.Name, f.Rewritten)
		}
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
