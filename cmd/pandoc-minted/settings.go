// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pandoc-minted/internal/minted"
	"github.com/pdiddy/pandoc-minted/internal/pandoc"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Print the minted settings a document resolves to",
	Long: `Settings reads a pandoc JSON AST on stdin and prints, as YAML, the
settings the filter derives from its pandoc-minted metadata block. A null
language means the block exists but names no language, so code without a
class will fail to typeset.

  pandoc -t json input.md | pandoc-minted settings`,
	Args: cobra.NoArgs,
	RunE: runSettings,
}

func runSettings(cmd *cobra.Command, args []string) error {
	doc, err := pandoc.ReadDocument(cmd.InOrStdin())
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	if err := enc.Encode(minted.UnpackMetadata(doc.Meta)); err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	return enc.Close()
}

func init() {
	rootCmd.AddCommand(settingsCmd)
}
