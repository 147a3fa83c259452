package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/mcpgen/mcpgen/internal/config"
	"github.com/mcpgen/mcpgen/internal/pack"
	"github.com/mcpgen/mcpgen/internal/ui"
)

// packsCmd lists available agent packs.
var packsCmd = &cobra.Command{
	Use:   "packs",
	Short: "List available agent packs",
	Long:  `List every agent pack in the packs directory, with its description and whether it carries a prepare script.`,
	RunE:  runListPacks,
}

func init() {
	rootCmd.AddCommand(packsCmd)
}

func runListPacks(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	packs, err := pack.Discover(cfg.PacksDir)
	if errors.Is(err, fs.ErrNotExist) {
		ui.Warning("Packs directory not found: %s", cfg.PacksDir)
		return nil
	}
	if err != nil {
		return fmt.Errorf("discover packs: %w", err)
	}

	if len(packs) == 0 {
		ui.Warning("No %s files found in subdirectories of %s", pack.TemplateName, cfg.PacksDir)
		return nil
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Found %d pack(s) in %s:\n\n", len(packs), cfg.PacksDir)
	for _, p := range packs {
		marker := ""
		if p.PrepareScript != "" {
			marker = " (prepare script)"
		}
		fmt.Fprintf(out, "  %s%s\n      %s\n", p.Name, marker, p.Description)
	}

	return nil
}
