package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcpgen/mcpgen/internal/config"
	"github.com/mcpgen/mcpgen/internal/pack"
)

// completePackNames completes pack names for the generate command.
func completePackNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	// Don't complete if we already have an argument
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	packs, err := pack.Discover(cfg.PacksDir)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	var names []string
	for _, p := range packs {
		if strings.HasPrefix(p.Name, toComplete) {
			names = append(names, p.Name+"\t"+p.Description)
		}
	}

	return names, cobra.ShellCompDirectiveNoFileComp
}

// registerCompletions registers all dynamic completions for commands.
func registerCompletions() {
	generateCmd.ValidArgsFunction = completePackNames
	// validate takes a file path; cobra's default file completion applies.
}

func init() {
	// Register via OnInitialize so all commands exist first.
	cobra.OnInitialize(registerCompletions)
}
