// Package cmd provides the CLI commands for mcpgen.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "mcpgen",
	Short: "Generate MCP configs from templates and credentials",
	Long: `mcpgen - MCP configuration generator

Merges an mcp_template.json containing %NAME% placeholders with per-server
credential files and writes the fully resolved mcp.json. Templates stay in
version control; credentials and the generated file stay out of it.

GENERATION
  generate [pack]       Resolve a template and write the output file
    --template, -t      Use a template file directly (skip pack selection)
    --credentials, -c   Credentials directory (default: credentials)
    --output, -o        Output path (default: .vscode/mcp.json)
    --dry-run, -n       Print the resolved config without writing
    --yes, -y           Never prompt (requires a pack name or --template)

INSPECTION
  packs                 List available agent packs
  validate [template]   Check template structure and list placeholders`,
	Version: version,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.SetVersionTemplate("mcpgen version {{.Version}}\n")
}
