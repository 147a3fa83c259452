package cmd

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mcpgen/mcpgen/internal/config"
	"github.com/mcpgen/mcpgen/internal/credentials"
	"github.com/mcpgen/mcpgen/internal/document"
	"github.com/mcpgen/mcpgen/internal/fileutil"
	"github.com/mcpgen/mcpgen/internal/pack"
	"github.com/mcpgen/mcpgen/internal/preflight"
	"github.com/mcpgen/mcpgen/internal/resolver"
	"github.com/mcpgen/mcpgen/internal/tui"
	"github.com/mcpgen/mcpgen/internal/ui"
)

var (
	generateTemplate    string
	generateCredentials string
	generateOutput      string
	generateDryRun      bool
	generateYes         bool
)

// generateCmd resolves a template against credentials and writes the output.
var generateCmd = &cobra.Command{
	Use:     "generate [pack]",
	Aliases: []string{"gen"},
	Short:   "Resolve a template and write the output file",
	Long: `Generate the MCP configuration from a template and credential files.

Without arguments an interactive pack selector opens. With a pack name the
selection is skipped. With --template the pack machinery is bypassed and the
given file is resolved directly.

The output is only written when every placeholder in every server resolves;
a failing server leaves any existing output untouched.

Examples:
  mcpgen generate                      # pick a pack interactively
  mcpgen generate background           # resolve the 'background' pack
  mcpgen generate -n background        # dry run - print, don't write
  mcpgen generate -t my_template.json  # resolve a specific template file`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateTemplate, "template", "t", "", "Template file to resolve (bypasses packs)")
	generateCmd.Flags().StringVarP(&generateCredentials, "credentials", "c", "", "Credentials directory")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Output path")
	generateCmd.Flags().BoolVarP(&generateDryRun, "dry-run", "n", false, "Print the resolved config without writing")
	generateCmd.Flags().BoolVarP(&generateYes, "yes", "y", false, "Never prompt (requires a pack name or --template)")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if generateTemplate != "" {
		cfg.TemplatePath = generateTemplate
	}
	if generateCredentials != "" {
		cfg.CredentialsDir = generateCredentials
	}
	if generateOutput != "" {
		cfg.OutputPath = generateOutput
	}

	templatePath := cfg.TemplatePath
	if templatePath == "" {
		chosen, err := choosePack(cfg, args)
		if err != nil {
			return err
		}
		ui.Success("Selected: %s", chosen.Name)

		if chosen.PrepareScript != "" {
			ui.Info("Running preparation script: %s", chosen.PrepareScript)
			if err := chosen.RunPrepare(cmd.Context(), os.Stdout, os.Stderr); err != nil {
				return err
			}
			ui.Success("Preparation script finished")
		}

		templatePath = chosen.Template
	}

	if problems := preflight.Check(cfg.CredentialsDir, cfg.OutputPath); len(problems) > 0 {
		for _, problem := range problems {
			ui.Error("%s", problem)
		}
		return errors.New("preflight checks failed")
	}

	doc, err := document.Load(templatePath)
	if err != nil {
		return err
	}
	ui.Success("Loaded template from %s", templatePath)

	if violations := resolver.ValidateTemplate(doc); len(violations) > 0 {
		for _, violation := range violations {
			ui.Error("%s", violation)
		}
		return fmt.Errorf("%w: %s", resolver.ErrInvalidTemplate, strings.Join(violations, "; "))
	}

	r := resolver.New(credentials.NewDir(cfg.CredentialsDir))
	r.OnUnused = func(server string, unused []string) {
		ui.Warning("Unused credentials in %s: %s", server, strings.Join(unused, ", "))
	}

	resolved, err := r.Resolve(doc.(map[string]any))
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(resolved, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	data = append(data, '\n')

	if generateDryRun {
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	}

	// 0600: the resolved file holds live secrets.
	if err := fileutil.WriteFileAtomic(cfg.OutputPath, data, 0600); err != nil {
		return fmt.Errorf("save configuration: %w", err)
	}

	ui.Success("Configuration saved to %s", cfg.OutputPath)
	fmt.Println()
	ui.Hint("Remember to:")
	fmt.Printf("   - add %s to .gitignore\n", cfg.OutputPath)
	fmt.Printf("   - keep %s/ secure\n", cfg.CredentialsDir)
	fmt.Printf("   - only commit %s to version control\n", pack.TemplateName)

	return nil
}

// choosePack picks the pack to generate from: by argument, automatically
// when only one exists, or interactively.
func choosePack(cfg config.Config, args []string) (pack.Pack, error) {
	packs, err := pack.Discover(cfg.PacksDir)
	if errors.Is(err, fs.ErrNotExist) {
		return pack.Pack{}, fmt.Errorf("packs directory not found: %s", cfg.PacksDir)
	}
	if err != nil {
		return pack.Pack{}, fmt.Errorf("discover packs: %w", err)
	}
	if len(packs) == 0 {
		return pack.Pack{}, fmt.Errorf("no %s files found in subdirectories of %s", pack.TemplateName, cfg.PacksDir)
	}

	if len(args) > 0 {
		chosen, ok := pack.Find(packs, args[0])
		if !ok {
			return pack.Pack{}, fmt.Errorf("pack not found: %s", args[0])
		}
		return chosen, nil
	}

	if len(packs) == 1 {
		return packs[0], nil
	}

	if generateYes {
		return pack.Pack{}, errors.New("--yes needs a pack name or --template when several packs exist")
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		return tui.SelectPack(packs)
	}
	return promptPack(packs)
}

// promptPack is the numbered fallback selector for non-TTY stdin.
func promptPack(packs []pack.Pack) (pack.Pack, error) {
	fmt.Printf("Found %d MCP configuration(s):\n\n", len(packs))
	for i, p := range packs {
		fmt.Printf("  %d. %s\n     %s\n", i+1, p.Name, p.Description)
	}
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Printf("Select configuration (1-%d): ", len(packs))
		if !scanner.Scan() {
			return pack.Pack{}, tui.ErrCancelled
		}

		n, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err != nil || n < 1 || n > len(packs) {
			ui.Error("Please enter a number between 1 and %d", len(packs))
			continue
		}
		return packs[n-1], nil
	}
}
