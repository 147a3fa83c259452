package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcpgen/mcpgen/internal/config"
	"github.com/mcpgen/mcpgen/internal/credentials"
	"github.com/mcpgen/mcpgen/internal/document"
	"github.com/mcpgen/mcpgen/internal/pack"
	"github.com/mcpgen/mcpgen/internal/resolver"
	"github.com/mcpgen/mcpgen/internal/ui"
)

// validateCmd checks template structure without touching credentials.
var validateCmd = &cobra.Command{
	Use:   "validate [template]",
	Short: "Check template structure and list placeholders",
	Long: `Validate template structure and report the placeholders each server needs.

With a file argument only that template is checked. Without one, every
discovered pack's template is checked. No credential file is read, so this
is safe to run anywhere.

Examples:
  mcpgen validate                         # validate all pack templates
  mcpgen validate packs/x/mcp_template.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return validateTemplateFile(args[0])
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.TemplatePath != "" {
		return validateTemplateFile(cfg.TemplatePath)
	}

	packs, err := pack.Discover(cfg.PacksDir)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("packs directory not found: %s (pass a template file instead)", cfg.PacksDir)
	}
	if err != nil {
		return fmt.Errorf("discover packs: %w", err)
	}
	if len(packs) == 0 {
		return fmt.Errorf("no %s files found in subdirectories of %s", pack.TemplateName, cfg.PacksDir)
	}

	failures := 0
	for _, p := range packs {
		ui.Header("--- %s ---", p.Name)
		if err := validateTemplateFile(p.Template); err != nil {
			failures++
		}
		fmt.Println()
	}

	if failures > 0 {
		return fmt.Errorf("%d template(s) failed validation", failures)
	}
	return nil
}

func validateTemplateFile(path string) error {
	doc, err := document.Load(path)
	if err != nil {
		ui.Error("%v", err)
		return err
	}

	if violations := resolver.ValidateTemplate(doc); len(violations) > 0 {
		for _, violation := range violations {
			ui.Error("%s", violation)
		}
		return resolver.ErrInvalidTemplate
	}

	ui.Success("%s is structurally valid", path)

	// Placeholder inventory per server. The resolver is built without a
	// credential source; discovery never loads credentials.
	r := resolver.New(credentials.NewDir(""))
	servers := doc.(map[string]any)["servers"].(map[string]any)

	names := make([]string, 0, len(servers))
	for name := range servers {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		placeholders := r.FindPlaceholders(servers[name])
		if len(placeholders) == 0 {
			ui.Server("%s: no placeholders", name)
			continue
		}

		tokens := make([]string, 0, len(placeholders))
		for p := range placeholders {
			tokens = append(tokens, "%"+p+"%")
		}
		sort.Strings(tokens)
		ui.Server("%s: needs %s", name, strings.Join(tokens, ", "))
	}

	return nil
}
