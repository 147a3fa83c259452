// Package pack discovers MCP agent packs.
//
// A pack is a subdirectory of the packs directory carrying an
// mcp_template.json, an optional README.md whose first heading becomes the
// pack description, and an optional prepare script that runs before
// generation (fetching tokens, warming caches, and the like).
package pack

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// TemplateName is the template file every pack must contain.
const TemplateName = "mcp_template.json"

// prepareCandidates lists recognized prepare scripts in priority order.
var prepareCandidates = []string{"prepare.py", "prepare.sh"}

// Pack is a discovered agent pack.
type Pack struct {
	// Name is the pack directory name.
	Name string

	// Dir is the pack directory path.
	Dir string

	// Template is the path to the pack's mcp_template.json.
	Template string

	// Description is the first README heading, if any.
	Description string

	// PrepareScript is the path to the pack's prepare script, or empty.
	PrepareScript string
}

// Discover scans dir for packs. Entries without a template file are
// skipped. The result follows directory order (lexical).
func Discover(dir string) ([]Pack, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var packs []Pack
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		packDir := filepath.Join(dir, entry.Name())
		template := filepath.Join(packDir, TemplateName)
		if _, err := os.Stat(template); err != nil {
			continue
		}

		p := Pack{
			Name:        entry.Name(),
			Dir:         packDir,
			Template:    template,
			Description: readDescription(filepath.Join(packDir, "README.md")),
		}

		for _, name := range prepareCandidates {
			script := filepath.Join(packDir, name)
			if _, err := os.Stat(script); err == nil {
				p.PrepareScript = script
				break
			}
		}

		packs = append(packs, p)
	}

	return packs, nil
}

// Find returns the pack with the given name.
func Find(packs []Pack, name string) (Pack, bool) {
	for _, p := range packs {
		if p.Name == name {
			return p, true
		}
	}
	return Pack{}, false
}

// readDescription pulls a one-line description from a README's first line
// when it is a markdown heading.
func readDescription(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return "No description available"
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if rest, ok := strings.CutPrefix(line, "# "); ok && rest != "" {
			return rest
		}
	}

	return "No description available"
}

// RunPrepare executes the pack's prepare script with the pack directory as
// working directory, streaming its output to stdout/stderr. A pack without
// a prepare script is a no-op. A non-zero exit aborts generation.
func (p Pack) RunPrepare(ctx context.Context, stdout, stderr io.Writer) error {
	if p.PrepareScript == "" {
		return nil
	}

	var interpreter string
	switch filepath.Ext(p.PrepareScript) {
	case ".py":
		interpreter = "python3"
	default:
		interpreter = "sh"
	}

	cmd := exec.CommandContext(ctx, interpreter, filepath.Base(p.PrepareScript))
	cmd.Dir = p.Dir
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("prepare script %s: %w", p.PrepareScript, err)
	}
	return nil
}
