// Package document loads structured-data files into generic trees.
//
// Templates and credential files are JSON by convention, but editor-style
// configs (like .vscode/mcp.json) routinely carry comments and trailing
// commas, so JSON input is run through a JSONC strip first. YAML files are
// accepted as well for hand-maintained credential files.
package document

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// NotFoundError indicates the document file does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("file not found: %s", e.Path)
}

// ParseError indicates the file exists but is not valid structured data.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s in %s: %v", formatName(e.Path), e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// formatName returns a human-readable format name for error messages.
func formatName(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "YAML"
	default:
		return "JSON"
	}
}

// Load reads and parses the file at path into a generic document tree
// (map[string]any / []any / scalars). The format is chosen by extension:
// .yaml/.yml are parsed as YAML, everything else as JSONC-tolerant JSON.
func Load(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Parse(path, data)
}

// Parse parses data as the format implied by path's extension. The path is
// only used for format selection and error context.
func Parse(path string, data []byte) (any, error) {
	var doc any

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, &ParseError{Path: path, Err: err}
		}
	default:
		if err := json.Unmarshal(jsonc.ToJSON(data), &doc); err != nil {
			return nil, &ParseError{Path: path, Err: err}
		}
	}

	return doc, nil
}
