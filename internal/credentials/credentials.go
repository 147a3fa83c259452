// Package credentials locates per-server credential files in a directory.
package credentials

import (
	"os"
	"path/filepath"

	"github.com/mcpgen/mcpgen/internal/document"
)

// extensions is the search order for a server's credential file.
var extensions = []string{".json", ".jsonc", ".yaml", ".yml"}

// Dir serves credential documents from a directory, one file per server
// name. It implements resolver.Source.
type Dir struct {
	path string
}

// NewDir creates a credential source rooted at path.
func NewDir(path string) Dir {
	return Dir{path: path}
}

// Path returns the directory the source reads from.
func (d Dir) Path() string {
	return d.path
}

// Load reads and parses the credential document for server. Candidates are
// tried in extension order; the first file that exists wins, even if it
// fails to parse. A server with no file at all yields a
// *document.NotFoundError naming the conventional .json path.
func (d Dir) Load(server string) (any, error) {
	for _, ext := range extensions {
		path := filepath.Join(d.path, server+ext)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		return document.Load(path)
	}

	return nil, &document.NotFoundError{Path: filepath.Join(d.path, server+".json")}
}
