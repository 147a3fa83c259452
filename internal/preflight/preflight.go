// Package preflight validates filesystem permissions before generation.
package preflight

import (
	"fmt"
	"os"
	"path/filepath"
)

// Check verifies the credentials directory is a readable directory and the
// output file's directory is writable. It returns every problem found so
// the operator can fix them in one pass.
func Check(credentialsDir, outputPath string) []string {
	var problems []string

	info, err := os.Stat(credentialsDir)
	switch {
	case os.IsNotExist(err):
		problems = append(problems, fmt.Sprintf("credentials directory not found: %s", credentialsDir))
	case err != nil:
		problems = append(problems, fmt.Sprintf("stat credentials directory %s: %v", credentialsDir, err))
	case !info.IsDir():
		problems = append(problems, fmt.Sprintf("credentials path is not a directory: %s", credentialsDir))
	case !readable(credentialsDir):
		problems = append(problems, fmt.Sprintf("cannot read credentials directory: %s", credentialsDir))
	}

	outputDir := filepath.Dir(outputPath)
	if _, err := os.Stat(outputDir); os.IsNotExist(err) {
		// The generate flow creates missing output directories; only an
		// existing but unwritable directory is a problem.
		return problems
	}
	if !writable(outputDir) {
		problems = append(problems, fmt.Sprintf("cannot write to output directory: %s", outputDir))
	}

	return problems
}
