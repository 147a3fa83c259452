package cmd

import (
	"bytes"
	"testing"
)

// executeCmd executes the root command with the given args and returns the
// combined output. Package-level flag variables are cleared first so state
// doesn't leak between test executions.
func executeCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()

	generateTemplate = ""
	generateCredentials = ""
	generateOutput = ""
	generateDryRun = false
	generateYes = false

	buf := new(bytes.Buffer)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	err := rootCmd.Execute()
	return buf.String(), err
}
