package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Help(t *testing.T) {
	output, err := executeCmd(t, "--help")
	require.NoError(t, err)

	assert.Contains(t, output, "mcpgen")
	assert.Contains(t, output, "generate")
	assert.Contains(t, output, "packs")
	assert.Contains(t, output, "validate")
}

func TestRootCmd_Version(t *testing.T) {
	output, err := executeCmd(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, output, "mcpgen version "+version)
}

func TestRootCmd_UnknownCommand(t *testing.T) {
	_, err := executeCmd(t, "bogus")
	assert.Error(t, err)
}
