package pack_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcpgen/mcpgen/internal/pack"
)

// makePack creates a pack directory with a template and the given extra files.
func makePack(t *testing.T, root, name string, extras map[string]string) string {
	t.Helper()
	dir := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, pack.TemplateName), []byte(`{"servers": {"s": {}}}`), 0644))
	for file, content := range extras {
		require.NoError(t, os.WriteFile(filepath.Join(dir, file), []byte(content), 0644))
	}
	return dir
}

func TestDiscover(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	makePack(t, root, "background", map[string]string{
		"README.md":  "# Background research agents\nMore text.\n",
		"prepare.py": "print('ready')\n",
	})
	makePack(t, root, "coding", nil)

	// A directory without a template and a stray file are both skipped.
	require.NoError(t, os.MkdirAll(filepath.Join(root, "not-a-pack"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0644))

	packs, err := pack.Discover(root)
	require.NoError(t, err)
	require.Len(t, packs, 2)

	assert.Equal(t, "background", packs[0].Name)
	assert.Equal(t, "Background research agents", packs[0].Description)
	assert.NotEmpty(t, packs[0].PrepareScript)

	assert.Equal(t, "coding", packs[1].Name)
	assert.Equal(t, "No description available", packs[1].Description)
	assert.Empty(t, packs[1].PrepareScript)
}

func TestDiscover_MissingDir(t *testing.T) {
	t.Parallel()

	_, err := pack.Discover(filepath.Join(t.TempDir(), "nope"))
	assert.True(t, os.IsNotExist(err))
}

func TestFind(t *testing.T) {
	t.Parallel()

	packs := []pack.Pack{{Name: "a"}, {Name: "b"}}

	got, ok := pack.Find(packs, "b")
	require.True(t, ok)
	assert.Equal(t, "b", got.Name)

	_, ok = pack.Find(packs, "c")
	assert.False(t, ok)
}

func TestRunPrepare(t *testing.T) {
	t.Parallel()

	t.Run("no script is a no-op", func(t *testing.T) {
		t.Parallel()

		p := pack.Pack{Name: "plain"}
		assert.NoError(t, p.RunPrepare(context.Background(), nil, nil))
	})

	t.Run("runs shell script in pack dir", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		dir := makePack(t, root, "p", map[string]string{
			"prepare.sh": "echo preparing $(basename \"$PWD\")\n",
		})

		packs, err := pack.Discover(root)
		require.NoError(t, err)
		require.Len(t, packs, 1)
		require.Equal(t, dir, packs[0].Dir)

		var stdout, stderr bytes.Buffer
		require.NoError(t, packs[0].RunPrepare(context.Background(), &stdout, &stderr))
		assert.Equal(t, "preparing p\n", stdout.String())
	})

	t.Run("non-zero exit is an error", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		makePack(t, root, "p", map[string]string{
			"prepare.sh": "echo boom >&2\nexit 3\n",
		})

		packs, err := pack.Discover(root)
		require.NoError(t, err)

		var stdout, stderr bytes.Buffer
		err = packs[0].RunPrepare(context.Background(), &stdout, &stderr)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "prepare script")
		assert.Contains(t, stderr.String(), "boom")
	})
}
