package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPattern_Names(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "single placeholder",
			input: "Bearer %TOKEN%",
			want:  []string{"TOKEN"},
		},
		{
			name:  "multiple placeholders in one string",
			input: "%A%-%B%",
			want:  []string{"A", "B"},
		},
		{
			name:  "repeated placeholder",
			input: "%KEY% and %KEY% again",
			want:  []string{"KEY", "KEY"},
		},
		{
			name:  "underscore and digits",
			input: "%_private% %KEY_2%",
			want:  []string{"_private", "KEY_2"},
		},
		{
			name:  "no placeholders",
			input: "plain string with 100% no tokens",
			want:  nil,
		},
		{
			name:  "leading digit is not a name",
			input: "%2FAST%",
			want:  nil,
		},
		{
			name:  "empty token is not a name",
			input: "%%",
			want:  nil,
		},
		{
			name:  "hyphen breaks the token",
			input: "%NOT-A-NAME%",
			want:  nil,
		},
	}

	pattern := NewPattern()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, pattern.Names(tt.input))
		})
	}
}

func TestPattern_Expand(t *testing.T) {
	t.Parallel()

	pattern := NewPattern()

	t.Run("replaces every occurrence", func(t *testing.T) {
		t.Parallel()

		got, err := pattern.Expand("%A%-%B%-%A%", map[string]string{"A": "x", "B": "y"})
		require.NoError(t, err)
		assert.Equal(t, "x-y-x", got)
	})

	t.Run("string without placeholders is unchanged", func(t *testing.T) {
		t.Parallel()

		got, err := pattern.Expand("no tokens here", map[string]string{"A": "x"})
		require.NoError(t, err)
		assert.Equal(t, "no tokens here", got)
	})

	t.Run("missing entry is an internal error", func(t *testing.T) {
		t.Parallel()

		_, err := pattern.Expand("token: %SECRET%", map[string]string{})

		var missing *MissingCredentialError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "SECRET", missing.Name)
		assert.Contains(t, missing.Error(), "%SECRET%")
	})

	t.Run("secret values are opaque literals", func(t *testing.T) {
		t.Parallel()

		// A secret that itself looks like a placeholder must not be
		// expanded a second time.
		got, err := pattern.Expand("%KEY%", map[string]string{"KEY": "%OTHER%"})
		require.NoError(t, err)
		assert.Equal(t, "%OTHER%", got)
	})

	t.Run("expansion is idempotent once resolved", func(t *testing.T) {
		t.Parallel()

		creds := map[string]string{"HOST": "db.internal", "PORT": "5432"}
		once, err := pattern.Expand("postgres://%HOST%:%PORT%", creds)
		require.NoError(t, err)

		twice, err := pattern.Expand(once, creds)
		require.NoError(t, err)
		assert.Equal(t, once, twice)
	})
}
