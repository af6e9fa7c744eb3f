// Package testutil holds shared helpers for wordpace tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteDraft creates draft.md holding content in a fresh temp dir.
func WriteDraft(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "draft.md")
	WriteFile(t, path, content)
	return path
}

// WriteFile writes content to path, making missing parent dirs.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// IsolateHome swaps HOME and USERPROFILE for an empty temp dir and returns
// it, keeping ~/.wordpace out of the test. Not for parallel tests.
func IsolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	return home
}

// ClearWordpaceEnv removes every WORDPACE_* variable until the test ends.
// Not for parallel tests.
func ClearWordpaceEnv(t *testing.T) {
	t.Helper()
	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "WORDPACE_") {
			// koanf loads an empty variable as a value, so unset after
			// t.Setenv has recorded the restore.
			t.Setenv(key, "")
			require.NoError(t, os.Unsetenv(key))
		}
	}
}
