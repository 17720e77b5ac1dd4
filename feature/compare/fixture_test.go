package compare

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeDocs creates dir and writes name -> content pairs into it.
func writeDocs(t *testing.T, dir string, docs map[string]string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	for name, content := range docs {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
}

// newTask returns a Free template task rooted under a fresh temp dir.
// Neither root is created.
func newTask(t *testing.T) Task {
	t.Helper()
	root := t.TempDir()
	return Task{
		Tier:        "free",
		Label:       "Free",
		Kind:        KindTemplate,
		LibraryRoot: filepath.Join(root, "library", "free", "templates", "examples"),
		OnlineRoot:  filepath.Join(root, "free", "templates", "examples"),
	}
}
