package static

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/classfocus/internal/testutil"
)

func TestInstall(t *testing.T) {
	testutil.IsolateXDG(t)

	assert.Empty(t, IconPath("classfocus"))

	require.NoError(t, Install("classfocus"))

	path := IconPath("classfocus")
	require.NotEmpty(t, path)
	assert.Equal(t, iconFile, filepath.Base(path))

	want, err := embeddedFiles.ReadFile(filesDir + "/" + iconFile)
	require.NoError(t, err)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestInstallKeepsExistingFiles(t *testing.T) {
	testutil.IsolateXDG(t)

	require.NoError(t, Install("classfocus"))

	path := IconPath("classfocus")
	require.NoError(t, os.WriteFile(path, []byte("custom"), 0o600))

	require.NoError(t, Install("classfocus"))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "custom", string(got))
}
