package content_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/laststand/internal/game/content"
)

type widget struct {
	ID   string `yaml:"id"`
	Size int    `yaml:"size"`
}

func (w *widget) Validate() error {
	if w.ID == "" {
		return errors.New("id must not be empty")
	}
	return nil
}

func writeFile(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0644))
}

func TestLoadDir_DecodesYAMLFilesOnly(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.yaml", "id: a\nsize: 3\n")
	writeFile(t, dir, "b.yaml", "id: b\n")
	writeFile(t, dir, "notes.txt", "id: ignored\n")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.yaml"), 0755))

	got, err := content.LoadDir[widget](dir, "LoadWidgets")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, 3, got[0].Size)
	assert.Equal(t, "b", got[1].ID)
}

func TestLoadDir_EmptyDirReturnsEmptySlice(t *testing.T) {
	got, err := content.LoadDir[widget](t.TempDir(), "LoadWidgets")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestLoadDir_ValidationErrorNamesFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "blank.yaml", "size: 1\n")

	_, err := content.LoadDir[widget](dir, "LoadWidgets")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LoadWidgets")
	assert.Contains(t, err.Error(), "blank.yaml")
}

func TestDecode_RejectsMalformedYAML(t *testing.T) {
	_, err := content.Decode[widget]([]byte("id: [unclosed"))
	assert.Error(t, err)
}

func TestLoadDir_MissingDir(t *testing.T) {
	_, err := content.LoadDir[widget](filepath.Join(t.TempDir(), "missing"), "LoadWidgets")
	assert.Error(t, err)
}
