package layout_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridnav/layout"
)

func writeLayout(t *testing.T, path, doc string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
}

func TestWatch_MissingDirectory(t *testing.T) {
	_, err := layout.Watch(filepath.Join(t.TempDir(), "nope", "scene.yaml"))
	assert.Error(t, err, "watching inside a missing directory must fail")
}

func TestWatch_CloseIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	writeLayout(t, path, officeYAML)

	w, err := layout.Watch(path)
	require.NoError(t, err)
	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close(), "second Close must be a no-op")
}

func TestWatch_DeliversEditedLayout(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")
	writeLayout(t, path, officeYAML)

	w, err := layout.Watch(path)
	require.NoError(t, err)
	defer w.Close()

	writeLayout(t, path, "width: 9\nheight: 7\n")

	select {
	case l := <-w.Layouts:
		require.NotNil(t, l)
		assert.Equal(t, 9, l.Width)
		assert.Equal(t, 7, l.Height)
	case err := <-w.Errors:
		t.Fatalf("unexpected watch error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for the edited layout")
	}
}

func TestWatch_IgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")
	writeLayout(t, path, officeYAML)

	w, err := layout.Watch(path)
	require.NoError(t, err)
	defer w.Close()

	writeLayout(t, filepath.Join(dir, "other.yaml"), "width: 1\nheight: 1\n")

	select {
	case l := <-w.Layouts:
		t.Fatalf("sibling edit leaked through the watch: %+v", l)
	case <-time.After(300 * time.Millisecond):
		// expected: nothing delivered
	}
}
