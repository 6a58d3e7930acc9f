package session

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string, lines int) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("line\n", lines)), 0o644))
}

// newHome returns a home directory holding proj/src/{a.py,b.txt} and
// proj/docs/c.md. Directory order in the list is proj, proj/docs, proj/src.
func newHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	writeFile(t, filepath.Join(home, "proj", "src", "a.py"), 10)
	writeFile(t, filepath.Join(home, "proj", "src", "b.txt"), 5)
	writeFile(t, filepath.Join(home, "proj", "docs", "c.md"), 3)
	return home
}

func run(t *testing.T, home string, ui *fakeUI) error {
	t.Helper()
	c := NewController(ui, Options{HomeDir: home, Progress: true, Logf: t.Logf})
	return c.Run(context.Background())
}

func TestRunCountsSelectedExtension(t *testing.T) {
	home := newHome(t)
	// extensions are discovered as md (docs) then py, txt (src)
	ui := script("proj", "", "py", "", "", "")

	require.NoError(t, run(t, home, ui))

	require.Equal(t, []int{10}, ui.totals)
	assert.Equal(t, []string{filepath.Join(home, "proj", "src", "a.py") + ": 10"}, ui.progress)
	assert.Contains(t, ui.infoText(), "3 folder(s) found.")
	assert.Contains(t, ui.infoText(), "3 extension(s) found.")
	assert.Contains(t, ui.items, "1. proj")
	assert.Contains(t, ui.items, "2. "+filepath.Join("proj", "docs"))
	assert.Equal(t, home, ui.pathBases[0])
}

func TestRunTwoExtensions(t *testing.T) {
	home := newHome(t)
	ui := script("proj", "", "py", "txt", "", "", "")

	require.NoError(t, run(t, home, ui))
	assert.Equal(t, []int{15}, ui.totals)
}

func TestRunExcludedDirectoryIsNeverCounted(t *testing.T) {
	home := newHome(t)
	// docs is item 2; md is then not even discovered, so "*" includes py and txt.
	ui := script("proj", "2", "", "*", "", "", "")

	require.NoError(t, run(t, home, ui))
	require.Equal(t, []int{15}, ui.totals)
	for _, line := range ui.progress {
		assert.NotContains(t, line, "docs")
	}
}

func TestRunExcludeEverythingShortCircuits(t *testing.T) {
	home := newHome(t)
	ui := script("proj", "*", "", "", "")

	require.NoError(t, run(t, home, ui))
	assert.Empty(t, ui.totals)
	assert.Contains(t, ui.infoText(), "You have excluded every directory.")
	assert.Len(t, ui.busy, 1, "extension scan must not run")
}

func TestRunNoExtensionsSelected(t *testing.T) {
	home := newHome(t)
	ui := script("proj", "", "", "", "")

	require.NoError(t, run(t, home, ui))
	assert.Empty(t, ui.totals)
	assert.Contains(t, ui.infoText(), "You have excluded every extension.")
}

func TestRunInvalidSelectionReprompts(t *testing.T) {
	home := newHome(t)
	ui := script("proj", "x", "7", "", "md", "nope", "", "", "")

	require.NoError(t, run(t, home, ui))
	assert.Equal(t, []int{3}, ui.totals)
	require.Len(t, ui.warnings, 3)
	assert.Equal(t, "Please enter a number.", ui.warnings[0])
	assert.Equal(t, "Please enter a valid number of a directory listed above.", ui.warnings[1])
}

func TestRunMissingRoot(t *testing.T) {
	home := newHome(t)
	ui := script("does-not-exist", "", "^C", "")

	require.NoError(t, run(t, home, ui))
	assert.Contains(t, ui.infoText(), `This "directory" does not exist.`)
	assert.Empty(t, ui.busy)
}

func TestRunConfirmExit(t *testing.T) {
	home := newHome(t)

	t.Run("empty answer leaves", func(t *testing.T) {
		ui := script("^C", "")
		require.NoError(t, run(t, home, ui))
		assert.Equal(t, []string{"Interrupted."}, ui.errors)
	})

	t.Run("answer returns to root select", func(t *testing.T) {
		ui := script("^C", "stay", "^C", "")
		require.NoError(t, run(t, home, ui))
		assert.Len(t, ui.errors, 2)
		assert.Len(t, ui.pathBases, 2)
	})

	t.Run("second interrupt leaves", func(t *testing.T) {
		ui := script("^C", "^C")
		require.NoError(t, run(t, home, ui))
	})
}

func TestRunCancelOutsideRootSelectIsFatal(t *testing.T) {
	home := newHome(t)
	ui := script("proj", "^C")

	err := run(t, home, ui)
	assert.ErrorIs(t, err, ErrCanceled)
}

func TestRunDecodeErrorSkipsTotal(t *testing.T) {
	home := newHome(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, "proj", "src", "bad.py"), []byte{0xff, 0x00}, 0o644))
	ui := script("proj", "", "py", "", "", "")

	require.NoError(t, run(t, home, ui))
	assert.Empty(t, ui.totals)
	assert.Contains(t, ui.errorText(), "An error occurred while decoding a file.")
	assert.Contains(t, ui.errorText(), "bad.py")
}

func TestRunPermissionDenied(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}
	home := newHome(t)
	locked := filepath.Join(home, "proj", "locked")
	require.NoError(t, os.MkdirAll(locked, 0o755))
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	ui := script("proj", "", "")

	require.NoError(t, run(t, home, ui))
	assert.Contains(t, ui.errorText(), "Access to this directory was denied.")
	assert.Empty(t, ui.items)
}

func TestRunStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewController(script(), Options{HomeDir: t.TempDir()})
	assert.ErrorIs(t, c.Run(ctx), context.Canceled)
}

func TestResolveRoot(t *testing.T) {
	home := newHome(t)
	proj := filepath.Join(home, "proj")

	got, err := ResolveRoot(home, home, "proj")
	require.NoError(t, err)
	assert.Equal(t, proj, got)

	got, err = ResolveRoot(home, home, "  "+proj+"  ")
	require.NoError(t, err)
	assert.Equal(t, proj, got)

	got, err = ResolveRoot(t.TempDir(), home, "~/proj")
	require.NoError(t, err)
	assert.Equal(t, proj, got)

	_, err = ResolveRoot(home, home, "")
	assert.ErrorIs(t, err, ErrPathNotFound)

	_, err = ResolveRoot(home, home, "missing")
	assert.ErrorIs(t, err, ErrPathNotFound)

	_, err = ResolveRoot(home, home, filepath.Join("proj", "src", "a.py"))
	assert.ErrorIs(t, err, ErrNotDirectory)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "root-select", StateRootSelect.String())
	assert.Equal(t, "report", StateReport.String())
	assert.Equal(t, "state(42)", State(42).String())
}
