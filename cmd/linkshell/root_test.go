package linkshell

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/linkshell/pkg/errors"
	"github.com/arthur-debert/linkshell/pkg/inspect"
)

// setupTestEnv isolates XDG directories so tests never touch the real
// config or state home.
func setupTestEnv(t *testing.T) {
	t.Helper()
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tempDir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(tempDir, "state"))
	xdg.Reload()
	t.Cleanup(xdg.Reload)
}

// execute runs the root command with args and returns stdout and the error.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	rootCmd := NewRootCmd()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRootNoArgsIsUsageError(t *testing.T) {
	setupTestEnv(t)

	_, err := execute(t)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	assert.Equal(t, 2, ExitCode(err))
}

func TestRootUsageErrors(t *testing.T) {
	setupTestEnv(t)
	dir := t.TempDir()
	source := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(source, []byte("x"), 0o644))

	tests := []struct {
		name string
		args []string
	}{
		{
			name: "unknown link type",
			args: []string{"--type", "shortcut", "--source", source, "--target", filepath.Join(dir, "l")},
		},
		{
			name: "missing source",
			args: []string{"--type", "symlink", "--target", filepath.Join(dir, "l")},
		},
		{
			name: "missing target",
			args: []string{"--type", "symlink", "--source", source},
		},
		{
			name: "identical source and target",
			args: []string{"--type", "hardlink", "--source", source, "--target", source},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput),
				"usage problems must be INVALID_INPUT, got: %v", err)
			assert.Equal(t, 2, ExitCode(err))
		})
	}
}

func TestRootCreatesSymlink(t *testing.T) {
	setupTestEnv(t)
	dir := t.TempDir()
	source := filepath.Join(dir, "file.txt")
	target := filepath.Join(dir, "file_link.txt")
	require.NoError(t, os.WriteFile(source, []byte("content"), 0o644))

	out, err := execute(t, "--type", "symlink", "--source", source, "--target", target, "--color", "never")
	require.NoError(t, err)
	assert.Contains(t, out, "Created")

	resolved, err := os.Readlink(target)
	require.NoError(t, err)
	assert.Equal(t, source, resolved)
}

func TestRootCreatesHardLink(t *testing.T) {
	setupTestEnv(t)
	dir := t.TempDir()
	source := filepath.Join(dir, "file.txt")
	target := filepath.Join(dir, "file_link.txt")
	require.NoError(t, os.WriteFile(source, []byte("content"), 0o644))

	_, err := execute(t, "--type", "hardlink", "--source", source, "--target", target, "--color", "never")
	require.NoError(t, err)

	content, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "content", string(content))
}

func TestRootFailedOutcomeIsNotUsageError(t *testing.T) {
	setupTestEnv(t)
	dir := t.TempDir()

	_, err := execute(t,
		"--type", "symlink",
		"--source", filepath.Join(dir, "absent"),
		"--target", filepath.Join(dir, "l"),
		"--color", "never")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSourceNotFound))
	assert.Equal(t, 1, ExitCode(err))
}

func TestInspectCommand(t *testing.T) {
	setupTestEnv(t)
	dir := t.TempDir()
	source := filepath.Join(dir, "real.txt")
	linkPath := filepath.Join(dir, "link")
	require.NoError(t, os.WriteFile(source, []byte("x"), 0o644))
	require.NoError(t, os.Symlink(source, linkPath))

	t.Run("json output", func(t *testing.T) {
		out, err := execute(t, "inspect", linkPath, "--output", "json")
		require.NoError(t, err)

		var report inspect.Report
		require.NoError(t, json.Unmarshal([]byte(out), &report))
		assert.Equal(t, inspect.TypeSymlink, report.Type)
		assert.Equal(t, source, report.Target)
		assert.True(t, report.TargetExists)
	})

	t.Run("text output", func(t *testing.T) {
		out, err := execute(t, "inspect", linkPath, "--color", "never")
		require.NoError(t, err)
		assert.Contains(t, out, "symbolic link")
	})

	t.Run("missing path", func(t *testing.T) {
		_, err := execute(t, "inspect", filepath.Join(dir, "absent"))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInspectFailed))
	})
}

func TestVersionCommand(t *testing.T) {
	setupTestEnv(t)

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "linkshell version")
}
