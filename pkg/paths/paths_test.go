package paths

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/linkshell/pkg/errors"
)

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		wantErr     bool
		errContains string
	}{
		{
			name:        "empty path",
			path:        "",
			wantErr:     true,
			errContains: "path cannot be empty",
		},
		{
			name:    "valid path",
			path:    "/home/user/file.txt",
			wantErr: false,
		},
		{
			name:        "path with null bytes",
			path:        "/home/user\x00/file.txt",
			wantErr:     true,
			errContains: "null bytes",
		},
		{
			name:        "excessively long path",
			path:        "/" + strings.Repeat("a", 4097),
			wantErr:     true,
			errContains: "exceeds maximum length",
		},
		{
			name:    "path at max length",
			path:    "/" + strings.Repeat("a", 4095),
			wantErr: false,
		},
		{
			name:    "relative path",
			path:    "relative/path/file.txt",
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.path)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "relative path is resolved against cwd",
			raw:  "some/file.txt",
			want: filepath.Join(cwd, "some", "file.txt"),
		},
		{
			name: "trailing separator is normalized away",
			raw:  "some/dir/",
			want: filepath.Join(cwd, "some", "dir"),
		},
		{
			name: "redundant separators are collapsed",
			raw:  "some//nested///dir",
			want: filepath.Join(cwd, "some", "nested", "dir"),
		},
		{
			name: "dot elements are resolved",
			raw:  "some/./dir/../other",
			want: filepath.Join(cwd, "some", "other"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("absolute path stays put", func(t *testing.T) {
		abs := filepath.Join(cwd, "absolute.txt")
		got, err := Resolve(abs)
		require.NoError(t, err)
		assert.Equal(t, abs, got)
	})

	t.Run("empty path is rejected", func(t *testing.T) {
		_, err := Resolve("")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})
}

func TestResolveIsStable(t *testing.T) {
	// Resolution happens once per request; the same input must resolve the
	// same way on repeated calls with an unchanged working directory.
	first, err := Resolve("a/b/c")
	require.NoError(t, err)
	second, err := Resolve("a/b/c/")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name string
		path string
		want string
	}{
		{"bare tilde", "~", home},
		{"tilde with slash", "~/docs/file.txt", filepath.Join(home, "docs", "file.txt")},
		{"no tilde", "/etc/hosts", "/etc/hosts"},
		{"tilde user form untouched", "~other/file", "~other/file"},
		{"empty path", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandHome(tt.path))
		})
	}
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal("/a/b", "/a/b"))
	assert.False(t, Equal("/a/b", "/a/c"))

	if runtime.GOOS == "windows" {
		assert.True(t, Equal(`C:\Data\File.txt`, `c:\data\file.txt`))
	} else {
		assert.False(t, Equal("/a/B", "/a/b"))
	}
}
