package fsmod_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/kclfs/pkg/fsmod"
)

func TestAsPosix(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		path     string
		expected string
	}{
		"backslashes":        {path: `a\b\c`, expected: "a/b/c"},
		"drive":              {path: `C:\a\b`, expected: "C:/a/b"},
		"already posix":      {path: "a/b/c", expected: "a/b/c"},
		"mixed":              {path: `a\b/c`, expected: "a/b/c"},
		"unc":                {path: `\\host\share\a`, expected: "//host/share/a"},
		"escape-like input":  {path: `a\nb`, expected: "a/nb"},
		"empty renders as .": {path: "", expected: "."},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, fsmod.AsPosix(tc.path))
		})
	}
}

func TestIsAbsolute(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		path     string
		expected bool
	}{
		"posix absolute":          {path: "/a/b", expected: true},
		"posix relative":          {path: "a/b", expected: false},
		"windows drive rooted":    {path: `C:\a`, expected: true},
		"windows drive slash":     {path: "C:/a", expected: true},
		"windows drive relative":  {path: "C:a", expected: false},
		"windows backslash only":  {path: `\a`, expected: false},
		"empty":                   {path: "", expected: false},
		"tilde is not absolute":   {path: "~/a", expected: false},
		"unc absolute":            {path: `\\host\share`, expected: false},
		"unc absolute with root":  {path: `\\host\share\a`, expected: true},
		"dotdot stays syntactic":  {path: "/a/../b", expected: true},
		"windows unc slash mixed": {path: `//host/share/a`, expected: true},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, fsmod.IsAbsolute(tc.path))
		})
	}
}

func TestParentNameStem(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		path   string
		parent string
		name   string
		stem   string
	}{
		"plain file": {
			path:   "/a/b/archive.tar.gz",
			parent: "/a/b",
			name:   "archive.tar.gz",
			stem:   "archive.tar",
		},
		"single suffix": {
			path:   "dir/file.txt",
			parent: "dir",
			name:   "file.txt",
			stem:   "file",
		},
		"no suffix": {
			path:   "file",
			parent: ".",
			name:   "file",
			stem:   "file",
		},
		"root": {
			path:   "/",
			parent: "/",
			name:   "",
			stem:   "",
		},
		"hidden file": {
			path:   "/home/u/.bashrc",
			parent: "/home/u",
			name:   ".bashrc",
			stem:   ".bashrc",
		},
		"trailing dot": {
			path:   "a/b.",
			parent: "a",
			name:   "b.",
			stem:   "b.",
		},
		"windows spelling": {
			path:   `C:\a\b.txt`,
			parent: `C:\a`,
			name:   "b.txt",
			stem:   "b",
		},
		"windows root": {
			path:   `C:\`,
			parent: `C:\`,
			name:   "",
			stem:   "",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.parent, fsmod.Parent(tc.path), "parent")
			assert.Equal(t, tc.name, fsmod.Name(tc.path), "name")
			assert.Equal(t, tc.stem, fsmod.Stem(tc.path), "stem")
		})
	}
}

func TestReplaceSuffix(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		err      error
		path     string
		suffix   string
		expected string
	}{
		"replace last extension": {
			path:     "foo.tar.gz",
			suffix:   ".xz",
			expected: "foo.tar.xz",
		},
		"append when no extension": {
			path:     "foo",
			suffix:   ".c",
			expected: "foo.c",
		},
		"remove extension": {
			path:     "foo.c",
			suffix:   "",
			expected: "foo",
		},
		"keeps directories": {
			path:     "/a/b/foo.c",
			suffix:   ".o",
			expected: "/a/b/foo.o",
		},
		"missing dot": {
			path:   "foo.c",
			suffix: "o",
			err:    fsmod.ErrInvalidArgument,
		},
		"bare dot": {
			path:   "foo.c",
			suffix: ".",
			err:    fsmod.ErrInvalidArgument,
		},
		"separator in suffix": {
			path:   "foo.c",
			suffix: ".a/b",
			err:    fsmod.ErrInvalidArgument,
		},
		"empty name": {
			path:   "/",
			suffix: ".c",
			err:    fsmod.ErrInvalidArgument,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			result, err := fsmod.ReplaceSuffix(tc.path, tc.suffix)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, result)
		})
	}
}

func TestExpandUser(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	assert.Equal(t, home, fsmod.ExpandUser("~"))
	assert.Equal(t, filepath.Join(home, "a", "b"), fsmod.ExpandUser("~/a/b"))
	assert.Equal(t, "~other/a", fsmod.ExpandUser("~other/a"))
	assert.Equal(t, "/a/~", fsmod.ExpandUser("/a/~"))
	assert.Equal(t, "a", fsmod.ExpandUser("a"))
}
