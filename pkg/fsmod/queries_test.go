package fsmod_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/kclfs/pkg/fsmod"
)

func TestContext_Exists(t *testing.T) {
	t.Parallel()

	c, root := newTestContext(t)

	require.NoError(t, os.WriteFile(filepath.Join(root, "f"), []byte("x"), 0o600))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "d"), 0o750))

	assert.True(t, c.Exists("f"))
	assert.True(t, c.Exists("d"))
	assert.False(t, c.Exists("missing"))
}

func TestContext_IsFileIsDir(t *testing.T) {
	t.Parallel()

	c, root := newTestContext(t)

	require.NoError(t, os.WriteFile(filepath.Join(root, "f"), []byte("x"), 0o600))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "d"), 0o750))

	assert.True(t, c.IsFile("f"))
	assert.False(t, c.IsFile("d"))
	assert.False(t, c.IsFile("missing"))

	assert.True(t, c.IsDir("d"))
	assert.False(t, c.IsDir("f"))
	assert.False(t, c.IsDir("missing"))
}

func TestContext_IsSymlink(t *testing.T) {
	t.Parallel()

	c, root := newTestContext(t)

	require.NoError(t, os.WriteFile(filepath.Join(root, "f"), []byte("x"), 0o600))
	require.NoError(t, os.Symlink(filepath.Join(root, "f"), filepath.Join(root, "link")))
	require.NoError(t, os.Symlink(filepath.Join(root, "missing"), filepath.Join(root, "dangling")))

	assert.True(t, c.IsSymlink("link"))
	assert.False(t, c.IsSymlink("f"))

	// A dangling link is still observable as a link, even though it does
	// not exist as a file.
	assert.True(t, c.IsSymlink("dangling"))
	assert.False(t, c.Exists("dangling"))
}

func TestContext_Size(t *testing.T) {
	t.Parallel()

	c, root := newTestContext(t)

	content := []byte("0123456789")
	require.NoError(t, os.WriteFile(filepath.Join(root, "f"), content, 0o600))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "d"), 0o750))

	size, err := c.Size("f")
	require.NoError(t, err)
	assert.Equal(t, int64(len(content)), size)

	_, err = c.Size("d")
	require.ErrorIs(t, err, fsmod.ErrNotAFile)

	_, err = c.Size("missing")
	require.ErrorIs(t, err, fsmod.ErrNotAFile)
}

func TestContext_Hash(t *testing.T) {
	t.Parallel()

	c, root := newTestContext(t)

	require.NoError(t, os.WriteFile(filepath.Join(root, "f"), []byte("hello\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(root, "empty"), nil, 0o600))

	tcs := map[string]struct {
		err       error
		path      string
		algorithm string
		expected  string
	}{
		"sha256": {
			path:      "f",
			algorithm: "sha256",
			expected:  "5891b5b522d5df086d0ff0b110fbd9d21bb4fc7163af34d08286a2e846f6be03",
		},
		"sha256 empty file": {
			path:      "empty",
			algorithm: "sha256",
			expected:  "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		"blake3 empty file": {
			path:      "empty",
			algorithm: "blake3",
			expected:  "af1349b9f5f9a1a6a0404dea36dcc9499bcb25c9adc112b7cc9a93cae41f3262",
		},
		"unknown algorithm": {
			path:      "f",
			algorithm: "crc32",
			err:       fsmod.ErrUnsupportedAlgorithm,
		},
		"missing file": {
			path:      "missing",
			algorithm: "sha256",
			err:       fsmod.ErrNotAFile,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			digest, err := c.Hash(tc.path, tc.algorithm)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, digest)
		})
	}
}

func TestContext_Hash_Deterministic(t *testing.T) {
	t.Parallel()

	c, root := newTestContext(t)

	require.NoError(t, os.WriteFile(filepath.Join(root, "f"), []byte("content"), 0o600))

	for _, algorithm := range fsmod.DigestNames() {
		first, err := c.Hash("f", algorithm)
		require.NoError(t, err)

		second, err := c.Hash("f", algorithm)
		require.NoError(t, err)

		assert.Equal(t, first, second, algorithm)
		assert.Regexp(t, "^[0-9a-f]+$", first, algorithm)
	}
}

func TestContext_IsSamePath(t *testing.T) {
	t.Parallel()

	c, root := newTestContext(t)

	require.NoError(t, os.WriteFile(filepath.Join(root, "f"), []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(root, "g"), []byte("x"), 0o600))
	require.NoError(t, os.Symlink(filepath.Join(root, "f"), filepath.Join(root, "link")))

	assert.True(t, c.IsSamePath("f", "f"))
	assert.True(t, c.IsSamePath("f", "link"))
	assert.False(t, c.IsSamePath("f", "g"))
	assert.False(t, c.IsSamePath("f", "missing"))
	assert.False(t, c.IsSamePath("missing", "missing"))
}

func TestNewDigest(t *testing.T) {
	t.Parallel()

	for _, name := range fsmod.DigestNames() {
		h, err := fsmod.NewDigest(name)
		require.NoError(t, err)
		assert.NotNil(t, h)
	}

	_, err := fsmod.NewDigest("whirlpool")
	require.ErrorIs(t, err, fsmod.ErrUnsupportedAlgorithm)
	assert.Contains(t, err.Error(), "whirlpool")
}
