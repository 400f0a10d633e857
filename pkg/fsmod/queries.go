package fsmod

import (
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
)

// Exists reports whether path currently denotes anything on the
// filesystem. Lookup errors read as false.
func (c *Context) Exists(path string) bool {
	_, err := os.Stat(c.Resolve(path))

	return err == nil
}

// IsFile reports whether path denotes a regular file.
func (c *Context) IsFile(path string) bool {
	fi, err := os.Stat(c.Resolve(path))

	return err == nil && fi.Mode().IsRegular()
}

// IsDir reports whether path denotes a directory.
func (c *Context) IsDir(path string) bool {
	fi, err := os.Stat(c.Resolve(path))

	return err == nil && fi.IsDir()
}

// IsSymlink reports whether path itself is a symlink. It deliberately tests
// the unresolved absolute path: following links first would make a symlink
// unobservable as such. True even for dangling links.
func (c *Context) IsSymlink(path string) bool {
	fi, err := os.Lstat(c.Absolute(path))

	return err == nil && fi.Mode()&os.ModeSymlink != 0
}

// Size returns the byte length of the regular file at path.
func (c *Context) Size(path string) (int64, error) {
	resolved := c.Resolve(path)

	fi, err := os.Stat(resolved)
	if err != nil || !fi.Mode().IsRegular() {
		return 0, fmt.Errorf("%w: %s cannot be sized", ErrNotAFile, resolved)
	}

	size := fi.Size()
	if size < 0 {
		return 0, fmt.Errorf("%w: %s", ErrSizeUnavailable, resolved)
	}

	return size, nil
}

// Hash reads the regular file at path in full and returns its lowercase
// hexadecimal digest under the named algorithm.
func (c *Context) Hash(path, algorithm string) (string, error) {
	resolved := c.Resolve(path)

	fi, err := os.Stat(resolved)
	if err != nil || !fi.Mode().IsRegular() {
		return "", fmt.Errorf("%w: %s cannot be hashed", ErrNotAFile, resolved)
	}

	h, err := NewDigest(algorithm)
	if err != nil {
		return "", err
	}

	slog.Debug("computing file hash",
		slog.String("algorithm", algorithm),
		slog.String("path", resolved),
		slog.String("size", humanize.IBytes(uint64(fi.Size()))), //nolint:gosec // Regular file sizes are non-negative.
	)

	data, err := os.ReadFile(resolved)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", resolved, err)
	}

	h.Write(data)

	return hex.EncodeToString(h.Sum(nil)), nil
}

// IsSamePath reports whether a and b denote the same underlying file after
// resolution. Nonexistent paths and identity-check failures read as false;
// this query never fails.
func (c *Context) IsSamePath(a, b string) bool {
	fa, err := os.Stat(c.Resolve(a))
	if err != nil {
		return false
	}

	fb, err := os.Stat(c.Resolve(b))
	if err != nil {
		return false
	}

	return os.SameFile(fa, fb)
}
