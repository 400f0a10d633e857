package fsmod

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/macropower/kclfs/pkg/pathsyntax"
)

// The transforms below operate on a path's spelling only. They never touch
// the filesystem and never resolve symlinks.

// apparentSyntax judges a spelling by its own shape: anything carrying a
// drive designator or a backslash reads as Windows, everything else as
// POSIX. This is deliberately independent of any machine selection.
func apparentSyntax(path string) pathsyntax.Syntax {
	if pathsyntax.Windows.VolumeName(path) != "" || strings.ContainsRune(path, '\\') {
		return pathsyntax.Windows
	}

	return pathsyntax.Posix
}

// render spells out an anchor plus components under syn. An empty path
// renders as ".".
func render(syn pathsyntax.Syntax, root string, parts []string) string {
	s := root + syn.Join(parts...)
	if s == "" {
		return "."
	}

	return s
}

// ExpandUser expands a leading "~" to the invoking user's home directory.
// "~user" forms and paths without the marker are returned unchanged.
func ExpandUser(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}

	if path == "~" {
		return home
	}

	return filepath.Join(home, path[2:])
}

// IsAbsolute reports whether path is absolute under its own apparent
// syntax, not under any selected machine's.
func IsAbsolute(path string) bool {
	return apparentSyntax(path).IsAbs(path)
}

// AsPosix converts path to forward-slash form. The input is always treated
// as a Windows-syntax path, even on non-Windows hosts, so every backslash
// acts as a separator. This asymmetry is intentional and relied upon by
// build scripts; do not make it conditional on the host.
func AsPosix(path string) string {
	root, parts := pathsyntax.Windows.SplitRoot(path)
	root = strings.ReplaceAll(root, `\`, "/")

	s := root + strings.Join(parts, "/")
	if s == "" {
		return "."
	}

	return s
}

// Parent returns path without its final component. The parent of a root is
// the root itself; the parent of a bare name is ".".
func Parent(path string) string {
	syn := apparentSyntax(path)

	root, parts := syn.SplitRoot(path)
	if len(parts) == 0 {
		return render(syn, root, nil)
	}

	return render(syn, root, parts[:len(parts)-1])
}

// Name returns the final component of path, empty for a bare root.
func Name(path string) string {
	syn := apparentSyntax(path)

	_, parts := syn.SplitRoot(path)
	if len(parts) == 0 {
		return ""
	}

	return parts[len(parts)-1]
}

// Stem returns the final component of path without its last extension:
// "archive.tar.gz" has stem "archive.tar".
func Stem(path string) string {
	name := Name(path)

	if i := strings.LastIndex(name, "."); i > 0 && i < len(name)-1 {
		return name[:i]
	}

	return name
}

// ReplaceSuffix replaces the last extension of path's final component with
// suffix, which must be empty (removing the extension) or start with a dot.
// A component without an extension gets the suffix appended.
func ReplaceSuffix(path, suffix string) (string, error) {
	if suffix != "" {
		if !strings.HasPrefix(suffix, ".") || suffix == "." {
			return "", fmt.Errorf("%w: invalid suffix %q", ErrInvalidArgument, suffix)
		}

		if strings.ContainsAny(suffix, `/\`) {
			return "", fmt.Errorf("%w: invalid suffix %q", ErrInvalidArgument, suffix)
		}
	}

	syn := apparentSyntax(path)

	root, parts := syn.SplitRoot(path)
	if len(parts) == 0 {
		return "", fmt.Errorf("%w: %q has an empty name", ErrInvalidArgument, path)
	}

	name := parts[len(parts)-1]

	stem := name
	if i := strings.LastIndex(name, "."); i > 0 && i < len(name)-1 {
		stem = name[:i]
	}

	parts[len(parts)-1] = stem + suffix

	return render(syn, root, parts), nil
}
