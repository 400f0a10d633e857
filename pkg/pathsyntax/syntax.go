// Package pathsyntax interprets path spellings under a target machine's
// conventions rather than the host's. A path produced for a Windows target
// must be split, joined, and judged absolute with Windows separator and
// drive rules even when the build itself runs on a POSIX system, and vice
// versa.
package pathsyntax

import (
	"runtime"
	"strings"
)

// Syntax selects the separator and absoluteness rules used to interpret a
// path spelling.
type Syntax int

const (
	// Posix is forward-slash syntax with a single "/" root.
	Posix Syntax = iota
	// Windows is backslash syntax with drive letters and UNC volumes.
	// Forward slashes are accepted as separators on input.
	Windows
)

// ForSystem returns the [Syntax] for an operating system identifier, as
// found in a machine descriptor. Anything that is not "windows" uses POSIX
// rules.
func ForSystem(system string) Syntax {
	if strings.EqualFold(system, "windows") {
		return Windows
	}

	return Posix
}

// Native returns the [Syntax] of the host operating system.
func Native() Syntax {
	return ForSystem(runtime.GOOS)
}

func (s Syntax) String() string {
	if s == Windows {
		return "windows"
	}

	return "posix"
}

// Separator returns the separator used when rendering paths under s.
func (s Syntax) Separator() string {
	if s == Windows {
		return `\`
	}

	return "/"
}

func (s Syntax) isSeparator(c byte) bool {
	if s == Windows {
		return c == '\\' || c == '/'
	}

	return c == '/'
}

// VolumeName returns the leading volume of path under Windows syntax: a
// drive designator like "C:" or a UNC share like `\\host\share`. It is
// always empty under POSIX syntax.
func (s Syntax) VolumeName(path string) string {
	if s != Windows {
		return ""
	}

	if len(path) >= 2 && path[1] == ':' && isDriveLetter(path[0]) {
		return path[:2]
	}

	// UNC: \\host\share
	if len(path) >= 2 && s.isSeparator(path[0]) && s.isSeparator(path[1]) {
		rest := path[2:]

		hostEnd := indexSeparator(s, rest)
		if hostEnd <= 0 {
			return ""
		}

		shareStart := hostEnd + 1
		shareEnd := indexSeparator(s, rest[shareStart:])
		if shareEnd == 0 {
			return ""
		}

		if shareEnd < 0 {
			shareEnd = len(rest) - shareStart
		}

		if shareEnd == 0 {
			return ""
		}

		return `\\` + rest[:hostEnd] + `\` + rest[shareStart:shareStart+shareEnd]
	}

	return ""
}

// IsAbs reports whether path is absolute under s. Under Windows syntax a
// path needs both a volume and a root: "C:a" and `\a` are not absolute,
// matching how build scripts for Windows targets spell anchored paths.
func (s Syntax) IsAbs(path string) bool {
	if s == Windows {
		vol := s.VolumeName(path)
		if vol == "" {
			return false
		}

		rest := path[volumeSpellingLen(s, path, vol):]

		return rest != "" && s.isSeparator(rest[0])
	}

	return path != "" && path[0] == '/'
}

// SplitRoot splits path into its anchor and its components. The anchor is
// "/" under POSIX, and the volume and/or rooting separator under Windows
// ("C:", `C:\`, `\`, `\\host\share\`); it is empty for relative paths.
// Empty and "." components are dropped, ".." is kept.
func (s Syntax) SplitRoot(path string) (string, []string) {
	root := ""
	rest := path

	if s == Windows {
		vol := s.VolumeName(path)
		rest = path[volumeSpellingLen(s, path, vol):]

		switch {
		case vol != "" && rest != "" && s.isSeparator(rest[0]):
			root = normalizeVolume(vol) + `\`
		case vol != "":
			root = normalizeVolume(vol)
		case rest != "" && s.isSeparator(rest[0]):
			root = `\`
		}
	} else if rest != "" && rest[0] == '/' {
		root = "/"
	}

	var parts []string

	for _, c := range splitSeparators(s, rest) {
		if c == "" || c == "." {
			continue
		}

		parts = append(parts, c)
	}

	return root, parts
}

// Split breaks path into components. For absolute paths the first component
// is the anchor as returned by [Syntax.SplitRoot].
func (s Syntax) Split(path string) []string {
	root, parts := s.SplitRoot(path)
	if root == "" {
		return parts
	}

	return append([]string{root}, parts...)
}

// Join joins components with the syntax separator, skipping empty ones. It
// is used to render relative results, so no root handling applies.
func (s Syntax) Join(parts ...string) string {
	nonEmpty := make([]string, 0, len(parts))

	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}

	return strings.Join(nonEmpty, s.Separator())
}

func splitSeparators(s Syntax, path string) []string {
	return strings.FieldsFunc(path, func(r rune) bool {
		if s == Windows {
			return r == '\\' || r == '/'
		}

		return r == '/'
	})
}

// volumeSpellingLen returns the length of the volume as it is spelled in
// path, which can differ from len(vol) when a UNC prefix uses forward
// slashes.
func volumeSpellingLen(s Syntax, path, vol string) int {
	if vol == "" {
		return 0
	}

	if len(vol) == 2 && vol[1] == ':' {
		return 2
	}

	// UNC volume: count the spelled prefix covering \\host\share.
	n := 0
	seps := 0

	for n < len(path) {
		if s.isSeparator(path[n]) {
			seps++
			if seps == 4 {
				break
			}
		}

		n++
	}

	return n
}

func indexSeparator(s Syntax, path string) int {
	for i := 0; i < len(path); i++ {
		if s.isSeparator(path[i]) {
			return i
		}
	}

	return -1
}

func normalizeVolume(vol string) string {
	return strings.ReplaceAll(vol, "/", `\`)
}

func isDriveLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
