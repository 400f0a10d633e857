package fsmod

import (
	"fmt"

	"github.com/macropower/kclfs/pkg/pathsyntax"
)

// RelativeTo computes the shortest relative path expression that leads from
// `from` to `to` under syn. Both must be absolute under syn. Identical
// paths yield ".".
//
// When within is non-empty it must also be absolute, and it confines the
// result: if `to` is not a descendant of within, `to` is returned unchanged
// instead of a relative expression that could escape it.
//
// The result always uses syn's separator, regardless of the operating
// system the tool runs on.
func RelativeTo(syn pathsyntax.Syntax, to, from, within string) (string, error) {
	if !syn.IsAbs(to) {
		return "", fmt.Errorf("%w: the first argument (%s) must be an absolute path",
			ErrInvalidArgument, to)
	}

	if !syn.IsAbs(from) {
		return "", fmt.Errorf("%w: the second argument (%s) must be an absolute path",
			ErrInvalidArgument, from)
	}

	toParts := syn.Split(to)
	fromParts := syn.Split(from)

	if within != "" {
		if !syn.IsAbs(within) {
			return "", fmt.Errorf("%w: the \"within\" argument (%s) must be an absolute path",
				ErrInvalidArgument, within)
		}

		if !hasPrefix(toParts, syn.Split(within)) {
			return to, nil
		}
	}

	if hasPrefix(toParts, fromParts) {
		rest := toParts[len(fromParts):]
		if len(rest) == 0 {
			return ".", nil
		}

		return syn.Join(rest...), nil
	}

	if toParts[0] != fromParts[0] {
		return "", fmt.Errorf(
			"%w: %s and %s do not have a common root; use the \"within\" argument if you want an absolute path instead of an error",
			ErrNoCommonRoot, to, from)
	}

	common := 1
	for common < len(toParts) && common < len(fromParts) && toParts[common] == fromParts[common] {
		common++
	}

	levels := len(fromParts) - common

	segments := make([]string, 0, levels+len(toParts)-common)
	for range levels {
		segments = append(segments, "..")
	}

	segments = append(segments, toParts[common:]...)

	return syn.Join(segments...), nil
}

func hasPrefix(parts, prefix []string) bool {
	if len(prefix) > len(parts) {
		return false
	}

	for i, p := range prefix {
		if parts[i] != p {
			return false
		}
	}

	return true
}
