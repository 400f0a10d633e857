package fsmod

import (
	"crypto/md5"  //nolint:gosec // Build scripts may request legacy digests.
	"crypto/sha1" //nolint:gosec // Build scripts may request legacy digests.
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"sort"

	"github.com/zeebo/blake3"
)

var digests = map[string]func() hash.Hash{
	"md5":    md5.New,
	"sha1":   sha1.New,
	"sha224": sha256.New224,
	"sha256": sha256.New,
	"sha384": sha512.New384,
	"sha512": sha512.New,
	"blake3": func() hash.Hash { return blake3.New() },
}

// NewDigest returns a fresh hash for the named algorithm.
func NewDigest(algorithm string) (hash.Hash, error) {
	newFn, ok := digests[algorithm]
	if !ok {
		return nil, fmt.Errorf("%w: %q is not available, expected one of %v",
			ErrUnsupportedAlgorithm, algorithm, DigestNames())
	}

	return newFn(), nil
}

// DigestNames lists the supported algorithm names, sorted.
func DigestNames() []string {
	names := make([]string, 0, len(digests))
	for name := range digests {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
