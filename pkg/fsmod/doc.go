// Package fsmod answers filesystem path queries for KCL build scripts:
// existence and type tests, sizes, content hashes, same-file identity, and
// purely syntactic transformations including cross-platform path
// relativization.
//
// Relative inputs are anchored at the build's source root and current
// subdirectory, carried in a [Context]. Queries that touch the filesystem
// resolve symlinks best-effort and never fail on unresolvable paths; the
// spelling transforms never touch the filesystem at all.
package fsmod
