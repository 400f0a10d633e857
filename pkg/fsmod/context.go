package fsmod

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/macropower/kclfs/pkg/pathsyntax"
)

// Machine selects which machine of a (possibly cross-) compilation a path
// operation should use for its path syntax.
type Machine string

const (
	// MachineBuild is the machine the build runs on.
	MachineBuild Machine = "build"
	// MachineHost is the machine the build output runs on.
	MachineHost Machine = "host"
)

// ParseMachine parses a machine selector as spelled in a build script.
func ParseMachine(s string) (Machine, error) {
	switch Machine(s) {
	case MachineBuild:
		return MachineBuild, nil
	case MachineHost:
		return MachineHost, nil
	}

	return "", fmt.Errorf("%w: unknown machine %q, expected %q or %q",
		ErrInvalidArgument, s, MachineBuild, MachineHost)
}

// Context carries the build-invocation state that path queries are answered
// against. It is read-only; one Context serves a whole interpreter run.
type Context struct {
	// SourceRoot is the absolute top-level directory anchoring all
	// relative build-script paths.
	SourceRoot string

	// Subdir is the current build script's directory, relative to
	// SourceRoot.
	Subdir string

	// BuildSystem and HostSystem are operating-system identifiers
	// ("linux", "windows", ...) for the two machine roles.
	BuildSystem string
	HostSystem  string
}

// NewContext returns a Context anchored at sourceRoot/subdir. Empty machine
// identifiers default to the operating system the tool runs on.
func NewContext(sourceRoot, subdir, buildSystem, hostSystem string) *Context {
	if buildSystem == "" {
		buildSystem = runtime.GOOS
	}

	if hostSystem == "" {
		hostSystem = runtime.GOOS
	}

	return &Context{
		SourceRoot:  sourceRoot,
		Subdir:      subdir,
		BuildSystem: buildSystem,
		HostSystem:  hostSystem,
	}
}

// DefaultContext returns a Context anchored at the current working
// directory, with both machines set to the running operating system.
func DefaultContext() *Context {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}

	return NewContext(wd, "", "", "")
}

// SyntaxFor returns the path syntax of the selected machine.
func (c *Context) SyntaxFor(m Machine) pathsyntax.Syntax {
	if m == MachineBuild {
		return pathsyntax.ForSystem(c.BuildSystem)
	}

	return pathsyntax.ForSystem(c.HostSystem)
}

// Absolute makes path absolute relative to the source root and current
// subdirectory, after home-directory expansion. Symlinks are not resolved
// and no existence check is performed.
func (c *Context) Absolute(path string) string {
	p := ExpandUser(path)
	if filepath.IsAbs(p) {
		return p
	}

	return filepath.Join(c.SourceRoot, c.Subdir, p)
}

// Resolve makes path absolute and attempts full canonicalization, removing
// symlinks and relative components. Unresolvable paths (dangling links,
// cycles, missing intermediate directories, permission errors) are not an
// error: a path query must not abort the build over them, so the
// unresolved absolute path is returned instead.
func (c *Context) Resolve(path string) string {
	abs := c.Absolute(path)

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return abs
	}

	if !filepath.IsAbs(resolved) {
		if a, err := filepath.Abs(resolved); err == nil {
			return a
		}

		return abs
	}

	return resolved
}
