// Package fs exposes filesystem path queries to KCL programs as the `fs`
// plugin: existence and type tests, sizes, content hashes, same-file
// identity, and syntactic path transformations including cross-platform
// relativization.
//
// Relative path arguments are anchored at the build's source root and
// current subdirectory, carried by the [fsmod.Context] the plugin is
// constructed with.
package fs

import (
	"fmt"
	"log/slog"

	"kcl-lang.io/kcl-go/pkg/plugin"

	"github.com/macropower/kclfs/pkg/fsmod"
	"github.com/macropower/kclfs/pkg/kclutil"
)

// Register registers the fs [plugin.Plugin] with the KCL plugin system.
func Register(c *fsmod.Context) {
	plugin.RegisterPlugin(New(c))
}

// oneStrArg enforces the single-string-argument contract shared by most fs
// methods.
func oneStrArg(method string, args *plugin.MethodArgs) (string, error) {
	safeArgs := kclutil.SafeMethodArgs{Args: args}

	if safeArgs.NArgs() != 1 {
		return "", fmt.Errorf("%w: fs.%s takes exactly one argument", kclutil.ErrInvalidArgumentCount, method)
	}

	s, err := safeArgs.StrArg(0)
	if err != nil {
		return "", fmt.Errorf("fs.%s: %w", method, err)
	}

	return s, nil
}

// twoStrArgs enforces the two-string-argument contract.
func twoStrArgs(method string, args *plugin.MethodArgs) (string, string, error) {
	safeArgs := kclutil.SafeMethodArgs{Args: args}

	if safeArgs.NArgs() != 2 {
		return "", "", fmt.Errorf("%w: fs.%s takes exactly two arguments", kclutil.ErrInvalidArgumentCount, method)
	}

	a, err := safeArgs.StrArg(0)
	if err != nil {
		return "", "", fmt.Errorf("fs.%s: %w", method, err)
	}

	b, err := safeArgs.StrArg(1)
	if err != nil {
		return "", "", fmt.Errorf("fs.%s: %w", method, err)
	}

	return a, b, nil
}

func methodLogger(method string) *slog.Logger {
	return slog.With(
		slog.String("plugin", "fs"),
		slog.String("method", method),
	)
}

// New returns the fs [plugin.Plugin] answering queries against c.
//
//nolint:funlen,maintidx // One MethodSpec per exposed build-script function.
func New(c *fsmod.Context) plugin.Plugin {
	return plugin.Plugin{
		Name: "fs",
		MethodMap: map[string]plugin.MethodSpec{
			"expanduser": {
				Type: &plugin.MethodType{
					ArgsType:   []string{"str"},
					ResultType: "str",
				},
				Body: func(args *plugin.MethodArgs) (*plugin.MethodResult, error) {
					methodLogger("expanduser").Debug("invoking kcl plugin")

					path, err := oneStrArg("expanduser", args)
					if err != nil {
						return nil, err
					}

					return &plugin.MethodResult{V: fsmod.ExpandUser(path)}, nil
				},
			},
			"is_absolute": {
				Type: &plugin.MethodType{
					ArgsType:   []string{"str"},
					ResultType: "bool",
				},
				Body: func(args *plugin.MethodArgs) (*plugin.MethodResult, error) {
					methodLogger("is_absolute").Debug("invoking kcl plugin")

					path, err := oneStrArg("is_absolute", args)
					if err != nil {
						return nil, err
					}

					return &plugin.MethodResult{V: fsmod.IsAbsolute(path)}, nil
				},
			},
			"as_posix": {
				Type: &plugin.MethodType{
					ArgsType:   []string{"str"},
					ResultType: "str",
				},
				Body: func(args *plugin.MethodArgs) (*plugin.MethodResult, error) {
					methodLogger("as_posix").Debug("invoking kcl plugin")

					path, err := oneStrArg("as_posix", args)
					if err != nil {
						return nil, err
					}

					return &plugin.MethodResult{V: fsmod.AsPosix(path)}, nil
				},
			},
			"relative_to": {
				// fs.relative_to(to, from, within="", machine="host")
				Type: &plugin.MethodType{
					ArgsType:   []string{"str", "str"},
					KwArgsType: map[string]string{"within": "str", "machine": "str"},
					ResultType: "str",
				},
				Body: func(args *plugin.MethodArgs) (*plugin.MethodResult, error) {
					methodLogger("relative_to").Debug("invoking kcl plugin")

					safeArgs := kclutil.SafeMethodArgs{Args: args}

					if safeArgs.NArgs() != 2 {
						return nil, fmt.Errorf(
							"%w: fs.relative_to takes two arguments and optionally a \"within\" and a \"machine\" argument",
							kclutil.ErrInvalidArgumentCount)
					}

					to, err := safeArgs.StrArg(0)
					if err != nil {
						return nil, fmt.Errorf("fs.relative_to: %w", err)
					}

					from, err := safeArgs.StrArg(1)
					if err != nil {
						return nil, fmt.Errorf("fs.relative_to: %w", err)
					}

					machine, err := fsmod.ParseMachine(
						safeArgs.StrKwArg("machine", string(fsmod.MachineHost)))
					if err != nil {
						return nil, fmt.Errorf("fs.relative_to: %w", err)
					}

					within := safeArgs.StrKwArg("within", "")

					result, err := fsmod.RelativeTo(c.SyntaxFor(machine), to, from, within)
					if err != nil {
						return nil, fmt.Errorf("fs.relative_to: %w", err)
					}

					return &plugin.MethodResult{V: result}, nil
				},
			},
			"exists": {
				Type: &plugin.MethodType{
					ArgsType:   []string{"str"},
					ResultType: "bool",
				},
				Body: func(args *plugin.MethodArgs) (*plugin.MethodResult, error) {
					methodLogger("exists").Debug("invoking kcl plugin")

					path, err := oneStrArg("exists", args)
					if err != nil {
						return nil, err
					}

					return &plugin.MethodResult{V: c.Exists(path)}, nil
				},
			},
			"is_file": {
				Type: &plugin.MethodType{
					ArgsType:   []string{"str"},
					ResultType: "bool",
				},
				Body: func(args *plugin.MethodArgs) (*plugin.MethodResult, error) {
					methodLogger("is_file").Debug("invoking kcl plugin")

					path, err := oneStrArg("is_file", args)
					if err != nil {
						return nil, err
					}

					return &plugin.MethodResult{V: c.IsFile(path)}, nil
				},
			},
			"is_dir": {
				Type: &plugin.MethodType{
					ArgsType:   []string{"str"},
					ResultType: "bool",
				},
				Body: func(args *plugin.MethodArgs) (*plugin.MethodResult, error) {
					methodLogger("is_dir").Debug("invoking kcl plugin")

					path, err := oneStrArg("is_dir", args)
					if err != nil {
						return nil, err
					}

					return &plugin.MethodResult{V: c.IsDir(path)}, nil
				},
			},
			"is_symlink": {
				Type: &plugin.MethodType{
					ArgsType:   []string{"str"},
					ResultType: "bool",
				},
				Body: func(args *plugin.MethodArgs) (*plugin.MethodResult, error) {
					methodLogger("is_symlink").Debug("invoking kcl plugin")

					path, err := oneStrArg("is_symlink", args)
					if err != nil {
						return nil, err
					}

					return &plugin.MethodResult{V: c.IsSymlink(path)}, nil
				},
			},
			"hash": {
				Type: &plugin.MethodType{
					ArgsType:   []string{"str", "str"},
					ResultType: "str",
				},
				Body: func(args *plugin.MethodArgs) (*plugin.MethodResult, error) {
					methodLogger("hash").Debug("invoking kcl plugin")

					path, algorithm, err := twoStrArgs("hash", args)
					if err != nil {
						return nil, err
					}

					digest, err := c.Hash(path, algorithm)
					if err != nil {
						return nil, fmt.Errorf("fs.hash: %w", err)
					}

					return &plugin.MethodResult{V: digest}, nil
				},
			},
			"size": {
				Type: &plugin.MethodType{
					ArgsType:   []string{"str"},
					ResultType: "int",
				},
				Body: func(args *plugin.MethodArgs) (*plugin.MethodResult, error) {
					methodLogger("size").Debug("invoking kcl plugin")

					path, err := oneStrArg("size", args)
					if err != nil {
						return nil, err
					}

					size, err := c.Size(path)
					if err != nil {
						return nil, fmt.Errorf("fs.size: %w", err)
					}

					return &plugin.MethodResult{V: size}, nil
				},
			},
			"is_samepath": {
				Type: &plugin.MethodType{
					ArgsType:   []string{"str", "str"},
					ResultType: "bool",
				},
				Body: func(args *plugin.MethodArgs) (*plugin.MethodResult, error) {
					methodLogger("is_samepath").Debug("invoking kcl plugin")

					a, b, err := twoStrArgs("is_samepath", args)
					if err != nil {
						return nil, err
					}

					return &plugin.MethodResult{V: c.IsSamePath(a, b)}, nil
				},
			},
			"replace_suffix": {
				Type: &plugin.MethodType{
					ArgsType:   []string{"str", "str"},
					ResultType: "str",
				},
				Body: func(args *plugin.MethodArgs) (*plugin.MethodResult, error) {
					methodLogger("replace_suffix").Debug("invoking kcl plugin")

					path, suffix, err := twoStrArgs("replace_suffix", args)
					if err != nil {
						return nil, err
					}

					result, err := fsmod.ReplaceSuffix(path, suffix)
					if err != nil {
						return nil, fmt.Errorf("fs.replace_suffix: %w", err)
					}

					return &plugin.MethodResult{V: result}, nil
				},
			},
			"parent": {
				Type: &plugin.MethodType{
					ArgsType:   []string{"str"},
					ResultType: "str",
				},
				Body: func(args *plugin.MethodArgs) (*plugin.MethodResult, error) {
					methodLogger("parent").Debug("invoking kcl plugin")

					path, err := oneStrArg("parent", args)
					if err != nil {
						return nil, err
					}

					return &plugin.MethodResult{V: fsmod.Parent(path)}, nil
				},
			},
			"name": {
				Type: &plugin.MethodType{
					ArgsType:   []string{"str"},
					ResultType: "str",
				},
				Body: func(args *plugin.MethodArgs) (*plugin.MethodResult, error) {
					methodLogger("name").Debug("invoking kcl plugin")

					path, err := oneStrArg("name", args)
					if err != nil {
						return nil, err
					}

					return &plugin.MethodResult{V: fsmod.Name(path)}, nil
				},
			},
			"stem": {
				Type: &plugin.MethodType{
					ArgsType:   []string{"str"},
					ResultType: "str",
				},
				Body: func(args *plugin.MethodArgs) (*plugin.MethodResult, error) {
					methodLogger("stem").Debug("invoking kcl plugin")

					path, err := oneStrArg("stem", args)
					if err != nil {
						return nil, err
					}

					return &plugin.MethodResult{V: fsmod.Stem(path)}, nil
				},
			},
		},
	}
}
