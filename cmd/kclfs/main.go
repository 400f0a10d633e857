package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	kclcmd "kcl-lang.io/cli/cmd/kcl/commands"

	"github.com/macropower/kclfs/cmd/kclfs/commands"
	"github.com/macropower/kclfs/pkg/log"
)

const (
	cmdName = "kclfs"

	shortDesc = "The kclfs Command Line Interface (CLI)."
	longDesc  = `The kclfs Command Line Interface (CLI).

kclfs provides the fs KCL plugin: filesystem path queries (existence, type,
size, content hashes, same-file identity) and syntactic path transformations
(suffix replacement, parent/name/stem, POSIX conversion, cross-platform
relativization) for KCL build scripts.

The KCL website: https://kcl-lang.io
`
)

func init() {
	// A .env next to the invocation can carry KCLFS_* configuration.
	_ = godotenv.Load()

	log.SetDefaultFromEnv()
}

func main() {
	commands.RegisterEnabledPlugins()

	cmd := commands.NewRootCmd(cmdName, shortDesc, longDesc)

	// Leading flags go straight to `kcl run`, so `kclfs main.k -D k=v`
	// behaves like the kcl CLI.
	if len(os.Args) > 1 && strings.HasPrefix(os.Args[1], "-") && !isHelpOrVersionFlag(os.Args[1]) {
		executeRunCmd(os.Args[1:])
	}

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, strings.TrimLeft(err.Error(), "\n"))
		os.Exit(1)
	}
}

func executeRunCmd(args []string) {
	cmd := kclcmd.NewRunCmd()
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}

	os.Exit(0)
}

func isHelpOrVersionFlag(flag string) bool {
	return flag == "-h" || flag == "--help" || flag == "-v" || flag == "--version"
}
