package commands

import (
	"os"
	"strings"

	"github.com/macropower/kclfs/pkg/fsmod"
	fsplugin "github.com/macropower/kclfs/pkg/plugin/fs"
)

// RegisterEnabledPlugins registers the fs plugin with a build context
// assembled from the environment.
func RegisterEnabledPlugins() {
	if !envTrue("KCLFS_FS_PLUGIN_DISABLED") {
		fsplugin.Register(ContextFromEnv())
	}
}

// ContextFromEnv builds the [fsmod.Context] for this invocation from
// KCLFS_SOURCE_ROOT, KCLFS_SUBDIR, KCLFS_BUILD_SYSTEM, and
// KCLFS_HOST_SYSTEM, defaulting to the current working directory and the
// running operating system.
func ContextFromEnv() *fsmod.Context {
	c := fsmod.DefaultContext()

	if v := os.Getenv("KCLFS_SOURCE_ROOT"); v != "" {
		c.SourceRoot = v
	}

	if v := os.Getenv("KCLFS_SUBDIR"); v != "" {
		c.Subdir = v
	}

	if v := os.Getenv("KCLFS_BUILD_SYSTEM"); v != "" {
		c.BuildSystem = v
	}

	if v := os.Getenv("KCLFS_HOST_SYSTEM"); v != "" {
		c.HostSystem = v
	}

	return c
}

func envTrue(key string) bool {
	return strings.ToLower(os.Getenv(key)) == "true"
}
