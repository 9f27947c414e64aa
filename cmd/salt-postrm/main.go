package main

import (
	"fmt"
	"io"
	"os"

	"github.com/saltstack/salt-postrm/internal/messages"
)

// Version, Commit, and BuildDate are overridden at build time.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

func main() {
	runMain(os.Args, os.Stdout, os.Stderr, os.Exit)
}

// runMain executes the hook and exits non-zero on fatal errors. The package
// manager treats any non-zero exit as a failed maintainer script, so errors
// are printed exactly once.
func runMain(args []string, stdout io.Writer, stderr io.Writer, exit func(int)) {
	cmd := newRootCmd(progName(args))
	cmd.Version = versionString()
	cmd.SetVersionTemplate(messages.VersionTemplate)
	if len(args) > 1 {
		cmd.SetArgs(args[1:])
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		exit(1)
	}
}

// progName returns the name the hook was invoked under. Diagnostics quote it
// verbatim, path and all.
func progName(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return messages.RootUse
}

// versionString combines the version with the commit hash when one was baked in.
func versionString() string {
	if Commit == "unknown" {
		return Version
	}
	return fmt.Sprintf(messages.VersionFullFmt, Version, fmt.Sprintf(messages.VersionCommitFmt, Commit))
}
