package messages

// CLI messages and diagnostic formats for the purge hook.
const (
	// RootUse is the CLI command name.
	RootUse = "salt-postrm"
	// RootShort is the short description for the root command.
	RootShort = "Salt package removal hook"
	RootLong  = "Package-manager lifecycle hook for Salt packages.\n\n" +
		"Invoked by the package manager as '<program> <action>'. On 'purge' it\n" +
		"deletes the configuration, log, cache, and runtime paths the package\n" +
		"leaves behind; every other recognized lifecycle action is a no-op."

	RootFlagPackage = "Salt package to clean up (master, minion, syndic, or common); defaults to the name this hook was invoked under"

	// VersionTemplate renders --version output.
	VersionTemplate = "{{.Version}}\n"
	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionFullFmt   = "%s (%s)"

	// UnknownActionFmt formats the diagnostic for an unrecognized lifecycle action.
	UnknownActionFmt = "%s unknown action '%s'"
	// UnknownPackageFmt formats the diagnostic for an unrecognized package variant.
	UnknownPackageFmt = "%s unknown package '%s'"

	// RemoveNoticeFmt formats the notice emitted when a best-effort delete
	// fails for a reason other than the target being absent.
	RemoveNoticeFmt = "could not remove %s: %v\n"
)
