package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/saltstack/salt-postrm/internal/hook"
	"github.com/saltstack/salt-postrm/internal/messages"
	"github.com/saltstack/salt-postrm/internal/paths"
	"github.com/saltstack/salt-postrm/internal/variant"
)

// Overridable in tests.
var (
	newSystem     = func() hook.System { return hook.RealSystem{} }
	defaultLayout = paths.Default
	warnWriter    = io.Writer(io.Discard)
)

// newRootCmd builds the root command. prog is the name the hook was invoked
// under; package selection falls back to it when --package is not given.
func newRootCmd(prog string) *cobra.Command {
	var pkg string
	cmd := &cobra.Command{
		Use:   messages.RootUse + " <action>",
		Short: messages.RootShort,
		Long:  messages.RootLong,
		// The action argument is validated by the dispatcher so the
		// diagnostic matches the maintainer-script contract. Trailing
		// arguments (the version the package manager appends to upgrade
		// actions) are accepted and ignored.
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := variant.FromProgram(prog)
			if pkg != "" {
				v = variant.Variant(pkg)
			}
			action := ""
			if len(args) > 0 {
				action = args[0]
			}
			r := hook.Runner{
				Sys:    newSystem(),
				Layout: defaultLayout(),
				Prog:   prog,
				Warn:   warnWriter,
			}
			return r.Run(action, v)
		},
	}
	cmd.Flags().StringVar(&pkg, "package", "", messages.RootFlagPackage)
	return cmd
}
