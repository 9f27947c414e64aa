// Package hook dispatches package-manager lifecycle actions and purges the
// paths a Salt package leaves behind.
package hook

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/saltstack/salt-postrm/internal/messages"
	"github.com/saltstack/salt-postrm/internal/paths"
	"github.com/saltstack/salt-postrm/internal/variant"
)

// Runner executes lifecycle actions for one hook invocation.
type Runner struct {
	Sys    System
	Layout paths.Layout
	// Prog is the name the hook was invoked under, used verbatim in
	// diagnostics.
	Prog string
	// Warn receives best-effort delete notices. Nil discards them.
	Warn io.Writer
}

// Run dispatches actionArg for variant v.
//
// Recognized non-purge actions succeed without touching the filesystem.
// Purge deletes the variant's leftover paths best-effort: a target that is
// already absent counts as success, and any other deletion failure is noted
// on Warn but never fails the run. Purge must succeed even after a partial
// prior removal, so a second run over the same tree is a successful no-op.
func (r Runner) Run(actionArg string, v variant.Variant) error {
	action, ok := ParseAction(actionArg)
	if !ok {
		return &UnknownActionError{Prog: r.Prog, Action: actionArg}
	}
	if action != ActionPurge {
		return nil
	}

	if !v.Known() {
		return &UnknownPackageError{Prog: r.Prog, Package: v.String()}
	}
	if v == variant.Common {
		for _, dir := range r.Layout.CommonDirs() {
			r.removeAll(dir)
		}
		return nil
	}
	r.remove(r.Layout.ConfigFile(v))
	r.remove(r.Layout.LogFile(v))
	return nil
}

// remove deletes a single path, treating an absent target as success.
func (r Runner) remove(path string) {
	if err := r.Sys.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		r.notice(path, err)
	}
}

// removeAll deletes a directory tree. RemoveAll already treats an absent
// target as success.
func (r Runner) removeAll(path string) {
	if err := r.Sys.RemoveAll(path); err != nil {
		r.notice(path, err)
	}
}

func (r Runner) notice(path string, err error) {
	if r.Warn == nil {
		return
	}
	fmt.Fprintf(r.Warn, messages.RemoveNoticeFmt, path, err)
}
