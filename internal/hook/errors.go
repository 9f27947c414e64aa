package hook

import (
	"fmt"

	"github.com/saltstack/salt-postrm/internal/messages"
)

// UnknownActionError reports a lifecycle action the hook does not recognize.
type UnknownActionError struct {
	Prog   string
	Action string
}

func (e *UnknownActionError) Error() string {
	return fmt.Sprintf(messages.UnknownActionFmt, e.Prog, e.Action)
}

// UnknownPackageError reports a purge request for a package variant the hook
// does not recognize.
type UnknownPackageError struct {
	Prog    string
	Package string
}

func (e *UnknownPackageError) Error() string {
	return fmt.Sprintf(messages.UnknownPackageFmt, e.Prog, e.Package)
}
