package hook

// Action is a package-manager lifecycle action passed as the hook's sole
// argument.
type Action string

// Lifecycle actions the hook recognizes. Only ActionPurge does any work;
// the rest are acknowledged with a successful no-op.
const (
	ActionRemove        Action = "remove"
	ActionPurge         Action = "purge"
	ActionUpgrade       Action = "upgrade"
	ActionFailedUpgrade Action = "failed-upgrade"
	ActionDisappear     Action = "disappear"
	ActionAbortInstall  Action = "abort-install"
	ActionAbortUpgrade  Action = "abort-upgrade"
)

// ParseAction maps s to a recognized lifecycle action.
func ParseAction(s string) (Action, bool) {
	switch a := Action(s); a {
	case ActionRemove, ActionPurge, ActionUpgrade, ActionFailedUpgrade,
		ActionDisappear, ActionAbortInstall, ActionAbortUpgrade:
		return a, true
	}
	return "", false
}
