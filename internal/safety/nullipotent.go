package safety

// #region safe-action

// SafeAction is one member of the nullipotent action set: actions
// that cannot cause irreversible harm. The set is closed; adding a
// case requires policy review, so the type is a fixed enum rather
// than an open list.
type SafeAction int

const (
	SafeActionHalt SafeAction = iota
	SafeActionDiagnosticReport
	SafeActionIssueWarning
	SafeActionRevertToHumanControl
)

// String returns the wire/audit name of the safe action.
func (a SafeAction) String() string {
	switch a {
	case SafeActionHalt:
		return "safe_halt"
	case SafeActionDiagnosticReport:
		return "diagnostic_report"
	case SafeActionIssueWarning:
		return "issue_warning"
	case SafeActionRevertToHumanControl:
		return "revert_to_human_control"
	default:
		return "unknown_safe_action"
	}
}

// #endregion safe-action

// #region nullipotent-set

var nullipotentActions = [...]SafeAction{
	SafeActionHalt,
	SafeActionDiagnosticReport,
	SafeActionIssueWarning,
	SafeActionRevertToHumanControl,
}

// NullipotentActions returns a copy of the fixed nullipotent action
// set. Constant for the process lifetime.
func NullipotentActions() []SafeAction {
	out := make([]SafeAction, len(nullipotentActions))
	copy(out, nullipotentActions[:])
	return out
}

// #endregion nullipotent-set
