package audit

import "time"

// #region entry
// Entry is one row of the decision log: the full outcome of a single
// decision cycle, including every veto reason that fired.
type Entry struct {
	ID                 int64
	CycleID            string
	ChosenAction       string
	ExecutedAction     string
	Score              int64
	Outcome            string
	VetoSources        []string
	Reasons            []string
	Notes              []string
	EnsembleConfidence float64
	SafeModeActive     bool
	SafeModeReason     string
	CreatedAt          time.Time
}
// #endregion entry
