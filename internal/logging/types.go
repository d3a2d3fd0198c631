package logging

import "time"

// #region entry
// Entry is a single row in the decision_log table.
type Entry struct {
	SessionID   string
	TriggerType string // "questionnaire" | "replay"
	AnswersJSON string
	Decision    string // "yes" | "confused" | "no"
	Reason      string
	CreatedAt   time.Time
}

// #endregion entry
