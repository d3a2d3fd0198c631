package history

import "time"

// #region session-record
// SessionRecord is one completed questionnaire run.
type SessionRecord struct {
	SessionID   string
	Answers     [5]int
	WeightedSum float64
	Decision    string // "yes" | "confused" | "no"
	CreatedAt   time.Time
}

// #endregion session-record
