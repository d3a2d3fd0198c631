package logging

import (
	"database/sql"
	"fmt"
	"time"
)

// #region log-decision
// LogDecision writes an audit entry to the decision_log table.
func LogDecision(db *sql.DB, entry Entry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	_, err := db.Exec(
		`INSERT INTO decision_log (session_id, trigger_type, answers_json, decision, reason, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		entry.SessionID,
		entry.TriggerType,
		nullIfEmpty(entry.AnswersJSON),
		entry.Decision,
		nullIfEmpty(entry.Reason),
		entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("log decision: %w", err)
	}
	return nil
}

// #endregion log-decision

// #region list-for-session
// ListForSession returns the log entries recorded for one session, oldest first.
func ListForSession(db *sql.DB, sessionID string) ([]Entry, error) {
	rows, err := db.Query(
		`SELECT session_id, trigger_type, answers_json, decision, reason, created_at
		 FROM decision_log WHERE session_id = ? ORDER BY id ASC`, sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("list log entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var answersJSON, reason sql.NullString
		var createdStr string

		if err := rows.Scan(&e.SessionID, &e.TriggerType, &answersJSON, &e.Decision, &reason, &createdStr); err != nil {
			return nil, fmt.Errorf("scan log row: %w", err)
		}
		if answersJSON.Valid {
			e.AnswersJSON = answersJSON.String
		}
		if reason.Valid {
			e.Reason = reason.String
		}
		e.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// #endregion list-for-session

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion helpers
