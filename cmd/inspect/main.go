package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/quietloop/decide/internal/history"
	"github.com/quietloop/decide/internal/logging"
	_ "modernc.org/sqlite"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to decide_history.db")
	last := flag.Int("last", 20, "show N most recent sessions")
	session := flag.String("session", "", "show single session detail")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/decide_history.db [--last N] [--session id] [--json]")
		os.Exit(2)
	}

	store, err := history.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if *session != "" {
		if err := runDetailMode(store, *session, *jsonOut); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	} else {
		if err := runListMode(store, *last, *jsonOut); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
}

// #endregion main

// #region list-mode

type listRow struct {
	SessionID   string  `json:"session_id"`
	Answers     [5]int  `json:"answers"`
	WeightedSum float64 `json:"weighted_sum"`
	Decision    string  `json:"decision"`
	CreatedAt   string  `json:"created_at"`
}

func runListMode(store *history.Store, last int, jsonOut bool) error {
	sessions, err := store.ListSessions(last)
	if err != nil {
		return err
	}

	rows := make([]listRow, 0, len(sessions))
	for _, s := range sessions {
		rows = append(rows, listRow{
			SessionID:   s.SessionID,
			Answers:     s.Answers,
			WeightedSum: s.WeightedSum,
			Decision:    s.Decision,
			CreatedAt:   s.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	if len(rows) == 0 {
		fmt.Println("no sessions recorded")
		return nil
	}

	fmt.Printf("%-36s  %-15s  %8s  %-8s  %s\n", "SESSION", "ANSWERS", "SUM", "DECISION", "CREATED")
	for _, r := range rows {
		fmt.Printf("%-36s  %-15s  %8.2f  %-8s  %s\n",
			r.SessionID, fmt.Sprint(r.Answers), r.WeightedSum, r.Decision, r.CreatedAt)
	}
	return nil
}

// #endregion list-mode

// #region detail-mode

type sessionDetail struct {
	Session listRow         `json:"session"`
	Log     []logging.Entry `json:"log"`
}

func runDetailMode(store *history.Store, sessionID string, jsonOut bool) error {
	s, err := store.GetSession(sessionID)
	if err != nil {
		return err
	}
	entries, err := logging.ListForSession(store.DB(), sessionID)
	if err != nil {
		return err
	}

	if jsonOut {
		detail := sessionDetail{
			Session: listRow{
				SessionID:   s.SessionID,
				Answers:     s.Answers,
				WeightedSum: s.WeightedSum,
				Decision:    s.Decision,
				CreatedAt:   s.CreatedAt.Format("2006-01-02 15:04:05"),
			},
			Log: entries,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(detail)
	}

	fmt.Printf("session:      %s\n", s.SessionID)
	fmt.Printf("answers:      %v\n", s.Answers)
	fmt.Printf("weighted sum: %.2f\n", s.WeightedSum)
	fmt.Printf("decision:     %s\n", s.Decision)
	fmt.Printf("created:      %s\n", s.CreatedAt.Format("2006-01-02 15:04:05"))

	if len(entries) > 0 {
		fmt.Println("\nlog:")
		for _, e := range entries {
			fmt.Printf("  [%s] %s: %s (%s)\n",
				e.CreatedAt.Format("15:04:05"), e.TriggerType, e.Decision, e.Reason)
		}
	}
	return nil
}

// #endregion detail-mode
