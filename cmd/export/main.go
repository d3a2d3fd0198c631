package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/quietloop/decide/internal/history"
	"github.com/quietloop/decide/internal/replay"
)

// #region main

// export turns recorded sessions into a replay fixture whose expected
// decisions are the decisions recorded at the time.
func main() {
	dbPath := flag.String("db", "", "path to decide_history.db")
	outPath := flag.String("out", "fixture.json", "output fixture path")
	last := flag.Int("last", 50, "export N most recent sessions")
	description := flag.String("description", "exported sessions", "fixture description")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: export --db path/to/decide_history.db [--out fixture.json] [--last N]")
		os.Exit(2)
	}

	store, err := history.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	sessions, err := store.ListSessions(*last)
	if err != nil {
		fmt.Fprintf(os.Stderr, "list sessions: %v\n", err)
		os.Exit(1)
	}
	if len(sessions) == 0 {
		fmt.Fprintln(os.Stderr, "no sessions to export")
		os.Exit(1)
	}

	fixture := &replay.Fixture{
		Description: *description,
		Config:      replay.DefaultFixtureConfig(),
	}
	for _, s := range sessions {
		fixture.Cases = append(fixture.Cases, replay.FixtureCase{
			CaseID:   s.SessionID,
			Answers:  s.Answers,
			Expected: s.Decision,
		})
	}

	if err := replay.WriteFixture(*outPath, fixture); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("exported %d sessions to %s\n", len(fixture.Cases), *outPath)
}

// #endregion main
