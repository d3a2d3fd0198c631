package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/quietloop/decide/internal/replay"
)

// #region main

func main() {
	fixturePath := flag.String("fixture", "", "path to a replay fixture JSON file")
	jsonOut := flag.Bool("json", false, "output results as JSON")
	flag.Parse()

	if *fixturePath == "" {
		fmt.Fprintln(os.Stderr, "usage: replay --fixture path/to/fixture.json [--json]")
		os.Exit(2)
	}

	fixture, err := replay.LoadFixture(*fixturePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	results, summary := replay.Replay(fixture)

	if *jsonOut {
		printJSON(results, summary)
	} else {
		printTable(fixture.Description, results, summary)
	}

	if summary.Failed > 0 {
		os.Exit(1)
	}
}

// #endregion main

// #region output

type jsonReport struct {
	Results []jsonResult   `json:"results"`
	Summary replay.Summary `json:"summary"`
}

type jsonResult struct {
	CaseID      string  `json:"case_id"`
	Answers     [5]int  `json:"answers"`
	WeightedSum float64 `json:"weighted_sum"`
	Expected    string  `json:"expected"`
	Got         string  `json:"got"`
	Pass        bool    `json:"pass"`
	Reason      string  `json:"reason"`
}

func printJSON(results []replay.CaseResult, summary replay.Summary) {
	report := jsonReport{Summary: summary}
	for _, r := range results {
		report.Results = append(report.Results, jsonResult{
			CaseID:      r.CaseID,
			Answers:     r.Answers,
			WeightedSum: r.WeightedSum,
			Expected:    r.Expected.String(),
			Got:         r.Got.String(),
			Pass:        r.Pass,
			Reason:      r.Reason,
		})
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.Encode(report)
}

func printTable(description string, results []replay.CaseResult, summary replay.Summary) {
	if description != "" {
		fmt.Printf("fixture: %s\n\n", description)
	}
	for _, r := range results {
		status := "PASS"
		if !r.Pass {
			status = "FAIL"
		}
		fmt.Printf("[%s] %-20s answers=%v sum=%.2f expected=%s got=%s\n",
			status, r.CaseID, r.Answers, r.WeightedSum, r.Expected, r.Got)
	}
	fmt.Printf("\n%d cases: %d passed, %d failed\n", summary.Total, summary.Passed, summary.Failed)
}

// #endregion output
