package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/quietloop/decide/internal/config"
	"github.com/quietloop/decide/internal/evaluator"
	"github.com/quietloop/decide/internal/history"
	"github.com/quietloop/decide/internal/logging"
	"github.com/quietloop/decide/internal/neuron"
	"github.com/quietloop/decide/internal/quantum"
	"github.com/quietloop/decide/internal/survey"
)

// #region main
func main() {
	configPath := flag.String("config", envOr("DECIDE_CONFIG", ""), "path to YAML config overriding weights and thresholds")
	dbPath := flag.String("db", envOr("DECIDE_DB", "decide_history.db"), "path to the session history database")
	noSave := flag.Bool("no-save", false, "skip recording the session")
	flavor := flag.Bool("flavor", false, "print the neuron/quantum demo after the verdict")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	runner := &survey.Runner{In: os.Stdin, Out: os.Stdout}
	answers, err := runner.Collect()
	if err != nil {
		var perr *survey.ParseError
		if errors.As(err, &perr) {
			fmt.Fprintf(os.Stderr, "input error: %v\n", perr)
		} else {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}

	result := evaluator.Evaluate(answers, cfg.Weights, cfg.Thresholds)
	for _, line := range result.Decision.Verdict() {
		fmt.Println(line)
	}

	if !*noSave {
		if err := recordSession(*dbPath, answers, result); err != nil {
			log.Printf("failed to record session: %v", err)
		}
	}

	if *flavor {
		printFlavor(answers, cfg.Neuron)
	}
}

// #endregion main

// #region record
// recordSession persists the run and appends a decision_log entry.
// Persistence failures never change the verdict already printed.
func recordSession(dbPath string, answers [5]int, result evaluator.Result) error {
	store, err := history.NewStore(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	rec := history.SessionRecord{
		SessionID:   uuid.New().String(),
		Answers:     answers,
		WeightedSum: result.WeightedSum,
		Decision:    result.Decision.String(),
		CreatedAt:   time.Now().UTC(),
	}
	if err := store.SaveSession(rec); err != nil {
		return err
	}

	answersJSON, _ := json.Marshal(answers)
	return logging.LogDecision(store.DB(), logging.Entry{
		SessionID:   rec.SessionID,
		TriggerType: "questionnaire",
		AnswersJSON: string(answersJSON),
		Decision:    rec.Decision,
		Reason:      result.Reason,
		CreatedAt:   rec.CreatedAt,
	})
}

// #endregion record

// #region flavor
// printFlavor runs the decorative LIF gate and quantum functions on the
// collected answers. None of this feeds the verdict above.
func printFlavor(answers [5]int, cfg neuron.Config) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	fmt.Println()
	fmt.Println("--- flavor (illustrative only, does not affect the verdict) ---")

	calm := answers[2] == 2
	reflected := answers[4] == 2
	fmt.Printf("LIF AND(calm, reflected)  = %v\n", neuron.AND(calm, reflected, cfg))
	fmt.Printf("LIF OR(calm, reflected)   = %v\n", neuron.OR(calm, reflected, cfg))
	fmt.Printf("LIF NAND(calm, reflected) = %v\n", neuron.NAND(calm, reflected, cfg))

	labels := []string{"yes", "confused", "no"}
	for i, a := range answers {
		collapsed := quantum.Hadamard(rng, a)
		fmt.Printf("Hadamard(q%d=%d) collapsed to %s\n", i+1, a, labels[collapsed])
	}
	fmt.Printf("CNOT(1, 0) = %d, CNOT(0, 1) = %d\n", quantum.CNOT(1, 0), quantum.CNOT(0, 1))
}

// #endregion flavor

// #region helpers
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
