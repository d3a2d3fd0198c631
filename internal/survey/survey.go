package survey

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// #region questions

var questions = []Question{
	{1, "Is this decision aligned with my long-term goals and values?"},
	{2, "Have I considered the possible positive and negative outcomes of this decision?"},
	{3, "Am I feeling emotionally calm and clear-headed about this decision?"},
	{4, "Is this decision reversible or flexible, or is it a one-time decision?"},
	{5, "Have I allowed myself enough time to think through this decision carefully?"},
}

// Questions returns the five fixed questions in prompt order.
func Questions() []Question {
	return questions
}

// #endregion questions

// #region parse

// ParseAnswer converts one raw response line into an integer answer.
// Returns a *ParseError when the line is empty or not an integer.
// Integers outside {0,1,2} are accepted; the evaluator takes them as-is.
func ParseAnswer(questionID int, raw string) (int, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, &ParseError{QuestionID: questionID, Raw: raw}
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, &ParseError{QuestionID: questionID, Raw: raw}
	}
	return n, nil
}

// #endregion parse

// #region runner

// Runner prompts the five questions on Out and reads one answer per line
// from In, in fixed order.
type Runner struct {
	In  io.Reader
	Out io.Writer
}

// Collect asks all five questions and returns the answers in order.
// Stops at the first unparseable answer or at end of input, returning a
// *ParseError without evaluating anything.
func (r *Runner) Collect() ([5]int, error) {
	var answers [5]int
	scanner := bufio.NewScanner(r.In)

	for i, q := range Questions() {
		fmt.Fprintf(r.Out, "Question %d: %s (0 for NO, 1 for Confused, 2 for YES): ", q.ID, q.Text)

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return answers, fmt.Errorf("read answer %d: %w", q.ID, err)
			}
			return answers, &ParseError{QuestionID: q.ID, Raw: ""}
		}

		n, err := ParseAnswer(q.ID, scanner.Text())
		if err != nil {
			return answers, err
		}
		answers[i] = n
	}

	return answers, nil
}

// #endregion runner
