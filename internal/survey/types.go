package survey

import "fmt"

// #region question
// Question is one of the five fixed prompts, identified by its 1-based position.
type Question struct {
	ID   int
	Text string
}

// #endregion question

// #region parse-error
// ParseError reports a response that could not be read as an integer answer.
type ParseError struct {
	QuestionID int
	Raw        string
}

func (e *ParseError) Error() string {
	if e.Raw == "" {
		return fmt.Sprintf("question %d: no answer provided", e.QuestionID)
	}
	return fmt.Sprintf("question %d: answer %q is not an integer", e.QuestionID, e.Raw)
}

// #endregion parse-error
