package qcm

import (
	"errors"
	"fmt"
)

// Sentinel errors for questionnaire processing. Every failure returned by
// the parser, the structured ingestion path, or the finalizer unwraps to
// exactly one of these.
var (
	// ErrSyntax indicates a line matched no recognized grammar production.
	ErrSyntax = errors.New("unrecognized syntax")

	// ErrOrdering indicates an answer line appeared before any question.
	ErrOrdering = errors.New("answer without preceding question")

	// ErrEmptyAnswers indicates a question was closed with zero answers.
	ErrEmptyAnswers = errors.New("question has no answers")

	// ErrMalformedRecord indicates a structured record failed its shape check.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrConstraint indicates a finalization constraint was violated.
	ErrConstraint = errors.New("constraint violated")
)

// LineError reports a failure at a specific line of Markdown input.
type LineError struct {
	Line int    // 1-based line number
	Text string // raw offending line
	Err  error  // ErrSyntax or ErrOrdering
}

// Error implements the error interface.
func (e *LineError) Error() string {
	if e.Text != "" {
		return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
	}
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// Unwrap returns the underlying sentinel for errors.Is support.
func (e *LineError) Unwrap() error {
	return e.Err
}

// NewLineError creates a positional line error.
func NewLineError(line int, text string, err error) *LineError {
	return &LineError{Line: line, Text: text, Err: err}
}

// QuestionError reports a failure tied to a specific question.
type QuestionError struct {
	Position int    // 1-based position in the questionnaire
	Title    string // question title
	Count    int    // correct-answer count, set for EnforceSingle violations
	Err      error  // ErrEmptyAnswers or ErrConstraint
}

// Error implements the error interface.
func (e *QuestionError) Error() string {
	if e.Count > 0 {
		return fmt.Sprintf("question %d (%s): %v: %d correct answers", e.Position, e.Title, e.Err, e.Count)
	}
	return fmt.Sprintf("question %d (%s): %v", e.Position, e.Title, e.Err)
}

// Unwrap returns the underlying sentinel for errors.Is support.
func (e *QuestionError) Unwrap() error {
	return e.Err
}

// NewQuestionError creates an error naming a question by position and title.
func NewQuestionError(position int, title string, count int, err error) *QuestionError {
	return &QuestionError{Position: position, Title: title, Count: count, Err: err}
}

// RecordError reports a shape violation on the structured ingestion path.
type RecordError struct {
	Item   int    // 1-based item index
	Answer int    // 1-based answer index, 0 when the item itself is malformed
	Reason string // what the shape check expected
	Err    error  // always ErrMalformedRecord
}

// Error implements the error interface.
func (e *RecordError) Error() string {
	if e.Answer > 0 {
		return fmt.Sprintf("item %d, answer %d: %v: %s", e.Item, e.Answer, e.Err, e.Reason)
	}
	return fmt.Sprintf("item %d: %v: %s", e.Item, e.Err, e.Reason)
}

// Unwrap returns the underlying sentinel for errors.Is support.
func (e *RecordError) Unwrap() error {
	return e.Err
}

// NewRecordError creates an error naming an item (and optionally an answer)
// by 1-based index.
func NewRecordError(item, answer int, reason string) *RecordError {
	return &RecordError{Item: item, Answer: answer, Reason: reason, Err: ErrMalformedRecord}
}

// IsPositional checks whether an error carries a line number.
func IsPositional(err error) bool {
	var lineErr *LineError
	return errors.As(err, &lineErr)
}
