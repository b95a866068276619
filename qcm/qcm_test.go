package qcm

import (
	"errors"
	"strings"
	"testing"
)

func TestQuestion_CorrectCount(t *testing.T) {
	q := Question{
		Answers: []Answer{
			{Text: "a", Correct: true},
			{Text: "b"},
			{Text: "c", Correct: true},
		},
	}

	if got := q.CorrectCount(); got != 2 {
		t.Errorf("CorrectCount() = %d, want 2", got)
	}
}

func TestQuestionnaire_TotalScore(t *testing.T) {
	qn := &Questionnaire{
		Questions: []Question{
			{Score: 2},
			{Score: 1},
			{Score: 5},
		},
	}

	if got := qn.TotalScore(); got != 8 {
		t.Errorf("TotalScore() = %d, want 8", got)
	}
}

func TestQuestionnaire_Clone(t *testing.T) {
	original := &Questionnaire{
		Title: "Sample",
		Questions: []Question{
			{Title: "Q1", Score: 1, Answers: []Answer{{Text: "a", Correct: true}}},
		},
	}

	clone := original.Clone()
	clone.Questions[0].Answers[0].Text = "changed"
	clone.Questions[0].Title = "changed"

	if original.Questions[0].Answers[0].Text != "a" {
		t.Error("clone shares answer storage with original")
	}
	if original.Questions[0].Title != "Q1" {
		t.Error("clone shares question storage with original")
	}
}

func TestQuestionnaire_Clone_Nil(t *testing.T) {
	var qn *Questionnaire
	if qn.Clone() != nil {
		t.Error("Clone of nil should be nil")
	}
}

// =============================================================================
// Error Taxonomy Tests
// =============================================================================

func TestLineError(t *testing.T) {
	err := NewLineError(3, "* bullet", ErrSyntax)

	if !errors.Is(err, ErrSyntax) {
		t.Error("LineError should unwrap to ErrSyntax")
	}
	if !strings.Contains(err.Error(), "line 3") {
		t.Errorf("message %q should name the line", err.Error())
	}
	if !strings.Contains(err.Error(), "* bullet") {
		t.Errorf("message %q should carry the raw line", err.Error())
	}
}

func TestQuestionError(t *testing.T) {
	err := NewQuestionError(2, "Pick one", 3, ErrConstraint)

	if !errors.Is(err, ErrConstraint) {
		t.Error("QuestionError should unwrap to ErrConstraint")
	}
	msg := err.Error()
	if !strings.Contains(msg, "question 2") || !strings.Contains(msg, "Pick one") {
		t.Errorf("message %q should name position and title", msg)
	}
	if !strings.Contains(msg, "3 correct answers") {
		t.Errorf("message %q should report the count", msg)
	}
}

func TestRecordError(t *testing.T) {
	itemErr := NewRecordError(4, 0, "title must be a string")
	if !errors.Is(itemErr, ErrMalformedRecord) {
		t.Error("RecordError should unwrap to ErrMalformedRecord")
	}
	if !strings.Contains(itemErr.Error(), "item 4") {
		t.Errorf("message %q should name the item", itemErr.Error())
	}

	answerErr := NewRecordError(2, 3, "correct must be a boolean or null")
	msg := answerErr.Error()
	if !strings.Contains(msg, "item 2") || !strings.Contains(msg, "answer 3") {
		t.Errorf("message %q should name item and answer", msg)
	}
}

func TestIsPositional(t *testing.T) {
	if !IsPositional(NewLineError(1, "x", ErrSyntax)) {
		t.Error("line errors are positional")
	}
	if IsPositional(NewQuestionError(1, "t", 0, ErrEmptyAnswers)) {
		t.Error("question errors carry no line number")
	}
}
