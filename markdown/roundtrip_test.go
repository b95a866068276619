package markdown

import (
	"reflect"
	"testing"

	"github.com/quizmd/qcmkit/qcm"
)

// TestRoundtrip verifies that parsing the serializer's output reproduces
// an equivalent questionnaire: same title, question order, answer order,
// text, correctness, and scores, with MultipleAnswers re-derived.
func TestRoundtrip(t *testing.T) {
	original := &qcm.Questionnaire{
		Title: "General knowledge",
		Questions: []qcm.Question{
			{
				Title: "Capital of France?",
				Score: 1,
				Answers: []qcm.Answer{
					{Text: "Paris", Correct: true},
					{Text: "Lyon", Correct: false},
					{Text: "Marseille", Correct: false},
				},
			},
			{
				Title:           "Prime numbers below 5?",
				Score:           3,
				MultipleAnswers: true,
				Answers: []qcm.Answer{
					{Text: "2", Correct: true},
					{Text: "3", Correct: true},
					{Text: "4", Correct: false},
				},
			},
			{
				Title: "Unanswerable?",
				Score: 2,
				Answers: []qcm.Answer{
					{Text: "maybe", Correct: false},
					{Text: "perhaps", Correct: false},
				},
			},
		},
	}

	parsed, err := Parse(Serialize(original), qcm.Options{})
	if err != nil {
		t.Fatalf("Parse(Serialize()) error = %v", err)
	}

	if !reflect.DeepEqual(parsed, original) {
		t.Errorf("round trip changed the questionnaire.\noriginal: %+v\nparsed:   %+v", original, parsed)
	}
}

// TestRoundtrip_Untitled covers the no-title path.
func TestRoundtrip_Untitled(t *testing.T) {
	original := &qcm.Questionnaire{
		Questions: []qcm.Question{
			{Title: "Q", Score: 1, Answers: []qcm.Answer{{Text: "a", Correct: true}}},
		},
	}

	parsed, err := Parse(Serialize(original), qcm.Options{})
	if err != nil {
		t.Fatalf("Parse(Serialize()) error = %v", err)
	}
	if !reflect.DeepEqual(parsed, original) {
		t.Errorf("round trip changed the questionnaire: %+v", parsed)
	}
}

// TestRoundtrip_Idempotent verifies serialize(parse(serialize(q))) equals
// serialize(q): the text form is a fixed point after one pass.
func TestRoundtrip_Idempotent(t *testing.T) {
	original := &qcm.Questionnaire{
		Title: "  Padded title  ",
		Questions: []qcm.Question{
			{
				Title: "  Spaced?  ",
				Score: 2,
				Answers: []qcm.Answer{
					{Text: "  yes  ", Correct: true},
					{Text: "no", Correct: false},
				},
			},
		},
	}

	first := Serialize(original)
	parsed, err := Parse(first, qcm.Options{})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	second := Serialize(parsed)

	if first != second {
		t.Errorf("serialization is not idempotent.\nfirst:  %q\nsecond: %q", first, second)
	}
}
