package markdown

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/quizmd/qcmkit/qcm"
)

// ParseRecords converts already-decoded question records into a
// questionnaire, applying the same normalization and validation as Parse.
//
// Each item must carry a "title" string and an "answers" array; each answer
// must carry a "text" string and an optional boolean "correct" (absent or
// null means false). Shape violations abort with a qcm.RecordError naming
// the 1-based item index (and answer index where applicable). Trailing
// bracketed scores in titles are extracted exactly as on the text path.
//
// This path exists for callers that already hold structured data, such as
// a different editor's output, and want the same guarantees without
// re-serializing to Markdown first.
func ParseRecords(items []map[string]any, opts qcm.Options) (*qcm.Questionnaire, error) {
	parser := NewParser()
	questions := make([]qcm.Question, 0, len(items))

	for i, item := range items {
		q, err := recordQuestion(parser, i+1, item)
		if err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}

	for i, q := range questions {
		if len(q.Answers) == 0 {
			return nil, qcm.NewQuestionError(i+1, q.Title, 0, qcm.ErrEmptyAnswers)
		}
	}

	finalized, err := qcm.Finalize(questions, opts)
	if err != nil {
		return nil, err
	}

	return &qcm.Questionnaire{Questions: finalized}, nil
}

// ParseRecordsJSON decodes a JSON array of question records and runs it
// through ParseRecords.
func ParseRecordsJSON(data []byte, opts qcm.Options) (*qcm.Questionnaire, error) {
	var items []map[string]any
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode question records: %w", err)
	}
	return ParseRecords(items, opts)
}

// recordQuestion validates one raw record and converts it to a Question.
func recordQuestion(parser *Parser, index int, item map[string]any) (qcm.Question, error) {
	rawTitle, ok := item["title"].(string)
	if !ok {
		return qcm.Question{}, qcm.NewRecordError(index, 0, "title must be a string")
	}

	title, score := parser.splitScore(rawTitle)
	if title == "" {
		return qcm.Question{}, qcm.NewRecordError(index, 0, "title must be non-empty")
	}

	rawAnswers, ok := item["answers"].([]any)
	if !ok {
		return qcm.Question{}, qcm.NewRecordError(index, 0, "answers must be an array")
	}

	answers := make([]qcm.Answer, 0, len(rawAnswers))
	for j, raw := range rawAnswers {
		a, err := recordAnswer(index, j+1, raw)
		if err != nil {
			return qcm.Question{}, err
		}
		answers = append(answers, a)
	}

	return qcm.Question{Title: title, Score: score, Answers: answers}, nil
}

// recordAnswer validates one raw answer entry.
func recordAnswer(item, index int, raw any) (qcm.Answer, error) {
	entry, ok := raw.(map[string]any)
	if !ok {
		return qcm.Answer{}, qcm.NewRecordError(item, index, "answer must be an object")
	}

	text, ok := entry["text"].(string)
	if !ok {
		return qcm.Answer{}, qcm.NewRecordError(item, index, "text must be a string")
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return qcm.Answer{}, qcm.NewRecordError(item, index, "text must be non-empty")
	}

	correct := false
	if v, present := entry["correct"]; present && v != nil {
		b, ok := v.(bool)
		if !ok {
			return qcm.Answer{}, qcm.NewRecordError(item, index, "correct must be a boolean or null")
		}
		correct = b
	}

	return qcm.Answer{Text: text, Correct: correct}, nil
}
