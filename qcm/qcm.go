package qcm

// DefaultScore is the point value of a question with no explicit score.
const DefaultScore = 1

// Questionnaire is an ordered multiple-choice questionnaire.
// Question order is presentation order and is significant.
type Questionnaire struct {
	// Title is the optional questionnaire title. Empty means untitled.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Questions holds the questions in presentation order.
	Questions []Question `json:"questions" yaml:"questions"`
}

// Question is a single multiple-choice question.
type Question struct {
	// Title is the question text, non-empty after trimming.
	Title string `json:"title" yaml:"title"`

	// Score is the point value, defaulting to DefaultScore.
	Score int `json:"score" yaml:"score"`

	// MultipleAnswers reports whether more than one answer is correct.
	// It is derived by Finalize and never author-supplied.
	MultipleAnswers bool `json:"multipleAnswers" yaml:"multipleAnswers"`

	// Answers holds the answers in presentation order. At least one entry.
	Answers []Answer `json:"answers" yaml:"answers"`
}

// Answer is a single answer option.
type Answer struct {
	// Text is the answer text, non-empty after trimming.
	Text string `json:"text" yaml:"text"`

	// Correct reports whether this answer is correct.
	Correct bool `json:"correct" yaml:"correct"`
}

// CorrectCount returns the number of correct answers in the question.
func (q Question) CorrectCount() int {
	count := 0
	for _, a := range q.Answers {
		if a.Correct {
			count++
		}
	}
	return count
}

// TotalScore returns the sum of all question scores.
func (qn *Questionnaire) TotalScore() int {
	total := 0
	for _, q := range qn.Questions {
		total += q.Score
	}
	return total
}

// Clone returns a deep copy of the questionnaire.
func (qn *Questionnaire) Clone() *Questionnaire {
	if qn == nil {
		return nil
	}

	clone := &Questionnaire{
		Title:     qn.Title,
		Questions: make([]Question, len(qn.Questions)),
	}
	for i, q := range qn.Questions {
		cq := q
		cq.Answers = make([]Answer, len(q.Answers))
		copy(cq.Answers, q.Answers)
		clone.Questions[i] = cq
	}

	return clone
}
