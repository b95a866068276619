package qcm

// Finalize validates questions against the given options and derives the
// MultipleAnswers flag from the answer data. It returns a new slice; the
// input is never mutated.
//
// For each question, RequireAtLeastOneCorrect is checked before
// EnforceSingle, so error precedence is deterministic. The first violation
// aborts finalization.
func Finalize(questions []Question, opts Options) ([]Question, error) {
	out := make([]Question, len(questions))

	for i, q := range questions {
		count := q.CorrectCount()

		if opts.RequireAtLeastOneCorrect && count == 0 {
			return nil, NewQuestionError(i+1, q.Title, 0, ErrConstraint)
		}
		if opts.EnforceSingle && count > 1 {
			return nil, NewQuestionError(i+1, q.Title, count, ErrConstraint)
		}

		q.MultipleAnswers = count > 1
		out[i] = q
	}

	return out, nil
}
