// Package qcm defines the questionnaire data model shared by the parser
// and serializer, along with parse options and the error taxonomy.
//
// Core types:
//   - Questionnaire: An ordered set of questions with an optional title
//   - Question: Title, score, answers, and the derived MultipleAnswers flag
//   - Answer: Answer text and correctness
//   - Options: Optional structural constraints applied during finalization
//
// The model is deliberately small: a Questionnaire is built wholly by a
// parser (or programmatically by a caller) and is never mutated by the
// serializer. MultipleAnswers is always derived from the answers, never
// trusted from input; Finalize recomputes it.
//
// Example usage:
//
//	questions, err := qcm.Finalize(raw, qcm.Options{EnforceSingle: true})
//	if err != nil {
//	    var qerr *qcm.QuestionError
//	    if errors.As(err, &qerr) {
//	        fmt.Printf("question %d (%s): %v\n", qerr.Position, qerr.Title, err)
//	    }
//	}
package qcm
