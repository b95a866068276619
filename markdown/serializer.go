package markdown

import (
	"fmt"
	"strings"

	"github.com/quizmd/qcmkit/qcm"
)

// Serialize renders a questionnaire as canonical QCM Markdown.
//
// The output is deterministic: an optional title line, then one block per
// question with the score always written (even the default), answers in
// order, and a single trailing newline. The input is never mutated, and
// parsing the output reproduces an equivalent questionnaire.
func Serialize(qn *qcm.Questionnaire) string {
	var lines []string

	if title := strings.TrimSpace(qn.Title); title != "" {
		lines = append(lines, "# Title: "+title, "")
	}

	for _, q := range qn.Questions {
		score := q.Score
		if score < 1 {
			score = qcm.DefaultScore
		}
		lines = append(lines, fmt.Sprintf("## Q: %s [%d]", strings.TrimSpace(q.Title), score))

		for _, a := range q.Answers {
			box := " "
			if a.Correct {
				box = "x"
			}
			lines = append(lines, fmt.Sprintf("- [%s] %s", box, strings.TrimSpace(a.Text)))
		}

		lines = append(lines, "")
	}

	out := strings.TrimRight(strings.Join(lines, "\n"), " \t\n")
	return out + "\n"
}
