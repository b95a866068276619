package markdown

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/quizmd/qcmkit/qcm"
)

// Parser converts QCM Markdown text into questionnaires.
type Parser struct {
	// titleRegex matches the global title line (# Title: / # QCM:).
	titleRegex *regexp.Regexp

	// questionRegex matches question headers (## Q: ...).
	questionRegex *regexp.Regexp

	// answerRegex matches answer lines (- [ ] / - [x]).
	answerRegex *regexp.Regexp

	// scoreRegex matches a trailing bracketed score in a question title.
	scoreRegex *regexp.Regexp
}

// NewParser creates a new parser with compiled regexes.
func NewParser() *Parser {
	return &Parser{
		titleRegex:    regexp.MustCompile(`(?i)^#\s*(?:title|qcm):\s*(.*)$`),
		questionRegex: regexp.MustCompile(`^##\s*Q:\s*(.*)$`),
		answerRegex:   regexp.MustCompile(`^-\s*\[([xX ])\]\s*(.*)$`),
		scoreRegex:    regexp.MustCompile(`\[(\d+)\]$`),
	}
}

// Parse converts QCM Markdown text into a questionnaire.
//
// Lines are classified in priority order: global title (first occurrence
// only), question header, answer, blank/comment, anything else. The first
// line that matches nothing aborts parsing with a qcm.LineError carrying
// the 1-based line number and the raw line.
func (p *Parser) Parse(text string, opts qcm.Options) (*qcm.Questionnaire, error) {
	var (
		questions []qcm.Question
		open      *qcm.Question
		title     string
		titleSet  bool
	)

	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		lineno := i + 1

		// Global title, first occurrence only. A second title-like line
		// falls through and fails classification below.
		if m := p.titleRegex.FindStringSubmatch(line); m != nil && !titleSet {
			title = strings.TrimSpace(m[1])
			titleSet = true
			continue
		}

		if m := p.questionRegex.FindStringSubmatch(line); m != nil {
			if open != nil {
				questions = append(questions, *open)
			}
			qTitle, score := p.splitScore(m[1])
			if qTitle == "" {
				return nil, qcm.NewLineError(lineno, raw, qcm.ErrSyntax)
			}
			open = &qcm.Question{Title: qTitle, Score: score}
			continue
		}

		if m := p.answerRegex.FindStringSubmatch(line); m != nil {
			answerText := strings.TrimSpace(m[2])
			if answerText == "" {
				// Answer lines require text; an empty box alone is not
				// a valid production.
				return nil, qcm.NewLineError(lineno, raw, qcm.ErrSyntax)
			}
			if open == nil {
				return nil, qcm.NewLineError(lineno, raw, qcm.ErrOrdering)
			}
			open.Answers = append(open.Answers, qcm.Answer{
				Text:    answerText,
				Correct: m[1] == "x" || m[1] == "X",
			})
			continue
		}

		if line == "" || strings.HasPrefix(line, "<!--") {
			continue
		}

		return nil, qcm.NewLineError(lineno, raw, qcm.ErrSyntax)
	}

	if open != nil {
		questions = append(questions, *open)
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

	return &qcm.Questionnaire{Title: title, Questions: finalized}, nil
}

// splitScore extracts a trailing bracketed score from a question title.
// Returns the trimmed title with the bracket stripped and the score, or
// the title unchanged with the default score when no valid score trails.
// Only values of 1 or more count as scores; "[0]" stays in the title.
func (p *Parser) splitScore(text string) (string, int) {
	text = strings.TrimSpace(text)

	m := p.scoreRegex.FindStringSubmatch(text)
	if m == nil {
		return text, qcm.DefaultScore
	}

	score, err := strconv.Atoi(m[1])
	if err != nil || score < 1 {
		return text, qcm.DefaultScore
	}

	return strings.TrimSpace(strings.TrimSuffix(text, m[0])), score
}

// Parse is a convenience function using the default parser.
func Parse(text string, opts qcm.Options) (*qcm.Questionnaire, error) {
	return NewParser().Parse(text, opts)
}

// ParseFile reads and parses a QCM Markdown file.
// Convenience wrapper; the only file I/O on the parse path.
func ParseFile(path string, opts qcm.Options) (*qcm.Questionnaire, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read quiz file: %w", err)
	}
	return Parse(string(data), opts)
}
