// Package markdown converts between the QCM Markdown dialect and the
// qcm data model.
//
// The dialect is a strict line grammar:
//
//	# Title: General knowledge
//
//	## Q: What is 2+2? [2]
//	- [x] 4
//	- [ ] 5
//
//	<!-- comments and blank lines are ignored -->
//
// Core entry points:
//   - Parse: Markdown text -> *qcm.Questionnaire, fail-fast with 1-based
//     line-numbered errors
//   - ParseRecords: already-decoded JSON records -> *qcm.Questionnaire,
//     with the same normalization and validation guarantees
//   - Serialize: *qcm.Questionnaire -> canonical Markdown text
//
// Parsing is strict: any line that is not a title, question header, answer,
// comment, or blank line aborts with qcm.ErrSyntax. Serialize is total on a
// well-formed questionnaire and never mutates its input, and its output
// always re-parses to an equivalent questionnaire.
package markdown
