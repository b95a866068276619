package qcm

// Options controls the structural constraints applied during finalization.
// The zero value applies no constraints.
type Options struct {
	// EnforceSingle rejects questions with more than one correct answer,
	// turning a QCM into a QCU (single-answer questionnaire).
	EnforceSingle bool `json:"enforce_single" yaml:"enforce_single" toml:"enforce_single"`

	// RequireAtLeastOneCorrect rejects questions with zero correct answers.
	RequireAtLeastOneCorrect bool `json:"require_at_least_one_correct" yaml:"require_at_least_one_correct" toml:"require_at_least_one_correct"`
}
