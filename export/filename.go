package export

import (
	"regexp"
	"strings"
)

// DefaultBasename is used when a questionnaire has no usable title.
const DefaultBasename = "qcm"

// filesystemUnsafe strips characters that are unsafe in filenames across
// common filesystems.
var filesystemUnsafe = strings.NewReplacer(
	"/", "", "\\", "", "?", "", "%", "", "*", "",
	":", "", "|", "", `"`, "", "<", "", ">", "",
)

// whitespaceRuns collapses runs of whitespace for filename derivation.
var whitespaceRuns = regexp.MustCompile(`\s+`)

// Filename derives a safe filename from a questionnaire title.
// The title is trimmed, unsafe characters are stripped, whitespace runs
// become underscores, and the extension (e.g. ".md") is appended.
// An empty or fully-stripped title falls back to DefaultBasename.
func Filename(title, ext string) string {
	name := filesystemUnsafe.Replace(strings.TrimSpace(title))
	name = whitespaceRuns.ReplaceAllString(strings.TrimSpace(name), "_")
	if name == "" {
		name = DefaultBasename
	}
	return name + ext
}
