package quiz

import (
	"regexp"
	"strings"
)

// Option is a single answer option, keyed by its display letter.
type Option struct {
	Key  string
	Text string
}

// Question is one structured single-choice quiz question generated from a
// stored chunk.
type Question struct {
	Text          string
	Options       []Option // ordered: A, B, C
	CorrectAnswer string   // verbatim correct-answer line, e.g. "A" or "A (see page 3)"
	Explanation   string   // optional
}

// questionPattern matches the exact output template the generator is
// instructed to follow: a question line, three option lines and a correct
// answer line, nothing else.
var questionPattern = regexp.MustCompile(
	`(?s)Question:\s*(.*?)\nA\)\s*(.*?)\nB\)\s*(.*?)\nC\)\s*(.*?)\nCorrect answer:\s*(\S.*?)\s*$`,
)

// ParseQuestion matches a raw model response against the question template.
// A response that deviates from the template in any way yields (zero, false):
// partially filled questions are never returned. Callers drop unparseable
// responses silently; a probabilistic generator occasionally ignores the
// format instructions and losing that chunk's question is the accepted cost.
func ParseQuestion(raw string) (Question, bool) {
	match := questionPattern.FindStringSubmatch(strings.TrimSpace(raw))
	if match == nil {
		return Question{}, false
	}

	return Question{
		Text: strings.TrimSpace(match[1]),
		Options: []Option{
			{Key: "A", Text: strings.TrimSpace(match[2])},
			{Key: "B", Text: strings.TrimSpace(match[3])},
			{Key: "C", Text: strings.TrimSpace(match[4])},
		},
		CorrectAnswer: strings.TrimSpace(match[5]),
	}, true
}
