package pathutil

import (
	"regexp"
	"strings"
)

type regexpMatcher struct {
	re *regexp.Regexp
}

func (m *regexpMatcher) MatchString(s string) bool { return m.re.MatchString(s) }

// compileGlob converts a find-style glob ('*' -> any run, '?' -> any
// single rune) into an unanchored regexp, escaping every other
// character so the pattern has no other special meaning.
func compileGlob(pattern string) (*regexpMatcher, error) {
	quoted := regexp.QuoteMeta(pattern)
	quoted = strings.ReplaceAll(quoted, `\*`, `.*`)
	quoted = strings.ReplaceAll(quoted, `\?`, `.`)

	re, err := regexp.Compile(quoted)
	if err != nil {
		return nil, err
	}
	return &regexpMatcher{re: re}, nil
}
