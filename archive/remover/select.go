package remover

import "strings"

// matchesAny mirrors the extractor's allowlist semantics: a pattern ending
// in '/' matches every path under that prefix, otherwise only an exact
// match.
func matchesAny(path string, allowlist []string) bool {
	for _, a := range allowlist {
		if strings.HasSuffix(a, "/") {
			if strings.HasPrefix(path, a) {
				return true
			}
			continue
		}
		if path == a {
			return true
		}
	}
	return false
}
