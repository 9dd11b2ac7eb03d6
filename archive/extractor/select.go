package extractor

import (
	"strings"

	"github.com/sabouaram/przm/archive/container"
)

// selected filters entries against the allowlist: an entry ending in
// '/' selects every member whose path starts with that prefix,
// otherwise it's an exact match. No allowlist selects everything.
func selected(entries []container.Entry, allowlist []string) []container.Entry {
	if len(allowlist) == 0 {
		return entries
	}

	var out []container.Entry
	for _, e := range entries {
		if matchesAny(e.Path, allowlist) {
			out = append(out, e)
		}
	}
	return out
}

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

// plan partitions selected entries into per-lone-entry tasks and
// per-solid-block tasks, the block task owning every selected member
// that shares its BlockID.
func plan(entries []container.Entry) (lone []container.Entry, blocks map[int64][]container.Entry) {
	blocks = make(map[int64][]container.Entry)

	for _, e := range entries {
		if e.Kind == container.Lone {
			lone = append(lone, e)
			continue
		}
		blocks[e.BlockID] = append(blocks[e.BlockID], e)
	}

	return lone, blocks
}
