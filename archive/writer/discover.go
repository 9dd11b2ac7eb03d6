package writer

import (
	"github.com/sabouaram/przm/archive/pathutil"
	liberr "github.com/sabouaram/przm/errors"
)

type job struct {
	file        string
	archivePath string
}

// discover walks inputs, drops excluded files, computes each survivor's
// archive path and rejects duplicate archive paths up front -- both
// against each other and against already, which carries the archive's
// existing entries when appending.
func discover(inputs []string, exclude []string, fullPath bool, already map[string]struct{}, ignoreErrors bool) ([]job, []string, liberr.Error) {
	files, werr := pathutil.Walk(inputs)
	if werr != nil {
		return nil, nil, ErrorPathNotFound.ErrorParent(werr)
	}

	var jobs []job
	var warnings []string
	seen := map[string]struct{}{}

	for _, f := range files {
		excluded, eerr := pathutil.Excluded(f, exclude)
		if eerr != nil {
			return nil, nil, eerr
		}
		if excluded {
			continue
		}

		ap := pathutil.ArchivePath(f, inputs, fullPath)

		if _, dup := already[ap]; dup {
			if ignoreErrors {
				warnings = append(warnings, "skipped duplicate path: "+ap)
				continue
			}
			return nil, nil, ErrorDuplicatePath.Error()
		}
		if _, dup := seen[ap]; dup {
			if ignoreErrors {
				warnings = append(warnings, "skipped duplicate path: "+ap)
				continue
			}
			return nil, nil, ErrorDuplicatePath.Error()
		}

		seen[ap] = struct{}{}
		jobs = append(jobs, job{file: f, archivePath: ap})
	}

	return jobs, warnings, nil
}
