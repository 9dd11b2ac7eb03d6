/*
 *  MIT License
 *
 *  Copyright (c) 2020 Nicolas JUHEL
 *
 *  Permission is hereby granted, free of charge, to any person obtaining a copy
 *  of this software and associated documentation files (the "Software"), to deal
 *  in the Software without restriction, including without limitation the rights
 *  to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 *  copies of the Software, and to permit persons to whom the Software is
 *  furnished to do so, subject to the following conditions:
 *
 *  The above copyright notice and this permission notice shall be included in all
 *  copies or substantial portions of the Software.
 *
 *  THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 *  IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 *  FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 *  AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 *  LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 *  OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 *  SOFTWARE.
 *
 */

// Package pathutil holds the writer's traversal helpers: recursive walk,
// glob/literal exclusion and archive-path rebasing. None of it is
// specific to the container format; it's kept separate so the writer's
// orchestration logic isn't tangled with filesystem bookkeeping.
package pathutil

import (
	"os"
	"path/filepath"
	"strings"

	liberr "github.com/sabouaram/przm/errors"
)

// Walk expands roots into the flat list of regular files to archive. A
// root that is itself a regular file contributes one entry; a root that
// is a directory contributes every regular file beneath it. Order
// follows filepath.WalkDir's lexical-per-directory traversal; callers
// must not rely on global alphabetical order across roots.
func Walk(roots []string) ([]string, liberr.Error) {
	var out []string

	for _, root := range roots {
		info, err := os.Lstat(root)
		if err != nil {
			return nil, ErrorWalkFailed.ErrorParent(err)
		}

		if !info.IsDir() {
			out = append(out, root)
			continue
		}

		werr := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if d.Type()&os.ModeSymlink != 0 {
				return nil
			}
			out = append(out, path)
			return nil
		})
		if werr != nil {
			return nil, ErrorWalkFailed.ErrorParent(werr)
		}
	}

	return out, nil
}

// globToRegexp turns a find-style pattern ('*' any run, '?' any one
// rune) into a regexp matched unanchored against the candidate path --
// "anchored at find", per the traversal rule, rather than a full match.
func globToRegexp(pattern string) (*regexpMatcher, error) {
	return compileGlob(pattern)
}

// Excluded reports whether path should be skipped given glob patterns
// (containing '*' or '?') and literal path-prefix patterns.
func Excluded(path string, patterns []string) (bool, liberr.Error) {
	for _, p := range patterns {
		if p == "" {
			continue
		}

		if strings.ContainsAny(p, "*?") {
			m, err := globToRegexp(p)
			if err != nil {
				return false, ErrorInvalidPattern.ErrorParent(err)
			}
			if m.MatchString(path) {
				return true, nil
			}
			continue
		}

		if strings.HasPrefix(path, p) {
			return true, nil
		}
	}
	return false, nil
}

// ArchivePath computes the path stored in the container for file among
// inputs. When fullPath is set the absolute path is stored verbatim.
// Otherwise it finds the longest entry in inputs that is a path-prefix
// of file and rebases against that entry's parent directory; if no
// input qualifies, file's own parent is used as the base.
func ArchivePath(file string, inputs []string, fullPath bool) string {
	abs := file
	if a, err := filepath.Abs(file); err == nil {
		abs = a
	}

	if fullPath {
		return filepath.ToSlash(abs)
	}

	base := filepath.Dir(abs)
	bestLen := -1

	for _, in := range inputs {
		absIn := in
		if a, err := filepath.Abs(in); err == nil {
			absIn = a
		}

		if !isPathPrefix(abs, absIn) {
			continue
		}
		if len(absIn) > bestLen {
			bestLen = len(absIn)
			base = filepath.Dir(absIn)
		}
	}

	rel, err := filepath.Rel(base, abs)
	if err != nil {
		return filepath.ToSlash(abs)
	}
	return filepath.ToSlash(rel)
}

// isPathPrefix reports whether prefix is prefix itself or an ancestor
// directory of path, respecting path separators.
func isPathPrefix(path, prefix string) bool {
	if path == prefix {
		return true
	}
	return strings.HasPrefix(path, prefix+string(filepath.Separator))
}

var compressedExtensions = map[string]struct{}{
	".zip": {}, ".rar": {}, ".7z": {}, ".tar.gz": {}, ".tgz": {},
	".tar.bz2": {}, ".tbz2": {}, ".tar.xz": {}, ".txz": {},
	".gz": {}, ".bz2": {}, ".xz": {}, ".lz4": {}, ".zst": {},
	".jpg": {}, ".jpeg": {}, ".png": {}, ".gif": {}, ".webp": {},
	".bmp": {}, ".tiff": {}, ".ico": {},
	".mp3": {}, ".aac": {}, ".ogg": {}, ".flac": {}, ".m4a": {}, ".wma": {},
	".mp4": {}, ".avi": {}, ".mkv": {}, ".mov": {}, ".wmv": {}, ".flv": {}, ".webm": {}, ".m4v": {},
	".pdf": {}, ".doc": {}, ".docx": {}, ".xls": {}, ".xlsx": {}, ".ppt": {}, ".pptx": {},
}

// AlreadyCompressed reports whether path's extension is on the fixed
// already-compressed list, case-insensitive. The writer downgrades such
// entries to the "none" codec regardless of the requested codec.
func AlreadyCompressed(path string) bool {
	lower := strings.ToLower(path)

	for ext := range compressedExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
