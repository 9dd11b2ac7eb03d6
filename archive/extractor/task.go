package extractor

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sabouaram/przm/archive/compress"
	"github.com/sabouaram/przm/archive/container"
	"github.com/sabouaram/przm/archive/digest"
	"github.com/sabouaram/przm/archive/fsinfo"
	liberr "github.com/sabouaram/przm/errors"
)

type taskResult struct {
	extracted  int64
	skipped    int64
	bytes      int64
	checked    int64
	mismatches int64
	warnings   []string
}

// extractLone is one per-lone-entry task: it opens its own read-only
// handle on the archive to avoid sharing a seek cursor with concurrent
// tasks.
func extractLone(archivePath, outputRoot string, e container.Entry, opts Options) (taskResult, liberr.Error) {
	out := filepath.Join(outputRoot, filepath.FromSlash(e.Path))

	if opts.NoOverwrite {
		if _, err := os.Stat(out); err == nil {
			return taskResult{skipped: 1}, nil
		}
	}

	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return taskResult{}, ErrorIoFailure.ErrorParent(err)
	}

	f, err := os.Open(archivePath)
	if err != nil {
		return taskResult{}, ErrorIoFailure.ErrorParent(err)
	}
	defer func() { _ = f.Close() }()

	if _, serr := f.Seek(e.DataOffset, io.SeekStart); serr != nil {
		return taskResult{}, ErrorIoFailure.ErrorParent(serr)
	}

	compressed := make([]byte, e.CompressedSize)
	if _, rerr := readFull(f, compressed); rerr != nil {
		return taskResult{}, ErrorIoFailure.ErrorParent(rerr)
	}

	data, derr := compress.Algorithm(e.CodecID).DecompressBytes(compressed, int(e.UncompressedSize))
	if derr != nil {
		return taskResult{}, ErrorDecompressionFailed.ErrorParent(derr)
	}
	if uint64(len(data)) != e.UncompressedSize {
		return taskResult{}, ErrorSizeMismatch.Error()
	}

	res, werr := writeMember(out, e, data, opts)
	if werr != nil {
		return taskResult{}, werr
	}

	return res, nil
}

// extractSolidBlock is one per-solid-block task: it decompresses the
// shared payload once, then iterates members sequentially against the
// decompressed buffer.
func extractSolidBlock(archivePath, outputRoot string, members []container.Entry, opts Options) (taskResult, liberr.Error) {
	if len(members) == 0 {
		return taskResult{}, nil
	}
	block := members[0]

	f, err := os.Open(archivePath)
	if err != nil {
		return taskResult{}, ErrorIoFailure.ErrorParent(err)
	}
	defer func() { _ = f.Close() }()

	if _, serr := f.Seek(block.HeaderOffset, io.SeekStart); serr != nil {
		return taskResult{}, ErrorIoFailure.ErrorParent(serr)
	}

	compressed := make([]byte, block.CompressedSize)
	if _, rerr := readFull(f, compressed); rerr != nil {
		return taskResult{}, ErrorIoFailure.ErrorParent(rerr)
	}

	decompressed, derr := compress.Algorithm(block.CodecID).DecompressBytes(compressed, 0)
	if derr != nil {
		return taskResult{}, ErrorDecompressionFailed.ErrorParent(derr)
	}

	var total taskResult
	for _, m := range members {
		end := m.DataOffset + int64(m.UncompressedSize)
		if end > int64(len(decompressed)) || m.DataOffset < 0 {
			return taskResult{}, ErrorSizeMismatch.Error()
		}
		data := decompressed[m.DataOffset:end]

		out := filepath.Join(outputRoot, filepath.FromSlash(m.Path))
		if opts.NoOverwrite {
			if _, serr := os.Stat(out); serr == nil {
				total.skipped++
				continue
			}
		}
		if mkerr := os.MkdirAll(filepath.Dir(out), 0o755); mkerr != nil {
			return taskResult{}, ErrorIoFailure.ErrorParent(mkerr)
		}

		res, werr := writeMember(out, m, data, opts)
		if werr != nil {
			return taskResult{}, werr
		}
		total.extracted += res.extracted
		total.skipped += res.skipped
		total.bytes += res.bytes
		total.checked += res.checked
		total.mismatches += res.mismatches
		total.warnings = append(total.warnings, res.warnings...)
	}

	return total, nil
}

// writeMember writes data to out, restores properties and re-verifies
// the digest, matching the per-lone-entry algorithm the solid-block
// task also runs for each of its members.
func writeMember(out string, e container.Entry, data []byte, opts Options) (taskResult, liberr.Error) {
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return taskResult{}, ErrorIoFailure.ErrorParent(err)
	}

	res := taskResult{extracted: 1, bytes: int64(len(data))}

	if !opts.NoPreserveProps {
		st := fsinfo.Stat{
			ModTime:     unixToTime(e.ModificationTime),
			Permissions: e.Permissions,
			UID:         e.UID,
			GID:         e.GID,
		}
		if chmodErr, chownErr, timeErr := fsinfo.Apply(out, st); chmodErr != nil || chownErr != nil || timeErr != nil {
			res.warnings = append(res.warnings, "failed to fully restore properties on "+out)
		}
	}

	if e.DigestID != uint8(digest.None) && !opts.NoVerify {
		sum, derr := digest.Algorithm(e.DigestID).Compute(data)
		if derr == nil {
			res.checked = 1
			if sum != e.DigestHex {
				res.mismatches = 1
			}
		}
	}

	return res, nil
}
