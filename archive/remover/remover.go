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

// Package remover rewrites a PRZM container to omit selected entries.
// Removal is never in-place: a fresh, always non-solid archive is built
// at a temp path and swapped in with an atomic rename. Kept solid
// members are materialized into standalone lone entries, since a member
// can no longer share a block payload with members that were dropped.
package remover

import (
	"io"
	"os"
	"strconv"

	"github.com/google/uuid"

	"github.com/sabouaram/przm/archive/compress"
	"github.com/sabouaram/przm/archive/container"
	"github.com/sabouaram/przm/archive/reader"
	"github.com/sabouaram/przm/logger"

	liberr "github.com/sabouaram/przm/errors"
)

// Remove rewrites archivePath, dropping every entry matched by selection.
func Remove(archivePath string, selection []string, opts Options) (RemovalReport, liberr.Error) {
	report := RemovalReport{}
	log := opts.logger()

	entries, rerr := reader.Scan(archivePath)
	if rerr != nil {
		return report, rerr
	}

	anyMatched := false
	for _, e := range entries {
		if matchesAny(e.Path, selection) {
			anyMatched = true
			break
		}
	}
	if !anyMatched {
		if opts.IgnoreErrors {
			report.Warnings = append(report.Warnings, "no entry matched the removal selection")
			return report, nil
		}
		return report, ErrorNothingToRemove.Error()
	}

	src, err := os.Open(archivePath)
	if err != nil {
		return report, ErrorIoFailure.ErrorParent(err)
	}
	defer func() { _ = src.Close() }()

	tmpPath := archivePath + ".tmp-" + uuid.NewString()
	dst, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return report, ErrorIoFailure.ErrorParent(err)
	}
	defer func() {
		_ = dst.Close()
		_ = os.Remove(tmpPath)
	}()

	if perr := container.WritePrefix(dst, 0); perr != nil {
		return report, perr
	}

	blockCache := map[int64][]byte{}

	for _, e := range entries {
		if matchesAny(e.Path, selection) {
			report.Removed++
			continue
		}
		report.Kept++

		switch e.Kind {
		case container.Lone:
			if werr := copyLone(dst, src, e); werr != nil {
				return report, werr
			}

		case container.SolidMember:
			decompressed, cached := blockCache[e.BlockID]
			if !cached {
				buf, derr := decompressBlock(src, e)
				if derr != nil {
					return report, derr
				}
				blockCache[e.BlockID] = buf
				decompressed = buf
			}

			if werr := materializeMember(dst, decompressed, e); werr != nil {
				return report, werr
			}
		}
	}

	if err := dst.Close(); err != nil {
		return report, ErrorIoFailure.ErrorParent(err)
	}
	if err := src.Close(); err != nil {
		return report, ErrorIoFailure.ErrorParent(err)
	}

	if err := os.Rename(tmpPath, archivePath); err != nil {
		return report, ErrorIoFailure.ErrorParent(err)
	}

	log.Log(logger.InfoLevel, "removed "+strconv.FormatInt(report.Removed, 10)+" entries, kept "+strconv.FormatInt(report.Kept, 10))

	return report, nil
}

// copyLone re-frames a kept lone entry's header and copies its payload
// bytes verbatim from the source archive.
func copyLone(dst io.Writer, src *os.File, e container.Entry) liberr.Error {
	if herr := container.WriteLoneHeader(dst, e); herr != nil {
		return herr
	}

	if _, serr := src.Seek(e.DataOffset, io.SeekStart); serr != nil {
		return ErrorIoFailure.ErrorParent(serr)
	}
	if _, cerr := io.CopyN(dst, src, int64(e.CompressedSize)); cerr != nil {
		return ErrorIoFailure.ErrorParent(cerr)
	}
	return nil
}

// decompressBlock reads and decompresses a solid block's full payload
// once so every kept member of that block can be sliced from it.
func decompressBlock(src *os.File, e container.Entry) ([]byte, liberr.Error) {
	if _, serr := src.Seek(e.HeaderOffset, io.SeekStart); serr != nil {
		return nil, ErrorIoFailure.ErrorParent(serr)
	}

	compressed := make([]byte, e.CompressedSize)
	if _, rerr := io.ReadFull(src, compressed); rerr != nil {
		return nil, ErrorIoFailure.ErrorParent(rerr)
	}

	decompressed, derr := compress.Algorithm(e.CodecID).DecompressBytes(compressed, 0)
	if derr != nil {
		return nil, ErrorDecompressionFailed.ErrorParent(derr)
	}
	return decompressed, nil
}

// materializeMember re-compresses one solid member's slice of the
// decompressed block with its inherited codec/level and writes it as a
// standalone lone entry.
func materializeMember(dst io.Writer, decompressed []byte, e container.Entry) liberr.Error {
	end := e.DataOffset + int64(e.UncompressedSize)
	if end > int64(len(decompressed)) || e.DataOffset < 0 {
		return ErrorDecompressionFailed.Error()
	}
	raw := decompressed[e.DataOffset:end]

	compressed, cerr := compress.Algorithm(e.CodecID).CompressBytes(raw, int(e.Level))
	if cerr != nil {
		return ErrorCompressionFailed.ErrorParent(cerr)
	}

	lone := e
	lone.Kind = container.Lone
	lone.CompressedSize = uint64(len(compressed))
	lone.HeaderOffset = 0
	lone.DataOffset = 0
	lone.BlockID = 0

	if herr := container.WriteLoneHeader(dst, lone); herr != nil {
		return herr
	}
	if _, werr := dst.Write(compressed); werr != nil {
		return ErrorIoFailure.ErrorParent(werr)
	}
	return nil
}
