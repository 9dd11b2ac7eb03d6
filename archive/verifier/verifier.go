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

// Package verifier re-digests an archive's members without mutating it:
// every entry with a recorded digest is decompressed and recomputed,
// entries written with digest_id = none are skipped and counted once.
package verifier

import (
	"io"
	"os"

	"github.com/sabouaram/przm/archive/compress"
	"github.com/sabouaram/przm/archive/container"
	"github.com/sabouaram/przm/archive/digest"
	"github.com/sabouaram/przm/archive/pool"
	"github.com/sabouaram/przm/archive/reader"

	liberr "github.com/sabouaram/przm/errors"
)

type outcome struct {
	checked    int64
	mismatches int64
	noDigest   int64
	mismatched []string
}

// Verify re-checks every digested entry in archivePath and returns
// pass/mismatch counts. It never modifies the archive.
func Verify(archivePath string, opts Options) (VerificationReport, liberr.Error) {
	report := VerificationReport{}

	entries, rerr := reader.Scan(archivePath)
	if rerr != nil {
		return report, rerr
	}

	var lone []container.Entry
	blocks := map[int64][]container.Entry{}
	for _, e := range entries {
		if e.Kind == container.Lone {
			lone = append(lone, e)
			continue
		}
		blocks[e.BlockID] = append(blocks[e.BlockID], e)
	}

	total := len(lone) + len(blocks)
	p := pool.New(opts.threadCount(), total)

	type work func() (outcome, liberr.Error)
	var works []work

	for _, e := range lone {
		e := e
		works = append(works, func() (outcome, liberr.Error) { return verifyLone(archivePath, e) })
	}
	for _, members := range blocks {
		members := members
		works = append(works, func() (outcome, liberr.Error) { return verifyBlock(archivePath, members) })
	}

	type result struct {
		out outcome
		err liberr.Error
	}

	futures := make([]*pool.Future, 0, len(works))
	for _, w := range works {
		w := w
		f, serr := p.Submit(func() (any, error) {
			out, werr := w()
			return result{out: out, err: werr}, nil
		})
		if serr != nil {
			p.Close()
			p.Join()
			return report, serr
		}
		futures = append(futures, f)
	}

	for _, f := range futures {
		v, _ := f.Get()
		res := v.(result)

		if res.err != nil {
			report.Warnings = append(report.Warnings, res.err.Error())
			continue
		}

		report.Checked += res.out.checked
		report.Mismatches += res.out.mismatches
		report.NoDigest += res.out.noDigest
		report.MismatchedPaths = append(report.MismatchedPaths, res.out.mismatched...)
	}

	p.Close()
	p.Join()

	return report, nil
}

func verifyLone(archivePath string, e container.Entry) (outcome, liberr.Error) {
	if e.DigestID == uint8(digest.None) {
		return outcome{noDigest: 1}, nil
	}

	f, err := os.Open(archivePath)
	if err != nil {
		return outcome{}, ErrorIoFailure.ErrorParent(err)
	}
	defer func() { _ = f.Close() }()

	if _, serr := f.Seek(e.DataOffset, io.SeekStart); serr != nil {
		return outcome{}, ErrorIoFailure.ErrorParent(serr)
	}

	compressed := make([]byte, e.CompressedSize)
	if _, rerr := io.ReadFull(f, compressed); rerr != nil {
		return outcome{}, ErrorIoFailure.ErrorParent(rerr)
	}

	data, derr := compress.Algorithm(e.CodecID).DecompressBytes(compressed, int(e.UncompressedSize))
	if derr != nil {
		return outcome{}, ErrorDecompressionFailed.ErrorParent(derr)
	}

	return checkDigest(e, data), nil
}

func verifyBlock(archivePath string, members []container.Entry) (outcome, liberr.Error) {
	block := members[0]

	f, err := os.Open(archivePath)
	if err != nil {
		return outcome{}, ErrorIoFailure.ErrorParent(err)
	}
	defer func() { _ = f.Close() }()

	if _, serr := f.Seek(block.HeaderOffset, io.SeekStart); serr != nil {
		return outcome{}, ErrorIoFailure.ErrorParent(serr)
	}

	compressed := make([]byte, block.CompressedSize)
	if _, rerr := io.ReadFull(f, compressed); rerr != nil {
		return outcome{}, ErrorIoFailure.ErrorParent(rerr)
	}

	decompressed, derr := compress.Algorithm(block.CodecID).DecompressBytes(compressed, 0)
	if derr != nil {
		return outcome{}, ErrorDecompressionFailed.ErrorParent(derr)
	}

	var total outcome
	for _, m := range members {
		end := m.DataOffset + int64(m.UncompressedSize)
		if end > int64(len(decompressed)) || m.DataOffset < 0 {
			return outcome{}, ErrorDecompressionFailed.Error()
		}
		res := checkDigest(m, decompressed[m.DataOffset:end])
		total.checked += res.checked
		total.mismatches += res.mismatches
		total.noDigest += res.noDigest
		total.mismatched = append(total.mismatched, res.mismatched...)
	}
	return total, nil
}

func checkDigest(e container.Entry, data []byte) outcome {
	if e.DigestID == uint8(digest.None) {
		return outcome{noDigest: 1}
	}

	sum, derr := digest.Algorithm(e.DigestID).Compute(data)
	if derr != nil {
		return outcome{mismatches: 1, mismatched: []string{e.Path}}
	}
	if sum != e.DigestHex {
		return outcome{checked: 1, mismatches: 1, mismatched: []string{e.Path}}
	}
	return outcome{checked: 1}
}
