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

// Package writer orchestrates archive creation and append: traversal,
// archive-path computation, per-file or per-block codec/digest work,
// and framed emission into the container file, parallelized through
// the worker pool for non-solid archives.
package writer

import (
	"os"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/sabouaram/przm/archive/container"
	"github.com/sabouaram/przm/archive/pool"
	"github.com/sabouaram/przm/archive/progress"
	"github.com/sabouaram/przm/archive/reader"
	"github.com/sabouaram/przm/logger"

	liberr "github.com/sabouaram/przm/errors"
)

// Create builds a new archive at archivePath from inputs. When a file
// already exists there, opts.Confirm is asked: the file is overwritten
// if it answers yes (the default Confirm always does), and Create fails
// otherwise.
func Create(archivePath string, inputs []string, opts Options) (CreationReport, liberr.Error) {
	return build(archivePath, inputs, opts, false)
}

// Append extends an existing archive with additional inputs. Mixing
// solid and non-solid appends across calls is permitted but degrades
// the archive's purity -- the writer logs a warning rather than
// rejecting it.
func Append(archivePath string, inputs []string, opts Options) (CreationReport, liberr.Error) {
	return build(archivePath, inputs, opts, true)
}

func build(archivePath string, inputs []string, opts Options, appending bool) (CreationReport, liberr.Error) {
	log := opts.logger()
	sink := opts.sink()
	report := CreationReport{}

	already := map[string]struct{}{}
	existingHadSolid := false

	if appending {
		existing, rerr := reader.Scan(archivePath)
		if rerr == nil {
			for _, e := range existing {
				already[e.Path] = struct{}{}
				if e.Kind == container.SolidMember {
					existingHadSolid = true
				}
			}
		}
	}

	jobs, warnings, derr := discover(inputs, opts.Exclude, opts.FullPath, already, opts.IgnoreErrors)
	if derr != nil {
		return report, derr
	}
	report.Warnings = append(report.Warnings, warnings...)

	if opts.DiskEstimator != nil {
		estimated := estimateInputBytes(jobs, opts.threadCount())
		if !opts.DiskEstimator(archivePath, estimated) {
			return report, ErrorDiskFull.Error()
		}
	}

	flag := os.O_WRONLY | os.O_CREATE
	if appending {
		flag |= os.O_APPEND
	} else {
		flag |= os.O_EXCL
		if _, statErr := os.Stat(archivePath); statErr == nil {
			if opts.confirm()("overwrite existing archive " + archivePath + "?") {
				flag = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
			}
		}
	}

	fh, err := os.OpenFile(archivePath, flag, 0o644)
	if err != nil {
		return report, ErrorCannotCreateArchive.ErrorParent(err)
	}
	defer func() { _ = fh.Close() }()

	if !appending {
		flags := uint8(0)
		if opts.Solid && len(jobs) > 0 {
			flags = container.FlagSolidFirstBlock
		}
		if perr := container.WritePrefix(fh, flags); perr != nil {
			return report, perr
		}
	} else if existingHadSolid != opts.Solid {
		log.Log(logger.WarnLevel, "append mode differs from the archive's existing purity; archive will mix solid and non-solid blocks")
	}

	if len(jobs) == 0 {
		return report, nil
	}

	if opts.Solid {
		if appending {
			if _, werr := fh.Write(container.SolidMagic[:]); werr != nil {
				return report, ErrorIoFailure.ErrorParent(werr)
			}
		}

		header, payload, berr := buildSolidBlock(jobs, opts, &report, sink)
		if berr != nil {
			return report, berr
		}
		if herr := container.WriteSolidBlockHeader(fh, header); herr != nil {
			return report, herr
		}
		if _, werr := fh.Write(payload); werr != nil {
			return report, ErrorIoFailure.ErrorParent(werr)
		}

		return report, nil
	}

	return report, buildNonSolid(fh, jobs, opts, &report, log, sink)
}

// estimateInputBytes sums every job's input file size, stat-ing up to
// threadCount files concurrently -- the same fan-out width the caller
// chose for the compression work itself.
func estimateInputBytes(jobs []job, threadCount int) int64 {
	var total int64

	g := new(errgroup.Group)
	g.SetLimit(threadCount)

	for _, j := range jobs {
		j := j
		g.Go(func() error {
			if info, serr := os.Stat(j.file); serr == nil {
				atomic.AddInt64(&total, info.Size())
			}
			return nil
		})
	}
	_ = g.Wait()

	return total
}

func buildNonSolid(fh *os.File, jobs []job, opts Options, report *CreationReport, log logger.Logger, sink progress.Sink) liberr.Error {
	p := pool.New(opts.threadCount(), len(jobs))

	type result struct {
		built builtLoneEntry
		err   liberr.Error
	}

	futures := make([]*pool.Future, 0, len(jobs))
	for _, j := range jobs {
		j := j
		f, serr := p.Submit(func() (any, error) {
			built, berr := buildLoneEntry(j, opts)
			if berr != nil {
				return result{err: berr}, nil
			}
			return result{built: built}, nil
		})
		if serr != nil {
			p.Close()
			p.Join()
			return serr
		}
		futures = append(futures, f)
	}

	var mu writerMutex
	mu.f = fh

	var firstErr liberr.Error
	for i, f := range futures {
		v, _ := f.Get()
		res := v.(result)

		if res.err != nil {
			if opts.IgnoreErrors {
				report.Warnings = append(report.Warnings, "skipped "+jobs[i].file+": "+res.err.Error())
				continue
			}
			if firstErr == nil {
				firstErr = res.err
			}
			continue
		}

		if werr := mu.write(res.built.entry, res.built.payload); werr != nil {
			if firstErr == nil {
				firstErr = werr
			}
			continue
		}

		report.Entries++
		report.TotalUncompressed += res.built.entry.UncompressedSize
		report.TotalCompressed += res.built.entry.CompressedSize

		sink(progress.Update{
			Current:          i + 1,
			Total:            len(jobs),
			Path:             res.built.entry.Path,
			UncompressedSize: res.built.entry.UncompressedSize,
			CompressedSize:   res.built.entry.CompressedSize,
		})
	}

	p.Close()
	p.Join()

	return firstErr
}
