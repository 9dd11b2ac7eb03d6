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

// Package extractor inverses the writer's pipeline: it reads the
// descriptor list, plans lone and solid-block tasks, and drives them
// through the same worker pool the writer uses.
package extractor

import (
	"github.com/sabouaram/przm/archive/pool"
	"github.com/sabouaram/przm/archive/progress"
	"github.com/sabouaram/przm/archive/reader"

	liberr "github.com/sabouaram/przm/errors"
)

// Extract restores archive's selected members under outputRoot.
func Extract(archivePath, outputRoot string, opts Options) (ExtractionReport, liberr.Error) {
	report := ExtractionReport{}
	sink := opts.sink()

	entries, rerr := reader.Scan(archivePath)
	if rerr != nil {
		return report, rerr
	}

	picked := selected(entries, opts.Selection)
	lone, blocks := plan(picked)

	total := len(lone) + len(blocks)
	p := pool.New(opts.threadCount(), total)

	type work func() (taskResult, liberr.Error)
	var works []work

	for _, e := range lone {
		e := e
		works = append(works, func() (taskResult, liberr.Error) {
			return extractLone(archivePath, outputRoot, e, opts)
		})
	}
	for _, members := range blocks {
		members := members
		works = append(works, func() (taskResult, liberr.Error) {
			return extractSolidBlock(archivePath, outputRoot, members, opts)
		})
	}

	futures := make([]*pool.Future, 0, len(works))
	for _, w := range works {
		w := w
		f, serr := p.Submit(func() (any, error) {
			res, terr := w()
			return taskOutcome{res: res, err: terr}, nil
		})
		if serr != nil {
			p.Close()
			p.Join()
			return report, serr
		}
		futures = append(futures, f)
	}

	for i, f := range futures {
		v, _ := f.Get()
		outcome := v.(taskOutcome)

		if outcome.err != nil {
			report.Warnings = append(report.Warnings, outcome.err.Error())
			continue
		}

		report.Extracted += outcome.res.extracted
		report.Skipped += outcome.res.skipped
		report.Bytes += outcome.res.bytes
		report.Checked += outcome.res.checked
		report.Mismatches += outcome.res.mismatches
		report.Warnings = append(report.Warnings, outcome.res.warnings...)

		sink(progress.Update{Current: i + 1, Total: len(futures)})
	}

	p.Close()
	report.WorkerBusyTime = p.Join()

	return report, nil
}

type taskOutcome struct {
	res taskResult
	err liberr.Error
}
