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

// Package archive is the public entry point over the PRZM engine: it
// wires traversal, codec, digest, container framing, and the worker
// pool behind six operations -- Create, Append, List, Extract, Remove
// and Verify -- each driven by a single flat Options struct and
// returning a structured report.
package archive

import (
	"github.com/sabouaram/przm/archive/compress"
	"github.com/sabouaram/przm/archive/container"
	"github.com/sabouaram/przm/archive/digest"
	"github.com/sabouaram/przm/archive/extractor"
	"github.com/sabouaram/przm/archive/progress"
	"github.com/sabouaram/przm/archive/reader"
	"github.com/sabouaram/przm/archive/remover"
	"github.com/sabouaram/przm/archive/verifier"
	"github.com/sabouaram/przm/archive/writer"
	"github.com/sabouaram/przm/logger"

	liberr "github.com/sabouaram/przm/errors"
)

// Options is the single, flat configuration surface for every engine
// operation. Each function below reads only the fields relevant to it;
// the zero value is safe everywhere (codec/digest default to "none",
// thread_count defaults to 1).
type Options struct {
	Codec  compress.Algorithm
	Level  int
	Digest digest.Algorithm

	Exclude  []string
	FullPath bool

	Selection []string

	IgnoreErrors    bool
	Solid           bool
	NoOverwrite     bool
	NoVerify        bool
	NoPreserveProps bool

	ThreadCount int

	Logger        logger.Logger
	Progress      progress.Sink
	Confirm       progress.Confirm
	DiskEstimator writer.DiskEstimator
}

// CreationReport is re-exported from the writer package so callers need
// not import it directly.
type CreationReport = writer.CreationReport

// ExtractionReport is re-exported from the extractor package.
type ExtractionReport = extractor.ExtractionReport

// RemovalReport is re-exported from the remover package.
type RemovalReport = remover.RemovalReport

// VerificationReport is re-exported from the verifier package.
type VerificationReport = verifier.VerificationReport

// Entry is re-exported from the container package; it's the type List
// returns.
type Entry = container.Entry

// Create builds a new archive at archivePath from inputs.
func Create(archivePath string, inputs []string, opts Options) (CreationReport, liberr.Error) {
	return writer.Create(archivePath, inputs, toWriterOptions(opts))
}

// Append extends an existing archive with additional inputs.
func Append(archivePath string, inputs []string, opts Options) (CreationReport, liberr.Error) {
	return writer.Append(archivePath, inputs, toWriterOptions(opts))
}

// List returns every entry descriptor in archivePath, in the order
// encountered by a sequential scan.
func List(archivePath string) ([]Entry, liberr.Error) {
	return reader.Scan(archivePath)
}

// Extract restores archivePath's selected entries under outDir.
func Extract(archivePath, outDir string, opts Options) (ExtractionReport, liberr.Error) {
	return extractor.Extract(archivePath, outDir, toExtractorOptions(opts))
}

// Remove rewrites archivePath, dropping every entry opts.Selection
// matches.
func Remove(archivePath string, opts Options) (RemovalReport, liberr.Error) {
	return remover.Remove(archivePath, opts.Selection, toRemoverOptions(opts))
}

// Verify re-digests archivePath's members without modifying it.
func Verify(archivePath string, opts Options) (VerificationReport, liberr.Error) {
	return verifier.Verify(archivePath, toVerifierOptions(opts))
}

func toWriterOptions(o Options) writer.Options {
	return writer.Options{
		Codec:         o.Codec,
		Level:         o.Level,
		Digest:        o.Digest,
		Exclude:       o.Exclude,
		FullPath:      o.FullPath,
		IgnoreErrors:  o.IgnoreErrors,
		Solid:         o.Solid,
		ThreadCount:   o.ThreadCount,
		Logger:        o.Logger,
		Progress:      o.Progress,
		Confirm:       o.Confirm,
		DiskEstimator: o.DiskEstimator,
	}
}

func toExtractorOptions(o Options) extractor.Options {
	return extractor.Options{
		Selection:       o.Selection,
		NoOverwrite:     o.NoOverwrite,
		NoVerify:        o.NoVerify,
		NoPreserveProps: o.NoPreserveProps,
		ThreadCount:     o.ThreadCount,
		Logger:          o.Logger,
		Progress:        o.Progress,
	}
}

func toRemoverOptions(o Options) remover.Options {
	return remover.Options{
		Selection:    o.Selection,
		IgnoreErrors: o.IgnoreErrors,
		Logger:       o.Logger,
	}
}

func toVerifierOptions(o Options) verifier.Options {
	return verifier.Options{
		ThreadCount: o.ThreadCount,
		Logger:      o.Logger,
	}
}
