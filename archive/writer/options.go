package writer

import (
	"github.com/sabouaram/przm/archive/compress"
	"github.com/sabouaram/przm/archive/digest"
	"github.com/sabouaram/przm/archive/progress"
	"github.com/sabouaram/przm/logger"
)

// DiskEstimator answers whether there's enough free space at path to
// hold an archive of roughly estimatedBytes. The writer consults it,
// when set, before creating or appending; it never estimates free space
// itself -- that's an external collaborator's job, injected the same
// way Confirm and Progress are.
type DiskEstimator func(path string, estimatedBytes int64) bool

// Options configures Create and Append. The zero value is usable:
// codec/digest default to "none", ThreadCount defaults to 1.
type Options struct {
	Codec  compress.Algorithm
	Level  int
	Digest digest.Algorithm

	Exclude  []string
	FullPath bool

	IgnoreErrors bool
	Solid        bool
	ThreadCount  int

	Logger        logger.Logger
	Progress      progress.Sink
	Confirm       progress.Confirm
	DiskEstimator DiskEstimator
}

func (o Options) confirm() progress.Confirm {
	if o.Confirm == nil {
		return progress.AlwaysConfirm
	}
	return o.Confirm
}

func (o Options) logger() logger.Logger {
	if o.Logger == nil {
		return logger.NewNop()
	}
	return o.Logger
}

func (o Options) sink() progress.Sink {
	if o.Progress == nil {
		return progress.NopSink
	}
	return o.Progress
}

func (o Options) threadCount() int {
	if o.ThreadCount < 1 {
		return 1
	}
	return o.ThreadCount
}
