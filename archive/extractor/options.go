package extractor

import (
	"github.com/sabouaram/przm/archive/progress"
	"github.com/sabouaram/przm/logger"
)

// Options configures Extract.
type Options struct {
	Selection []string // allowlist; entries ending in '/' select a prefix, exact match otherwise. Empty = everything.

	NoOverwrite     bool
	NoVerify        bool
	NoPreserveProps bool
	ThreadCount     int

	Logger   logger.Logger
	Progress progress.Sink
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
