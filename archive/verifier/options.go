package verifier

import (
	"github.com/sabouaram/przm/logger"
)

// Options configures Verify.
type Options struct {
	ThreadCount int

	Logger logger.Logger
}

func (o Options) logger() logger.Logger {
	if o.Logger == nil {
		return logger.NewNop()
	}
	return o.Logger
}

func (o Options) threadCount() int {
	if o.ThreadCount < 1 {
		return 1
	}
	return o.ThreadCount
}
