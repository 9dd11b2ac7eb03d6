package remover

import (
	"github.com/sabouaram/przm/logger"
)

// Options configures Remove.
type Options struct {
	Selection []string // exact-match plus path-prefix match (trailing '/')

	IgnoreErrors bool

	Logger logger.Logger
}

func (o Options) logger() logger.Logger {
	if o.Logger == nil {
		return logger.NewNop()
	}
	return o.Logger
}
