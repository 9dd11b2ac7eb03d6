package writer

import (
	"os"
	"sync"

	"github.com/sabouaram/przm/archive/container"
	liberr "github.com/sabouaram/przm/errors"
)

// writerMutex is the archive file's single writer: every entry's
// framed header and payload are written as one contiguous critical
// section, so non-solid creation tasks never interleave their bytes.
type writerMutex struct {
	mu sync.Mutex
	f  *os.File
}

func (m *writerMutex) write(entry container.Entry, payload []byte) liberr.Error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if herr := container.WriteLoneHeader(m.f, entry); herr != nil {
		return herr
	}
	if _, werr := m.f.Write(payload); werr != nil {
		return ErrorIoFailure.ErrorParent(werr)
	}
	return nil
}
