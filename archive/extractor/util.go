package extractor

import (
	"io"
	"time"
)

func readFull(r io.Reader, buf []byte) (int, error) {
	return io.ReadFull(r, buf)
}

func unixToTime(sec uint64) time.Time {
	return time.Unix(int64(sec), 0).UTC()
}
