package compress

import (
	"bufio"
	"io"
	"strings"
)

// Parse maps a codec name (as used in container headers, config files and
// CLI-style flags) to its Algorithm. Unknown names return None, false.
func Parse(s string) (Algorithm, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "store", "stored":
		return None, true
	case "zlib", "deflate":
		return Zlib, true
	case "bzip2", "bz2":
		return Bzip2, true
	case "lzma":
		return Lzma, true
	case "gzip", "gz":
		return Gzip, true
	case "lz4":
		return Lz4, true
	case "zstd", "zstandard":
		return Zstd, true
	case "brotli", "br":
		return Brotli, true
	case "snappy", "sz":
		return Snappy, true
	case "lzo":
		return Lzo, true
	case "lzma2", "xz":
		return Lzma2, true
	default:
		return None, false
	}
}

// sniffWindow is large enough to carry every codec's magic bytes.
const sniffWindow = 6

// Detect peeks at the head of r to identify a compressed stream's codec,
// returning a reader that replays the peeked bytes so the caller can
// still read the stream from the start. A non-matching header is
// reported as None.
func Detect(r io.Reader) (Algorithm, io.Reader) {
	br := bufio.NewReaderSize(r, sniffWindow)
	head, _ := br.Peek(sniffWindow)

	for _, a := range List() {
		if a == None || a == Snappy || a == Lzo {
			continue
		}
		if a.DetectHeader(head) {
			return a, br
		}
	}
	return None, br
}
