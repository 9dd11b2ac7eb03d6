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

// Package compress is the codec registry: a tagged dispatch over the
// container format's compression algorithms, selected by their stable u8
// identifiers so archives stay readable across versions of this module.
package compress

import "bytes"

// Algorithm is the container format's codec discriminator. Values are
// part of the on-disk format and must never be renumbered.
type Algorithm uint8

const (
	None Algorithm = iota
	Zlib
	Bzip2
	Lzma
	Gzip
	Lz4
	Zstd
	Brotli
	Snappy
	Lzo
	Lzma2
)

func List() []Algorithm {
	return []Algorithm{None, Zlib, Bzip2, Lzma, Gzip, Lz4, Zstd, Brotli, Snappy, Lzo, Lzma2}
}

func ListString() []string {
	lst := List()
	res := make([]string, len(lst))
	for i := range lst {
		res[i] = lst[i].String()
	}
	return res
}

func (a Algorithm) IsNone() bool {
	return a == None
}

func (a Algorithm) String() string {
	switch a {
	case Zlib:
		return "zlib"
	case Bzip2:
		return "bzip2"
	case Lzma:
		return "lzma"
	case Gzip:
		return "gzip"
	case Lz4:
		return "lz4"
	case Zstd:
		return "zstd"
	case Brotli:
		return "brotli"
	case Snappy:
		return "snappy"
	case Lzo:
		return "lzo"
	case Lzma2:
		return "lzma2"
	default:
		return "none"
	}
}

func (a Algorithm) Extension() string {
	switch a {
	case Zlib:
		return ".zz"
	case Bzip2:
		return ".bz2"
	case Lzma:
		return ".lzma"
	case Gzip:
		return ".gz"
	case Lz4:
		return ".lz4"
	case Zstd:
		return ".zst"
	case Brotli:
		return ".br"
	case Snappy:
		return ".sz"
	case Lzo:
		return ".lzo"
	case Lzma2:
		return ".xz"
	default:
		return ""
	}
}

// DetectHeader reports whether h's leading bytes match this algorithm's
// magic. Used by Detect to sniff an already-compressed stream.
func (a Algorithm) DetectHeader(h []byte) bool {
	if len(h) < 4 {
		return false
	}

	switch a {
	case Gzip:
		return bytes.Equal(h[0:2], []byte{0x1f, 0x8b})
	case Bzip2:
		return len(h) >= 4 && bytes.Equal(h[0:3], []byte{'B', 'Z', 'h'}) && h[3] >= '0' && h[3] <= '9'
	case Lz4:
		return bytes.Equal(h[0:4], []byte{0x04, 0x22, 0x4d, 0x18})
	case Zstd:
		return bytes.Equal(h[0:4], []byte{0x28, 0xb5, 0x2f, 0xfd})
	case Lzma2:
		return len(h) >= 6 && bytes.Equal(h[0:6], []byte{0xfd, '7', 'z', 'X', 'Z', 0x00})
	case Snappy:
		return false // snappy has no fixed magic; Detect falls through to None for it
	case Zlib:
		return len(h) >= 2 && h[0] == 0x78
	default:
		return false
	}
}
