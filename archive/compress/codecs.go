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

package compress

import (
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"compress/zlib"
	"io"

	"github.com/andybalholm/brotli"
	dsnetbz2 "github.com/dsnet/compress/bzip2"
	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/ulikunitz/xz"
	"github.com/ulikunitz/xz/lzma"

	liberr "github.com/sabouaram/przm/errors"
)

// nopWriteCloser adapts an io.Writer with no native Close into a
// io.WriteCloser; the None codec uses it to pass bytes through
// unchanged.
type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// Writer returns a streaming compressor for a writing to w at the given
// level. level follows the 0-9 convention used across the container
// format; codecs with a narrower native range rescale it.
func (a Algorithm) Writer(w io.Writer, level int) (io.WriteCloser, liberr.Error) {
	switch a {
	case None:
		return nopWriteCloser{w}, nil

	case Zlib:
		zw, err := zlib.NewWriterLevel(w, clampZlibLevel(level))
		if err != nil {
			return nil, ErrorCompressionFailed.ErrorParent(err)
		}
		return zw, nil

	case Gzip:
		gw, err := gzip.NewWriterLevel(w, clampZlibLevel(level))
		if err != nil {
			return nil, ErrorCompressionFailed.ErrorParent(err)
		}
		return gw, nil

	case Bzip2:
		bw, err := dsnetbz2.NewWriter(w, &dsnetbz2.WriterConfig{Level: clampBzip2Level(level)})
		if err != nil {
			return nil, ErrorCompressionFailed.ErrorParent(err)
		}
		return bw, nil

	case Lzma:
		cfg := lzma.WriterConfig{}
		lw, err := cfg.NewWriter(w)
		if err != nil {
			return nil, ErrorCompressionFailed.ErrorParent(err)
		}
		return lw, nil

	case Lzma2:
		xw, err := xz.NewWriter(w)
		if err != nil {
			return nil, ErrorCompressionFailed.ErrorParent(err)
		}
		return xw, nil

	case Lz4:
		lw := lz4.NewWriter(w)
		if err := lw.Apply(lz4.CompressionLevelOption(clampLz4Level(level))); err != nil {
			return nil, ErrorCompressionFailed.ErrorParent(err)
		}
		return lw, nil

	case Zstd:
		zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(clampZstdLevel(level)))
		if err != nil {
			return nil, ErrorCompressionFailed.ErrorParent(err)
		}
		return zw, nil

	case Brotli:
		return brotli.NewWriterLevel(w, clampBrotliLevel(level)), nil

	case Snappy:
		return snappy.NewBufferedWriter(w), nil

	case Lzo:
		return nil, ErrorUnsupportedCodec.Error()

	default:
		return nil, ErrorUnknownCodec.Error()
	}
}

// Reader returns a streaming decompressor reading from r.
func (a Algorithm) Reader(r io.Reader) (io.ReadCloser, liberr.Error) {
	switch a {
	case None:
		return io.NopCloser(r), nil

	case Zlib:
		zr, err := zlib.NewReader(r)
		if err != nil {
			return nil, ErrorDecompressionFailed.ErrorParent(err)
		}
		return zr, nil

	case Gzip:
		gr, err := gzip.NewReader(r)
		if err != nil {
			return nil, ErrorDecompressionFailed.ErrorParent(err)
		}
		return gr, nil

	case Bzip2:
		return io.NopCloser(bzip2.NewReader(r)), nil

	case Lzma:
		lr, err := lzma.NewReader(r)
		if err != nil {
			return nil, ErrorDecompressionFailed.ErrorParent(err)
		}
		return io.NopCloser(lr), nil

	case Lzma2:
		xr, err := xz.NewReader(r)
		if err != nil {
			return nil, ErrorDecompressionFailed.ErrorParent(err)
		}
		return io.NopCloser(xr), nil

	case Lz4:
		return io.NopCloser(lz4.NewReader(r)), nil

	case Zstd:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, ErrorDecompressionFailed.ErrorParent(err)
		}
		return zr.IOReadCloser(), nil

	case Brotli:
		return io.NopCloser(brotli.NewReader(r)), nil

	case Snappy:
		return io.NopCloser(snappy.NewReader(r)), nil

	case Lzo:
		return nil, ErrorUnsupportedCodec.Error()

	default:
		return nil, ErrorUnknownCodec.Error()
	}
}

// CompressBytes is the whole-buffer convenience path the solid-block
// writer uses: it compresses data in one shot and returns the result.
func (a Algorithm) CompressBytes(data []byte, level int) ([]byte, liberr.Error) {
	buf := &bytes.Buffer{}

	w, err := a.Writer(buf, level)
	if err != nil {
		return nil, err
	}
	if _, werr := w.Write(data); werr != nil {
		return nil, ErrorCompressionFailed.ErrorParent(werr)
	}
	if cerr := w.Close(); cerr != nil {
		return nil, ErrorCompressionFailed.ErrorParent(cerr)
	}

	return buf.Bytes(), nil
}

// DecompressBytes is the inverse of CompressBytes. expectedLen, when
// known from the entry descriptor, preallocates the output buffer.
func (a Algorithm) DecompressBytes(data []byte, expectedLen int) ([]byte, liberr.Error) {
	r, err := a.Reader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	out := bytes.NewBuffer(make([]byte, 0, expectedLen))
	if _, rerr := io.Copy(out, r); rerr != nil {
		return nil, ErrorDecompressionFailed.ErrorParent(rerr)
	}

	return out.Bytes(), nil
}

func clampZlibLevel(level int) int {
	if level <= 0 {
		return zlib.DefaultCompression
	}
	if level > 9 {
		return 9
	}
	return level
}

func clampBzip2Level(level int) int {
	if level <= 0 {
		return 6
	}
	if level > 9 {
		return 9
	}
	return level
}

func clampLz4Level(level int) lz4.CompressionLevel {
	switch {
	case level <= 0:
		return lz4.Level1
	case level >= 9:
		return lz4.Level9
	default:
		return lz4.CompressionLevel(1 << (level + 8))
	}
}

func clampZstdLevel(level int) zstd.EncoderLevel {
	switch {
	case level <= 1:
		return zstd.SpeedFastest
	case level <= 4:
		return zstd.SpeedDefault
	case level <= 7:
		return zstd.SpeedBetterCompression
	default:
		return zstd.SpeedBestCompression
	}
}

func clampBrotliLevel(level int) int {
	if level <= 0 {
		return brotli.DefaultCompression
	}
	if level > 9 {
		return 11
	}
	return level
}
