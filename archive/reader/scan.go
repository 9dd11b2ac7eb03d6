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

// Package reader scans an existing PRZM container into the ordered list
// of entry descriptors the extractor, remover and verifier all consume.
package reader

import (
	"bytes"
	"io"
	"os"

	"github.com/sabouaram/przm/archive/container"
	liberr "github.com/sabouaram/przm/errors"
)

// Scan opens path and walks its block stream, returning every entry in
// the order encountered. Non-solid entries and solid-member entries are
// mixed freely in the result; callers distinguish them via Entry.Kind.
func Scan(path string) ([]container.Entry, liberr.Error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ErrorOpenFailed.ErrorParent(err)
	}
	defer func() { _ = f.Close() }()

	flags, perr := container.ReadPrefix(f)
	if perr != nil {
		return nil, perr
	}

	var entries []container.Entry
	sawSolid := false

	if flags&container.FlagSolidFirstBlock != 0 {
		members, serr := parseSolidBlock(f)
		if serr != nil {
			return nil, serr
		}
		entries = append(entries, members...)
		sawSolid = true
	}

	for {
		headerOffset, _ := f.Seek(0, io.SeekCurrent)

		peek := make([]byte, 4)
		n, rerr := io.ReadFull(f, peek)
		if n == 0 && rerr == io.EOF {
			break
		}
		if rerr != nil {
			if rerr == io.ErrUnexpectedEOF {
				return nil, container.ErrorCorruptStream.Error()
			}
			return nil, container.ErrorCorruptHeader.ErrorParent(rerr)
		}

		if bytes.Equal(peek, container.SolidMagic[:]) {
			members, serr := parseSolidBlock(f)
			if serr != nil {
				return nil, serr
			}
			entries = append(entries, members...)
			sawSolid = true
			continue
		}

		if sawSolid {
			return nil, container.ErrorCorruptStream.Error()
		}

		e, herr := container.ReadLoneHeader(f, peek)
		if herr != nil {
			return nil, herr
		}

		dataOffset, _ := f.Seek(0, io.SeekCurrent)
		e.HeaderOffset = headerOffset
		e.DataOffset = dataOffset

		if _, serr := f.Seek(int64(e.CompressedSize), io.SeekCurrent); serr != nil {
			return nil, container.ErrorCorruptStream.ErrorParent(serr)
		}

		entries = append(entries, e)
	}

	return entries, nil
}

// parseSolidBlock reads one solid block's codec/level/metadata framing
// with the file cursor positioned right after any block magic the
// caller already consumed, and returns its members with HeaderOffset
// set to the payload's start and DataOffset to each member's offset
// within the decompressed buffer.
//
// The payload's length is not stored explicitly (see the format's
// design notes): it runs to the next SolidMagic occurrence or to EOF.
func parseSolidBlock(f *os.File) ([]container.Entry, liberr.Error) {
	header, herr := container.ReadSolidBlockHeader(f)
	if herr != nil {
		return nil, herr
	}

	payloadStart, _ := f.Seek(0, io.SeekCurrent)

	rest, rerr := io.ReadAll(f)
	if rerr != nil {
		return nil, container.ErrorCorruptStream.ErrorParent(rerr)
	}

	payloadLen := len(rest)
	if idx := bytes.Index(rest, container.SolidMagic[:]); idx >= 0 {
		payloadLen = idx
	}

	if _, serr := f.Seek(payloadStart+int64(payloadLen), io.SeekStart); serr != nil {
		return nil, container.ErrorCorruptStream.ErrorParent(serr)
	}

	metaReader := bytes.NewReader(header.Metadata)
	var members []container.Entry
	var dataOffset uint64

	for metaReader.Len() > 0 {
		m, merr := container.ReadSolidMemberMeta(metaReader)
		if merr != nil {
			return nil, merr
		}

		m.CodecID = header.CodecID
		m.Level = header.Level
		m.CompressedSize = uint64(payloadLen)
		m.HeaderOffset = payloadStart
		m.BlockID = payloadStart
		m.DataOffset = int64(dataOffset)

		dataOffset += m.UncompressedSize
		members = append(members, m)
	}

	return members, nil
}
