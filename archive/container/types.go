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

// Package container implements the PRZM binary format: the 7-byte file
// prefix, lone-entry framing and solid-block framing, little-endian
// throughout. It has no knowledge of the filesystem; reader, writer,
// extractor, remover and verifier build on top of it.
package container

// Kind distinguishes a standalone entry from one bundled inside a solid
// block.
type Kind uint8

const (
	Lone Kind = iota
	SolidMember
)

// Entry is the in-memory descriptor of one archived file, produced by a
// traversal at write time or by Scan at read time.
type Entry struct {
	Path string

	UncompressedSize uint64
	CompressedSize   uint64

	CodecID uint8
	Level   uint8

	DigestID  uint8
	DigestHex string

	CreationTime     uint64
	ModificationTime uint64

	Permissions uint32
	UID         uint32
	GID         uint32

	// HeaderOffset/DataOffset are resolved while reading. For a Lone
	// entry, HeaderOffset addresses its own framed header and
	// DataOffset its payload within the file. For a SolidMember,
	// HeaderOffset addresses the owning block's compressed payload and
	// DataOffset is the member's offset within the decompressed block.
	HeaderOffset int64
	DataOffset   int64

	Kind Kind

	// BlockID identifies the owning solid block by its HeaderOffset,
	// valid only when Kind == SolidMember.
	BlockID int64
}
