package container

import (
	"encoding/binary"
	"io"

	liberr "github.com/sabouaram/przm/errors"
)

// errWriter accumulates the first write error so a frame's field-by-field
// encoding can read top to bottom without an if-err-return after every
// call.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) u8(v uint8) {
	if e.err != nil {
		return
	}
	_, e.err = e.w.Write([]byte{v})
}

func (e *errWriter) u16(v uint16) {
	if e.err != nil {
		return
	}
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	_, e.err = e.w.Write(b[:])
}

func (e *errWriter) u32(v uint32) {
	if e.err != nil {
		return
	}
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	_, e.err = e.w.Write(b[:])
}

func (e *errWriter) u64(v uint64) {
	if e.err != nil {
		return
	}
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	_, e.err = e.w.Write(b[:])
}

func (e *errWriter) bytes(p []byte) {
	if e.err != nil {
		return
	}
	_, e.err = e.w.Write(p)
}

func (e *errWriter) lenPrefixedString32(s string) {
	e.u32(uint32(len(s)))
	e.bytes([]byte(s))
}

func (e *errWriter) lenPrefixedDigest16(hex string) {
	e.u16(uint16(len(hex)))
	e.bytes([]byte(hex))
}

// errReader mirrors errWriter on the decode side.
type errReader struct {
	r   io.Reader
	err error
}

func (e *errReader) u8() uint8 {
	if e.err != nil {
		return 0
	}
	var b [1]byte
	_, e.err = io.ReadFull(e.r, b[:])
	return b[0]
}

func (e *errReader) u16() uint16 {
	if e.err != nil {
		return 0
	}
	var b [2]byte
	_, e.err = io.ReadFull(e.r, b[:])
	return binary.LittleEndian.Uint16(b[:])
}

func (e *errReader) u32() uint32 {
	if e.err != nil {
		return 0
	}
	var b [4]byte
	_, e.err = io.ReadFull(e.r, b[:])
	return binary.LittleEndian.Uint32(b[:])
}

func (e *errReader) u64() uint64 {
	if e.err != nil {
		return 0
	}
	var b [8]byte
	_, e.err = io.ReadFull(e.r, b[:])
	return binary.LittleEndian.Uint64(b[:])
}

func (e *errReader) bytes(n int) []byte {
	if e.err != nil || n < 0 {
		return nil
	}
	b := make([]byte, n)
	_, e.err = io.ReadFull(e.r, b)
	return b
}

func (e *errReader) lenPrefixedString32() string {
	n := e.u32()
	return string(e.bytes(int(n)))
}

func (e *errReader) lenPrefixedDigest16() string {
	n := e.u16()
	return string(e.bytes(int(n)))
}

// WriteLoneHeader writes a lone entry's header fields, deterministic from
// the descriptor; it does not write the payload.
func WriteLoneHeader(w io.Writer, e Entry) liberr.Error {
	ew := &errWriter{w: w}

	ew.lenPrefixedString32(e.Path)
	ew.u8(e.CodecID)
	ew.u8(e.Level)
	ew.u8(e.DigestID)
	ew.lenPrefixedDigest16(e.DigestHex)
	ew.u64(e.UncompressedSize)
	ew.u64(e.CompressedSize)
	ew.u64(e.CreationTime)
	ew.u64(e.ModificationTime)
	ew.u32(e.Permissions)
	ew.u32(e.UID)
	ew.u32(e.GID)

	if ew.err != nil {
		return ErrorCorruptHeader.ErrorParent(ew.err)
	}
	return nil
}

// ReadLoneHeader reads a lone entry's header fields (not its payload).
// peekedPathLen4, when non-nil, supplies the 4 bytes the caller already
// consumed while disambiguating this header from a solid-block magic.
func ReadLoneHeader(r io.Reader, peekedPathLen4 []byte) (Entry, liberr.Error) {
	er := &errReader{r: r}

	var pathLen uint32
	if len(peekedPathLen4) == 4 {
		pathLen = binary.LittleEndian.Uint32(peekedPathLen4)
	} else {
		pathLen = er.u32()
	}
	path := string(er.bytes(int(pathLen)))

	var e Entry
	e.Path = path
	e.CodecID = er.u8()
	e.Level = er.u8()
	e.DigestID = er.u8()
	e.DigestHex = er.lenPrefixedDigest16()
	e.UncompressedSize = er.u64()
	e.CompressedSize = er.u64()
	e.CreationTime = er.u64()
	e.ModificationTime = er.u64()
	e.Permissions = er.u32()
	e.UID = er.u32()
	e.GID = er.u32()
	e.Kind = Lone

	if er.err != nil {
		return Entry{}, ErrorCorruptHeader.ErrorParent(er.err)
	}
	return e, nil
}

// WriteSolidMemberMeta writes one member record of a solid block's
// metadata section: a subset of the lone header without codec/level/
// compressed_size, which are inherited from the block.
func WriteSolidMemberMeta(w io.Writer, e Entry) liberr.Error {
	ew := &errWriter{w: w}

	ew.lenPrefixedString32(e.Path)
	ew.u8(e.DigestID)
	ew.lenPrefixedDigest16(e.DigestHex)
	ew.u64(e.UncompressedSize)
	ew.u64(e.CreationTime)
	ew.u64(e.ModificationTime)
	ew.u32(e.Permissions)
	ew.u32(e.UID)
	ew.u32(e.GID)

	if ew.err != nil {
		return ErrorCorruptHeader.ErrorParent(ew.err)
	}
	return nil
}

// ReadSolidMemberMeta reads one member record from a solid block's
// metadata section.
func ReadSolidMemberMeta(r io.Reader) (Entry, liberr.Error) {
	er := &errReader{r: r}

	var e Entry
	e.Path = er.lenPrefixedString32()
	e.DigestID = er.u8()
	e.DigestHex = er.lenPrefixedDigest16()
	e.UncompressedSize = er.u64()
	e.CreationTime = er.u64()
	e.ModificationTime = er.u64()
	e.Permissions = er.u32()
	e.UID = er.u32()
	e.GID = er.u32()
	e.Kind = SolidMember

	if er.err != nil {
		return Entry{}, ErrorCorruptHeader.ErrorParent(er.err)
	}
	return e, nil
}

// SolidBlockHeader is a solid block's codec and metadata-section framing,
// everything between the (optional) block magic and the compressed
// payload.
type SolidBlockHeader struct {
	CodecID  uint8
	Level    uint8
	Metadata []byte
}

// WriteSolidBlockHeader writes codec_id, level, metadata_size and
// metadata. The caller writes SolidMagic first when this isn't the
// archive's leading block.
func WriteSolidBlockHeader(w io.Writer, h SolidBlockHeader) liberr.Error {
	ew := &errWriter{w: w}

	ew.u8(h.CodecID)
	ew.u8(h.Level)
	ew.u64(uint64(len(h.Metadata)))
	ew.bytes(h.Metadata)

	if ew.err != nil {
		return ErrorCorruptHeader.ErrorParent(ew.err)
	}
	return nil
}

// ReadSolidBlockHeader reads codec_id, level, metadata_size and
// metadata. The caller has already consumed SolidMagic, if present.
func ReadSolidBlockHeader(r io.Reader) (SolidBlockHeader, liberr.Error) {
	er := &errReader{r: r}

	var h SolidBlockHeader
	h.CodecID = er.u8()
	h.Level = er.u8()
	metaSize := er.u64()
	h.Metadata = er.bytes(int(metaSize))

	if er.err != nil {
		return SolidBlockHeader{}, ErrorCorruptHeader.ErrorParent(er.err)
	}
	return h, nil
}
