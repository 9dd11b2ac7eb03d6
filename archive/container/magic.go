package container

import (
	"bytes"
	"encoding/binary"
	"io"

	liberr "github.com/sabouaram/przm/errors"
)

// Magic opens every PRZM container file.
var Magic = [4]byte{'P', 'R', 'Z', 'M'}

// SolidMagic announces a solid block that is not the archive's leading
// block. Every block after the first must be introspected by this
// marker; a lone entry may never immediately follow a solid block --
// the reader treats any 4 bytes that aren't SolidMagic there as
// CorruptStream rather than attempting to disambiguate against a
// path_len field that happens to collide with it.
var SolidMagic = [4]byte{'P', 'R', 'Z', 'S'}

const Version uint16 = 1

const FlagSolidFirstBlock uint8 = 1 << 0

// PrefixSize is the fixed size of the file prefix: magic + version + flags.
const PrefixSize = 4 + 2 + 1

// WritePrefix writes the 7-byte container prefix.
func WritePrefix(w io.Writer, flags uint8) liberr.Error {
	buf := make([]byte, PrefixSize)
	copy(buf[0:4], Magic[:])
	binary.LittleEndian.PutUint16(buf[4:6], Version)
	buf[6] = flags

	if _, err := w.Write(buf); err != nil {
		return ErrorCorruptHeader.ErrorParent(err)
	}
	return nil
}

// ReadPrefix reads and validates the 7-byte container prefix, returning
// the flags byte.
func ReadPrefix(r io.Reader) (uint8, liberr.Error) {
	buf := make([]byte, PrefixSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		return 0, ErrorCorruptHeader.ErrorParent(err)
	}

	if !bytes.Equal(buf[0:4], Magic[:]) {
		return 0, ErrorCorruptHeader.Error()
	}

	version := binary.LittleEndian.Uint16(buf[4:6])
	if version != Version {
		return 0, ErrorUnsupportedVersion.Error()
	}

	return buf[6], nil
}
