package writer

import (
	"os"

	"github.com/sabouaram/przm/archive/compress"
	"github.com/sabouaram/przm/archive/container"
	"github.com/sabouaram/przm/archive/fsinfo"
	"github.com/sabouaram/przm/archive/pathutil"
	liberr "github.com/sabouaram/przm/errors"
)

type builtLoneEntry struct {
	entry   container.Entry
	payload []byte
}

// buildLoneEntry is one non-solid creation task: read, decide the
// effective codec, digest, compress, stat and frame -- everything a
// worker-pool task does before handing its bytes back for the writer
// mutex to emit.
func buildLoneEntry(j job, opts Options) (builtLoneEntry, liberr.Error) {
	data, err := os.ReadFile(j.file)
	if err != nil {
		if os.IsPermission(err) {
			return builtLoneEntry{}, ErrorPermissionDenied.ErrorParent(err)
		}
		return builtLoneEntry{}, ErrorIoFailure.ErrorParent(err)
	}

	codec := opts.Codec
	if pathutil.AlreadyCompressed(j.file) {
		codec = compress.None
	}

	digestHex := ""
	if !opts.Digest.IsNone() {
		var derr liberr.Error
		digestHex, derr = opts.Digest.Compute(data)
		if derr != nil {
			return builtLoneEntry{}, derr
		}
	}

	compressed, cerr := codec.CompressBytes(data, opts.Level)
	if cerr != nil {
		return builtLoneEntry{}, ErrorCompressionFailed.ErrorParent(cerr)
	}

	st, serr := fsinfo.StatFile(j.file)
	if serr != nil {
		return builtLoneEntry{}, ErrorIoFailure.ErrorParent(serr)
	}

	entry := container.Entry{
		Path:              j.archivePath,
		CodecID:           uint8(codec),
		Level:             uint8(opts.Level),
		DigestID:          uint8(opts.Digest),
		DigestHex:         digestHex,
		UncompressedSize:  uint64(len(data)),
		CompressedSize:    uint64(len(compressed)),
		CreationTime:      uint64(st.ModTime.Unix()),
		ModificationTime:  uint64(st.ModTime.Unix()),
		Permissions:       st.Permissions,
		UID:               st.UID,
		GID:               st.GID,
		Kind:              container.Lone,
	}

	return builtLoneEntry{entry: entry, payload: compressed}, nil
}
