package writer

import (
	"bytes"
	"os"

	"github.com/sabouaram/przm/archive/container"
	"github.com/sabouaram/przm/archive/fsinfo"
	"github.com/sabouaram/przm/archive/progress"
	liberr "github.com/sabouaram/przm/errors"
)

// buildSolidBlock runs the sequential solid-creation path: no
// parallelism within the block, one running buffer, one compression
// pass at the end.
func buildSolidBlock(jobs []job, opts Options, report *CreationReport, sink progress.Sink) (container.SolidBlockHeader, []byte, liberr.Error) {
	var raw bytes.Buffer
	var meta bytes.Buffer

	for i, j := range jobs {
		data, err := os.ReadFile(j.file)
		if err != nil {
			if opts.IgnoreErrors {
				report.Warnings = append(report.Warnings, "skipped "+j.file+": "+err.Error())
				continue
			}
			return container.SolidBlockHeader{}, nil, ErrorIoFailure.ErrorParent(err)
		}

		digestHex := ""
		if !opts.Digest.IsNone() {
			var derr liberr.Error
			digestHex, derr = opts.Digest.Compute(data)
			if derr != nil {
				return container.SolidBlockHeader{}, nil, derr
			}
		}

		st, serr := fsinfo.StatFile(j.file)
		if serr != nil {
			return container.SolidBlockHeader{}, nil, ErrorIoFailure.ErrorParent(serr)
		}

		member := container.Entry{
			Path:             j.archivePath,
			DigestID:         uint8(opts.Digest),
			DigestHex:        digestHex,
			UncompressedSize: uint64(len(data)),
			CreationTime:     uint64(st.ModTime.Unix()),
			ModificationTime: uint64(st.ModTime.Unix()),
			Permissions:      st.Permissions,
			UID:              st.UID,
			GID:              st.GID,
			Kind:             container.SolidMember,
		}

		if merr := container.WriteSolidMemberMeta(&meta, member); merr != nil {
			return container.SolidBlockHeader{}, nil, merr
		}

		raw.Write(data)

		report.Entries++
		report.TotalUncompressed += member.UncompressedSize

		sink(progress.Update{
			Current:          i + 1,
			Total:            len(jobs),
			Path:             member.Path,
			UncompressedSize: member.UncompressedSize,
		})
	}

	compressed, cerr := opts.Codec.CompressBytes(raw.Bytes(), opts.Level)
	if cerr != nil {
		return container.SolidBlockHeader{}, nil, ErrorCompressionFailed.ErrorParent(cerr)
	}

	header := container.SolidBlockHeader{
		CodecID:  uint8(opts.Codec),
		Level:    uint8(opts.Level),
		Metadata: meta.Bytes(),
	}

	report.TotalCompressed += uint64(len(compressed))

	return header, compressed, nil
}
