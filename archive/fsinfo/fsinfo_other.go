//go:build !unix

package fsinfo

import "os"

// designatedUID/GID are the non-zero pair the writer stores on
// platforms without a direct uid/gid concept. ownership returns this
// pair for every file; privileged owners are not told apart and are
// never stored as 0/0.
const (
	designatedUID uint32 = 1000
	designatedGID uint32 = 1000
)

func ownership(os.FileInfo) (uid, gid uint32) {
	return designatedUID, designatedGID
}

func applyOwnership(string, uint32, uint32) error {
	// no-op: best-effort by contract, nothing to set on this platform.
	return nil
}
