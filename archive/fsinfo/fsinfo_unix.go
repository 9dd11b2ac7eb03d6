//go:build unix

package fsinfo

import (
	"os"
	"syscall"
)

func ownership(info os.FileInfo) (uid, gid uint32) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return 0, 0
	}
	return st.Uid, st.Gid
}

func applyOwnership(path string, uid, gid uint32) error {
	return os.Chown(path, int(uid), int(gid))
}
