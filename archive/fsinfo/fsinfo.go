// Package fsinfo bridges os.FileInfo to the container format's
// permissions/uid/gid fields and back, with a platform-specific split
// for the uid/gid lookup the way rclone's local backend keeps its
// raw-stat access isolated behind build tags.
package fsinfo

import (
	"os"
	"time"
)

// Stat is the subset of filesystem metadata the writer stores per
// entry and the extractor restores on output.
type Stat struct {
	ModTime     time.Time
	Permissions uint32
	UID         uint32
	GID         uint32
}

// StatFile reads path's metadata into a Stat.
func StatFile(path string) (Stat, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Stat{}, err
	}
	return FromFileInfo(info), nil
}

// FromFileInfo extracts a Stat from an already-obtained os.FileInfo,
// for callers that stat once and need both the size and the ownership
// bits.
func FromFileInfo(info os.FileInfo) Stat {
	uid, gid := ownership(info)
	return Stat{
		ModTime:     info.ModTime(),
		Permissions: uint32(info.Mode().Perm()),
		UID:         uid,
		GID:         gid,
	}
}

// Apply restores mtime, permissions and ownership on the file at path.
// Failures degrade to a returned error per field category; the caller
// (extractor) decides whether to log-and-continue or abort, per the
// no_preserve_props policy.
func Apply(path string, s Stat) (chmodErr, chownErr, timeErr error) {
	chmodErr = os.Chmod(path, os.FileMode(s.Permissions))
	chownErr = applyOwnership(path, s.UID, s.GID)
	timeErr = os.Chtimes(path, s.ModTime, s.ModTime)
	return
}
