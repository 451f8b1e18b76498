//go:build linux || darwin

package probe

import (
	"fmt"
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

// PlatformMetadata carries the Unix-specific fields of a [Metadata] record,
// copied verbatim from the stat result.
type PlatformMetadata struct {
	Dev     uint64 `json:"dev"`
	Ino     uint64 `json:"ino"`
	Mode    uint32 `json:"mode"`
	Nlink   uint64 `json:"nlink"`
	UID     uint32 `json:"uid"`
	GID     uint32 `json:"gid"`
	Rdev    uint64 `json:"rdev"`
	Blksize uint64 `json:"blksize"`
	Blocks  uint64 `json:"blocks"`
}

// Permissions is the permission view of a probed path: the cross-platform
// read-only flag plus the full raw file mode.
type Permissions struct {
	Readonly bool   `json:"readonly"`
	Mode     uint32 `json:"mode"`
}

const writeBits = 0o222

func newMetadata(info os.FileInfo) (*Metadata, error) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return nil, fmt.Errorf("(probe) %w: %T", ErrUnsupportedStat, info.Sys())
	}

	atime, btime, mtime := sysTimes(st)
	mode := uint32(st.Mode)

	return &Metadata{
		AccessedAtMs: epochMillis(atime),
		CreatedAtMs:  epochMillis(btime),
		ModifiedAtMs: epochMillis(mtime),
		IsDir:        mode&unix.S_IFMT == unix.S_IFDIR,
		IsFile:       mode&unix.S_IFMT == unix.S_IFREG,
		IsSymlink:    mode&unix.S_IFMT == unix.S_IFLNK,
		Size:         uint64(st.Size),
		Permissions: Permissions{
			Readonly: mode&writeBits == 0,
			Mode:     mode,
		},
		PlatformMetadata: PlatformMetadata{
			Dev:     uint64(st.Dev),
			Ino:     uint64(st.Ino),
			Mode:    mode,
			Nlink:   uint64(st.Nlink),
			UID:     st.Uid,
			GID:     st.Gid,
			Rdev:    uint64(st.Rdev),
			Blksize: uint64(st.Blksize),
			Blocks:  uint64(st.Blocks),
		},
	}, nil
}
