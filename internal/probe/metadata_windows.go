//go:build windows

package probe

import (
	"fmt"
	"os"
	"syscall"
	"time"
)

// PlatformMetadata carries the Windows-specific field of a [Metadata] record:
// the raw file attributes bitmask as reported by the stat result.
type PlatformMetadata struct {
	FileAttributes uint32 `json:"fileAttributes"`
}

// Permissions is the permission view of a probed path. Windows has no numeric
// file mode; only the read-only attribute is surfaced.
type Permissions struct {
	Readonly bool `json:"readonly"`
}

func newMetadata(info os.FileInfo) (*Metadata, error) {
	st, ok := info.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		return nil, fmt.Errorf("(probe) %w: %T", ErrUnsupportedStat, info.Sys())
	}

	mode := info.Mode()

	return &Metadata{
		AccessedAtMs: epochMillis(time.Unix(0, st.LastAccessTime.Nanoseconds())),
		CreatedAtMs:  epochMillis(time.Unix(0, st.CreationTime.Nanoseconds())),
		ModifiedAtMs: epochMillis(time.Unix(0, st.LastWriteTime.Nanoseconds())),
		IsDir:        mode.IsDir(),
		IsFile:       mode.IsRegular(),
		IsSymlink:    mode&os.ModeSymlink != 0,
		Size:         uint64(info.Size()),
		Permissions: Permissions{
			Readonly: st.FileAttributes&syscall.FILE_ATTRIBUTE_READONLY != 0,
		},
		PlatformMetadata: PlatformMetadata{
			FileAttributes: st.FileAttributes,
		},
	}, nil
}
