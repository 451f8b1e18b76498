//go:build linux

package probe

import (
	"syscall"
	"time"
)

// sysTimes returns the access, birth and modification times of a stat result.
// The portable stat result on Linux carries no birth time; the zero time is
// returned for it and normalizes to 0.
func sysTimes(st *syscall.Stat_t) (atime, btime, mtime time.Time) {
	atime = time.Unix(st.Atim.Unix())
	mtime = time.Unix(st.Mtim.Unix())

	return atime, time.Time{}, mtime
}
