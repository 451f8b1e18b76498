//go:build darwin

package probe

import (
	"syscall"
	"time"
)

// sysTimes returns the access, birth and modification times of a stat result.
func sysTimes(st *syscall.Stat_t) (atime, btime, mtime time.Time) {
	atime = time.Unix(st.Atimespec.Unix())
	btime = time.Unix(st.Birthtimespec.Unix())
	mtime = time.Unix(st.Mtimespec.Unix())

	return atime, btime, mtime
}
