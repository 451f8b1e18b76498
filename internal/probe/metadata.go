package probe

import "time"

// Metadata is the normalized description of a single filesystem object. The
// common fields are identical across build targets; [PlatformMetadata] is
// selected at build time and its fields serialize flattened into the same
// JSON object as the common fields. A record is built fresh per probe and has
// no identity beyond the call that produced it.
type Metadata struct {
	AccessedAtMs uint64      `json:"accessedAtMs"`
	CreatedAtMs  uint64      `json:"createdAtMs"`
	ModifiedAtMs uint64      `json:"modifiedAtMs"`
	IsDir        bool        `json:"isDir"`
	IsFile       bool        `json:"isFile"`
	IsSymlink    bool        `json:"isSymlink"`
	Size         uint64      `json:"size"`
	Permissions  Permissions `json:"permissions"`

	PlatformMetadata
}

// epochMillis converts an OS-reported timestamp into whole milliseconds
// relative to the Unix epoch. Timestamps before the epoch collapse to the
// magnitude of their offset; the wire value is unsigned and consumers depend
// on this exact mapping. The zero [time.Time] means the platform could not
// report the timestamp and maps to 0.
func epochMillis(t time.Time) uint64 {
	if t.IsZero() {
		return 0
	}

	d := t.Sub(time.Unix(0, 0))
	if d < 0 {
		d = -d
	}

	return uint64(d.Milliseconds())
}
