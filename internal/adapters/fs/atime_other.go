//go:build !linux && !darwin

package fs

import (
	"os"
	"time"
)

// AccessTime falls back to the modification time where the platform stat layout is not known.
func AccessTime(info os.FileInfo) time.Time {
	return info.ModTime()
}
