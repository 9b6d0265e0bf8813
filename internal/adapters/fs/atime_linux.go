package fs

import (
	"os"
	"syscall"
	"time"
)

// AccessTime returns the last access time recorded by the file system.
func AccessTime(info os.FileInfo) time.Time {
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		return time.Unix(int64(st.Atim.Sec), int64(st.Atim.Nsec)) //nolint:unconvert // 32-bit targets
	}
	return info.ModTime()
}
