package fs

import (
	"os"
	"syscall"
	"time"
)

// AccessTime returns the last access time recorded by the file system.
func AccessTime(info os.FileInfo) time.Time {
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		return time.Unix(st.Atimespec.Sec, st.Atimespec.Nsec)
	}
	return info.ModTime()
}
