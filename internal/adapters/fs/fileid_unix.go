//go:build unix

package fs

import (
	"os"
	"syscall"
)

type fileIdentity struct {
	dev  uint64
	ino  uint64
	path string
}

func identityOf(path string, info os.FileInfo) fileIdentity {
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		return fileIdentity{dev: uint64(st.Dev), ino: uint64(st.Ino)} //nolint:unconvert // Field widths differ across platforms
	}
	return fileIdentity{path: realPath(path)}
}
