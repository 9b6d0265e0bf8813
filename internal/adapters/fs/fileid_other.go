//go:build !unix

package fs

import "os"

type fileIdentity struct {
	path string
}

func identityOf(path string, _ os.FileInfo) fileIdentity {
	return fileIdentity{path: realPath(path)}
}
