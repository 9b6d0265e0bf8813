package ports

import "github.com/Prelang/prelang-buildpack/internal/core/domain"

// FileIndexer reports the files under a directory tree along with their sizes and access times.
//
//go:generate go run go.uber.org/mock/mockgen -source=indexer.go -destination=mocks/mock_indexer.go -package=mocks
type FileIndexer interface {
	// Scan walks root and returns its regular files ordered oldest access first.
	// A missing root yields an empty index.
	Scan(root string) (domain.Index, error)
}

// FileRemover deletes individual files.
type FileRemover interface {
	// Remove deletes path. A path that no longer exists is not an error.
	Remove(path string) error
}
