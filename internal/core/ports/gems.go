package ports

import "github.com/Prelang/prelang-buildpack/internal/core/domain"

// GemInspector answers questions about the application's resolved gem set.
//
//go:generate go run go.uber.org/mock/mockgen -source=gems.go -destination=mocks/mock_gems.go -package=mocks
type GemInspector interface {
	// GemVersion returns the locked version of the named gem, or ok=false if the gem is not in the bundle.
	GemVersion(buildDir, name string) (version domain.GemVersion, ok bool, err error)

	// HasGem reports whether the named gem is in the bundle.
	HasGem(buildDir, name string) (bool, error)
}
