package cache

import (
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/Prelang/prelang-buildpack/internal/adapters/cas"
	"github.com/Prelang/prelang-buildpack/internal/core/domain"
	"github.com/Prelang/prelang-buildpack/internal/core/ports"
	"github.com/go-git/go-billy/v5/osfs"
	"go.trai.ch/zerr"
)

var _ ports.CacheOpener = (*Opener)(nil)

// Opener binds Stores to cache directories on the host file system.
// Stores opened on the same cache directory share slot locks.
type Opener struct {
	logger ports.Logger
	opts   []Option

	mu    sync.Mutex
	locks map[string]*slotLocks
}

// NewOpener creates a new Opener. The options are applied to every Store it opens.
func NewOpener(logger ports.Logger, opts ...Option) *Opener {
	return &Opener{
		logger: logger,
		opts:   opts,
		locks:  make(map[string]*slotLocks),
	}
}

// Open returns a BuildCache persisting slots of buildDir under cacheDir.
func (o *Opener) Open(buildDir, cacheDir string) (ports.BuildCache, error) {
	abs, err := filepath.Abs(cacheDir)
	if err != nil {
		return nil, errors.Join(domain.ErrCacheStorage, zerr.With(zerr.Wrap(err, "failed to resolve cache directory"), "path", cacheDir))
	}
	if err := os.MkdirAll(abs, 0o750); err != nil {
		return nil, errors.Join(domain.ErrCacheStorage, zerr.With(zerr.Wrap(err, "failed to create cache directory"), "path", abs))
	}

	fsys := osfs.New(abs)
	ledger, err := cas.NewStore(fsys, cas.DefaultLedgerPath)
	if err != nil {
		return nil, errors.Join(domain.ErrCacheStorage, zerr.With(err, "path", abs))
	}

	opts := append([]Option{withLocks(o.locksFor(abs))}, o.opts...)
	return NewStore(fsys, buildDir, ledger, o.logger, opts...), nil
}

func (o *Opener) locksFor(cacheDir string) *slotLocks {
	o.mu.Lock()
	defer o.mu.Unlock()

	l, ok := o.locks[cacheDir]
	if !ok {
		l = newSlotLocks()
		o.locks[cacheDir] = l
	}
	return l
}
