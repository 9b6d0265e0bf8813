// Package cache persists build slots in a go-billy filesystem between builds.
package cache

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/Prelang/prelang-buildpack/internal/adapters/cas"
	fsadapter "github.com/Prelang/prelang-buildpack/internal/adapters/fs"
	"github.com/Prelang/prelang-buildpack/internal/core/domain"
	"github.com/Prelang/prelang-buildpack/internal/core/ports"
	"github.com/cespare/xxhash/v2"
	"github.com/dustin/go-humanize"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// DefaultCopyWorkers bounds the number of files copied concurrently within one slot.
const DefaultCopyWorkers = 8

var _ ports.BuildCache = (*Store)(nil)

// Store implements ports.BuildCache. Slots are copied between the working tree on the host
// file system and a persistent billy filesystem.
type Store struct {
	fs       billy.Filesystem
	buildDir string
	ledger   ports.SlotLedger
	locks    *slotLocks
	walker   *fsadapter.Walker
	logger   ports.Logger
	workers  int
	now      func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithCopyWorkers overrides DefaultCopyWorkers.
func WithCopyWorkers(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.workers = n
		}
	}
}

// WithClock overrides the clock used to stamp ledger records.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func withLocks(l *slotLocks) Option {
	return func(s *Store) {
		s.locks = l
	}
}

// NewStore creates a Store that copies slots between buildDir and fsys.
func NewStore(fsys billy.Filesystem, buildDir string, ledger ports.SlotLedger, logger ports.Logger, opts ...Option) *Store {
	s := &Store{
		fs:       fsys,
		buildDir: buildDir,
		ledger:   ledger,
		walker:   fsadapter.NewWalker(),
		logger:   logger,
		workers:  DefaultCopyWorkers,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.locks == nil {
		s.locks = newSlotLocks()
	}
	return s
}

type copyJob struct {
	rel  string
	info os.FileInfo
}

// Load copies the stored contents of slot into the working tree.
// Files already in the working tree are kept unless a stored file replaces them.
func (s *Store) Load(ctx context.Context, slot domain.Slot) error {
	if err := slot.Validate(); err != nil {
		return err
	}

	unlock := s.locks.lock(slot.Name)
	defer unlock()

	storedRoot := toStorePath(slot.Path)
	if _, err := s.fs.Stat(storedRoot); err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			s.logger.Debug("no stored copy of slot", "slot", slot.Name)
			return nil
		}
		return storageError(err, "failed to stat stored slot", slot, storedRoot)
	}

	record, err := s.ledger.Get(slot.Name)
	if err != nil {
		return storageError(err, "failed to read slot ledger", slot, storedRoot)
	}
	if record == nil {
		// A Store that did not finish leaves contents without a record.
		s.logger.Warn("discarding unrecorded slot contents", "slot", slot.Name, "path", storedRoot)
		if err := util.RemoveAll(s.fs, storedRoot); err != nil {
			return storageError(err, "failed to discard unrecorded slot", slot, storedRoot)
		}
		return nil
	}
	times := record.Times()

	workRoot := slot.WorkingPath(s.buildDir)
	var jobs []copyJob

	err = util.Walk(s.fs, storedRoot, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, relErr := filepath.Rel(storedRoot, p)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)

		if info.IsDir() {
			//nolint:gosec // Path is derived from a validated slot
			return os.MkdirAll(filepath.Join(workRoot, filepath.FromSlash(rel)), 0o750)
		}
		if info.Mode().IsRegular() {
			jobs = append(jobs, copyJob{rel: rel, info: info})
		}
		return nil
	})
	if err != nil {
		return storageError(err, "failed to walk stored slot", slot, storedRoot)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for _, job := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			src := path.Join(storedRoot, job.rel)
			dst := filepath.Join(workRoot, filepath.FromSlash(job.rel))
			if _, err := s.copyOut(src, dst, job.info); err != nil {
				return zerr.With(err, "file", job.rel)
			}

			atime, mtime := job.info.ModTime(), job.info.ModTime()
			if stored, ok := times[job.rel]; ok {
				atime, mtime = stored.AccessTime, stored.ModTime
			}
			if err := os.Chtimes(dst, atime, mtime); err != nil {
				return zerr.With(zerr.Wrap(err, "failed to restore file times"), "file", job.rel)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return storageError(err, "failed to load slot", slot, workRoot)
	}

	s.logger.Debug("loaded slot", "slot", slot.Name, "files", len(jobs))
	return nil
}

// Store replaces the stored contents of slot with the working tree contents and records
// the result in the ledger. A missing working directory stores an empty slot.
func (s *Store) Store(ctx context.Context, slot domain.Slot) error {
	if err := slot.Validate(); err != nil {
		return err
	}

	unlock := s.locks.lock(slot.Name)
	defer unlock()

	storedRoot := toStorePath(slot.Path)
	if err := s.ledger.Delete(slot.Name); err != nil {
		return storageError(err, "failed to update slot ledger", slot, storedRoot)
	}
	if err := util.RemoveAll(s.fs, storedRoot); err != nil {
		return storageError(err, "failed to clear stored slot", slot, storedRoot)
	}
	if err := s.fs.MkdirAll(storedRoot, 0o750); err != nil {
		return storageError(err, "failed to create stored slot", slot, storedRoot)
	}

	workRoot := slot.WorkingPath(s.buildDir)
	jobs, err := s.collectWorking(workRoot)
	if err != nil {
		return storageError(err, "failed to walk working slot", slot, workRoot)
	}

	record := domain.SlotRecord{
		Slot:    slot.Name,
		Path:    slot.Path,
		Entries: make([]domain.StoredFile, len(jobs)),
	}
	hashes := make([]uint64, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, job := range jobs {
		record.Entries[i] = domain.StoredFile{
			Path:       job.rel,
			Size:       job.info.Size(),
			AccessTime: fsadapter.AccessTime(job.info),
			ModTime:    job.info.ModTime(),
		}
		record.Bytes += job.info.Size()

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			src := filepath.Join(workRoot, filepath.FromSlash(job.rel))
			dst := path.Join(storedRoot, job.rel)
			sum, err := s.copyIn(src, dst, job.info)
			if err != nil {
				return zerr.With(err, "file", job.rel)
			}
			hashes[i] = sum
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return storageError(err, "failed to store slot", slot, storedRoot)
	}

	record.Files = len(jobs)
	record.Digest = digest(jobs, hashes)
	record.StoredAt = s.now()

	if err := s.ledger.Put(record); err != nil {
		return storageError(err, "failed to record stored slot", slot, storedRoot)
	}

	s.logger.Info("stored slot",
		"slot", slot.Name,
		"files", record.Files,
		"size", humanize.IBytes(uint64(record.Bytes)), //nolint:gosec // Sizes are non-negative
		"digest", record.Digest,
	)
	return nil
}

// Clear removes the stored contents of slot and forgets its ledger record.
func (s *Store) Clear(_ context.Context, slot domain.Slot) error {
	if err := slot.Validate(); err != nil {
		return err
	}

	unlock := s.locks.lock(slot.Name)
	defer unlock()

	storedRoot := toStorePath(slot.Path)
	if err := util.RemoveAll(s.fs, storedRoot); err != nil {
		return storageError(err, "failed to clear stored slot", slot, storedRoot)
	}
	if err := s.ledger.Delete(slot.Name); err != nil {
		return storageError(err, "failed to update slot ledger", slot, storedRoot)
	}
	return nil
}

// Purge clears every recorded slot, then removes whatever else the store holds apart from
// the ledger. Unrecorded contents are reported by their top-level directory name.
func (s *Store) Purge(ctx context.Context) ([]string, error) {
	records, err := s.ledger.List()
	if err != nil {
		return nil, errors.Join(domain.ErrCacheStorage, err)
	}

	var errs error
	purged := make([]string, 0, len(records))
	for _, r := range records {
		if err := s.Clear(ctx, domain.Slot{Name: r.Slot, Path: r.Path}); err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		purged = append(purged, r.Slot)
	}
	if errs != nil {
		return purged, errs
	}

	entries, err := s.fs.ReadDir(".")
	if err != nil {
		return purged, errors.Join(domain.ErrCacheStorage, zerr.Wrap(err, "failed to list cache directory"))
	}
	for _, entry := range entries {
		name := entry.Name()
		if name == cas.LedgerDir {
			continue
		}
		files, err := s.countStored(name)
		if err != nil {
			errs = errors.Join(errs, errors.Join(domain.ErrCacheStorage, zerr.With(err, "path", name)))
			continue
		}
		if err := util.RemoveAll(s.fs, name); err != nil {
			errs = errors.Join(errs, errors.Join(domain.ErrCacheStorage, zerr.With(zerr.Wrap(err, "failed to remove unrecorded contents"), "path", name)))
			continue
		}
		if files > 0 {
			s.logger.Warn("removed unrecorded cache contents", "path", name, "files", files)
			purged = append(purged, name)
		}
	}
	return purged, errs
}

func (s *Store) countStored(root string) (int, error) {
	files := 0
	err := util.Walk(s.fs, root, func(_ string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			files++
		}
		return nil
	})
	return files, err
}

// Status returns the ledger records of every stored slot.
func (s *Store) Status(_ context.Context) ([]domain.SlotRecord, error) {
	records, err := s.ledger.List()
	if err != nil {
		return nil, errors.Join(domain.ErrCacheStorage, err)
	}
	return records, nil
}

// collectWorking returns the files to copy from workRoot. It walks the tree the same way the
// eviction index does: links are followed, each physical file is stored once under its direct
// path when it has one, and empty directories are not kept.
func (s *Store) collectWorking(workRoot string) ([]copyJob, error) {
	if _, err := os.Stat(workRoot); err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var jobs []copyJob
	err := s.walker.Walk(workRoot, func(p string, info os.FileInfo) error {
		rel, err := filepath.Rel(workRoot, p)
		if err != nil {
			return err
		}
		jobs = append(jobs, copyJob{rel: filepath.ToSlash(rel), info: info})
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.SortFunc(jobs, func(a, b copyJob) int { return strings.Compare(a.rel, b.rel) })
	return jobs, nil
}

// copyIn copies a working tree file into the store and returns the xxhash of its content.
func (s *Store) copyIn(src, dst string, info os.FileInfo) (uint64, error) {
	in, err := os.Open(src) //nolint:gosec // Path is derived from a validated slot
	if err != nil {
		return 0, zerr.Wrap(err, "failed to open working file")
	}
	defer in.Close() //nolint:errcheck // Best effort close in defer

	if err := s.fs.MkdirAll(path.Dir(dst), 0o750); err != nil {
		return 0, zerr.Wrap(err, "failed to create stored directory")
	}
	out, err := s.fs.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return 0, zerr.Wrap(err, "failed to create stored file")
	}

	hasher := xxhash.New()
	if _, err := io.Copy(io.MultiWriter(out, hasher), in); err != nil {
		_ = out.Close()
		return 0, zerr.Wrap(err, "failed to copy file into store")
	}
	if err := out.Close(); err != nil {
		return 0, zerr.Wrap(err, "failed to close stored file")
	}
	return hasher.Sum64(), nil
}

// copyOut copies a stored file into the working tree, replacing any existing file.
func (s *Store) copyOut(src, dst string, info os.FileInfo) (int64, error) {
	in, err := s.fs.Open(src)
	if err != nil {
		return 0, zerr.Wrap(err, "failed to open stored file")
	}
	defer in.Close() //nolint:errcheck // Best effort close in defer

	perm := info.Mode().Perm()
	if perm == 0 {
		perm = 0o644
	}
	//nolint:gosec // Path is derived from a validated slot
	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
	if err != nil {
		return 0, zerr.Wrap(err, "failed to create working file")
	}

	n, err := io.Copy(out, in)
	if err != nil {
		_ = out.Close()
		return n, zerr.Wrap(err, "failed to copy file from store")
	}
	if err := out.Close(); err != nil {
		return n, zerr.Wrap(err, "failed to close working file")
	}
	return n, nil
}

// digest combines per-file hashes in path order so that it does not depend on copy scheduling.
func digest(jobs []copyJob, hashes []uint64) string {
	h := xxhash.New()
	var buf [8]byte
	for i, job := range jobs {
		_, _ = h.WriteString(job.rel)
		_, _ = h.Write([]byte{0})
		binary.LittleEndian.PutUint64(buf[:], hashes[i])
		_, _ = h.Write(buf[:])
	}
	return fmt.Sprintf("%016x", h.Sum64())
}

func toStorePath(p string) string {
	return path.Clean(filepath.ToSlash(p))
}

func storageError(err error, msg string, slot domain.Slot, p string) error {
	wrapped := zerr.With(zerr.With(zerr.Wrap(err, msg), "slot", slot.Name), "path", p)
	return errors.Join(domain.ErrCacheStorage, wrapped)
}
