package progrock

import (
	"sync"

	"github.com/Prelang/prelang-buildpack/internal/core/ports"
	"github.com/vito/progrock"
)

// Journal is a progrock.Writer that logs each vertex once when it completes.
type Journal struct {
	logger ports.Logger

	mu       sync.Mutex
	names    map[string]string
	finished map[string]bool
}

// NewJournal creates a Journal writing to logger.
func NewJournal(logger ports.Logger) *Journal {
	return &Journal{
		logger:   logger,
		names:    make(map[string]string),
		finished: make(map[string]bool),
	}
}

// WriteStatus records vertex updates from the recorder.
func (j *Journal) WriteStatus(update *progrock.StatusUpdate) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	for _, v := range update.Vertexes {
		if v.Name != "" {
			j.names[v.Id] = v.Name
		}
		if v.Completed == nil || j.finished[v.Id] {
			continue
		}
		j.finished[v.Id] = true
		j.report(v)
	}
	return nil
}

func (j *Journal) report(v *progrock.Vertex) {
	name := j.names[v.Id]
	var elapsed string
	if v.Started != nil {
		elapsed = v.Completed.AsTime().Sub(v.Started.AsTime()).String()
	}

	switch {
	case v.Error != nil:
		j.logger.Warn("step failed", "step", name, "elapsed", elapsed, "error", *v.Error)
	case v.Cached:
		j.logger.Info("step cached", "step", name)
	default:
		j.logger.Info("step completed", "step", name, "elapsed", elapsed)
	}
}

// Close forgets all recorded vertices.
func (j *Journal) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	clear(j.names)
	clear(j.finished)
	return nil
}
