package progrock_test

import (
	"testing"
	"time"

	"github.com/Prelang/prelang-buildpack/internal/adapters/telemetry/progrock"
	"github.com/Prelang/prelang-buildpack/internal/core/ports/mocks"
	"github.com/stretchr/testify/require"
	vprogrock "github.com/vito/progrock"
	"go.uber.org/mock/gomock"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func TestJournal_LogsCompletedVertexOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info("step completed", "step", "assets:precompile", "elapsed", "2s").Times(1)

	journal := progrock.NewJournal(log)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, journal.WriteStatus(&vprogrock.StatusUpdate{
		Vertexes: []*vprogrock.Vertex{{Id: "1", Name: "assets:precompile", Started: timestamppb.New(start)}},
	}))

	done := &vprogrock.StatusUpdate{
		Vertexes: []*vprogrock.Vertex{{
			Id:        "1",
			Name:      "assets:precompile",
			Started:   timestamppb.New(start),
			Completed: timestamppb.New(start.Add(2 * time.Second)),
		}},
	}
	require.NoError(t, journal.WriteStatus(done))
	require.NoError(t, journal.WriteStatus(done))
}

func TestJournal_ReportsFailureAndCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn("step failed", "step", "compile", "elapsed", gomock.Any(), "error", "boom").Times(1)
	log.EXPECT().Info("step cached", "step", "cache.load").Times(1)

	journal := progrock.NewJournal(log)
	now := timestamppb.Now()
	msg := "boom"

	require.NoError(t, journal.WriteStatus(&vprogrock.StatusUpdate{
		Vertexes: []*vprogrock.Vertex{
			{Id: "1", Name: "compile", Started: now, Completed: now, Error: &msg},
			{Id: "2", Name: "cache.load", Completed: now, Cached: true},
		},
	}))
	require.NoError(t, journal.Close())
}
