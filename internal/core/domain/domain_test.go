package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/Prelang/prelang-buildpack/internal/core/domain"
)

func TestSlot_Validate(t *testing.T) {
	tests := []struct {
		name    string
		slot    domain.Slot
		wantErr bool
	}{
		{"relative path", domain.NewSlot("public/assets"), false},
		{"named", domain.Slot{Name: "assets", Path: "tmp/cache/assets"}, false},
		{"empty name", domain.Slot{Path: "public/assets"}, true},
		{"empty path", domain.Slot{Name: "assets"}, true},
		{"dot", domain.NewSlot("."), true},
		{"absolute", domain.NewSlot("/etc"), true},
		{"escapes root", domain.NewSlot("../outside"), true},
		{"escapes after clean", domain.NewSlot("public/../../outside"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.slot.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrInvalidSlot)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestSlot_WorkingPath(t *testing.T) {
	slot := domain.NewSlot("tmp/cache/assets")
	assert.Equal(t, filepath.Join("/app", "tmp", "cache", "assets"), slot.WorkingPath("/app"))
	assert.Equal(t, "tmp/cache/assets", slot.String())
}

func TestPrecompilePlan_Validate(t *testing.T) {
	plan := domain.PrecompilePlan{
		Slots:     []domain.Slot{domain.NewSlot("public/assets"), domain.NewSlot("tmp/cache/assets")},
		EvictSlot: "tmp/cache/assets",
		Budget:    domain.DefaultAssetsCacheLimit,
	}
	require.NoError(t, plan.Validate())

	slot, ok := plan.Slot("public/assets")
	assert.True(t, ok)
	assert.Equal(t, "public/assets", slot.Path)

	plan.EvictSlot = "vendor/cache"
	require.ErrorIs(t, plan.Validate(), domain.ErrSlotNotFound)

	plan.EvictSlot = ""
	plan.Budget = -1
	require.ErrorIs(t, plan.Validate(), domain.ErrInvalidBudget)
}

func TestFrameworkVersion_String(t *testing.T) {
	assert.Equal(t, "rails3", domain.FrameworkRails3.String())
	assert.Equal(t, "rails4", domain.FrameworkRails4.String())
	assert.Equal(t, "unknown", domain.FrameworkUnknown.String())
}

func TestLogLevel_String(t *testing.T) {
	assert.Equal(t, "DEBUG", domain.LogLevelDebug.String())
	assert.Equal(t, "WARN", domain.LogLevelWarn.String())
	assert.Equal(t, "INFO", domain.LogLevel(42).String())
}
