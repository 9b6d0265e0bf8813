package wiring_test

import (
	"context"
	"testing"

	"github.com/Prelang/prelang-buildpack/internal/app"
	_ "github.com/Prelang/prelang-buildpack/internal/wiring"
	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/require"
)

// TestGraftResolvesComponents ensures every node the CLI needs is registered
// and that the dependency graph resolves without cycles.
func TestGraftResolvesComponents(t *testing.T) {
	components, _, err := graft.ExecuteFor[*app.Components](context.Background())
	require.NoError(t, err)
	require.NotNil(t, components.App)
	require.NotNil(t, components.Logger)
	require.NotNil(t, components.Console)
}
