package wiring_test

import (
	"context"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/require"
	"go.trai.ch/repin/internal/app"
	_ "go.trai.ch/repin/internal/wiring"
)

// TestComponentsResolve executes the graft graph end to end and verifies
// every registered node can be constructed.
func TestComponentsResolve(t *testing.T) {
	components, _, err := graft.ExecuteFor[*app.Components](context.Background())
	require.NoError(t, err)
	require.NotNil(t, components.App)
	require.NotNil(t, components.Logger)
	require.NotNil(t, components.Store)
}
