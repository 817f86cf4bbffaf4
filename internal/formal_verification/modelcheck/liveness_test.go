package modelcheck

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/domain"
)

func TestCheckLivenessProperty(t *testing.T) {
	ctx := context.Background()
	m := built(t, DefaultConfig())

	t.Run("every path eventually activates A", func(t *testing.T) {
		res, err := m.CheckLivenessProperty(ctx, "eventually(component_active(A))")
		require.NoError(t, err)
		assert.Equal(t, VerdictHolds, res.Verdict)
		assert.True(t, res.PropertyHolds)
		assert.Equal(t, []string{"initial", "initial_activated_A"}, res.Witness)
	})

	t.Run("dead end outside the goal", func(t *testing.T) {
		res, err := m.CheckLivenessProperty(ctx, "eventually(component_active(A) && !connection_established(c1))")
		require.NoError(t, err)
		assert.Equal(t, VerdictViolated, res.Verdict)
		require.Len(t, res.Counterexample, 4)
		assert.Equal(t, InitialStateID, res.Counterexample[0])

		last := m.StateSpace().States[res.ViolatingState()]
		assert.Equal(t, ComponentActive, last.Components["A"])
		assert.Equal(t, ConnectionConnected, last.Connections["c1"].Status)

		vr := res.ToVerificationResult()
		require.Len(t, vr.Errors, 1)
		assert.Equal(t, domain.CodeLivenessViolated, vr.Errors[0].Code)
	})

	t.Run("truncated region is inconclusive", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.MaxStates = 4
		res, err := built(t, cfg).CheckLivenessProperty(ctx, "eventually(component_active(A) && component_active(B))")
		require.NoError(t, err)
		assert.Equal(t, VerdictInconclusive, res.Verdict)
	})

	t.Run("cancelled context is inconclusive", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		res, err := m.CheckLivenessProperty(cctx, "eventually(component_active(A))")
		require.NoError(t, err)
		assert.Equal(t, VerdictInconclusive, res.Verdict)
		assert.False(t, res.PropertyHolds)
		assert.Equal(t, "cancelled: context canceled", res.Reason)
		assert.True(t, res.Interrupted())
	})

	t.Run("timeout is inconclusive", func(t *testing.T) {
		short := built(t, DefaultConfig())
		short.cfg.Timeout = time.Nanosecond
		res, err := short.CheckLivenessProperty(ctx, "eventually(component_active(A) && component_active(B))")
		require.NoError(t, err)
		assert.Equal(t, VerdictInconclusive, res.Verdict)
		assert.Equal(t, "timeout", res.Reason)
		assert.Nil(t, res.Counterexample)
	})

	t.Run("grammar", func(t *testing.T) {
		_, err := m.CheckLivenessProperty(ctx, "component_active(A)")
		assert.ErrorIs(t, err, ErrInvalidProperty)
		_, err = m.CheckLivenessProperty(ctx, "eventually(component_active(A)")
		assert.ErrorIs(t, err, ErrInvalidProperty)
	})
}

func TestCheckLivenessProperty_Lasso(t *testing.T) {
	m := New(DefaultConfig())
	m.space = newStateSpace()
	m.trans = newTransitionSystem()

	for i, id := range []string{"initial", "x", "y"} {
		m.space.add(&State{
			ID:          id,
			Components:  map[string]ComponentStatus{"A": ComponentInactive},
			Connections: map[string]ConnectionState{},
		}, i)
		m.space.Expanded[id] = true
	}
	m.space.Initial = "initial"
	m.trans.add(Transition{Source: "initial", Target: "x", Label: "go"})
	m.trans.add(Transition{Source: "x", Target: "y", Label: "tick"})
	m.trans.add(Transition{Source: "y", Target: "x", Label: "tock"})

	res, err := m.CheckLivenessProperty(context.Background(), "eventually(component_active(A))")
	require.NoError(t, err)
	assert.Equal(t, VerdictViolated, res.Verdict)
	assert.Equal(t, []string{"initial", "x", "y", "x"}, res.Counterexample)
}

func TestParseProperty(t *testing.T) {
	e, err := ParseProperty("component_active(A) && !connection_established( c1 ) || component_active(B)")
	require.NoError(t, err)
	assert.Equal(t, OrExpr{
		L: AndExpr{L: ActiveAtom{Component: "A"}, R: NotExpr{X: EstablishedAtom{Connection: "c1"}}},
		R: ActiveAtom{Component: "B"},
	}, e)

	_, err = ParseProperty("component_active(A) order")
	assert.ErrorIs(t, err, ErrInvalidProperty)

	inner, err := ParseLiveness(" eventually ( connection_established(c1) ) ")
	require.NoError(t, err)
	assert.Equal(t, EstablishedAtom{Connection: "c1"}, inner)
}
