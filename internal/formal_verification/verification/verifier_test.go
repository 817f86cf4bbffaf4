package verification

import (
	"context"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/domain"
	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/modelcheck"
)

func shop() *domain.Architecture {
	a := domain.NewArchitecture("shop", "orders and payments")
	api := &domain.Interface{Name: "Payments", Kind: domain.InterfaceREST, Methods: []*domain.Method{{
		Name:       "charge",
		Parameters: []*domain.Parameter{{Name: "amount", Type: "float", Required: true}},
		Returns:    domain.StringPtr("bool"),
	}}}
	a.AddComponent(&domain.Component{Name: "orders", Kind: domain.ComponentService, Required: []*domain.Interface{api}})
	a.AddComponent(&domain.Component{Name: "payments", Kind: domain.ComponentService, Provided: []*domain.Interface{api}})
	a.AddConnection(&domain.Connection{Name: "pay", Source: "payments", Target: "orders", Kind: domain.ConnectionHTTP})
	a.AddProperty(&domain.Property{Name: "orders-up", Kind: domain.PropertySafety, Expression: "component_active(orders)", Priority: domain.PriorityHigh})
	a.AddProperty(&domain.Property{Name: "eventually-paid", Kind: domain.PropertyLiveness, Expression: "eventually(connection_established(pay))"})
	a.AddProperty(&domain.Property{Name: "fast", Kind: domain.PropertyPerformance, Expression: "p99 < 200ms"})
	return a
}

func codes(r domain.VerificationResult) []string {
	out := []string{}
	for _, e := range r.Errors {
		out = append(out, e.Code)
	}
	return out
}

func TestParseStrategy(t *testing.T) {
	s, err := ParseStrategy("type_system")
	require.NoError(t, err)
	assert.Equal(t, TypeSystem, s)
	assert.NotEmpty(t, s.Description())

	_, err = ParseStrategy("performance")
	assert.ErrorIs(t, err, ErrUnknownStrategy)

	names := []string{}
	for _, s := range All() {
		names = append(names, s.Name())
	}
	assert.Equal(t, []string{"basic", "dependency", "model_checking", "type_system"}, names)
}

func TestVerifier_Verify(t *testing.T) {
	ctx := context.Background()
	v := NewVerifier()

	t.Run("invalid architecture fails fast", func(t *testing.T) {
		a := shop()
		a.AddComponent(&domain.Component{Name: "orders"})
		_, err := v.Verify(ctx, a, Basic)
		assert.ErrorIs(t, err, domain.ErrDuplicateComponentName)
	})

	t.Run("basic", func(t *testing.T) {
		a := shop()
		a.AddConnection(&domain.Connection{Name: "loop", Source: "orders", Target: "orders"})
		a.AddProperty(&domain.Property{Name: "blank", Kind: domain.PropertySafety})

		r, err := v.Verify(ctx, a, Basic)
		require.NoError(t, err)
		assert.Equal(t, []string{domain.CodeEmptyPropertyExpr}, codes(r))
		assert.Equal(t, []string{"self-connection detected: loop"}, r.Warnings)
		assert.Equal(t, "4", r.Details["total_properties"])
	})

	t.Run("basic flags duplicate provided interfaces", func(t *testing.T) {
		a := shop()
		payments, ok := a.Component("payments")
		require.True(t, ok)
		payments.Provided = append(payments.Provided, &domain.Interface{Name: "Payments", Kind: domain.InterfaceREST})

		r, err := v.Verify(ctx, a, Basic)
		require.NoError(t, err)
		assert.False(t, r.Success)
		assert.Equal(t, []string{domain.CodeDuplicateInterfaceName}, codes(r))
		assert.Equal(t, "duplicate interface name 'Payments' in component 'payments'", r.Errors[0].Message)
	})

	t.Run("type system", func(t *testing.T) {
		r, err := v.Verify(ctx, shop(), TypeSystem)
		require.NoError(t, err)
		assert.True(t, r.Success)
		assert.Equal(t, "2", r.Details["components_checked"])
	})

	t.Run("model checking", func(t *testing.T) {
		r, err := v.Verify(ctx, shop(), ModelChecking)
		require.NoError(t, err)
		assert.False(t, r.Success)
		assert.Equal(t, []string{domain.CodeSafetyViolated}, codes(r))
		assert.Equal(t, "initial", *r.Errors[0].Location)
		assert.Equal(t, "2", r.Details["properties_checked"])
		assert.Equal(t, "1", r.Details["properties_violated"])
		assert.Equal(t, "1", r.Details["properties_skipped"])
		assert.Equal(t, "16", r.Details["total_states"])
		assert.Positive(t, r.VerificationTime)
	})

	t.Run("model checking reports unparseable properties", func(t *testing.T) {
		a := domain.NewArchitecture("tiny", "")
		a.AddComponent(&domain.Component{Name: "A"})
		a.AddProperty(&domain.Property{Name: "bad", Kind: domain.PropertySafety, Expression: "always(A)"})
		a.AddProperty(&domain.Property{Name: "good", Kind: domain.PropertyInvariant, Expression: "!component_active(B)"})

		r, err := v.Verify(ctx, a, ModelChecking)
		require.NoError(t, err)
		assert.Equal(t, []string{domain.CodeInvalidProperty}, codes(r))
		assert.Equal(t, "Property: bad", *r.Errors[0].Location)
		assert.Equal(t, "1", r.Details["properties_checked"])
	})

	t.Run("model checking within a small budget is inconclusive", func(t *testing.T) {
		small := NewVerifier()
		small.ModelCheck = modelcheck.DefaultConfig()
		small.ModelCheck.MaxStates = 2

		a := shop()
		a.Properties = a.Properties[1:2]
		r, err := small.Verify(ctx, a, ModelChecking)
		require.NoError(t, err)
		assert.False(t, r.Success)
		assert.Empty(t, r.Errors)
		assert.Len(t, r.Warnings, 1)
		assert.Equal(t, "true", r.Details["truncated"])
		assert.Equal(t, "max_states", r.Details["truncate_reason"])
		assert.Equal(t, "false", r.Details["interrupted"])
	})

	t.Run("dependency cycles", func(t *testing.T) {
		a := shop()
		a.AddConnection(&domain.Connection{Name: "notify", Source: "orders", Target: "payments"})
		r, err := v.Verify(ctx, a, Dependency)
		require.NoError(t, err)
		assert.Equal(t, []string{domain.CodeCircularDependency}, codes(r))
		assert.Contains(t, r.Errors[0].Message, "orders")
		assert.Contains(t, r.Errors[0].Message, "payments")
		assert.Equal(t, "1", r.Details["cycles"])
	})

	t.Run("coupling and bottleneck warnings", func(t *testing.T) {
		a := domain.NewArchitecture("hub", "")
		a.AddComponent(&domain.Component{Name: "hub"})
		a.AddComponent(&domain.Component{Name: "leaf"})
		for _, n := range []string{"c1", "c2", "c3", "c4", "c5", "c6", "c7", "c8", "c9", "c10", "c11"} {
			a.AddConnection(&domain.Connection{Name: n, Source: "leaf", Target: "hub"})
		}
		r, err := v.Verify(ctx, a, Dependency)
		require.NoError(t, err)
		assert.True(t, r.Success)
		assert.Equal(t, []string{
			"high coupling detected: average 5.50 connections per component",
			"potential bottleneck: component 'hub' has 11 connections",
			"potential bottleneck: component 'leaf' has 11 connections",
		}, r.Warnings)
	})

	t.Run("unknown strategy", func(t *testing.T) {
		_, err := v.Verify(ctx, shop(), Strategy{Kind: "performance"})
		assert.ErrorIs(t, err, ErrUnknownStrategy)
	})
}

func TestVerifier_VerifyAll(t *testing.T) {
	v := NewVerifier()
	strategies := []Strategy{TypeSystem, Basic, {Kind: "nope"}, ModelChecking, Dependency}

	results, err := v.VerifyAll(context.Background(), shop(), strategies)
	require.NoError(t, err)
	require.Len(t, results, 5)

	names := []string{}
	for _, r := range results {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"type_system", "basic", "nope", "model_checking", "dependency"}, names)
	assert.True(t, results[0].Result.Success)
	assert.Equal(t, []string{domain.CodeVerificationFailed}, codes(results[2].Result))
	assert.Equal(t, []string{domain.CodeSafetyViolated}, codes(results[3].Result))

	t.Run("defaults to every strategy", func(t *testing.T) {
		all, err := v.VerifyAll(context.Background(), shop(), nil)
		require.NoError(t, err)
		assert.Len(t, all, 4)
	})

	t.Run("more strategies than workers keep their order", func(t *testing.T) {
		n := 2*runtime.GOMAXPROCS(0) + 1
		many := make([]Strategy, 0, n)
		for i := range n {
			if i%2 == 0 {
				many = append(many, Basic)
			} else {
				many = append(many, Dependency)
			}
		}
		got, err := v.VerifyAll(context.Background(), shop(), many)
		require.NoError(t, err)
		require.Len(t, got, n)
		for i, r := range got {
			assert.Equal(t, many[i].Name(), r.Name)
		}
	})

	t.Run("invalid architecture", func(t *testing.T) {
		a := shop()
		a.AddConnection(&domain.Connection{Name: "ghost", Source: "orders", Target: "nobody"})
		_, err := v.VerifyAll(context.Background(), a, nil)
		assert.ErrorIs(t, err, domain.ErrInvalidComponentReference)
	})
}

func TestCheckProperties(t *testing.T) {
	mr, err := CheckProperties(context.Background(), modelcheck.DefaultConfig(), shop())
	require.NoError(t, err)

	require.Len(t, mr.Properties, 3)
	safety := mr.Properties[0]
	assert.Equal(t, "orders-up", safety.Property)
	require.NotNil(t, safety.Result)
	assert.Equal(t, modelcheck.VerdictViolated, safety.Result.Verdict)
	assert.Equal(t, "initial", safety.Result.ViolatingState())

	live := mr.Properties[1]
	require.NotNil(t, live.Result)
	assert.Equal(t, domain.PropertyLiveness, live.Kind)

	perf := mr.Properties[2]
	assert.True(t, perf.Skipped)
	assert.Nil(t, perf.Result)

	assert.Equal(t, 16, mr.Space.Len())
	assert.Equal(t, 15, mr.Transitions.Count())
	assert.False(t, mr.Result.Success)
}
