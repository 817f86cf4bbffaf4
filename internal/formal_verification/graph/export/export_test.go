package export

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/domain"
	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/modelcheck"
)

func shop() *domain.Architecture {
	a := domain.NewArchitecture("shop", "")
	a.AddComponent(&domain.Component{Name: "orders", Kind: domain.ComponentService})
	a.AddComponent(&domain.Component{Name: "orders-db", Kind: domain.ComponentDatabase})
	a.AddConnection(&domain.Connection{Name: "persist", Source: "orders", Target: "orders-db", Kind: domain.ConnectionDatabase})
	return a
}

func TestArchitectureDOT(t *testing.T) {
	dot := ArchitectureDOT(shop(), `the "shop"`)

	assert.True(t, strings.HasPrefix(dot, "digraph G {\n  rankdir=LR;"))
	assert.True(t, strings.HasSuffix(dot, "}\n"))
	assert.Contains(t, dot, `label="the \"shop\""`)
	assert.Contains(t, dot, `"orders-db" [label="orders-db\n(database)", shape=cylinder`)
	assert.Contains(t, dot, `"orders" -> "orders-db" [label="persist [database]"];`)
}

func TestStateSpaceDOT(t *testing.T) {
	m := modelcheck.New(modelcheck.DefaultConfig())
	require.NoError(t, m.BuildStateSpace(context.Background(), shop()))

	dot := StateSpaceDOT(m.StateSpace(), m.Transitions(), "", []string{"initial_activated_orders"})

	assert.Contains(t, dot, `"initial" [label="initial", peripheries=2];`)
	assert.Contains(t, dot, `"initial_activated_orders" [label="initial_activated_orders", style="filled", fillcolor="#f8d7da"];`)
	assert.Contains(t, dot, `"initial" -> "initial_connected_persist" [label="connected_persist"];`)
	assert.Equal(t, m.Transitions().Count(), strings.Count(dot, " -> "))
	assert.NotContains(t, dot, "labelloc")

	t.Run("unexpanded states are dashed", func(t *testing.T) {
		cfg := modelcheck.DefaultConfig()
		cfg.MaxStates = 2
		small := modelcheck.New(cfg)
		require.NoError(t, small.BuildStateSpace(context.Background(), shop()))

		dot := StateSpaceDOT(small.StateSpace(), small.Transitions(), "", nil)
		assert.Contains(t, dot, `"initial_activated_orders" [label="initial_activated_orders", style="dashed"];`)
	})

	t.Run("nil space", func(t *testing.T) {
		assert.Equal(t, "digraph G {\n  rankdir=LR;\n  node [shape=box, style=rounded];\n}\n", StateSpaceDOT(nil, nil, "", nil))
	})
}

func TestWriters(t *testing.T) {
	dir := t.TempDir()
	r := domain.NewVerificationResult()
	r.AddWarning("careful")

	jp := filepath.Join(dir, "r.json")
	require.NoError(t, WriteJSON(jp, r))
	b, err := os.ReadFile(jp)
	require.NoError(t, err)
	var back domain.VerificationResult
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, []string{"careful"}, back.Warnings)

	yp := filepath.Join(dir, "r.yaml")
	require.NoError(t, WriteYAML(yp, r))
	b, err = os.ReadFile(yp)
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(b, &doc))
	assert.Equal(t, true, doc["success"])

	t.Run("text creates parent dirs", func(t *testing.T) {
		p := filepath.Join(dir, "nested", "g.dot")
		require.NoError(t, WriteText(p, "digraph G {}\n"))
		b, err := os.ReadFile(p)
		require.NoError(t, err)
		assert.Equal(t, "digraph G {}\n", string(b))
	})
}

func TestRenderDOT_MissingBinary(t *testing.T) {
	err := RenderDOT(context.Background(), "digraph G {}", filepath.Join(t.TempDir(), "g.svg"), "", "definitely-not-a-graphviz-binary")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dot binary not found")
}
