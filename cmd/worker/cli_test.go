package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/modelcheck"
	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/report"
)

const shopFile = "../../internal/formal_verification/ingest/parser/testdata/shop.yaml"

func runCLI(ctx context.Context, args ...string) (string, error) {
	cmd := newRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(append([]string{"--no-color"}, args...))
	err := cmd.ExecuteContext(ctx)
	return buf.String(), err
}

func TestTypecheckCmd(t *testing.T) {
	out, err := runCLI(context.Background(), "typecheck", shopFile)
	require.NoError(t, err)
	assert.Contains(t, out, "PASS type_system")

	t.Run("json", func(t *testing.T) {
		out, err := runCLI(context.Background(), "typecheck", "--json", shopFile)
		require.NoError(t, err)
		assert.Contains(t, out, `"success": true`)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := runCLI(context.Background(), "typecheck", filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.NotErrorIs(t, err, errVerificationFailed)
	})
}

func TestModelcheckCmd(t *testing.T) {
	out, err := runCLI(context.Background(), "modelcheck", shopFile)
	assert.ErrorIs(t, err, errVerificationFailed)
	assert.Contains(t, out, "VIOLATED orders-up (SAFETY)")
	assert.Contains(t, out, "counterexample: initial -> initial_activated_payments")
	assert.Contains(t, out, "FAIL model_checking")

	t.Run("invalid identity", func(t *testing.T) {
		_, err := runCLI(context.Background(), "--identity", "bogus", "modelcheck", shopFile)
		assert.ErrorIs(t, err, modelcheck.ErrInvalidConfig)
	})
}

func TestVerifyCmd(t *testing.T) {
	ctx := context.Background()

	t.Run("text", func(t *testing.T) {
		out, err := runCLI(ctx, "verify", "-s", "type_system,dependency", shopFile)
		require.NoError(t, err)
		assert.Contains(t, out, "Architecture shop")
		assert.Contains(t, out, "PASS dependency")
		assert.Contains(t, out, "2/2 strategies passed")
	})

	t.Run("all strategies fail on the safety property", func(t *testing.T) {
		out, err := runCLI(ctx, "verify", shopFile)
		assert.ErrorIs(t, err, errVerificationFailed)
		assert.Contains(t, out, "FAIL model_checking")
	})

	t.Run("markdown", func(t *testing.T) {
		out, err := runCLI(ctx, "verify", "-s", "basic", "-o", "md", shopFile)
		require.NoError(t, err)
		assert.Contains(t, out, "# Verification Report: shop")
	})

	t.Run("json to file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "report.json")
		out, err := runCLI(ctx, "verify", "-s", "type_system", "-o", "json", "--out", path, shopFile)
		require.NoError(t, err)
		assert.Contains(t, out, "report written to")

		b, err := os.ReadFile(path)
		require.NoError(t, err)
		var rep report.Report
		require.NoError(t, json.Unmarshal(b, &rep))
		assert.Equal(t, "shop", rep.Architecture)
		assert.Len(t, rep.Results, 1)
		assert.NotEmpty(t, rep.Fingerprint)
	})

	t.Run("yaml", func(t *testing.T) {
		out, err := runCLI(ctx, "verify", "-s", "basic", "-o", "yaml", shopFile)
		require.NoError(t, err)
		assert.Contains(t, out, "architecture: shop")
	})

	t.Run("bad flags", func(t *testing.T) {
		_, err := runCLI(ctx, "verify", "-s", "performance", shopFile)
		assert.Error(t, err)
		_, err = runCLI(ctx, "verify", "-o", "html", "-s", "basic", shopFile)
		assert.ErrorContains(t, err, "unknown format")
		_, err = runCLI(ctx, "verify", "--out", "x.txt", "-s", "basic", shopFile)
		assert.ErrorContains(t, err, "--out needs")
	})
}

func TestDotCmd(t *testing.T) {
	ctx := context.Background()

	t.Run("architecture", func(t *testing.T) {
		out, err := runCLI(ctx, "dot", shopFile)
		require.NoError(t, err)
		assert.Contains(t, out, "digraph G {")
		assert.Contains(t, out, `label="shop"`)
		assert.Contains(t, out, "order-feed")
	})

	t.Run("state space with counterexample", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "space.dot")
		_, err := runCLI(ctx, "dot", "--state-space", "--highlight", "orders-up", "--out", path, shopFile)
		require.NoError(t, err)

		b, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(b), "initial_activated_payments")
		assert.Contains(t, string(b), "#f8d7da")
	})

	t.Run("flag validation", func(t *testing.T) {
		_, err := runCLI(ctx, "dot", "--highlight", "orders-up", shopFile)
		assert.ErrorContains(t, err, "--state-space")
		_, err = runCLI(ctx, "dot", "--render", "svg", shopFile)
		assert.ErrorContains(t, err, "--out")
		_, err = runCLI(ctx, "dot", "--state-space", "--highlight", "ghost", shopFile)
		assert.ErrorContains(t, err, "unknown property")
	})
}

func TestWatchCmd(t *testing.T) {
	t.Run("runs once and stops with the context", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
		defer cancel()

		out, err := runCLI(ctx, "watch", "--schedule", "@every 1h", "-s", "type_system", shopFile)
		require.NoError(t, err)
		assert.Contains(t, out, "PASS ")
		assert.Contains(t, out, "shop: 1/1 strategies passed")
		assert.Contains(t, out, "watching")
	})

	t.Run("invalid schedule", func(t *testing.T) {
		_, err := runCLI(context.Background(), "watch", "--schedule", "every now and then", shopFile)
		assert.ErrorContains(t, err, "invalid schedule")
	})
}
