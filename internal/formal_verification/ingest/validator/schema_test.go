package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/ingest/parser"
)

func TestValidate(t *testing.T) {
	t.Run("valid document", func(t *testing.T) {
		s, err := parser.ParseYAML("../parser/testdata/shop.yaml")
		require.NoError(t, err)
		assert.NoError(t, Validate(s))
	})

	t.Run("nil", func(t *testing.T) {
		assert.ErrorIs(t, Validate(nil), ErrInvalidSpec)
	})

	t.Run("missing name and components", func(t *testing.T) {
		err := Validate(&parser.ArchSpec{})
		require.ErrorIs(t, err, ErrInvalidSpec)
		assert.Contains(t, err.Error(), "Name: required")
		assert.Contains(t, err.Error(), "Components: required")
	})

	t.Run("nested fields are checked", func(t *testing.T) {
		s := &parser.ArchSpec{
			Name:       "x",
			Components: []parser.ComponentSpec{{Name: "a"}},
			Connections: []parser.ConnectionSpec{
				{Name: "c", From: "a"},
			},
			Properties: []parser.PropertySpec{
				{Name: "p", Kind: "safety", Expression: "component_active(a)", Priority: "urgent"},
			},
		}
		err := Validate(s)
		require.ErrorIs(t, err, ErrInvalidSpec)
		assert.Contains(t, err.Error(), "Connections[0].To: required")
		assert.Contains(t, err.Error(), "Properties[0].Priority: oneof=")
	})
}
