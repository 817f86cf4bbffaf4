package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoServices() *Architecture {
	a := NewArchitecture("test", "a test architecture")
	a.AddComponent(&Component{Name: "A", Kind: ComponentService})
	a.AddComponent(&Component{Name: "B", Kind: ComponentService})
	return a
}

func TestArchitecture_Validate(t *testing.T) {
	t.Run("valid architecture", func(t *testing.T) {
		a := twoServices()
		a.AddConnection(&Connection{Name: "c1", Source: "A", Target: "B", Kind: ConnectionHTTP})
		require.NoError(t, a.Validate())
	})

	t.Run("duplicate component name", func(t *testing.T) {
		a := NewArchitecture("dup", "")
		a.AddComponent(&Component{Name: "A", Kind: ComponentService})
		a.AddComponent(&Component{Name: "A", Kind: ComponentDatabase})

		err := a.Validate()
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrDuplicateComponentName))

		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "A", verr.Name)
	})

	t.Run("duplicate connection name", func(t *testing.T) {
		a := twoServices()
		a.AddConnection(&Connection{Name: "c1", Source: "A", Target: "B"})
		a.AddConnection(&Connection{Name: "c1", Source: "B", Target: "A"})

		err := a.Validate()
		assert.ErrorIs(t, err, ErrDuplicateConnectionName)
		assert.Contains(t, err.Error(), "c1")
	})

	t.Run("dangling source", func(t *testing.T) {
		a := twoServices()
		a.AddConnection(&Connection{Name: "c1", Source: "Ghost", Target: "B"})

		err := a.Validate()
		assert.ErrorIs(t, err, ErrInvalidComponentReference)

		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "Ghost", verr.Name)
	})

	t.Run("dangling target", func(t *testing.T) {
		a := twoServices()
		a.AddConnection(&Connection{Name: "c1", Source: "A", Target: "Nowhere"})

		var verr *ValidationError
		require.True(t, errors.As(a.Validate(), &verr))
		assert.Equal(t, "Nowhere", verr.Name)
	})

	t.Run("component duplicates are reported before connection problems", func(t *testing.T) {
		a := NewArchitecture("order", "")
		a.AddComponent(&Component{Name: "A"})
		a.AddComponent(&Component{Name: "A"})
		a.AddConnection(&Connection{Name: "c", Source: "X", Target: "Y"})
		a.AddConnection(&Connection{Name: "c", Source: "X", Target: "Y"})

		assert.ErrorIs(t, a.Validate(), ErrDuplicateComponentName)
	})

	t.Run("nil elements are rejected", func(t *testing.T) {
		cases := []struct {
			name  string
			patch func(a *Architecture)
			at    string
		}{
			{"component", func(a *Architecture) { a.Components = append(a.Components, nil) }, "components[2]"},
			{"provided interface", func(a *Architecture) { a.Components[1].Provided = []*Interface{nil} }, "components[1].provided[0]"},
			{"connection", func(a *Architecture) { a.Connections = []*Connection{nil} }, "connections[0]"},
			{"property", func(a *Architecture) { a.Properties = []*Property{nil} }, "properties[0]"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				a := twoServices()
				tc.patch(a)

				err := a.Validate()
				require.ErrorIs(t, err, ErrNilElement)
				var verr *ValidationError
				require.True(t, errors.As(err, &verr))
				assert.Equal(t, tc.at, verr.Name)
			})
		}
	})

	t.Run("builders skip nil", func(t *testing.T) {
		a := twoServices()
		a.AddComponent(nil)
		a.AddConnection(nil)
		a.AddProperty(nil)

		assert.Len(t, a.Components, 2)
		assert.Empty(t, a.Connections)
		assert.Empty(t, a.Properties)
		require.NoError(t, a.Validate())
	})
}

func TestArchitecture_Lookups(t *testing.T) {
	a := twoServices()
	a.AddConnection(&Connection{Name: "c1", Source: "A", Target: "B"})
	a.AddProperty(&Property{Name: "p1", Kind: PropertySafety, Expression: "component_active(A)"})
	a.AddProperty(&Property{Name: "p2", Kind: PropertyLiveness, Expression: "eventually(component_active(B))"})

	c, ok := a.Component("B")
	require.True(t, ok)
	assert.Equal(t, "B", c.Name)

	_, ok = a.Component("Z")
	assert.False(t, ok)

	conn, ok := a.Connection("c1")
	require.True(t, ok)
	assert.Equal(t, "A", conn.Source)

	safety := a.PropertiesOfKind(PropertySafety)
	require.Len(t, safety, 1)
	assert.Equal(t, "p1", safety[0].Name)
}

func TestVerificationResult_AddError(t *testing.T) {
	r := NewVerificationResult()
	assert.True(t, r.Success)

	r.AddError(CodeInterfaceNotFound, "nothing matches", "Connection: c1")
	assert.False(t, r.Success)
	require.Len(t, r.Errors, 1)
	assert.Equal(t, SeverityError, r.Errors[0].Severity)
	require.NotNil(t, r.Errors[0].Location)
	assert.Equal(t, "Connection: c1", *r.Errors[0].Location)
	assert.True(t, r.HasCode(CodeInterfaceNotFound))
	assert.False(t, r.HasCode(CodeDuplicateMethod))
}
