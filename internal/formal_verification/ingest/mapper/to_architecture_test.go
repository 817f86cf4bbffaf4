package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/domain"
	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/ingest/parser"
	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/typesystem"
)

func load(t *testing.T) *parser.ArchSpec {
	t.Helper()
	s, err := parser.ParseYAML("../parser/testdata/shop.yaml")
	require.NoError(t, err)
	return s
}

func TestToArchitecture(t *testing.T) {
	a := ToArchitecture(load(t))
	require.NoError(t, a.Validate())

	assert.Equal(t, "shop", a.Name)
	assert.Equal(t, "platform", a.Metadata["owner"])

	orders, ok := a.Component("orders")
	require.True(t, ok)
	assert.Equal(t, domain.ComponentService, orders.Kind)
	require.NotNil(t, orders.Implementation)
	assert.Equal(t, "go", orders.Implementation.Language)

	api, ok := orders.ProvidedInterface("OrderApi")
	require.True(t, ok)
	assert.Equal(t, domain.InterfaceREST, api.Kind)
	place, ok := api.Method("place")
	require.True(t, ok)
	require.NotNil(t, place.Returns)
	assert.Equal(t, "OrderId", *place.Returns)
	assert.True(t, place.Parameters[0].Required)
	assert.False(t, place.Parameters[1].Required)
	require.NotNil(t, place.Parameters[1].Default)

	payments, _ := a.Component("payments")
	req, ok := payments.RequiredInterface("OrderApi")
	require.True(t, ok)
	assert.Equal(t, domain.InterfaceREST, req.Kind)
	assert.True(t, req.Methods[0].Parameters[1].Required)
	assert.Nil(t, payments.Implementation)

	conn, ok := a.Connection("order-feed")
	require.True(t, ok)
	assert.Equal(t, "orders", conn.Source)
	assert.Equal(t, domain.ConnectionHTTP, conn.Kind)

	require.Len(t, a.Properties, 2)
	assert.Equal(t, domain.PropertySafety, a.Properties[0].Kind)
	assert.Equal(t, domain.PriorityHigh, a.Properties[0].Priority)
	assert.Equal(t, domain.PropertyLiveness, a.Properties[1].Kind)
	assert.Equal(t, domain.PriorityMedium, a.Properties[1].Priority)
}

func TestToArchitecture_Defaults(t *testing.T) {
	a := ToArchitecture(&parser.ArchSpec{
		Name: "d",
		Components: []parser.ComponentSpec{
			{Name: "q", Kind: "message-queue"},
			{Name: "s"},
		},
		Connections: []parser.ConnectionSpec{{Name: "c", From: "s", To: "q"}},
	})

	assert.Equal(t, domain.ComponentMessageQueue, a.Components[0].Kind)
	assert.Equal(t, domain.ComponentService, a.Components[1].Kind)
	assert.Equal(t, domain.ConnectionHTTP, a.Connections[0].Kind)
	assert.Empty(t, a.Properties)
}

func TestToTypeSystem(t *testing.T) {
	ts := ToTypeSystem(load(t))

	id, ok := ts.Lookup("OrderId")
	require.True(t, ok)
	assert.Equal(t, typesystem.KindPrimitive, id.Kind)
	assert.True(t, typesystem.Equal(typesystem.String, id.Type))

	order, ok := ts.Lookup("Order")
	require.True(t, ok)
	assert.Equal(t, "{id: string, total: float}", order.Type.String())
	assert.True(t, typesystem.IsWellFormed(ts.Parse("Order")))
}
