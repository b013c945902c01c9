package sales_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfsolarte/inventario-ventas/internal/application/dto"
	"github.com/jfsolarte/inventario-ventas/internal/domain"
	"github.com/jfsolarte/inventario-ventas/internal/domain/entity"
)

func TestDeleteSale_RestauraStockYBorraVenta(t *testing.T) {
	f := newSalesFixture().
		conProducto("p1", "Martillo", "5.00", 10).
		conCliente("c1", "Ana", "Gómez")

	created, err := f.createUC.CreateSale(context.Background(), "vendedor1", dto.CreateSaleRequest{
		CustomerID: "c1",
		Items:      []dto.SaleItemRequest{{ProductID: "p1", Quantity: 3}},
	})
	require.NoError(t, err)
	require.Equal(t, 7, f.store.products["p1"].Stock)

	err = f.deleteUC.DeleteSale(context.Background(), created.ID, "vendedor1")
	require.NoError(t, err)

	// Stock restaurado y venta (con items) eliminada
	assert.Equal(t, 10, f.store.products["p1"].Stock)
	assert.Empty(t, f.store.sales)
	assert.Empty(t, f.store.items)

	// El historial conserva ambos asientos: el descuento y la reversa
	require.Len(t, f.store.movements, 2)
	reversa := f.store.movements[1]
	assert.Equal(t, entity.MovementTypeIn, reversa.Type)
	assert.Equal(t, 3, reversa.Quantity)
	assert.Equal(t, "Reversión venta "+created.Code, reversa.Reason)
}

func TestDeleteSale_MultiLineaRestauraCadaProducto(t *testing.T) {
	f := newSalesFixture().
		conProducto("p1", "Martillo", "5.00", 10).
		conProducto("p2", "Clavos x100", "2.50", 20).
		conCliente("c1", "Ana", "Gómez")

	created, err := f.createUC.CreateSale(context.Background(), "vendedor1", dto.CreateSaleRequest{
		CustomerID: "c1",
		Items: []dto.SaleItemRequest{
			{ProductID: "p1", Quantity: 2},
			{ProductID: "p2", Quantity: 4},
		},
	})
	require.NoError(t, err)

	require.NoError(t, f.deleteUC.DeleteSale(context.Background(), created.ID, "vendedor1"))

	assert.Equal(t, 10, f.store.products["p1"].Stock)
	assert.Equal(t, 20, f.store.products["p2"].Stock)
	assert.Len(t, f.store.movements, 4, "dos descuentos y dos reversas")
}

func TestDeleteSale_SegundaVezNoAcreditaDoble(t *testing.T) {
	f := newSalesFixture().
		conProducto("p1", "Martillo", "5.00", 10).
		conCliente("c1", "Ana", "Gómez")

	created, err := f.createUC.CreateSale(context.Background(), "vendedor1", dto.CreateSaleRequest{
		CustomerID: "c1",
		Items:      []dto.SaleItemRequest{{ProductID: "p1", Quantity: 3}},
	})
	require.NoError(t, err)

	require.NoError(t, f.deleteUC.DeleteSale(context.Background(), created.ID, "vendedor1"))

	// Segundo intento sobre la misma venta: NotFound y el stock no se mueve
	err = f.deleteUC.DeleteSale(context.Background(), created.ID, "vendedor1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 10, f.store.products["p1"].Stock, "la restauración nunca se acredita dos veces")
	assert.Len(t, f.store.movements, 2)
}

func TestDeleteSale_VentaInexistente(t *testing.T) {
	f := newSalesFixture()
	err := f.deleteUC.DeleteSale(context.Background(), "no-existe", "vendedor1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteSale_IDVacio(t *testing.T) {
	f := newSalesFixture()
	err := f.deleteUC.DeleteSale(context.Background(), "", "vendedor1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
