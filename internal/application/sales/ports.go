package sales

import (
	"context"

	"github.com/jfsolarte/inventario-ventas/internal/domain/entity"
	"github.com/jfsolarte/inventario-ventas/internal/domain/repository"
)

// SalesTxRunner ejecuta una función dentro de una transacción que incluye
// repos de inventario y de ventas. La venta completa (código, items,
// descuentos de stock, total) se confirma o se revierte como una unidad.
type SalesTxRunner interface {
	RunSales(ctx context.Context, fn func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error) error
}

// SaleForPDF foto completa y consistente de una venta para el render del
// documento: nada de referencias vivas, todo resuelto al momento de generar.
type SaleForPDF struct {
	Sale     *entity.Sale
	Customer *entity.Customer
	Items    []SaleLineForPDF
}

// SaleLineForPDF línea de venta con el nombre del producto resuelto.
type SaleLineForPDF struct {
	Item        *entity.SaleItem
	ProductName string
}

// Issuer datos estáticos del emisor que encabezan la factura.
type Issuer struct {
	Name    string
	TaxID   string
	Address string
	Phone   string
	Email   string
}

// SalePDFGenerator puerto del renderizador de documentos: recibe la foto de
// la venta y los datos del emisor, devuelve los bytes del PDF imprimible.
type SalePDFGenerator interface {
	GenerateSalePDF(ctx context.Context, sale *SaleForPDF, issuer Issuer) ([]byte, error)
}
