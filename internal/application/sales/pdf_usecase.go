package sales

import (
	"context"
	"fmt"

	"github.com/jfsolarte/inventario-ventas/internal/domain"
	"github.com/jfsolarte/inventario-ventas/internal/domain/repository"
)

// PDFUseCase genera la factura imprimible de una venta.
// Arma una foto completa y consistente (venta, cliente, líneas con nombres
// de producto resueltos) y delega el render en el puerto SalePDFGenerator.
type PDFUseCase struct {
	saleRepo     repository.SaleRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	generator    SalePDFGenerator
	issuer       Issuer
}

// NewPDFUseCase construye el caso de uso con los datos estáticos del emisor.
func NewPDFUseCase(
	saleRepo repository.SaleRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	generator SalePDFGenerator,
	issuer Issuer,
) *PDFUseCase {
	return &PDFUseCase{
		saleRepo:     saleRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		generator:    generator,
		issuer:       issuer,
	}
}

// DownloadSalePDF genera el PDF de la venta.
//
// Retorna:
//   - (pdfBytes, filename, nil) si todo sale bien.
//   - domain.ErrNotFound        si la venta no existe.
func (uc *PDFUseCase) DownloadSalePDF(ctx context.Context, saleID string) (pdfBytes []byte, filename string, err error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener venta: %w", err)
	}
	if sale == nil {
		return nil, "", domain.ErrNotFound
	}

	customer, err := uc.customerRepo.GetByID(sale.CustomerID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener cliente: %w", err)
	}
	if customer == nil {
		return nil, "", domain.ErrNotFound
	}

	items, err := uc.saleRepo.GetItemsBySaleID(saleID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener items: %w", err)
	}

	lines := make([]SaleLineForPDF, 0, len(items))
	for _, item := range items {
		name := item.ProductID
		if p, _ := uc.productRepo.GetByID(item.ProductID); p != nil {
			name = p.Name
		}
		lines = append(lines, SaleLineForPDF{Item: item, ProductName: name})
	}

	snapshot := &SaleForPDF{Sale: sale, Customer: customer, Items: lines}
	pdfBytes, err = uc.generator.GenerateSalePDF(ctx, snapshot, uc.issuer)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generar documento: %w", err)
	}
	return pdfBytes, fmt.Sprintf("factura_%s.pdf", sale.Code), nil
}
