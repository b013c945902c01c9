package sales

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/jfsolarte/inventario-ventas/internal/application/dto"
	"github.com/jfsolarte/inventario-ventas/internal/application/inventory"
	"github.com/jfsolarte/inventario-ventas/internal/domain"
	"github.com/jfsolarte/inventario-ventas/internal/domain/entity"
	"github.com/jfsolarte/inventario-ventas/internal/domain/repository"
)

// maxCodeRetries reintentos ante colisión del constraint único sobre code.
// El consecutivo se deriva de MAX(number)+1 dentro de la tx; dos ventas
// concurrentes pueden calcular el mismo número y una de las dos pierde con
// 23505, se reintenta la transacción completa con un número fresco.
const maxCodeRetries = 3

// CreateSaleUseCase crea una venta multi-línea y descuenta el inventario en
// una sola transacción: validación de stock por línea, foto del precio,
// subtotales y total derivados, y código legible único.
type CreateSaleUseCase struct {
	txRunner     SalesTxRunner
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	saleRepo     repository.SaleRepository
}

// NewCreateSaleUseCase construye el caso de uso. saleRepo atado al pool se
// usa solo para lecturas; las escrituras van por los repos de la tx.
func NewCreateSaleUseCase(
	txRunner SalesTxRunner,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
) *CreateSaleUseCase {
	return &CreateSaleUseCase{
		txRunner:     txRunner,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		saleRepo:     saleRepo,
	}
}

// CreateSale procesa la venta. Cualquier fallo (validación o almacenamiento)
// deja la base exactamente como estaba: sin venta huérfana y sin descuentos
// parciales de stock.
func (uc *CreateSaleUseCase) CreateSale(ctx context.Context, actor string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if in.CustomerID == "" {
		return nil, domain.ErrInvalidInput
	}
	if actor == "" {
		actor = entity.ActorSystem
	}

	// Descarta las líneas marcadas para eliminar antes de validar
	items := make([]dto.SaleItemRequest, 0, len(in.Items))
	for _, it := range in.Items {
		if it.Remove {
			continue
		}
		items = append(items, it)
	}
	if len(items) == 0 {
		return nil, domain.ErrEmptySale
	}
	for _, it := range items {
		if it.ProductID == "" || it.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}

	// Cliente debe existir (lectura fuera de la tx)
	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}

	var sale *entity.Sale
	var saleItems []*entity.SaleItem

	// Reintenta la transacción completa si el código choca con una venta
	// concurrente (unique constraint + retry, nunca códigos repetidos).
	for attempt := 0; ; attempt++ {
		sale, saleItems, err = uc.createOnce(ctx, actor, in.CustomerID, items)
		if err == nil {
			break
		}
		if errors.Is(err, domain.ErrDuplicate) && attempt < maxCodeRetries {
			continue
		}
		return nil, err
	}

	log.Info().
		Str("code", sale.Code).
		Str("customer_id", sale.CustomerID).
		Str("total", sale.Total.StringFixed(2)).
		Msg("venta registrada")

	return uc.toResponse(sale, customer.FullName(), saleItems, nil), nil
}

// createOnce ejecuta un intento de la transacción de venta.
func (uc *CreateSaleUseCase) createOnce(
	ctx context.Context,
	actor, customerID string,
	items []dto.SaleItemRequest,
) (*entity.Sale, []*entity.SaleItem, error) {
	now := time.Now()
	var sale *entity.Sale
	var saleItems []*entity.SaleItem

	err := uc.txRunner.RunSales(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error {
		// 1) Código consecutivo: MAX(number)+1, 1 si no hay ventas
		number, err := saleRepo.NextNumber()
		if err != nil {
			return err
		}
		sale = &entity.Sale{
			ID:         uuid.New().String(),
			Code:       entity.SaleCode(number),
			Number:     number,
			CustomerID: customerID,
			Date:       now,
			Total:      decimal.Zero,
			CreatedAt:  now,
		}

		// 2) Por cada línea, en orden: bloquear producto, validar stock,
		// foto de precio, descuento vía libro mayor, crear item.
		saleItems = saleItems[:0]
		total := decimal.Zero
		for _, it := range items {
			product, err := productRepo.GetForUpdate(it.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			// El descuento pasa por el libro mayor: valida disponibilidad y
			// deja el movimiento "out" con referencia a la venta. Si falla,
			// toda la transacción se revierte (sin aplicación parcial).
			if _, err := inventory.ApplyMovementInTx(
				movRepo, productRepo, product,
				entity.MovementTypeOut, it.Quantity,
				"Venta "+sale.Code, actor, now,
			); err != nil {
				return err
			}

			unitPrice := product.Price
			subtotal := unitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
			item := &entity.SaleItem{
				ID:        uuid.New().String(),
				SaleID:    sale.ID,
				ProductID: it.ProductID,
				Quantity:  it.Quantity,
				UnitPrice: unitPrice,
				Subtotal:  subtotal,
			}
			saleItems = append(saleItems, item)
			total = total.Add(subtotal)
		}

		// 3) Total derivado, nunca del caller
		sale.Total = total
		if err := saleRepo.Create(sale); err != nil {
			return err
		}
		for _, item := range saleItems {
			if err := saleRepo.CreateItem(item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return sale, saleItems, nil
}

// GetSale obtiene una venta con su detalle completo.
func (uc *CreateSaleUseCase) GetSale(ctx context.Context, id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.saleRepo.GetItemsBySaleID(id)
	if err != nil {
		return nil, err
	}
	customerName := ""
	if customer, _ := uc.customerRepo.GetByID(sale.CustomerID); customer != nil {
		customerName = customer.FullName()
	}
	names := make(map[string]string, len(items))
	for _, item := range items {
		if _, ok := names[item.ProductID]; ok {
			continue
		}
		if p, _ := uc.productRepo.GetByID(item.ProductID); p != nil {
			names[item.ProductID] = p.Name
		}
	}
	return uc.toResponse(sale, customerName, items, names), nil
}

// ListSales lista ventas con filtro opcional por rango de fechas.
func (uc *CreateSaleUseCase) ListSales(ctx context.Context, in dto.ListSalesRequest) ([]*dto.SaleResponse, error) {
	in.DefaultPage()
	var from, to *time.Time
	if in.From != "" {
		t, err := time.Parse("2006-01-02", in.From)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		from = &t
	}
	if in.To != "" {
		t, err := time.Parse("2006-01-02", in.To)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		// inclusivo: hasta el final del día
		end := t.Add(24*time.Hour - time.Nanosecond)
		to = &end
	}
	list, err := uc.saleRepo.List(from, to, in.Limit, in.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SaleResponse, 0, len(list))
	for _, sale := range list {
		customerName := ""
		if customer, _ := uc.customerRepo.GetByID(sale.CustomerID); customer != nil {
			customerName = customer.FullName()
		}
		out = append(out, &dto.SaleResponse{
			ID:           sale.ID,
			Code:         sale.Code,
			CustomerID:   sale.CustomerID,
			CustomerName: customerName,
			Date:         sale.Date,
			Total:        sale.Total,
			Items:        []dto.SaleItemResponse{},
		})
	}
	return out, nil
}

func (uc *CreateSaleUseCase) toResponse(sale *entity.Sale, customerName string, items []*entity.SaleItem, productNames map[string]string) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:           sale.ID,
		Code:         sale.Code,
		CustomerID:   sale.CustomerID,
		CustomerName: customerName,
		Date:         sale.Date,
		Total:        sale.Total,
		Items:        make([]dto.SaleItemResponse, 0, len(items)),
	}
	for _, item := range items {
		resp.Items = append(resp.Items, dto.SaleItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: productNames[item.ProductID],
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Subtotal:    item.Subtotal,
		})
	}
	return resp
}
