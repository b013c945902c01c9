package dto

import "github.com/shopspring/decimal"

// CreateProductRequest alta de producto. Stock > 0 genera el movimiento
// "Stock inicial" en la misma transacción.
type CreateProductRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	MinStock    int             `json:"min_stock"`
}

// UpdateProductRequest edición de producto. No permite tocar el stock:
// eso se hace con movimientos o ajustes.
type UpdateProductRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	MinStock    int             `json:"min_stock"`
}

// ProductResponse producto en respuestas.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	MinStock    int             `json:"min_stock"`
	LowStock    bool            `json:"low_stock"`
}

// ProductDetailResponse producto con sus movimientos recientes.
type ProductDetailResponse struct {
	ProductResponse
	Movements []MovementResponse `json:"movements"`
}
