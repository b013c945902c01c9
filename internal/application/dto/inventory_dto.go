package dto

import "time"

// RegisterMovementRequest entrada o salida manual de stock.
type RegisterMovementRequest struct {
	Type     string `json:"type"` // in | out
	Quantity int    `json:"quantity"`
	Reason   string `json:"reason"`
}

// AdjustStockRequest ajuste de stock a un valor absoluto.
type AdjustStockRequest struct {
	Quantity int    `json:"quantity"` // valor objetivo, no delta
	Reason   string `json:"reason"`
}

// AdjustStockResponse resultado del ajuste. Changed=false significa que el
// stock ya estaba en el valor objetivo (informativo, no error).
type AdjustStockResponse struct {
	ProductID string `json:"product_id"`
	Stock     int    `json:"stock"`
	Changed   bool   `json:"changed"`
}

// MovementResponse movimiento de stock en respuestas.
type MovementResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Type      string    `json:"type"`
	Quantity  int       `json:"quantity"`
	Reason    string    `json:"reason"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}
