package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeIn  = "in"  // entrada
	MovementTypeOut = "out" // salida
)

// ActorSystem es el actor registrado cuando no hay usuario autenticado.
const ActorSystem = "Sistema"

// Motivos estándar generados por la aplicación.
const (
	ReasonInitialStock = "Stock inicial"
	ReasonAdjustment   = "Ajuste de stock"
)

// StockMovement registra un cambio en las existencias de un producto.
// Es inmutable: una corrección es un movimiento nuevo, nunca una edición.
type StockMovement struct {
	ID        string
	ProductID string
	Type      string // in | out
	Quantity  int    // siempre positivo; el signo lo da Type
	Reason    string
	CreatedBy string // username o ActorSystem
	CreatedAt time.Time
}
