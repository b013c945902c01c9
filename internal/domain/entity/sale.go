package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// SaleCodePrefix prefijo del código legible de venta.
const SaleCodePrefix = "VNT-"

// SaleCode construye el código legible a partir del consecutivo: VNT-000001.
func SaleCode(number int) string {
	return fmt.Sprintf("%s%06d", SaleCodePrefix, number)
}

// Sale representa la cabecera de una venta.
// Total es derivado: debe ser igual a la suma de los subtotales de sus items.
type Sale struct {
	ID         string
	Code       string // único, SaleCodePrefix + consecutivo con ceros
	Number     int    // consecutivo numérico detrás del código
	CustomerID string
	Date       time.Time
	Total      decimal.Decimal
	CreatedAt  time.Time
}
