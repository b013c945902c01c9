package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrEmptySale         = errors.New("la venta debe contener al menos un producto")
	ErrDependencyExists  = errors.New("el recurso tiene registros asociados")
	ErrInsufficientStock = errors.New("stock insuficiente")
)

// InsufficientStockError indica que se solicitó más cantidad de la disponible.
// Lleva producto, disponible y solicitado para el mensaje al usuario.
// errors.Is(err, ErrInsufficientStock) retorna true para este error.
type InsufficientStockError struct {
	Product   string
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente para %s. Disponible: %d, Solicitado: %d",
		e.Product, e.Available, e.Requested)
}

// Is permite comparar contra el sentinel ErrInsufficientStock.
func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}
