package entity

import "time"

// Grupos de usuario. Pertenecer al grupo habilita las acciones de su área
// aunque el usuario no tenga el permiso puntual.
const (
	GroupVendedor = "vendedor"
	GroupBodega   = "bodega"
)

// User representa un usuario de la aplicación.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	Groups       []string // vendedor, bodega
	Permissions  []string // permisos puntuales, ej. "sales.manage"
	CreatedAt    time.Time
}
