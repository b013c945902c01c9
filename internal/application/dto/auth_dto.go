package dto

// RegisterRequest alta de usuario.
type RegisterRequest struct {
	Username    string   `json:"username"`
	Email       string   `json:"email"`
	Password    string   `json:"password"`
	Groups      []string `json:"groups"`
	Permissions []string `json:"permissions"`
}

// LoginRequest inicio de sesión.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse token emitido tras autenticación.
type LoginResponse struct {
	Token    string   `json:"token"`
	Username string   `json:"username"`
	Groups   []string `json:"groups"`
}
