package dto

import "github.com/vitormaquinas/os-master-api/internal/domain/entity"

// RegisterRequest entrada para registro: username único + password + nombre completo.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse salida de registro/login: token JWT + proyección del usuario
// (la credencial nunca sale del store).
type AuthResponse struct {
	Token string             `json:"token"`
	User  entity.SessionUser `json:"user"`
}
