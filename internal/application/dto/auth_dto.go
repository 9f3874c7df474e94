package dto

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Password string `json:"password"`
}

// LoginResponse token de sesión.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"` // segundos
}
