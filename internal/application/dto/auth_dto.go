package dto

// SignInRequest credenciales del sign-in mock. La contraseña solo se valida
// por longitud; el prototipo no verifica credenciales reales.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignInResponse token fabricado + usuario resuelto.
type SignInResponse struct {
	Token      string       `json:"token"`
	User       UserResponse `json:"user"`
	RedirectTo string       `json:"redirect_to"` // destino sugerido tras el login
}
