package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearClienteRequest struct {
	RazonSocial string `json:"razon_social" validate:"required,min=2,max=150"`
	Email       string `json:"email"        validate:"omitempty,email"`
	CedulaRuc   string `json:"cedula_ruc"   validate:"omitempty,min=10,max=13"`
	Direccion   string `json:"direccion"    validate:"omitempty,max=250"`
	Celular     string `json:"celular"      validate:"omitempty,max=20"`
}

type ActualizarClienteRequest struct {
	RazonSocial string `json:"razon_social" validate:"required,min=2,max=150"`
	Email       string `json:"email"        validate:"omitempty,email"`
	CedulaRuc   string `json:"cedula_ruc"   validate:"omitempty,min=10,max=13"`
	Direccion   string `json:"direccion"    validate:"omitempty,max=250"`
	Celular     string `json:"celular"      validate:"omitempty,max=20"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ClienteResponse struct {
	ID          string `json:"id"`
	RazonSocial string `json:"razon_social"`
	Email       string `json:"email,omitempty"`
	CedulaRuc   string `json:"cedula_ruc,omitempty"`
	Direccion   string `json:"direccion,omitempty"`
	Celular     string `json:"celular,omitempty"`
	CreatedAt   string `json:"created_at"`
	// Ordenes counts orders whose cliente text matches the razón social.
	Ordenes int `json:"ordenes"`
}
