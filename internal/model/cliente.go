package model

import (
	"time"

	"github.com/google/uuid"
)

// Cliente is a registry entry. Orders reference clients by RazonSocial
// text, never by ID; deleting a client leaves its orders untouched.
type Cliente struct {
	ID          uuid.UUID `json:"id"`
	RazonSocial string    `json:"razon_social"`
	Email       string    `json:"email,omitempty"`
	CedulaRuc   string    `json:"cedula_ruc,omitempty"`
	Direccion   string    `json:"direccion,omitempty"`
	Celular     string    `json:"celular,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
