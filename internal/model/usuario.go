package model

import (
	"time"

	"github.com/google/uuid"

	"ordenespro/internal/workflow"
)

// Usuario is a staff member. The PIN is optional: accounts without one
// log in by name alone, matching the shop's shared-terminal habit.
type Usuario struct {
	ID      uuid.UUID    `json:"id"`
	Usuario string       `json:"usuario"`
	Nombre  string       `json:"nombre"`
	Rol     workflow.Rol `json:"rol"`
	// PinHash is a bcrypt hash; empty means no PIN is required.
	PinHash   string    `json:"pin_hash,omitempty"`
	Activo    bool      `json:"activo"`
	CreatedAt time.Time `json:"created_at"`
}
