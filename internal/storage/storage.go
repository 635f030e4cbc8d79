// Package storage abstracts the durable key/value store behind the
// repositories. Collections persist as whole JSON documents: a repo loads
// its key at startup and rewrites it on every mutation. Engines exist for
// memory (tests), Redis and Postgres.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key has never been written.
var ErrNotFound = errors.New("clave no encontrada")

// Engine is the minimal durable store contract.
type Engine interface {
	Get(ctx context.Context, clave string) ([]byte, error)
	Set(ctx context.Context, clave string, valor []byte) error
	Delete(ctx context.Context, clave string) error
}

// Well-known keys. One document per collection, plus one ledger document
// per calendar date.
const (
	ClaveOrdenes        = "ordenesProduccion"
	ClaveClientes       = "clientesDB"
	ClaveStaff          = "usuariosStaff"
	ClaveNotificaciones = "notificacionesArchivadas"
	ClaveVersion        = "sysVersion"
)

// ClaveReporteDiario builds the per-date ledger key for a YYYY-MM-DD date.
func ClaveReporteDiario(fecha string) string {
	return "reporteDiario:" + fecha
}
