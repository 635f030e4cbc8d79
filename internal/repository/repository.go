// Package repository owns the in-memory collections and mirrors every
// mutation to the storage engine as a whole JSON document per key.
package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/rs/zerolog/log"

	"ordenespro/internal/storage"
)

// ErrNoExiste is the sentinel for a missing record inside a collection.
var ErrNoExiste = errors.New("registro no encontrado")

// cargar reads and decodes a collection document. A missing key yields an
// empty collection; a corrupt document is logged and discarded rather
// than blocking startup.
func cargar[T any](ctx context.Context, eng storage.Engine, clave string) ([]T, error) {
	raw, err := eng.Get(ctx, clave)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		log.Warn().Err(err).Str("clave", clave).Msg("documento corrupto, se descarta")
		return nil, nil
	}
	return items, nil
}

// guardar encodes and rewrites a collection document.
func guardar[T any](ctx context.Context, eng storage.Engine, clave string, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return eng.Set(ctx, clave, raw)
}
