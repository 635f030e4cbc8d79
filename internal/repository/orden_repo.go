package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"ordenespro/internal/model"
	"ordenespro/internal/storage"
)

// versionDatos marks the current on-disk data generation. Bumping it
// wipes the order collection exactly once on the next startup.
const versionDatos = "1.0-reset"

type OrdenRepository interface {
	List(ctx context.Context) []model.Orden
	FindByID(ctx context.Context, id uuid.UUID) (*model.Orden, error)
	FindByNumero(ctx context.Context, numero int) (*model.Orden, error)
	NextNumero(ctx context.Context) int
	Insert(ctx context.Context, o model.Orden) error
	Update(ctx context.Context, o model.Orden) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ordenRepo struct {
	mu      sync.RWMutex
	eng     storage.Engine
	ordenes []model.Orden // most-recent-first, the display convention
}

// NewOrdenRepository loads the collection, applying the one-time data
// reset when the stored version marker is stale.
func NewOrdenRepository(ctx context.Context, eng storage.Engine) (OrdenRepository, error) {
	if err := aplicarResetVersion(ctx, eng); err != nil {
		return nil, err
	}
	ordenes, err := cargar[model.Orden](ctx, eng, storage.ClaveOrdenes)
	if err != nil {
		return nil, err
	}
	return &ordenRepo{eng: eng, ordenes: ordenes}, nil
}

func aplicarResetVersion(ctx context.Context, eng storage.Engine) error {
	raw, err := eng.Get(ctx, storage.ClaveVersion)
	if err == nil && string(raw) == versionDatos {
		return nil
	}
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return err
	}
	if err == nil {
		log.Info().Str("version", versionDatos).Msg("versión de datos distinta, se limpia la colección de órdenes")
		if err := eng.Delete(ctx, storage.ClaveOrdenes); err != nil {
			return err
		}
	}
	return eng.Set(ctx, storage.ClaveVersion, []byte(versionDatos))
}

func (r *ordenRepo) persistir(ctx context.Context) error {
	return guardar(ctx, r.eng, storage.ClaveOrdenes, r.ordenes)
}

func (r *ordenRepo) List(_ context.Context) []model.Orden {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Orden, len(r.ordenes))
	copy(out, r.ordenes)
	return out
}

func (r *ordenRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Orden, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.ordenes {
		if r.ordenes[i].ID == id {
			o := r.ordenes[i]
			return &o, nil
		}
	}
	return nil, ErrNoExiste
}

func (r *ordenRepo) FindByNumero(_ context.Context, numero int) (*model.Orden, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.ordenes {
		if r.ordenes[i].OrderNumber == numero {
			o := r.ordenes[i]
			return &o, nil
		}
	}
	return nil, ErrNoExiste
}

// NextNumero is max(orderNumber)+1 over the live collection. It is never
// a stored counter, so clones and manual overrides cannot collide with a
// stale value.
func (r *ordenRepo) NextNumero(_ context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.siguienteNumeroLocked()
}

func (r *ordenRepo) siguienteNumeroLocked() int {
	max := 0
	for i := range r.ordenes {
		if n := r.ordenes[i].OrderNumber; n > max {
			max = n
		}
	}
	return max + 1
}

func (r *ordenRepo) Insert(ctx context.Context, o model.Orden) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if o.OrderNumber == 0 {
		o.OrderNumber = r.siguienteNumeroLocked()
	}
	r.ordenes = append([]model.Orden{o}, r.ordenes...)
	return r.persistir(ctx)
}

func (r *ordenRepo) Update(ctx context.Context, o model.Orden) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.ordenes {
		if r.ordenes[i].ID == o.ID {
			r.ordenes[i] = o
			return r.persistir(ctx)
		}
	}
	return ErrNoExiste
}

func (r *ordenRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.ordenes {
		if r.ordenes[i].ID == id {
			r.ordenes = append(r.ordenes[:i], r.ordenes[i+1:]...)
			return r.persistir(ctx)
		}
	}
	return ErrNoExiste
}
