package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"ordenespro/internal/storage"
)

// NotificacionRepository tracks which pending-action notifications each
// user dismissed. Only the dismissed ids persist; the notifications
// themselves are derived from the order collection on every read.
type NotificacionRepository interface {
	Archivadas(ctx context.Context) map[uuid.UUID]bool
	Archivar(ctx context.Context, ordenID uuid.UUID) error
}

type notificacionRepo struct {
	mu  sync.RWMutex
	eng storage.Engine
	ids []uuid.UUID
}

func NewNotificacionRepository(ctx context.Context, eng storage.Engine) (NotificacionRepository, error) {
	ids, err := cargar[uuid.UUID](ctx, eng, storage.ClaveNotificaciones)
	if err != nil {
		return nil, err
	}
	return &notificacionRepo{eng: eng, ids: ids}, nil
}

func (r *notificacionRepo) Archivadas(_ context.Context) map[uuid.UUID]bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[uuid.UUID]bool, len(r.ids))
	for _, id := range r.ids {
		out[id] = true
	}
	return out
}

func (r *notificacionRepo) Archivar(ctx context.Context, ordenID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range r.ids {
		if id == ordenID {
			return nil
		}
	}
	r.ids = append(r.ids, ordenID)
	return guardar(ctx, r.eng, storage.ClaveNotificaciones, r.ids)
}
