package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"ordenespro/internal/model"
	"ordenespro/internal/storage"
)

type UsuarioRepository interface {
	List(ctx context.Context) []model.Usuario
	FindByUsuario(ctx context.Context, usuario string) (*model.Usuario, error)
	Upsert(ctx context.Context, u model.Usuario) error
}

type usuarioRepo struct {
	mu       sync.RWMutex
	eng      storage.Engine
	usuarios []model.Usuario
}

func NewUsuarioRepository(ctx context.Context, eng storage.Engine) (UsuarioRepository, error) {
	usuarios, err := cargar[model.Usuario](ctx, eng, storage.ClaveStaff)
	if err != nil {
		return nil, err
	}
	return &usuarioRepo{eng: eng, usuarios: usuarios}, nil
}

func (r *usuarioRepo) persistir(ctx context.Context) error {
	return guardar(ctx, r.eng, storage.ClaveStaff, r.usuarios)
}

func (r *usuarioRepo) List(_ context.Context) []model.Usuario {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Usuario, len(r.usuarios))
	copy(out, r.usuarios)
	return out
}

func (r *usuarioRepo) FindByUsuario(_ context.Context, usuario string) (*model.Usuario, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.usuarios {
		if strings.EqualFold(r.usuarios[i].Usuario, usuario) && r.usuarios[i].Activo {
			u := r.usuarios[i]
			return &u, nil
		}
	}
	return nil, ErrNoExiste
}

func (r *usuarioRepo) Upsert(ctx context.Context, u model.Usuario) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.usuarios {
		if r.usuarios[i].ID == u.ID || strings.EqualFold(r.usuarios[i].Usuario, u.Usuario) {
			if u.ID == uuid.Nil {
				u.ID = r.usuarios[i].ID
			}
			r.usuarios[i] = u
			return r.persistir(ctx)
		}
	}
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.usuarios = append(r.usuarios, u)
	return r.persistir(ctx)
}
