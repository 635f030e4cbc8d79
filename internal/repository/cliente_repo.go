package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"ordenespro/internal/model"
	"ordenespro/internal/storage"
)

type ClienteRepository interface {
	List(ctx context.Context) []model.Cliente
	FindByID(ctx context.Context, id uuid.UUID) (*model.Cliente, error)
	FindByRazonSocial(ctx context.Context, nombre string) (*model.Cliente, error)
	Insert(ctx context.Context, c model.Cliente) error
	Update(ctx context.Context, c model.Cliente) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type clienteRepo struct {
	mu       sync.RWMutex
	eng      storage.Engine
	clientes []model.Cliente
}

func NewClienteRepository(ctx context.Context, eng storage.Engine) (ClienteRepository, error) {
	clientes, err := cargar[model.Cliente](ctx, eng, storage.ClaveClientes)
	if err != nil {
		return nil, err
	}
	return &clienteRepo{eng: eng, clientes: clientes}, nil
}

func (r *clienteRepo) persistir(ctx context.Context) error {
	return guardar(ctx, r.eng, storage.ClaveClientes, r.clientes)
}

func (r *clienteRepo) List(_ context.Context) []model.Cliente {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Cliente, len(r.clientes))
	copy(out, r.clientes)
	return out
}

func (r *clienteRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Cliente, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.clientes {
		if r.clientes[i].ID == id {
			c := r.clientes[i]
			return &c, nil
		}
	}
	return nil, ErrNoExiste
}

// FindByRazonSocial resolves the weak text link from Orden.Cliente.
// Matching is case-insensitive on the full name.
func (r *clienteRepo) FindByRazonSocial(_ context.Context, nombre string) (*model.Cliente, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.clientes {
		if strings.EqualFold(r.clientes[i].RazonSocial, nombre) {
			c := r.clientes[i]
			return &c, nil
		}
	}
	return nil, ErrNoExiste
}

func (r *clienteRepo) Insert(ctx context.Context, c model.Cliente) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clientes = append([]model.Cliente{c}, r.clientes...)
	return r.persistir(ctx)
}

func (r *clienteRepo) Update(ctx context.Context, c model.Cliente) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.clientes {
		if r.clientes[i].ID == c.ID {
			r.clientes[i] = c
			return r.persistir(ctx)
		}
	}
	return ErrNoExiste
}

func (r *clienteRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.clientes {
		if r.clientes[i].ID == id {
			r.clientes = append(r.clientes[:i], r.clientes[i+1:]...)
			return r.persistir(ctx)
		}
	}
	return ErrNoExiste
}
