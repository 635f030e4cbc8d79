package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"ordenespro/internal/dto"
	"ordenespro/internal/model"
	"ordenespro/internal/repository"
)

var (
	ErrClienteNoEncontrado = errors.New("cliente no encontrado")
	ErrClienteDuplicado    = errors.New("ya existe un cliente con esa razón social")
)

type ClienteService interface {
	Listar(ctx context.Context, buscar string) ([]dto.ClienteResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (*dto.ClienteResponse, error)
	Crear(ctx context.Context, req dto.CrearClienteRequest) (*dto.ClienteResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarClienteRequest) (*dto.ClienteResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type clienteService struct {
	clientes repository.ClienteRepository
	ordenes  repository.OrdenRepository
}

func NewClienteService(clientes repository.ClienteRepository, ordenes repository.OrdenRepository) ClienteService {
	return &clienteService{clientes: clientes, ordenes: ordenes}
}

func (s *clienteService) Listar(ctx context.Context, buscar string) ([]dto.ClienteResponse, error) {
	buscar = strings.ToLower(strings.TrimSpace(buscar))
	out := []dto.ClienteResponse{}
	for _, c := range s.clientes.List(ctx) {
		if buscar != "" &&
			!strings.Contains(strings.ToLower(c.RazonSocial), buscar) &&
			!strings.Contains(c.CedulaRuc, buscar) {
			continue
		}
		out = append(out, s.clienteToResponse(ctx, c))
	}
	return out, nil
}

func (s *clienteService) Obtener(ctx context.Context, id uuid.UUID) (*dto.ClienteResponse, error) {
	c, err := s.clientes.FindByID(ctx, id)
	if err != nil {
		return nil, ErrClienteNoEncontrado
	}
	resp := s.clienteToResponse(ctx, *c)
	return &resp, nil
}

func (s *clienteService) Crear(ctx context.Context, req dto.CrearClienteRequest) (*dto.ClienteResponse, error) {
	if _, err := s.clientes.FindByRazonSocial(ctx, req.RazonSocial); err == nil {
		return nil, ErrClienteDuplicado
	}
	c := model.Cliente{
		ID:          uuid.New(),
		RazonSocial: strings.TrimSpace(req.RazonSocial),
		Email:       req.Email,
		CedulaRuc:   req.CedulaRuc,
		Direccion:   req.Direccion,
		Celular:     req.Celular,
		CreatedAt:   time.Now(),
	}
	if err := s.clientes.Insert(ctx, c); err != nil {
		return nil, err
	}
	resp := s.clienteToResponse(ctx, c)
	return &resp, nil
}

func (s *clienteService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarClienteRequest) (*dto.ClienteResponse, error) {
	c, err := s.clientes.FindByID(ctx, id)
	if err != nil {
		return nil, ErrClienteNoEncontrado
	}
	if otro, err := s.clientes.FindByRazonSocial(ctx, req.RazonSocial); err == nil && otro.ID != id {
		return nil, ErrClienteDuplicado
	}
	c.RazonSocial = strings.TrimSpace(req.RazonSocial)
	c.Email = req.Email
	c.CedulaRuc = req.CedulaRuc
	c.Direccion = req.Direccion
	c.Celular = req.Celular
	if err := s.clientes.Update(ctx, *c); err != nil {
		return nil, err
	}
	resp := s.clienteToResponse(ctx, *c)
	return &resp, nil
}

// Eliminar removes the registry entry only. Orders keep their cliente
// text: the link is by name, never a foreign key.
func (s *clienteService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if err := s.clientes.Delete(ctx, id); err != nil {
		return ErrClienteNoEncontrado
	}
	return nil
}

func (s *clienteService) clienteToResponse(ctx context.Context, c model.Cliente) dto.ClienteResponse {
	ordenes := 0
	for _, o := range s.ordenes.List(ctx) {
		if strings.EqualFold(o.Cliente, c.RazonSocial) {
			ordenes++
		}
	}
	return dto.ClienteResponse{
		ID:          c.ID.String(),
		RazonSocial: c.RazonSocial,
		Email:       c.Email,
		CedulaRuc:   c.CedulaRuc,
		Direccion:   c.Direccion,
		Celular:     c.Celular,
		CreatedAt:   c.CreatedAt.Format(time.RFC3339),
		Ordenes:     ordenes,
	}
}
