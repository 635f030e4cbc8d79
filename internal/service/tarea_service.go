package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"ordenespro/internal/dto"
	"ordenespro/internal/model"
	"ordenespro/internal/repository"
	"ordenespro/internal/workflow"
)

// TareaService surfaces the orders waiting on each role: the pending
// cards of the home screen and the dismissable notification bell.
type TareaService interface {
	Pendientes(ctx context.Context, rol workflow.Rol, nombre string) (*dto.TareaListResponse, error)
	Notificaciones(ctx context.Context, rol workflow.Rol, nombre string) (*dto.TareaListResponse, error)
	ArchivarNotificacion(ctx context.Context, ordenID uuid.UUID) error
}

type tareaService struct {
	ordenes        repository.OrdenRepository
	notificaciones repository.NotificacionRepository
}

func NewTareaService(ordenes repository.OrdenRepository, notificaciones repository.NotificacionRepository) TareaService {
	return &tareaService{ordenes: ordenes, notificaciones: notificaciones}
}

// estadosPorRol maps each role to the statuses that wait on it. The
// administrator only gets the finished orders pending archive; the
// salesperson's two stages are further restricted to their own orders.
var estadosPorRol = map[workflow.Rol][]workflow.Estado{
	workflow.RolVendedor:      {workflow.EstadoVentas, workflow.EstadoPorRetirar},
	workflow.RolProduccion:    {workflow.EstadoProduccion},
	workflow.RolContabilidad:  {workflow.EstadoContabilidad},
	workflow.RolAdministrador: {workflow.EstadoFinalizada},
}

var accionPorEstado = map[workflow.Estado]string{
	workflow.EstadoVentas:       "completar datos y enviar a producción",
	workflow.EstadoProduccion:   "fabricar y marcar productos completados",
	workflow.EstadoPorRetirar:   "coordinar retiro con el cliente",
	workflow.EstadoContabilidad: "registrar cobro y finalizar",
	workflow.EstadoFinalizada:   "archivar la orden finalizada",
}

func (s *tareaService) Pendientes(ctx context.Context, rol workflow.Rol, nombre string) (*dto.TareaListResponse, error) {
	return s.seleccionar(ctx, rol, nombre, nil)
}

func (s *tareaService) Notificaciones(ctx context.Context, rol workflow.Rol, nombre string) (*dto.TareaListResponse, error) {
	return s.seleccionar(ctx, rol, nombre, s.notificaciones.Archivadas(ctx))
}

func (s *tareaService) seleccionar(ctx context.Context, rol workflow.Rol, nombre string, omitidas map[uuid.UUID]bool) (*dto.TareaListResponse, error) {
	estados := estadosPorRol[rol]
	data := []dto.TareaResponse{}
	for _, o := range s.ordenes.List(ctx) {
		if omitidas[o.ID] || !contieneEstado(estados, o.Status) {
			continue
		}
		// A salesperson only answers for the orders sold under their name.
		if rol == workflow.RolVendedor && o.Vendedor != nombre {
			continue
		}
		data = append(data, tareaDe(o))
	}
	return &dto.TareaListResponse{Data: data, Total: len(data)}, nil
}

func (s *tareaService) ArchivarNotificacion(ctx context.Context, ordenID uuid.UUID) error {
	if _, err := s.ordenes.FindByID(ctx, ordenID); err != nil {
		return ErrOrdenNoEncontrada
	}
	return s.notificaciones.Archivar(ctx, ordenID)
}

func contieneEstado(estados []workflow.Estado, e workflow.Estado) bool {
	for _, v := range estados {
		if v == e {
			return true
		}
	}
	return false
}

func tareaDe(o model.Orden) dto.TareaResponse {
	t := dto.TareaResponse{
		OrdenID:     o.ID.String(),
		OrderNumber: o.OrderNumber,
		TipoLetrero: o.TipoLetrero,
		Cliente:     o.Cliente,
		Status:      string(o.Status),
		Accion:      accionPorEstado[o.Status],
		UpdatedAt:   o.UpdatedAt.Format(time.RFC3339),
	}
	if o.FechaEntrega != nil {
		t.FechaEntrega = o.FechaEntrega.Format(time.RFC3339)
	}
	return t
}
