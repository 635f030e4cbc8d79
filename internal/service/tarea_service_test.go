package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ordenespro/internal/repository"
	"ordenespro/internal/storage"
	"ordenespro/internal/workflow"
)

func nuevoTareaEntorno(t *testing.T) (TareaService, OrdenService) {
	t.Helper()
	eng := storage.NewMemory()
	ctx := context.Background()
	ordenes, err := repository.NewOrdenRepository(ctx, eng)
	require.NoError(t, err)
	notificaciones, err := repository.NewNotificacionRepository(ctx, eng)
	require.NoError(t, err)
	return NewTareaService(ordenes, notificaciones), NewOrdenService(ordenes)
}

func TestPendientesPorRol(t *testing.T) {
	tareas, ordenes := nuevoTareaEntorno(t)
	ctx := context.Background()

	// una en VENTAS, una en PRODUCCION
	_, err := ordenes.Crear(ctx, workflow.RolAdministrador, reqOrdenBasica())
	require.NoError(t, err)
	resp, err := ordenes.Crear(ctx, workflow.RolAdministrador, reqOrdenBasica())
	require.NoError(t, err)
	_, err = ordenes.Avanzar(ctx, workflow.RolAdministrador, uuid.MustParse(resp.ID))
	require.NoError(t, err)

	lista, err := tareas.Pendientes(ctx, workflow.RolVendedor, "María")
	require.NoError(t, err)
	require.Equal(t, 1, lista.Total)
	assert.Equal(t, string(workflow.EstadoVentas), lista.Data[0].Status)

	lista, err = tareas.Pendientes(ctx, workflow.RolProduccion, "Pedro")
	require.NoError(t, err)
	require.Equal(t, 1, lista.Total)
	assert.Equal(t, string(workflow.EstadoProduccion), lista.Data[0].Status)
	assert.Equal(t, "fabricar y marcar productos completados", lista.Data[0].Accion)

	// el administrador solo ve finalizadas pendientes de archivo
	lista, err = tareas.Pendientes(ctx, workflow.RolAdministrador, "Admin")
	require.NoError(t, err)
	assert.Equal(t, 0, lista.Total)

	lista, err = tareas.Pendientes(ctx, workflow.RolContabilidad, "Carla")
	require.NoError(t, err)
	assert.Equal(t, 0, lista.Total)
}

func TestPendientesVendedorSoloVeLasSuyas(t *testing.T) {
	tareas, ordenes := nuevoTareaEntorno(t)
	ctx := context.Background()

	_, err := ordenes.Crear(ctx, workflow.RolAdministrador, reqOrdenBasica())
	require.NoError(t, err)
	otra := reqOrdenBasica()
	otra.Vendedor = "Lucía"
	_, err = ordenes.Crear(ctx, workflow.RolAdministrador, otra)
	require.NoError(t, err)

	lista, err := tareas.Pendientes(ctx, workflow.RolVendedor, "María")
	require.NoError(t, err)
	require.Equal(t, 1, lista.Total)
	assert.Equal(t, string(workflow.EstadoVentas), lista.Data[0].Status)

	lista, err = tareas.Pendientes(ctx, workflow.RolVendedor, "Lucía")
	require.NoError(t, err)
	assert.Equal(t, 1, lista.Total)

	lista, err = tareas.Pendientes(ctx, workflow.RolVendedor, "Nadie")
	require.NoError(t, err)
	assert.Equal(t, 0, lista.Total)
}

func TestPendientesAdministradorVeFinalizadas(t *testing.T) {
	tareas, ordenes := nuevoTareaEntorno(t)
	ctx := context.Background()

	req := reqOrdenBasica()
	req.TipoOrden = "Venta de material (VC)"
	resp, err := ordenes.Crear(ctx, workflow.RolAdministrador, req)
	require.NoError(t, err)
	id := uuid.MustParse(resp.ID)

	// VC: VENTAS → CONTABILIDAD → FINALIZADA
	_, err = ordenes.Avanzar(ctx, workflow.RolAdministrador, id)
	require.NoError(t, err)
	_, err = ordenes.Avanzar(ctx, workflow.RolAdministrador, id)
	require.NoError(t, err)

	lista, err := tareas.Pendientes(ctx, workflow.RolAdministrador, "Admin")
	require.NoError(t, err)
	require.Equal(t, 1, lista.Total)
	assert.Equal(t, string(workflow.EstadoFinalizada), lista.Data[0].Status)
	assert.Equal(t, "archivar la orden finalizada", lista.Data[0].Accion)
}

func TestNotificacionesArchivadasNoVuelven(t *testing.T) {
	tareas, ordenes := nuevoTareaEntorno(t)
	ctx := context.Background()

	resp, err := ordenes.Crear(ctx, workflow.RolAdministrador, reqOrdenBasica())
	require.NoError(t, err)
	id := uuid.MustParse(resp.ID)

	lista, err := tareas.Notificaciones(ctx, workflow.RolVendedor, "María")
	require.NoError(t, err)
	require.Equal(t, 1, lista.Total)

	require.NoError(t, tareas.ArchivarNotificacion(ctx, id))

	lista, err = tareas.Notificaciones(ctx, workflow.RolVendedor, "María")
	require.NoError(t, err)
	assert.Equal(t, 0, lista.Total)

	// las pendientes no se ven afectadas por el archivado
	lista, err = tareas.Pendientes(ctx, workflow.RolVendedor, "María")
	require.NoError(t, err)
	assert.Equal(t, 1, lista.Total)
}

func TestArchivarNotificacionInexistente(t *testing.T) {
	tareas, _ := nuevoTareaEntorno(t)

	err := tareas.ArchivarNotificacion(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrOrdenNoEncontrada)
}
