package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ordenespro/internal/dto"
	"ordenespro/internal/repository"
	"ordenespro/internal/storage"
	"ordenespro/internal/workflow"
)

func nuevoOrdenService(t *testing.T) OrdenService {
	t.Helper()
	repo, err := repository.NewOrdenRepository(context.Background(), storage.NewMemory())
	require.NoError(t, err)
	return NewOrdenService(repo)
}

func reqOrdenBasica() dto.CrearOrdenRequest {
	return dto.CrearOrdenRequest{
		TipoOrden:   "Letrero luminoso",
		TipoLetrero: "Acrílico",
		Cliente:     "Ferretería El Tornillo",
		Vendedor:    "María",
		Productos: []dto.ProductoRequest{
			{Descripcion: "Panel acrílico 120x80", Cantidad: decimal.NewFromInt(2), Precio: decimal.NewFromInt(150)},
		},
		AplicarIva: true,
	}
}

func TestCrearAsignaNumeroConsecutivo(t *testing.T) {
	svc := nuevoOrdenService(t)
	ctx := context.Background()

	a, err := svc.Crear(ctx, workflow.RolVendedor, reqOrdenBasica())
	require.NoError(t, err)
	b, err := svc.Crear(ctx, workflow.RolVendedor, reqOrdenBasica())
	require.NoError(t, err)

	assert.Equal(t, 1, a.OrderNumber)
	assert.Equal(t, 2, b.OrderNumber)
	assert.Equal(t, string(workflow.EstadoVentas), a.Status)
}

func TestCrearRequierePermiso(t *testing.T) {
	svc := nuevoOrdenService(t)

	_, err := svc.Crear(context.Background(), workflow.RolProduccion, reqOrdenBasica())
	assert.ErrorIs(t, err, ErrPermisos)

	_, err = svc.Crear(context.Background(), workflow.RolContabilidad, reqOrdenBasica())
	assert.ErrorIs(t, err, ErrPermisos)
}

func TestCrearCalculaFinancials(t *testing.T) {
	svc := nuevoOrdenService(t)

	req := reqOrdenBasica()
	req.Anticipo = decimal.NewFromInt(100)
	resp, err := svc.Crear(context.Background(), workflow.RolAdministrador, req)
	require.NoError(t, err)

	// 2 x 150 = 300, IVA 15% = 45, total 345, saldo 245
	assert.True(t, resp.Financials.Subtotal.Equal(decimal.NewFromInt(300)), "subtotal %s", resp.Financials.Subtotal)
	assert.True(t, resp.Financials.IVA.Equal(decimal.NewFromInt(45)), "iva %s", resp.Financials.IVA)
	assert.True(t, resp.Financials.Total.Equal(decimal.NewFromInt(345)), "total %s", resp.Financials.Total)
	assert.True(t, resp.Financials.Saldo.Equal(decimal.NewFromInt(245)), "saldo %s", resp.Financials.Saldo)
}

func TestCrearDescartaRenglonesVacios(t *testing.T) {
	svc := nuevoOrdenService(t)

	req := reqOrdenBasica()
	req.Productos = append(req.Productos, dto.ProductoRequest{Descripcion: "   "})
	resp, err := svc.Crear(context.Background(), workflow.RolVendedor, req)
	require.NoError(t, err)

	require.Len(t, resp.Productos, 1)
	assert.Equal(t, "Panel acrílico 120x80", resp.Productos[0].Descripcion)
}

func TestCrearRechazaSoloRenglonesVacios(t *testing.T) {
	svc := nuevoOrdenService(t)
	ctx := context.Background()

	req := reqOrdenBasica()
	req.Productos = []dto.ProductoRequest{
		{Descripcion: "   ", Cantidad: decimal.NewFromInt(1), Precio: decimal.NewFromInt(10)},
	}
	_, err := svc.Crear(ctx, workflow.RolVendedor, req)
	assert.ErrorIs(t, err, ErrSinProductos)

	// la edición tampoco puede dejar la orden sin renglones reales
	resp, err := svc.Crear(ctx, workflow.RolVendedor, reqOrdenBasica())
	require.NoError(t, err)
	upd := dto.ActualizarOrdenRequest{
		TipoOrden: resp.TipoOrden, TipoLetrero: resp.TipoLetrero,
		Cliente: resp.Cliente, Vendedor: resp.Vendedor,
		Productos: []dto.ProductoRequest{{Descripcion: ""}},
	}
	_, err = svc.Actualizar(ctx, workflow.RolVendedor, uuid.MustParse(resp.ID), upd)
	assert.ErrorIs(t, err, ErrSinProductos)
}

func TestCrearConvierteDescuentoAbsoluto(t *testing.T) {
	svc := nuevoOrdenService(t)

	valor := decimal.NewFromInt(30)
	req := reqOrdenBasica()
	req.AplicarIva = false
	req.DescuentoValor = &valor
	resp, err := svc.Crear(context.Background(), workflow.RolVendedor, req)
	require.NoError(t, err)

	// 30 sobre un subtotal de 300 = 10%
	assert.True(t, resp.DescuentoPorcentaje.Equal(decimal.NewFromInt(10)), "pct %s", resp.DescuentoPorcentaje)
	assert.True(t, resp.Financials.Total.Equal(decimal.NewFromInt(270)), "total %s", resp.Financials.Total)
}

func TestVarianteSegunTipoOrden(t *testing.T) {
	svc := nuevoOrdenService(t)

	req := reqOrdenBasica()
	req.TipoOrden = "Venta de material (VC)"
	resp, err := svc.Crear(context.Background(), workflow.RolVendedor, req)
	require.NoError(t, err)
	assert.Equal(t, string(workflow.VarianteVC), resp.Variante)

	resp2, err := svc.Crear(context.Background(), workflow.RolVendedor, reqOrdenBasica())
	require.NoError(t, err)
	assert.Equal(t, string(workflow.VarianteVPVC), resp2.Variante)
}

func TestAvanzarRecorreFlujoCompleto(t *testing.T) {
	svc := nuevoOrdenService(t)
	ctx := context.Background()

	resp, err := svc.Crear(ctx, workflow.RolAdministrador, reqOrdenBasica())
	require.NoError(t, err)
	id := uuid.MustParse(resp.ID)

	esperados := []workflow.Estado{
		workflow.EstadoProduccion,
		workflow.EstadoPorRetirar,
		workflow.EstadoContabilidad,
		workflow.EstadoFinalizada,
	}
	for _, esperado := range esperados {
		resp, err = svc.Avanzar(ctx, workflow.RolAdministrador, id)
		require.NoError(t, err)
		assert.Equal(t, string(esperado), resp.Status)
	}

	_, err = svc.Avanzar(ctx, workflow.RolAdministrador, id)
	assert.ErrorIs(t, err, workflow.ErrNoAvanza)
}

func TestAvanzarFlujoCorto(t *testing.T) {
	svc := nuevoOrdenService(t)
	ctx := context.Background()

	req := reqOrdenBasica()
	req.TipoOrden = "Reventa (VC)"
	resp, err := svc.Crear(ctx, workflow.RolAdministrador, req)
	require.NoError(t, err)
	id := uuid.MustParse(resp.ID)

	resp, err = svc.Avanzar(ctx, workflow.RolAdministrador, id)
	require.NoError(t, err)
	assert.Equal(t, string(workflow.EstadoContabilidad), resp.Status)

	resp, err = svc.Avanzar(ctx, workflow.RolAdministrador, id)
	require.NoError(t, err)
	assert.Equal(t, string(workflow.EstadoFinalizada), resp.Status)
}

func TestPasoAtrasSoloAdministrador(t *testing.T) {
	svc := nuevoOrdenService(t)
	ctx := context.Background()

	resp, err := svc.Crear(ctx, workflow.RolAdministrador, reqOrdenBasica())
	require.NoError(t, err)
	id := uuid.MustParse(resp.ID)

	_, err = svc.Avanzar(ctx, workflow.RolAdministrador, id)
	require.NoError(t, err)

	_, err = svc.Paso(ctx, workflow.RolVendedor, id, workflow.Anterior)
	assert.ErrorIs(t, err, ErrPermisos)

	resp, err = svc.Paso(ctx, workflow.RolAdministrador, id, workflow.Anterior)
	require.NoError(t, err)
	assert.Equal(t, string(workflow.EstadoVentas), resp.Status)
}

func TestEliminarExigeAnulacionPrevia(t *testing.T) {
	svc := nuevoOrdenService(t)
	ctx := context.Background()

	resp, err := svc.Crear(ctx, workflow.RolAdministrador, reqOrdenBasica())
	require.NoError(t, err)
	id := uuid.MustParse(resp.ID)

	err = svc.Eliminar(ctx, workflow.RolAdministrador, id)
	assert.ErrorIs(t, err, ErrEliminarNoAnulada)

	err = svc.Eliminar(ctx, workflow.RolVendedor, id)
	assert.ErrorIs(t, err, ErrPermisos)

	_, err = svc.Anular(ctx, workflow.RolAdministrador, id)
	require.NoError(t, err)

	require.NoError(t, svc.Eliminar(ctx, workflow.RolAdministrador, id))
	_, err = svc.Obtener(ctx, id)
	assert.ErrorIs(t, err, ErrOrdenNoEncontrada)
}

func TestClonarReiniciaBorrador(t *testing.T) {
	svc := nuevoOrdenService(t)
	ctx := context.Background()

	req := reqOrdenBasica()
	req.Anticipo = decimal.NewFromInt(100)
	req.Factura = "001-001-000123"
	req.FormaPagoAnticipo = "efectivo"
	req.FechaEntrega = "2026-09-15"
	resp, err := svc.Crear(ctx, workflow.RolAdministrador, req)
	require.NoError(t, err)
	id := uuid.MustParse(resp.ID)

	_, err = svc.Avanzar(ctx, workflow.RolAdministrador, id)
	require.NoError(t, err)

	clon, err := svc.Clonar(ctx, id)
	require.NoError(t, err)
	draft := clon.Draft

	assert.Empty(t, draft.ID)
	assert.Equal(t, 2, draft.OrderNumber)
	assert.Equal(t, string(workflow.EstadoVentas), draft.Status)
	assert.Empty(t, draft.Factura)
	assert.Empty(t, draft.FechaEntrega)
	assert.Equal(t, "no_aplica", draft.FormaPagoAnticipo)
	assert.True(t, draft.Anticipo.IsZero())
	// sin anticipo el saldo vuelve a ser el total completo
	assert.True(t, draft.Financials.Saldo.Equal(draft.Financials.Total))
	assert.Len(t, draft.Productos, 1)

	// el borrador no entra a la colección
	lista, err := svc.Listar(ctx, workflow.RolAdministrador, dto.OrdenFilter{Vista: "todas", Page: 1, Limit: 50})
	require.NoError(t, err)
	assert.Equal(t, 1, lista.Total)
}

func TestAlternarProductoSoloEnProduccion(t *testing.T) {
	svc := nuevoOrdenService(t)
	ctx := context.Background()

	resp, err := svc.Crear(ctx, workflow.RolAdministrador, reqOrdenBasica())
	require.NoError(t, err)
	id := uuid.MustParse(resp.ID)

	// en VENTAS nadie marca el checklist
	_, err = svc.AlternarProducto(ctx, workflow.RolProduccion, id, 0)
	assert.ErrorIs(t, err, ErrPermisos)

	_, err = svc.Avanzar(ctx, workflow.RolAdministrador, id)
	require.NoError(t, err)

	_, err = svc.AlternarProducto(ctx, workflow.RolVendedor, id, 0)
	assert.ErrorIs(t, err, ErrPermisos)

	resp, err = svc.AlternarProducto(ctx, workflow.RolProduccion, id, 0)
	require.NoError(t, err)
	assert.True(t, resp.Productos[0].Completed)

	resp, err = svc.AlternarProducto(ctx, workflow.RolProduccion, id, 0)
	require.NoError(t, err)
	assert.False(t, resp.Productos[0].Completed)

	_, err = svc.AlternarProducto(ctx, workflow.RolProduccion, id, 5)
	assert.ErrorIs(t, err, ErrProductoInvalido)
}

func TestListarVistaActivasPorDefecto(t *testing.T) {
	svc := nuevoOrdenService(t)
	ctx := context.Background()

	resp, err := svc.Crear(ctx, workflow.RolAdministrador, reqOrdenBasica())
	require.NoError(t, err)
	anulada := uuid.MustParse(resp.ID)
	_, err = svc.Anular(ctx, workflow.RolAdministrador, anulada)
	require.NoError(t, err)

	_, err = svc.Crear(ctx, workflow.RolAdministrador, reqOrdenBasica())
	require.NoError(t, err)

	lista, err := svc.Listar(ctx, workflow.RolAdministrador, dto.OrdenFilter{Page: 1, Limit: 50})
	require.NoError(t, err)
	assert.Equal(t, 1, lista.Total)

	lista, err = svc.Listar(ctx, workflow.RolAdministrador, dto.OrdenFilter{Vista: "anuladas", Page: 1, Limit: 50})
	require.NoError(t, err)
	assert.Equal(t, 1, lista.Total)

	lista, err = svc.Listar(ctx, workflow.RolAdministrador, dto.OrdenFilter{Vista: "todas", Page: 1, Limit: 50})
	require.NoError(t, err)
	assert.Equal(t, 2, lista.Total)
}

func TestListarVistasFacturacionYCredito(t *testing.T) {
	svc := nuevoOrdenService(t)
	ctx := context.Background()

	conIva := reqOrdenBasica()
	_, err := svc.Crear(ctx, workflow.RolAdministrador, conIva)
	require.NoError(t, err)

	sinIva := reqOrdenBasica()
	sinIva.AplicarIva = false
	sinIva.FormaPagoSaldo = "credito"
	sinIva.CreditoVenceSaldo = "2026-10-01"
	_, err = svc.Crear(ctx, workflow.RolAdministrador, sinIva)
	require.NoError(t, err)

	lista, err := svc.Listar(ctx, workflow.RolAdministrador, dto.OrdenFilter{Vista: "facturadas", Page: 1, Limit: 50})
	require.NoError(t, err)
	assert.Equal(t, 1, lista.Total)

	lista, err = svc.Listar(ctx, workflow.RolAdministrador, dto.OrdenFilter{Vista: "sin-factura", Page: 1, Limit: 50})
	require.NoError(t, err)
	assert.Equal(t, 1, lista.Total)

	lista, err = svc.Listar(ctx, workflow.RolAdministrador, dto.OrdenFilter{Vista: "credito", Page: 1, Limit: 50})
	require.NoError(t, err)
	assert.Equal(t, 1, lista.Total)
}

func TestListarProduccionSoloVeSuEtapa(t *testing.T) {
	svc := nuevoOrdenService(t)
	ctx := context.Background()

	resp, err := svc.Crear(ctx, workflow.RolAdministrador, reqOrdenBasica())
	require.NoError(t, err)
	_, err = svc.Avanzar(ctx, workflow.RolAdministrador, uuid.MustParse(resp.ID))
	require.NoError(t, err)

	_, err = svc.Crear(ctx, workflow.RolAdministrador, reqOrdenBasica())
	require.NoError(t, err)

	lista, err := svc.Listar(ctx, workflow.RolProduccion, dto.OrdenFilter{Vista: "todas", Page: 1, Limit: 50})
	require.NoError(t, err)
	require.Equal(t, 1, lista.Total)
	assert.Equal(t, string(workflow.EstadoProduccion), lista.Data[0].Status)
}

func TestListarBusquedaPorNumeroYTexto(t *testing.T) {
	svc := nuevoOrdenService(t)
	ctx := context.Background()

	_, err := svc.Crear(ctx, workflow.RolAdministrador, reqOrdenBasica())
	require.NoError(t, err)

	otra := reqOrdenBasica()
	otra.Cliente = "Panadería La Espiga"
	_, err = svc.Crear(ctx, workflow.RolAdministrador, otra)
	require.NoError(t, err)

	lista, err := svc.Listar(ctx, workflow.RolAdministrador, dto.OrdenFilter{Buscar: "espiga", Page: 1, Limit: 50})
	require.NoError(t, err)
	require.Equal(t, 1, lista.Total)
	assert.Equal(t, "Panadería La Espiga", lista.Data[0].Cliente)

	lista, err = svc.Listar(ctx, workflow.RolAdministrador, dto.OrdenFilter{Buscar: "1", Page: 1, Limit: 50})
	require.NoError(t, err)
	require.Equal(t, 1, lista.Total)
	assert.Equal(t, 1, lista.Data[0].OrderNumber)
}

func TestListarPaginacion(t *testing.T) {
	svc := nuevoOrdenService(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := svc.Crear(ctx, workflow.RolAdministrador, reqOrdenBasica())
		require.NoError(t, err)
	}

	lista, err := svc.Listar(ctx, workflow.RolAdministrador, dto.OrdenFilter{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 5, lista.Total)
	assert.Len(t, lista.Data, 2)
	// el monto total cubre las 5 órdenes, no la página
	assert.True(t, lista.TotalMonto.Equal(decimal.NewFromInt(345*5)), "monto %s", lista.TotalMonto)
}

func TestListarFiltrosDeEstadoVendedorYFechas(t *testing.T) {
	svc := nuevoOrdenService(t)
	ctx := context.Background()

	conAnticipo := reqOrdenBasica()
	conAnticipo.Anticipo = decimal.NewFromInt(100)
	_, err := svc.Crear(ctx, workflow.RolAdministrador, conAnticipo)
	require.NoError(t, err)

	otra := reqOrdenBasica()
	otra.Vendedor = "Lucía"
	resp, err := svc.Crear(ctx, workflow.RolAdministrador, otra)
	require.NoError(t, err)
	_, err = svc.Avanzar(ctx, workflow.RolAdministrador, uuid.MustParse(resp.ID))
	require.NoError(t, err)

	lista, err := svc.Listar(ctx, workflow.RolAdministrador, dto.OrdenFilter{
		Vista: "todas", Estado: string(workflow.EstadoProduccion), Page: 1, Limit: 50,
	})
	require.NoError(t, err)
	require.Equal(t, 1, lista.Total)
	assert.Equal(t, "Lucía", lista.Data[0].Vendedor)

	lista, err = svc.Listar(ctx, workflow.RolAdministrador, dto.OrdenFilter{
		Vista: "todas", Vendedor: "maría", Page: 1, Limit: 50,
	})
	require.NoError(t, err)
	require.Equal(t, 1, lista.Total)
	// abonos y saldo de la orden con anticipo: 100 y 245
	assert.True(t, lista.TotalAbonos.Equal(decimal.NewFromInt(100)), "abonos %s", lista.TotalAbonos)
	assert.True(t, lista.TotalSaldo.Equal(decimal.NewFromInt(245)), "saldo %s", lista.TotalSaldo)

	lista, err = svc.Listar(ctx, workflow.RolAdministrador, dto.OrdenFilter{
		Vista: "todas", Cliente: "Ferretería El Tornillo", Page: 1, Limit: 50,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, lista.Total)

	hoy := time.Now().Format("2006-01-02")
	lista, err = svc.Listar(ctx, workflow.RolAdministrador, dto.OrdenFilter{
		Vista: "todas", Desde: hoy, Hasta: hoy, Page: 1, Limit: 50,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, lista.Total)

	lista, err = svc.Listar(ctx, workflow.RolAdministrador, dto.OrdenFilter{
		Vista: "todas", Hasta: "2001-01-01", Page: 1, Limit: 50,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, lista.Total)
}

func TestArchivarSoloFinalizadas(t *testing.T) {
	svc := nuevoOrdenService(t)
	ctx := context.Background()

	resp, err := svc.Crear(ctx, workflow.RolAdministrador, reqOrdenBasica())
	require.NoError(t, err)
	id := uuid.MustParse(resp.ID)

	_, err = svc.Archivar(ctx, workflow.RolAdministrador, id)
	assert.ErrorIs(t, err, ErrPermisos)

	for i := 0; i < 4; i++ {
		_, err = svc.Avanzar(ctx, workflow.RolAdministrador, id)
		require.NoError(t, err)
	}

	_, err = svc.Archivar(ctx, workflow.RolVendedor, id)
	assert.ErrorIs(t, err, ErrPermisos)

	// archivar es exclusivo del administrador
	_, err = svc.Archivar(ctx, workflow.RolContabilidad, id)
	assert.ErrorIs(t, err, ErrPermisos)

	resp, err = svc.Archivar(ctx, workflow.RolAdministrador, id)
	require.NoError(t, err)
	assert.Equal(t, string(workflow.EstadoArchivada), resp.Status)

	_, err = svc.Desarchivar(ctx, workflow.RolContabilidad, id)
	assert.ErrorIs(t, err, ErrPermisos)

	resp, err = svc.Desarchivar(ctx, workflow.RolAdministrador, id)
	require.NoError(t, err)
	assert.Equal(t, string(workflow.EstadoFinalizada), resp.Status)
}

func TestResumenCuentaPorEstado(t *testing.T) {
	svc := nuevoOrdenService(t)
	ctx := context.Background()

	resp, err := svc.Crear(ctx, workflow.RolAdministrador, reqOrdenBasica())
	require.NoError(t, err)
	_, err = svc.Avanzar(ctx, workflow.RolAdministrador, uuid.MustParse(resp.ID))
	require.NoError(t, err)

	resp, err = svc.Crear(ctx, workflow.RolAdministrador, reqOrdenBasica())
	require.NoError(t, err)
	_, err = svc.Anular(ctx, workflow.RolAdministrador, uuid.MustParse(resp.ID))
	require.NoError(t, err)

	res, err := svc.Resumen(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Total)
	assert.Equal(t, 1, res.Activas)
	assert.Equal(t, 1, res.PorEstado[string(workflow.EstadoProduccion)])
	assert.Equal(t, 1, res.PorEstado[string(workflow.EstadoAnulada)])
	// las anuladas no suman al monto
	assert.True(t, res.MontoTotal.Equal(decimal.NewFromInt(345)), "monto %s", res.MontoTotal)
}

func TestEstadisticasExcluyeAnuladas(t *testing.T) {
	svc := nuevoOrdenService(t)
	ctx := context.Background()

	_, err := svc.Crear(ctx, workflow.RolAdministrador, reqOrdenBasica())
	require.NoError(t, err)

	resp, err := svc.Crear(ctx, workflow.RolAdministrador, reqOrdenBasica())
	require.NoError(t, err)
	_, err = svc.Anular(ctx, workflow.RolAdministrador, uuid.MustParse(resp.ID))
	require.NoError(t, err)

	est, err := svc.Estadisticas(ctx, dto.EstadisticasFilter{})
	require.NoError(t, err)

	assert.Equal(t, 1, est.OrdenesTotales)
	require.Len(t, est.VentasPorMes, 1)
	assert.Equal(t, 1, est.VentasPorMes[0].Cantidad)
	require.Len(t, est.TopClientes, 1)
	assert.Equal(t, "Ferretería El Tornillo", est.TopClientes[0].Nombre)
}

func TestActualizarRecalculaYRespetaEstado(t *testing.T) {
	svc := nuevoOrdenService(t)
	ctx := context.Background()

	resp, err := svc.Crear(ctx, workflow.RolAdministrador, reqOrdenBasica())
	require.NoError(t, err)
	id := uuid.MustParse(resp.ID)

	upd := dto.ActualizarOrdenRequest{
		TipoOrden: "Letrero luminoso", TipoLetrero: "Acrílico",
		Cliente: "Ferretería El Tornillo", Vendedor: "María",
		Productos: []dto.ProductoRequest{
			{Descripcion: "Panel acrílico 120x80", Cantidad: decimal.NewFromInt(3), Precio: decimal.NewFromInt(100)},
		},
	}
	resp, err = svc.Actualizar(ctx, workflow.RolVendedor, id, upd)
	require.NoError(t, err)
	assert.True(t, resp.Financials.Total.Equal(decimal.NewFromInt(300)), "total %s", resp.Financials.Total)

	// producción nunca edita
	_, err = svc.Actualizar(ctx, workflow.RolProduccion, id, upd)
	assert.ErrorIs(t, err, ErrPermisos)
}

func TestExportarCSVRespetaVista(t *testing.T) {
	svc := nuevoOrdenService(t)
	ctx := context.Background()

	_, err := svc.Crear(ctx, workflow.RolAdministrador, reqOrdenBasica())
	require.NoError(t, err)

	raw, err := svc.ExportarCSV(ctx, workflow.RolAdministrador, dto.OrdenFilter{Vista: "todas"})
	require.NoError(t, err)
	assert.Contains(t, string(raw), "sep=,")
	assert.Contains(t, string(raw), "Ferretería El Tornillo")

	raw, err = svc.ExportarCSV(ctx, workflow.RolAdministrador, dto.OrdenFilter{Vista: "anuladas"})
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "Ferretería El Tornillo")
}
