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
	"ordenespro/internal/model"
	"ordenespro/internal/repository"
	"ordenespro/internal/storage"
	"ordenespro/internal/workflow"
)

func nuevoReporteEntorno(t *testing.T) (ReporteService, repository.OrdenRepository) {
	t.Helper()
	eng := storage.NewMemory()
	ordenes, err := repository.NewOrdenRepository(context.Background(), eng)
	require.NoError(t, err)
	reportes := repository.NewReporteRepository(eng)
	return NewReporteService(reportes, ordenes), ordenes
}

func ordenParaLedger(numero int, creada time.Time, estado workflow.Estado, anticipo, saldo int64) model.Orden {
	return model.Orden{
		ID:          uuid.New(),
		OrderNumber: numero,
		TipoLetrero: "Rótulo",
		Cliente:     "Cliente " + uuid.NewString()[:4],
		Status:      estado,
		Anticipo:    decimal.NewFromInt(anticipo),
		Financials: model.Financials{
			Total: decimal.NewFromInt(anticipo + saldo),
			Saldo: decimal.NewFromInt(saldo),
		},
		CreatedAt: creada,
		UpdatedAt: creada,
	}
}

func TestObtenerGeneraFilaVentaConDeuda(t *testing.T) {
	svc, ordenes := nuevoReporteEntorno(t)
	ctx := context.Background()
	hoy := time.Now()
	fecha := hoy.Format("2006-01-02")

	require.NoError(t, ordenes.Insert(ctx, ordenParaLedger(7, hoy, workflow.EstadoVentas, 100, 245)))

	rep, err := svc.Obtener(ctx, fecha)
	require.NoError(t, err)
	require.Len(t, rep.Transacciones, 1)

	fila := rep.Transacciones[0]
	assert.Equal(t, model.TransaccionVenta, fila.Tipo)
	assert.Equal(t, 7, fila.OrdenNumero)
	assert.True(t, fila.Ingreso.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, "DEBE $245.00", fila.NotaSaldo)
	assert.False(t, fila.EsManual)
}

func TestObtenerVentaCancelada(t *testing.T) {
	svc, ordenes := nuevoReporteEntorno(t)
	ctx := context.Background()
	hoy := time.Now()

	require.NoError(t, ordenes.Insert(ctx, ordenParaLedger(3, hoy, workflow.EstadoVentas, 345, 0)))

	rep, err := svc.Obtener(ctx, hoy.Format("2006-01-02"))
	require.NoError(t, err)
	require.Len(t, rep.Transacciones, 1)
	assert.Equal(t, "CANCELADO", rep.Transacciones[0].NotaSaldo)
}

func TestObtenerGeneraFilaRetiro(t *testing.T) {
	svc, ordenes := nuevoReporteEntorno(t)
	ctx := context.Background()
	hoy := time.Now()
	ayer := hoy.AddDate(0, 0, -1)

	// creada ayer, tocada hoy al pasar a POR RETIRAR con saldo pendiente
	o := ordenParaLedger(9, ayer, workflow.EstadoPorRetirar, 100, 245)
	o.UpdatedAt = hoy
	require.NoError(t, ordenes.Insert(ctx, o))

	rep, err := svc.Obtener(ctx, hoy.Format("2006-01-02"))
	require.NoError(t, err)
	require.Len(t, rep.Transacciones, 1)

	fila := rep.Transacciones[0]
	assert.Equal(t, model.TransaccionRetiro, fila.Tipo)
	assert.True(t, fila.Ingreso.Equal(decimal.NewFromInt(245)))
	assert.Equal(t, "CANCELADO", fila.NotaSaldo)
}

func TestObtenerSinRetiroCuandoSaldoCero(t *testing.T) {
	svc, ordenes := nuevoReporteEntorno(t)
	ctx := context.Background()
	hoy := time.Now()
	ayer := hoy.AddDate(0, 0, -1)

	o := ordenParaLedger(4, ayer, workflow.EstadoFinalizada, 345, 0)
	o.UpdatedAt = hoy
	require.NoError(t, ordenes.Insert(ctx, o))

	rep, err := svc.Obtener(ctx, hoy.Format("2006-01-02"))
	require.NoError(t, err)
	assert.Empty(t, rep.Transacciones)
}

func TestTransaccionesManualesPersisten(t *testing.T) {
	svc, _ := nuevoReporteEntorno(t)
	ctx := context.Background()
	fecha := "2026-09-01"

	rep, err := svc.AgregarTransaccion(ctx, fecha, dto.TransaccionRequest{
		Tipo:        model.TransaccionVale,
		Descripcion: "Compra de tornillos",
		Egreso:      decimal.NewFromInt(12),
	})
	require.NoError(t, err)
	require.Len(t, rep.Transacciones, 1)
	assert.True(t, rep.Transacciones[0].EsManual)

	id := uuid.MustParse(rep.Transacciones[0].ID)

	rep, err = svc.ActualizarTransaccion(ctx, fecha, id, dto.TransaccionRequest{
		Tipo:        model.TransaccionVale,
		Descripcion: "Compra de tornillos y brocas",
		Egreso:      decimal.NewFromInt(18),
	})
	require.NoError(t, err)
	assert.Equal(t, "Compra de tornillos y brocas", rep.Transacciones[0].Descripcion)
	assert.True(t, rep.TotalEgresos.Equal(decimal.NewFromInt(18)))

	// otra fecha es otro documento
	otro, err := svc.Obtener(ctx, "2026-09-02")
	require.NoError(t, err)
	assert.Empty(t, otro.Transacciones)

	rep, err = svc.EliminarTransaccion(ctx, fecha, id)
	require.NoError(t, err)
	assert.Empty(t, rep.Transacciones)

	_, err = svc.EliminarTransaccion(ctx, fecha, id)
	assert.ErrorIs(t, err, ErrTransaccionNoEncontrada)
}

func TestCuadreDeCaja(t *testing.T) {
	svc, _ := nuevoReporteEntorno(t)
	ctx := context.Background()
	fecha := "2026-09-01"

	_, err := svc.AgregarTransaccion(ctx, fecha, dto.TransaccionRequest{
		Tipo: model.TransaccionIngreso, Descripcion: "Venta mostrador", Ingreso: decimal.NewFromInt(200),
	})
	require.NoError(t, err)
	_, err = svc.AgregarTransaccion(ctx, fecha, dto.TransaccionRequest{
		Tipo: model.TransaccionVale, Descripcion: "Almuerzos", Egreso: decimal.NewFromInt(30),
	})
	require.NoError(t, err)

	rep, err := svc.ActualizarCampos(ctx, fecha, dto.ActualizarReporteRequest{
		InicioCaja:         decimal.NewFromInt(50),
		DepositoDiario:     decimal.NewFromInt(150),
		EfectivoRealCierre: decimal.NewFromInt(65),
		Banco:              "Pichincha",
	})
	require.NoError(t, err)

	// 50 + 200 - 30 = 220 antes del depósito; 220 - 150 = 70 tras él
	assert.True(t, rep.EfectivoAntesDeposito.Equal(decimal.NewFromInt(220)), "antes %s", rep.EfectivoAntesDeposito)
	assert.True(t, rep.EfectivoTrasDeposito.Equal(decimal.NewFromInt(70)), "tras %s", rep.EfectivoTrasDeposito)
	// 65 reales contra 70 esperados = descuadre de -5
	assert.True(t, rep.Descuadre.Equal(decimal.NewFromInt(-5)), "descuadre %s", rep.Descuadre)
}

func TestFilasAutomaticasConIDEstable(t *testing.T) {
	svc, ordenes := nuevoReporteEntorno(t)
	ctx := context.Background()
	hoy := time.Now()
	fecha := hoy.Format("2006-01-02")

	require.NoError(t, ordenes.Insert(ctx, ordenParaLedger(1, hoy, workflow.EstadoVentas, 100, 245)))

	a, err := svc.Obtener(ctx, fecha)
	require.NoError(t, err)
	b, err := svc.Obtener(ctx, fecha)
	require.NoError(t, err)
	require.Len(t, a.Transacciones, 1)
	assert.Equal(t, a.Transacciones[0].ID, b.Transacciones[0].ID)
}
