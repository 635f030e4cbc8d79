package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"ordenespro/internal/dto"
	"ordenespro/internal/export"
	"ordenespro/internal/model"
	"ordenespro/internal/repository"
	"ordenespro/internal/workflow"
)

var ErrTransaccionNoEncontrada = errors.New("transacción no encontrada")

type ReporteService interface {
	Obtener(ctx context.Context, fecha string) (*dto.ReporteDiarioResponse, error)
	ActualizarCampos(ctx context.Context, fecha string, req dto.ActualizarReporteRequest) (*dto.ReporteDiarioResponse, error)
	AgregarTransaccion(ctx context.Context, fecha string, req dto.TransaccionRequest) (*dto.ReporteDiarioResponse, error)
	ActualizarTransaccion(ctx context.Context, fecha string, id uuid.UUID, req dto.TransaccionRequest) (*dto.ReporteDiarioResponse, error)
	EliminarTransaccion(ctx context.Context, fecha string, id uuid.UUID) (*dto.ReporteDiarioResponse, error)
	ExportarCSV(ctx context.Context, fecha string) ([]byte, error)
	PDF(ctx context.Context, fecha string) ([]byte, error)
}

type reporteService struct {
	reportes repository.ReporteRepository
	ordenes  repository.OrdenRepository
}

func NewReporteService(reportes repository.ReporteRepository, ordenes repository.OrdenRepository) ReporteService {
	return &reporteService{reportes: reportes, ordenes: ordenes}
}

// ── Lectura ───────────────────────────────────────────────────────────────────

func (s *reporteService) Obtener(ctx context.Context, fecha string) (*dto.ReporteDiarioResponse, error) {
	rep, err := s.reportes.Find(ctx, fecha)
	if err != nil {
		return nil, err
	}
	return s.construir(ctx, rep), nil
}

// construir merges the automatic transactions, derived fresh from the
// order collection, with the persisted manual rows and totals the day.
func (s *reporteService) construir(ctx context.Context, rep *model.ReporteDiario) *dto.ReporteDiarioResponse {
	transacciones := s.automaticas(ctx, rep.Fecha)
	transacciones = append(transacciones, rep.TransaccionesManuales...)

	totalIngresos := decimal.Zero
	totalEgresos := decimal.Zero
	data := make([]dto.TransaccionResponse, 0, len(transacciones))
	for _, t := range transacciones {
		totalIngresos = totalIngresos.Add(t.Ingreso)
		totalEgresos = totalEgresos.Add(t.Egreso)
		data = append(data, dto.TransaccionResponse{
			ID:          t.ID.String(),
			Tipo:        t.Tipo,
			Descripcion: t.Descripcion,
			OrdenNumero: t.OrdenNumero,
			Ingreso:     t.Ingreso,
			Egreso:      t.Egreso,
			NotaSaldo:   t.NotaSaldo,
			EsManual:    t.EsManual,
		})
	}

	antesDeposito := rep.InicioCaja.Add(totalIngresos).Sub(totalEgresos)
	trasDeposito := antesDeposito.Sub(rep.DepositoDiario)

	return &dto.ReporteDiarioResponse{
		Fecha:              rep.Fecha,
		InicioCaja:         rep.InicioCaja,
		EfectivoRealCierre: rep.EfectivoRealCierre,
		DepositoDiario:     rep.DepositoDiario,
		Banco:              rep.Banco,

		Transacciones: data,

		TotalIngresos:         totalIngresos,
		TotalEgresos:          totalEgresos,
		EfectivoAntesDeposito: antesDeposito,
		EfectivoTrasDeposito:  trasDeposito,
		Descuadre:             rep.EfectivoRealCierre.Sub(trasDeposito),
	}
}

// automaticas derives the day's VENTA and RETIRO rows. A sale row comes
// from every order created that date with an advance; a pickup row from
// every order touched that date while sitting in a pickup status with
// balance still owed. The pickup rule assumes the balance was paid in
// full on that touch; kept as the business runs it.
func (s *reporteService) automaticas(ctx context.Context, fecha string) []model.Transaccion {
	var out []model.Transaccion
	for _, o := range s.ordenes.List(ctx) {
		if o.CreatedAt.Format("2006-01-02") == fecha && o.Anticipo.IsPositive() {
			nota := "CANCELADO"
			if o.Financials.Saldo.IsPositive() {
				nota = "DEBE $" + o.Financials.Saldo.StringFixed(2)
			}
			out = append(out, model.Transaccion{
				ID:          uuid.NewSHA1(uuid.NameSpaceOID, []byte("venta:"+o.ID.String())),
				Tipo:        model.TransaccionVenta,
				Descripcion: o.TipoLetrero + " - " + o.Cliente,
				OrdenNumero: o.OrderNumber,
				Ingreso:     o.Anticipo,
				NotaSaldo:   nota,
			})
		}
		if o.UpdatedAt.Format("2006-01-02") == fecha &&
			(o.Status == workflow.EstadoFinalizada || o.Status == workflow.EstadoPorRetirar) &&
			o.Financials.Saldo.IsPositive() {
			out = append(out, model.Transaccion{
				ID:          uuid.NewSHA1(uuid.NameSpaceOID, []byte("retiro:"+o.ID.String())),
				Tipo:        model.TransaccionRetiro,
				Descripcion: o.TipoLetrero + " - " + o.Cliente,
				OrdenNumero: o.OrderNumber,
				Ingreso:     o.Financials.Saldo,
				NotaSaldo:   "CANCELADO",
			})
		}
	}
	return out
}

// ── Exportación ───────────────────────────────────────────────────────────────

func (s *reporteService) ExportarCSV(ctx context.Context, fecha string) ([]byte, error) {
	resp, err := s.Obtener(ctx, fecha)
	if err != nil {
		return nil, err
	}
	return export.ReporteCSV(resp)
}

func (s *reporteService) PDF(ctx context.Context, fecha string) ([]byte, error) {
	resp, err := s.Obtener(ctx, fecha)
	if err != nil {
		return nil, err
	}
	return export.ReportePDF(resp)
}

// ── Escritura ─────────────────────────────────────────────────────────────────

func (s *reporteService) ActualizarCampos(ctx context.Context, fecha string, req dto.ActualizarReporteRequest) (*dto.ReporteDiarioResponse, error) {
	rep, err := s.reportes.Find(ctx, fecha)
	if err != nil {
		return nil, err
	}
	rep.InicioCaja = req.InicioCaja
	rep.EfectivoRealCierre = req.EfectivoRealCierre
	rep.DepositoDiario = req.DepositoDiario
	rep.Banco = req.Banco
	if err := s.reportes.Save(ctx, rep); err != nil {
		return nil, err
	}
	return s.construir(ctx, rep), nil
}

func (s *reporteService) AgregarTransaccion(ctx context.Context, fecha string, req dto.TransaccionRequest) (*dto.ReporteDiarioResponse, error) {
	rep, err := s.reportes.Find(ctx, fecha)
	if err != nil {
		return nil, err
	}
	rep.TransaccionesManuales = append(rep.TransaccionesManuales, model.Transaccion{
		ID:          uuid.New(),
		Tipo:        req.Tipo,
		Descripcion: req.Descripcion,
		OrdenNumero: req.OrdenNumero,
		Ingreso:     req.Ingreso,
		Egreso:      req.Egreso,
		NotaSaldo:   req.NotaSaldo,
		EsManual:    true,
	})
	if err := s.reportes.Save(ctx, rep); err != nil {
		return nil, err
	}
	return s.construir(ctx, rep), nil
}

func (s *reporteService) ActualizarTransaccion(ctx context.Context, fecha string, id uuid.UUID, req dto.TransaccionRequest) (*dto.ReporteDiarioResponse, error) {
	rep, err := s.reportes.Find(ctx, fecha)
	if err != nil {
		return nil, err
	}
	encontrada := false
	for i := range rep.TransaccionesManuales {
		if rep.TransaccionesManuales[i].ID == id {
			rep.TransaccionesManuales[i] = model.Transaccion{
				ID:          id,
				Tipo:        req.Tipo,
				Descripcion: req.Descripcion,
				OrdenNumero: req.OrdenNumero,
				Ingreso:     req.Ingreso,
				Egreso:      req.Egreso,
				NotaSaldo:   req.NotaSaldo,
				EsManual:    true,
			}
			encontrada = true
			break
		}
	}
	if !encontrada {
		return nil, ErrTransaccionNoEncontrada
	}
	if err := s.reportes.Save(ctx, rep); err != nil {
		return nil, err
	}
	return s.construir(ctx, rep), nil
}

func (s *reporteService) EliminarTransaccion(ctx context.Context, fecha string, id uuid.UUID) (*dto.ReporteDiarioResponse, error) {
	rep, err := s.reportes.Find(ctx, fecha)
	if err != nil {
		return nil, err
	}
	encontrada := false
	for i := range rep.TransaccionesManuales {
		if rep.TransaccionesManuales[i].ID == id {
			rep.TransaccionesManuales = append(rep.TransaccionesManuales[:i], rep.TransaccionesManuales[i+1:]...)
			encontrada = true
			break
		}
	}
	if !encontrada {
		return nil, ErrTransaccionNoEncontrada
	}
	if err := s.reportes.Save(ctx, rep); err != nil {
		return nil, err
	}
	return s.construir(ctx, rep), nil
}
