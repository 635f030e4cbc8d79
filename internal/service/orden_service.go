package service

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"ordenespro/internal/dto"
	"ordenespro/internal/export"
	"ordenespro/internal/finance"
	"ordenespro/internal/model"
	"ordenespro/internal/repository"
	"ordenespro/internal/workflow"
)

var (
	ErrOrdenNoEncontrada = errors.New("orden no encontrada")
	ErrPermisos          = errors.New("permisos insuficientes para esta operación")
	// ErrEliminarNoAnulada enforces the void-before-delete policy.
	ErrEliminarNoAnulada = errors.New("solo una orden anulada puede eliminarse definitivamente")
	ErrProductoInvalido  = errors.New("producto fuera de rango")
	// ErrSinProductos rejects a submission whose rows are all blank
	// scratch lines.
	ErrSinProductos = errors.New("la orden requiere al menos un producto con descripción")
)

type OrdenService interface {
	Crear(ctx context.Context, rol workflow.Rol, req dto.CrearOrdenRequest) (*dto.OrdenResponse, error)
	Actualizar(ctx context.Context, rol workflow.Rol, id uuid.UUID, req dto.ActualizarOrdenRequest) (*dto.OrdenResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (*dto.OrdenResponse, error)
	Listar(ctx context.Context, rol workflow.Rol, filtro dto.OrdenFilter) (*dto.OrdenListResponse, error)
	Avanzar(ctx context.Context, rol workflow.Rol, id uuid.UUID) (*dto.OrdenResponse, error)
	Paso(ctx context.Context, rol workflow.Rol, id uuid.UUID, dir workflow.Direccion) (*dto.OrdenResponse, error)
	Anular(ctx context.Context, rol workflow.Rol, id uuid.UUID) (*dto.OrdenResponse, error)
	Archivar(ctx context.Context, rol workflow.Rol, id uuid.UUID) (*dto.OrdenResponse, error)
	Desarchivar(ctx context.Context, rol workflow.Rol, id uuid.UUID) (*dto.OrdenResponse, error)
	Eliminar(ctx context.Context, rol workflow.Rol, id uuid.UUID) error
	Clonar(ctx context.Context, id uuid.UUID) (*dto.ClonarOrdenResponse, error)
	AlternarProducto(ctx context.Context, rol workflow.Rol, id uuid.UUID, indice int) (*dto.OrdenResponse, error)
	Resumen(ctx context.Context) (*dto.ResumenResponse, error)
	Estadisticas(ctx context.Context, filtro dto.EstadisticasFilter) (*dto.EstadisticasResponse, error)
	ExportarCSV(ctx context.Context, rol workflow.Rol, filtro dto.OrdenFilter) ([]byte, error)
	PDF(ctx context.Context, id uuid.UUID) ([]byte, int, error)
}

type ordenService struct {
	repo repository.OrdenRepository
}

func NewOrdenService(repo repository.OrdenRepository) OrdenService {
	return &ordenService{repo: repo}
}

// ── Crear ─────────────────────────────────────────────────────────────────────

func (s *ordenService) Crear(ctx context.Context, rol workflow.Rol, req dto.CrearOrdenRequest) (*dto.OrdenResponse, error) {
	if !workflow.PuedeCrear(rol) {
		return nil, ErrPermisos
	}

	ahora := time.Now()
	o := model.Orden{
		ID:          uuid.New(),
		OrderNumber: req.OrderNumber, // 0 = assign next, >0 comes from a clone draft
		Status:      workflow.EstadoVentas,
		CreatedAt:   ahora,
		UpdatedAt:   ahora,
	}
	if err := aplicarCampos(&o, camposOrden(req)); err != nil {
		return nil, err
	}

	if err := s.repo.Insert(ctx, o); err != nil {
		return nil, err
	}
	// Re-read: Insert may have assigned the order number.
	creada, err := s.repo.FindByID(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	resp := ordenToResponse(creada)
	return &resp, nil
}

// ── Actualizar ────────────────────────────────────────────────────────────────

func (s *ordenService) Actualizar(ctx context.Context, rol workflow.Rol, id uuid.UUID, req dto.ActualizarOrdenRequest) (*dto.OrdenResponse, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrOrdenNoEncontrada
	}
	if !workflow.PuedeEditar(rol, o.Status) {
		return nil, ErrPermisos
	}

	if err := aplicarCampos(o, camposOrden(dto.CrearOrdenRequest{
		TipoOrden: req.TipoOrden, TipoLetrero: req.TipoLetrero,
		Cliente: req.Cliente, Vendedor: req.Vendedor,
		Productos: req.Productos, Imagenes: req.Imagenes,
		Factura: req.Factura, Cotizacion: req.Cotizacion,
		Anticipo: req.Anticipo, Retencion: req.Retencion,
		DescuentoPorcentaje: req.DescuentoPorcentaje, DescuentoValor: req.DescuentoValor,
		AplicarIva:        req.AplicarIva,
		FormaPagoAnticipo: req.FormaPagoAnticipo, CreditoVenceAnticipo: req.CreditoVenceAnticipo, NotaAnticipo: req.NotaAnticipo,
		FormaPagoSaldo: req.FormaPagoSaldo, CreditoVenceSaldo: req.CreditoVenceSaldo, NotaSaldo: req.NotaSaldo,
		Notas: req.Notas, FechaEntrega: req.FechaEntrega,
	})); err != nil {
		return nil, err
	}
	o.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, *o); err != nil {
		return nil, err
	}
	resp := ordenToResponse(o)
	return &resp, nil
}

// camposOrden normalizes a create/update payload before merging it.
func camposOrden(req dto.CrearOrdenRequest) dto.CrearOrdenRequest {
	if req.FormaPagoAnticipo == "" {
		req.FormaPagoAnticipo = model.FormaPagoNoAplica
	}
	if req.FormaPagoSaldo == "" {
		req.FormaPagoSaldo = model.FormaPagoNoAplica
	}
	return req
}

// aplicarCampos merges the payload into the order and recomputes the
// financial snapshot. Blank scratch rows are discarded; at least one row
// with a description must survive. An absolute discount amount, when
// present, wins over the percentage and is converted before storing.
func aplicarCampos(o *model.Orden, req dto.CrearOrdenRequest) error {
	o.TipoOrden = req.TipoOrden
	o.TipoLetrero = req.TipoLetrero
	o.Cliente = req.Cliente
	o.Vendedor = req.Vendedor

	o.Productos = make([]model.Producto, 0, len(req.Productos))
	for _, p := range req.Productos {
		desc := strings.TrimSpace(p.Descripcion)
		if desc == "" {
			continue
		}
		o.Productos = append(o.Productos, model.Producto{
			Descripcion: desc,
			Cantidad:    p.Cantidad,
			Precio:      p.Precio,
			Completed:   p.Completed,
		})
	}
	if len(o.Productos) == 0 {
		return ErrSinProductos
	}
	o.Imagenes = nil
	for _, img := range req.Imagenes {
		o.Imagenes = append(o.Imagenes, model.Imagen{Nombre: img.Nombre, URL: img.URL})
	}

	o.Factura = req.Factura
	o.Cotizacion = req.Cotizacion
	o.Anticipo = req.Anticipo
	o.Retencion = req.Retencion
	o.AplicarIva = req.AplicarIva

	o.DescuentoPorcentaje = req.DescuentoPorcentaje
	if req.DescuentoValor != nil {
		o.DescuentoPorcentaje = finance.PorcentajeDesdeValor(*req.DescuentoValor, finance.Subtotal(o.Productos))
	}

	o.FormaPagoAnticipo = req.FormaPagoAnticipo
	o.CreditoVenceAnticipo = req.CreditoVenceAnticipo
	o.NotaAnticipo = req.NotaAnticipo
	o.FormaPagoSaldo = req.FormaPagoSaldo
	o.CreditoVenceSaldo = req.CreditoVenceSaldo
	o.NotaSaldo = req.NotaSaldo
	o.Notas = req.Notas

	o.FechaEntrega = parseFechaEntrega(req.FechaEntrega)

	finance.Recalcular(o)
	return nil
}

func parseFechaEntrega(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// ── Consultas ─────────────────────────────────────────────────────────────────

func (s *ordenService) Obtener(ctx context.Context, id uuid.UUID) (*dto.OrdenResponse, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrOrdenNoEncontrada
	}
	resp := ordenToResponse(o)
	return &resp, nil
}

func (s *ordenService) Listar(ctx context.Context, rol workflow.Rol, filtro dto.OrdenFilter) (*dto.OrdenListResponse, error) {
	todas := s.repo.List(ctx)
	filtradas := make([]model.Orden, 0, len(todas))
	totalMonto := decimal.Zero
	totalAbonos := decimal.Zero
	totalSaldo := decimal.Zero

	for _, o := range todas {
		if !pasaFiltro(rol, filtro, o) {
			continue
		}
		filtradas = append(filtradas, o)
		totalMonto = totalMonto.Add(o.Financials.Total)
		totalAbonos = totalAbonos.Add(o.Anticipo)
		totalSaldo = totalSaldo.Add(o.Financials.Saldo)
	}

	total := len(filtradas)
	inicio := (filtro.Page - 1) * filtro.Limit
	if inicio > total {
		inicio = total
	}
	fin := inicio + filtro.Limit
	if fin > total {
		fin = total
	}

	data := make([]dto.OrdenResponse, 0, fin-inicio)
	for _, o := range filtradas[inicio:fin] {
		data = append(data, ordenToResponse(&o))
	}

	return &dto.OrdenListResponse{
		Data:        data,
		Total:       total,
		Page:        filtro.Page,
		Limit:       filtro.Limit,
		TotalMonto:  totalMonto,
		TotalAbonos: totalAbonos,
		TotalSaldo:  totalSaldo,
	}, nil
}

// pasaFiltro combines every list refinement: role visibility, the named
// view, free-text search and the dropdown / date-range filters.
func pasaFiltro(rol workflow.Rol, f dto.OrdenFilter, o model.Orden) bool {
	if !visiblePorRol(rol, o) || !pasaVista(f.Vista, o) || !pasaBusqueda(f.Buscar, o) {
		return false
	}
	if f.Estado != "" && o.Status != workflow.Estado(f.Estado) {
		return false
	}
	if f.Cliente != "" && !strings.EqualFold(o.Cliente, f.Cliente) {
		return false
	}
	if f.Vendedor != "" && !strings.EqualFold(o.Vendedor, f.Vendedor) {
		return false
	}
	if f.Desde != "" {
		if d, err := time.Parse("2006-01-02", f.Desde); err == nil && o.CreatedAt.Before(d) {
			return false
		}
	}
	if f.Hasta != "" {
		if h, err := time.Parse("2006-01-02", f.Hasta); err == nil && !o.CreatedAt.Before(h.Add(24*time.Hour)) {
			return false
		}
	}
	return true
}

// visiblePorRol: production staff only ever see orders sitting in their
// stage, regardless of the requested view.
func visiblePorRol(rol workflow.Rol, o model.Orden) bool {
	if rol == workflow.RolProduccion {
		return o.Status == workflow.EstadoProduccion
	}
	return true
}

func pasaVista(vista string, o model.Orden) bool {
	switch vista {
	case "todas":
		return true
	case "", "activas":
		return o.Status != workflow.EstadoFinalizada &&
			o.Status != workflow.EstadoAnulada &&
			o.Status != workflow.EstadoArchivada
	case "sin-factura":
		return !o.AplicarIva && o.Status != workflow.EstadoArchivada
	case "facturadas":
		return o.AplicarIva && o.Status != workflow.EstadoArchivada
	case "credito":
		return (o.PagoCredito() || o.Status == workflow.EstadoContabilidad) &&
			o.Status != workflow.EstadoArchivada
	case "finalizadas":
		return o.Status == workflow.EstadoFinalizada
	case "anuladas":
		return o.Status == workflow.EstadoAnulada
	case "archivadas":
		return o.Status == workflow.EstadoArchivada
	default:
		return false
	}
}

func pasaBusqueda(q string, o model.Orden) bool {
	if q == "" {
		return true
	}
	q = strings.ToLower(strings.TrimSpace(q))
	if n, err := strconv.Atoi(q); err == nil && n == o.OrderNumber {
		return true
	}
	for _, campo := range []string{o.Cliente, o.Vendedor, o.TipoLetrero, o.TipoOrden, o.Factura, o.Cotizacion} {
		if strings.Contains(strings.ToLower(campo), q) {
			return true
		}
	}
	return false
}

// ── Transiciones ──────────────────────────────────────────────────────────────

func (s *ordenService) Avanzar(ctx context.Context, rol workflow.Rol, id uuid.UUID) (*dto.OrdenResponse, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrOrdenNoEncontrada
	}
	if !workflow.PuedeMover(rol, o.Status, workflow.Siguiente) {
		return nil, ErrPermisos
	}
	siguiente, err := workflow.Avanzar(o.Variante(), o.Status)
	if err != nil {
		return nil, err
	}
	return s.guardarEstado(ctx, o, siguiente)
}

func (s *ordenService) Paso(ctx context.Context, rol workflow.Rol, id uuid.UUID, dir workflow.Direccion) (*dto.OrdenResponse, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrOrdenNoEncontrada
	}
	if !workflow.PuedeMover(rol, o.Status, dir) {
		return nil, ErrPermisos
	}
	siguiente, err := workflow.Paso(o.Variante(), o.Status, dir)
	if err != nil {
		return nil, err
	}
	return s.guardarEstado(ctx, o, siguiente)
}

func (s *ordenService) Anular(ctx context.Context, rol workflow.Rol, id uuid.UUID) (*dto.OrdenResponse, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrOrdenNoEncontrada
	}
	if !workflow.PuedeAnular(rol) || o.Status == workflow.EstadoArchivada {
		return nil, ErrPermisos
	}
	return s.guardarEstado(ctx, o, workflow.EstadoAnulada)
}

func (s *ordenService) Archivar(ctx context.Context, rol workflow.Rol, id uuid.UUID) (*dto.OrdenResponse, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrOrdenNoEncontrada
	}
	if !workflow.PuedeArchivar(rol, o.Status) {
		return nil, ErrPermisos
	}
	return s.guardarEstado(ctx, o, workflow.EstadoArchivada)
}

func (s *ordenService) Desarchivar(ctx context.Context, rol workflow.Rol, id uuid.UUID) (*dto.OrdenResponse, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrOrdenNoEncontrada
	}
	if !workflow.PuedeDesarchivar(rol, o.Status) {
		return nil, ErrPermisos
	}
	return s.guardarEstado(ctx, o, workflow.EstadoFinalizada)
}

func (s *ordenService) guardarEstado(ctx context.Context, o *model.Orden, estado workflow.Estado) (*dto.OrdenResponse, error) {
	o.Status = estado
	o.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, *o); err != nil {
		return nil, err
	}
	resp := ordenToResponse(o)
	return &resp, nil
}

// ── Eliminar ──────────────────────────────────────────────────────────────────

func (s *ordenService) Eliminar(ctx context.Context, rol workflow.Rol, id uuid.UUID) error {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ErrOrdenNoEncontrada
	}
	if !workflow.PuedeEliminar(rol) {
		return ErrPermisos
	}
	if o.Status != workflow.EstadoAnulada {
		return ErrEliminarNoAnulada
	}
	return s.repo.Delete(ctx, id)
}

// ── Clonar ────────────────────────────────────────────────────────────────────

// Clonar produces a detached draft: line items and metadata copied, but
// numbering, status, dates and payments reset. The draft only enters the
// collection when the client submits it through Crear.
func (s *ordenService) Clonar(ctx context.Context, id uuid.UUID) (*dto.ClonarOrdenResponse, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrOrdenNoEncontrada
	}

	draft := *o
	draft.ID = uuid.Nil
	draft.OrderNumber = s.repo.NextNumero(ctx)
	draft.Status = workflow.EstadoVentas
	draft.FechaEntrega = nil
	draft.Anticipo = decimal.Zero
	draft.Retencion = decimal.Zero
	draft.Factura = ""
	draft.Cotizacion = ""
	draft.FormaPagoAnticipo = model.FormaPagoNoAplica
	draft.CreditoVenceAnticipo = ""
	draft.NotaAnticipo = ""
	draft.FormaPagoSaldo = model.FormaPagoNoAplica
	draft.CreditoVenceSaldo = ""
	draft.NotaSaldo = ""
	draft.CreatedAt = time.Time{}
	draft.UpdatedAt = time.Time{}

	// With the advance zeroed the full total is outstanding again.
	finance.Recalcular(&draft)

	resp := ordenToResponse(&draft)
	resp.ID = ""
	resp.CreatedAt = ""
	resp.UpdatedAt = ""
	return &dto.ClonarOrdenResponse{Draft: resp}, nil
}

// ── Checklist de producción ───────────────────────────────────────────────────

func (s *ordenService) AlternarProducto(ctx context.Context, rol workflow.Rol, id uuid.UUID, indice int) (*dto.OrdenResponse, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrOrdenNoEncontrada
	}
	if !workflow.PuedeAlternarProducto(rol, o.Status) {
		return nil, ErrPermisos
	}
	if indice < 0 || indice >= len(o.Productos) {
		return nil, ErrProductoInvalido
	}
	o.Productos[indice].Completed = !o.Productos[indice].Completed
	o.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, *o); err != nil {
		return nil, err
	}
	resp := ordenToResponse(o)
	return &resp, nil
}

// ── Resumen ───────────────────────────────────────────────────────────────────

func (s *ordenService) Resumen(ctx context.Context) (*dto.ResumenResponse, error) {
	todas := s.repo.List(ctx)

	porEstado := make(map[string]int, len(workflow.Estados))
	for _, e := range workflow.Estados {
		porEstado[string(e)] = 0
	}
	activas := 0
	montoTotal := decimal.Zero
	saldoTotal := decimal.Zero

	for _, o := range todas {
		porEstado[string(o.Status)]++
		if !workflow.EsLateral(o.Status) && o.Status != workflow.EstadoFinalizada {
			activas++
		}
		if o.Status != workflow.EstadoAnulada {
			montoTotal = montoTotal.Add(o.Financials.Total)
			if o.Financials.Saldo.IsPositive() {
				saldoTotal = saldoTotal.Add(o.Financials.Saldo)
			}
		}
	}

	return &dto.ResumenResponse{
		PorEstado:  porEstado,
		Activas:    activas,
		Total:      len(todas),
		MontoTotal: montoTotal,
		SaldoTotal: saldoTotal,
	}, nil
}

// ── Estadísticas ──────────────────────────────────────────────────────────────

func (s *ordenService) Estadisticas(ctx context.Context, filtro dto.EstadisticasFilter) (*dto.EstadisticasResponse, error) {
	todas := s.repo.List(ctx)

	var desde, hasta time.Time
	if filtro.Desde != "" {
		desde, _ = time.Parse("2006-01-02", filtro.Desde)
	}
	if filtro.Hasta != "" {
		hasta, _ = time.Parse("2006-01-02", filtro.Hasta)
		hasta = hasta.Add(24 * time.Hour)
	}

	meses := make(map[string]*dto.SerieMensual)
	clientes := make(map[string]*dto.RankingItem)
	vendedores := make(map[string]*dto.RankingItem)
	tipos := make(map[string]*dto.RankingItem)
	totalOrdenes := 0
	monto := decimal.Zero
	saldo := decimal.Zero

	for _, o := range todas {
		if o.Status == workflow.EstadoAnulada {
			continue
		}
		if !desde.IsZero() && o.CreatedAt.Before(desde) {
			continue
		}
		if !hasta.IsZero() && !o.CreatedAt.Before(hasta) {
			continue
		}

		totalOrdenes++
		monto = monto.Add(o.Financials.Total)
		if o.Financials.Saldo.IsPositive() {
			saldo = saldo.Add(o.Financials.Saldo)
		}

		mes := o.CreatedAt.Format("2006-01")
		if meses[mes] == nil {
			meses[mes] = &dto.SerieMensual{Mes: mes}
		}
		meses[mes].Cantidad++
		meses[mes].Monto = meses[mes].Monto.Add(o.Financials.Total)

		acumular(clientes, o.Cliente, o.Financials.Total)
		acumular(vendedores, o.Vendedor, o.Financials.Total)
		acumular(tipos, o.TipoOrden, o.Financials.Total)
	}

	return &dto.EstadisticasResponse{
		VentasPorMes:   ordenarMeses(meses),
		TopClientes:    ranking(clientes, 10),
		TopVendedores:  ranking(vendedores, 10),
		PorTipoOrden:   ranking(tipos, 0),
		OrdenesTotales: totalOrdenes,
		MontoAcumulado: monto,
		SaldoPendiente: saldo,
	}, nil
}

func acumular(m map[string]*dto.RankingItem, nombre string, monto decimal.Decimal) {
	if nombre == "" {
		return
	}
	if m[nombre] == nil {
		m[nombre] = &dto.RankingItem{Nombre: nombre}
	}
	m[nombre].Cantidad++
	m[nombre].Monto = m[nombre].Monto.Add(monto)
}

func ordenarMeses(m map[string]*dto.SerieMensual) []dto.SerieMensual {
	out := make([]dto.SerieMensual, 0, len(m))
	for _, v := range m {
		out = append(out, *v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Mes < out[j].Mes })
	return out
}

// ranking sorts by accumulated amount, descending. limit 0 = all.
func ranking(m map[string]*dto.RankingItem, limit int) []dto.RankingItem {
	out := make([]dto.RankingItem, 0, len(m))
	for _, v := range m {
		out = append(out, *v)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Monto.Equal(out[j].Monto) {
			return out[i].Monto.GreaterThan(out[j].Monto)
		}
		return out[i].Nombre < out[j].Nombre
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// ── Exportación ───────────────────────────────────────────────────────────────

// ExportarCSV renders the current view, unpaginated, as a spreadsheet.
func (s *ordenService) ExportarCSV(ctx context.Context, rol workflow.Rol, filtro dto.OrdenFilter) ([]byte, error) {
	filtradas := make([]model.Orden, 0)
	for _, o := range s.repo.List(ctx) {
		if pasaFiltro(rol, filtro, o) {
			filtradas = append(filtradas, o)
		}
	}
	return export.OrdenesCSV(filtradas)
}

func (s *ordenService) PDF(ctx context.Context, id uuid.UUID) ([]byte, int, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, 0, ErrOrdenNoEncontrada
	}
	raw, err := export.OrdenPDF(o)
	if err != nil {
		return nil, 0, err
	}
	return raw, o.OrderNumber, nil
}

// ── Mapeo ─────────────────────────────────────────────────────────────────────

func ordenToResponse(o *model.Orden) dto.OrdenResponse {
	productos := make([]dto.ProductoResponse, 0, len(o.Productos))
	for _, p := range o.Productos {
		productos = append(productos, dto.ProductoResponse{
			Descripcion: p.Descripcion,
			Cantidad:    p.Cantidad,
			Precio:      p.Precio,
			Completed:   p.Completed,
		})
	}
	var imagenes []dto.ImagenRequest
	for _, img := range o.Imagenes {
		imagenes = append(imagenes, dto.ImagenRequest{Nombre: img.Nombre, URL: img.URL})
	}

	resp := dto.OrdenResponse{
		ID:          o.ID.String(),
		OrderNumber: o.OrderNumber,
		TipoOrden:   o.TipoOrden,
		TipoLetrero: o.TipoLetrero,
		Cliente:     o.Cliente,
		Vendedor:    o.Vendedor,
		Status:      string(o.Status),
		Variante:    string(o.Variante()),

		Productos: productos,
		Imagenes:  imagenes,

		Factura:             o.Factura,
		Cotizacion:          o.Cotizacion,
		Anticipo:            o.Anticipo,
		Retencion:           o.Retencion,
		DescuentoPorcentaje: o.DescuentoPorcentaje,
		AplicarIva:          o.AplicarIva,

		FormaPagoAnticipo:    o.FormaPagoAnticipo,
		CreditoVenceAnticipo: o.CreditoVenceAnticipo,
		NotaAnticipo:         o.NotaAnticipo,
		FormaPagoSaldo:       o.FormaPagoSaldo,
		CreditoVenceSaldo:    o.CreditoVenceSaldo,
		NotaSaldo:            o.NotaSaldo,

		Notas: o.Notas,

		Financials: dto.FinancialsResponse{
			Subtotal: o.Financials.Subtotal,
			IVA:      o.Financials.IVA,
			Total:    o.Financials.Total,
			Saldo:    o.Financials.Saldo,
		},
	}
	if o.FechaEntrega != nil {
		resp.FechaEntrega = o.FechaEntrega.Format(time.RFC3339)
	}
	if !o.CreatedAt.IsZero() {
		resp.CreatedAt = o.CreatedAt.Format(time.RFC3339)
		resp.UpdatedAt = o.UpdatedAt.Format(time.RFC3339)
	}
	return resp
}
