package dto

import "github.com/shopspring/decimal"

// ─── Filter / List ──────────────────────────────────────────────────────────

// OrdenFilter is bound from the query string of GET /v1/ordenes.
// Vista selects one of the named list views of the panel; the rest are
// the panel's dropdown and date-range refinements on top of the view.
type OrdenFilter struct {
	Vista    string `form:"vista,default=activas" validate:"omitempty,oneof=todas activas sin-factura facturadas credito finalizadas anuladas archivadas"`
	Buscar   string `form:"buscar"`
	Estado   string `form:"estado"   validate:"omitempty,oneof=VENTAS PRODUCCION 'VENTAS POR RETIRAR' CONTABILIDAD FINALIZADA ANULADA ARCHIVADA"`
	Cliente  string `form:"cliente"`
	Vendedor string `form:"vendedor"`
	Desde    string `form:"desde" validate:"omitempty,datetime=2006-01-02"`
	Hasta    string `form:"hasta" validate:"omitempty,datetime=2006-01-02"`
	Page     int    `form:"page,default=1"   validate:"min=1"`
	Limit    int    `form:"limit,default=50" validate:"min=1,max=200"`
}

type OrdenListResponse struct {
	Data  []OrdenResponse `json:"data"`
	Total int             `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
	// The totals sum over every matching order, not just the returned
	// page: monto = financials.total, abonos = anticipos recibidos,
	// saldo = financials.saldo.
	TotalMonto  decimal.Decimal `json:"total_monto"`
	TotalAbonos decimal.Decimal `json:"total_abonos"`
	TotalSaldo  decimal.Decimal `json:"total_saldo"`
}

// ─── Request DTOs ────────────────────────────────────────────────────────────

type ProductoRequest struct {
	Descripcion string          `json:"descripcion"`
	Cantidad    decimal.Decimal `json:"cantidad" validate:"min=0"`
	Precio      decimal.Decimal `json:"precio"   validate:"min=0"`
	Completed   bool            `json:"completed"`
}

type ImagenRequest struct {
	Nombre string `json:"nombre" validate:"required"`
	// URL is a base64 data URI; the handler enforces the 2 MB cap.
	URL string `json:"url" validate:"required"`
}

type CrearOrdenRequest struct {
	TipoOrden   string `json:"tipo_orden"   validate:"required"`
	TipoLetrero string `json:"tipo_letrero" validate:"required"`
	Cliente     string `json:"cliente"      validate:"required"`
	Vendedor    string `json:"vendedor"     validate:"required"`

	Productos []ProductoRequest `json:"productos" validate:"required,min=1,dive"`
	Imagenes  []ImagenRequest   `json:"imagenes"  validate:"omitempty,dive"`

	Factura             string          `json:"factura"`
	Cotizacion          string          `json:"cotizacion"`
	Anticipo            decimal.Decimal `json:"anticipo"             validate:"min=0"`
	Retencion           decimal.Decimal `json:"retencion"            validate:"min=0"`
	DescuentoPorcentaje decimal.Decimal `json:"descuento_porcentaje" validate:"min=0,max=100"`
	// DescuentoValor, when set, overrides DescuentoPorcentaje: the
	// service converts the absolute amount into the stored percentage.
	DescuentoValor *decimal.Decimal `json:"descuento_valor" validate:"omitempty"`
	AplicarIva     bool             `json:"aplicar_iva"`

	FormaPagoAnticipo    string `json:"forma_pago_anticipo"    validate:"omitempty,oneof=no_aplica efectivo transferencia credito"`
	CreditoVenceAnticipo string `json:"credito_vence_anticipo" validate:"omitempty,datetime=2006-01-02"`
	NotaAnticipo         string `json:"nota_anticipo"`
	FormaPagoSaldo       string `json:"forma_pago_saldo"       validate:"omitempty,oneof=no_aplica efectivo transferencia credito"`
	CreditoVenceSaldo    string `json:"credito_vence_saldo"    validate:"omitempty,datetime=2006-01-02"`
	NotaSaldo            string `json:"nota_saldo"`

	Notas        string `json:"notas"`
	FechaEntrega string `json:"fecha_entrega" validate:"omitempty"`

	// OrderNumber is only honored when it comes from a clone draft.
	OrderNumber int `json:"orden_numero" validate:"omitempty,min=1"`
}

// ActualizarOrdenRequest carries the same fields as creation; the service
// merges it over the stored order and recomputes the financial snapshot.
type ActualizarOrdenRequest struct {
	TipoOrden   string `json:"tipo_orden"   validate:"required"`
	TipoLetrero string `json:"tipo_letrero" validate:"required"`
	Cliente     string `json:"cliente"      validate:"required"`
	Vendedor    string `json:"vendedor"     validate:"required"`

	Productos []ProductoRequest `json:"productos" validate:"required,min=1,dive"`
	Imagenes  []ImagenRequest   `json:"imagenes"  validate:"omitempty,dive"`

	Factura             string           `json:"factura"`
	Cotizacion          string           `json:"cotizacion"`
	Anticipo            decimal.Decimal  `json:"anticipo"             validate:"min=0"`
	Retencion           decimal.Decimal  `json:"retencion"            validate:"min=0"`
	DescuentoPorcentaje decimal.Decimal  `json:"descuento_porcentaje" validate:"min=0,max=100"`
	DescuentoValor      *decimal.Decimal `json:"descuento_valor"      validate:"omitempty"`
	AplicarIva          bool             `json:"aplicar_iva"`

	FormaPagoAnticipo    string `json:"forma_pago_anticipo"    validate:"omitempty,oneof=no_aplica efectivo transferencia credito"`
	CreditoVenceAnticipo string `json:"credito_vence_anticipo" validate:"omitempty,datetime=2006-01-02"`
	NotaAnticipo         string `json:"nota_anticipo"`
	FormaPagoSaldo       string `json:"forma_pago_saldo"       validate:"omitempty,oneof=no_aplica efectivo transferencia credito"`
	CreditoVenceSaldo    string `json:"credito_vence_saldo"    validate:"omitempty,datetime=2006-01-02"`
	NotaSaldo            string `json:"nota_saldo"`

	Notas        string `json:"notas"`
	FechaEntrega string `json:"fecha_entrega" validate:"omitempty"`
}

type PasoRequest struct {
	Direccion string `json:"direccion" validate:"required,oneof=next prev"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type FinancialsResponse struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	IVA      decimal.Decimal `json:"iva"`
	Total    decimal.Decimal `json:"total"`
	Saldo    decimal.Decimal `json:"saldo"`
}

type ProductoResponse struct {
	Descripcion string          `json:"descripcion"`
	Cantidad    decimal.Decimal `json:"cantidad"`
	Precio      decimal.Decimal `json:"precio"`
	Completed   bool            `json:"completed"`
}

type OrdenResponse struct {
	ID          string `json:"id"`
	OrderNumber int    `json:"orden_numero"`
	TipoOrden   string `json:"tipo_orden"`
	TipoLetrero string `json:"tipo_letrero"`
	Cliente     string `json:"cliente"`
	Vendedor    string `json:"vendedor"`
	Status      string `json:"status"`
	Variante    string `json:"variante"`

	Productos []ProductoResponse `json:"productos"`
	Imagenes  []ImagenRequest    `json:"imagenes,omitempty"`

	Factura             string          `json:"factura"`
	Cotizacion          string          `json:"cotizacion"`
	Anticipo            decimal.Decimal `json:"anticipo"`
	Retencion           decimal.Decimal `json:"retencion"`
	DescuentoPorcentaje decimal.Decimal `json:"descuento_porcentaje"`
	AplicarIva          bool            `json:"aplicar_iva"`

	FormaPagoAnticipo    string `json:"forma_pago_anticipo"`
	CreditoVenceAnticipo string `json:"credito_vence_anticipo,omitempty"`
	NotaAnticipo         string `json:"nota_anticipo,omitempty"`
	FormaPagoSaldo       string `json:"forma_pago_saldo"`
	CreditoVenceSaldo    string `json:"credito_vence_saldo,omitempty"`
	NotaSaldo            string `json:"nota_saldo,omitempty"`

	Notas string `json:"notas,omitempty"`

	Financials FinancialsResponse `json:"financials"`

	FechaEntrega string `json:"fecha_entrega,omitempty"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

// ClonarOrdenResponse is a detached draft: it has a reserved number but
// is not inserted until the client submits it through create.
type ClonarOrdenResponse struct {
	Draft OrdenResponse `json:"draft"`
}

// ResumenResponse is the per-status count card of the panel header.
type ResumenResponse struct {
	PorEstado  map[string]int  `json:"por_estado"`
	Activas    int             `json:"activas"`
	Total      int             `json:"total"`
	MontoTotal decimal.Decimal `json:"monto_total"`
	SaldoTotal decimal.Decimal `json:"saldo_total"`
}

// ─── Estadísticas ────────────────────────────────────────────────────────────

type EstadisticasFilter struct {
	Desde string `form:"desde" validate:"omitempty,datetime=2006-01-02"`
	Hasta string `form:"hasta" validate:"omitempty,datetime=2006-01-02"`
}

type SerieMensual struct {
	Mes      string          `json:"mes"` // YYYY-MM
	Cantidad int             `json:"cantidad"`
	Monto    decimal.Decimal `json:"monto"`
}

type RankingItem struct {
	Nombre   string          `json:"nombre"`
	Cantidad int             `json:"cantidad"`
	Monto    decimal.Decimal `json:"monto"`
}

type EstadisticasResponse struct {
	VentasPorMes   []SerieMensual  `json:"ventas_por_mes"`
	TopClientes    []RankingItem   `json:"top_clientes"`
	TopVendedores  []RankingItem   `json:"top_vendedores"`
	PorTipoOrden   []RankingItem   `json:"por_tipo_orden"`
	OrdenesTotales int             `json:"ordenes_totales"`
	MontoAcumulado decimal.Decimal `json:"monto_acumulado"`
	SaldoPendiente decimal.Decimal `json:"saldo_pendiente"`
}
