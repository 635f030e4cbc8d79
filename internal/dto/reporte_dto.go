package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// ActualizarReporteRequest sets the hand-counted figures of a date.
type ActualizarReporteRequest struct {
	InicioCaja         decimal.Decimal `json:"inicio_caja"          validate:"min=0"`
	EfectivoRealCierre decimal.Decimal `json:"efectivo_real_cierre" validate:"min=0"`
	DepositoDiario     decimal.Decimal `json:"deposito_diario"      validate:"min=0"`
	Banco              string          `json:"banco"`
}

type TransaccionRequest struct {
	Tipo        string          `json:"tipo"        validate:"required,oneof='VALE DE CAJA' 'INGRESO EXTRA' 'NOTA'"`
	Descripcion string          `json:"descripcion" validate:"required"`
	OrdenNumero int             `json:"orden_numero" validate:"omitempty,min=1"`
	Ingreso     decimal.Decimal `json:"ingreso"     validate:"min=0"`
	Egreso      decimal.Decimal `json:"egreso"      validate:"min=0"`
	NotaSaldo   string          `json:"nota_saldo"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type TransaccionResponse struct {
	ID          string          `json:"id"`
	Tipo        string          `json:"tipo"`
	Descripcion string          `json:"descripcion"`
	OrdenNumero int             `json:"orden_numero,omitempty"`
	Ingreso     decimal.Decimal `json:"ingreso"`
	Egreso      decimal.Decimal `json:"egreso"`
	NotaSaldo   string          `json:"nota_saldo,omitempty"`
	EsManual    bool            `json:"es_manual"`
}

// ReporteDiarioResponse merges the persisted record with the automatic
// transactions and the derived totals for one date.
type ReporteDiarioResponse struct {
	Fecha              string          `json:"fecha"`
	InicioCaja         decimal.Decimal `json:"inicio_caja"`
	EfectivoRealCierre decimal.Decimal `json:"efectivo_real_cierre"`
	DepositoDiario     decimal.Decimal `json:"deposito_diario"`
	Banco              string          `json:"banco,omitempty"`

	Transacciones []TransaccionResponse `json:"transacciones"`

	TotalIngresos         decimal.Decimal `json:"total_ingresos"`
	TotalEgresos          decimal.Decimal `json:"total_egresos"`
	EfectivoAntesDeposito decimal.Decimal `json:"efectivo_antes_deposito"`
	EfectivoTrasDeposito  decimal.Decimal `json:"efectivo_tras_deposito"`
	// Descuadre: positive = surplus, negative = shortage.
	Descuadre decimal.Decimal `json:"descuadre"`
}
