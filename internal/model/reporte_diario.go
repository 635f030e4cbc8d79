package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction types in the daily ledger. VENTA and RETIRO rows are
// derived from the order collection and never persisted; the rest are
// manual entries.
const (
	TransaccionVenta   = "VENTA"
	TransaccionRetiro  = "RETIRO"
	TransaccionVale    = "VALE DE CAJA"
	TransaccionIngreso = "INGRESO EXTRA"
	TransaccionNota    = "NOTA"
)

// Transaccion is one row of a day's cash movement list.
type Transaccion struct {
	ID          uuid.UUID       `json:"id"`
	Tipo        string          `json:"tipo"`
	Descripcion string          `json:"descripcion"`
	OrdenNumero int             `json:"orden_numero,omitempty"`
	Ingreso     decimal.Decimal `json:"ingreso"`
	Egreso      decimal.Decimal `json:"egreso"`
	// NotaSaldo carries "DEBE $x" or "CANCELADO" on automatic rows and
	// free text on manual ones.
	NotaSaldo string `json:"nota_saldo,omitempty"`
	EsManual  bool   `json:"es_manual"`
}

// ReporteDiario is the persisted part of one calendar date's ledger:
// the hand-counted figures plus the manual transaction rows. Automatic
// rows are recomputed from orders on every read.
type ReporteDiario struct {
	Fecha                 string          `json:"fecha"`
	InicioCaja            decimal.Decimal `json:"inicio_caja"`
	EfectivoRealCierre    decimal.Decimal `json:"efectivo_real_cierre"`
	DepositoDiario        decimal.Decimal `json:"deposito_diario"`
	Banco                 string          `json:"banco,omitempty"`
	TransaccionesManuales []Transaccion   `json:"transacciones_manuales"`
}
