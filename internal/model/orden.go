package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"ordenespro/internal/workflow"
)

// Producto is one line item of an order. Completed is the production
// checklist flag, toggled on the floor as each piece gets built.
type Producto struct {
	Descripcion string          `json:"descripcion"`
	Cantidad    decimal.Decimal `json:"cantidad"`
	Precio      decimal.Decimal `json:"precio"`
	Completed   bool            `json:"completed"`
}

// EsVacio reports whether the row counts for the subtotal: rows with an
// empty description are placeholders and never priced.
func (p Producto) EsVacio() bool {
	return p.Descripcion == ""
}

// Financials is the cached projection of the order's money math. It is
// recomputed from the raw line items and payment fields on every edit;
// the persisted snapshot is display convenience, never source of truth.
type Financials struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	IVA      decimal.Decimal `json:"iva"`
	Total    decimal.Decimal `json:"total"`
	Saldo    decimal.Decimal `json:"saldo"`
}

// Imagen is a design reference attached to an order, stored inline as a
// data URI. Uploads above 2 MB are rejected at the handler.
type Imagen struct {
	Nombre string `json:"nombre"`
	URL    string `json:"url"`
}

// Orden is the central entity: a production job that travels one of the
// two workflow sequences from VENTAS to FINALIZADA.
type Orden struct {
	ID          uuid.UUID `json:"id"`
	OrderNumber int       `json:"orden_numero"`
	// TipoOrden is the free-text job type chosen at creation; a "(VC)"
	// marker in it selects the short workflow.
	TipoOrden   string `json:"tipo_orden"`
	TipoLetrero string `json:"tipo_letrero"`
	// Cliente is a weak link by display name, not a foreign key.
	Cliente  string          `json:"cliente"`
	Vendedor string          `json:"vendedor"`
	Status   workflow.Estado `json:"status"`

	Productos []Producto `json:"productos"`
	Imagenes  []Imagen   `json:"imagenes,omitempty"`

	Factura             string          `json:"factura"`
	Cotizacion          string          `json:"cotizacion"`
	Anticipo            decimal.Decimal `json:"anticipo"`
	Retencion           decimal.Decimal `json:"retencion"`
	DescuentoPorcentaje decimal.Decimal `json:"descuento_porcentaje"`
	AplicarIva          bool            `json:"aplicar_iva"`

	// Payment terms, one set for the advance and one for the balance.
	// FormaPago "credito" enables the matching due date.
	FormaPagoAnticipo    string `json:"forma_pago_anticipo"`
	CreditoVenceAnticipo string `json:"credito_vence_anticipo,omitempty"`
	NotaAnticipo         string `json:"nota_anticipo,omitempty"`
	FormaPagoSaldo       string `json:"forma_pago_saldo"`
	CreditoVenceSaldo    string `json:"credito_vence_saldo,omitempty"`
	NotaSaldo            string `json:"nota_saldo,omitempty"`

	Notas string `json:"notas,omitempty"`

	Financials Financials `json:"financials"`

	FechaEntrega *time.Time `json:"fecha_entrega,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Variante resolves the workflow sequence this order follows.
func (o *Orden) Variante() workflow.Variante {
	return workflow.VarianteDe(o.TipoOrden)
}

// PagoCredito reports whether either payment leg was taken on credit.
func (o *Orden) PagoCredito() bool {
	return o.FormaPagoAnticipo == FormaPagoCredito || o.FormaPagoSaldo == FormaPagoCredito
}

// Payment method values for FormaPagoAnticipo / FormaPagoSaldo.
const (
	FormaPagoNoAplica      = "no_aplica"
	FormaPagoEfectivo      = "efectivo"
	FormaPagoTransferencia = "transferencia"
	FormaPagoCredito       = "credito"
)
