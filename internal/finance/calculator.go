// Package finance computes the money math of an order: subtotal over the
// priced line items, discount, 15% IVA and the outstanding balance. Every
// function is pure; the caller snapshots the result into the order.
package finance

import (
	"github.com/shopspring/decimal"

	"ordenespro/internal/model"
)

// TasaIVA is fixed. The business operates under a single tax regime.
var TasaIVA = decimal.NewFromFloat(0.15)

var cien = decimal.NewFromInt(100)

// Desglose is the full breakdown derived from an order's inputs.
type Desglose struct {
	Subtotal       decimal.Decimal
	DescuentoValor decimal.Decimal
	BaseImponible  decimal.Decimal
	IVA            decimal.Decimal
	Total          decimal.Decimal
	Saldo          decimal.Decimal
}

// Snapshot projects the breakdown into the persisted cache on the order.
func (d Desglose) Snapshot() model.Financials {
	return model.Financials{
		Subtotal: d.Subtotal,
		IVA:      d.IVA,
		Total:    d.Total,
		Saldo:    d.Saldo,
	}
}

// Subtotal sums precio*cantidad over rows with a non-empty description.
// Placeholder rows contribute nothing even if they carry numbers.
func Subtotal(productos []model.Producto) decimal.Decimal {
	sub := decimal.Zero
	for _, p := range productos {
		if p.EsVacio() {
			continue
		}
		sub = sub.Add(p.Precio.Mul(p.Cantidad))
	}
	return sub
}

// Calcular derives the complete breakdown. descuentoPct is a percentage
// of the subtotal; aplicarIva switches the 15% tax on the discounted
// base. Saldo may go negative, which the views render as overpayment.
func Calcular(productos []model.Producto, descuentoPct decimal.Decimal, aplicarIva bool, anticipo, retencion decimal.Decimal) Desglose {
	sub := Subtotal(productos)
	descuento := sub.Mul(descuentoPct).Div(cien)
	base := sub.Sub(descuento)

	iva := decimal.Zero
	if aplicarIva {
		iva = base.Mul(TasaIVA)
	}
	total := base.Add(iva)
	saldo := total.Sub(anticipo).Sub(retencion)

	return Desglose{
		Subtotal:       sub,
		DescuentoValor: descuento,
		BaseImponible:  base,
		IVA:            iva,
		Total:          total,
		Saldo:          saldo,
	}
}

// PorcentajeDesdeValor converts an absolute discount amount into the
// percentage the order stores. A zero subtotal yields zero, never a
// division error.
func PorcentajeDesdeValor(valor, subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.IsZero() {
		return decimal.Zero
	}
	return valor.Mul(cien).Div(subtotal)
}

// Recalcular recomputes and stamps the cached snapshot on the order.
func Recalcular(o *model.Orden) {
	d := Calcular(o.Productos, o.DescuentoPorcentaje, o.AplicarIva, o.Anticipo, o.Retencion)
	o.Financials = d.Snapshot()
}
