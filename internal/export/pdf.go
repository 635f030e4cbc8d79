package export

// pdf.go — printable sheets using go-pdf/fpdf:
//   - OrdenPDF: the A4 work sheet that travels with the job through the
//     shop (products checklist, payment summary, delivery date).
//   - ReportePDF: one date's reconciled cash ledger for the folder.

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"

	"ordenespro/internal/dto"
	"ordenespro/internal/model"
)

var decimalCien = decimal.NewFromInt(100)

// OrdenPDF renders the order work sheet.
func OrdenPDF(o *model.Orden) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, fmt.Sprintf("Orden de Producción N° %07d", o.OrderNumber), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, o.CreatedAt.Format("02/01/2006 15:04"), "", 1, "C", false, 0, "")
	pdf.Ln(3)

	// ── Datos ────────────────────────────────────────────────────────────────
	campo := func(etiqueta, valor string) {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(40, 6, etiqueta, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(contentW-40, 6, valor, "", 1, "L", false, 0, "")
	}
	campo("Cliente:", o.Cliente)
	campo("Vendedor:", o.Vendedor)
	campo("Tipo de orden:", o.TipoOrden)
	campo("Letrero:", o.TipoLetrero)
	campo("Estado:", string(o.Status))
	if o.FechaEntrega != nil {
		campo("Fecha de entrega:", o.FechaEntrega.Format("02/01/2006 15:04"))
	}
	if o.Factura != "" {
		campo("Factura:", o.Factura)
	}
	if o.Cotizacion != "" {
		campo("Cotización:", o.Cotizacion)
	}
	pdf.Ln(3)

	// ── Productos ────────────────────────────────────────────────────────────
	col1 := contentW * 0.50
	col2 := contentW * 0.12
	col3 := contentW * 0.19
	col4 := contentW * 0.19

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1, 6, "Descripción", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 6, "Cant", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 6, "Precio", "B", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 6, "Importe", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, p := range o.Productos {
		if p.EsVacio() {
			continue
		}
		marca := "[ ]"
		if p.Completed {
			marca = "[X]"
		}
		pdf.CellFormat(col1, 6, marca+" "+p.Descripcion, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 6, p.Cantidad.String(), "", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 6, "$"+p.Precio.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.CellFormat(col4, 6, "$"+p.Precio.Mul(p.Cantidad).StringFixed(2), "", 1, "R", false, 0, "")
	}
	pdf.Ln(2)
	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(2)

	// ── Totales ──────────────────────────────────────────────────────────────
	total := func(etiqueta, valor string, negrita bool) {
		estilo := ""
		if negrita {
			estilo = "B"
		}
		pdf.SetFont("Helvetica", estilo, 9)
		pdf.CellFormat(col1+col2+col3, 6, etiqueta, "", 0, "R", false, 0, "")
		pdf.CellFormat(col4, 6, valor, "", 1, "R", false, 0, "")
	}
	total("Subtotal:", "$"+o.Financials.Subtotal.StringFixed(2), false)
	if !o.DescuentoPorcentaje.IsZero() {
		total("Descuento ("+o.DescuentoPorcentaje.StringFixed(1)+"%):",
			"-$"+o.Financials.Subtotal.Mul(o.DescuentoPorcentaje).Div(decimalCien).StringFixed(2), false)
	}
	if o.AplicarIva {
		total("IVA 15%:", "$"+o.Financials.IVA.StringFixed(2), false)
	}
	total("TOTAL:", "$"+o.Financials.Total.StringFixed(2), true)
	total("Anticipo:", "-$"+o.Anticipo.StringFixed(2), false)
	if !o.Retencion.IsZero() {
		total("Retención:", "-$"+o.Retencion.StringFixed(2), false)
	}
	saldoEtiqueta := "SALDO:"
	if !o.Financials.Saldo.IsPositive() {
		saldoEtiqueta = "SALDO (cancelado):"
	}
	total(saldoEtiqueta, "$"+o.Financials.Saldo.StringFixed(2), true)

	if o.Notas != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(contentW, 5, "Notas:", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.MultiCell(contentW, 5, o.Notas, "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: orden %d: %w", o.OrderNumber, err)
	}
	return buf.Bytes(), nil
}

// ReportePDF renders one date's reconciled cash ledger.
func ReportePDF(rep *dto.ReporteDiarioResponse) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentW, 8, "Reporte Diario de Caja", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, rep.Fecha, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	col1 := contentW * 0.16
	col2 := contentW * 0.36
	col3 := contentW * 0.12
	col4 := contentW * 0.12
	col5 := contentW * 0.24

	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(col1, 6, "Tipo", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 6, "Descripción", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 6, "Ingreso", "B", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 6, "Egreso", "B", 0, "R", false, 0, "")
	pdf.CellFormat(col5, 6, "Nota", "B", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	for _, t := range rep.Transacciones {
		desc := t.Descripcion
		if t.OrdenNumero > 0 {
			desc = fmt.Sprintf("#%d %s", t.OrdenNumero, desc)
		}
		if r := []rune(desc); len(r) > 42 {
			desc = string(r[:39]) + "..."
		}
		pdf.CellFormat(col1, 5, t.Tipo, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 5, desc, "", 0, "L", false, 0, "")
		pdf.CellFormat(col3, 5, t.Ingreso.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.CellFormat(col4, 5, t.Egreso.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.CellFormat(col5, 5, t.NotaSaldo, "", 1, "L", false, 0, "")
	}

	pdf.Ln(2)
	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(2)

	fila := func(etiqueta, valor string, negrita bool) {
		estilo := ""
		if negrita {
			estilo = "B"
		}
		pdf.SetFont("Helvetica", estilo, 9)
		pdf.CellFormat(col1+col2+col3, 6, etiqueta, "", 0, "R", false, 0, "")
		pdf.CellFormat(col4+col5, 6, "$"+valor, "", 1, "R", false, 0, "")
	}
	fila("Inicio de caja:", rep.InicioCaja.StringFixed(2), false)
	fila("Total ingresos:", rep.TotalIngresos.StringFixed(2), false)
	fila("Total egresos:", rep.TotalEgresos.StringFixed(2), false)
	fila("Efectivo antes de depósito:", rep.EfectivoAntesDeposito.StringFixed(2), false)
	deposito := "Depósito diario:"
	if rep.Banco != "" {
		deposito = "Depósito diario (" + rep.Banco + "):"
	}
	fila(deposito, rep.DepositoDiario.StringFixed(2), false)
	fila("Efectivo tras depósito:", rep.EfectivoTrasDeposito.StringFixed(2), false)
	fila("Efectivo real contado:", rep.EfectivoRealCierre.StringFixed(2), false)
	fila("DESCUADRE:", rep.Descuadre.StringFixed(2), true)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: reporte %s: %w", rep.Fecha, err)
	}
	return buf.Bytes(), nil
}
