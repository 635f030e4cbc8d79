// Package export renders orders and daily reports into the files the
// office downloads: CSV for spreadsheets and PDF for printing.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"ordenespro/internal/dto"
	"ordenespro/internal/model"
)

// sepHint makes Excel split columns on comma regardless of the host
// machine's regional settings.
const sepHint = "sep=,\n"

// OrdenesCSV renders the order listing with one row per order.
func OrdenesCSV(ordenes []model.Orden) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(sepHint)
	w := csv.NewWriter(&buf)

	header := []string{
		"Nº Orden", "Fecha", "Cliente", "Vendedor", "Tipo", "Letrero", "Estado",
		"Subtotal", "IVA", "Total", "Anticipo", "Retención", "Saldo",
		"Factura", "Cotización",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, o := range ordenes {
		row := []string{
			fmt.Sprintf("%07d", o.OrderNumber),
			o.CreatedAt.Format("2006-01-02"),
			o.Cliente,
			o.Vendedor,
			o.TipoOrden,
			o.TipoLetrero,
			string(o.Status),
			o.Financials.Subtotal.StringFixed(2),
			o.Financials.IVA.StringFixed(2),
			o.Financials.Total.StringFixed(2),
			o.Anticipo.StringFixed(2),
			o.Retencion.StringFixed(2),
			o.Financials.Saldo.StringFixed(2),
			o.Factura,
			o.Cotizacion,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

// ReporteCSV renders one date's reconciled ledger, transactions first
// and the closing figures as trailing summary rows.
func ReporteCSV(rep *dto.ReporteDiarioResponse) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(sepHint)
	w := csv.NewWriter(&buf)

	encabezado := [][]string{
		{"Reporte Diario", rep.Fecha},
		{},
		{"Tipo", "Descripción", "Nº Orden", "Ingreso", "Egreso", "Nota", "Manual"},
	}
	for _, row := range encabezado {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	for _, t := range rep.Transacciones {
		numero := ""
		if t.OrdenNumero > 0 {
			numero = strconv.Itoa(t.OrdenNumero)
		}
		manual := "NO"
		if t.EsManual {
			manual = "SI"
		}
		row := []string{
			t.Tipo, t.Descripcion, numero,
			t.Ingreso.StringFixed(2), t.Egreso.StringFixed(2),
			t.NotaSaldo, manual,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	resumen := [][]string{
		{},
		{"Inicio de caja", rep.InicioCaja.StringFixed(2)},
		{"Total ingresos", rep.TotalIngresos.StringFixed(2)},
		{"Total egresos", rep.TotalEgresos.StringFixed(2)},
		{"Efectivo antes de depósito", rep.EfectivoAntesDeposito.StringFixed(2)},
		{"Depósito diario (" + rep.Banco + ")", rep.DepositoDiario.StringFixed(2)},
		{"Efectivo tras depósito", rep.EfectivoTrasDeposito.StringFixed(2)},
		{"Efectivo real contado", rep.EfectivoRealCierre.StringFixed(2)},
		{"Descuadre", rep.Descuadre.StringFixed(2)},
		{},
		{"Generado", time.Now().Format("2006-01-02 15:04")},
	}
	for _, row := range resumen {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
