package printer

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"sfacapi/internal/dto"
	"sfacapi/internal/escpos"
)

// ancho is the printable width of the 80 mm printers in the branches.
const ancho = 42

const (
	lineaDoble = "================================"
	lineaBaja  = "__________________________________________"
)

func moneda(d decimal.Decimal) string {
	return "L " + d.StringFixed(2)
}

func oGuion(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// densidadAlta raises print density on the SAT Q22 units, which otherwise
// print too faint to read carbon copies.
func densidadAlta(e *escpos.Encoder) {
	e.Raw(0x1b, 0x45, 0x01) // emphasize
	e.Raw(0x1b, 0x47, 0x01) // double-strike
}

// ReciboFactura renders the fiscal sales receipt.
func ReciboFactura(d dto.ImpresionFacturaRequest) []byte {
	e := escpos.New(ancho)
	e.Initialize()
	densidadAlta(e)

	// Company header
	e.Bold(true).Align(escpos.AlignCenter).Newline()
	nombre := d.Empresa.Nombre
	if nombre == "" {
		nombre = "EMPRESA"
	}
	e.Text(strings.ToUpper(nombre)).Bold(false).Newline()
	if d.Sucursal.Direccion != "" {
		e.Text(strings.ToUpper(d.Sucursal.Direccion)).Newline()
	}
	e.Text("RTN: " + oGuion(d.Empresa.Rtn)).Newline()
	if d.Sucursal.Telefono != "" {
		e.Text("TEL: " + d.Sucursal.Telefono).Newline()
	}
	if d.Empresa.Correo != "" {
		e.Text(strings.ToUpper(d.Empresa.Correo)).Newline()
	}
	e.Text(lineaDoble).Newline()
	e.Bold(true).Text("FACTURA: " + oGuion(d.NumeroFactura)).Bold(false).Newline().Newline()

	// Fiscal block
	e.Align(escpos.AlignLeft)
	if d.FechaLimiteEmision != "" {
		e.Text("FECHA LIMITE EMISION: " + d.FechaLimiteEmision).Newline()
	}
	if d.RangoAutorizado != "" {
		e.Text("RANGO AUTORIZADO: " + d.RangoAutorizado).Newline()
	}
	if d.Cai != "" {
		e.Text("CAI: " + d.Cai).Newline()
	}

	// Transaction info
	fecha := d.Fecha
	if fecha == "" {
		fecha = time.Now().Format("2/1/2006")
	}
	hora := d.Hora
	if hora == "" {
		hora = time.Now().Format("15:04")
	}
	infoCols := []escpos.Col{
		{Width: 20, Align: escpos.AlignLeft},
		{Width: 22, Align: escpos.AlignRight},
	}
	cliente := d.Cliente
	if cliente == "" {
		cliente = "CONSUMIDOR FINAL"
	}
	infoRows := [][]escpos.Cell{
		{{Text: "FECHA:"}, {Text: fecha}},
		{{Text: "HORA:"}, {Text: hora}},
		{{Text: "CAJERO(A):"}, {Text: oGuion(d.Cajero)}},
		{{Text: "ARTICULOS:"}, {Text: fmt.Sprint(len(d.Articulos))}},
		{{Text: "CAJA #:"}, {Text: oGuion(d.Caja)}},
	}
	if d.Orden != "" {
		infoRows = append(infoRows, []escpos.Cell{{Text: "ORDEN NO.:"}, {Text: d.Orden}})
	}
	infoRows = append(infoRows,
		[]escpos.Cell{{Text: "RTN:"}, {Text: oGuion(d.RtnCliente)}},
		[]escpos.Cell{{Text: "CLIENTE:"}, {Text: strings.ToUpper(cliente)}},
	)
	e.Rule().Table(infoCols, infoRows)

	// Line items
	detalleCols := []escpos.Col{
		{Width: 6, Align: escpos.AlignLeft},
		{Width: 24, Align: escpos.AlignLeft},
		{Width: 12, Align: escpos.AlignRight},
	}
	e.Text(lineaBaja).Newline()
	e.Table(detalleCols, [][]escpos.Cell{{
		{Text: "CANT.", Bold: true},
		{Text: "DESCRIPCION", Bold: true},
		{Text: "IMPORTE", Bold: true},
	}})
	e.Text(lineaBaja).Newline()

	for _, item := range d.Articulos {
		desc := strings.ToUpper(oGuion(item.Descripcion))
		if len([]rune(desc)) > 22 {
			desc = string([]rune(desc)[:22])
		}
		e.Table(detalleCols, [][]escpos.Cell{{
			{Text: item.Cantidad.String()},
			{Text: desc},
			{Text: moneda(item.Importe)},
		}})

		if item.NombreEmpaquetado != "" {
			unidades := "?"
			if item.UnidadesPorEmpaquetado != nil {
				unidades = fmt.Sprint(*item.UnidadesPorEmpaquetado)
			}
			e.Condensed(true).
				Text(fmt.Sprintf("       . %s x %s", item.NombreEmpaquetado, unidades)).
				Newline().
				Condensed(false)
		}

		if opciones := opcionesCombo(item.OpcionesCombo); len(opciones) > 0 {
			e.Condensed(true)
			for _, op := range opciones {
				e.Text(fmt.Sprintf("       . %s x %d", nombreOpcion(op), cantidadOpcion(op))).Newline()
			}
			e.Condensed(false)
		}

		e.Text(lineaBaja).Newline()
	}

	// Fiscal totals
	totalCols := []escpos.Col{
		{Width: 28, Align: escpos.AlignLeft},
		{Width: 14, Align: escpos.AlignRight},
	}
	e.Newline().Table(totalCols, [][]escpos.Cell{
		{{Text: "IMPORTE EXONERADO"}, {Text: moneda(d.ImporteExonerado)}},
		{{Text: "DESCUENTOS Y REBAJAS"}, {Text: moneda(d.Descuentos)}},
		{{Text: "TOTAL EVENTO"}, {Text: moneda(d.TotalEvento)}},
		{{Text: "GRAVADO 15%"}, {Text: moneda(d.Gravado15)}},
		{{Text: "GRAVADO 18%"}, {Text: moneda(d.Gravado18)}},
		{{Text: "IMPT 15%"}, {Text: moneda(d.Impuesto15)}},
		{{Text: "IMPT 18%"}, {Text: moneda(d.Impuesto18)}},
	})
	e.Rule().Table(totalCols, [][]escpos.Cell{{
		{Text: "GRAN TOTAL", Bold: true},
		{Text: moneda(d.GranTotal), Bold: true},
	}})

	if d.Propina.IsPositive() {
		total := d.GranTotal.Add(d.Propina)
		e.Newline().Table(totalCols, [][]escpos.Cell{
			{{Text: "PROPINA"}, {Text: moneda(d.Propina)}},
		})
		e.Rule().Table(totalCols, [][]escpos.Cell{{
			{Text: "TOTAL C/PROPINA", Bold: true},
			{Text: moneda(total), Bold: true},
		}})
	}

	if len(d.MetodosPago) > 0 {
		rows := make([][]escpos.Cell, 0, len(d.MetodosPago))
		for _, pago := range d.MetodosPago {
			rows = append(rows, []escpos.Cell{
				{Text: strings.ToUpper(oGuion(pago.FormaPago))},
				{Text: moneda(pago.MontoRecibido)},
			})
		}
		e.Newline().Table(totalCols, rows)
	}

	if d.Letras != "" {
		e.Newline().Align(escpos.AlignCenter).Text(d.Letras).Newline()
	}

	// Copy labels and blank fiscal fields
	e.Newline().Align(escpos.AlignCenter).
		Text("ORIGINAL - CLIENTE").Newline().
		Text("COPIA - CONTRIBUYENTE EMISOR").Newline().Newline().
		Align(escpos.AlignLeft).
		Text("CONST. DE REG DE EXONERADOS_______________").Newline().
		Text("ORDEN DE COMPRA EXENTA____________________").Newline().
		Text("NO DE REG S.A.G___________________________").Newline().Newline()

	// Footer
	e.Align(escpos.AlignCenter).
		Text(lineaDoble).Newline().
		Bold(true).Text("GRACIAS POR SU COMPRA").Bold(false).Newline().
		Text("PARA RECLAMOS PRESENTAR FACTURA").Newline().
		Text("LO ESPERAMOS PRONTO!").Newline()
	if d.Sucursal.Telefono != "" {
		e.Text(d.Sucursal.Telefono).Newline()
	}
	e.Newline().Bold(true).Text("© 2025 - SFAC V1.0.1").Bold(false).
		Newline().Newline(5).Cut()

	return e.Encode()
}

// ReciboApertura renders the till opening voucher.
func ReciboApertura(d dto.ImpresionAperturaRequest) []byte {
	e := escpos.New(ancho)
	e.Initialize()
	densidadAlta(e)

	e.Bold(true).Align(escpos.AlignCenter).Newline().
		Text("APERTURA DE CAJA").Bold(false).Newline().
		Text(lineaDoble).Newline().Newline()

	infoCols := []escpos.Col{
		{Width: 14, Align: escpos.AlignLeft},
		{Width: 28, Align: escpos.AlignRight},
	}
	e.Align(escpos.AlignLeft).
		Bold(true).Text("INFORMACION").Bold(false).Newline().
		Rule().
		Table(infoCols, [][]escpos.Cell{
			{{Text: "Cajero:"}, {Text: oGuion(d.NombreCajero)}},
			{{Text: "Caja:"}, {Text: "#" + oGuion(d.NumeroCaja)}},
			{{Text: "Sucursal:"}, {Text: oGuion(d.NombreSucursal)}},
			{{Text: "Fecha/Hora:"}, {Text: oGuion(d.FechaHora)}},
		}).Newline()

	if d.RangoTalonario != "" || d.NumeroFacturaInicial != "" {
		e.Bold(true).Text("TALONARIO").Bold(false).Newline().Rule()
		if d.RangoTalonario != "" {
			e.Table(infoCols, [][]escpos.Cell{{{Text: "Rango:"}, {Text: d.RangoTalonario}}})
		}
		if d.NumeroFacturaInicial != "" {
			e.Table(infoCols, [][]escpos.Cell{{{Text: "Fact. Inicial:"}, {Text: d.NumeroFacturaInicial}}})
		}
		e.Newline()
	}

	montoCols := []escpos.Col{
		{Width: 20, Align: escpos.AlignLeft},
		{Width: 22, Align: escpos.AlignRight},
	}
	e.Bold(true).Text("EFECTIVO INICIAL").Bold(false).Newline().
		Rule().
		Table(montoCols, [][]escpos.Cell{{
			{Text: "MONTO INICIAL:", Bold: true},
			{Text: moneda(d.MontoInicial), Bold: true},
		}}).Newline()

	e.Align(escpos.AlignCenter).
		Text("--------------------------------").Newline().Newline().
		Text("Firma del Cajero").Newline().Newline().Newline().
		Text("________________________________").Newline().
		Newline(5).Cut()

	return e.Encode()
}

// ReciboCierre renders the till closing voucher, including the cash-count
// reconciliation.
func ReciboCierre(d dto.ImpresionCierreRequest) []byte {
	e := escpos.New(ancho)
	e.Initialize()
	densidadAlta(e)

	e.Bold(true).Align(escpos.AlignCenter).Newline().
		Text("CIERRE DE CAJA").Bold(false).Newline().
		Text(lineaDoble).Newline().Newline()

	infoCols := []escpos.Col{
		{Width: 14, Align: escpos.AlignLeft},
		{Width: 28, Align: escpos.AlignRight},
	}
	e.Align(escpos.AlignLeft).
		Bold(true).Text("INFORMACION").Bold(false).Newline().
		Rule().
		Table(infoCols, [][]escpos.Cell{
			{{Text: "Cajero:"}, {Text: oGuion(d.NombreCajero)}},
			{{Text: "Caja:"}, {Text: "#" + oGuion(d.NumeroCaja)}},
			{{Text: "Sucursal:"}, {Text: oGuion(d.NombreSucursal)}},
			{{Text: "Fecha/Hora:"}, {Text: oGuion(d.FechaHora)}},
		}).Newline()

	e.Bold(true).Text("FACTURAS EMITIDAS").Bold(false).Newline().Rule()
	if d.RangoTalonario != "" {
		e.Table(infoCols, [][]escpos.Cell{{{Text: "Rango Talon.:"}, {Text: d.RangoTalonario}}})
	}
	if d.CantidadFacturas > 0 {
		e.Table(infoCols, [][]escpos.Cell{
			{{Text: "Desde:"}, {Text: oGuion(d.PrimeraFactura)}},
			{{Text: "Hasta:"}, {Text: oGuion(d.UltimaFactura)}},
		})
	} else {
		e.Table(infoCols, [][]escpos.Cell{{{Text: "Estado:"}, {Text: "Sin facturas"}}})
	}
	e.Table(infoCols, [][]escpos.Cell{{{Text: "Total Fact.:"}, {Text: fmt.Sprint(d.CantidadFacturas)}}})
	if d.FacturasRestantes != nil {
		e.Table(infoCols, [][]escpos.Cell{{{Text: "Restantes:"}, {Text: fmt.Sprint(*d.FacturasRestantes)}}})
	}
	e.Newline()

	resumenCols := []escpos.Col{
		{Width: 24, Align: escpos.AlignLeft},
		{Width: 18, Align: escpos.AlignRight},
	}
	r := d.Resumen
	e.Bold(true).Text("RESUMEN DE VENTAS").Bold(false).Newline().
		Rule().
		Table(resumenCols, [][]escpos.Cell{
			{{Text: "Monto Inicial:"}, {Text: moneda(r.MontoInicial)}},
			{{Text: "Ventas Efectivo:"}, {Text: moneda(r.TotalVentasEfectivo)}},
			{{Text: "Ventas Tarjeta:"}, {Text: moneda(r.TotalVentasTarjeta)}},
			{{Text: "Transferencias:"}, {Text: moneda(r.TotalVentasTransferencia)}},
		})
	if r.TotalVentasOtros.IsPositive() {
		e.Table(resumenCols, [][]escpos.Cell{{{Text: "Otros Métodos:"}, {Text: moneda(r.TotalVentasOtros)}}})
	}
	e.Newline()

	if r.TotalIngresos.IsPositive() || r.TotalGastos.IsPositive() || r.TotalRetiros.IsPositive() {
		e.Bold(true).Text("MOVIMIENTOS").Bold(false).Newline().Rule()
		if r.TotalIngresos.IsPositive() {
			e.Table(resumenCols, [][]escpos.Cell{{{Text: "(+) Ingresos:"}, {Text: moneda(r.TotalIngresos)}}})
		}
		if r.TotalGastos.IsPositive() {
			e.Table(resumenCols, [][]escpos.Cell{{{Text: "(-) Gastos:"}, {Text: "-" + moneda(r.TotalGastos)}}})
		}
		if r.TotalRetiros.IsPositive() {
			e.Table(resumenCols, [][]escpos.Cell{{{Text: "(-) Retiros:"}, {Text: "-" + moneda(r.TotalRetiros)}}})
		}
		e.Newline()
	}

	sufijo := " (=)"
	switch {
	case d.Diferencia.IsPositive():
		sufijo = " (S)"
	case d.Diferencia.IsNegative():
		sufijo = " (F)"
	}
	e.Bold(true).Text("CUADRE DE CAJA").Bold(false).Newline().
		Rule().
		Table(resumenCols, [][]escpos.Cell{
			{{Text: "Efectivo Esperado:"}, {Text: moneda(r.MontoEsperado)}},
			{{Text: "Efectivo Contado:"}, {Text: moneda(d.MontoReal)}},
		}).
		Rule().
		Table(resumenCols, [][]escpos.Cell{{
			{Text: "DIFERENCIA:", Bold: true},
			{Text: moneda(d.Diferencia) + sufijo, Bold: true},
		}}).Newline()

	if d.Observaciones != "" {
		e.Bold(true).Text("OBSERVACIONES").Bold(false).Newline().
			Rule().
			Text(d.Observaciones).Newline().Newline()
	}

	e.Align(escpos.AlignCenter).
		Text("S=Sobrante | F=Faltante | ==Cuadrado").Newline().Newline().
		Text("Firma del Cajero").Newline().Newline().
		Text("________________________________").Newline().Newline().
		Text("Firma del Supervisor").Newline().Newline().
		Text("________________________________").Newline().
		Newline(5).Cut()

	return e.Encode()
}

// ReciboPrueba renders the test page used when registering a printer.
func ReciboPrueba() []byte {
	e := escpos.New(ancho)
	e.Initialize().
		Bold(true).
		Align(escpos.AlignCenter).
		Newline().
		Text("NOMBRE EMPRESA").Newline().
		Text("DIRECCION").Newline().
		Text("RTN").Newline()
	return e.Encode()
}

func nombreOpcion(o dto.OpcionCombo) string {
	if o.NombreProducto != "" {
		return o.NombreProducto
	}
	if o.NombreVariante != "" {
		return o.NombreVariante
	}
	return "-"
}

func cantidadOpcion(o dto.OpcionCombo) int {
	if o.Cantidad <= 0 {
		return 1
	}
	return o.Cantidad
}

// opcionesCombo decodes the combo options field, which the procedures return
// either as a JSON array or as a string containing one.
func opcionesCombo(v any) []dto.OpcionCombo {
	if v == nil {
		return nil
	}
	var raw []byte
	switch t := v.(type) {
	case string:
		raw = []byte(t)
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return nil
		}
		raw = data
	}
	var opciones []dto.OpcionCombo
	if err := json.Unmarshal(raw, &opciones); err != nil {
		return nil
	}
	return opciones
}
