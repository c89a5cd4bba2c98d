package printer

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sfacapi/internal/dto"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func facturaDePrueba() dto.ImpresionFacturaRequest {
	unidades := 6
	return dto.ImpresionFacturaRequest{
		IP: "192.168.1.50",
		Empresa: dto.EmpresaImpresion{
			Nombre: "La Tiendita del Rio",
			Rtn:    "08011999123960",
		},
		Sucursal: dto.SucursalImpresion{
			Direccion: "Barrio El Centro",
			Telefono:  "2662-0000",
		},
		NumeroFactura:      "000-001-01-00000351",
		FechaLimiteEmision: "31/12/2026",
		RangoAutorizado:    "000-001-01-00000001 / 000-001-01-00005000",
		Cai:                "A1B2C3-D4E5F6-G7H8I9-J0K1L2-M3N4O5-36",
		Fecha:              "30/8/2026",
		Hora:               "14:25",
		Cajero:             "Maria",
		Caja:               "1",
		Orden:              "87",
		Cliente:            "Juan Perez",
		Articulos: []dto.ArticuloImpresion{
			{
				Cantidad:    dec("2"),
				Descripcion: "Baleada Sencilla",
				Importe:     dec("70.00"),
			},
			{
				Cantidad:               dec("1"),
				Descripcion:            "Refresco en Paquete",
				Importe:                dec("80.00"),
				NombreEmpaquetado:      "Six Pack",
				UnidadesPorEmpaquetado: &unidades,
			},
			{
				Cantidad:      dec("1"),
				Descripcion:   "Combo Desayuno",
				Importe:       dec("120.00"),
				OpcionesCombo: `[{"NombreProducto":"Cafe","Cantidad":1},{"nombre_variante":"Huevos Revueltos","Cantidad":2}]`,
			},
		},
		Gravado15:  dec("234.78"),
		Impuesto15: dec("35.22"),
		GranTotal:  dec("270.00"),
		MetodosPago: []dto.MetodoPagoImpresion{
			{FormaPago: "Efectivo", MontoRecibido: dec("270.00")},
		},
		Letras: "DOSCIENTOS SETENTA LEMPIRAS EXACTOS",
	}
}

func TestReciboFactura(t *testing.T) {
	raw := ReciboFactura(facturaDePrueba())
	require.NotEmpty(t, raw)
	contenido := string(raw)

	assert.Contains(t, contenido, "LA TIENDITA DEL RIO")
	assert.Contains(t, contenido, "RTN: 08011999123960")
	assert.Contains(t, contenido, "FACTURA: 000-001-01-00000351")
	assert.Contains(t, contenido, "CAI: A1B2C3-D4E5F6-G7H8I9-J0K1L2-M3N4O5-36")
	assert.Contains(t, contenido, "ORDEN NO.:")
	assert.Contains(t, contenido, "JUAN PEREZ")
	assert.Contains(t, contenido, "BALEADA SENCILLA")
	assert.Contains(t, contenido, "L 70.00")
	assert.Contains(t, contenido, ". Six Pack x 6")
	assert.Contains(t, contenido, ". Cafe x 1")
	assert.Contains(t, contenido, ". Huevos Revueltos x 2")
	assert.Contains(t, contenido, "GRAN TOTAL")
	assert.Contains(t, contenido, "L 270.00")
	assert.Contains(t, contenido, "EFECTIVO")
	assert.Contains(t, contenido, "DOSCIENTOS SETENTA LEMPIRAS EXACTOS")
	assert.Contains(t, contenido, "ORIGINAL - CLIENTE")
	assert.Contains(t, contenido, "COPIA - CONTRIBUYENTE EMISOR")
	assert.Contains(t, contenido, "GRACIAS POR SU COMPRA")
	// The copyright sign is encoded to its CP850 code point.
	assert.Contains(t, contenido, "\xb8 2025 - SFAC V1.0.1")

	// No tip was given, so the tip block is omitted.
	assert.NotContains(t, contenido, "PROPINA")

	// Starts with initialize and ends with a cut.
	assert.Equal(t, []byte{0x1b, 0x40}, raw[:2])
	assert.Equal(t, []byte{0x1d, 0x56, 0x42, 0x00}, raw[len(raw)-4:])
}

func TestReciboFacturaConPropina(t *testing.T) {
	d := facturaDePrueba()
	d.Propina = dec("27.00")

	contenido := string(ReciboFactura(d))
	assert.Contains(t, contenido, "PROPINA")
	assert.Contains(t, contenido, "L 27.00")
	assert.Contains(t, contenido, "TOTAL C/PROPINA")
	assert.Contains(t, contenido, "L 297.00")
}

func TestReciboFacturaConsumidorFinal(t *testing.T) {
	d := facturaDePrueba()
	d.Cliente = ""
	d.RtnCliente = ""

	contenido := string(ReciboFactura(d))
	assert.Contains(t, contenido, "CONSUMIDOR FINAL")
}

func TestReciboApertura(t *testing.T) {
	contenido := string(ReciboApertura(dto.ImpresionAperturaRequest{
		IP:                   "192.168.1.50",
		NombreCajero:         "Maria",
		NumeroCaja:           "1",
		NombreSucursal:       "Centro",
		FechaHora:            "30/8/2026 08:00",
		RangoTalonario:       "00000001 - 00005000",
		NumeroFacturaInicial: "000-001-01-00000352",
		MontoInicial:         dec("500.00"),
	}))

	assert.Contains(t, contenido, "APERTURA DE CAJA")
	assert.Contains(t, contenido, "INFORMACION")
	assert.Contains(t, contenido, "Maria")
	assert.Contains(t, contenido, "#1")
	assert.Contains(t, contenido, "TALONARIO")
	assert.Contains(t, contenido, "000-001-01-00000352")
	assert.Contains(t, contenido, "EFECTIVO INICIAL")
	assert.Contains(t, contenido, "L 500.00")
	assert.Contains(t, contenido, "Firma del Cajero")
}

func cierreDePrueba() dto.ImpresionCierreRequest {
	return dto.ImpresionCierreRequest{
		IP:               "192.168.1.50",
		NombreCajero:     "Maria",
		NumeroCaja:       "1",
		NombreSucursal:   "Centro",
		FechaHora:        "30/8/2026 20:00",
		PrimeraFactura:   "000-001-01-00000352",
		UltimaFactura:    "000-001-01-00000389",
		CantidadFacturas: 38,
		Resumen: dto.ResumenCierre{
			MontoInicial:        dec("500.00"),
			TotalVentasEfectivo: dec("4200.00"),
			TotalVentasTarjeta:  dec("1800.00"),
			TotalGastos:         dec("150.00"),
			MontoEsperado:       dec("4550.00"),
		},
		MontoReal:  dec("4560.00"),
		Diferencia: dec("10.00"),
	}
}

func TestReciboCierre(t *testing.T) {
	contenido := string(ReciboCierre(cierreDePrueba()))

	assert.Contains(t, contenido, "CIERRE DE CAJA")
	assert.Contains(t, contenido, "FACTURAS EMITIDAS")
	assert.Contains(t, contenido, "000-001-01-00000352")
	assert.Contains(t, contenido, "38")
	assert.Contains(t, contenido, "RESUMEN DE VENTAS")
	assert.Contains(t, contenido, "L 4200.00")
	assert.Contains(t, contenido, "(-) Gastos:")
	assert.Contains(t, contenido, "CUADRE DE CAJA")
	assert.Contains(t, contenido, "L 10.00 (S)")
	assert.Contains(t, contenido, "S=Sobrante | F=Faltante | ==Cuadrado")
	assert.Contains(t, contenido, "Firma del Supervisor")
}

func TestReciboCierreDiferencia(t *testing.T) {
	faltante := cierreDePrueba()
	faltante.Diferencia = dec("-25.00")
	assert.Contains(t, string(ReciboCierre(faltante)), "L -25.00 (F)")

	cuadrado := cierreDePrueba()
	cuadrado.Diferencia = decimal.Zero
	assert.Contains(t, string(ReciboCierre(cuadrado)), "L 0.00 (=)")
}

func TestReciboCierreSinFacturas(t *testing.T) {
	d := cierreDePrueba()
	d.CantidadFacturas = 0
	d.PrimeraFactura = ""
	d.UltimaFactura = ""

	contenido := string(ReciboCierre(d))
	assert.Contains(t, contenido, "Sin facturas")
	assert.NotContains(t, contenido, "Desde:")
}

func TestReciboCierreFacturasRestantes(t *testing.T) {
	sinDato := cierreDePrueba()
	assert.NotContains(t, string(ReciboCierre(sinDato)), "Restantes:")

	restantes := 4611
	conDato := cierreDePrueba()
	conDato.FacturasRestantes = &restantes
	assert.Contains(t, string(ReciboCierre(conDato)), "4611")
}

func TestReciboPrueba(t *testing.T) {
	contenido := string(ReciboPrueba())

	assert.Contains(t, contenido, "NOMBRE EMPRESA")
	assert.Contains(t, contenido, "DIRECCION")
	assert.Contains(t, contenido, "RTN")
}

func TestOpcionesCombo(t *testing.T) {
	// As a decoded JSON array.
	arreglo := []any{map[string]any{"NombreProducto": "Cafe", "Cantidad": float64(2)}}
	opciones := opcionesCombo(arreglo)
	require.Len(t, opciones, 1)
	assert.Equal(t, "Cafe", nombreOpcion(opciones[0]))
	assert.Equal(t, 2, cantidadOpcion(opciones[0]))

	// As a JSON string.
	opciones = opcionesCombo(`[{"nombre_variante":"Grande"}]`)
	require.Len(t, opciones, 1)
	assert.Equal(t, "Grande", nombreOpcion(opciones[0]))
	assert.Equal(t, 1, cantidadOpcion(opciones[0]))

	assert.Nil(t, opcionesCombo(nil))
	assert.Nil(t, opcionesCombo("no es json"))
}
