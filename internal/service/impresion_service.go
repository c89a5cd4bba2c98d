package service

import (
	"context"
	"errors"
	"fmt"

	"sfacapi/internal/dto"
	"sfacapi/internal/printer"
	"sfacapi/internal/respuesta"
)

type clienteImpresion interface {
	Imprimir(ip string, payload []byte) error
}

type buscadorImpresoras interface {
	Buscar(ctx context.Context) ([]printer.Impresora, error)
}

// ImpresionService renders the receipt templates and ships them to the
// thermal printers. A timeout bubbles up as an error so the transport layer
// can answer 504; any other socket failure stays in the envelope.
type ImpresionService struct {
	cliente clienteImpresion
	escaner buscadorImpresoras
}

func NewImpresionService(cliente clienteImpresion, escaner buscadorImpresoras) *ImpresionService {
	return &ImpresionService{cliente: cliente, escaner: escaner}
}

func (s *ImpresionService) ImprimirFactura(d dto.ImpresionFacturaRequest) (int, respuesta.Envelope, error) {
	return s.imprimir(d.IP, printer.ReciboFactura(d), "Factura generada e impresa correctamente")
}

func (s *ImpresionService) ImprimirApertura(d dto.ImpresionAperturaRequest) (int, respuesta.Envelope, error) {
	return s.imprimir(d.IP, printer.ReciboApertura(d), "Comprobante de apertura impreso correctamente")
}

func (s *ImpresionService) ImprimirCierre(d dto.ImpresionCierreRequest) (int, respuesta.Envelope, error) {
	return s.imprimir(d.IP, printer.ReciboCierre(d), "Comprobante de cierre impreso correctamente")
}

func (s *ImpresionService) ImprimirPrueba(ip string) (int, respuesta.Envelope, error) {
	return s.imprimir(ip, printer.ReciboPrueba(), "Factura generada e impresa correctamente")
}

func (s *ImpresionService) imprimir(ip string, recibo []byte, exito string) (int, respuesta.Envelope, error) {
	err := s.cliente.Imprimir(ip, recibo)
	switch {
	case err == nil:
		status, envelope := respuesta.Exitosa(exito, nil)
		return status, envelope, nil
	case errors.Is(err, printer.ErrTimeout):
		return 0, respuesta.Envelope{}, err
	default:
		status, envelope := respuesta.Interna(
			fmt.Errorf("conexión con la impresora fallida, revisar conexión con la impresora: %w", err))
		return status, envelope, nil
	}
}

// BuscarImpresoras sweeps the LAN; an empty sweep is a business outcome, not
// a failure.
func (s *ImpresionService) BuscarImpresoras(ctx context.Context) (int, respuesta.Envelope) {
	impresoras, err := s.escaner.Buscar(ctx)
	if err != nil {
		return respuesta.Interna(err)
	}
	if len(impresoras) == 0 {
		return respuesta.Controlada("No se encontraron impresoras.")
	}
	return respuesta.Exitosa("Impresoras encontradas correctamente.", impresoras)
}
