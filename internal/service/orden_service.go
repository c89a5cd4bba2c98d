package service

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"sfacapi/internal/dto"
	"sfacapi/internal/realtime"
	"sfacapi/internal/repository"
	"sfacapi/internal/respuesta"
)

type gestorOrdenes interface {
	Gestionar(ctx context.Context, op repository.OpOrden, req dto.OrdenRequest) (repository.Salida, error)
}

// OrdenService runs the kitchen pipeline: persist the order, re-read it
// complete, and push it to the kitchen displays. The broadcast is
// best-effort; the REST answer never depends on it.
type OrdenService struct {
	ordenes gestorOrdenes
	emisor  realtime.Emitter
}

func NewOrdenService(ordenes gestorOrdenes, emisor realtime.Emitter) *OrdenService {
	return &OrdenService{ordenes: ordenes, emisor: emisor}
}

// Crear persists the cart and broadcasts the complete order under
// "nueva-orden". The procedure answers with the new order number only.
func (s *OrdenService) Crear(ctx context.Context, req dto.OrdenRequest) (int, respuesta.Envelope) {
	salida, err := s.ordenes.Gestionar(ctx, repository.OrdenCrear, req)
	if err != nil {
		return respuesta.Interna(err)
	}

	status, envelope := salida.Responder()
	if status == http.StatusOK {
		s.difundir(ctx, "nueva-orden", salida, req.CodigoUsuario)
	}
	return status, envelope
}

// ActualizarEstado flips one line's preparation state and broadcasts the
// refreshed order under "orden-actualizada".
func (s *OrdenService) ActualizarEstado(ctx context.Context, req dto.OrdenRequest) (int, respuesta.Envelope) {
	salida, err := s.ordenes.Gestionar(ctx, repository.OrdenActualizarDetalle, req)
	if err != nil {
		return respuesta.Interna(err)
	}

	status, envelope := salida.Responder()
	if status == http.StatusOK {
		s.difundir(ctx, "orden-actualizada", salida, req.CodigoUsuario)
	}
	return status, envelope
}

// difundir re-reads the full order named by the procedure result and emits
// it. Every failure here is logged and swallowed.
func (s *OrdenService) difundir(ctx context.Context, evento string, salida repository.Salida, codigoUsuario *int) {
	codigo, ok := codigoDeOrden(salida)
	if !ok {
		log.Warn().Str("evento", evento).Msg("orden sin código en el resultado")
		return
	}

	completa, err := s.ordenes.Gestionar(ctx, repository.OrdenObtener, dto.OrdenRequest{
		CodigoOrden:   &codigo,
		CodigoUsuario: codigoUsuario,
	})
	if err != nil || completa.TypeResult != respuesta.TipoExitoso {
		log.Warn().Err(err).Int("codigoOrden", codigo).Str("evento", evento).
			Msg("no se pudo obtener la orden completa")
		return
	}

	raw, ok := completa.ResultString()
	if !ok {
		return
	}
	var datos any
	if err := json.Unmarshal([]byte(raw), &datos); err != nil {
		log.Warn().Err(err).Int("codigoOrden", codigo).Msg("orden completa no es JSON")
		return
	}
	if lista, esLista := datos.([]any); esLista {
		if len(lista) == 0 {
			return
		}
		datos = lista[0]
	}
	s.emisor.Emitir(evento, datos)
}

// codigoDeOrden extracts the order id the procedure hands back as its result.
func codigoDeOrden(salida repository.Salida) (int, bool) {
	raw, ok := salida.ResultString()
	if !ok {
		return 0, false
	}
	codigo, err := strconv.Atoi(strings.TrimSpace(strings.Trim(raw, `"`)))
	if err != nil {
		return 0, false
	}
	return codigo, true
}
