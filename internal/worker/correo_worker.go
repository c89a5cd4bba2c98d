package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// CorreoJobPayload is the job envelope sent to QueueCorreo.
type CorreoJobPayload struct {
	Para   string `json:"para"`
	Codigo string `json:"codigo"`
}

// Enviador is the SMTP surface the worker needs.
type Enviador interface {
	SendVerificationCode(to, code string) error
}

const maxIntentos = 3

var baseBackoff = 2 * time.Second

// CorreoWorker delivers verification codes. SMTP hiccups get retried with
// exponential backoff; after the last attempt the job moves to the DLQ so an
// operator can replay it.
type CorreoWorker struct {
	mailer Enviador
	rdb    *redis.Client
}

func NewCorreoWorker(mailer Enviador, rdb *redis.Client) *CorreoWorker {
	return &CorreoWorker{mailer: mailer, rdb: rdb}
}

func (w *CorreoWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload CorreoJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("correo_worker: invalid payload")
		return
	}
	if payload.Para == "" {
		log.Warn().Msg("correo_worker: empty recipient — skipping")
		return
	}

	var lastErr error
	for intento := 1; intento <= maxIntentos; intento++ {
		lastErr = w.mailer.SendVerificationCode(payload.Para, payload.Codigo)
		if lastErr == nil {
			log.Info().Str("para", payload.Para).Msg("correo_worker: código enviado")
			return
		}
		log.Warn().Err(lastErr).
			Str("para", payload.Para).
			Int("intento", intento).
			Msg("correo_worker: envío fallido")

		if intento < maxIntentos {
			select {
			case <-ctx.Done():
				return
			case <-time.After(baseBackoff << (intento - 1)):
			}
		}
	}

	SendToDLQ(ctx, w.rdb, QueueCorreo, "correo", raw, lastErr.Error(), maxIntentos)
}
