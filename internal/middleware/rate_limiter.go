package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"sfacapi/internal/apierror"
)

// ventana tracks request counts per IP within a sliding window.
type ventana struct {
	count     int
	windowEnd time.Time
	mu        sync.Mutex
}

// limitador is a per-IP sliding-window counter shared by the login and
// general API limiters.
type limitador struct {
	mu       sync.Mutex
	entradas map[string]*ventana
	limite   int
	duracion time.Duration
	mensaje  string
}

func nuevoLimitador(limite int, duracion time.Duration, mensaje string) *limitador {
	return &limitador{
		entradas: make(map[string]*ventana),
		limite:   limite,
		duracion: duracion,
		mensaje:  mensaje,
	}
}

func (l *limitador) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		l.mu.Lock()
		entrada, ok := l.entradas[ip]
		if !ok {
			entrada = &ventana{}
			l.entradas[ip] = entrada
		}
		l.mu.Unlock()

		entrada.mu.Lock()
		defer entrada.mu.Unlock()

		now := time.Now()
		if now.After(entrada.windowEnd) {
			entrada.count = 0
			entrada.windowEnd = now.Add(l.duracion)
		}

		entrada.count++
		if entrada.count > l.limite {
			c.Header("Retry-After", entrada.windowEnd.Format(time.RFC1123))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New(l.mensaje))
			return
		}
		c.Next()
	}
}

// purgar removes expired windows so IPs that never return do not accumulate.
func (l *limitador) purgar(now time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	purged := 0
	for ip, entrada := range l.entradas {
		entrada.mu.Lock()
		if now.After(entrada.windowEnd) {
			delete(l.entradas, ip)
			purged++
		}
		entrada.mu.Unlock()
	}
	return purged
}

var (
	loginLimiter = nuevoLimitador(20, time.Minute,
		"Demasiados intentos de login. Intente en 1 minuto.")
	apiLimiter = nuevoLimitador(200, time.Minute,
		"Demasiadas solicitudes. Intente nuevamente en un momento.")
)

// LoginRateLimiter limits login attempts to 20 per minute per IP.
func LoginRateLimiter() gin.HandlerFunc {
	return loginLimiter.Handler()
}

// RateLimiter limits general API traffic to 200 requests per minute per IP.
func RateLimiter() gin.HandlerFunc {
	return apiLimiter.Handler()
}

const purgeInterval = 5 * time.Minute

func init() {
	go purgeLoop()
}

func purgeLoop() {
	ticker := time.NewTicker(purgeInterval)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		purgedLogin := loginLimiter.purgar(now)
		purgedAPI := apiLimiter.purgar(now)
		if purgedLogin > 0 || purgedAPI > 0 {
			log.Debug().
				Int("login_entries_purged", purgedLogin).
				Int("api_entries_purged", purgedAPI).
				Msg("rate limiter maps purged")
		}
	}
}
