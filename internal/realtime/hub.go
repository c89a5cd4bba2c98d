package realtime

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// Emitter decouples services from the hub so order flows can notify the
// kitchen displays without knowing about connections.
type Emitter interface {
	Emitir(evento string, datos any)
}

// Evento is the wire format pushed to connected clients.
type Evento struct {
	Evento string `json:"evento"`
	Datos  any    `json:"datos"`
}

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	// sendBuffer absorbs bursts; a client that cannot keep up is dropped
	// instead of blocking the broadcast.
	sendBuffer = 16
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The browser clients live on the LAN behind the CORS policy; the
	// upgrade itself accepts any origin.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Hub keeps the set of connected clients and fans events out to all of them.
type Hub struct {
	mu       sync.RWMutex
	clientes map[*cliente]struct{}
	log      zerolog.Logger
}

type cliente struct {
	conn  *websocket.Conn
	envio chan []byte
}

func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		clientes: make(map[*cliente]struct{}),
		log:      log.With().Str("component", "realtime").Logger(),
	}
}

// Emitir serializes the event once and queues it on every client. Slow
// clients get disconnected rather than stalling everyone else.
func (h *Hub) Emitir(evento string, datos any) {
	mensaje, err := json.Marshal(Evento{Evento: evento, Datos: datos})
	if err != nil {
		h.log.Error().Err(err).Str("evento", evento).Msg("evento no serializable")
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clientes {
		select {
		case c.envio <- mensaje:
		default:
			go h.desconectar(c)
		}
	}
}

// Conectados reports the number of live connections.
func (h *Hub) Conectados() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clientes)
}

// Handler upgrades the request and pumps events until the client goes away.
func (h *Hub) Handler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn().Err(err).Str("remote", c.ClientIP()).Msg("upgrade fallido")
		return
	}

	cl := &cliente{conn: conn, envio: make(chan []byte, sendBuffer)}
	h.mu.Lock()
	h.clientes[cl] = struct{}{}
	h.mu.Unlock()
	h.log.Debug().Str("remote", c.ClientIP()).Msg("cliente conectado")

	go h.escribir(cl)
	h.leer(cl)
}

func (h *Hub) desconectar(c *cliente) {
	h.mu.Lock()
	if _, ok := h.clientes[c]; !ok {
		h.mu.Unlock()
		return
	}
	delete(h.clientes, c)
	h.mu.Unlock()

	close(c.envio)
	c.conn.Close()
}

// leer discards inbound frames; clients only listen. Reading is still needed
// to process pongs and notice closed connections.
func (h *Hub) leer(c *cliente) {
	defer h.desconectar(c)
	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) escribir(c *cliente) {
	ping := time.NewTicker(pingPeriod)
	defer func() {
		ping.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case mensaje, ok := <-c.envio:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, mensaje); err != nil {
				return
			}
		case <-ping.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
