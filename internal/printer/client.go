// Package printer talks to networked ESC/POS receipt printers over raw TCP
// port 9100 and renders the receipt templates the POS prints.
package printer

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"
)

const (
	// Puerto is the raw printing port every supported printer listens on.
	Puerto = 9100
	// TiempoEspera bounds both the connection attempt and the payload write.
	// There are no retries: a busy or unreachable printer reports immediately
	// and the cashier decides whether to re-send.
	TiempoEspera = 5 * time.Second
)

// ErrTimeout marks a printer that did not answer within the deadline. The
// error handler maps it to its own HTTP status.
var ErrTimeout = errors.New("tiempo de espera agotado con la impresora")

// Client sends raw payloads to printers. The zero value is not usable; use
// NewClient.
type Client struct {
	puerto  int
	timeout time.Duration
}

func NewClient() *Client {
	return &Client{puerto: Puerto, timeout: TiempoEspera}
}

// NewClientConfig exists for tests that point at local listeners with short
// deadlines.
func NewClientConfig(puerto int, timeout time.Duration) *Client {
	return &Client{puerto: puerto, timeout: timeout}
}

// Imprimir opens a connection, writes the payload and closes. Connection and
// write share one deadline.
func (c *Client) Imprimir(ip string, payload []byte) error {
	addr := net.JoinHostPort(ip, strconv.Itoa(c.puerto))

	conn, err := net.DialTimeout("tcp", addr, c.timeout)
	if err != nil {
		return clasificar(err)
	}
	defer conn.Close()

	if err := conn.SetWriteDeadline(time.Now().Add(c.timeout)); err != nil {
		return fmt.Errorf("impresora %s: %w", ip, err)
	}
	if _, err := conn.Write(payload); err != nil {
		return clasificar(err)
	}
	return nil
}

func clasificar(err error) error {
	var nerr net.Error
	if errors.As(err, &nerr) && nerr.Timeout() {
		return ErrTimeout
	}
	return fmt.Errorf("conexión con la impresora: %w", err)
}
