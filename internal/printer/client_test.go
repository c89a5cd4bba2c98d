package printer

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// escuchar binds a listener on the loopback and returns its port.
func escuchar(t *testing.T) (net.Listener, int) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })
	return ln, ln.Addr().(*net.TCPAddr).Port
}

func TestClientImprimir(t *testing.T) {
	ln, puerto := escuchar(t)

	var mu sync.Mutex
	var recibido []byte
	done := make(chan struct{})
	go func() {
		defer close(done)
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		data, _ := io.ReadAll(conn)
		mu.Lock()
		recibido = data
		mu.Unlock()
	}()

	payload := []byte{0x1b, 0x40, 'H', 'O', 'L', 'A'}
	c := NewClientConfig(puerto, time.Second)
	require.NoError(t, c.Imprimir("127.0.0.1", payload))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("el servidor de prueba no recibió datos")
	}
	mu.Lock()
	defer mu.Unlock()
	assert.True(t, bytes.Equal(payload, recibido))
}

func TestClientImprimirConexionRechazada(t *testing.T) {
	ln, puerto := escuchar(t)
	ln.Close()

	c := NewClientConfig(puerto, 200*time.Millisecond)
	err := c.Imprimir("127.0.0.1", []byte("x"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrTimeout)
	assert.Contains(t, err.Error(), "conexión con la impresora")
}

func TestClientImprimirTimeoutDeEscritura(t *testing.T) {
	// The peer accepts but never reads, so a payload larger than the socket
	// buffers blocks the write until the deadline expires.
	ln, puerto := escuchar(t)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		time.Sleep(3 * time.Second)
	}()

	c := NewClientConfig(puerto, 300*time.Millisecond)
	err := c.Imprimir("127.0.0.1", bytes.Repeat([]byte{0x20}, 32<<20))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTimeout)
}

type errTemporal struct{ timeout bool }

func (e errTemporal) Error() string   { return "falla simulada" }
func (e errTemporal) Timeout() bool   { return e.timeout }
func (e errTemporal) Temporary() bool { return false }

func TestClasificar(t *testing.T) {
	assert.ErrorIs(t, clasificar(errTemporal{timeout: true}), ErrTimeout)

	err := clasificar(errTemporal{timeout: false})
	assert.NotErrorIs(t, err, ErrTimeout)
	assert.Contains(t, err.Error(), "conexión con la impresora")
}

func TestEscanerBuscar(t *testing.T) {
	ln, puerto := escuchar(t)
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			conn.Close()
		}
	}()

	e := &Escaner{
		puerto:  puerto,
		timeout: 200 * time.Millisecond,
		localIP: func() (string, error) { return "127.0.0.1", nil },
	}

	impresoras, err := e.Buscar(context.Background())
	require.NoError(t, err)
	require.Len(t, impresoras, 1)
	assert.Equal(t, "127.0.0.1", impresoras[0].IP)
	assert.Equal(t, strconv.Itoa(puerto), strconv.Itoa(e.puerto))
}

func TestEscanerBuscarSinInterfaz(t *testing.T) {
	e := &Escaner{
		puerto:  9100,
		timeout: 50 * time.Millisecond,
		localIP: func() (string, error) { return "", errors.New("sin interfaces de red con IPv4") },
	}

	_, err := e.Buscar(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sin interfaces")
}

func TestEscanerBuscarCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e := &Escaner{
		puerto:  9100,
		timeout: 50 * time.Millisecond,
		localIP: func() (string, error) { return "127.0.0.1", nil },
	}

	impresoras, err := e.Buscar(ctx)
	if err == nil {
		assert.Empty(t, impresoras)
	}
}
