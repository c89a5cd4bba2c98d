package printer

import (
	"context"
	"fmt"
	"net"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	// probeTimeout keeps the sweep fast: a printer answers a SYN on its own
	// subnet well under half a second.
	probeTimeout = 500 * time.Millisecond
	// batchSize bounds concurrent probes so the sweep does not flood the LAN.
	batchSize = 50
)

// Impresora is one discovered device.
type Impresora struct {
	IP string `json:"ip"`
}

// Escaner sweeps the local /24 for devices listening on the printing port.
type Escaner struct {
	puerto  int
	timeout time.Duration
	localIP func() (string, error)
}

func NewEscaner() *Escaner {
	return &Escaner{puerto: Puerto, timeout: probeTimeout, localIP: ipLocal}
}

// Buscar probes every host of the server's /24 on the printing port, in
// batches, and returns the responders sorted by address.
func (e *Escaner) Buscar(ctx context.Context) ([]Impresora, error) {
	local, err := e.localIP()
	if err != nil {
		return nil, err
	}
	base := local[:strings.LastIndex(local, ".")+1]

	var mu sync.Mutex
	var encontradas []Impresora

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(batchSize)
	for i := 1; i <= 254; i++ {
		host := fmt.Sprintf("%s%d", base, i)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if e.responde(host) {
				mu.Lock()
				encontradas = append(encontradas, Impresora{IP: host})
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(encontradas, func(a, b int) bool { return encontradas[a].IP < encontradas[b].IP })
	return encontradas, nil
}

func (e *Escaner) responde(host string) bool {
	conn, err := net.DialTimeout("tcp", net.JoinHostPort(host, fmt.Sprint(e.puerto)), e.timeout)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}

// DireccionLocal exposes the server's LAN IPv4; the product image URLs the
// procedures build start with it.
func DireccionLocal() (string, error) { return ipLocal() }

// ipLocal picks the IPv4 of the main network interface, preferring names that
// look like real Wi-Fi/Ethernet adapters over virtual ones.
func ipLocal() (string, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return "", err
	}

	type candidato struct {
		ip        string
		prioridad int
	}
	var candidatos []candidato

	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		for _, addr := range addrs {
			ipnet, ok := addr.(*net.IPNet)
			if !ok || ipnet.IP.To4() == nil {
				continue
			}
			nombre := strings.ToLower(iface.Name)
			prioridad := 3
			switch {
			case strings.Contains(nombre, "wi-fi"), strings.Contains(nombre, "wifi"),
				strings.Contains(nombre, "ethernet"), strings.HasPrefix(nombre, "eth"),
				strings.HasPrefix(nombre, "en"):
				prioridad = 1
			case strings.Contains(nombre, "local"):
				prioridad = 2
			}
			candidatos = append(candidatos, candidato{ip: ipnet.IP.String(), prioridad: prioridad})
		}
	}
	if len(candidatos) == 0 {
		return "", fmt.Errorf("sin interfaces de red con IPv4")
	}
	sort.SliceStable(candidatos, func(a, b int) bool {
		return candidatos[a].prioridad < candidatos[b].prioridad
	})
	return candidatos[0].ip, nil
}
