package infra

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Almacen persists uploaded attachments under a base directory. Purchase
// invoice files use the fixed name Compra_<codigo>.<ext> so the path is
// predictable and never stored in the database.
type Almacen struct {
	base string
}

func NewAlmacen(base string) (*Almacen, error) {
	if err := os.MkdirAll(filepath.Join(base, "compras"), 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de uploads: %w", err)
	}
	return &Almacen{base: base}, nil
}

// Base returns the root directory served under /uploads.
func (a *Almacen) Base() string { return a.base }

// Guardar writes a generic product image named <codigo>.jpg and returns its
// public route.
func (a *Almacen) Guardar(codigo string, r io.Reader) (string, error) {
	nombre := codigo + ".jpg"
	if err := a.escribir(filepath.Join(a.base, nombre), r); err != nil {
		return "", err
	}
	return "/uploads/" + nombre, nil
}

// GuardarCompra stores a purchase invoice attachment, replacing any previous
// file for the same invoice. PDFs keep their extension, everything else is
// stored as .jpg.
func (a *Almacen) GuardarCompra(codigoFactura int, nombreOriginal string, r io.Reader) (string, error) {
	ext := ".jpg"
	if strings.EqualFold(filepath.Ext(nombreOriginal), ".pdf") {
		ext = ".pdf"
	}
	a.eliminarExistentes(codigoFactura)

	nombre := fmt.Sprintf("Compra_%d%s", codigoFactura, ext)
	if err := a.escribir(filepath.Join(a.base, "compras", nombre), r); err != nil {
		return "", err
	}
	return "uploads/compras/" + nombre, nil
}

// EliminarCompra removes the attachment(s) of one invoice and reports what
// was deleted. Nothing found is not an error.
func (a *Almacen) EliminarCompra(codigoFactura int) []string {
	return a.eliminarExistentes(codigoFactura)
}

// EliminarRuta removes one file by its public route.
func (a *Almacen) EliminarRuta(ruta string) []string {
	rel := strings.TrimPrefix(ruta, "/")
	rel = strings.TrimPrefix(rel, "uploads/")
	destino := filepath.Join(a.base, filepath.Clean("/"+rel))
	if err := os.Remove(destino); err != nil {
		return nil
	}
	return []string{filepath.Base(destino)}
}

func (a *Almacen) eliminarExistentes(codigoFactura int) []string {
	var eliminados []string
	for _, ext := range []string{".jpg", ".pdf"} {
		nombre := fmt.Sprintf("Compra_%d%s", codigoFactura, ext)
		if os.Remove(filepath.Join(a.base, "compras", nombre)) == nil {
			eliminados = append(eliminados, nombre)
		}
	}
	return eliminados
}

func (a *Almacen) escribir(destino string, r io.Reader) error {
	f, err := os.Create(destino)
	if err != nil {
		return fmt.Errorf("crear archivo: %w", err)
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		return fmt.Errorf("escribir archivo: %w", err)
	}
	return nil
}
