package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sfacapi/internal/apierror"
	"sfacapi/internal/infra"
	"sfacapi/internal/respuesta"
)

// UploadHandler receives product images from the POS frontend. The file is
// stored as <codigo>.jpg so the catalog can derive the URL from the record.
type UploadHandler struct {
	almacen *infra.Almacen
}

func NewUploadHandler(almacen *infra.Almacen) *UploadHandler {
	return &UploadHandler{almacen: almacen}
}

func (h *UploadHandler) Subir(c *gin.Context) {
	archivo, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("No file uploaded"))
		return
	}
	codigo := c.PostForm("codigo")
	if codigo == "" {
		c.JSON(http.StatusBadRequest, apierror.New("codigo es requerido"))
		return
	}
	origen, err := archivo.Open()
	if err != nil {
		c.Error(err)
		return
	}
	defer origen.Close()

	ruta, err := h.almacen.Guardar(codigo, origen)
	if err != nil {
		c.Error(err)
		return
	}
	status, env := respuesta.Exitosa("Imagen subida y optimizada", ruta)
	c.JSON(status, env)
}
