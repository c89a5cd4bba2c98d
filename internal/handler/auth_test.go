package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"sfacapi/internal/infra"
	"sfacapi/internal/repository"
	"sfacapi/internal/service"
	"sfacapi/internal/worker"
)

func TestLoginSinCredenciales(t *testing.T) {
	g, _ := newGateway(t)
	repo := repository.NewUsuariosRepo(g)
	h := NewAuthHandler(service.NewAuthService(repo, nil, nil, "secreto", "clave", "HS256", time.Hour), repo)
	r := gin.New()
	r.POST("/Authentication/login", h.Login)

	w := hacerJSON(t, r, http.MethodPost, "/Authentication/login", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body := decodificar(t, w)
	assert.Equal(t, "El correo electrónico y contraseña son requeridos.", body["mensaje"])
}

func TestLoginContrasenaIncorrectaRespondeControlado(t *testing.T) {
	g, mock := newGateway(t)
	hash, err := bcrypt.GenerateFromPassword([]byte("laBuena"), 10)
	require.NoError(t, err)
	usuario, _ := json.Marshal(map[string]any{
		"CodigoUsuario": 9,
		"Correo":        "cajero@sfac.hn",
		"Contrasena":    string(hash),
	})

	mock.ExpectExec(`CALL seg_SpGestionarUsuarios\(`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT @pnTypeResult`).
		WillReturnRows(filasSalida(0, string(usuario), "Login correcto"))

	repo := repository.NewUsuariosRepo(g)
	h := NewAuthHandler(service.NewAuthService(repo, nil, nil, "secreto", "clave", "HS256", time.Hour), repo)
	r := gin.New()
	r.POST("/Authentication/login", h.Login)

	w := hacerJSON(t, r, http.MethodPost, "/Authentication/login",
		`{"correoElectronico":"cajero@sfac.hn","contrasena":"laMala"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	body := decodificar(t, w)
	assert.Equal(t, float64(1), body["typeResult"])
	assert.Equal(t, "Credenciales inválidas", body["message"])
}

func TestLoginExitosoEntregaTokenYSecreto(t *testing.T) {
	g, mock := newGateway(t)
	hash, err := bcrypt.GenerateFromPassword([]byte("laBuena"), 10)
	require.NoError(t, err)
	usuario, _ := json.Marshal(map[string]any{
		"CodigoUsuario": 9,
		"Correo":        "cajero@sfac.hn",
		"Contrasena":    string(hash),
	})

	mock.ExpectExec(`CALL seg_SpGestionarUsuarios\(`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT @pnTypeResult`).
		WillReturnRows(filasSalida(0, string(usuario), "Login correcto"))

	repo := repository.NewUsuariosRepo(g)
	h := NewAuthHandler(service.NewAuthService(repo, nil, nil, "secreto", "clave", "HS256", time.Hour), repo)
	r := gin.New()
	r.POST("/Authentication/login", h.Login)

	w := hacerJSON(t, r, http.MethodPost, "/Authentication/login",
		`{"correoElectronico":"cajero@sfac.hn","contrasena":"laBuena"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	body := decodificar(t, w)
	assert.NotEmpty(t, body["token"])
	assert.Equal(t, "clave", body["SECRET_KEY"])

	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.NotContains(t, user, "Contrasena")
	assert.Equal(t, float64(9), user["CodigoUsuario"])
}

func TestEnviarCodigoGuardaYEncola(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	codigos := infra.NewCodeStore(rdb)
	svc := service.NewAuthService(nil, codigos, worker.NewDispatcher(rdb), "secreto", "clave", "HS256", time.Hour)
	h := NewAuthHandler(svc, nil)
	r := gin.New()
	r.POST("/Authentication/enviar-codigo", h.EnviarCodigo)

	w := hacerJSON(t, r, http.MethodPost, "/Authentication/enviar-codigo",
		`{"correo":"cajero@sfac.hn"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	body := decodificar(t, w)
	assert.Equal(t, "Código enviado al correo.", body["message"])

	ctx := context.Background()
	raw, err := rdb.LPop(ctx, worker.QueueCorreo).Result()
	require.NoError(t, err)

	var job worker.Job
	require.NoError(t, json.Unmarshal([]byte(raw), &job))
	var payload worker.CorreoJobPayload
	require.NoError(t, json.Unmarshal(job.Payload, &payload))
	assert.Equal(t, "cajero@sfac.hn", payload.Para)
	assert.Len(t, payload.Codigo, 6)

	// The queued code is the same one the store will verify later.
	valido, err := codigos.Verify(ctx, "cajero@sfac.hn", payload.Codigo)
	require.NoError(t, err)
	assert.True(t, valido)
}

func TestCambiarPasswordCodigoInvalido(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	svc := service.NewAuthService(nil, infra.NewCodeStore(rdb), worker.NewDispatcher(rdb), "secreto", "clave", "HS256", time.Hour)
	h := NewAuthHandler(svc, nil)
	r := gin.New()
	r.POST("/Authentication/cambiar-password", h.CambiarPassword)

	w := hacerJSON(t, r, http.MethodPost, "/Authentication/cambiar-password",
		`{"correo":"cajero@sfac.hn","codigo":"000000","nuevaContrasena":"nueva"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body := decodificar(t, w)
	assert.Equal(t, "Código inválido o expirado", body["message"])
}
