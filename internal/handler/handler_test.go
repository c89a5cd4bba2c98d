package handler

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"sfacapi/internal/middleware"
	"sfacapi/internal/repository"
)

func init() { gin.SetMode(gin.TestMode) }

func newGateway(t *testing.T) (*repository.Gateway, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	return repository.NewGateway(db), mock
}

func filasSalida(typeResult any, result any, message any) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"typeResult", "result", "message"}).
		AddRow(typeResult, result, message)
}

// conUsuario plants the record that JWTAuth would have attached.
func conUsuario(id int) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserKey, json.RawMessage(fmt.Sprintf(`{"CodigoUsuario":%d}`, id)))
		c.Next()
	}
}

// conSupervisor plants the approving supervisor that PrivilegedAuth resolves.
func conSupervisor(id int) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.PrivilegedUserKey, id)
		c.Next()
	}
}

func hacerJSON(t *testing.T, engine *gin.Engine, metodo, ruta, cuerpo string) *httptest.ResponseRecorder {
	t.Helper()
	var req = httptest.NewRequest(metodo, ruta, strings.NewReader(cuerpo))
	if cuerpo != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodificar(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
