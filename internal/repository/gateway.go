// Package repository maps every logical operation of the API onto one MySQL
// stored procedure call. Procedures communicate exclusively through three
// session out-parameters (@pnTypeResult, @pcResult, @pcMessage); the gateway
// guarantees the CALL and the SELECT that reads them run on the same pooled
// connection.
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"gorm.io/gorm"

	"sfacapi/internal/respuesta"
)

// Salida is the normalized three-valued result of a stored procedure.
type Salida struct {
	TypeResult int
	Result     any // string payload or nil
	Message    string
}

// Responder maps the procedure outcome to HTTP status + envelope.
func (s Salida) Responder() (int, respuesta.Envelope) {
	return respuesta.DesdeSp(s.TypeResult, s.Message, s.Result)
}

// ResultString returns the raw result payload when present.
func (s Salida) ResultString() (string, bool) {
	str, ok := s.Result.(string)
	return str, ok
}

// Gateway executes stored procedures over a shared gorm/MySQL pool.
type Gateway struct {
	db *gorm.DB
}

func NewGateway(db *gorm.DB) *Gateway { return &Gateway{db: db} }

// DB exposes the underlying handle for the handful of direct queries that do
// not go through a procedure (row counts, floor-plan layouts).
func (g *Gateway) DB() *gorm.DB { return g.db }

// outRow scans the session out-parameters. All three may be NULL.
type outRow struct {
	TypeResult sql.NullInt64  `gorm:"column:typeResult"`
	Result     sql.NullString `gorm:"column:result"`
	Message    sql.NullString `gorm:"column:message"`
}

const selectOut = "SELECT @pnTypeResult AS typeResult, @pcResult AS result, @pcMessage AS message"

// Call runs `CALL proc(args..., @pnTypeResult, @pcResult, @pcMessage)` and then
// reads the out-parameters. Both statements are issued inside a single
// connection checkout: session variables are per-connection in MySQL, so
// letting the pool interleave another request between them would read someone
// else's result.
func (g *Gateway) Call(ctx context.Context, proc string, args ...any) (Salida, error) {
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(args)), " ")
	call := fmt.Sprintf("CALL %s(%s @pnTypeResult, @pcResult, @pcMessage)", proc, placeholders)
	if len(args) == 0 {
		call = fmt.Sprintf("CALL %s(@pnTypeResult, @pcResult, @pcMessage)", proc)
	}

	var out outRow
	err := g.db.WithContext(ctx).Connection(func(tx *gorm.DB) error {
		if err := tx.Exec(call, args...).Error; err != nil {
			return err
		}
		return tx.Raw(selectOut).Scan(&out).Error
	})
	if err != nil {
		return Salida{}, fmt.Errorf("%s: %w", proc, err)
	}

	salida := Salida{
		TypeResult: respuesta.TipoErrorNoControlado,
		Message:    out.Message.String,
	}
	if out.TypeResult.Valid {
		salida.TypeResult = int(out.TypeResult.Int64)
	}
	if out.Result.Valid {
		salida.Result = out.Result.String
	}
	return salida, nil
}

// NullIfEmpty converts the domain's empty sentinels to SQL NULL before a
// positional procedure call: empty string, nil, empty slice/array, and the
// literal "[]" all become NULL. Every other value — including 0 and false —
// passes through unchanged.
func NullIfEmpty(v any) any {
	if v == nil {
		return nil
	}
	switch t := v.(type) {
	case string:
		if t == "" || t == "[]" {
			return nil
		}
		return t
	case *string:
		if t == nil {
			return nil
		}
		return NullIfEmpty(*t)
	case *int:
		if t == nil {
			return nil
		}
		return *t
	case *int64:
		if t == nil {
			return nil
		}
		return *t
	case *float64:
		if t == nil {
			return nil
		}
		return *t
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Len() == 0 {
			return nil
		}
	case reflect.Ptr:
		if rv.IsNil() {
			return nil
		}
		return NullIfEmpty(rv.Elem().Interface())
	}
	return v
}

// JSONOrNull serializes v for the pc* JSON parameters. Nil values, empty
// collections and anything that serializes to "[]"/"null" become SQL NULL.
func JSONOrNull(v any) any {
	if v == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	s := string(data)
	if s == "null" || s == "[]" || s == "{}" || s == `""` {
		return nil
	}
	return s
}
