package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"sfacapi/internal/dto"
	"sfacapi/internal/repository"
	"sfacapi/internal/respuesta"
	"sfacapi/internal/worker"
)

const saltRounds = 10

type gestorUsuarios interface {
	Gestionar(ctx context.Context, op repository.OpUsuario, req dto.UsuarioRequest) (repository.Salida, error)
}

type almacenCodigos interface {
	Save(ctx context.Context, email, code string) error
	Verify(ctx context.Context, email, code string) (bool, error)
}

type encolador interface {
	EnqueueCorreo(ctx context.Context, payload worker.CorreoJobPayload) error
}

// AuthService covers login, registration and the password-reset flow. The
// procedures never see a plain password on Crear or CambioContrasena; the
// bcrypt hash replaces it here.
type AuthService struct {
	usuarios    gestorUsuarios
	codigos     almacenCodigos
	correos     encolador
	jwtSecret   string
	secretKey   string
	jwtMetodo   jwt.SigningMethod
	jwtVigencia time.Duration
}

// NewAuthService builds the service. jwtAlgoritmo names the signing method
// (JWT_ALGORITHM); unknown names fall back to HS256. jwtVigencia is the token
// lifetime (JWT_EXPIRES_IN).
func NewAuthService(usuarios gestorUsuarios, codigos almacenCodigos, correos encolador, jwtSecret, secretKey, jwtAlgoritmo string, jwtVigencia time.Duration) *AuthService {
	metodo := jwt.GetSigningMethod(jwtAlgoritmo)
	if metodo == nil {
		metodo = jwt.SigningMethodHS256
	}
	return &AuthService{
		usuarios:    usuarios,
		codigos:     codigos,
		correos:     correos,
		jwtSecret:   jwtSecret,
		secretKey:   secretKey,
		jwtMetodo:   metodo,
		jwtVigencia: jwtVigencia,
	}
}

// LoginRespuesta is the successful login body. SecretKey travels to the
// front end so it can build privilegedUser blobs for supervised operations.
type LoginRespuesta struct {
	Token      string         `json:"token"`
	User       map[string]any `json:"user"`
	TypeResult int            `json:"typeResult"`
	Message    string         `json:"message"`
	SecretKey  string         `json:"SECRET_KEY"`
}

// Login fetches the user through the login branch of the procedure and
// compares the bcrypt hash in-process. A wrong password answers HTTP 200
// with a controlled envelope so the front end treats it as a business
// outcome, not a transport failure.
func (s *AuthService) Login(ctx context.Context, correo, contrasena string) (int, any) {
	salida, err := s.usuarios.Gestionar(ctx, repository.UsuarioLogin, dto.UsuarioRequest{
		Correo:     correo,
		Contrasena: contrasena,
	})
	if err != nil {
		status, envelope := respuesta.Interna(err)
		return status, envelope
	}

	if salida.TypeResult != respuesta.TipoExitoso {
		_, envelope := salida.Responder()
		return http.StatusOK, envelope
	}

	raw, ok := salida.ResultString()
	if !ok {
		_, envelope := respuesta.Controlada("Credenciales inválidas")
		return http.StatusOK, envelope
	}

	var usuario map[string]any
	if err := json.Unmarshal([]byte(raw), &usuario); err != nil {
		status, envelope := respuesta.Interna(err)
		return status, envelope
	}

	hash, _ := usuario["Contrasena"].(string)
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(contrasena)) != nil {
		_, envelope := respuesta.Controlada("Credenciales inválidas")
		return http.StatusOK, envelope
	}
	delete(usuario, "Contrasena")

	userID := 0
	if v, ok := usuario["CodigoUsuario"].(float64); ok {
		userID = int(v)
	}
	token, err := s.firmarToken(correo, userID)
	if err != nil {
		status, envelope := respuesta.Interna(err)
		return status, envelope
	}

	return http.StatusOK, LoginRespuesta{
		Token:      token,
		User:       usuario,
		TypeResult: salida.TypeResult,
		Message:    salida.Message,
		SecretKey:  s.secretKey,
	}
}

// Registrar creates the user with the hashed password and, on success,
// issues a session token alongside the envelope.
func (s *AuthService) Registrar(ctx context.Context, req dto.UsuarioRequest) (int, any) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Contrasena), saltRounds)
	if err != nil {
		status, envelope := respuesta.Interna(err)
		return status, envelope
	}
	req.Contrasena = string(hashed)

	salida, err := s.usuarios.Gestionar(ctx, repository.UsuarioCrear, req)
	if err != nil {
		status, envelope := respuesta.Interna(err)
		return status, envelope
	}

	status, envelope := salida.Responder()
	raw, ok := salida.ResultString()
	if status != http.StatusOK || !ok {
		return status, envelope
	}

	var usuario map[string]any
	if err := json.Unmarshal([]byte(raw), &usuario); err != nil {
		return status, envelope
	}
	userID := 0
	if v, ok := usuario["CodigoUsuario"].(float64); ok {
		userID = int(v)
	}
	token, err := s.firmarToken(req.Correo, userID)
	if err != nil {
		return status, envelope
	}

	return status, struct {
		respuesta.Envelope
		Token string `json:"token"`
	}{Envelope: envelope, Token: token}
}

// EnviarCodigo stores a fresh 6-digit code and queues the mail. Delivery is
// asynchronous with retries, so the caller only learns about enqueue
// failures.
func (s *AuthService) EnviarCodigo(ctx context.Context, correo string) error {
	codigo := fmt.Sprintf("%06d", rand.Intn(900000)+100000)
	if err := s.codigos.Save(ctx, correo, codigo); err != nil {
		return err
	}
	if err := s.correos.EnqueueCorreo(ctx, worker.CorreoJobPayload{Para: correo, Codigo: codigo}); err != nil {
		return err
	}
	log.Info().Str("correo", correo).Msg("código de verificación encolado")
	return nil
}

// CambiarPassword consumes the verification code and swaps the password for
// its hash. A wrong or expired code is reported to the handler as not-valid.
func (s *AuthService) CambiarPassword(ctx context.Context, correo, codigo, nuevaContrasena string) (bool, int, any) {
	valido, err := s.codigos.Verify(ctx, correo, codigo)
	if err != nil {
		status, envelope := respuesta.Interna(err)
		return true, status, envelope
	}
	if !valido {
		return false, 0, nil
	}

	status, body := s.cambiar(ctx, correo, nuevaContrasena)
	return true, status, body
}

// CambiarPasswordObligatorio skips the code check; it backs the first-login
// forced change where the session itself is the proof.
func (s *AuthService) CambiarPasswordObligatorio(ctx context.Context, correo, nuevaContrasena string) (int, any) {
	return s.cambiar(ctx, correo, nuevaContrasena)
}

func (s *AuthService) cambiar(ctx context.Context, correo, nuevaContrasena string) (int, any) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(nuevaContrasena), saltRounds)
	if err != nil {
		status, envelope := respuesta.Interna(err)
		return status, envelope
	}

	salida, err := s.usuarios.Gestionar(ctx, repository.UsuarioCambioContrasena, dto.UsuarioRequest{
		Correo:     correo,
		Contrasena: string(hashed),
	})
	if err != nil {
		status, envelope := respuesta.Interna(err)
		return status, envelope
	}

	if salida.TypeResult == respuesta.TipoExitoso {
		return respuesta.Exitosa(salida.Message, map[string]any{
			"success": true,
			"email":   correo,
		})
	}
	return salida.Responder()
}

func (s *AuthService) firmarToken(correo string, userID int) (string, error) {
	claims := jwt.MapClaims{
		"email":  correo,
		"userId": userID,
		"exp":    time.Now().Add(s.jwtVigencia).Unix(),
	}
	return jwt.NewWithClaims(s.jwtMetodo, claims).SignedString([]byte(s.jwtSecret))
}
