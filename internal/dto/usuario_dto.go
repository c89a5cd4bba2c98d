package dto

// UsuarioRequest drives seg_SpGestionarUsuarios. CodigoUsuarioConsumo is the
// acting (authenticated) user; CodigoUsuario is the record being managed.
type UsuarioRequest struct {
	CodigoUsuario        *int   `json:"CodigoUsuario" form:"CodigoUsuario"`
	Nombres              string `json:"Nombres" form:"Nombres"`
	Apellidos            string `json:"Apellidos" form:"Apellidos"`
	Telefono             string `json:"Telefono" form:"Telefono"`
	Correo               string `json:"Correo" form:"Correo"`
	Contrasena           string `json:"Contrasena" form:"-"`
	FKEstado             *int   `json:"FKEstado" form:"FKEstado"`
	CodigoRol            *int   `json:"CodigoRol" form:"CodigoRol"`
	CodigoUsuarioConsumo *int   `json:"-" form:"-"`
}

// LoginRequest carries the credential pair of the login endpoint.
type LoginRequest struct {
	CorreoElectronico string `json:"correoElectronico" binding:"required"`
	Contrasena        string `json:"contrasena" binding:"required"`
}

// EnviarCodigoRequest asks for a password-reset verification code.
type EnviarCodigoRequest struct {
	Correo string `json:"correo" binding:"required,email"`
}

// CambiarPasswordRequest redeems a verification code for a password change.
type CambiarPasswordRequest struct {
	Correo          string `json:"correo" binding:"required,email"`
	Codigo          string `json:"codigo"`
	NuevaContrasena string `json:"nuevaContrasena" binding:"required"`
}
