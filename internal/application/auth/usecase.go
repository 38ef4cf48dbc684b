package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/joan632/DotappSena/internal/application/dto"
	"github.com/joan632/DotappSena/internal/domain"
	"github.com/joan632/DotappSena/internal/domain/entity"
	"github.com/joan632/DotappSena/internal/domain/rbac"
	"github.com/joan632/DotappSena/internal/domain/repository"
	"github.com/joan632/DotappSena/pkg/jwt"
	"github.com/joan632/DotappSena/pkg/logger"
	"github.com/joan632/DotappSena/pkg/resettoken"
)

// JWTConfig configuración para generación de tokens de sesión.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// hashDummy se compara cuando el correo no existe, para que el login falle en
// un tiempo indistinguible del caso "contraseña incorrecta".
var hashDummy, _ = bcrypt.GenerateFromPassword([]byte("dotapp-dummy-password"), bcrypt.DefaultCost)

// AuthUseCase es el almacén de cuentas: registro, login, cambio de contraseña
// y flujo de recuperación. Nunca persiste ni registra contraseñas en claro.
type AuthUseCase struct {
	usuarioRepo repository.UsuarioRepository
	tokens      resettoken.Generator
	mailer      MailSender
	jwtCfg      JWTConfig
	bcryptCost  int
	baseURL     string
	log         *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	usuarioRepo repository.UsuarioRepository,
	tokens resettoken.Generator,
	mailer MailSender,
	jwtCfg JWTConfig,
	bcryptCost int,
	baseURL string,
	log *logger.Logger,
) *AuthUseCase {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthUseCase{
		usuarioRepo: usuarioRepo,
		tokens:      tokens,
		mailer:      mailer,
		jwtCfg:      jwtCfg,
		bcryptCost:  bcryptCost,
		baseURL:     baseURL,
		log:         log,
	}
}

// Registrar crea una cuenta: normaliza el correo, valida el rol contra el
// catálogo cerrado y hashea la contraseña con bcrypt antes de persistir.
// Devuelve domain.ErrCorreoRegistrado si el correo ya existe (también cuando
// la violación de unicidad la detecta la base de datos bajo concurrencia).
func (uc *AuthUseCase) Registrar(in dto.RegisterRequest) (*dto.UsuarioResponse, error) {
	correo := entity.NormalizarCorreo(in.Correo)
	if correo == "" || in.Password == "" {
		return nil, domain.ErrEntradaInvalida
	}
	rol := in.Rol
	if rol == "" {
		rol = rbac.RolAprendiz // rol por defecto al registrarse
	}
	if !rbac.RolValido(rol) {
		return nil, domain.ErrRolDesconocido
	}
	existente, err := uc.usuarioRepo.GetByCorreo(correo)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrCorreoRegistrado
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.bcryptCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	usuario := &entity.Usuario{
		ID:           uuid.New().String(),
		Nombre:       in.Nombre,
		Apellido:     in.Apellido,
		Correo:       correo,
		PasswordHash: string(hash),
		Rol:          rol,
		IsActive:     true,
		IsStaff:      false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.usuarioRepo.Create(usuario); err != nil {
		// La unicidad del correo la garantiza el constraint de la DB: una
		// carrera entre dos registros termina aquí, no en un crash.
		return nil, err
	}
	uc.log.Auditoria("usuario_creado", usuario.ID).Str("rol", usuario.Rol).Send()
	return toUsuarioResponse(usuario), nil
}

// CrearSuperusuario crea la cuenta administradora inicial: rol administrador y
// staff forzados. Pasar explícitamente un rol distinto de administrador es un
// error del caller. Solo puede existir un superusuario en el sistema.
func (uc *AuthUseCase) CrearSuperusuario(nombre, apellido, correo, password, rol string) (*dto.UsuarioResponse, error) {
	if rol != "" && rol != rbac.RolAdministrador {
		return nil, domain.ErrEntradaInvalida
	}
	existe, err := uc.usuarioRepo.ExisteSuperusuario()
	if err != nil {
		return nil, err
	}
	if existe {
		return nil, domain.ErrSuperusuarioExiste
	}
	out, err := uc.Registrar(dto.RegisterRequest{
		Nombre:   nombre,
		Apellido: apellido,
		Correo:   correo,
		Password: password,
		Rol:      rbac.RolAdministrador,
	})
	if err != nil {
		return nil, err
	}
	usuario, err := uc.usuarioRepo.GetByID(out.ID)
	if err != nil {
		return nil, err
	}
	usuario.IsStaff = true
	usuario.UpdatedAt = time.Now()
	if err := uc.usuarioRepo.Update(usuario); err != nil {
		return nil, err
	}
	return toUsuarioResponse(usuario), nil
}

// Login verifica correo/contraseña y genera el JWT de sesión. Cualquier
// discrepancia de credenciales retorna domain.ErrCredenciales sin revelar qué
// mitad falló; cuentas inactivas retornan domain.ErrForbidden.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	correo := entity.NormalizarCorreo(in.Correo)
	usuario, err := uc.usuarioRepo.GetByCorreo(correo)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		// Comparación de relleno: mismo costo que el caso "correo existe".
		_ = bcrypt.CompareHashAndPassword(hashDummy, []byte(in.Password))
		return nil, domain.ErrCredenciales
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrCredenciales
	}
	if !usuario.IsActive {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, usuario.ID, usuario.Rol, usuario.IsStaff, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:   token,
		Usuario: *toUsuarioResponse(usuario),
	}, nil
}

// Me retorna el perfil del usuario autenticado.
func (uc *AuthUseCase) Me(usuarioID string) (*dto.UsuarioResponse, error) {
	usuario, err := uc.usuarioRepo.GetByID(usuarioID)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUsuarioNoEncontrado
	}
	return toUsuarioResponse(usuario), nil
}

// CambiarPassword rehashea y reemplaza el hash almacenado. Como el digest de
// los tokens de recuperación está llaveado con el hash vigente, este cambio
// invalida de inmediato todos los tokens emitidos antes.
func (uc *AuthUseCase) CambiarPassword(usuarioID, nueva string) error {
	if len(nueva) < 8 {
		return domain.ErrEntradaInvalida
	}
	usuario, err := uc.usuarioRepo.GetByID(usuarioID)
	if err != nil {
		return err
	}
	if usuario == nil {
		return domain.ErrUsuarioNoEncontrado
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(nueva), uc.bcryptCost)
	if err != nil {
		return err
	}
	usuario.PasswordHash = string(hash)
	usuario.UpdatedAt = time.Now()
	if err := uc.usuarioRepo.Update(usuario); err != nil {
		return err
	}
	uc.log.Auditoria("password_cambiado", usuario.ID).Send()
	return nil
}

func toUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	if u == nil {
		return nil
	}
	return &dto.UsuarioResponse{
		ID:        u.ID,
		Nombre:    u.Nombre,
		Apellido:  u.Apellido,
		Correo:    u.Correo,
		Rol:       u.Rol,
		IsActive:  u.IsActive,
		IsStaff:   u.IsStaff,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
