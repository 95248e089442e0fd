package auth

import (
	"strings"

	"github.com/jhoicas/collectfast-api/internal/application/dto"
	"github.com/jhoicas/collectfast-api/internal/application/session"
	"github.com/jhoicas/collectfast-api/internal/domain"
	"github.com/jhoicas/collectfast-api/internal/domain/entity"
	"github.com/jhoicas/collectfast-api/internal/domain/repository"
	"github.com/jhoicas/collectfast-api/pkg/jwt"
)

const minPasswordLen = 7

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase sign-in/sign-out mock del prototipo: no verifica credenciales
// reales. Un sign-in con entrada bien formada siempre tiene éxito, fabrica
// un JWT y dispara la re-inicialización del resolver de sesión (cambio de
// señal de autenticación).
type AuthUseCase struct {
	store    *Store
	users    repository.UserDirectory
	settings repository.SettingsStore
	resolver *session.Resolver
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	store *Store,
	users repository.UserDirectory,
	settings repository.SettingsStore,
	resolver *session.Resolver,
	jwtCfg JWTConfig,
) *AuthUseCase {
	return &AuthUseCase{store: store, users: users, settings: settings, resolver: resolver, jwtCfg: jwtCfg}
}

// SignIn valida forma de email y longitud de contraseña, fabrica el token y
// deja el flag de contador en el almacén durable, igual que el prototipo.
// Devuelve el usuario que el resolver terminó resolviendo.
func (uc *AuthUseCase) SignIn(in dto.SignInRequest) (*dto.SignInResponse, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, domain.ErrInvalidInput
	}
	if len(in.Password) < minPasswordLen {
		return nil, domain.ErrInvalidInput
	}

	// El rol del token sale del directorio si el email matchea; si no,
	// el prototipo asume un contador.
	role := entity.RoleAccountant
	userID := ""
	if u := uc.users.GetByEmail(email); u != nil {
		role = u.Role
		userID = u.ID
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, userID, email, role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}

	// Flags durables que el resolver consulta en la próxima inicialización.
	if err := uc.settings.Set(session.StorageKeyIsAccountant, "true"); err != nil {
		return nil, err
	}
	if err := uc.settings.Set(session.StorageKeyUserEmail, email); err != nil {
		return nil, err
	}

	uc.store.SetSession(&session.Principal{Email: email}, token)
	uc.resolver.Initialize()

	resolved := uc.resolver.User()
	if resolved == nil {
		// Sin usuario resoluble ni siquiera con el flag de contador.
		return nil, domain.ErrUserNotFound
	}

	redirect := "/app"
	if resolved.IsAccountant {
		redirect = "/app/accountant-dashboard"
	}
	return &dto.SignInResponse{
		Token:      token,
		User:       *toUserResponse(resolved),
		RedirectTo: redirect,
	}, nil
}

// SignOut limpia el principal y re-inicializa el resolver.
func (uc *AuthUseCase) SignOut() {
	uc.store.Clear()
	uc.resolver.Initialize()
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:               u.ID,
		Name:             u.Name,
		Email:            u.Email,
		Avatar:           u.Avatar,
		Role:             u.Role,
		CompanyIDs:       u.CompanyIDs,
		DefaultCompanyID: u.DefaultCompanyID,
		IsAccountant:     u.IsAccountant,
	}
}
