// Package auth casos de uso de registro, login y sesión.
//
// La unicidad del username es exacta y sensible a mayúsculas, como en el
// sistema legado. La verificación del secreto está detrás de
// credentials.Hasher; el esquema por defecto es texto plano por
// compatibilidad con los snapshots importados (debilidad heredada y
// documentada, no un objetivo a corregir aquí).
package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/vitormaquinas/os-master-api/internal/application/dto"
	"github.com/vitormaquinas/os-master-api/internal/domain"
	"github.com/vitormaquinas/os-master-api/internal/domain/entity"
	"github.com/vitormaquinas/os-master-api/internal/domain/repository"
	"github.com/vitormaquinas/os-master-api/pkg/credentials"
	"github.com/vitormaquinas/os-master-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase registro, login, logout y consulta de sesión.
type AuthUseCase struct {
	users   repository.UserRepository
	session repository.SessionRepository
	hasher  credentials.Hasher
	jwtCfg  JWTConfig
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(users repository.UserRepository, session repository.SessionRepository, hasher credentials.Hasher, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{users: users, session: session, hasher: hasher, jwtCfg: jwtCfg}
}

// Register crea un usuario (append-only) y abre sesión. Devuelve
// domain.ErrUsernameTaken si el username ya existe; en ese caso no se crea
// ningún registro.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.AuthResponse, error) {
	if strings.TrimSpace(in.Username) == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: username y password son requeridos", domain.ErrValidation)
	}

	existing, err := uc.users.FindByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUsernameTaken
	}

	secret, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	user := entity.User{
		ID:       uuid.New().String(),
		Username: in.Username,
		Password: secret,
		FullName: in.FullName,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return uc.openSession(ctx, user)
}

// Login verifica username + secreto y abre sesión.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := uc.users.FindByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if !uc.hasher.Verify(user.Password, in.Password) {
		return nil, domain.ErrUnauthorized
	}
	return uc.openSession(ctx, *user)
}

// Logout limpia el puntero de sesión.
func (uc *AuthUseCase) Logout(ctx context.Context) error {
	return uc.session.Set(ctx, nil)
}

// CurrentSession devuelve la proyección del usuario autenticado o nil.
func (uc *AuthUseCase) CurrentSession(ctx context.Context) (*entity.SessionUser, error) {
	return uc.session.Get(ctx)
}

func (uc *AuthUseCase) openSession(ctx context.Context, user entity.User) (*dto.AuthResponse, error) {
	projection := user.Projection()
	if err := uc.session.Set(ctx, &projection); err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.FullName, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: token, User: projection}, nil
}
