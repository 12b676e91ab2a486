package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitormaquinas/os-master-api/internal/application/dto"
	"github.com/vitormaquinas/os-master-api/internal/domain"
	"github.com/vitormaquinas/os-master-api/internal/domain/entity"
	"github.com/vitormaquinas/os-master-api/pkg/credentials"
)

type fakeUserRepo struct {
	users []entity.User
}

func (f *fakeUserRepo) List(ctx context.Context) ([]entity.User, error) {
	out := make([]entity.User, len(f.users))
	copy(out, f.users)
	return out, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, user entity.User) error {
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	for i := range f.users {
		if f.users[i].Username == username {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

type fakeSessionRepo struct {
	user     *entity.SessionUser
	syncCode string
}

func (f *fakeSessionRepo) Get(ctx context.Context) (*entity.SessionUser, error) { return f.user, nil }

func (f *fakeSessionRepo) Set(ctx context.Context, user *entity.SessionUser) error {
	f.user = user
	return nil
}

func (f *fakeSessionRepo) GetSyncCode(ctx context.Context) (string, error) { return f.syncCode, nil }

func (f *fakeSessionRepo) SetSyncCode(ctx context.Context, code string) error {
	f.syncCode = code
	return nil
}

func newTestUseCase() (*AuthUseCase, *fakeUserRepo, *fakeSessionRepo) {
	users := &fakeUserRepo{}
	session := &fakeSessionRepo{}
	uc := NewAuthUseCase(users, session, credentials.Plain{}, JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "os-master-api",
	})
	return uc, users, session
}

func TestRegisterCreaUsuarioYAbreSesion(t *testing.T) {
	uc, users, session := newTestUseCase()

	resp, err := uc.Register(context.Background(), dto.RegisterRequest{
		Username: "joao",
		Password: "secreta",
		FullName: "João da Silva",
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.NotEmpty(t, resp.Token, "debe emitir un token JWT")
	assert.Equal(t, "joao", resp.User.Username)
	assert.Equal(t, "João da Silva", resp.User.FullName)
	assert.NotEmpty(t, resp.User.ID)

	require.Len(t, users.users, 1)
	assert.Equal(t, "secreta", users.users[0].Password, "esquema plain guarda el secreto tal cual")
	require.NotNil(t, session.user)
	assert.Equal(t, resp.User.ID, session.user.ID)
}

func TestRegisterUsernameDuplicado(t *testing.T) {
	uc, users, _ := newTestUseCase()

	_, err := uc.Register(context.Background(), dto.RegisterRequest{Username: "joao", Password: "a", FullName: "Primero"})
	require.NoError(t, err)

	_, err = uc.Register(context.Background(), dto.RegisterRequest{Username: "joao", Password: "b", FullName: "Segundo"})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
	assert.Len(t, users.users, 1, "el intento duplicado no crea registros")
}

func TestRegisterUsernameDistintaCapitalizacion(t *testing.T) {
	uc, users, _ := newTestUseCase()

	_, err := uc.Register(context.Background(), dto.RegisterRequest{Username: "joao", Password: "a"})
	require.NoError(t, err)

	// La unicidad es sensible a mayúsculas: "Joao" es otro usuario.
	_, err = uc.Register(context.Background(), dto.RegisterRequest{Username: "Joao", Password: "b"})
	require.NoError(t, err)
	assert.Len(t, users.users, 2)
}

func TestRegisterValidacion(t *testing.T) {
	uc, _, _ := newTestUseCase()

	_, err := uc.Register(context.Background(), dto.RegisterRequest{Username: "  ", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = uc.Register(context.Background(), dto.RegisterRequest{Username: "ana", Password: ""})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestLoginCredencialesCorrectas(t *testing.T) {
	uc, _, session := newTestUseCase()

	_, err := uc.Register(context.Background(), dto.RegisterRequest{Username: "ana", Password: "clave", FullName: "Ana"})
	require.NoError(t, err)
	require.NoError(t, uc.Logout(context.Background()))
	require.Nil(t, session.user)

	resp, err := uc.Login(context.Background(), dto.LoginRequest{Username: "ana", Password: "clave"})
	require.NoError(t, err)
	assert.Equal(t, "ana", resp.User.Username)
	require.NotNil(t, session.user)
	assert.Equal(t, "ana", session.user.Username)
}

func TestLoginCredencialesIncorrectas(t *testing.T) {
	uc, _, session := newTestUseCase()

	_, err := uc.Register(context.Background(), dto.RegisterRequest{Username: "ana", Password: "clave"})
	require.NoError(t, err)
	require.NoError(t, uc.Logout(context.Background()))

	_, err = uc.Login(context.Background(), dto.LoginRequest{Username: "ana", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Username: "nadie", Password: "clave"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	assert.Nil(t, session.user, "un login fallido no abre sesión")
}

func TestCurrentSession(t *testing.T) {
	uc, _, _ := newTestUseCase()

	current, err := uc.CurrentSession(context.Background())
	require.NoError(t, err)
	assert.Nil(t, current)

	_, err = uc.Register(context.Background(), dto.RegisterRequest{Username: "ana", Password: "clave"})
	require.NoError(t, err)

	current, err = uc.CurrentSession(context.Background())
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "ana", current.Username)
}
