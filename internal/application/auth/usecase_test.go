package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/menu-api/internal/application/auth"
	"github.com/jhoicas/menu-api/internal/application/dto"
	"github.com/jhoicas/menu-api/internal/application/media"
	"github.com/jhoicas/menu-api/internal/application/ports"
	"github.com/jhoicas/menu-api/internal/domain"
	"github.com/jhoicas/menu-api/internal/domain/entity"
	"github.com/jhoicas/menu-api/internal/infrastructure/memory"
	"github.com/jhoicas/menu-api/pkg/jwt"
	"github.com/jhoicas/menu-api/pkg/logger"
)

const testSecret = "test-secret"

type stubUploader struct {
	url   string
	err   error
	calls int
}

func (s *stubUploader) Upload(_ context.Context, _ ports.ImageFile, _ string) (string, error) {
	s.calls++
	return s.url, s.err
}

func newAuth(t *testing.T) (*auth.AuthUseCase, *memory.Store, *stubUploader) {
	t.Helper()
	store := memory.NewStore()
	up := &stubUploader{url: "http://fake.url/image.png"}
	uc := auth.NewAuthUseCase(
		memory.NewRestaurantRepository(store),
		media.NewImageService(up, logger.Nop()),
		memory.NewTokenDenylist(),
		auth.JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: "menu-api"},
		logger.Nop(),
	)
	return uc, store, up
}

func validRegistration() dto.RegisterRestaurantRequest {
	return dto.RegisterRestaurantRequest{
		Name:        "La Fonda",
		Password:    "Secreta123",
		Schedule:    "L-V 9 a 18",
		Location:    "Centro",
		Description: "Comida casera",
	}
}

var logo = &ports.ImageFile{Filename: "logo.png", ContentType: "image/png", Data: []byte("png")}

func TestRegister_Exito(t *testing.T) {
	uc, store, up := newAuth(t)

	out, err := uc.Register(context.Background(), validRegistration(), logo)
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "La Fonda", out.Name)
	require.NotNil(t, out.Image)
	assert.Equal(t, "http://fake.url/image.png", *out.Image)
	assert.Equal(t, 1, up.calls)

	restaurants, _, _ := store.Counts()
	assert.Equal(t, 1, restaurants)
}

func TestRegister_NombreDuplicado(t *testing.T) {
	uc, store, _ := newAuth(t)
	_, err := uc.Register(context.Background(), validRegistration(), logo)
	require.NoError(t, err)

	_, err = uc.Register(context.Background(), validRegistration(), logo)
	assert.ErrorIs(t, err, domain.ErrNameTaken)
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	restaurants, _, _ := store.Counts()
	assert.Equal(t, 1, restaurants)
}

// staleNameRepo no ve nombres existentes en la consulta previa; el índice único decide.
type staleNameRepo struct {
	*memory.RestaurantRepo
}

func (staleNameRepo) GetByName(context.Context, string) (*entity.Restaurant, error) { return nil, nil }

func TestRegister_CarreraPorNombreEsNameTaken(t *testing.T) {
	store := memory.NewStore()
	uc := auth.NewAuthUseCase(
		staleNameRepo{memory.NewRestaurantRepository(store)},
		media.NewImageService(&stubUploader{url: "http://fake.url/image.png"}, logger.Nop()),
		memory.NewTokenDenylist(),
		auth.JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: "menu-api"},
		logger.Nop(),
	)
	_, err := uc.Register(context.Background(), validRegistration(), logo)
	require.NoError(t, err)

	_, err = uc.Register(context.Background(), validRegistration(), logo)
	assert.ErrorIs(t, err, domain.ErrNameTaken)

	restaurants, _, _ := store.Counts()
	assert.Equal(t, 1, restaurants)
}

func TestRegister_CamposObligatorios(t *testing.T) {
	uc, store, up := newAuth(t)

	in := validRegistration()
	in.Location = "  "
	_, err := uc.Register(context.Background(), in, logo)
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, auth.MsgRequiredFields, ve.Message)

	_, err = uc.Register(context.Background(), validRegistration(), nil)
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "image", ve.Field)

	restaurants, _, _ := store.Counts()
	assert.Zero(t, restaurants)
	assert.Zero(t, up.calls)
}

func TestRegister_ContraseñaDebil(t *testing.T) {
	uc, store, _ := newAuth(t)
	for _, pw := range []string{"corta1A", "sinmayusculas1", "SINMINUSCULAS1", "SinDigitos"} {
		in := validRegistration()
		in.Password = pw
		_, err := uc.Register(context.Background(), in, logo)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, pw)
	}
	restaurants, _, _ := store.Counts()
	assert.Zero(t, restaurants)
}

func TestRegister_SubidaFallidaSinImagen(t *testing.T) {
	uc, _, up := newAuth(t)
	up.err = errors.New("storage caído")

	out, err := uc.Register(context.Background(), validRegistration(), logo)
	require.NoError(t, err)
	assert.Nil(t, out.Image)
}

func TestLogin(t *testing.T) {
	uc, _, _ := newAuth(t)
	reg, err := uc.Register(context.Background(), validRegistration(), logo)
	require.NoError(t, err)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Name: " La Fonda ", Password: "Secreta123"})
	require.NoError(t, err)
	assert.Equal(t, reg.ID, out.Restaurant.ID)

	claims, err := jwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.ID, claims.RestaurantID)
	assert.True(t, out.ExpiresAt.Equal(claims.ExpiresAtTime()), "ExpiresAt %v debe coincidir con exp %v", out.ExpiresAt, claims.ExpiresAtTime())

	_, errWrongPass := uc.Login(context.Background(), dto.LoginRequest{Name: "La Fonda", Password: "Otra1234"})
	_, errUnknown := uc.Login(context.Background(), dto.LoginRequest{Name: "Nadie", Password: "Secreta123"})
	assert.ErrorIs(t, errWrongPass, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, errUnknown, domain.ErrInvalidCredentials)
	assert.Equal(t, errWrongPass.Error(), errUnknown.Error())

	_, err = uc.Login(context.Background(), dto.LoginRequest{Name: "La Fonda"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogout_RevocaToken(t *testing.T) {
	uc, _, _ := newAuth(t)
	ctx := context.Background()

	require.NoError(t, uc.Logout(ctx, "jti-1", time.Now().Add(time.Hour)))
	revoked, err := uc.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = uc.IsRevoked(ctx, "jti-2")
	require.NoError(t, err)
	assert.False(t, revoked)

	assert.ErrorIs(t, uc.Logout(ctx, "", time.Now()), domain.ErrUnauthorized)
}

func TestRegister_NuevoRestUnaSolaVez(t *testing.T) {
	uc, store, _ := newAuth(t)
	in := validRegistration()
	in.Name = "NuevoRest"
	in.Password = "Password123"

	_, err := uc.Register(context.Background(), in, logo)
	require.NoError(t, err)
	_, err = uc.Register(context.Background(), in, logo)
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	weak := validRegistration()
	weak.Name = "OtroRest"
	weak.Password = "weak"
	_, err = uc.Register(context.Background(), weak, logo)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	restaurants, _, _ := store.Counts()
	assert.Equal(t, 1, restaurants)
}
