package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Cotizaciones-api/internal/application/auth"
	"github.com/jhoicas/Cotizaciones-api/internal/application/dto"
	"github.com/jhoicas/Cotizaciones-api/internal/domain"
	"github.com/jhoicas/Cotizaciones-api/pkg/jwt"
)

var cfg = auth.JWTConfig{Secret: "secreto", ExpMinutes: 10, Issuer: "test"}

func TestLogin_ContraseñaCorrecta(t *testing.T) {
	uc, err := auth.NewAuthUseCase("1234", cfg)
	require.NoError(t, err)

	resp, err := uc.Login(dto.LoginRequest{Password: "1234"})
	require.NoError(t, err)
	assert.Equal(t, 600, resp.ExpiresIn)

	sid, err := jwt.Parse("secreto", resp.Token)
	require.NoError(t, err)
	assert.NotEmpty(t, sid)
}

func TestLogin_ContraseñaIncorrecta(t *testing.T) {
	uc, err := auth.NewAuthUseCase("1234", cfg)
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Password: "4321"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.LoginRequest{})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_HashConfigurado(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3creta"), bcrypt.MinCost)
	require.NoError(t, err)
	uc, err := auth.NewAuthUseCase(string(hash), cfg)
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Password: "s3creta"})
	assert.NoError(t, err)
}

func TestNewAuthUseCase_ContraseñaVacia(t *testing.T) {
	_, err := auth.NewAuthUseCase("", cfg)
	assert.Error(t, err)
}
