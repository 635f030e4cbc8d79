package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"ordenespro/internal/config"
	"ordenespro/internal/dto"
	"ordenespro/internal/model"
	"ordenespro/internal/repository"
	"ordenespro/internal/storage"
	"ordenespro/internal/workflow"
)

func nuevoAuthEntorno(t *testing.T) (AuthService, repository.UsuarioRepository) {
	t.Helper()
	ctx := context.Background()
	repo, err := repository.NewUsuarioRepository(ctx, storage.NewMemory())
	require.NoError(t, err)
	cfg := &config.Config{JWTSecret: "secreto-de-prueba", JWTExpirationHours: 12}
	return NewAuthService(repo, cfg), repo
}

func TestLoginSinPin(t *testing.T) {
	svc, repo := nuevoAuthEntorno(t)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, model.Usuario{
		Usuario: "ventas", Nombre: "María", Rol: workflow.RolVendedor, Activo: true,
	}))

	resp, err := svc.Login(ctx, dto.LoginRequest{Usuario: "ventas"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, 12*3600, resp.ExpiresIn)
	assert.Equal(t, string(workflow.RolVendedor), resp.User.Rol)
}

func TestLoginConPin(t *testing.T) {
	svc, repo := nuevoAuthEntorno(t)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("4821"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, repo.Upsert(ctx, model.Usuario{
		Usuario: "admin", Nombre: "Admin", Rol: workflow.RolAdministrador,
		PinHash: string(hash), Activo: true,
	}))

	_, err = svc.Login(ctx, dto.LoginRequest{Usuario: "admin", Pin: "0000"})
	assert.EqualError(t, err, "credenciales invalidas")

	resp, err := svc.Login(ctx, dto.LoginRequest{Usuario: "admin", Pin: "4821"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
}

func TestLoginUsuarioInactivoODesconocido(t *testing.T) {
	svc, repo := nuevoAuthEntorno(t)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, model.Usuario{
		Usuario: "saliente", Nombre: "Ex empleado", Rol: workflow.RolVendedor, Activo: false,
	}))

	_, err := svc.Login(ctx, dto.LoginRequest{Usuario: "saliente"})
	assert.EqualError(t, err, "credenciales invalidas")

	_, err = svc.Login(ctx, dto.LoginRequest{Usuario: "nadie"})
	assert.EqualError(t, err, "credenciales invalidas")
}

func TestListarUsuarios(t *testing.T) {
	svc, repo := nuevoAuthEntorno(t)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, model.Usuario{Usuario: "admin", Rol: workflow.RolAdministrador, Activo: true}))
	require.NoError(t, repo.Upsert(ctx, model.Usuario{Usuario: "ventas", Rol: workflow.RolVendedor, Activo: true}))

	usuarios, err := svc.ListarUsuarios(ctx)
	require.NoError(t, err)
	assert.Len(t, usuarios, 2)
}
