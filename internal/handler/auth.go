package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ordenespro/internal/apierror"
	"ordenespro/internal/dto"
	"ordenespro/internal/service"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// Login godoc
// @Summary Login de personal por nombre de usuario y PIN opcional
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Credenciales"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} apierror.APIError
// @Router /v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Usuarios godoc
// @Summary Lista el personal activo (para la pantalla de login)
// @Tags auth
// @Produce json
// @Success 200 {array} dto.UsuarioResponse
// @Router /v1/auth/usuarios [get]
func (h *AuthHandler) Usuarios(c *gin.Context) {
	resp, err := h.svc.ListarUsuarios(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
