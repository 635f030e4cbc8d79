package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ordenespro/internal/apierror"
	"ordenespro/internal/dto"
	"ordenespro/internal/service"
)

type ClienteHandler struct{ svc service.ClienteService }

func NewClienteHandler(svc service.ClienteService) *ClienteHandler {
	return &ClienteHandler{svc: svc}
}

func clienteID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("id de cliente invalido"))
		return uuid.Nil, false
	}
	return id, true
}

// Listar godoc
// @Summary Lista el registro de clientes
// @Tags clientes
// @Produce json
// @Security BearerAuth
// @Param buscar query string false "Razon social o cedula/RUC"
// @Success 200 {array} dto.ClienteResponse
// @Router /v1/clientes [get]
func (h *ClienteHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context(), c.Query("buscar"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Obtener godoc
// @Summary Devuelve un cliente por id
// @Tags clientes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ClienteResponse
// @Router /v1/clientes/{id} [get]
func (h *ClienteHandler) Obtener(c *gin.Context) {
	id, ok := clienteID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Crear godoc
// @Summary Da de alta un cliente
// @Tags clientes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CrearClienteRequest true "Datos del cliente"
// @Success 201 {object} dto.ClienteResponse
// @Failure 409 {object} apierror.APIError
// @Router /v1/clientes [post]
func (h *ClienteHandler) Crear(c *gin.Context) {
	var req dto.CrearClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Actualizar godoc
// @Summary Actualiza los datos de un cliente
// @Tags clientes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.ActualizarClienteRequest true "Datos del cliente"
// @Success 200 {object} dto.ClienteResponse
// @Router /v1/clientes/{id} [put]
func (h *ClienteHandler) Actualizar(c *gin.Context) {
	id, ok := clienteID(c)
	if !ok {
		return
	}
	var req dto.ActualizarClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar godoc
// @Summary Borra un cliente del registro; sus ordenes no se tocan
// @Tags clientes
// @Security BearerAuth
// @Success 204
// @Router /v1/clientes/{id} [delete]
func (h *ClienteHandler) Eliminar(c *gin.Context) {
	id, ok := clienteID(c)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
