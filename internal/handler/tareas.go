package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ordenespro/internal/apierror"
	"ordenespro/internal/middleware"
	"ordenespro/internal/service"
)

type TareaHandler struct{ svc service.TareaService }

func NewTareaHandler(svc service.TareaService) *TareaHandler { return &TareaHandler{svc: svc} }

// Pendientes godoc
// @Summary Ordenes que esperan accion del rol del usuario
// @Tags tareas
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.TareaListResponse
// @Router /v1/tareas [get]
func (h *TareaHandler) Pendientes(c *gin.Context) {
	resp, err := h.svc.Pendientes(c.Request.Context(), middleware.RolDe(c), middleware.NombreDe(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Notificaciones godoc
// @Summary Pendientes del rol, sin las notificaciones descartadas
// @Tags tareas
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.TareaListResponse
// @Router /v1/notificaciones [get]
func (h *TareaHandler) Notificaciones(c *gin.Context) {
	resp, err := h.svc.Notificaciones(c.Request.Context(), middleware.RolDe(c), middleware.NombreDe(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Archivar godoc
// @Summary Descarta la notificacion de una orden
// @Tags tareas
// @Security BearerAuth
// @Success 204
// @Router /v1/notificaciones/{ordenId}/archivar [post]
func (h *TareaHandler) Archivar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("ordenId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("id de orden invalido"))
		return
	}
	if err := h.svc.ArchivarNotificacion(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
