package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ordenespro/internal/apierror"
	"ordenespro/internal/dto"
	"ordenespro/internal/middleware"
	"ordenespro/internal/service"
	"ordenespro/internal/workflow"
)

// maxImagenBytes caps each inline design reference at 2 MB.
const maxImagenBytes = 2 * 1024 * 1024

type OrdenHandler struct{ svc service.OrdenService }

func NewOrdenHandler(svc service.OrdenService) *OrdenHandler { return &OrdenHandler{svc: svc} }

func ordenID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("id de orden invalido"))
		return uuid.Nil, false
	}
	return id, true
}

func validarImagenes(c *gin.Context, imagenes []dto.ImagenRequest) bool {
	for _, img := range imagenes {
		if len(img.URL) > maxImagenBytes {
			c.JSON(http.StatusRequestEntityTooLarge,
				apierror.New(fmt.Sprintf("la imagen %q supera el limite de 2 MB", img.Nombre)))
			return false
		}
	}
	return true
}

// Listar godoc
// @Summary Lista ordenes segun vista, busqueda y paginacion
// @Tags ordenes
// @Produce json
// @Security BearerAuth
// @Param vista query string false "todas | activas | sin-factura | facturadas | credito | finalizadas | anuladas | archivadas"
// @Param buscar query string false "Texto o numero de orden"
// @Param estado query string false "Estado exacto"
// @Param cliente query string false "Cliente exacto"
// @Param vendedor query string false "Vendedor exacto"
// @Param desde query string false "YYYY-MM-DD"
// @Param hasta query string false "YYYY-MM-DD"
// @Success 200 {object} dto.OrdenListResponse
// @Router /v1/ordenes [get]
func (h *OrdenHandler) Listar(c *gin.Context) {
	var filtro dto.OrdenFilter
	if !bindQueryAndValidate(c, &filtro) {
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), middleware.RolDe(c), filtro)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Crear godoc
// @Summary Crea una orden de produccion en estado VENTAS
// @Tags ordenes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CrearOrdenRequest true "Datos de la orden"
// @Success 201 {object} dto.OrdenResponse
// @Failure 422 {object} apierror.ValidationError
// @Router /v1/ordenes [post]
func (h *OrdenHandler) Crear(c *gin.Context) {
	var req dto.CrearOrdenRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if !validarImagenes(c, req.Imagenes) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), middleware.RolDe(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Obtener godoc
// @Summary Devuelve una orden por id
// @Tags ordenes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.OrdenResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/ordenes/{id} [get]
func (h *OrdenHandler) Obtener(c *gin.Context) {
	id, ok := ordenID(c)
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

// Actualizar godoc
// @Summary Actualiza los campos de una orden y recalcula financials
// @Tags ordenes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.ActualizarOrdenRequest true "Campos de la orden"
// @Success 200 {object} dto.OrdenResponse
// @Router /v1/ordenes/{id} [put]
func (h *OrdenHandler) Actualizar(c *gin.Context) {
	id, ok := ordenID(c)
	if !ok {
		return
	}
	var req dto.ActualizarOrdenRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if !validarImagenes(c, req.Imagenes) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), middleware.RolDe(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar godoc
// @Summary Elimina definitivamente una orden ANULADA
// @Tags ordenes
// @Security BearerAuth
// @Success 204
// @Failure 409 {object} apierror.APIError "La orden debe anularse antes de eliminarse"
// @Router /v1/ordenes/{id} [delete]
func (h *OrdenHandler) Eliminar(c *gin.Context) {
	id, ok := ordenID(c)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), middleware.RolDe(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Avanzar godoc
// @Summary Avanza la orden al siguiente paso de su flujo
// @Tags ordenes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.OrdenResponse
// @Failure 409 {object} apierror.APIError
// @Router /v1/ordenes/{id}/avanzar [post]
func (h *OrdenHandler) Avanzar(c *gin.Context) {
	id, ok := ordenID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Avanzar(c.Request.Context(), middleware.RolDe(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Paso godoc
// @Summary Mueve la orden un paso (next | prev) dentro de su flujo
// @Tags ordenes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.PasoRequest true "Direccion"
// @Success 200 {object} dto.OrdenResponse
// @Router /v1/ordenes/{id}/paso [post]
func (h *OrdenHandler) Paso(c *gin.Context) {
	id, ok := ordenID(c)
	if !ok {
		return
	}
	var req dto.PasoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Paso(c.Request.Context(), middleware.RolDe(c), id, workflow.Direccion(req.Direccion))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Anular godoc
// @Summary Anula la orden (estado ANULADA)
// @Tags ordenes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.OrdenResponse
// @Router /v1/ordenes/{id}/anular [post]
func (h *OrdenHandler) Anular(c *gin.Context) {
	id, ok := ordenID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Anular(c.Request.Context(), middleware.RolDe(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Archivar godoc
// @Summary Archiva una orden finalizada
// @Tags ordenes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.OrdenResponse
// @Router /v1/ordenes/{id}/archivar [post]
func (h *OrdenHandler) Archivar(c *gin.Context) {
	id, ok := ordenID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Archivar(c.Request.Context(), middleware.RolDe(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Desarchivar godoc
// @Summary Devuelve una orden archivada a FINALIZADA
// @Tags ordenes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.OrdenResponse
// @Router /v1/ordenes/{id}/desarchivar [post]
func (h *OrdenHandler) Desarchivar(c *gin.Context) {
	id, ok := ordenID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Desarchivar(c.Request.Context(), middleware.RolDe(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Clonar godoc
// @Summary Genera un borrador clonado de la orden, sin insertarlo
// @Tags ordenes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ClonarOrdenResponse
// @Router /v1/ordenes/{id}/clonar [post]
func (h *OrdenHandler) Clonar(c *gin.Context) {
	id, ok := ordenID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Clonar(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AlternarProducto godoc
// @Summary Alterna el checklist de produccion de un renglon
// @Tags ordenes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.OrdenResponse
// @Router /v1/ordenes/{id}/productos/{indice}/completar [post]
func (h *OrdenHandler) AlternarProducto(c *gin.Context) {
	id, ok := ordenID(c)
	if !ok {
		return
	}
	indice, err := strconv.Atoi(c.Param("indice"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("indice de producto invalido"))
		return
	}
	resp, err := h.svc.AlternarProducto(c.Request.Context(), middleware.RolDe(c), id, indice)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Resumen godoc
// @Summary Conteo de ordenes por estado y totales acumulados
// @Tags ordenes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ResumenResponse
// @Router /v1/ordenes/resumen [get]
func (h *OrdenHandler) Resumen(c *gin.Context) {
	resp, err := h.svc.Resumen(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ExportarCSV godoc
// @Summary Descarga la vista actual como CSV
// @Tags ordenes
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {string} string
// @Router /v1/ordenes/export/csv [get]
func (h *OrdenHandler) ExportarCSV(c *gin.Context) {
	var filtro dto.OrdenFilter
	if !bindQueryAndValidate(c, &filtro) {
		return
	}
	raw, err := h.svc.ExportarCSV(c.Request.Context(), middleware.RolDe(c), filtro)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="ordenes.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", raw)
}

// PDF godoc
// @Summary Descarga la hoja de trabajo de la orden en PDF
// @Tags ordenes
// @Produce application/pdf
// @Security BearerAuth
// @Success 200 {string} string
// @Router /v1/ordenes/{id}/pdf [get]
func (h *OrdenHandler) PDF(c *gin.Context) {
	id, ok := ordenID(c)
	if !ok {
		return
	}
	raw, numero, err := h.svc.PDF(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="orden_%d.pdf"`, numero))
	c.Data(http.StatusOK, "application/pdf", raw)
}

// Estadisticas godoc
// @Summary Series mensuales y rankings de clientes, vendedores y tipos
// @Tags ordenes
// @Produce json
// @Security BearerAuth
// @Param desde query string false "YYYY-MM-DD"
// @Param hasta query string false "YYYY-MM-DD"
// @Success 200 {object} dto.EstadisticasResponse
// @Router /v1/ordenes/estadisticas [get]
func (h *OrdenHandler) Estadisticas(c *gin.Context) {
	var filtro dto.EstadisticasFilter
	if !bindQueryAndValidate(c, &filtro) {
		return
	}
	resp, err := h.svc.Estadisticas(c.Request.Context(), filtro)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
