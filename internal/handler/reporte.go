package handler

import (
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ordenespro/internal/apierror"
	"ordenespro/internal/dto"
	"ordenespro/internal/service"
)

var fechaRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

type ReporteHandler struct{ svc service.ReporteService }

func NewReporteHandler(svc service.ReporteService) *ReporteHandler {
	return &ReporteHandler{svc: svc}
}

func fechaParam(c *gin.Context) (string, bool) {
	fecha := c.Param("fecha")
	if !fechaRe.MatchString(fecha) {
		c.JSON(http.StatusBadRequest, apierror.New("fecha invalida, use YYYY-MM-DD"))
		return "", false
	}
	return fecha, true
}

// Obtener godoc
// @Summary Reporte diario conciliado de una fecha
// @Tags reporte-diario
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ReporteDiarioResponse
// @Router /v1/reporte-diario/{fecha} [get]
func (h *ReporteHandler) Obtener(c *gin.Context) {
	fecha, ok := fechaParam(c)
	if !ok {
		return
	}
	resp, err := h.svc.Obtener(c.Request.Context(), fecha)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar godoc
// @Summary Guarda los montos contados a mano de la fecha
// @Tags reporte-diario
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.ActualizarReporteRequest true "Montos manuales"
// @Success 200 {object} dto.ReporteDiarioResponse
// @Router /v1/reporte-diario/{fecha} [put]
func (h *ReporteHandler) Actualizar(c *gin.Context) {
	fecha, ok := fechaParam(c)
	if !ok {
		return
	}
	var req dto.ActualizarReporteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ActualizarCampos(c.Request.Context(), fecha, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AgregarTransaccion godoc
// @Summary Agrega una transaccion manual al dia
// @Tags reporte-diario
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.TransaccionRequest true "Transaccion manual"
// @Success 201 {object} dto.ReporteDiarioResponse
// @Router /v1/reporte-diario/{fecha}/transacciones [post]
func (h *ReporteHandler) AgregarTransaccion(c *gin.Context) {
	fecha, ok := fechaParam(c)
	if !ok {
		return
	}
	var req dto.TransaccionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AgregarTransaccion(c.Request.Context(), fecha, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ActualizarTransaccion godoc
// @Summary Edita una transaccion manual existente
// @Tags reporte-diario
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.TransaccionRequest true "Transaccion manual"
// @Success 200 {object} dto.ReporteDiarioResponse
// @Router /v1/reporte-diario/{fecha}/transacciones/{id} [put]
func (h *ReporteHandler) ActualizarTransaccion(c *gin.Context) {
	fecha, ok := fechaParam(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("id de transaccion invalido"))
		return
	}
	var req dto.TransaccionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ActualizarTransaccion(c.Request.Context(), fecha, id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// EliminarTransaccion godoc
// @Summary Elimina una transaccion manual
// @Tags reporte-diario
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ReporteDiarioResponse
// @Router /v1/reporte-diario/{fecha}/transacciones/{id} [delete]
func (h *ReporteHandler) EliminarTransaccion(c *gin.Context) {
	fecha, ok := fechaParam(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("id de transaccion invalido"))
		return
	}
	resp, err := h.svc.EliminarTransaccion(c.Request.Context(), fecha, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ExportarCSV godoc
// @Summary Descarga el reporte del dia como CSV
// @Tags reporte-diario
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {string} string
// @Router /v1/reporte-diario/{fecha}/export/csv [get]
func (h *ReporteHandler) ExportarCSV(c *gin.Context) {
	fecha, ok := fechaParam(c)
	if !ok {
		return
	}
	raw, err := h.svc.ExportarCSV(c.Request.Context(), fecha)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="reporte_`+fecha+`.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", raw)
}

// PDF godoc
// @Summary Descarga el reporte del dia en PDF
// @Tags reporte-diario
// @Produce application/pdf
// @Security BearerAuth
// @Success 200 {string} string
// @Router /v1/reporte-diario/{fecha}/pdf [get]
func (h *ReporteHandler) PDF(c *gin.Context) {
	fecha, ok := fechaParam(c)
	if !ok {
		return
	}
	raw, err := h.svc.PDF(c.Request.Context(), fecha)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="reporte_`+fecha+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", raw)
}
