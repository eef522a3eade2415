package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/report"
)

// ReportHandler maneja las peticiones HTTP de exportación del reporte.
type ReportHandler struct {
	uc *report.ExportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.ExportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Export godoc
// @Summary      Exportar reporte del almacén
// @Description  Genera el libro .xlsx con una hoja por tabla no vacía más la
//
//	hoja de información y lo escribe en la ruta configurada.
//
// @Tags         reports
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ExportReportRequest  false  "operation_label"
// @Success      201   {object}  dto.ExportReportResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/reports/export [post]
func (h *ReportHandler) Export(c *fiber.Ctx) error {
	var in dto.ExportReportRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	}
	out, err := h.uc.Export(c.Context(), in.OperationLabel)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
