package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/catalogo-api/internal/application/dto"
	"github.com/tu-usuario/catalogo-api/internal/application/reports"
)

// ReportHandler endpoints admin de reportes.
type ReportHandler struct {
	priceList *reports.PriceListUseCase
}

// NewReportHandler construye el handler de reportes.
func NewReportHandler(priceList *reports.PriceListUseCase) *ReportHandler {
	return &ReportHandler{priceList: priceList}
}

// PriceListPDF godoc
// @Summary      Lista de precios de productos activos en PDF
// @Tags         admin-reports
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Failure      500  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/admin/reports/price-list [get]
func (h *ReportHandler) PriceListPDF(c *fiber.Ctx) error {
	pdfBytes, err := h.priceList.Generate(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="lista-de-precios.pdf"`)
	return c.Send(pdfBytes)
}
