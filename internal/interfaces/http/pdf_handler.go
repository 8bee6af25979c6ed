package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Carta-api/internal/application/dto"
	"github.com/jhoicas/Carta-api/internal/application/menucard"
	"github.com/jhoicas/Carta-api/internal/domain"
)

// PDFHandler expone la carta del restaurante como PDF descargable.
type PDFHandler struct {
	uc *menucard.PDFUseCase
}

// NewPDFHandler construye el handler.
func NewPDFHandler(uc *menucard.PDFUseCase) *PDFHandler {
	return &PDFHandler{uc: uc}
}

// MenuCard godoc
// @Summary      Generar PDF de la carta del restaurante
// @Tags         menu
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/menu/pdf [get]
func (h *PDFHandler) MenuCard(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	data, err := h.uc.GenerateMenuCard(c.Context(), companyID)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "restaurante no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="carta.pdf"`)
	return c.Send(data)
}
