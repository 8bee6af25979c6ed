package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Carta-api/internal/application/dto"
	"github.com/jhoicas/Carta-api/internal/application/usecase"
	"github.com/jhoicas/Carta-api/internal/domain"
)

// SubCategoryHandler maneja las peticiones HTTP para SubCategory (protegido).
type SubCategoryHandler struct {
	uc *usecase.SubCategoryUseCase
}

// NewSubCategoryHandler construye el handler.
func NewSubCategoryHandler(uc *usecase.SubCategoryUseCase) *SubCategoryHandler {
	return &SubCategoryHandler{uc: uc}
}

// Create godoc
// @Summary      Crear subcategoría bajo una categoría
// @Tags         subcategories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        categoryId  path  string  true  "ID de la categoría padre"
// @Param        body        body  dto.CreateSubCategoryRequest  true  "Datos de la subcategoría"
// @Success      201  {object}  dto.SubCategoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/categories/{categoryId}/subcategories [post]
func (h *SubCategoryHandler) Create(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	categoryID := c.Params("categoryId")
	var in dto.CreateSubCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	out, err := h.uc.Create(companyID, categoryID, in)
	if err != nil {
		switch err {
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "categoría no encontrada"})
		case domain.ErrDuplicate:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe una subcategoría con ese nombre en la categoría"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByCategory godoc
// @Summary      Listar subcategorías de una categoría
// @Tags         subcategories
// @Security     Bearer
// @Produce      json
// @Param        categoryId  path  string  true  "ID de la categoría padre"
// @Success      200  {object}  dto.SubCategoryListResponse
// @Router       /api/categories/{categoryId}/subcategories [get]
func (h *SubCategoryHandler) ListByCategory(c *fiber.Ctx) error {
	categoryID := c.Params("categoryId")
	if categoryID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "categoryId es requerido"})
	}
	out, err := h.uc.ListByCategory(categoryID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener subcategoría por ID
// @Tags         subcategories
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la subcategoría"
// @Success      200  {object}  dto.SubCategoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/subcategories/{id} [get]
func (h *SubCategoryHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "subcategoría no encontrada"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar subcategoría
// @Tags         subcategories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la subcategoría"
// @Param        body  body  dto.UpdateSubCategoryRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.SubCategoryResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/subcategories/{id} [put]
func (h *SubCategoryHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateSubCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe una subcategoría con ese nombre en la categoría"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "subcategoría no encontrada"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar subcategoría
// @Tags         subcategories
// @Security     Bearer
// @Param        id   path  string  true  "ID de la subcategoría"
// @Success      204  "Sin contenido"
// @Router       /api/subcategories/{id} [delete]
func (h *SubCategoryHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Delete(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
