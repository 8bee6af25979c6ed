package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Carta-api/internal/application/dto"
	"github.com/jhoicas/Carta-api/internal/application/usecase"
	"github.com/jhoicas/Carta-api/internal/domain"
)

// MenuItemHandler maneja las peticiones HTTP para los platos de la carta.
type MenuItemHandler struct {
	uc *usecase.MenuItemUseCase
}

// NewMenuItemHandler construye el handler.
func NewMenuItemHandler(uc *usecase.MenuItemUseCase) *MenuItemHandler {
	return &MenuItemHandler{uc: uc}
}

// Create godoc
// @Summary      Crear plato
// @Tags         menu-items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMenuItemRequest  true  "Datos del plato"
// @Success      201   {object}  dto.MenuItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/menu-items [post]
func (h *MenuItemHandler) Create(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	var in dto.CreateMenuItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(companyID, in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido y price no puede ser negativo"})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "subcategoría no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar platos de la empresa (paginado)
// @Tags         menu-items
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Tamaño de página (máx 100)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {object}  dto.MenuItemListResponse
// @Router       /api/menu-items [get]
func (h *MenuItemHandler) List(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	out, err := h.uc.List(companyID, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener plato por ID
// @Tags         menu-items
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del plato"
// @Success      200  {object}  dto.MenuItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/menu-items/{id} [get]
func (h *MenuItemHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "plato no encontrado"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar plato
// @Tags         menu-items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del plato"
// @Param        body  body  dto.UpdateMenuItemRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.MenuItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/menu-items/{id} [put]
func (h *MenuItemHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateMenuItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "price no puede ser negativo"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "plato no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar plato
// @Tags         menu-items
// @Security     Bearer
// @Param        id   path  string  true  "ID del plato"
// @Success      204  "Sin contenido"
// @Router       /api/menu-items/{id} [delete]
func (h *MenuItemHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Delete(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
