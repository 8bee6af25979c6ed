package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Carta-api/internal/application/auth"
	"github.com/jhoicas/Carta-api/internal/application/menucard"
	appmenuimport "github.com/jhoicas/Carta-api/internal/application/menuimport"
	"github.com/jhoicas/Carta-api/internal/application/usecase"
	"github.com/jhoicas/Carta-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC      *usecase.CompanyUseCase
	CategoryUC     *usecase.CategoryUseCase
	SubCategoryUC  *usecase.SubCategoryUseCase
	MenuItemUC     *usecase.MenuItemUseCase
	ImportUC       *appmenuimport.ImportUseCase
	MenuCardUC     *menucard.PDFUseCase
	AuthUC         *auth.AuthUseCase
	JWTSecret      string
	MaxUploadBytes int64
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Companies (público por ahora; se puede proteger con AuthMiddleware(deps.JWTSecret))
	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Solo admin y editor pueden modificar la carta; lector consulta.
	editors := RequireRole(entity.RoleAdmin, entity.RoleEditor)

	// Categories (protegido)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", editors, categoryHandler.Create)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", editors, categoryHandler.Update)
	categories.Delete("/:id", editors, categoryHandler.Delete)

	// SubCategories (protegido)
	subCategoryHandler := NewSubCategoryHandler(deps.SubCategoryUC)
	categories.Get("/:categoryId/subcategories", subCategoryHandler.ListByCategory)
	categories.Post("/:categoryId/subcategories", editors, subCategoryHandler.Create)
	subcategories := protected.Group("/subcategories")
	subcategories.Get("/:id", subCategoryHandler.GetByID)
	subcategories.Put("/:id", editors, subCategoryHandler.Update)
	subcategories.Delete("/:id", editors, subCategoryHandler.Delete)

	// Menu items (protegido)
	menuItems := protected.Group("/menu-items")
	menuItemHandler := NewMenuItemHandler(deps.MenuItemUC)
	menuItems.Post("/", editors, menuItemHandler.Create)
	menuItems.Get("/", menuItemHandler.List)
	menuItems.Get("/:id", menuItemHandler.GetByID)
	menuItems.Put("/:id", editors, menuItemHandler.Update)
	menuItems.Delete("/:id", editors, menuItemHandler.Delete)

	// Carga masiva y PDF de la carta (protegido)
	menu := protected.Group("/menu")
	importHandler := NewImportHandler(deps.ImportUC, deps.MaxUploadBytes)
	menu.Post("/import", editors, importHandler.Import)
	menu.Get("/import/plantilla", importHandler.Template)
	pdfHandler := NewPDFHandler(deps.MenuCardUC)
	menu.Get("/pdf", pdfHandler.MenuCard)
}
