package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Carta-api/internal/domain/entity"
	"github.com/jhoicas/Carta-api/internal/domain/repository"
)

// Asegura que MenuItemRepo implementa repository.MenuItemRepository.
var _ repository.MenuItemRepository = (*MenuItemRepo)(nil)

// MenuItemRepo implementación del puerto MenuItemRepository sobre PostgreSQL (usable con pool o tx).
type MenuItemRepo struct {
	q Querier
}

// NewMenuItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMenuItemRepository(q Querier) *MenuItemRepo {
	return &MenuItemRepo{q: q}
}

// Create persiste un plato.
func (r *MenuItemRepo) Create(item *entity.MenuItem) error {
	query := `
		INSERT INTO menu_items (id, company_id, subcategory_id, name, description, price, display_order, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.CompanyID, item.SubCategoryID, item.Name, item.Description,
		item.Price, item.DisplayOrder, item.Status, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert menu item: %w", err)
	}
	return nil
}

// GetByID obtiene un plato por ID.
func (r *MenuItemRepo) GetByID(id string) (*entity.MenuItem, error) {
	query := `
		SELECT id, company_id, subcategory_id, name, description, price, display_order, status, created_at, updated_at
		FROM menu_items WHERE id = $1`
	var it entity.MenuItem
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&it.ID, &it.CompanyID, &it.SubCategoryID, &it.Name, &it.Description,
		&it.Price, &it.DisplayOrder, &it.Status, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get menu item: %w", err)
	}
	return &it, nil
}

// ListBySubCategory devuelve los platos de una subcategoría ordenados por display_order y nombre.
func (r *MenuItemRepo) ListBySubCategory(subCategoryID string) ([]*entity.MenuItem, error) {
	query := `
		SELECT id, company_id, subcategory_id, name, description, price, display_order, status, created_at, updated_at
		FROM menu_items WHERE subcategory_id = $1 ORDER BY display_order, lower(name)`
	return r.list(query, subCategoryID)
}

// ListByCompany devuelve platos de la empresa con paginación.
func (r *MenuItemRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.MenuItem, error) {
	query := `
		SELECT id, company_id, subcategory_id, name, description, price, display_order, status, created_at, updated_at
		FROM menu_items WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.list(query, companyID, limit, offset)
}

func (r *MenuItemRepo) list(query string, args ...any) ([]*entity.MenuItem, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	defer rows.Close()

	var list []*entity.MenuItem
	for rows.Next() {
		var it entity.MenuItem
		if err := rows.Scan(&it.ID, &it.CompanyID, &it.SubCategoryID, &it.Name, &it.Description, &it.Price, &it.DisplayOrder, &it.Status, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// Update actualiza un plato existente.
func (r *MenuItemRepo) Update(item *entity.MenuItem) error {
	query := `
		UPDATE menu_items SET name = $2, description = $3, price = $4, display_order = $5, status = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Description, item.Price, item.DisplayOrder,
		item.Status, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update menu item: %w", err)
	}
	return nil
}

// Delete elimina un plato por ID.
func (r *MenuItemRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete menu item: %w", err)
	}
	return nil
}
