package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Carta-api/internal/domain"
	"github.com/jhoicas/Carta-api/internal/domain/entity"
	"github.com/jhoicas/Carta-api/internal/domain/repository"
)

// Asegura que CategoryRepo implementa repository.CategoryRepository.
var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL (usable con pool o tx).
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create persiste una categoría. Devuelve domain.ErrDuplicate si el nombre ya
// existe en la empresa (índice único por lower(name)); las cargas concurrentes
// que compitan por el mismo nombre se resuelven aquí, no en el motor de importación.
func (r *CategoryRepo) Create(category *entity.Category) error {
	query := `
		INSERT INTO categories (id, company_id, name, description, display_order, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		category.ID, category.CompanyID, category.Name, category.Description,
		category.DisplayOrder, category.Status, category.CreatedAt, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID.
func (r *CategoryRepo) GetByID(id string) (*entity.Category, error) {
	query := `
		SELECT id, company_id, name, description, display_order, status, created_at, updated_at
		FROM categories WHERE id = $1`
	var c entity.Category
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.CompanyID, &c.Name, &c.Description, &c.DisplayOrder, &c.Status,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

// GetByCompanyAndName busca una categoría por nombre sin distinguir mayúsculas.
func (r *CategoryRepo) GetByCompanyAndName(companyID, name string) (*entity.Category, error) {
	query := `
		SELECT id, company_id, name, description, display_order, status, created_at, updated_at
		FROM categories WHERE company_id = $1 AND lower(name) = lower($2)`
	var c entity.Category
	err := r.q.QueryRow(context.Background(), query, companyID, name).Scan(
		&c.ID, &c.CompanyID, &c.Name, &c.Description, &c.DisplayOrder, &c.Status,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category by name: %w", err)
	}
	return &c, nil
}

// ListByCompany devuelve las categorías de la empresa ordenadas por display_order y nombre.
func (r *CategoryRepo) ListByCompany(companyID string) ([]*entity.Category, error) {
	query := `
		SELECT id, company_id, name, description, display_order, status, created_at, updated_at
		FROM categories WHERE company_id = $1 ORDER BY display_order, lower(name)`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.CompanyID, &c.Name, &c.Description, &c.DisplayOrder, &c.Status, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza una categoría existente.
func (r *CategoryRepo) Update(category *entity.Category) error {
	query := `
		UPDATE categories SET name = $2, description = $3, display_order = $4, status = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		category.ID, category.Name, category.Description, category.DisplayOrder,
		category.Status, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// Delete elimina una categoría por ID (subcategorías y platos caen por cascada).
func (r *CategoryRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
