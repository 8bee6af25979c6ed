package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Carta-api/internal/domain"
	"github.com/jhoicas/Carta-api/internal/domain/entity"
	"github.com/jhoicas/Carta-api/internal/domain/repository"
)

// Asegura que SubCategoryRepo implementa repository.SubCategoryRepository.
var _ repository.SubCategoryRepository = (*SubCategoryRepo)(nil)

// SubCategoryRepo implementación del puerto SubCategoryRepository sobre PostgreSQL (usable con pool o tx).
type SubCategoryRepo struct {
	q Querier
}

// NewSubCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSubCategoryRepository(q Querier) *SubCategoryRepo {
	return &SubCategoryRepo{q: q}
}

// Create persiste una subcategoría. Devuelve domain.ErrDuplicate si el nombre
// ya existe dentro de la categoría (índice único por lower(name)).
func (r *SubCategoryRepo) Create(sub *entity.SubCategory) error {
	query := `
		INSERT INTO subcategories (id, category_id, name, description, display_order, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		sub.ID, sub.CategoryID, sub.Name, sub.Description,
		sub.DisplayOrder, sub.Status, sub.CreatedAt, sub.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert subcategory: %w", err)
	}
	return nil
}

// GetByID obtiene una subcategoría por ID.
func (r *SubCategoryRepo) GetByID(id string) (*entity.SubCategory, error) {
	query := `
		SELECT id, category_id, name, description, display_order, status, created_at, updated_at
		FROM subcategories WHERE id = $1`
	var s entity.SubCategory
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.CategoryID, &s.Name, &s.Description, &s.DisplayOrder, &s.Status,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get subcategory: %w", err)
	}
	return &s, nil
}

// GetByCategoryAndName busca una subcategoría por nombre sin distinguir mayúsculas.
func (r *SubCategoryRepo) GetByCategoryAndName(categoryID, name string) (*entity.SubCategory, error) {
	query := `
		SELECT id, category_id, name, description, display_order, status, created_at, updated_at
		FROM subcategories WHERE category_id = $1 AND lower(name) = lower($2)`
	var s entity.SubCategory
	err := r.q.QueryRow(context.Background(), query, categoryID, name).Scan(
		&s.ID, &s.CategoryID, &s.Name, &s.Description, &s.DisplayOrder, &s.Status,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get subcategory by name: %w", err)
	}
	return &s, nil
}

// ListByCategory devuelve las subcategorías ordenadas por display_order y nombre.
func (r *SubCategoryRepo) ListByCategory(categoryID string) ([]*entity.SubCategory, error) {
	query := `
		SELECT id, category_id, name, description, display_order, status, created_at, updated_at
		FROM subcategories WHERE category_id = $1 ORDER BY display_order, lower(name)`
	rows, err := r.q.Query(context.Background(), query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list subcategories: %w", err)
	}
	defer rows.Close()

	var list []*entity.SubCategory
	for rows.Next() {
		var s entity.SubCategory
		if err := rows.Scan(&s.ID, &s.CategoryID, &s.Name, &s.Description, &s.DisplayOrder, &s.Status, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan subcategory: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update actualiza una subcategoría existente.
func (r *SubCategoryRepo) Update(sub *entity.SubCategory) error {
	query := `
		UPDATE subcategories SET name = $2, description = $3, display_order = $4, status = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		sub.ID, sub.Name, sub.Description, sub.DisplayOrder, sub.Status, sub.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update subcategory: %w", err)
	}
	return nil
}

// Delete elimina una subcategoría por ID.
func (r *SubCategoryRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM subcategories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete subcategory: %w", err)
	}
	return nil
}
