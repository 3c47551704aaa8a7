package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/menu-api/internal/domain"
	"github.com/jhoicas/menu-api/internal/domain/entity"
	"github.com/jhoicas/menu-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	db Querier
}

// NewCategoryRepository construye el adaptador; db puede ser el pool o una tx.
func NewCategoryRepository(db Querier) *CategoryRepo {
	return &CategoryRepo{db: db}
}

// Create persiste una nueva categoría.
func (r *CategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	query := `
		INSERT INTO categories (id, restaurant_id, category, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.Exec(ctx, query,
		category.ID, category.RestaurantID, category.Label, category.CreatedAt, category.UpdatedAt,
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
func (r *CategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	return r.findOne(ctx, `
		SELECT id, restaurant_id, category, created_at, updated_at
		FROM categories WHERE id = $1`, id)
}

// GetByIDForUpdate obtiene y bloquea la categoría hasta el fin de la transacción.
func (r *CategoryRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Category, error) {
	return r.findOne(ctx, `
		SELECT id, restaurant_id, category, created_at, updated_at
		FROM categories WHERE id = $1 FOR UPDATE`, id)
}

func (r *CategoryRepo) findOne(ctx context.Context, query, id string) (*entity.Category, error) {
	var c entity.Category
	err := r.db.QueryRow(ctx, query, id).Scan(&c.ID, &c.RestaurantID, &c.Label, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

// Update actualiza el nombre de la categoría.
func (r *CategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	_, err := r.db.Exec(ctx,
		`UPDATE categories SET category = $2, updated_at = $3 WHERE id = $1`,
		category.ID, category.Label, category.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// ListByRestaurant lista las categorías del restaurante en orden de creación.
func (r *CategoryRepo) ListByRestaurant(ctx context.Context, restaurantID string) ([]*entity.Category, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, restaurant_id, category, created_at, updated_at
		FROM categories WHERE restaurant_id = $1 ORDER BY created_at, id`, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.RestaurantID, &c.Label, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete elimina la categoría; menu_items.category_id tiene ON DELETE CASCADE.
func (r *CategoryRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
