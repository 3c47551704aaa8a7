package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/menu-api/internal/domain"
	"github.com/jhoicas/menu-api/internal/domain/entity"
	"github.com/jhoicas/menu-api/internal/domain/repository"
)

var _ repository.MenuItemRepository = (*MenuItemRepo)(nil)

// MenuItemRepo implementación del puerto MenuItemRepository sobre PostgreSQL.
// Las lecturas hacen JOIN con categories para obtener el restaurante dueño.
type MenuItemRepo struct {
	db Querier
}

// NewMenuItemRepository construye el adaptador; db puede ser el pool o una tx.
func NewMenuItemRepository(db Querier) *MenuItemRepo {
	return &MenuItemRepo{db: db}
}

const menuItemSelect = `
	SELECT i.id, i.category_id, c.restaurant_id, i.name, i.price, i.description, i.image,
		i.created_at, i.updated_at
	FROM menu_items i
	JOIN categories c ON c.id = i.category_id`

// Create persiste un nuevo platillo. RestaurantID no se guarda.
func (r *MenuItemRepo) Create(ctx context.Context, item *entity.MenuItem) error {
	query := `
		INSERT INTO menu_items (id, category_id, name, price, description, image, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(ctx, query,
		item.ID, item.CategoryID, item.Name, item.Price, item.Description, item.Image,
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert menu item: %w", err)
	}
	return nil
}

// GetByID obtiene un platillo con el dueño de su categoría.
func (r *MenuItemRepo) GetByID(ctx context.Context, id string) (*entity.MenuItem, error) {
	return r.findOne(ctx, menuItemSelect+` WHERE i.id = $1`, id)
}

// GetByIDForUpdate bloquea la fila del platillo (no la de la categoría).
func (r *MenuItemRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.MenuItem, error) {
	return r.findOne(ctx, menuItemSelect+` WHERE i.id = $1 FOR UPDATE OF i`, id)
}

func (r *MenuItemRepo) findOne(ctx context.Context, query, id string) (*entity.MenuItem, error) {
	item, err := scanMenuItem(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get menu item: %w", err)
	}
	return item, nil
}

// Update actualiza nombre, precio, descripción e imagen.
func (r *MenuItemRepo) Update(ctx context.Context, item *entity.MenuItem) error {
	query := `
		UPDATE menu_items SET name = $2, price = $3, description = $4, image = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		item.ID, item.Name, item.Price, item.Description, item.Image, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update menu item: %w", err)
	}
	return nil
}

// ListByRestaurant lista los platillos de todas las categorías del restaurante.
func (r *MenuItemRepo) ListByRestaurant(ctx context.Context, restaurantID string) ([]*entity.MenuItem, error) {
	rows, err := r.db.Query(ctx, menuItemSelect+` WHERE c.restaurant_id = $1 ORDER BY i.created_at, i.id`, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	defer rows.Close()
	var list []*entity.MenuItem
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		list = append(list, item)
	}
	return list, rows.Err()
}

// Delete elimina un platillo por ID.
func (r *MenuItemRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM menu_items WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete menu item: %w", err)
	}
	return nil
}

func scanMenuItem(row pgx.Row) (*entity.MenuItem, error) {
	var i entity.MenuItem
	err := row.Scan(
		&i.ID, &i.CategoryID, &i.RestaurantID, &i.Name, &i.Price, &i.Description, &i.Image,
		&i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &i, nil
}
