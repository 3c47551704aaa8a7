package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/menu-api/internal/domain"
	"github.com/jhoicas/menu-api/internal/domain/entity"
	"github.com/jhoicas/menu-api/internal/domain/repository"
)

var _ repository.RestaurantRepository = (*RestaurantRepo)(nil)

// RestaurantRepo implementación del puerto RestaurantRepository sobre PostgreSQL.
type RestaurantRepo struct {
	db Querier
}

// NewRestaurantRepository construye el adaptador de persistencia para restaurantes.
func NewRestaurantRepository(db Querier) *RestaurantRepo {
	return &RestaurantRepo{db: db}
}

const restaurantColumns = `id, name, password_hash, schedule, location, description, image, created_at, updated_at`

// Create persiste un nuevo restaurante. El índice único de name resuelve registros concurrentes.
func (r *RestaurantRepo) Create(ctx context.Context, restaurant *entity.Restaurant) error {
	query := `
		INSERT INTO restaurants (` + restaurantColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.Exec(ctx, query,
		restaurant.ID, restaurant.Name, restaurant.PasswordHash, restaurant.Schedule, restaurant.Location,
		restaurant.Description, restaurant.Image, restaurant.CreatedAt, restaurant.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert restaurant: %w", err)
	}
	return nil
}

// GetByID obtiene un restaurante por ID.
func (r *RestaurantRepo) GetByID(ctx context.Context, id string) (*entity.Restaurant, error) {
	return r.findOne(ctx, `SELECT `+restaurantColumns+` FROM restaurants WHERE id = $1`, id)
}

// GetByName obtiene un restaurante por nombre exacto.
func (r *RestaurantRepo) GetByName(ctx context.Context, name string) (*entity.Restaurant, error) {
	return r.findOne(ctx, `SELECT `+restaurantColumns+` FROM restaurants WHERE name = $1`, name)
}

func (r *RestaurantRepo) findOne(ctx context.Context, query string, arg string) (*entity.Restaurant, error) {
	var x entity.Restaurant
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&x.ID, &x.Name, &x.PasswordHash, &x.Schedule, &x.Location, &x.Description, &x.Image,
		&x.CreatedAt, &x.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get restaurant: %w", err)
	}
	return &x, nil
}
