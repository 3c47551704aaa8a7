package catalog

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/menu-api/internal/application/dto"
	"github.com/jhoicas/menu-api/internal/domain"
	"github.com/jhoicas/menu-api/internal/domain/authz"
	"github.com/jhoicas/menu-api/internal/domain/entity"
	"github.com/jhoicas/menu-api/internal/domain/repository"
	"github.com/jhoicas/menu-api/pkg/logger"
)

// MsgCategoryRequired mensaje cuando falta el nombre de la categoría.
const MsgCategoryRequired = "El nombre de la categoría es obligatorio."

// CategoryUseCase alta, renombrado y borrado de categorías con verificación de propiedad.
type CategoryUseCase struct {
	txRunner TxRunner
	repo     repository.CategoryRepository
	log      *logger.Logger
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(txRunner TxRunner, repo repository.CategoryRepository, log *logger.Logger) *CategoryUseCase {
	return &CategoryUseCase{txRunner: txRunner, repo: repo, log: log}
}

// Create crea una categoría del restaurante autenticado. El dueño sale del principal,
// por lo que no requiere verificación.
func (uc *CategoryUseCase) Create(ctx context.Context, restaurantID string, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	if restaurantID == "" {
		return nil, domain.ErrUnauthorized
	}
	in.Category = strings.TrimSpace(in.Category)
	if err := dto.Validate(in, MsgCategoryRequired); err != nil {
		return nil, err
	}
	now := time.Now()
	category := &entity.Category{
		ID:           uuid.New().String(),
		RestaurantID: restaurantID,
		Label:        in.Category,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category, nil), nil
}

// Rename cambia el nombre. Carga con bloqueo → verifica propiedad → actualiza → commit.
// ErrCategoryNotFound / ErrForbidden sin escrituras.
func (uc *CategoryUseCase) Rename(ctx context.Context, restaurantID, categoryID string, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	in.Category = strings.TrimSpace(in.Category)
	if err := dto.Validate(in, MsgCategoryRequired); err != nil {
		return nil, err
	}
	var out *entity.Category
	err := uc.txRunner.RunCatalog(ctx, func(categoryRepo repository.CategoryRepository, _ repository.MenuItemRepository) error {
		category, err := loadCategoryForUpdate(ctx, categoryRepo, categoryID)
		if err != nil {
			return err
		}
		if err := uc.authorize(restaurantID, category, "rename"); err != nil {
			return err
		}
		category.Label = in.Category
		category.UpdatedAt = time.Now()
		if err := categoryRepo.Update(ctx, category); err != nil {
			return err
		}
		out = category
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toCategoryResponse(out, nil), nil
}

// Delete borra la categoría y, en la misma transacción, sus platillos (cascada del modelo).
func (uc *CategoryUseCase) Delete(ctx context.Context, restaurantID, categoryID string) error {
	return uc.txRunner.RunCatalog(ctx, func(categoryRepo repository.CategoryRepository, _ repository.MenuItemRepository) error {
		category, err := loadCategoryForUpdate(ctx, categoryRepo, categoryID)
		if err != nil {
			return err
		}
		if err := uc.authorize(restaurantID, category, "delete"); err != nil {
			return err
		}
		return categoryRepo.Delete(ctx, category.ID)
	})
}

func (uc *CategoryUseCase) authorize(restaurantID string, category *entity.Category, action string) error {
	if err := authz.Require(restaurantID, category); err != nil {
		uc.log.Warn().
			Str("restaurant_id", restaurantID).
			Str("category_id", category.ID).
			Str("action", action).
			Msg("acceso denegado a categoría")
		return err
	}
	return nil
}

func loadCategoryForUpdate(ctx context.Context, repo repository.CategoryRepository, id string) (*entity.Category, error) {
	if id == "" {
		return nil, domain.ErrCategoryNotFound
	}
	category, err := repo.GetByIDForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrCategoryNotFound
	}
	return category, nil
}

func toCategoryResponse(c *entity.Category, items []dto.MenuItemResponse) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:           c.ID,
		RestaurantID: c.RestaurantID,
		Category:     c.Label,
		Items:        items,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}
