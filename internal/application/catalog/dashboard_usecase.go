package catalog

import (
	"context"

	"github.com/jhoicas/menu-api/internal/application/auth"
	"github.com/jhoicas/menu-api/internal/application/dto"
	"github.com/jhoicas/menu-api/internal/domain"
	"github.com/jhoicas/menu-api/internal/domain/repository"
)

// DashboardUseCase arma el perfil del restaurante con su menú (categorías y platillos).
type DashboardUseCase struct {
	restaurantRepo repository.RestaurantRepository
	categoryRepo   repository.CategoryRepository
	itemRepo       repository.MenuItemRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	restaurantRepo repository.RestaurantRepository,
	categoryRepo repository.CategoryRepository,
	itemRepo repository.MenuItemRepository,
) *DashboardUseCase {
	return &DashboardUseCase{restaurantRepo: restaurantRepo, categoryRepo: categoryRepo, itemRepo: itemRepo}
}

// Get devuelve el menú del restaurante autenticado. Solo lectura.
func (uc *DashboardUseCase) Get(ctx context.Context, restaurantID string) (*dto.DashboardResponse, error) {
	restaurant, err := uc.restaurantRepo.GetByID(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, domain.ErrRestaurantNotFound
	}
	categories, err := uc.categoryRepo.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	items, err := uc.itemRepo.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[string][]dto.MenuItemResponse, len(categories))
	for _, it := range items {
		byCategory[it.CategoryID] = append(byCategory[it.CategoryID], *toMenuItemResponse(it))
	}
	out := &dto.DashboardResponse{
		Restaurant: *auth.ToRestaurantResponse(restaurant),
		Categories: make([]dto.CategoryResponse, 0, len(categories)),
	}
	for _, c := range categories {
		catItems := byCategory[c.ID]
		if catItems == nil {
			catItems = []dto.MenuItemResponse{}
		}
		out.Categories = append(out.Categories, *toCategoryResponse(c, catItems))
	}
	return out, nil
}
