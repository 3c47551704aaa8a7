package catalog

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/menu-api/internal/application/dto"
	"github.com/jhoicas/menu-api/internal/application/media"
	"github.com/jhoicas/menu-api/internal/application/ports"
	"github.com/jhoicas/menu-api/internal/domain"
	"github.com/jhoicas/menu-api/internal/domain/authz"
	"github.com/jhoicas/menu-api/internal/domain/entity"
	"github.com/jhoicas/menu-api/internal/domain/repository"
	"github.com/jhoicas/menu-api/pkg/logger"
	"github.com/shopspring/decimal"
)

// MsgItemRequired mensaje cuando faltan nombre o precio.
const MsgItemRequired = "Nombre y precio del platillo son obligatorios."

// MenuItemUseCase alta, actualización y borrado de platillos. La propiedad se deriva de la
// categoría padre (JOIN al cargar).
//
// Las operaciones con imagen hacen una verificación de propiedad de solo lectura antes de
// subir el archivo, y la repiten con la fila bloqueada dentro de la transacción.
type MenuItemUseCase struct {
	txRunner     TxRunner
	categoryRepo repository.CategoryRepository
	itemRepo     repository.MenuItemRepository
	images       *media.ImageService
	log          *logger.Logger
}

// NewMenuItemUseCase construye el caso de uso.
func NewMenuItemUseCase(
	txRunner TxRunner,
	categoryRepo repository.CategoryRepository,
	itemRepo repository.MenuItemRepository,
	images *media.ImageService,
	log *logger.Logger,
) *MenuItemUseCase {
	return &MenuItemUseCase{
		txRunner:     txRunner,
		categoryRepo: categoryRepo,
		itemRepo:     itemRepo,
		images:       images,
		log:          log,
	}
}

// Create agrega un platillo a una categoría existente del restaurante autenticado.
// ErrCategoryNotFound si no existe; ErrForbidden si pertenece a otro restaurante.
func (uc *MenuItemUseCase) Create(ctx context.Context, restaurantID, categoryID string, in dto.CreateMenuItemRequest, image *ports.ImageFile) (*dto.MenuItemResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	if err := dto.Validate(in, MsgItemRequired); err != nil {
		return nil, err
	}
	price, err := ParsePrice(in.Price)
	if err != nil {
		return nil, err
	}

	category, err := uc.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrCategoryNotFound
	}
	if err := uc.authorize(restaurantID, category, "", "create"); err != nil {
		return nil, err
	}

	imageURL := uc.images.UploadOrNil(ctx, image, ports.FolderMenu)

	now := time.Now()
	item := &entity.MenuItem{
		ID:           uuid.New().String(),
		CategoryID:   category.ID,
		RestaurantID: category.RestaurantID,
		Name:         in.Name,
		Price:        price,
		Description:  in.Description,
		Image:        imageURL,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	err = uc.txRunner.RunCatalog(ctx, func(categoryRepo repository.CategoryRepository, itemRepo repository.MenuItemRepository) error {
		// La categoría pudo borrarse o bloquearse entre la verificación previa y la transacción.
		locked, err := loadCategoryForUpdate(ctx, categoryRepo, category.ID)
		if err != nil {
			return err
		}
		if err := uc.authorize(restaurantID, locked, "", "create"); err != nil {
			return err
		}
		return itemRepo.Create(ctx, item)
	})
	if err != nil {
		uc.logOrphanImage(imageURL, category.ID, err)
		return nil, err
	}
	return toMenuItemResponse(item), nil
}

// Update aplica los campos presentes (nil = sin cambios). Una imagen nueva reemplaza la
// anterior; si su subida falla se conserva la anterior.
func (uc *MenuItemUseCase) Update(ctx context.Context, restaurantID, itemID string, in dto.UpdateMenuItemRequest, image *ports.ImageFile) (*dto.MenuItemResponse, error) {
	if in.Name != nil {
		trimmed := strings.TrimSpace(*in.Name)
		if trimmed == "" {
			return nil, domain.NewValidationError("name", "El nombre del platillo no puede quedar vacío.")
		}
		in.Name = &trimmed
	}
	if err := dto.Validate(in, MsgItemRequired); err != nil {
		return nil, err
	}
	var newPrice *decimal.Decimal
	if in.Price != nil {
		p, err := ParsePrice(*in.Price)
		if err != nil {
			return nil, err
		}
		newPrice = &p
	}

	var newImage *string
	if !image.Empty() {
		// Verificación previa: un DENY no debe dejar un archivo subido.
		current, err := uc.itemRepo.GetByID(ctx, itemID)
		if err != nil {
			return nil, err
		}
		if current == nil {
			return nil, domain.ErrMenuItemNotFound
		}
		if err := uc.authorize(restaurantID, current, current.ID, "update"); err != nil {
			return nil, err
		}
		newImage = uc.images.UploadOrNil(ctx, image, ports.FolderMenuItems)
	}

	var out *entity.MenuItem
	err := uc.txRunner.RunCatalog(ctx, func(_ repository.CategoryRepository, itemRepo repository.MenuItemRepository) error {
		item, err := loadItemForUpdate(ctx, itemRepo, itemID)
		if err != nil {
			return err
		}
		if err := uc.authorize(restaurantID, item, item.ID, "update"); err != nil {
			return err
		}
		if in.Name != nil {
			item.Name = *in.Name
		}
		if newPrice != nil {
			item.Price = *newPrice
		}
		if in.Description != nil {
			item.Description = strings.TrimSpace(*in.Description)
		}
		if newImage != nil {
			item.Image = newImage
		}
		item.UpdatedAt = time.Now()
		if err := itemRepo.Update(ctx, item); err != nil {
			return err
		}
		out = item
		return nil
	})
	if err != nil {
		uc.logOrphanImage(newImage, itemID, err)
		return nil, err
	}
	return toMenuItemResponse(out), nil
}

// Delete elimina un platillo del restaurante autenticado.
func (uc *MenuItemUseCase) Delete(ctx context.Context, restaurantID, itemID string) error {
	return uc.txRunner.RunCatalog(ctx, func(_ repository.CategoryRepository, itemRepo repository.MenuItemRepository) error {
		item, err := loadItemForUpdate(ctx, itemRepo, itemID)
		if err != nil {
			return err
		}
		if err := uc.authorize(restaurantID, item, item.ID, "delete"); err != nil {
			return err
		}
		return itemRepo.Delete(ctx, item.ID)
	})
}

// logOrphanImage registra la URL de una imagen ya subida cuya transacción no se confirmó;
// el objeto queda en el bucket sin fila que lo referencie.
func (uc *MenuItemUseCase) logOrphanImage(imageURL *string, targetID string, err error) {
	if imageURL == nil {
		return
	}
	uc.log.Warn().Err(err).Str("target_id", targetID).Str("image", *imageURL).Msg("imagen subida sin platillo asociado")
}

func (uc *MenuItemUseCase) authorize(restaurantID string, target authz.Owned, itemID, action string) error {
	if err := authz.Require(restaurantID, target); err != nil {
		ev := uc.log.Warn().Str("restaurant_id", restaurantID).Str("action", action)
		if itemID != "" {
			ev = ev.Str("item_id", itemID)
		}
		ev.Msg("acceso denegado a platillo")
		return err
	}
	return nil
}

func loadItemForUpdate(ctx context.Context, repo repository.MenuItemRepository, id string) (*entity.MenuItem, error) {
	if id == "" {
		return nil, domain.ErrMenuItemNotFound
	}
	item, err := repo.GetByIDForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrMenuItemNotFound
	}
	return item, nil
}

func toMenuItemResponse(i *entity.MenuItem) *dto.MenuItemResponse {
	if i == nil {
		return nil
	}
	return &dto.MenuItemResponse{
		ID:          i.ID,
		CategoryID:  i.CategoryID,
		Name:        i.Name,
		Price:       i.Price,
		Description: i.Description,
		Image:       i.Image,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}
