package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/menu-api/internal/application/dto"
	"github.com/jhoicas/menu-api/internal/application/media"
	"github.com/jhoicas/menu-api/internal/application/ports"
	"github.com/jhoicas/menu-api/internal/domain"
	"github.com/jhoicas/menu-api/internal/domain/credential"
	"github.com/jhoicas/menu-api/internal/domain/entity"
	"github.com/jhoicas/menu-api/internal/domain/repository"
	"github.com/jhoicas/menu-api/pkg/jwt"
	"github.com/jhoicas/menu-api/pkg/logger"
)

// Mensajes de validación del registro.
const (
	MsgRequiredFields = "Todos los campos son obligatorios (incluyendo la imagen)."
	MsgNameTaken      = "Ese nombre de restaurante ya está registrado. Intenta con otro."
	MsgLoginRequired  = "Nombre y contraseña son obligatorios."
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login y logout.
type AuthUseCase struct {
	restaurantRepo repository.RestaurantRepository
	images         *media.ImageService
	denylist       repository.TokenDenylist
	jwtCfg         JWTConfig
	log            *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	restaurantRepo repository.RestaurantRepository,
	images *media.ImageService,
	denylist repository.TokenDenylist,
	jwtCfg JWTConfig,
	log *logger.Logger,
) *AuthUseCase {
	return &AuthUseCase{
		restaurantRepo: restaurantRepo,
		images:         images,
		denylist:       denylist,
		jwtCfg:         jwtCfg,
		log:            log,
	}
}

// Register crea un restaurante. Orden: campos requeridos, política de contraseña,
// nombre único, subida de imagen, persistencia. Si la subida falla el restaurante se
// crea sin imagen. ErrNameTaken si el nombre ya existe (también ante una carrera, vía
// el índice único).
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRestaurantRequest, image *ports.ImageFile) (*dto.RestaurantResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Password = strings.TrimSpace(in.Password)
	in.Schedule = strings.TrimSpace(in.Schedule)
	in.Location = strings.TrimSpace(in.Location)
	in.Description = strings.TrimSpace(in.Description)

	if err := dto.Validate(in, MsgRequiredFields); err != nil {
		return nil, err
	}
	if image.Empty() {
		return nil, domain.NewValidationError("image", MsgRequiredFields)
	}
	if err := credential.CheckPolicy(in.Password); err != nil {
		return nil, err
	}

	existing, err := uc.restaurantRepo.GetByName(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrNameTaken
	}

	now := time.Now()
	restaurant := &entity.Restaurant{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Schedule:    in.Schedule,
		Location:    in.Location,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := restaurant.SetPassword(in.Password); err != nil {
		return nil, err
	}
	restaurant.Image = uc.images.UploadOrNil(ctx, image, ports.FolderRestaurants)

	if err := uc.restaurantRepo.Create(ctx, restaurant); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.ErrNameTaken
		}
		return nil, err
	}
	uc.log.Info().Str("restaurant_id", restaurant.ID).Bool("image", restaurant.Image != nil).Msg("restaurante registrado")
	return ToRestaurantResponse(restaurant), nil
}

// Login verifica nombre/contraseña y emite un JWT. Nombre inexistente y contraseña
// incorrecta devuelven el mismo ErrInvalidCredentials.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := dto.Validate(in, MsgLoginRequired); err != nil {
		return nil, err
	}
	restaurant, err := uc.restaurantRepo.GetByName(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		credential.VerifyDummy(in.Password)
		return nil, domain.ErrInvalidCredentials
	}
	if !restaurant.CheckPassword(in.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	token, expiresAt, err := jwt.Generate(uc.jwtCfg.Secret, restaurant.ID, restaurant.Name, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:      token,
		ExpiresAt:  expiresAt,
		Restaurant: *ToRestaurantResponse(restaurant),
	}, nil
}

// Logout revoca el token actual hasta su expiración.
func (uc *AuthUseCase) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if tokenID == "" {
		return domain.ErrUnauthorized
	}
	return uc.denylist.Revoke(ctx, tokenID, expiresAt)
}

// IsRevoked lo usa el middleware de autenticación.
func (uc *AuthUseCase) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	return uc.denylist.IsRevoked(ctx, tokenID)
}

// ToRestaurantResponse mapea la entidad a su DTO de salida.
func ToRestaurantResponse(r *entity.Restaurant) *dto.RestaurantResponse {
	if r == nil {
		return nil
	}
	return &dto.RestaurantResponse{
		ID:          r.ID,
		Name:        r.Name,
		Schedule:    r.Schedule,
		Location:    r.Location,
		Description: r.Description,
		Image:       r.Image,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
