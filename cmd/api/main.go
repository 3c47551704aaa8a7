package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/menu-api/internal/application/auth"
	"github.com/jhoicas/menu-api/internal/application/catalog"
	"github.com/jhoicas/menu-api/internal/application/media"
	"github.com/jhoicas/menu-api/internal/application/ports"
	"github.com/jhoicas/menu-api/internal/domain/repository"
	"github.com/jhoicas/menu-api/internal/infrastructure/memory"
	"github.com/jhoicas/menu-api/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/menu-api/internal/infrastructure/redis"
	"github.com/jhoicas/menu-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/menu-api/internal/interfaces/http"
	"github.com/jhoicas/menu-api/pkg/config"
	"github.com/jhoicas/menu-api/pkg/logger"
)

// repos agrupa los adaptadores de persistencia del driver elegido.
type repos struct {
	restaurants repository.RestaurantRepository
	categories  repository.CategoryRepository
	items       repository.MenuItemRepository
	tx          catalog.TxRunner
	close       func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db_driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	r, err := openRepos(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar persistencia")
	}
	defer r.close()

	var denylist repository.TokenDenylist
	if cfg.Redis.Addr != "" {
		redisDenylist, err := infraredis.NewTokenDenylist(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer redisDenylist.Close()
		denylist = redisDenylist
	} else {
		log.Warn().Msg("REDIS_ADDR vacío: tokens revocados en memoria (no compartidos entre instancias)")
		denylist = memory.NewTokenDenylist()
	}

	var uploader ports.ImageUploader
	if cfg.Storage.Enabled() {
		uploader = storage.NewSupabaseUploader(cfg.Storage.URL, cfg.Storage.Key, cfg.Storage.Bucket, cfg.Storage.Timeout)
	} else {
		log.Warn().Msg("SUPABASE_URL/SUPABASE_KEY vacíos: los registros se guardan sin imagen")
	}
	images := media.NewImageService(uploader, log)

	authUC := auth.NewAuthUseCase(r.restaurants, images, denylist, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, log)
	categoryUC := catalog.NewCategoryUseCase(r.tx, r.categories, log)
	menuItemUC := catalog.NewMenuItemUseCase(r.tx, r.categories, r.items, images, log)
	dashboardUC := catalog.NewDashboardUseCase(r.restaurants, r.categories, r.items)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    cfg.HTTP.BodyLimitMB * 1024 * 1024,
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Menu API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		CategoryUC:  categoryUC,
		MenuItemUC:  menuItemUC,
		DashboardUC: dashboardUC,
		JWTSecret:   cfg.JWT.Secret,
		Log:         log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

func openRepos(ctx context.Context, cfg *config.Config, log *logger.Logger) (*repos, error) {
	if cfg.DB.Driver == config.DriverMemory {
		log.Warn().Msg("DB_DRIVER=memory: los datos se pierden al reiniciar")
		store := memory.NewStore()
		return &repos{
			restaurants: memory.NewRestaurantRepository(store),
			categories:  memory.NewCategoryRepository(store),
			items:       memory.NewMenuItemRepository(store),
			tx:          memory.NewTxRunner(store),
			close:       func() {},
		}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, log); err != nil {
			pool.Close()
			return nil, err
		}
	}
	return &repos{
		restaurants: postgres.NewRestaurantRepository(pool),
		categories:  postgres.NewCategoryRepository(pool),
		items:       postgres.NewMenuItemRepository(pool),
		tx:          postgres.NewTxRunner(pool),
		close:       pool.Close,
	}, nil
}
