package router

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MelEUsher/Recipe-Manager/internal/config"
	"github.com/MelEUsher/Recipe-Manager/internal/handler"
	"github.com/MelEUsher/Recipe-Manager/internal/middleware"
	"github.com/MelEUsher/Recipe-Manager/internal/repository"
	"github.com/MelEUsher/Recipe-Manager/internal/service"
	"github.com/MelEUsher/Recipe-Manager/internal/storage"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← Backend
func New(cfg *config.Config, backend storage.Backend) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	db := backend.DB()

	// ── Repositories ─────────────────────────────────────────────────────────
	categoryRepo := repository.NewCategoryRepository(db)
	recipeRepo := repository.NewRecipeRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	categorySvc := service.NewCategoryService(categoryRepo)
	recipeSvc := service.NewRecipeService(recipeRepo, categoryRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	categoriesH := handler.NewCategoriesHandler(categorySvc, cfg.DefaultPageSize)
	recipesH := handler.NewRecipesHandler(recipeSvc, cfg.DefaultPageSize)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/", handler.Root)
	r.GET("/health", handler.Health(backend))

	api := r.Group("/api")
	{
		categories := api.Group("/categories")
		{
			categories.GET("", categoriesH.List)
			categories.POST("", categoriesH.Create)
			categories.GET("/:id", categoriesH.Get)
			categories.PUT("/:id", categoriesH.Update)
			categories.DELETE("/:id", categoriesH.Delete)
		}

		recipes := api.Group("/recipes")
		{
			recipes.GET("", recipesH.List)
			recipes.POST("", recipesH.Create)
			recipes.GET("/:id", recipesH.Get)
			recipes.PUT("/:id", recipesH.Update)
			recipes.DELETE("/:id", recipesH.Delete)
		}
	}

	return r
}
