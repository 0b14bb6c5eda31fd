package config

import (
	"RecipeHub/internal/api/handlers"
	"RecipeHub/internal/api/routes"
	"RecipeHub/internal/middleware"
	"RecipeHub/internal/utils"
	"RecipeHub/internal/utils/searchcache"
	"RecipeHub/internal/utils/storage"
	"RecipeHub/pkg/catalog"
	"RecipeHub/pkg/family"
	"RecipeHub/pkg/favorites"
	"RecipeHub/pkg/jwt"
	"RecipeHub/pkg/likes"
	"RecipeHub/pkg/recipes"
	"RecipeHub/pkg/user"
	"RecipeHub/pkg/userrecipes"
	"RecipeHub/pkg/watch"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	catalogClient := catalog.NewCatalogClient(
		utils.GetConfig("CATALOG_BASE_URL"),
		utils.GetConfig("CATALOG_API_KEY"),
	)
	searchCache := searchcache.New(searchcache.DefaultTTL)

	// Repository
	userRepository := user.NewUserRepository(db)
	likeRepository := likes.NewLikeRepository(db)
	favoriteRepository := favorites.NewFavoriteRepository(db)
	watchRepository := watch.NewWatchRepository(db)
	userRecipeRepository := userrecipes.NewUserRecipeRepository(db)
	familyRecipeRepository := family.NewFamilyRecipeRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	likeService := likes.NewLikeService(likeRepository, catalogClient)
	favoriteService := favorites.NewFavoriteService(favoriteRepository)
	watchService := watch.NewWatchService(watchRepository)
	recipeService := recipes.NewRecipeService(catalogClient, likeService, watchService)
	userRecipeService := userrecipes.NewUserRecipeService(userRecipeRepository, s3)
	familyRecipeService := family.NewFamilyRecipeService(familyRecipeRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, likeService, searchCache, validator)
	favoriteHandler := handlers.NewFavoriteHandler(favoriteService, recipeService, validator)
	watchHandler := handlers.NewWatchHandler(watchService, recipeService)
	userRecipeHandler := handlers.NewUserRecipeHandler(userRecipeService, validator)
	familyRecipeHandler := handlers.NewFamilyRecipeHandler(familyRecipeService, validator)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		UserHandler:         userHandler,
		RecipeHandler:       recipeHandler,
		FavoriteHandler:     favoriteHandler,
		WatchHandler:        watchHandler,
		UserRecipeHandler:   userRecipeHandler,
		FamilyRecipeHandler: familyRecipeHandler,
		Middleware:          middlewares,
		JWTService:          jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
