package routes

import (
	"RecipeHub/internal/api/handlers"
	"RecipeHub/internal/middleware"
	"RecipeHub/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                 *fiber.App
	UserHandler         handlers.UserHandler
	RecipeHandler       handlers.RecipeHandler
	FavoriteHandler     handlers.FavoriteHandler
	WatchHandler        handlers.WatchHandler
	UserRecipeHandler   handlers.UserRecipeHandler
	FamilyRecipeHandler handlers.FamilyRecipeHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Recipes()
	c.Favorites()
	c.Watched()
	c.UserRecipes()
	c.FamilyRecipes()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes")

	// Static paths before /:id so "random" is never parsed as a recipe id.
	recipes.Get("/random", c.Middleware.OptionalAuthMiddleware(c.JWTService), c.RecipeHandler.GetRandomRecipes)
	recipes.Get("/search", c.Middleware.OptionalAuthMiddleware(c.JWTService), c.RecipeHandler.SearchRecipes)
	recipes.Get("/lastSearch", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.GetLastSearch)
	recipes.Get("/main", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.GetMainPage)

	recipes.Get("/:id", c.Middleware.OptionalAuthMiddleware(c.JWTService), c.RecipeHandler.GetRecipeDetails)
	recipes.Post("/:id/like", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.ToggleLike)
}

func (c *Config) Favorites() {
	favorites := c.App.Group("/api/v1/users/favorites", c.Middleware.AuthMiddleware(c.JWTService))

	favorites.Post("", c.FavoriteHandler.AddFavorite)
	favorites.Get("", c.FavoriteHandler.GetFavorites)
	favorites.Delete("/:id", c.FavoriteHandler.RemoveFavorite)
}

func (c *Config) Watched() {
	watched := c.App.Group("/api/v1/users/watched", c.Middleware.AuthMiddleware(c.JWTService))

	watched.Get("", c.WatchHandler.GetWatched)
	watched.Post("/:id", c.WatchHandler.RecordView)
	watched.Delete("", c.WatchHandler.ClearWatched)
}

func (c *Config) UserRecipes() {
	myRecipes := c.App.Group("/api/v1/users/recipes", c.Middleware.AuthMiddleware(c.JWTService))

	myRecipes.Post("", c.UserRecipeHandler.CreateRecipe)
	myRecipes.Get("", c.UserRecipeHandler.GetRecipes)
	myRecipes.Get("/:id", c.UserRecipeHandler.GetRecipeDetails)
	myRecipes.Delete("/:id", c.UserRecipeHandler.DeleteRecipe)
	myRecipes.Post("/:id/image", c.UserRecipeHandler.UploadRecipeImage)
}

func (c *Config) FamilyRecipes() {
	familyRecipes := c.App.Group("/api/v1/users/family", c.Middleware.AuthMiddleware(c.JWTService))

	familyRecipes.Post("", c.FamilyRecipeHandler.CreateRecipe)
	familyRecipes.Get("", c.FamilyRecipeHandler.GetRecipes)
	familyRecipes.Get("/:id", c.FamilyRecipeHandler.GetRecipeDetails)
	familyRecipes.Delete("/:id", c.FamilyRecipeHandler.DeleteRecipe)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
