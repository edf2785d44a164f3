package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/forkful/recipe-api/config"
	"github.com/forkful/recipe-api/internal/database"
	"github.com/forkful/recipe-api/internal/repository"
	"github.com/forkful/recipe-api/internal/service"
)

// Seeds a demo account with a handful of tags, ingredients, and recipes
// for local development.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	ctx := context.Background()

	authService := service.NewAuthService(db, cfg.JWTSecret)
	user, err := authService.Register(ctx, "Demo User", "demo@example.com", "demopass123")
	if err != nil {
		log.Fatalf("Failed to create demo user: %v", err)
	}

	tagRepo := repository.NewTagRepository(db)
	ingredientRepo := repository.NewIngredientRepository(db)
	recipeRepo := repository.NewRecipeRepository(db)

	tagService := service.NewTagService(tagRepo)
	ingredientService := service.NewIngredientService(ingredientRepo)
	recipeService := service.NewRecipeService(recipeRepo, tagRepo, ingredientRepo)

	var tagIDs []uint
	for _, name := range []string{"Vegan", "Dessert", "Quick"} {
		tag, err := tagService.Create(ctx, user.ID, name)
		if err != nil {
			log.Fatalf("Failed to create tag %q: %v", name, err)
		}
		tagIDs = append(tagIDs, tag.ID)
	}

	var ingredientIDs []uint
	for _, name := range []string{"Chickpeas", "Coconut Milk", "Cucumber"} {
		ingredient, err := ingredientService.Create(ctx, user.ID, name)
		if err != nil {
			log.Fatalf("Failed to create ingredient %q: %v", name, err)
		}
		ingredientIDs = append(ingredientIDs, ingredient.ID)
	}

	recipes := []service.CreateRecipeInput{
		{
			Title:         "Chickpea Curry",
			TimeMinutes:   35,
			Price:         6.50,
			TagIDs:        tagIDs[:1],
			IngredientIDs: ingredientIDs[:2],
		},
		{
			Title:         "Cucumber Salad",
			TimeMinutes:   10,
			Price:         3.00,
			TagIDs:        tagIDs[2:],
			IngredientIDs: ingredientIDs[2:],
		},
	}
	for _, in := range recipes {
		if _, err := recipeService.Create(ctx, user.ID, in); err != nil {
			log.Fatalf("Failed to create recipe %q: %v", in.Title, err)
		}
	}

	log.Printf("Seeded demo data for %s", user.Email)
}
