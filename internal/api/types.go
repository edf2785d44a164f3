package api

// Request bodies are explicit structs so required fields are checked by
// gin's binding instead of being probed out of dynamic maps.

type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type TokenRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type CreateTagRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}

type CreateIngredientRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}

type CreateRecipeRequest struct {
	Title         string  `json:"title" binding:"required,max=255"`
	TimeMinutes   int     `json:"time_minutes" binding:"gte=0"`
	Price         float64 `json:"price" binding:"gte=0"`
	Link          string  `json:"link"`
	TagIDs        []uint  `json:"tags"`
	IngredientIDs []uint  `json:"ingredients"`
}
