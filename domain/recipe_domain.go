package domain

import (
	"github.com/shopspring/decimal"
)

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessCreateRecipe    = "recipe created successfully"
	MessageSuccessUpdateRecipe    = "recipe updated successfully"
	MessageSuccessUploadImage     = "recipe image uploaded successfully"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedCreateRecipe    = "failed to create recipe"
	MessageFailedUpdateRecipe    = "failed to update recipe"
	MessageFailedDeleteRecipe    = "failed to delete recipe"
	MessageFailedUploadImage     = "failed to upload recipe image"

	ErrRecipeNotFound      = NewNotFoundError("recipe not found")
	ErrTitleRequired       = NewValidationError("title: this field may not be blank")
	ErrTimeMinutesRequired = NewValidationError("time_minutes: this field is required")
	ErrPriceRequired       = NewValidationError("price: this field is required")
	ErrPriceDecimalPlaces  = NewValidationError("price: ensure that there are no more than 2 decimal places")
	ErrPriceMaxDigits      = NewValidationError("price: ensure that there are no more than 5 digits in total")
	ErrImageRequired       = NewValidationError("image: no file was submitted")
	ErrInvalidImage        = NewValidationError("image: upload a valid image, the file you uploaded was either not an image or a corrupted image")
)

type (
	CreateRecipeRequest struct {
		Title       string              `json:"title" validate:"required,max=255"`
		TimeMinutes *int                `json:"time_minutes" validate:"required"`
		Price       *decimal.Decimal    `json:"price" validate:"required"`
		Link        string              `json:"link" validate:"max=255"`
		Description string              `json:"description"`
		Tags        []TagRequest        `json:"tags" validate:"omitempty,dive"`
		Ingredients []IngredientRequest `json:"ingredients" validate:"omitempty,dive"`
	}

	// UpdateRecipeRequest serves both PATCH and PUT. A nil field was absent
	// from the payload (explicit nulls are rejected before decoding); a
	// non-nil Tags or Ingredients, even an empty one, replaces the whole
	// association set.
	UpdateRecipeRequest struct {
		Title       *string              `json:"title" validate:"omitempty,max=255"`
		TimeMinutes *int                 `json:"time_minutes"`
		Price       *decimal.Decimal     `json:"price"`
		Link        *string              `json:"link" validate:"omitempty,max=255"`
		Description *string              `json:"description"`
		Tags        *[]TagRequest        `json:"tags" validate:"omitempty,dive"`
		Ingredients *[]IngredientRequest `json:"ingredients" validate:"omitempty,dive"`
	}

	RecipeFilter struct {
		TagIDs        []uint
		IngredientIDs []uint
	}

	Recipe struct {
		ID          uint                 `json:"id"`
		Title       string               `json:"title"`
		TimeMinutes int                  `json:"time_minutes"`
		Price       string               `json:"price"`
		Link        string               `json:"link"`
		Tags        []TagResponse        `json:"tags"`
		Ingredients []IngredientResponse `json:"ingredients"`
	}

	RecipeDetail struct {
		Recipe
		Description string  `json:"description"`
		Image       *string `json:"image"`
	}
)
