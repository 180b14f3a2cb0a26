package domain

var (
	MessageSuccessGetIngredients   = "success get ingredients"
	MessageSuccessGetIngredient    = "success get ingredient"
	MessageSuccessUpdateIngredient = "ingredient updated successfully"

	MessageFailedGetIngredients   = "failed to get ingredients"
	MessageFailedGetIngredient    = "failed to get ingredient"
	MessageFailedUpdateIngredient = "failed to update ingredient"
	MessageFailedDeleteIngredient = "failed to delete ingredient"

	ErrIngredientNotFound     = NewNotFoundError("ingredient not found")
	ErrIngredientNameRequired = NewValidationError("name: this field may not be blank")
	ErrIngredientNameTaken    = NewValidationError("ingredient with this name already exists")
)

type (
	IngredientRequest struct {
		Name string `json:"name" validate:"required,max=255"`
	}

	UpdateIngredientRequest struct {
		Name *string `json:"name" validate:"omitempty,max=255"`
	}

	IngredientResponse struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	}
)
