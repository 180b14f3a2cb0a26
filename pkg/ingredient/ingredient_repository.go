package ingredient

import (
	"Recipe-API/entities"
	"context"

	"gorm.io/gorm"
)

type (
	IngredientRepository interface {
		GetIngredients(ctx context.Context, userID uint, assignedOnly bool) ([]*entities.Ingredient, error)
		GetIngredientByID(ctx context.Context, id uint, userID uint) (*entities.Ingredient, error)
		CheckNameExists(ctx context.Context, userID uint, name string, excludeID uint) (bool, error)
		UpdateIngredient(ctx context.Context, ingredient *entities.Ingredient) error
		DeleteIngredient(ctx context.Context, ingredient *entities.Ingredient) error
	}

	ingredientRepository struct {
		db *gorm.DB
	}
)

func NewIngredientRepository(db *gorm.DB) IngredientRepository {
	return &ingredientRepository{db: db}
}

func (r *ingredientRepository) GetIngredients(ctx context.Context, userID uint, assignedOnly bool) ([]*entities.Ingredient, error) {
	var ingredients []*entities.Ingredient
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if assignedOnly {
		query = query.Where("id IN (?)", r.db.Table("recipe_ingredients").Select("ingredient_id"))
	}
	if err := query.Order("name desc").Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (r *ingredientRepository) GetIngredientByID(ctx context.Context, id uint, userID uint) (*entities.Ingredient, error) {
	var ingredient entities.Ingredient
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

func (r *ingredientRepository) CheckNameExists(ctx context.Context, userID uint, name string, excludeID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Ingredient{}).
		Where("user_id = ? AND name = ? AND id <> ?", userID, name, excludeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ingredientRepository) UpdateIngredient(ctx context.Context, ingredient *entities.Ingredient) error {
	return r.db.WithContext(ctx).Model(ingredient).Update("name", ingredient.Name).Error
}

// DeleteIngredient removes the ingredient together with its recipe_ingredients rows.
func (r *ingredientRepository) DeleteIngredient(ctx context.Context, ingredient *entities.Ingredient) error {
	return r.db.WithContext(ctx).Select("Recipes").Delete(ingredient).Error
}
