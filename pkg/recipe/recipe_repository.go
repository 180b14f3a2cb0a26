package recipe

import (
	"Recipe-API/domain"
	"Recipe-API/entities"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		GetRecipes(ctx context.Context, userID uint, filter domain.RecipeFilter) ([]*entities.Recipe, error)
		GetRecipeByID(ctx context.Context, id uint, userID uint) (*entities.Recipe, error)
		CreateRecipe(ctx context.Context, recipe *entities.Recipe, tagNames []string, ingredientNames []string) error
		UpdateRecipe(ctx context.Context, recipe *entities.Recipe, fields map[string]any, tagNames *[]string, ingredientNames *[]string) error
		UpdateImage(ctx context.Context, recipe *entities.Recipe, image string) error
		DeleteRecipe(ctx context.Context, recipe *entities.Recipe) error
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

// transaction runs fn and retries it once if a unique index rejected a write.
// A concurrent request can insert the same new tag or ingredient name between
// the lookup and the insert; on the second run the lookup finds that row.
func (r *recipeRepository) transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	err := r.db.WithContext(ctx).Transaction(fn)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		err = r.db.WithContext(ctx).Transaction(fn)
	}
	return err
}

func preloadAssociations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Tags", func(db *gorm.DB) *gorm.DB { return db.Order("id asc") }).
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB { return db.Order("id asc") })
}

func (r *recipeRepository) GetRecipes(ctx context.Context, userID uint, filter domain.RecipeFilter) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)

	if len(filter.TagIDs) > 0 {
		query = query.Where("id IN (?)", r.db.Table("recipe_tags").
			Select("recipe_id").
			Where("tag_id IN ?", filter.TagIDs))
	}
	if len(filter.IngredientIDs) > 0 {
		query = query.Where("id IN (?)", r.db.Table("recipe_ingredients").
			Select("recipe_id").
			Where("ingredient_id IN ?", filter.IngredientIDs))
	}

	if err := preloadAssociations(query).Order("id desc").Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	return recipes, nil
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id uint, userID uint) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := preloadAssociations(r.db.WithContext(ctx)).
		Where("id = ? AND user_id = ?", id, userID).
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe, tagNames []string, ingredientNames []string) error {
	return r.transaction(ctx, func(tx *gorm.DB) error {
		recipe.ID = 0
		if err := tx.Omit("Tags", "Ingredients", "User").Create(recipe).Error; err != nil {
			return fmt.Errorf("create recipe: %w", err)
		}
		if err := replaceTags(tx, recipe, tagNames); err != nil {
			return err
		}
		return replaceIngredients(tx, recipe, ingredientNames)
	})
}

// UpdateRecipe writes the given columns and, for every non-nil name list,
// replaces the matching association set. Everything runs in one transaction.
func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe, fields map[string]any, tagNames *[]string, ingredientNames *[]string) error {
	return r.transaction(ctx, func(tx *gorm.DB) error {
		if len(fields) > 0 {
			if err := tx.Model(recipe).Omit("Tags", "Ingredients", "User").Updates(fields).Error; err != nil {
				return fmt.Errorf("update recipe %d: %w", recipe.ID, err)
			}
		}
		if tagNames != nil {
			if err := replaceTags(tx, recipe, *tagNames); err != nil {
				return err
			}
		}
		if ingredientNames != nil {
			if err := replaceIngredients(tx, recipe, *ingredientNames); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *recipeRepository) UpdateImage(ctx context.Context, recipe *entities.Recipe, image string) error {
	if err := r.db.WithContext(ctx).Model(recipe).Update("image", image).Error; err != nil {
		return fmt.Errorf("update recipe %d image: %w", recipe.ID, err)
	}
	return nil
}

// DeleteRecipe removes the recipe and its recipe_tags and recipe_ingredients
// rows. Tags and ingredients themselves are kept.
func (r *recipeRepository) DeleteRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Select("Tags", "Ingredients").Delete(recipe).Error
}

func replaceTags(tx *gorm.DB, recipe *entities.Recipe, names []string) error {
	tags := make([]*entities.Tag, 0, len(names))
	for _, name := range names {
		tag := entities.Tag{}
		if err := tx.Where(entities.Tag{UserID: recipe.UserID, Name: name}).
			FirstOrCreate(&tag).Error; err != nil {
			return fmt.Errorf("get or create tag %q: %w", name, err)
		}
		tags = append(tags, &tag)
	}

	association := tx.Model(recipe).Association("Tags")
	if len(tags) == 0 {
		if err := association.Clear(); err != nil {
			return fmt.Errorf("clear recipe tags: %w", err)
		}
	} else if err := association.Replace(tags); err != nil {
		return fmt.Errorf("replace recipe tags: %w", err)
	}
	recipe.Tags = tags
	return nil
}

func replaceIngredients(tx *gorm.DB, recipe *entities.Recipe, names []string) error {
	ingredients := make([]*entities.Ingredient, 0, len(names))
	for _, name := range names {
		ingredient := entities.Ingredient{}
		if err := tx.Where(entities.Ingredient{UserID: recipe.UserID, Name: name}).
			FirstOrCreate(&ingredient).Error; err != nil {
			return fmt.Errorf("get or create ingredient %q: %w", name, err)
		}
		ingredients = append(ingredients, &ingredient)
	}

	association := tx.Model(recipe).Association("Ingredients")
	if len(ingredients) == 0 {
		if err := association.Clear(); err != nil {
			return fmt.Errorf("clear recipe ingredients: %w", err)
		}
	} else if err := association.Replace(ingredients); err != nil {
		return fmt.Errorf("replace recipe ingredients: %w", err)
	}
	recipe.Ingredients = ingredients
	return nil
}
