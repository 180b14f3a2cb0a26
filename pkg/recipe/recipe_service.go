package recipe

import (
	"Recipe-API/domain"
	"Recipe-API/entities"
	"Recipe-API/internal/utils/storage"
	"Recipe-API/pkg/ingredient"
	"Recipe-API/pkg/tag"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const imageKeyPrefix = "uploads/recipe"

var maxPrice = decimal.NewFromInt(1000)

type (
	RecipeService interface {
		GetRecipes(ctx context.Context, filter domain.RecipeFilter, userID uint) ([]domain.Recipe, error)
		GetRecipeDetail(ctx context.Context, id uint, userID uint) (domain.RecipeDetail, error)
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID uint) (domain.RecipeDetail, error)
		UpdateRecipe(ctx context.Context, id uint, req domain.UpdateRecipeRequest, partial bool, userID uint) (domain.RecipeDetail, error)
		DeleteRecipe(ctx context.Context, id uint, userID uint) error
		UploadImage(ctx context.Context, id uint, data []byte, userID uint) (domain.RecipeDetail, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		storage          storage.Storage
	}
)

func NewRecipeService(recipeRepository RecipeRepository, store storage.Storage) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		storage:          store,
	}
}

func (s *recipeService) GetRecipes(ctx context.Context, filter domain.RecipeFilter, userID uint) ([]domain.Recipe, error) {
	recipes, err := s.recipeRepository.GetRecipes(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	response := make([]domain.Recipe, 0, len(recipes))
	for _, recipe := range recipes {
		response = append(response, toRecipe(recipe))
	}
	return response, nil
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, id uint, userID uint) (domain.RecipeDetail, error) {
	recipe, err := s.getOwnedRecipe(ctx, id, userID)
	if err != nil {
		return domain.RecipeDetail{}, err
	}
	return toRecipeDetail(recipe), nil
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID uint) (domain.RecipeDetail, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.RecipeDetail{}, domain.ErrTitleRequired
	}
	if req.TimeMinutes == nil {
		return domain.RecipeDetail{}, domain.ErrTimeMinutesRequired
	}
	if req.Price == nil {
		return domain.RecipeDetail{}, domain.ErrPriceRequired
	}
	if err := validatePrice(*req.Price); err != nil {
		return domain.RecipeDetail{}, err
	}

	recipe := &entities.Recipe{
		UserID:      userID,
		Title:       title,
		TimeMinutes: *req.TimeMinutes,
		Price:       *req.Price,
		Link:        strings.TrimSpace(req.Link),
		Description: req.Description,
	}

	if err := s.recipeRepository.CreateRecipe(ctx, recipe, tagNames(req.Tags), ingredientNames(req.Ingredients)); err != nil {
		return domain.RecipeDetail{}, err
	}
	return s.GetRecipeDetail(ctx, recipe.ID, userID)
}

// UpdateRecipe applies a PATCH (partial) or PUT. Absent fields are left as
// they are in both modes; PUT only additionally requires the core fields.
func (s *recipeService) UpdateRecipe(ctx context.Context, id uint, req domain.UpdateRecipeRequest, partial bool, userID uint) (domain.RecipeDetail, error) {
	if !partial {
		if req.Title == nil {
			return domain.RecipeDetail{}, domain.ErrTitleRequired
		}
		if req.TimeMinutes == nil {
			return domain.RecipeDetail{}, domain.ErrTimeMinutesRequired
		}
		if req.Price == nil {
			return domain.RecipeDetail{}, domain.ErrPriceRequired
		}
	}

	recipe, err := s.getOwnedRecipe(ctx, id, userID)
	if err != nil {
		return domain.RecipeDetail{}, err
	}

	fields := map[string]any{}
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return domain.RecipeDetail{}, domain.ErrTitleRequired
		}
		fields["title"] = title
	}
	if req.TimeMinutes != nil {
		fields["time_minutes"] = *req.TimeMinutes
	}
	if req.Price != nil {
		if err := validatePrice(*req.Price); err != nil {
			return domain.RecipeDetail{}, err
		}
		fields["price"] = *req.Price
	}
	if req.Link != nil {
		fields["link"] = strings.TrimSpace(*req.Link)
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}

	var tags, ingredients *[]string
	if req.Tags != nil {
		names := tagNames(*req.Tags)
		tags = &names
	}
	if req.Ingredients != nil {
		names := ingredientNames(*req.Ingredients)
		ingredients = &names
	}

	if err := s.recipeRepository.UpdateRecipe(ctx, recipe, fields, tags, ingredients); err != nil {
		return domain.RecipeDetail{}, err
	}

	return s.GetRecipeDetail(ctx, id, userID)
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id uint, userID uint) error {
	recipe, err := s.getOwnedRecipe(ctx, id, userID)
	if err != nil {
		return err
	}

	if err := s.recipeRepository.DeleteRecipe(ctx, recipe); err != nil {
		return err
	}

	if recipe.Image != "" {
		s.removeImage(ctx, recipe.Image)
	}
	return nil
}

func (s *recipeService) UploadImage(ctx context.Context, id uint, data []byte, userID uint) (domain.RecipeDetail, error) {
	recipe, err := s.getOwnedRecipe(ctx, id, userID)
	if err != nil {
		return domain.RecipeDetail{}, err
	}

	if len(data) == 0 {
		return domain.RecipeDetail{}, domain.ErrImageRequired
	}

	ext, contentType, err := storage.DetectImage(data)
	if err != nil {
		return domain.RecipeDetail{}, domain.ErrInvalidImage
	}

	objectKey := fmt.Sprintf("%s/%s%s", imageKeyPrefix, uuid.New().String(), ext)
	if err := s.storage.UploadFile(ctx, objectKey, data, contentType); err != nil {
		return domain.RecipeDetail{}, fmt.Errorf("store recipe image: %w", err)
	}

	oldImage := recipe.Image
	link := s.storage.GetPublicLinkKey(objectKey)
	if err := s.recipeRepository.UpdateImage(ctx, recipe, link); err != nil {
		if delErr := s.storage.DeleteFile(ctx, objectKey); delErr != nil {
			log.Warnf("orphaned recipe image %s: %v", objectKey, delErr)
		}
		return domain.RecipeDetail{}, err
	}
	recipe.Image = link

	if oldImage != "" && oldImage != link {
		s.removeImage(ctx, oldImage)
	}
	return toRecipeDetail(recipe), nil
}

// removeImage deletes a stored image. Failures only leave an orphaned object
// behind, so they are logged instead of returned.
func (s *recipeService) removeImage(ctx context.Context, link string) {
	objectKey := s.storage.GetObjectKeyFromLink(link)
	if objectKey == "" {
		return
	}
	if err := s.storage.DeleteFile(ctx, objectKey); err != nil {
		log.Warnf("failed to delete recipe image %s: %v", objectKey, err)
	}
}

func (s *recipeService) getOwnedRecipe(ctx context.Context, id uint, userID uint) (*entities.Recipe, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	return recipe, nil
}

// validatePrice mirrors the decimal(5,2) column.
func validatePrice(price decimal.Decimal) error {
	if !price.Equal(price.Round(2)) {
		return domain.ErrPriceDecimalPlaces
	}
	if price.Abs().GreaterThanOrEqual(maxPrice) {
		return domain.ErrPriceMaxDigits
	}
	return nil
}

func tagNames(reqs []domain.TagRequest) []string {
	names := make([]string, 0, len(reqs))
	for _, req := range reqs {
		names = append(names, req.Name)
	}
	return uniqueNames(names)
}

func ingredientNames(reqs []domain.IngredientRequest) []string {
	names := make([]string, 0, len(reqs))
	for _, req := range reqs {
		names = append(names, req.Name)
	}
	return uniqueNames(names)
}

// uniqueNames trims names and drops blanks and repeats, keeping first-seen order.
func uniqueNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	unique := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		unique = append(unique, name)
	}
	return unique
}

func toRecipe(recipe *entities.Recipe) domain.Recipe {
	tags := make([]domain.TagResponse, 0, len(recipe.Tags))
	for _, t := range recipe.Tags {
		tags = append(tags, tag.ToTagResponse(t))
	}

	ingredients := make([]domain.IngredientResponse, 0, len(recipe.Ingredients))
	for _, i := range recipe.Ingredients {
		ingredients = append(ingredients, ingredient.ToIngredientResponse(i))
	}

	return domain.Recipe{
		ID:          recipe.ID,
		Title:       recipe.Title,
		TimeMinutes: recipe.TimeMinutes,
		Price:       recipe.Price.StringFixed(2),
		Link:        recipe.Link,
		Tags:        tags,
		Ingredients: ingredients,
	}
}

func toRecipeDetail(recipe *entities.Recipe) domain.RecipeDetail {
	detail := domain.RecipeDetail{
		Recipe:      toRecipe(recipe),
		Description: recipe.Description,
	}
	if recipe.Image != "" {
		image := recipe.Image
		detail.Image = &image
	}
	return detail
}
