package ingredient

import (
	"Recipe-API/domain"
	"Recipe-API/entities"
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

type (
	IngredientService interface {
		GetIngredients(ctx context.Context, userID uint, assignedOnly bool) ([]domain.IngredientResponse, error)
		GetIngredient(ctx context.Context, id uint, userID uint) (domain.IngredientResponse, error)
		UpdateIngredient(ctx context.Context, id uint, req domain.UpdateIngredientRequest, partial bool, userID uint) (domain.IngredientResponse, error)
		DeleteIngredient(ctx context.Context, id uint, userID uint) error
	}

	ingredientService struct {
		ingredientRepository IngredientRepository
	}
)

func NewIngredientService(ingredientRepository IngredientRepository) IngredientService {
	return &ingredientService{ingredientRepository: ingredientRepository}
}

func (s *ingredientService) GetIngredients(ctx context.Context, userID uint, assignedOnly bool) ([]domain.IngredientResponse, error) {
	ingredients, err := s.ingredientRepository.GetIngredients(ctx, userID, assignedOnly)
	if err != nil {
		return nil, err
	}

	response := make([]domain.IngredientResponse, 0, len(ingredients))
	for _, ingredient := range ingredients {
		response = append(response, ToIngredientResponse(ingredient))
	}
	return response, nil
}

func (s *ingredientService) GetIngredient(ctx context.Context, id uint, userID uint) (domain.IngredientResponse, error) {
	ingredient, err := s.getOwnedIngredient(ctx, id, userID)
	if err != nil {
		return domain.IngredientResponse{}, err
	}
	return ToIngredientResponse(ingredient), nil
}

func (s *ingredientService) UpdateIngredient(ctx context.Context, id uint, req domain.UpdateIngredientRequest, partial bool, userID uint) (domain.IngredientResponse, error) {
	ingredient, err := s.getOwnedIngredient(ctx, id, userID)
	if err != nil {
		return domain.IngredientResponse{}, err
	}

	if req.Name == nil {
		if partial {
			return ToIngredientResponse(ingredient), nil
		}
		return domain.IngredientResponse{}, domain.ErrIngredientNameRequired
	}

	name := strings.TrimSpace(*req.Name)
	if name == "" {
		return domain.IngredientResponse{}, domain.ErrIngredientNameRequired
	}

	taken, err := s.ingredientRepository.CheckNameExists(ctx, userID, name, ingredient.ID)
	if err != nil {
		return domain.IngredientResponse{}, err
	}
	if taken {
		return domain.IngredientResponse{}, domain.ErrIngredientNameTaken
	}

	ingredient.Name = name
	if err := s.ingredientRepository.UpdateIngredient(ctx, ingredient); err != nil {
		return domain.IngredientResponse{}, err
	}
	return ToIngredientResponse(ingredient), nil
}

func (s *ingredientService) DeleteIngredient(ctx context.Context, id uint, userID uint) error {
	ingredient, err := s.getOwnedIngredient(ctx, id, userID)
	if err != nil {
		return err
	}
	return s.ingredientRepository.DeleteIngredient(ctx, ingredient)
}

func (s *ingredientService) getOwnedIngredient(ctx context.Context, id uint, userID uint) (*entities.Ingredient, error) {
	ingredient, err := s.ingredientRepository.GetIngredientByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrIngredientNotFound
		}
		return nil, err
	}
	return ingredient, nil
}

func ToIngredientResponse(ingredient *entities.Ingredient) domain.IngredientResponse {
	return domain.IngredientResponse{
		ID:   ingredient.ID,
		Name: ingredient.Name,
	}
}
