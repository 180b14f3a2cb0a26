package tag

import (
	"Recipe-API/domain"
	"Recipe-API/entities"
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

type (
	TagService interface {
		GetTags(ctx context.Context, userID uint, assignedOnly bool) ([]domain.TagResponse, error)
		GetTag(ctx context.Context, id uint, userID uint) (domain.TagResponse, error)
		UpdateTag(ctx context.Context, id uint, req domain.UpdateTagRequest, partial bool, userID uint) (domain.TagResponse, error)
		DeleteTag(ctx context.Context, id uint, userID uint) error
	}

	tagService struct {
		tagRepository TagRepository
	}
)

func NewTagService(tagRepository TagRepository) TagService {
	return &tagService{tagRepository: tagRepository}
}

func (s *tagService) GetTags(ctx context.Context, userID uint, assignedOnly bool) ([]domain.TagResponse, error) {
	tags, err := s.tagRepository.GetTags(ctx, userID, assignedOnly)
	if err != nil {
		return nil, err
	}

	response := make([]domain.TagResponse, 0, len(tags))
	for _, tag := range tags {
		response = append(response, ToTagResponse(tag))
	}
	return response, nil
}

func (s *tagService) GetTag(ctx context.Context, id uint, userID uint) (domain.TagResponse, error) {
	tag, err := s.getOwnedTag(ctx, id, userID)
	if err != nil {
		return domain.TagResponse{}, err
	}
	return ToTagResponse(tag), nil
}

func (s *tagService) UpdateTag(ctx context.Context, id uint, req domain.UpdateTagRequest, partial bool, userID uint) (domain.TagResponse, error) {
	tag, err := s.getOwnedTag(ctx, id, userID)
	if err != nil {
		return domain.TagResponse{}, err
	}

	if req.Name == nil {
		if partial {
			return ToTagResponse(tag), nil
		}
		return domain.TagResponse{}, domain.ErrTagNameRequired
	}

	name := strings.TrimSpace(*req.Name)
	if name == "" {
		return domain.TagResponse{}, domain.ErrTagNameRequired
	}

	taken, err := s.tagRepository.CheckNameExists(ctx, userID, name, tag.ID)
	if err != nil {
		return domain.TagResponse{}, err
	}
	if taken {
		return domain.TagResponse{}, domain.ErrTagNameTaken
	}

	tag.Name = name
	if err := s.tagRepository.UpdateTag(ctx, tag); err != nil {
		return domain.TagResponse{}, err
	}
	return ToTagResponse(tag), nil
}

func (s *tagService) DeleteTag(ctx context.Context, id uint, userID uint) error {
	tag, err := s.getOwnedTag(ctx, id, userID)
	if err != nil {
		return err
	}
	return s.tagRepository.DeleteTag(ctx, tag)
}

func (s *tagService) getOwnedTag(ctx context.Context, id uint, userID uint) (*entities.Tag, error) {
	tag, err := s.tagRepository.GetTagByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTagNotFound
		}
		return nil, err
	}
	return tag, nil
}

func ToTagResponse(tag *entities.Tag) domain.TagResponse {
	return domain.TagResponse{
		ID:   tag.ID,
		Name: tag.Name,
	}
}
