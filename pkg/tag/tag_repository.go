package tag

import (
	"Recipe-API/entities"
	"context"

	"gorm.io/gorm"
)

type (
	TagRepository interface {
		GetTags(ctx context.Context, userID uint, assignedOnly bool) ([]*entities.Tag, error)
		GetTagByID(ctx context.Context, id uint, userID uint) (*entities.Tag, error)
		CheckNameExists(ctx context.Context, userID uint, name string, excludeID uint) (bool, error)
		UpdateTag(ctx context.Context, tag *entities.Tag) error
		DeleteTag(ctx context.Context, tag *entities.Tag) error
	}

	tagRepository struct {
		db *gorm.DB
	}
)

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) GetTags(ctx context.Context, userID uint, assignedOnly bool) ([]*entities.Tag, error) {
	var tags []*entities.Tag
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if assignedOnly {
		query = query.Where("id IN (?)", r.db.Table("recipe_tags").Select("tag_id"))
	}
	if err := query.Order("name desc").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *tagRepository) GetTagByID(ctx context.Context, id uint, userID uint) (*entities.Tag, error) {
	var tag entities.Tag
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *tagRepository) CheckNameExists(ctx context.Context, userID uint, name string, excludeID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Tag{}).
		Where("user_id = ? AND name = ? AND id <> ?", userID, name, excludeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *tagRepository) UpdateTag(ctx context.Context, tag *entities.Tag) error {
	return r.db.WithContext(ctx).Model(tag).Update("name", tag.Name).Error
}

// DeleteTag removes the tag together with its recipe_tags rows.
func (r *tagRepository) DeleteTag(ctx context.Context, tag *entities.Tag) error {
	return r.db.WithContext(ctx).Select("Recipes").Delete(tag).Error
}
