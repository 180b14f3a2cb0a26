package tag

import (
	"Recipe-API/domain"
	"Recipe-API/entities"
	"Recipe-API/internal/testutil"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagService(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	svc := NewTagService(NewTagRepository(db))

	alice := testutil.CreateUser(t, db, "alice@example.com")
	bob := testutil.CreateUser(t, db, "bob@example.com")

	recipe := testutil.CreateRecipe(t, db, alice.ID, "Curry", "Indian")
	require.NoError(t, db.Create(&entities.Tag{UserID: alice.ID, Name: "Breakfast"}).Error)
	require.NoError(t, db.Create(&entities.Tag{UserID: alice.ID, Name: "Vegan"}).Error)
	bobTag := &entities.Tag{UserID: bob.ID, Name: "Fruity"}
	require.NoError(t, db.Create(bobTag).Error)
	indianID := recipe.Tags[0].ID

	t.Run("list is scoped to the user and ordered by descending name", func(t *testing.T) {
		tags, err := svc.GetTags(ctx, alice.ID, false)
		require.NoError(t, err)

		names := make([]string, 0, len(tags))
		for _, tag := range tags {
			names = append(names, tag.Name)
		}
		assert.Equal(t, []string{"Vegan", "Indian", "Breakfast"}, names)
	})

	t.Run("assigned only", func(t *testing.T) {
		tags, err := svc.GetTags(ctx, alice.ID, true)
		require.NoError(t, err)
		assert.Equal(t, []domain.TagResponse{{ID: indianID, Name: "Indian"}}, tags)
	})

	t.Run("other user's tag is not found", func(t *testing.T) {
		_, err := svc.GetTag(ctx, bobTag.ID, alice.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)

		_, err = svc.UpdateTag(ctx, bobTag.ID, domain.UpdateTagRequest{Name: strPtr("Mine")}, true, alice.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)

		assert.ErrorIs(t, svc.DeleteTag(ctx, bobTag.ID, alice.ID), domain.ErrNotFound)
	})

	t.Run("rename", func(t *testing.T) {
		res, err := svc.UpdateTag(ctx, indianID, domain.UpdateTagRequest{Name: strPtr(" South Indian ")}, true, alice.ID)
		require.NoError(t, err)
		assert.Equal(t, "South Indian", res.Name)
	})

	t.Run("rename to an existing name", func(t *testing.T) {
		_, err := svc.UpdateTag(ctx, indianID, domain.UpdateTagRequest{Name: strPtr("Vegan")}, true, alice.ID)
		assert.ErrorIs(t, err, domain.ErrTagNameTaken)
	})

	t.Run("put without a name", func(t *testing.T) {
		_, err := svc.UpdateTag(ctx, indianID, domain.UpdateTagRequest{}, false, alice.ID)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("delete detaches the tag from its recipes", func(t *testing.T) {
		require.NoError(t, svc.DeleteTag(ctx, indianID, alice.ID))

		var links int64
		require.NoError(t, db.Table("recipe_tags").Where("tag_id = ?", indianID).Count(&links).Error)
		assert.Zero(t, links)

		var recipes int64
		require.NoError(t, db.Model(&entities.Recipe{}).Where("id = ?", recipe.ID).Count(&recipes).Error)
		assert.EqualValues(t, 1, recipes)
	})
}

func strPtr(s string) *string { return &s }
