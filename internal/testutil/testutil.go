// Package testutil holds database and fixture helpers shared by package tests.
package testutil

import (
	migration "Recipe-API/cmd/database/migrate"
	"Recipe-API/entities"
	"bytes"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens a migrated sqlite database in a temp dir that lives as long
// as the test.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db") + "?_pragma=foreign_keys(1)"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, migration.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// CreateUser inserts an active user. The password column is left unusable.
func CreateUser(t *testing.T, db *gorm.DB, email string) *entities.User {
	t.Helper()

	user := &entities.User{Email: email, Name: "Test User", IsActive: true}
	require.NoError(t, db.Create(user).Error)
	return user
}

// CreateRecipe inserts a recipe owned by userID with the given tag names.
func CreateRecipe(t *testing.T, db *gorm.DB, userID uint, title string, tagNames ...string) *entities.Recipe {
	t.Helper()

	recipe := &entities.Recipe{
		UserID:      userID,
		Title:       title,
		TimeMinutes: 22,
		Price:       decimal.RequireFromString("5.25"),
		Description: "Sample description",
	}
	for _, name := range tagNames {
		tag := &entities.Tag{}
		require.NoError(t, db.Where(entities.Tag{UserID: userID, Name: name}).FirstOrCreate(tag).Error)
		recipe.Tags = append(recipe.Tags, tag)
	}
	require.NoError(t, db.Omit("User").Create(recipe).Error)
	return recipe
}

// CreateIngredient inserts an ingredient owned by userID.
func CreateIngredient(t *testing.T, db *gorm.DB, userID uint, name string) *entities.Ingredient {
	t.Helper()

	ingredient := &entities.Ingredient{UserID: userID, Name: name}
	require.NoError(t, db.Create(ingredient).Error)
	return ingredient
}

// PNG returns the bytes of a small valid PNG image.
func PNG(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for x := 0; x < 10; x++ {
		for y := 0; y < 10; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 40, B: 40, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}
