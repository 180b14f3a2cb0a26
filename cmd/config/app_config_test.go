package config_test

import (
	"Recipe-API/cmd/config"
	"Recipe-API/internal/testutil"
	"Recipe-API/internal/utils/storage"
	"Recipe-API/pkg/jwt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApp(t *testing.T) {
	t.Setenv("RATE_LIMIT_MAX", "0")
	t.Setenv("LOG_FILE", filepath.Join(t.TempDir(), "app.log"))
	t.Setenv("SMTP_HOST", "")

	db := testutil.NewDB(t)
	store, err := storage.NewLocalStorage(t.TempDir(), "/media")
	require.NoError(t, err)

	t.Run("empty jwt secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")

		app, cleanup, err := config.NewApp(db, store)
		assert.ErrorIs(t, err, jwt.ErrEmptySecret)
		assert.Nil(t, app)
		assert.Nil(t, cleanup)
	})

	t.Run("configured jwt secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "app-test-secret")

		app, cleanup, err := config.NewApp(db, store)
		require.NoError(t, err)
		t.Cleanup(cleanup)
		assert.NotNil(t, app)
	})
}
