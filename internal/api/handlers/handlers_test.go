package handlers_test

import (
	"Recipe-API/cmd/config"
	"Recipe-API/domain"
	"Recipe-API/entities"
	"Recipe-API/internal/testutil"
	"Recipe-API/internal/utils/storage"
	"Recipe-API/pkg/jwt"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

type testApp struct {
	app *fiber.App
	db  *gorm.DB
}

func newTestApp(t *testing.T) testApp {
	t.Helper()
	t.Setenv("JWT_SECRET", "handler-test-secret")
	t.Setenv("RATE_LIMIT_MAX", "0")
	t.Setenv("LOG_FILE", filepath.Join(t.TempDir(), "app.log"))
	t.Setenv("SMTP_HOST", "")

	db := testutil.NewDB(t)
	store, err := storage.NewLocalStorage(t.TempDir(), "/media")
	require.NoError(t, err)

	app, cleanup, err := config.NewApp(db, store)
	require.NoError(t, err)
	t.Cleanup(cleanup)
	return testApp{app: app, db: db}
}

func tokenFor(t *testing.T, user *entities.User) string {
	t.Helper()

	jwtService, err := jwt.NewJWTService()
	require.NoError(t, err)
	return jwtService.GenerateTokenUser(strconv.FormatUint(uint64(user.ID), 10), domain.RoleUser)
}

func (a testApp) do(t *testing.T, method, path, token string, body any) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return a.send(t, req)
}

func (a testApp) send(t *testing.T, req *http.Request) (int, envelope) {
	t.Helper()

	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	}
	return resp.StatusCode, env
}

func decode[T any](t *testing.T, env envelope) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(env.Data, &v))
	return v
}

func TestAuthRequired(t *testing.T) {
	a := newTestApp(t)

	for _, path := range []string{"/api/v1/recipes", "/api/v1/tags", "/api/v1/ingredients", "/api/v1/users/me"} {
		t.Run(path, func(t *testing.T) {
			status, env := a.do(t, http.MethodGet, path, "", nil)
			assert.Equal(t, http.StatusUnauthorized, status)
			assert.False(t, env.Status)
		})
	}

	t.Run("invalid token", func(t *testing.T) {
		status, _ := a.do(t, http.MethodGet, "/api/v1/recipes", "garbage", nil)
		assert.Equal(t, http.StatusUnauthorized, status)
	})

	t.Run("token prefix is accepted", func(t *testing.T) {
		user := testutil.CreateUser(t, a.db, "prefix@example.com")
		req := httptest.NewRequest(http.MethodGet, "/api/v1/recipes", nil)
		req.Header.Set("Authorization", "Token "+tokenFor(t, user))
		status, _ := a.send(t, req)
		assert.Equal(t, http.StatusOK, status)
	})

	t.Run("inactive user", func(t *testing.T) {
		user := testutil.CreateUser(t, a.db, "inactive@example.com")
		require.NoError(t, a.db.Model(user).Update("is_active", false).Error)
		status, _ := a.do(t, http.MethodGet, "/api/v1/recipes", tokenFor(t, user), nil)
		assert.Equal(t, http.StatusUnauthorized, status)
	})

	t.Run("deleted user", func(t *testing.T) {
		user := testutil.CreateUser(t, a.db, "deleted@example.com")
		token := tokenFor(t, user)
		require.NoError(t, a.db.Delete(user).Error)
		status, env := a.do(t, http.MethodGet, "/api/v1/recipes", token, nil)
		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, domain.MessageUserNotAllowed, env.Message)
	})
}

func TestPing(t *testing.T) {
	a := newTestApp(t)
	resp, err := a.app.Test(httptest.NewRequest(http.MethodGet, "/api/ping", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestUserFlow(t *testing.T) {
	a := newTestApp(t)

	status, env := a.do(t, http.MethodPost, "/api/v1/users/create", "", map[string]any{
		"email": "Test@Example.com", "password": "testpass123", "name": "Test Name",
	})
	require.Equal(t, http.StatusCreated, status, env.Error)
	assert.Equal(t, domain.UserResponse{Email: "Test@example.com", Name: "Test Name"}, decode[domain.UserResponse](t, env))

	t.Run("short password is rejected", func(t *testing.T) {
		status, _ := a.do(t, http.MethodPost, "/api/v1/users/create", "", map[string]any{
			"email": "short@example.com", "password": "pw",
		})
		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("bad credentials", func(t *testing.T) {
		status, _ := a.do(t, http.MethodPost, "/api/v1/users/token", "", map[string]any{
			"email": "Test@example.com", "password": "wrong",
		})
		assert.Equal(t, http.StatusBadRequest, status)
	})

	status, env = a.do(t, http.MethodPost, "/api/v1/users/token", "", map[string]any{
		"email": "Test@example.com", "password": "testpass123",
	})
	require.Equal(t, http.StatusOK, status, env.Error)
	token := decode[domain.LoginResponse](t, env).Token
	require.NotEmpty(t, token)

	status, env = a.do(t, http.MethodGet, "/api/v1/users/me", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Test Name", decode[domain.UserResponse](t, env).Name)

	status, env = a.do(t, http.MethodPatch, "/api/v1/users/me", token, map[string]any{"name": "Renamed"})
	require.Equal(t, http.StatusOK, status, env.Error)
	assert.Equal(t, "Renamed", decode[domain.UserResponse](t, env).Name)
}

func TestRecipeEndpoints(t *testing.T) {
	a := newTestApp(t)
	alice := testutil.CreateUser(t, a.db, "alice@example.com")
	bob := testutil.CreateUser(t, a.db, "bob@example.com")
	aliceToken, bobToken := tokenFor(t, alice), tokenFor(t, bob)

	testutil.CreateRecipe(t, a.db, bob.ID, "Bob's recipe")

	status, env := a.do(t, http.MethodPost, "/api/v1/recipes", aliceToken, map[string]any{
		"title":        "Thai Prawn Curry",
		"time_minutes": 30,
		"price":        "2.50",
		"tags":         []map[string]string{{"name": "Thai"}, {"name": "Dinner"}},
		"user_id":      bob.ID,
	})
	require.Equal(t, http.StatusCreated, status, env.Error)
	created := decode[domain.RecipeDetail](t, env)
	assert.Equal(t, "2.50", created.Price)
	assert.Len(t, created.Tags, 2)

	var owner uint
	require.NoError(t, a.db.Model(&entities.Recipe{}).Select("user_id").Where("id = ?", created.ID).Scan(&owner).Error)
	assert.Equal(t, alice.ID, owner)

	recipePath := fmt.Sprintf("/api/v1/recipes/%d", created.ID)

	t.Run("list only shows own recipes", func(t *testing.T) {
		status, env := a.do(t, http.MethodGet, "/api/v1/recipes/", aliceToken, nil)
		require.Equal(t, http.StatusOK, status)
		recipes := decode[[]map[string]any](t, env)
		require.Len(t, recipes, 1)
		assert.Equal(t, "Thai Prawn Curry", recipes[0]["title"])
		assert.NotContains(t, recipes[0], "description")
	})

	t.Run("missing required field", func(t *testing.T) {
		status, _ := a.do(t, http.MethodPost, "/api/v1/recipes", aliceToken, map[string]any{"title": "No price"})
		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("null tags or ingredients are rejected", func(t *testing.T) {
		for _, key := range []string{"tags", "ingredients"} {
			status, env := a.do(t, http.MethodPatch, recipePath, aliceToken, map[string]any{key: nil, "title": "Ignored"})
			assert.Equal(t, http.StatusBadRequest, status)
			assert.Equal(t, key+": this field may not be null", env.Error)
		}

		status, env := a.do(t, http.MethodGet, recipePath, aliceToken, nil)
		require.Equal(t, http.StatusOK, status)
		detail := decode[domain.RecipeDetail](t, env)
		assert.Equal(t, "Thai Prawn Curry", detail.Title)
		assert.Len(t, detail.Tags, 2)
	})

	t.Run("patch tags to empty clears them", func(t *testing.T) {
		status, env := a.do(t, http.MethodPatch, recipePath, aliceToken, map[string]any{"tags": []any{}})
		require.Equal(t, http.StatusOK, status, env.Error)
		assert.Empty(t, decode[domain.RecipeDetail](t, env).Tags)
	})

	t.Run("other user gets 404", func(t *testing.T) {
		status, _ := a.do(t, http.MethodGet, recipePath, bobToken, nil)
		assert.Equal(t, http.StatusNotFound, status)

		status, _ = a.do(t, http.MethodDelete, recipePath, bobToken, nil)
		assert.Equal(t, http.StatusNotFound, status)

		var count int64
		require.NoError(t, a.db.Model(&entities.Recipe{}).Where("id = ?", created.ID).Count(&count).Error)
		assert.EqualValues(t, 1, count)
	})

	t.Run("invalid id is 404", func(t *testing.T) {
		status, _ := a.do(t, http.MethodGet, "/api/v1/recipes/abc", aliceToken, nil)
		assert.Equal(t, http.StatusNotFound, status)
	})

	t.Run("upload non-image is 400", func(t *testing.T) {
		status, _ := a.send(t, multipartRequest(t, recipePath+"/upload-image", aliceToken, []byte("notimage")))
		assert.Equal(t, http.StatusBadRequest, status)

		status, env := a.do(t, http.MethodGet, recipePath, aliceToken, nil)
		require.Equal(t, http.StatusOK, status)
		assert.Nil(t, decode[domain.RecipeDetail](t, env).Image)
	})

	t.Run("upload png", func(t *testing.T) {
		status, env := a.send(t, multipartRequest(t, recipePath+"/upload-image", aliceToken, testutil.PNG(t)))
		require.Equal(t, http.StatusOK, status, env.Error)
		detail := decode[domain.RecipeDetail](t, env)
		require.NotNil(t, detail.Image)

		resp, err := a.app.Test(httptest.NewRequest(http.MethodGet, *detail.Image, nil), -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("delete", func(t *testing.T) {
		status, _ := a.do(t, http.MethodDelete, recipePath, aliceToken, nil)
		assert.Equal(t, http.StatusNoContent, status)

		status, _ = a.do(t, http.MethodGet, recipePath, aliceToken, nil)
		assert.Equal(t, http.StatusNotFound, status)
	})
}

func TestTagEndpoints(t *testing.T) {
	a := newTestApp(t)
	alice := testutil.CreateUser(t, a.db, "alice@example.com")
	bob := testutil.CreateUser(t, a.db, "bob@example.com")
	token := tokenFor(t, alice)

	recipe := testutil.CreateRecipe(t, a.db, alice.ID, "Porridge", "Breakfast")
	require.NoError(t, a.db.Create(&entities.Tag{UserID: alice.ID, Name: "Vegan"}).Error)
	bobTag := &entities.Tag{UserID: bob.ID, Name: "Fruity"}
	require.NoError(t, a.db.Create(bobTag).Error)

	status, env := a.do(t, http.MethodGet, "/api/v1/tags", token, nil)
	require.Equal(t, http.StatusOK, status)
	tags := decode[[]domain.TagResponse](t, env)
	require.Len(t, tags, 2)
	assert.Equal(t, "Vegan", tags[0].Name)

	status, env = a.do(t, http.MethodGet, "/api/v1/tags?assigned_only=1", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []domain.TagResponse{{ID: recipe.Tags[0].ID, Name: "Breakfast"}}, decode[[]domain.TagResponse](t, env))

	tagPath := fmt.Sprintf("/api/v1/tags/%d", recipe.Tags[0].ID)
	status, env = a.do(t, http.MethodPatch, tagPath, token, map[string]any{"name": "Dessert"})
	require.Equal(t, http.StatusOK, status, env.Error)
	assert.Equal(t, "Dessert", decode[domain.TagResponse](t, env).Name)

	status, env = a.do(t, http.MethodPatch, tagPath, token, map[string]any{"name": nil})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "name: this field may not be null", env.Error)

	status, _ = a.do(t, http.MethodDelete, fmt.Sprintf("/api/v1/tags/%d", bobTag.ID), token, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = a.do(t, http.MethodDelete, tagPath, token, nil)
	assert.Equal(t, http.StatusNoContent, status)
}

func TestIngredientEndpoints(t *testing.T) {
	a := newTestApp(t)
	alice := testutil.CreateUser(t, a.db, "alice@example.com")
	token := tokenFor(t, alice)

	salt := testutil.CreateIngredient(t, a.db, alice.ID, "Salt")
	testutil.CreateIngredient(t, a.db, alice.ID, "Kale")

	status, env := a.do(t, http.MethodGet, "/api/v1/ingredients", token, nil)
	require.Equal(t, http.StatusOK, status)
	ingredients := decode[[]domain.IngredientResponse](t, env)
	require.Len(t, ingredients, 2)
	assert.Equal(t, "Salt", ingredients[0].Name)

	ingredientPath := fmt.Sprintf("/api/v1/ingredients/%d", salt.ID)
	status, env = a.do(t, http.MethodPut, ingredientPath, token, map[string]any{"name": "Pepper"})
	require.Equal(t, http.StatusOK, status, env.Error)
	assert.Equal(t, "Pepper", decode[domain.IngredientResponse](t, env).Name)

	status, _ = a.do(t, http.MethodDelete, ingredientPath, token, nil)
	assert.Equal(t, http.StatusNoContent, status)
}

func multipartRequest(t *testing.T, path, token string, data []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("image", "upload.png")
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}
