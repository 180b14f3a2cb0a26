package storage

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encode(t *testing.T, format string) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})

	var buf bytes.Buffer
	switch format {
	case "png":
		require.NoError(t, png.Encode(&buf, img))
	case "jpeg":
		require.NoError(t, jpeg.Encode(&buf, img, nil))
	}
	return buf.Bytes()
}

func TestDetectImage(t *testing.T) {
	t.Run("png", func(t *testing.T) {
		ext, contentType, err := DetectImage(encode(t, "png"))
		require.NoError(t, err)
		assert.Equal(t, ".png", ext)
		assert.Equal(t, "image/png", contentType)
	})

	t.Run("jpeg", func(t *testing.T) {
		ext, contentType, err := DetectImage(encode(t, "jpeg"))
		require.NoError(t, err)
		assert.Equal(t, ".jpg", ext)
		assert.Equal(t, "image/jpeg", contentType)
	})

	t.Run("not an image", func(t *testing.T) {
		_, _, err := DetectImage([]byte("notanimage"))
		assert.ErrorIs(t, err, ErrNotImage)
	})

	t.Run("truncated png", func(t *testing.T) {
		data := encode(t, "png")
		_, _, err := DetectImage(data[:len(data)/2])
		assert.ErrorIs(t, err, ErrNotImage)
	})

	t.Run("empty", func(t *testing.T) {
		_, _, err := DetectImage(nil)
		assert.ErrorIs(t, err, ErrNotImage)
	})
}

func TestLocalStorage(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	store, err := NewLocalStorage(root, "/media/")
	require.NoError(t, err)

	key := "uploads/recipe/abc.png"
	require.NoError(t, store.UploadFile(ctx, key, []byte("data"), "image/png"))

	data, err := os.ReadFile(filepath.Join(root, "uploads", "recipe", "abc.png"))
	require.NoError(t, err)
	assert.Equal(t, []byte("data"), data)

	link := store.GetPublicLinkKey(key)
	assert.Equal(t, "/media/uploads/recipe/abc.png", link)
	assert.Equal(t, key, store.GetObjectKeyFromLink(link))
	assert.Empty(t, store.GetObjectKeyFromLink("https://elsewhere.example/abc.png"))

	require.NoError(t, store.DeleteFile(ctx, key))
	_, err = os.Stat(filepath.Join(root, key))
	assert.True(t, os.IsNotExist(err))

	t.Run("deleting a missing file is not an error", func(t *testing.T) {
		assert.NoError(t, store.DeleteFile(ctx, "uploads/recipe/missing.png"))
	})

	t.Run("keys cannot escape the root", func(t *testing.T) {
		require.NoError(t, store.UploadFile(ctx, "../../escape.txt", []byte("x"), "text/plain"))
		_, err := os.Stat(filepath.Join(root, "escape.txt"))
		assert.NoError(t, err)
	})
}

func TestAwsS3Links(t *testing.T) {
	s3 := &AwsS3{bucket: "recipes", region: "eu-west-1"}

	link := s3.GetPublicLinkKey("uploads/recipe/abc.png")
	assert.Equal(t, "https://recipes.s3.eu-west-1.amazonaws.com/uploads/recipe/abc.png", link)
	assert.Equal(t, "uploads/recipe/abc.png", s3.GetObjectKeyFromLink(link))
}
