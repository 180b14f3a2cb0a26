package presenters

import (
	"Recipe-API/domain"
	"errors"
	"fmt"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	type payload struct {
		Name string `validate:"required"`
	}
	validationErr := validator.New().Struct(payload{})

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation kind", domain.ErrTitleRequired, fiber.StatusBadRequest},
		{"validator errors", validationErr, fiber.StatusBadRequest},
		{"unauthenticated", domain.ErrTokenExpired, fiber.StatusUnauthorized},
		{"not found", domain.ErrRecipeNotFound, fiber.StatusNotFound},
		{"wrapped not found", fmt.Errorf("load: %w", domain.ErrTagNotFound), fiber.StatusNotFound},
		{"unknown", errors.New("boom"), fiber.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StatusOf(tc.err))
		})
	}
}
