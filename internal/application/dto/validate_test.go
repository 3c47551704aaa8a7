package dto_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/menu-api/internal/application/dto"
	"github.com/jhoicas/menu-api/internal/domain"
)

func TestValidate_CampoRequerido(t *testing.T) {
	err := dto.Validate(dto.CategoryRequest{}, "La categoría es obligatoria.")
	require.Error(t, err)

	var vErr *domain.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "category", vErr.Field)
	assert.Equal(t, "La categoría es obligatoria.", vErr.Message)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestValidate_LongitudMaxima(t *testing.T) {
	err := dto.Validate(dto.CategoryRequest{Category: strings.Repeat("a", 121)}, "x")
	var vErr *domain.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Contains(t, vErr.Message, "120")
}

func TestValidate_PunterosOpcionales(t *testing.T) {
	assert.NoError(t, dto.Validate(dto.UpdateMenuItemRequest{}, "x"))
	long := strings.Repeat("b", 200)
	assert.Error(t, dto.Validate(dto.UpdateMenuItemRequest{Name: &long}, "x"))
}

func TestValidate_Ok(t *testing.T) {
	in := dto.RegisterRestaurantRequest{
		Name: "NuevoRest", Password: "Password123", Schedule: "8-4",
		Location: "Bogotá", Description: "Un restaurante nuevo",
	}
	assert.NoError(t, dto.Validate(in, "x"))
}
