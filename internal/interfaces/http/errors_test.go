package http

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/menu-api/internal/application/auth"
	"github.com/jhoicas/menu-api/internal/application/dto"
	"github.com/jhoicas/menu-api/internal/domain"
	"github.com/jhoicas/menu-api/pkg/logger"
)

func TestRespondError_Conflictos(t *testing.T) {
	cases := []struct {
		name string
		err  error
		msg  string
	}{
		{"registro", domain.ErrNameTaken, auth.MsgNameTaken},
		{"registro envuelto", fmt.Errorf("register: %w", domain.ErrNameTaken), auth.MsgNameTaken},
		{"categoría", domain.ErrDuplicate, "El recurso ya existe."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error { return respondError(c, logger.Nop(), tc.err) })

			resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

			var body dto.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, "CONFLICT", body.Code)
			assert.Equal(t, tc.msg, body.Message)
		})
	}
}
