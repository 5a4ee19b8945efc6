package handlers_fiber

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"crud-tutorials/internal/entities"
	"crud-tutorials/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{
			name:    "invalid",
			err:     fmt.Errorf("%w: malformed email", entities.ErrInvalidArgument),
			status:  http.StatusBadRequest,
			message: "malformed email",
		},
		{
			name:    "not_found",
			err:     entities.ErrContactNotFound,
			status:  http.StatusNotFound,
			message: "User not found",
		},
		{
			name:    "duplicate",
			err:     entities.ErrContactExists,
			status:  http.StatusBadRequest,
			message: "A contact with this email already exists",
		},
		{
			name:    "internal",
			err:     fmt.Errorf("disk full"),
			status:  http.StatusInternalServerError,
			message: "internal error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return writeError(c, tt.err)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			require.Equal(t, tt.status, resp.StatusCode)

			var body dto.Message
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			require.Equal(t, tt.message, body.Message)
		})
	}
}

func TestReason(t *testing.T) {
	require.Equal(t, "title is required", reason(fmt.Errorf("%w: title is required", entities.ErrInvalidArgument)))
	require.Equal(t, "other", reason(fmt.Errorf("other")))
}

func TestWithErrorSkipsEmptyMessage(t *testing.T) {
	require.NotContains(t, withError(map[string]any{}, ""), "error")
	require.Equal(t, "bad", withError(map[string]any{}, "bad")["error"])
}
