package serverutils

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"ai-legalaid-be/internal/pkg/apperror"
)

func appWithError(err error) *fiber.App {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware())
	app.Get("/boom", func(ctx *fiber.Ctx) error {
		return err
	})
	return app
}

func TestErrorHandlerStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"bad request", apperror.BadRequest("invalid payload"), fiber.StatusBadRequest},
		{"unauthorized", apperror.Unauthorized("invalid credentials"), fiber.StatusUnauthorized},
		{"forbidden", apperror.Forbidden("not yours"), fiber.StatusForbidden},
		{"not found", apperror.NotFound("chat session"), fiber.StatusNotFound},
		{"conflict", apperror.Conflict("duplicate"), fiber.StatusConflict},
		{"session busy", apperror.SessionBusy("in flight"), fiber.StatusConflict},
		{"session archived", apperror.SessionArchived("archived"), fiber.StatusConflict},
		{"not ready", apperror.NotReady("corpus loading"), fiber.StatusServiceUnavailable},
		{"storage unavailable", apperror.StorageUnavailable(assert.AnError), fiber.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := appWithError(tt.err)

			resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			var body map[string]interface{}
			assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, false, body["success"])
			assert.Equal(t, float64(tt.wantStatus), body["code"])
		})
	}
}

func TestErrorHandlerHidesInternalDetails(t *testing.T) {
	app := appWithError(assert.AnError)

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	var body map[string]interface{}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Internal server error", body["message"])
}

func TestErrorHandlerPassesSuccessThrough(t *testing.T) {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware())
	app.Get("/ok", func(ctx *fiber.Ctx) error {
		return ctx.JSON(SuccessResponse(fiber.StatusOK, "fine", nil))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/ok", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
