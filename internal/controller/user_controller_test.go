package controller

import (
	"context"
	"net/http"
	"testing"

	"notehub-be/internal/entity"
	"notehub-be/internal/pkg/apperror"
	"notehub-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

type stubUserService struct {
	settings map[string]datatypes.JSON
}

func (s *stubUserService) GetSettings(ctx context.Context, user *entity.User) (datatypes.JSON, error) {
	if user == nil {
		return nil, apperror.NewUnauthenticated("Cannot access settings, you are unauthenticated")
	}
	if doc, ok := s.settings[user.Id]; ok {
		return doc, nil
	}
	return datatypes.JSON(`{}`), nil
}

func (s *stubUserService) UpdateSettings(ctx context.Context, user *entity.User, settings datatypes.JSON) (datatypes.JSON, error) {
	if user == nil {
		return nil, apperror.NewUnauthenticated("Cannot update settings, you are unauthenticated")
	}
	s.settings[user.Id] = settings
	return settings, nil
}

func newSettingsApp(svc *stubUserService) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware(nopLogger{}))
	app.Use(serverutils.SessionMiddleware(testSecret))
	api := app.Group("/api")
	NewUserController(svc).RegisterRoutes(api)
	return app
}

func TestSettingsRoutesRequireSession(t *testing.T) {
	app := newSettingsApp(&stubUserService{settings: map[string]datatypes.JSON{}})

	status, body := doRequest(t, app, http.MethodGet, "/api/user/settings", "", "")
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Contains(t, body["message"], "unauthenticated")

	status, body = doRequest(t, app, http.MethodPut, "/api/user/settings", "", `{"a":1}`)
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Contains(t, body["message"], "unauthenticated")
}

func TestSettingsRoundTrip(t *testing.T) {
	app := newSettingsApp(&stubUserService{settings: map[string]datatypes.JSON{}})
	token := sessionToken(t, "u1", "Ada")

	status, body := doRequest(t, app, http.MethodPut, "/api/user/settings", token, `{"a":1}`)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Updated settings for Ada", body["message"])
	assert.Equal(t, map[string]interface{}{"a": float64(1)}, body["data"])

	// Get returns exactly what was put, no merge.
	status, body = doRequest(t, app, http.MethodGet, "/api/user/settings", token, "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, map[string]interface{}{"a": float64(1)}, body["data"])
}

func TestSettingsRejectsNonObject(t *testing.T) {
	app := newSettingsApp(&stubUserService{settings: map[string]datatypes.JSON{}})
	token := sessionToken(t, "u1", "Ada")

	for _, body := range []string{`[1,2]`, `"text"`, `42`, `null`, `not json`} {
		status, decoded := doRequest(t, app, http.MethodPut, "/api/user/settings", token, body)
		assert.Equal(t, fiber.StatusBadRequest, status, "body %q", body)
		assert.Equal(t, "Settings must be a JSON object", decoded["message"])
	}
}
