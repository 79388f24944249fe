package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	authutils "hr-onboarding-board/lib/utils/auth-utils"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newApp(secret string) *fiber.App {
	app := fiber.New()
	app.Use(AuthorizationRequired(secret))
	app.Get("/onboarding", func(c *fiber.Ctx) error {
		sub, _ := authutils.GetClaims(c)["sub"].(string)
		return c.SendString(sub)
	})
	return app
}

func TestAuthorizationRequired(t *testing.T) {
	t.Run(`disabled without secret`, func(t *testing.T) {
		resp, err := newApp("").Test(httptest.NewRequest(http.MethodGet, "/onboarding", nil))
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run(`missing token`, func(t *testing.T) {
		resp, err := newApp("secret").Test(httptest.NewRequest(http.MethodGet, "/onboarding", nil))
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run(`wrong signature`, func(t *testing.T) {
		token, err := authutils.GetServiceToken("other", 60)
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, "/onboarding", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := newApp("secret").Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run(`service token accepted`, func(t *testing.T) {
		token, err := authutils.GetServiceToken("secret", 60)
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, "/onboarding", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := newApp("secret").Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
	})
}
