package fiberlog

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLoggerMiddleware(t *testing.T) {
	t.Run(`request fields logged`, func(t *testing.T) {
		logger, hook := test.NewNullLogger()
		app := fiber.New()
		app.Use(New(Config{
			Logger: logger,
			Tags:   []string{TagMethod, TagPath, TagStatus, TagResBody, RequestID},
		}))
		app.Get("/onboarding", func(c *fiber.Ctx) error {
			c.Set(RequestIDHeader, "req-1")
			return c.JSON(fiber.Map{"status": "success"})
		})

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/onboarding", nil))
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		entry := hook.LastEntry()
		require.NotNil(t, entry)
		require.Equal(t, logrus.InfoLevel, entry.Level)
		require.Equal(t, "GET", entry.Data[TagMethod])
		require.Equal(t, "/onboarding", entry.Data[TagPath])
		require.Equal(t, http.StatusOK, entry.Data[TagStatus])
		require.Equal(t, "req-1", entry.Data[RequestID])
		require.Equal(t, `{"status":"success"}`, entry.Data[TagResBody])
	})

	t.Run(`error status logged as warning`, func(t *testing.T) {
		logger, hook := test.NewNullLogger()
		app := fiber.New()
		app.Use(New(Config{Logger: logger, Tags: []string{TagStatus}}))
		app.Get("/fail", func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusInternalServerError).SendString("fail")
		})

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/fail", nil))
		require.NoError(t, err)
		defer resp.Body.Close()

		entry := hook.LastEntry()
		require.NotNil(t, entry)
		require.Equal(t, logrus.WarnLevel, entry.Level)
		require.Equal(t, http.StatusInternalServerError, entry.Data[TagStatus])
	})
}
