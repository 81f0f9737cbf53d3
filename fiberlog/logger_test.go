package fiberlog

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func newTestApp(cfg Config) (*fiber.App, *test.Hook) {
	logger, hook := test.NewNullLogger()
	cfg.Logger = logger
	app := fiber.New()
	app.Use(New(cfg))
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})
	return app, hook
}

func TestNew(t *testing.T) {
	t.Run(`запись содержит поля из списка тегов`, func(t *testing.T) {
		app, hook := newTestApp(Config{Tags: []string{TagStatus, TagMethod, TagPath}})

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/ping", nil))
		require.Nil(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		entry := hook.LastEntry()
		require.NotNil(t, entry)
		require.Equal(t, logrus.InfoLevel, entry.Level)
		require.Equal(t, fiber.StatusOK, entry.Data[TagStatus])
		require.Equal(t, fiber.MethodGet, entry.Data[TagMethod])
		require.Equal(t, "/ping", entry.Data[TagPath])
	})

	t.Run(`ответ с ошибкой логируется как warn`, func(t *testing.T) {
		app, hook := newTestApp(Config{Tags: []string{TagStatus}})

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/missing", nil))
		require.Nil(t, err)
		require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

		entry := hook.LastEntry()
		require.NotNil(t, entry)
		require.Equal(t, logrus.WarnLevel, entry.Level)
	})

	t.Run(`preflight не логируется`, func(t *testing.T) {
		app, hook := newTestApp(Config{Tags: []string{TagStatus}})

		_, err := app.Test(httptest.NewRequest(fiber.MethodOptions, "/ping", nil))
		require.Nil(t, err)
		require.Nil(t, hook.LastEntry())
	})
}
