package controllers

import (
	"github.com/gofiber/fiber/v2"
	"hr-onboarding-board/db"
	apimodels "hr-onboarding-board/models/api"
)

type healthController struct {
	BaseAPIController
}

func InitHealthRouters(router fiber.Router) {
	controller := healthController{}
	router.Get("health", controller.health)
}

// @Summary Проверка доступности сервиса
// @Tags Служебные
// @Produce  json
// @Success 200 {object} apimodels.Response
// @Failure 503 {object} apimodels.Response
// @router /health [get]
func (c *healthController) health(ctx *fiber.Ctx) error {
	if err := db.PingDB(); err != nil {
		c.GetLogger(ctx).WithError(err).Error("БД недоступна")
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(apimodels.NewError("БД недоступна"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse("ok"))
}
