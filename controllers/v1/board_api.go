package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"hr-onboarding-board/controllers"
	"hr-onboarding-board/lib/board"
	apimodels "hr-onboarding-board/models/api"
)

type boardApiController struct {
	controllers.BaseAPIController
}

func InitBoardApiRouters(app *fiber.App) {
	controller := boardApiController{}
	app.Route("board", func(router fiber.Router) {
		router.Get("", controller.show)
	})
}

// @Summary Доска онбординга
// @Tags Онбординг
// @Description Состояние доски онбординга: loading, error, empty или ready с карточками
// @Param   Authorization		header		string	false	"Authorization token"
// @Success 200 {object} apimodels.Response{data=board.Page}
// @Failure 401 {object} apimodels.Response
// @router /api/v1/board [get]
func (c *boardApiController) show(ctx *fiber.Ctx) error {
	page := board.Instance.Show(ctx.UserContext())
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(page))
}
