package controllers

import (
	"bytes"
	"github.com/gofiber/fiber/v2"
	"hr-onboarding-board/lib/board"
)

type boardPageController struct {
	BaseAPIController
}

func InitBoardPageRouters(router fiber.Router) {
	controller := boardPageController{}
	router.Get("", controller.page)
}

func (c *boardPageController) page(ctx *fiber.Ctx) error {
	page := board.Instance.Show(ctx.UserContext())
	buf := bytes.Buffer{}
	if err := board.RenderHTML(&buf, page); err != nil {
		c.GetLogger(ctx).WithError(err).Error("ошибка отрисовки доски")
		return ctx.Status(fiber.StatusInternalServerError).SendString(board.LoadErrorMessage)
	}
	ctx.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}
