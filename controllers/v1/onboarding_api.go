package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"hr-onboarding-board/controllers"
	filestorage "hr-onboarding-board/lib/file-storage"
	onboardinghandler "hr-onboarding-board/lib/onboarding"
	apimodels "hr-onboarding-board/models/api"
)

type onboardingApiController struct {
	controllers.BaseAPIController
}

func InitOnboardingApiRouters(app *fiber.App) {
	controller := onboardingApiController{}
	app.Route("onboarding", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Get("export/xls", controller.exportXls)
		router.Get("export/pdf", controller.exportPdf)
		router.Post("export/archive", controller.exportArchive)
	})
}

// @Summary Список онбордингов
// @Tags Онбординг
// @Description Список онбордингов с кандидатами
// @Param   Authorization		header		string	false	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]onboardingapimodels.OnboardingView}
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/onboarding [get]
func (c *onboardingApiController) list(ctx *fiber.Ctx) error {
	list, err := onboardinghandler.Instance.ListOnboarding(ctx.UserContext())
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка онбордингов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Выгрузка в xlsx
// @Tags Онбординг
// @Description Выгрузка карточек онбординга в xlsx
// @Param   Authorization		header		string	false	"Authorization token"
// @Success 200 {file} file
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/onboarding/export/xls [get]
func (c *onboardingApiController) exportXls(ctx *fiber.Ctx) error {
	buf, err := onboardinghandler.Instance.ExportXls(ctx.UserContext())
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки онбордингов в xlsx")
	}
	return c.SendFile(ctx, onboardinghandler.ExportFileName("xlsx"), onboardinghandler.XlsContentType, buf.Bytes())
}

// @Summary Выгрузка в pdf
// @Tags Онбординг
// @Description Выгрузка карточек онбординга в pdf
// @Param   Authorization		header		string	false	"Authorization token"
// @Success 200 {file} file
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/onboarding/export/pdf [get]
func (c *onboardingApiController) exportPdf(ctx *fiber.Ctx) error {
	file, err := onboardinghandler.Instance.ExportPdf(ctx.UserContext())
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки онбордингов в pdf")
	}
	return c.SendFile(ctx, onboardinghandler.ExportFileName("pdf"), "application/pdf", file)
}

// @Summary Архивирование выгрузки
// @Tags Онбординг
// @Description Сохраняет xlsx выгрузку в хранилище и возвращает временную ссылку
// @Param   Authorization		header		string	false	"Authorization token"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @Failure 503 {object} apimodels.Response
// @router /api/v1/onboarding/export/archive [post]
func (c *onboardingApiController) exportArchive(ctx *fiber.Ctx) error {
	link, err := onboardinghandler.Instance.ArchiveXls(ctx.UserContext())
	if err != nil {
		if errors.Is(err, filestorage.ErrNotConfigured) {
			return ctx.Status(fiber.StatusServiceUnavailable).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка архивирования выгрузки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(link))
}
