package controllers

import (
	"bytes"
	"fmt"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"hr-onboarding-board/fiberlog"
	apimodels "hr-onboarding-board/models/api"
)

type BaseAPIController struct{}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	return log.
		WithField("request_id", ctx.GetRespHeader(fiberlog.RequestIDHeader)).
		WithField("path", ctx.Path())
}

// SendError пишет ошибку в лог, клиенту отдает только message
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, message string) error {
	logger.WithError(err).Error(message)
	return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(message))
}

func (c *BaseAPIController) SendFile(ctx *fiber.Ctx, fileName, contentType string, body []byte) error {
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", fileName))
	ctx.Set(fiber.HeaderContentType, contentType)
	return ctx.Status(fiber.StatusOK).SendStream(bytes.NewReader(body), len(body))
}
