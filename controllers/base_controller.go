package controllers

import (
	"context"
	"question-extractor/lib/utils/helpers"
	apimodels "question-extractor/models/api"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		c.GetLogger(ctx).WithError(err).Error("ошибка распознавания запроса")
		return errors.New("unable to parse request body")
	}
	return nil
}

func (c *BaseAPIController) GetRequestID(ctx *fiber.Ctx) string {
	return ctx.GetRespHeader(fiber.HeaderXRequestID)
}

// GetContext контекст для вызова сервисов, запрос клиента не отменяет начатую обработку
func (c *BaseAPIController) GetContext(ctx *fiber.Ctx) context.Context {
	return helpers.GetContextWithRequestID(context.Background(), c.GetRequestID(ctx))
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	logger := log.
		WithField("method", ctx.Method()).
		WithField("path", ctx.Path())
	if requestID := c.GetRequestID(ctx); requestID != "" {
		logger = logger.WithField("request_id", requestID)
	}
	return logger
}

func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, message string) error {
	logger.WithError(err).Error(message)
	return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(message))
}
