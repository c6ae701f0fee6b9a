package apiv1

import (
	"context"
	"question-extractor/controllers"
	"question-extractor/lib/extraction"
	pdfexport "question-extractor/lib/export/pdf"
	xlsexport "question-extractor/lib/export/xls"
	aichecker "question-extractor/lib/utils/ai-checker"
	apimodels "question-extractor/models/api"
	extractionapimodels "question-extractor/models/api/extraction"

	"github.com/gofiber/fiber/v2"
)

const (
	exportFormatXlsx = "xlsx"
	exportFormatPdf  = "pdf"
)

type extractApiController struct {
	controllers.BaseAPIController
}

// InitRootRouters маршруты без версии API
func InitRootRouters(app fiber.Router) {
	controller := extractApiController{}
	app.Post("extract", controller.Extract)
	app.Get("health", controller.Health)
}

func InitExtractApiRouters(app fiber.Router) {
	controller := extractApiController{}
	app.Route("extract", func(extractRoute fiber.Router) {
		extractRoute.Post("", controller.Extract)
		extractRoute.Post("export", controller.Export)
		extractRoute.Post("prompt", controller.Prompt)
	})
}

// @Summary Выделение вопросов из текста
// @Tags Extraction
// @Description Текст после OCR отправляется в LLM, в ответе extracted_data с ответом модели либо error + details
// @Param	body				body		extractionapimodels.ExtractionRequest	true	"request body"
// @Success 200 {object} extractionapimodels.ExtractionResponse
// @Failure 400 {object} apimodels.Response
// @router /extract [post]
// @router /api/v1/extract [post]
func (c *extractApiController) Extract(ctx *fiber.Ctx) error {
	payload, err := c.parseRequest(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp := extraction.Instance.Extract(c.GetContext(ctx), payload.GetRawText())
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// @Summary Выгрузка вопросов в файл
// @Tags Extraction
// @Description Выделение вопросов из текста и выгрузка результата в xlsx или pdf
// @Param	format				query		string	false	"Формат файла (xlsx, pdf)"
// @Param	body				body		extractionapimodels.ExtractionRequest	true	"request body"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 422 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/extract/export [post]
func (c *extractApiController) Export(ctx *fiber.Ctx) error {
	format := ctx.Query("format", exportFormatXlsx)
	if format != exportFormatXlsx && format != exportFormatPdf {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("unsupported export format, expected xlsx or pdf"))
	}
	payload, err := c.parseRequest(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp := extraction.Instance.Extract(c.GetContext(ctx), payload.GetRawText())
	if !resp.IsSuccess() {
		return ctx.Status(fiber.StatusOK).JSON(resp)
	}
	items, err := resp.Items()
	if err != nil {
		c.GetLogger(ctx).WithError(err).Warn("ответ модели не соответствует списку вопросов")
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(apimodels.NewError(err.Error()))
	}

	if format == exportFormatPdf {
		data, err := pdfexport.Instance.ExportQuestionList(items)
		if err != nil {
			return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки вопросов в pdf")
		}
		ctx.Set(fiber.HeaderContentType, "application/pdf")
		ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="questions.pdf"`)
		return ctx.Send(data)
	}
	data, err := xlsexport.Instance.ExportQuestionList(items)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки вопросов в Excel")
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="questions.xlsx"`)
	return ctx.SendStream(data)
}

// @Summary Промпт для модели
// @Tags Extraction
// @Description Промпт, который будет отправлен модели для переданного текста. Модель не вызывается
// @Param	body				body		extractionapimodels.ExtractionRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=extractionapimodels.PromptResponse}
// @Failure 400 {object} apimodels.Response
// @router /api/v1/extract/prompt [post]
func (c *extractApiController) Prompt(ctx *fiber.Ctx) error {
	payload, err := c.parseRequest(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(extractionapimodels.PromptResponse{
		Prompt: extraction.BuildExtractionPrompt(payload.GetRawText()),
	}))
}

// @Summary Состояние сервиса
// @Tags Health
// @Description Проверка доступности сервиса и ИИ
// @Success 200 {object} apimodels.Response{data=apimodels.HealthResponse}
// @router /health [get]
func (c *extractApiController) Health(ctx *fiber.Ctx) error {
	available, err := aichecker.Instance.IsTextAiAvailable(context.Background())
	if err != nil {
		c.GetLogger(ctx).WithError(err).Warn("ИИ недоступен")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(apimodels.HealthResponse{
		App:         "ok",
		AiAvailable: available,
		Provider:    aichecker.Instance.ProviderName(),
		Model:       aichecker.Instance.Model(),
	}))
}

func (c *extractApiController) parseRequest(ctx *fiber.Ctx) (extractionapimodels.ExtractionRequest, error) {
	var payload extractionapimodels.ExtractionRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return payload, err
	}
	if err := payload.Validate(); err != nil {
		return payload, err
	}
	return payload, nil
}
