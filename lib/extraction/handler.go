package extraction

import (
	"context"
	"encoding/json"
	"question-extractor/lib/ai/llm"
	"question-extractor/lib/utils/helpers"
	initchecker "question-extractor/lib/utils/init-checker"
	extractionapimodels "question-extractor/models/api/extraction"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// temperature без случайной выборки, одинаковый текст - одинаковый ответ
const temperature = 0.0

type Provider interface {
	Extract(ctx context.Context, rawText string) extractionapimodels.ExtractionResponse
}

var Instance Provider

func NewHandler(client llm.Provider, model string) {
	Instance = NewProvider(client, model)
}

func NewProvider(client llm.Provider, model string) Provider {
	initchecker.CheckInit("llm client", client)
	return impl{
		client: client,
		model:  model,
	}
}

type impl struct {
	client llm.Provider
	model  string
}

func (i impl) getLogger(ctx context.Context) *log.Entry {
	logger := log.
		WithField("ai", "extraction").
		WithField("model", i.model)
	if requestID := helpers.GetRequestID(ctx); requestID != "" {
		logger = logger.WithField("request_id", requestID)
	}
	return logger
}

// Extract ошибки вызова модели и разбора ответа не пробрасываются, а возвращаются в виде error + details
func (i impl) Extract(ctx context.Context, rawText string) (resp extractionapimodels.ExtractionResponse) {
	logger := i.getLogger(ctx)
	logger.
		WithField("text_len", len(rawText)).
		Info("получен текст, отправка в LLM для выделения вопросов")

	defer func() {
		if r := recover(); r != nil {
			err := errors.Errorf("panic during LLM call: %v", r)
			logger.WithError(err).Error("ошибка выделения вопросов через LLM")
			resp = extractionapimodels.NewExtractionError(err.Error())
		}
	}()

	now := time.Now()
	data, err := i.extract(ctx, rawText)
	if err != nil {
		logger.WithError(err).Error("ошибка выделения вопросов через LLM")
		return extractionapimodels.NewExtractionError(errorDetails(err))
	}

	logger = logger.WithField("answer_duration_sec", time.Since(now).Seconds())
	if count, ok := itemsCount(data); ok {
		logger.
			WithField("items_count", count).
			Infof("выделение вопросов через LLM выполнено, найдено %d", count)
	} else {
		logger.
			WithField("answer", helpers.Truncate(string(data), 200)).
			Warn("выделение вопросов через LLM выполнено, но ответ не является массивом")
	}
	return extractionapimodels.NewExtractionResponse(data)
}

func (i impl) extract(ctx context.Context, rawText string) (json.RawMessage, error) {
	req := llm.NewUserRequest(i.model, BuildExtractionPrompt(rawText))
	req.Format = llm.FormatJSON
	req.Temperature = temperature

	content, err := i.client.Chat(ctx, req)
	if err != nil {
		return nil, err
	}

	var data json.RawMessage
	if err = json.Unmarshal([]byte(content), &data); err != nil {
		return nil, errors.Wrapf(err, "LLM response is not valid JSON: %q", helpers.Truncate(content, 100))
	}
	return data, nil
}

func itemsCount(data json.RawMessage) (int, bool) {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return 0, false
	}
	return len(items), true
}

func errorDetails(err error) string {
	if details := err.Error(); details != "" {
		return details
	}
	return "unknown error"
}
