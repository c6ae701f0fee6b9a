package aichecker

import (
	"context"
	"net"
	"question-extractor/lib/ai/llm"
	initchecker "question-extractor/lib/utils/init-checker"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// checkTimeout если ИИ занят, проверка оборвется по таймауту и вернет false
var checkTimeout = 15 * time.Second

type Provider interface {
	IsTextAiAvailable(ctx context.Context) (bool, error)
	ProviderName() string
	Model() string
}

var Instance Provider

func NewHandler(client llm.Provider, providerName, model string) {
	initchecker.CheckInit("llm client", client)
	Instance = impl{
		client:       client,
		providerName: providerName,
		model:        model,
	}
}

type impl struct {
	client       llm.Provider
	providerName string
	model        string
}

// IsTextAiAvailable проверяет доступность текстового AI
// Запускает пустой промт, ошибка соединения или таймаут - ИИ недоступен
func (i impl) IsTextAiAvailable(ctx context.Context) (bool, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	now := time.Now()
	_, err := i.client.Chat(timeoutCtx, llm.NewUserRequest(i.model, " "))
	if err != nil {
		if isTimeout(err) {
			log.
				WithField("ai", i.providerName).
				WithField("model", i.model).
				Warn("ИИ не ответил за отведенное время")
			return false, nil
		}
		return false, err
	}
	log.
		WithField("ai", i.providerName).
		WithField("model", i.model).
		WithField("answer_duration_sec", time.Since(now).Seconds()).
		Debug("ИИ доступен")
	return true, nil
}

func (i impl) ProviderName() string {
	return i.providerName
}

func (i impl) Model() string {
	return i.model
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
