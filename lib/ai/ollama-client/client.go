package ollamaclient

import (
	"context"
	"net/http"
	"net/url"
	"question-extractor/lib/ai/llm"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
)

type impl struct {
	ollamaURL string
	model     *ollama.LLM
}

// NewClient клиент Ollama (/api/chat). timeout == 0 - запрос ждет ответа сколько потребуется
func NewClient(ollamaURL string, timeout time.Duration) (llm.Provider, error) {
	if ollamaURL == "" {
		return nil, errors.New("ollama url is not set")
	}
	if _, err := url.ParseRequestURI(ollamaURL); err != nil {
		return nil, errors.Wrap(err, "invalid ollama url")
	}
	model, err := ollama.New(
		ollama.WithServerURL(ollamaURL),
		ollama.WithHTTPClient(&http.Client{Timeout: timeout}),
	)
	if err != nil {
		return nil, errors.Wrap(err, "unable to create ollama client")
	}
	return impl{
		ollamaURL: ollamaURL,
		model:     model,
	}, nil
}

func (i impl) getLogger(model string) *log.Entry {
	return log.
		WithField("ai", "ollama").
		WithField("url", i.ollamaURL).
		WithField("model", model)
}

func (i impl) Chat(ctx context.Context, req llm.ChatRequest) (string, error) {
	if req.Model == "" {
		return "", errors.New("ollama model is not set")
	}
	messages := make([]llms.MessageContent, 0, len(req.Messages))
	for _, msg := range req.Messages {
		messages = append(messages, llms.TextParts(messageType(msg.Role), msg.Content))
	}

	options := []llms.CallOption{
		llms.WithModel(req.Model),
		llms.WithTemperature(req.Temperature),
	}
	if req.Format == llm.FormatJSON {
		options = append(options, llms.WithJSONMode())
	}

	now := time.Now()
	resp, err := i.model.GenerateContent(ctx, messages, options...)
	if err != nil {
		return "", errors.Wrap(err, "ollama API request failed")
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("ollama API returned no choices")
	}
	i.getLogger(req.Model).
		WithField("answer_duration_sec", time.Since(now).Seconds()).
		Debug("получен ответ Ollama")
	return resp.Choices[0].Content, nil
}

func messageType(role string) llms.ChatMessageType {
	switch role {
	case llm.RoleSystem:
		return llms.ChatMessageTypeSystem
	case llm.RoleAssistant:
		return llms.ChatMessageTypeAI
	default:
		return llms.ChatMessageTypeHuman
	}
}
