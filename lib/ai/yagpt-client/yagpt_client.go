package yagptclient

import (
	"context"
	"fmt"
	"question-extractor/lib/ai/llm"

	"github.com/pkg/errors"
	yandexgptclient "github.com/sheeiavellie/go-yandexgpt"
)

const maxTokens = 2000

type impl struct {
	client    *yandexgptclient.YandexGPTClient
	catalogID string
}

// NewClient клиент YandexGPT, авторизация по api key, если он задан, иначе по IAM токену
func NewClient(iamToken, apiKey, catalogID string) (llm.Provider, error) {
	if catalogID == "" {
		return nil, errors.New("YandexGPT catalog id is not set")
	}
	if apiKey != "" {
		return impl{
			client:    yandexgptclient.NewYandexGPTClientWithAPIKey(apiKey),
			catalogID: catalogID,
		}, nil
	}
	if iamToken == "" {
		return nil, errors.New("YandexGPT IAM token or api key is not set")
	}
	return impl{
		client:    yandexgptclient.NewYandexGPTClientWithIAMToken(iamToken),
		catalogID: catalogID,
	}, nil
}

// Chat YandexGPT не поддерживает формат ответа json, поэтому от ответа отрезаются рассуждения и обрамление разметки
func (i impl) Chat(ctx context.Context, req llm.ChatRequest) (string, error) {
	request := yandexgptclient.YandexGPTRequest{
		ModelURI: modelURI(i.catalogID, req.Model),
		CompletionOptions: yandexgptclient.YandexGPTCompletionOptions{
			Stream:      false,
			Temperature: float32(req.Temperature),
			MaxTokens:   maxTokens,
		},
		Messages: make([]yandexgptclient.YandexGPTMessage, 0, len(req.Messages)),
	}
	for _, msg := range req.Messages {
		request.Messages = append(request.Messages, toMessage(msg))
	}

	response, err := i.client.CreateRequest(ctx, request)
	if err != nil {
		return "", errors.Wrap(err, "YandexGPT API request failed")
	}
	if len(response.Result.Alternatives) == 0 {
		return "", errors.New("YandexGPT API returned no alternatives")
	}
	answer := response.Result.Alternatives[0].Message.Text
	if req.Format == llm.FormatJSON {
		answer = llm.ExtractAnswer(answer)
	}
	return answer, nil
}

func modelURI(catalogID, model string) string {
	switch model {
	case "", yandexgptclient.YandexGPTModelLite.String():
		return yandexgptclient.MakeModelURI(catalogID, yandexgptclient.YandexGPTModelLite)
	case yandexgptclient.YandexGPTModel.String():
		return yandexgptclient.MakeModelURI(catalogID, yandexgptclient.YandexGPTModel)
	default:
		return fmt.Sprintf("gpt://%s/%s", catalogID, model)
	}
}

func toMessage(msg llm.Message) yandexgptclient.YandexGPTMessage {
	result := yandexgptclient.YandexGPTMessage{
		Role: yandexgptclient.YandexGPTMessageRoleUser,
		Text: msg.Content,
	}
	switch msg.Role {
	case llm.RoleSystem:
		result.Role = yandexgptclient.YandexGPTMessageRoleSystem
	case llm.RoleAssistant:
		result.Role = yandexgptclient.YandexGPTMessageRoleAssistant
	}
	return result
}
