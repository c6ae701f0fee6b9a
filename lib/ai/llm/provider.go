package llm

import (
	"context"
	"strings"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"

	// FormatJSON просит модель вернуть только JSON документ
	FormatJSON = "json"
)

// Provider синхронный вызов сервиса инференса LLM
type Provider interface {
	Chat(ctx context.Context, req ChatRequest) (content string, err error)
}

type Message struct {
	Role    string
	Content string
}

type ChatRequest struct {
	Model       string
	Messages    []Message
	Format      string
	Temperature float64
}

func NewUserRequest(model, prompt string) ChatRequest {
	return ChatRequest{
		Model: model,
		Messages: []Message{
			{
				Role:    RoleUser,
				Content: prompt,
			},
		},
	}
}

// ExtractAnswer отрезает рассуждения модели (<think>...</think>) и обрамление ```json
func ExtractAnswer(response string) string {
	responseSlice := strings.Split(response, "</think>")
	answer := responseSlice[len(responseSlice)-1]
	return replaceAnswerFormatTag(answer)
}

func replaceAnswerFormatTag(answer string) string {
	answer = strings.Replace(answer, "```json", "", 1)
	answer = strings.Replace(answer, "```", "", 1)
	return strings.TrimSpace(answer)
}
