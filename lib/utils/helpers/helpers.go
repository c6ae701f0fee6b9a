package helpers

import (
	"context"
	"unicode/utf8"
)

type ctxKey string

const requestIDKey ctxKey = "requestID"

func GetContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func GetRequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	requestID, _ := ctx.Value(requestIDKey).(string)
	return requestID
}

// Truncate обрезает строку до limit символов (не байт)
func Truncate(str string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(str) <= limit {
		return str
	}
	runes := []rune(str)
	return string(runes[:limit]) + "..."
}
