package fiberlog

import (
	"question-extractor/lib/utils/helpers"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	TagPid           = "pid"
	TagLatency       = "latency"
	TagStatus        = "status"
	TagMethod        = "method"
	TagPath          = "path"
	TagURL           = "url"
	TagIP            = "ip"
	TagBody          = "body"
	TagResBody       = "resBody"
	TagBytesReceived = "bytesReceived"
	TagBytesSent     = "bytesSent"
	RequestID        = "request_id"
)

// data значения, собранные за время обработки одного запроса
type data struct {
	pid   int
	start time.Time
	end   time.Time
}

// FuncTag возвращает значение тега для запроса
type FuncTag func(c *fiber.Ctx, d *data) interface{}

func getFuncTagMap(cfg Config) map[string]FuncTag {
	all := map[string]FuncTag{
		TagPid: func(_ *fiber.Ctx, d *data) interface{} {
			return d.pid
		},
		TagLatency: func(_ *fiber.Ctx, d *data) interface{} {
			return d.end.Sub(d.start).String()
		},
		TagStatus: func(c *fiber.Ctx, _ *data) interface{} {
			return c.Response().StatusCode()
		},
		TagMethod: func(c *fiber.Ctx, _ *data) interface{} {
			return c.Method()
		},
		TagPath: func(c *fiber.Ctx, _ *data) interface{} {
			return c.Path()
		},
		TagURL: func(c *fiber.Ctx, _ *data) interface{} {
			return c.OriginalURL()
		},
		TagIP: func(c *fiber.Ctx, _ *data) interface{} {
			return c.IP()
		},
		TagBody: func(c *fiber.Ctx, _ *data) interface{} {
			return helpers.Truncate(string(c.Body()), cfg.BodyLimit)
		},
		TagResBody: func(c *fiber.Ctx, _ *data) interface{} {
			// файлы выгрузки в лог не пишем
			if !strings.HasPrefix(string(c.Response().Header.ContentType()), fiber.MIMEApplicationJSON) {
				return ""
			}
			return helpers.Truncate(string(c.Response().Body()), cfg.BodyLimit)
		},
		TagBytesReceived: func(c *fiber.Ctx, _ *data) interface{} {
			return len(c.Request().Body())
		},
		TagBytesSent: func(c *fiber.Ctx, _ *data) interface{} {
			return len(c.Response().Body())
		},
		RequestID: func(c *fiber.Ctx, _ *data) interface{} {
			return c.GetRespHeader(fiber.HeaderXRequestID)
		},
	}
	ftm := make(map[string]FuncTag, len(cfg.Tags))
	for _, tag := range cfg.Tags {
		if ft, ok := all[tag]; ok {
			ftm[tag] = ft
		}
	}
	return ftm
}
