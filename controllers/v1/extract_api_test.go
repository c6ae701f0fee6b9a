package apiv1

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"question-extractor/lib/extraction"
	pdfexport "question-extractor/lib/export/pdf"
	xlsexport "question-extractor/lib/export/xls"
	aichecker "question-extractor/lib/utils/ai-checker"
	"question-extractor/lib/utils/helpers"
	apimodels "question-extractor/models/api"
	extractionapimodels "question-extractor/models/api/extraction"
	"strings"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type stubExtraction struct {
	mu        sync.Mutex
	resp      extractionapimodels.ExtractionResponse
	texts     []string
	requestID string
}

func (s *stubExtraction) Extract(ctx context.Context, rawText string) extractionapimodels.ExtractionResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.texts = append(s.texts, rawText)
	s.requestID = helpers.GetRequestID(ctx)
	return s.resp
}

type stubChecker struct {
	available bool
	err       error
}

func (s stubChecker) IsTextAiAvailable(_ context.Context) (bool, error) {
	return s.available, s.err
}

func (s stubChecker) ProviderName() string {
	return "ollama"
}

func (s stubChecker) Model() string {
	return "llama3.1:latest"
}

type stubPdf struct {
	err error
}

func (s stubPdf) ExportQuestionList(_ []extractionapimodels.ExtractedItem) ([]byte, error) {
	return []byte("%PDF-1.3"), s.err
}

func newTestApp() *fiber.App {
	app := fiber.New()
	app.Use(requestid.New())
	InitRootRouters(app)
	apiV1 := fiber.New()
	app.Mount("/api/v1", apiV1)
	InitExtractApiRouters(apiV1)
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, target, body string) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

const successData = `[{"sn":"512","question":"What is 2+2?","options":"(A) 3 (B) 4"}]`

func TestExtract(t *testing.T) {
	app := newTestApp()

	t.Run(`success check`, func(t *testing.T) {
		stub := &stubExtraction{resp: extractionapimodels.NewExtractionResponse(json.RawMessage(successData))}
		extraction.Instance = stub
		for _, target := range []string{"/extract", "/api/v1/extract"} {
			resp, body := doRequest(t, app, fiber.MethodPost, target, `{"raw_text":"512. What is 2+2? (A) 3 (B) 4"}`)
			require.Equal(t, fiber.StatusOK, resp.StatusCode)
			require.JSONEq(t, `{"extracted_data":`+successData+`}`, string(body))
		}
		require.Equal(t, []string{"512. What is 2+2? (A) 3 (B) 4", "512. What is 2+2? (A) 3 (B) 4"}, stub.texts)
		require.NotEmpty(t, stub.requestID)
	})

	t.Run(`extraction error check`, func(t *testing.T) {
		extraction.Instance = &stubExtraction{resp: extractionapimodels.NewExtractionError("connection refused")}
		resp, body := doRequest(t, app, fiber.MethodPost, "/extract", `{"raw_text":"text"}`)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.JSONEq(t, `{"error":"LLM extraction failed.","details":"connection refused"}`, string(body))
	})

	t.Run(`empty text check`, func(t *testing.T) {
		stub := &stubExtraction{resp: extractionapimodels.NewExtractionResponse(json.RawMessage(`[]`))}
		extraction.Instance = stub
		resp, body := doRequest(t, app, fiber.MethodPost, "/extract", `{"raw_text":""}`)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.JSONEq(t, `{"extracted_data":[]}`, string(body))
		require.Equal(t, []string{""}, stub.texts)
	})

	t.Run(`bad request check`, func(t *testing.T) {
		stub := &stubExtraction{}
		extraction.Instance = stub
		for _, body := range []string{`{}`, `{"raw_text":512}`, `not json`} {
			resp, data := doRequest(t, app, fiber.MethodPost, "/extract", body)
			require.Equal(t, fiber.StatusBadRequest, resp.StatusCode, body)
			var result apimodels.Response
			require.NoError(t, json.Unmarshal(data, &result))
			require.Equal(t, "fail", result.Status)
			require.NotEmpty(t, result.Message)
		}
		require.Empty(t, stub.texts)
	})
}

func TestExport(t *testing.T) {
	app := newTestApp()
	xlsexport.NewHandler()

	t.Run(`xlsx export check`, func(t *testing.T) {
		extraction.Instance = &stubExtraction{resp: extractionapimodels.NewExtractionResponse(json.RawMessage(successData))}
		resp, body := doRequest(t, app, fiber.MethodPost, "/api/v1/extract/export", `{"raw_text":"text"}`)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "questions.xlsx")

		f, err := excelize.OpenReader(strings.NewReader(string(body)))
		require.NoError(t, err)
		defer f.Close()
		rows, err := f.GetRows("Questions")
		require.NoError(t, err)
		require.Len(t, rows, 2)
		require.Equal(t, []string{"512", "What is 2+2?", "(A) 3 (B) 4"}, rows[1])
	})

	t.Run(`pdf export check`, func(t *testing.T) {
		pdfexport.Instance = stubPdf{}
		extraction.Instance = &stubExtraction{resp: extractionapimodels.NewExtractionResponse(json.RawMessage(successData))}
		resp, body := doRequest(t, app, fiber.MethodPost, "/api/v1/extract/export?format=pdf", `{"raw_text":"text"}`)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
		require.Equal(t, "%PDF-1.3", string(body))
	})

	t.Run(`pdf export error check`, func(t *testing.T) {
		pdfexport.Instance = stubPdf{err: errors.New("font not found")}
		extraction.Instance = &stubExtraction{resp: extractionapimodels.NewExtractionResponse(json.RawMessage(successData))}
		resp, _ := doRequest(t, app, fiber.MethodPost, "/api/v1/extract/export?format=pdf", `{"raw_text":"text"}`)
		require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	})

	t.Run(`extraction error check`, func(t *testing.T) {
		extraction.Instance = &stubExtraction{resp: extractionapimodels.NewExtractionError("not json")}
		resp, body := doRequest(t, app, fiber.MethodPost, "/api/v1/extract/export", `{"raw_text":"text"}`)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.JSONEq(t, `{"error":"LLM extraction failed.","details":"not json"}`, string(body))
	})

	t.Run(`non conforming output check`, func(t *testing.T) {
		extraction.Instance = &stubExtraction{resp: extractionapimodels.NewExtractionResponse(json.RawMessage(`{"questions":[]}`))}
		resp, _ := doRequest(t, app, fiber.MethodPost, "/api/v1/extract/export", `{"raw_text":"text"}`)
		require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	})

	t.Run(`unknown format check`, func(t *testing.T) {
		stub := &stubExtraction{}
		extraction.Instance = stub
		resp, _ := doRequest(t, app, fiber.MethodPost, "/api/v1/extract/export?format=docx", `{"raw_text":"text"}`)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		require.Empty(t, stub.texts)
	})
}

func TestPrompt(t *testing.T) {
	app := newTestApp()
	stub := &stubExtraction{}
	extraction.Instance = stub

	resp, body := doRequest(t, app, fiber.MethodPost, "/api/v1/extract/prompt", `{"raw_text":"512. question"}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result struct {
		Data extractionapimodels.PromptResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &result))
	require.Contains(t, string(body), `"status":"success"`)
	require.Equal(t, extraction.BuildExtractionPrompt("512. question"), result.Data.Prompt)
	require.Empty(t, stub.texts)
}

func TestHealth(t *testing.T) {
	app := newTestApp()

	t.Run(`ai available check`, func(t *testing.T) {
		aichecker.Instance = stubChecker{available: true}
		resp, body := doRequest(t, app, fiber.MethodGet, "/health", "")
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.JSONEq(t, `{"status":"success","data":{"app":"ok","ai_available":true,"provider":"ollama","model":"llama3.1:latest"}}`, string(body))
	})

	t.Run(`ai unavailable check`, func(t *testing.T) {
		aichecker.Instance = stubChecker{err: errors.New("connection refused")}
		resp, body := doRequest(t, app, fiber.MethodGet, "/health", "")
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.JSONEq(t, `{"status":"success","data":{"app":"ok","ai_available":false,"provider":"ollama","model":"llama3.1:latest"}}`, string(body))
	})
}
