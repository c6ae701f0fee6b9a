package extractionapimodels

import (
	"encoding/json"

	"github.com/pkg/errors"
)

const ErrExtractionFailed = "LLM extraction failed."

type ExtractionRequest struct {
	RawText *string `json:"raw_text"` // текст, полученный после OCR
}

func (r ExtractionRequest) Validate() error {
	if r.RawText == nil {
		return errors.New("field raw_text is required")
	}
	return nil
}

func (r ExtractionRequest) GetRawText() string {
	if r.RawText == nil {
		return ""
	}
	return *r.RawText
}

// ExtractedItem вопрос с вариантами ответа в том виде, в котором его вернула модель
type ExtractedItem struct {
	Sn       string `json:"sn"`       // номер вопроса из исходного текста
	Question string `json:"question"` // текст вопроса
	Options  string `json:"options"`  // варианты ответа одной строкой
}

// ExtractionResponse либо extracted_data, либо error + details
type ExtractionResponse struct {
	ExtractedData json.RawMessage `json:"extracted_data,omitempty" swaggertype:"array,object"`
	Error         string          `json:"error,omitempty"`
	Details       string          `json:"details,omitempty"`
}

func NewExtractionResponse(data json.RawMessage) ExtractionResponse {
	return ExtractionResponse{
		ExtractedData: data,
	}
}

func NewExtractionError(details string) ExtractionResponse {
	return ExtractionResponse{
		Error:   ErrExtractionFailed,
		Details: details,
	}
}

func (r ExtractionResponse) IsSuccess() bool {
	return r.Error == ""
}

// Items разбор ответа модели в список вопросов, ответ модели не обязан соответствовать схеме
func (r ExtractionResponse) Items() ([]ExtractedItem, error) {
	if !r.IsSuccess() {
		return nil, errors.New(r.Details)
	}
	items := []ExtractedItem{}
	if err := json.Unmarshal(r.ExtractedData, &items); err != nil {
		return nil, errors.Wrap(err, "LLM response is not a list of questions")
	}
	return items, nil
}

type PromptResponse struct {
	Prompt string `json:"prompt"` // промпт, который будет отправлен модели
}
