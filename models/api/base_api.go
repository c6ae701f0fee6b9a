package apimodels

type Response struct {
	Status  string      `json:"status"`            //результат обработки fail/success
	Message string      `json:"message,omitempty"` //сообщение ошибки
	Data    interface{} `json:"data,omitempty"`    //данные ответа
}

func NewError(message string) Response {
	return Response{
		Status:  "fail",
		Message: message,
	}
}

func NewResponse(data interface{}) Response {
	return Response{
		Status: "success",
		Data:   data,
	}
}

type HealthResponse struct {
	App         string `json:"app"`          // ok, если сервис запущен
	AiAvailable bool   `json:"ai_available"` // ИИ ответил на проверочный запрос
	Provider    string `json:"provider"`     // ollama/yandexgpt
	Model       string `json:"model"`
}
