package extraction

import "strings"

const (
	codeFence = "```"

	// ExampleInput пример текста OCR, который показывается модели
	ExampleInput = `512. सम्राट अशोक कहिले नेपालआएका थिए ? (A) इ.पू. २५० (B) इ.पू. २५२
513. अर्को प्रश्न? (A) विकल्प १ (B) विकल्प २`

	// ExampleOutput ожидаемый ответ модели для ExampleInput
	ExampleOutput = `[
  {
    "sn": "512",
    "question": "सम्राट अशोक कहिले नेपालआएका थिए ?",
    "options": "(A) इ.पू. २५० (B) इ.पू. २५२"
  },
  {
    "sn": "513",
    "question": "अर्को प्रश्न?",
    "options": "(A) विकल्प १ (B) विकल्प २"
  }
]`

	textDelimiter = "---"
)

var promptHead = strings.Join([]string{
	`You are a data extraction tool. Your only task is to analyze the following text and extract every multiple-choice question and its corresponding options.`,
	``,
	`### INSTRUCTIONS`,
	`- Find every item that starts with a number like "512.".`,
	`- Extract the full question text.`,
	`- Extract all options associated with that question.`,
	`- Format the output as a JSON array of objects.`,
	`- Each object must have ONLY these keys: "sn", "question", "options". Do not add any other keys.`,
	`- All values must be strings. Keep the text exactly as it appears in the source.`,
	`- If the text contains no such questions, return an empty JSON array: [].`,
	``,
	`### EXAMPLE`,
	`Input Text:`,
	textDelimiter,
	ExampleInput,
	textDelimiter,
	`Required JSON Output:`,
	codeFence + "json",
	ExampleOutput,
	codeFence,
	``,
	`### YOUR TASK`,
	`Process this text and return ONLY the JSON array:`,
	textDelimiter,
	``,
}, "\n")

var promptTail = "\n" + textDelimiter + "\n"

// BuildExtractionPrompt промпт для выделения вопросов из текста OCR, текст вставляется без изменений
func BuildExtractionPrompt(rawText string) string {
	return promptHead + rawText + promptTail
}
