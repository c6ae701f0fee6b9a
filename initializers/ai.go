package initializers

import (
	"question-extractor/config"
	"question-extractor/lib/ai/llm"
	ollamaclient "question-extractor/lib/ai/ollama-client"
	yagptclient "question-extractor/lib/ai/yagpt-client"
	"question-extractor/lib/extraction"
	aichecker "question-extractor/lib/utils/ai-checker"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func InitAI() {
	client, err := NewLLMClient(config.Conf)
	if err != nil {
		log.WithError(err).Fatal("ошибка инициализации клиента ИИ")
	}
	model := config.Conf.Model()
	extraction.NewHandler(client, model)
	aichecker.NewHandler(client, config.Conf.AI.Provider, model)
	log.
		WithField("ai", config.Conf.AI.Provider).
		WithField("model", model).
		Info("клиент ИИ инициализирован")
}

// NewLLMClient клиент выбранного провайдера ИИ
func NewLLMClient(conf *config.Configuration) (llm.Provider, error) {
	switch conf.AI.Provider {
	case config.AIProviderOllama:
		return ollamaclient.NewClient(
			conf.AI.Ollama.OllamaURL,
			time.Duration(conf.AI.Ollama.RequestTimeoutSec)*time.Second)
	case config.AIProviderYandexGPT:
		return yagptclient.NewClient(
			conf.AI.YandexGPT.IAMToken,
			conf.AI.YandexGPT.APIKey,
			conf.AI.YandexGPT.CatalogID)
	default:
		return nil, errors.Errorf("unknown AI provider %q, expected %s or %s",
			conf.AI.Provider, config.AIProviderOllama, config.AIProviderYandexGPT)
	}
}
