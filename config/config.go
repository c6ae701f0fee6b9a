package config

import (
	"github.com/gotify/configor"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

var Conf *Configuration

const (
	AIProviderOllama    = "ollama"
	AIProviderYandexGPT = "yandexgpt"
)

type Configuration struct {
	App struct {
		ListenAddr  string `default:"0.0.0.0" env:"APP_HOST"`
		Port        int    `default:"8000"  env:"APP_PORT"`
		BodyLimitMB int    `default:"10" env:"APP_BODY_LIMIT_MB"`
		CorsOrigins string `default:"http://localhost:3000,http://localhost:5173" env:"APP_CORS_ORIGINS"`
	}
	AI struct {
		Provider string `default:"ollama" env:"AI_PROVIDER"`
		Ollama   struct {
			OllamaURL         string `default:"http://127.0.0.1:11434" env:"OLLAMA_URL"`
			OllamaModel       string `default:"llama3.1:latest" env:"OLLAMA_MODEL"`
			RequestTimeoutSec int    `default:"0" env:"OLLAMA_REQUEST_TIMEOUT_SEC"` // 0 - без ограничения
		}
		YandexGPT struct {
			IAMToken  string `default:"" env:"YANDEX_GPT_IAM_TOKEN"`
			APIKey    string `default:"" env:"YANDEX_GPT_API_KEY"`
			CatalogID string `default:"" env:"YANDEX_GPT_CATALOG_ID"`
			Model     string `default:"yandexgpt-lite" env:"YANDEX_GPT_MODEL"`
		}
	}
	Log struct {
		Level string `default:"info" env:"LOG_LEVEL"`
	}
	Export struct {
		PdfFontDir  string `default:"static/font/" env:"EXPORT_PDF_FONT_DIR"`
		PdfFontFile string `default:"NotoSansDevanagari-Regular.ttf" env:"EXPORT_PDF_FONT_FILE"`
	}
}

// Model идентификатор модели выбранного провайдера ИИ
func (c *Configuration) Model() string {
	if c.AI.Provider == AIProviderYandexGPT {
		return c.AI.YandexGPT.Model
	}
	return c.AI.Ollama.OllamaModel
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	if err := godotenv.Load(); err != nil {
		log.Debug("файл .env не найден, используются переменные окружения")
	}
	conf, err := Load(configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}

func Load(files ...string) (*Configuration, error) {
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, files...)
	if err != nil {
		return nil, err
	}
	return conf, nil
}
