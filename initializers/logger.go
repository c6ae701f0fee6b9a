package initializers

import (
	"question-extractor/config"
	"question-extractor/fiberlog"

	log "github.com/sirupsen/logrus"
)

// длина тела запроса/ответа в логе, OCR текст бывает большим
const logBodyLimit = 2000

func InitLogger() *fiberlog.Config {
	log.SetFormatter(&log.JSONFormatter{
		FieldMap: log.FieldMap{
			log.FieldKeyTime: "@timestamp",
			log.FieldKeyMsg:  "message",
		},
	})
	level, err := log.ParseLevel(config.Conf.Log.Level)
	if err != nil {
		log.WithError(err).Warnf("неизвестный уровень логирования %q, используется info", config.Conf.Log.Level)
		level = log.InfoLevel
	}
	log.SetLevel(level)

	logger := log.New()
	logger.SetFormatter(&log.JSONFormatter{
		FieldMap: log.FieldMap{
			log.FieldKeyTime: "@timestamp",
			log.FieldKeyMsg:  "message",
		},
	})
	logger.SetLevel(log.DebugLevel)
	return &fiberlog.Config{
		Logger:    logger,
		BodyLimit: logBodyLimit,
		Tags: []string{
			fiberlog.TagBody,
			fiberlog.TagResBody,
			fiberlog.TagMethod,
			fiberlog.TagPath,
			fiberlog.TagStatus,
			fiberlog.TagLatency,
			fiberlog.RequestID,
		},
	}
}
