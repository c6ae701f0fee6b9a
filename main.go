package main

import (
	"fmt"
	"os"
	"os/signal"
	"question-extractor/config"
	apiv1 "question-extractor/controllers/v1"
	"question-extractor/docs"
	"question-extractor/fiberlog"
	"question-extractor/initializers"
	"question-extractor/middleware"
	"sync"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// @title Question extractor API
// @version 1.0
// @description Выделение вопросов с вариантами ответа из текста после OCR с помощью LLM
func main() {
	initializers.InitAllServices()

	bodyLimit := config.Conf.App.BodyLimitMB * 1024 * 1024
	app := fiber.New(fiber.Config{
		BodyLimit: bodyLimit,
	})
	app.Use(fiberRecover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: config.Conf.App.CorsOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST",
	}))
	app.Use(middleware.WithBodyLimit(int64(bodyLimit)))

	swaggerCfg := swagger.Config{
		Path:        "/swagger",
		FileContent: []byte(docs.SwaggerInfo.ReadDoc()),
	}
	app.Use(swagger.New(swaggerCfg))
	app.Use(fiberlog.New(*initializers.LoggerConfig))

	apiv1.InitRootRouters(app)

	//api
	apiV1 := fiber.New()
	app.Mount("/api/v1", apiV1)
	apiv1.InitExtractApiRouters(apiV1)

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	wg := sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = <-c
		log.Info("Gracefully shutting down...")
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		time.Sleep(time.Second)
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("HTTP server successfully stopped")
}
