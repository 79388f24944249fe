package main

import (
	"context"
	"fmt"
	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"hr-onboarding-board/config"
	"hr-onboarding-board/controllers"
	apiv1 "hr-onboarding-board/controllers/v1"
	_ "hr-onboarding-board/docs"
	"hr-onboarding-board/fiberlog"
	"hr-onboarding-board/initializers"
	"hr-onboarding-board/middleware"
	"os"
	"os/signal"
	"sync"
	"time"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	initializers.InitAllServices(ctx)

	app := fiber.New()
	app.Use(fiberRecover.New())
	app.Use(requestid.New(requestid.Config{
		Header:    fiberlog.RequestIDHeader,
		Generator: uuid.NewString,
	}))

	swaggerCfg := swagger.Config{
		Path:     "/swagger",
		FilePath: "./docs/swagger.json",
	}
	app.Use(swagger.New(swaggerCfg))

	controllers.InitHealthRouters(app)

	//доска онбординга
	board := app.Group("/board", fiberlog.New(*initializers.LoggerConfig))
	controllers.InitBoardPageRouters(board)

	//api
	apiV1 := fiber.New()
	apiV1.Use(fiberlog.New(*initializers.LoggerConfig))
	apiV1.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST",
	}))
	apiV1.Use(middleware.AuthorizationRequired(config.Conf.Auth.JWTSecret))
	app.Mount("/api/v1", apiV1)
	apiv1.InitOnboardingApiRouters(apiV1)
	apiv1.InitBoardApiRouters(apiV1)

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	wg := sync.WaitGroup{}
	go func() {
		<-c
		wg.Add(1)
		defer wg.Done()
		log.Info("Gracefully shutting down...")
		cancel()
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
