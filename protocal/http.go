package protocal

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"ai-anywhere/configs"
	httpAdapter "ai-anywhere/internal/adapters/input/http"

	swagger "github.com/arsmn/fiber-swagger/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sirupsen/logrus"
)

type config struct {
	ENV string `mapstructure:"env"`
}

// ServeHTTP func
func ServeHTTP() error {
	app := fiber.New()
	var cfg config
	flag.StringVar(&cfg.ENV, "env", "", "the environment to use")
	flag.Parse()

	deps, err := bootstrap(cfg.ENV)
	if err != nil {
		return err
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept,Authorization",
	}))

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go func() {
		for range c {
			log.Println("Gracefull shut down ...")
			deps.operations.Cancel()
			stop()
			deps.close()
			err := app.Shutdown()
			if err != nil {
				log.Println("Error when shutdown server: ", err)
			}
		}
	}()

	if removed, err := deps.history.CleanupMedia(); err == nil && removed > 0 {
		logrus.Infof("Startup media cleanup removed %d files", removed)
	}

	// Input adapter (HTTP handler)
	hdl := httpAdapter.New(ctx, deps.operations, deps.tasks, deps.history, deps.gorm())
	app.Get("/swagger/*", swagger.HandlerDefault) // default
	hdl.Register(app)

	logrus.Println("Listerning on port: ", configs.GetViper().App.Port)
	return app.Listen(":" + configs.GetViper().App.Port)
}
