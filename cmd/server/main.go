package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"golang.org/x/sync/errgroup"

	"github.com/benbeisheim/consolechess/internal/controller"
	"github.com/benbeisheim/consolechess/internal/service"
)

var logLevels = map[string]log.Level{
	"debug": log.LevelDebug,
	"info":  log.LevelInfo,
	"warn":  log.LevelWarn,
	"error": log.LevelError,
}

func main() {
	addr := flag.String("addr", ":3000", "listen address")
	origins := flag.String("origins", "http://localhost:5173", "comma-separated allowed origins")
	logLevel := flag.String("log-level", "info", "debug, info, warn or error")
	flag.Parse()

	level, ok := logLevels[*logLevel]
	if !ok {
		log.Fatalf("unknown log level %q", *logLevel)
	}
	log.SetLevel(level)

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(cors.New(cors.Config{
		AllowOrigins:     *origins,
		AllowHeaders:     "Origin, Content-Type, Accept, X-Player-ID",
		AllowMethods:     "GET, POST, DELETE, OPTIONS",
		AllowCredentials: true,
	}))
	app.Use(func(c *fiber.Ctx) error {
		log.Debugf("incoming %s %s", c.Method(), c.Path())
		return c.Next()
	})

	gameService := service.NewGameService(service.NewGameManager())
	controller.SetupRoutes(app, gameService, strings.Split(*origins, ","))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Infof("listening on %s", *addr)
		return app.Listen(*addr)
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down")
		return app.Shutdown()
	})
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
}
