package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"jokebot/app/client/chucknorris"
	"jokebot/app/config"
	"jokebot/app/server"
	"jokebot/app/service/conversation"
	"jokebot/app/util/mylog"

	"github.com/gofiber/fiber/v2/log"
	"github.com/samber/do"
)

func main() {
	di := do.New()
	defer di.Shutdown()
	defer log.Info("Waiting for services to finish...")

	mylog.Preinit()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	do.ProvideValue(di, appCtx)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	do.ProvideValue(di, cfg)

	if err = mylog.Init(cfg); err != nil {
		log.Fatalf("logging init failed: %v", err)
	}

	do.Provide(di, chucknorris.NewClient)
	do.Provide(di, conversation.New)
	do.Provide(di, server.New)

	slog.Info("Service started", "listen", cfg.Server.Listen)

	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt)
		<-sigint

		log.Info("Shutting down...")

		cancel()
	}()

	if err = do.MustInvoke[*server.Service](di).Run(appCtx); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
