package server

import (
	"context"
	"log/slog"
	"time"

	"jokebot/app/client/chucknorris"
	"jokebot/app/config"
	"jokebot/app/service/bot"
	"jokebot/app/service/conversation"

	"github.com/elliotchance/pie/v2"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/do"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

var validate = validator.New(validator.WithRequiredStructEnabled())

type Service struct {
	cfg             *config.Config
	conversationSvc *conversation.Service
	source          bot.JokeSource

	app *fiber.App
}

func New(di *do.Injector) (*Service, error) {
	s := &Service{
		cfg:             do.MustInvoke[*config.Config](di),
		conversationSvc: do.MustInvoke[*conversation.Service](di),
		source:          do.MustInvoke[*chucknorris.Client](di),
	}

	s.app = s.buildApp()

	return s, nil
}

func (s *Service) buildApp() *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	app.Use(s.logRequests)

	app.Post("/user/:username/message", s.handleUserMessage)
	app.Get("/user/:username/message", s.handleHistory)

	return app
}

func (s *Service) Run(ctx context.Context) error {
	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		return s.app.Listen(s.cfg.Server.Listen)
	})

	group.Go(func() error {
		<-ctx.Done()
		return s.app.ShutdownWithTimeout(shutdownTimeout)
	})

	return group.Wait()
}

func (s *Service) logRequests(c *fiber.Ctx) error {
	start := time.Now()

	err := c.Next()

	slog.Info("Handled request",
		"method", c.Method(),
		"path", c.Path(),
		"status", c.Response().StatusCode(),
		"duration", time.Since(start))

	return err
}

type postMessageRequest struct {
	Text    string `json:"text" validate:"required"`
	BotType string `json:"bot_type"`
}

// handleUserMessage records the user's message and responds with the bot
// messages produced by this call, in order. Validation failures are
// rejected before the store is touched; a failed joke retrieval leaves the
// user message recorded and maps to 502 without fabricating a reply.
func (s *Service) handleUserMessage(c *fiber.Ctx) error {
	username := c.Params("username")

	var req postMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "text is required"})
	}

	conv := s.conversationSvc.Begin(username)
	provider := bot.Select(req.BotType, s.source)

	if err := provider.HandleMessage(c.UserContext(), req.Text, conv); err != nil {
		slog.Error("Failed to handle message",
			"username", username,
			"error", err)

		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "failed to retrieve a joke"})
	}

	botEvents := pie.Filter(conv.NewEvents(), func(ev conversation.Event) bool {
		return ev.Type == conversation.EventBot
	})

	return c.JSON(pie.Map(botEvents, func(ev conversation.Event) string {
		return ev.Message
	}))
}

func (s *Service) handleHistory(c *fiber.Ctx) error {
	username := c.Params("username")

	history := s.conversationSvc.History(username)
	if len(history) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(history)
	}

	return c.JSON(history)
}
