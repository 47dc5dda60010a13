package server

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"
	"github.com/khanghh/odin-signup/internal/config"
	"github.com/khanghh/odin-signup/internal/forms"
	"github.com/khanghh/odin-signup/internal/handlers"
	"github.com/khanghh/odin-signup/internal/middlewares"
	"github.com/khanghh/odin-signup/internal/middlewares/csrf"
	"github.com/khanghh/odin-signup/internal/middlewares/sessions"
	"github.com/khanghh/odin-signup/internal/render"
	"github.com/khanghh/odin-signup/internal/store"
	"github.com/khanghh/odin-signup/params"
)

type Options struct {
	Config   *config.Config
	Storage  fiber.Storage
	Logger   *slog.Logger
	OnSubmit forms.SubmitFunc
}

// New builds the sign-up page application with its middleware chain and routes.
func New(opts Options) *fiber.App {
	cfg := opts.Config
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	onSubmit := opts.OnSubmit
	if onSubmit == nil {
		onSubmit = handlers.LogSubmission
	}

	app := fiber.New(fiber.Config{
		AppName:               cfg.AppName,
		Views:                 render.NewHtmlEngine(cfg.TemplateDir),
		ErrorHandler:          middlewares.ErrorHandler,
		BodyLimit:             params.ServerBodyLimit,
		IdleTimeout:           params.ServerIdleTimeout,
		ReadTimeout:           params.ServerReadTimeout,
		WriteTimeout:          params.ServerWriteTimeout,
		DisableStartupMessage: true,
	})

	sessionStore := session.New(session.Config{
		Storage:        store.NewKVStorage(opts.Storage, params.SessionKeyPrefix),
		Expiration:     cfg.Session.SessionMaxAge,
		KeyLookup:      "cookie:" + cfg.Session.CookieName,
		CookieHTTPOnly: cfg.Session.CookieHttpOnly,
		CookieSecure:   cfg.Session.CookieSecure,
		CookieSameSite: fiber.CookieSameSiteLaxMode,
	})

	app.Use(requestid.New(requestid.Config{
		Header: fiber.HeaderXRequestID,
		Generator: func() string {
			return uuid.NewString()
		},
	}))
	app.Use(middlewares.RequestLogger(logger))
	app.Use(helmet.New())
	app.Use(sessions.New(sessionStore))
	app.Use(csrf.New())

	registerHandler := handlers.NewRegisterHandler(onSubmit)
	app.Get("/", registerHandler.GetRegister)
	app.Get("/register", registerHandler.GetRegister)
	app.Post("/register", registerHandler.PostRegister)

	app.Use(func(ctx *fiber.Ctx) error {
		return fiber.ErrNotFound
	})
	return app
}
