// Package server builds the fiber application of the selected tutorial app.
package server

import (
	"fmt"

	"crud-tutorials/config"
	"crud-tutorials/internal/transport/http/middleware"
	handlers_fiber "crud-tutorials/internal/transport/http/server/handlers-fiber"
	"crud-tutorials/internal/transport/http/session"
	"crud-tutorials/internal/transport/http/view"
	"crud-tutorials/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

// Deps are the collaborators of the HTTP layer. Usecase may be nil for apps without a store.
type Deps struct {
	Log     *zap.SugaredLogger
	Config  *config.Config
	Usecase usecase.InterfaceUsecase
}

// New returns the fiber app serving cfg.App.Name.
func New(d Deps) (*fiber.App, error) {
	cfg := d.Config
	if cfg.NeedsStore() && d.Usecase == nil {
		return nil, fmt.Errorf("app %q needs a usecase", cfg.App.Name)
	}

	views, err := view.New()
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}
	log := d.Log.Named(cfg.App.Name)
	h := handlers_fiber.NewHandler(log, d.Usecase, views, cfg.Upload.Dir)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	serv := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  cfg.HTTP.RequestTimeout,
		WriteTimeout: cfg.HTTP.RequestTimeout,
		BodyLimit:    cfg.HTTP.BodyLimit,
	})
	serv.Use(recover.New())
	serv.Use(requestid.New())
	serv.Use(middleware.RequestLogger(log))
	serv.Use(middleware.NewMetrics(reg, cfg.App.Name).Handler())

	serv.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	serv.Get("/metrics", middleware.MetricsEndpoint(reg))

	if cfg.NeedsSession() {
		sessions, err := session.NewManager(log, cfg.Session)
		if err != nil {
			return nil, err
		}
		serv.Use(sessions.Middleware())
	}

	switch cfg.App.Name {
	case config.AppBlueprints:
		registerBlueprints(serv, h)
	case config.AppFirst:
		registerFirstApp(serv, h)
	case config.AppSessions:
		registerSessions(serv, h)
	case config.AppAuth:
		registerAuth(serv, h, log, d.Usecase, cfg.Auth)
	case config.AppContacts:
		registerContacts(serv, h)
	default:
		return nil, fmt.Errorf("unknown app %q", cfg.App.Name)
	}
	return serv, nil
}

// registerBlueprints mounts the core, todos and people groups.
func registerBlueprints(serv *fiber.App, h *handlers_fiber.Handler) {
	serv.Get("/", h.Index)

	todos := serv.Group("/todos")
	todos.Get("/", h.TodoIndex)
	todos.Get("/create", h.TodoCreateForm)
	todos.Post("/create", h.TodoCreate)
	todos.Get("/:tid", h.TodoDetail)
	todos.Post("/:tid/done", h.TodoDone)
	todos.Post("/:tid/delete", h.TodoDelete)

	people := serv.Group("/people")
	people.Get("/", h.PersonIndex)
	people.Get("/create", h.PersonCreateForm)
	people.Post("/create", h.PersonCreate)
	people.Get("/:pid", h.PersonDetail)
	people.Post("/:pid/update", h.PersonUpdate)
	people.Post("/:pid/delete", h.PersonDelete)
}

func registerFirstApp(serv *fiber.App, h *handlers_fiber.Handler) {
	serv.Get("/", h.Home)
	serv.Get("/hello", h.Hello)
	serv.Get("/greet/:name", h.Greet)
	serv.Get("/add/:number1<int>/:number2<int>", h.Add)
	serv.Get("/handle_url_params", h.HandleURLParams)
}

func registerSessions(serv *fiber.App, h *handlers_fiber.Handler) {
	serv.Get("/", h.SessionIndex)
	serv.Get("/set_data", h.SetData)
	serv.Get("/get_data", h.GetData)
	serv.Get("/get_data/:key", h.GetDataKey)
	serv.Get("/clear_session", h.ClearSession)
	serv.Get("/set_cookie", h.SetCookie)
	serv.Get("/get_cookie", h.GetCookie)
	serv.Get("/remove_cookie", h.RemoveCookie)
	serv.Post("/file_upload", h.FileUpload)
}

func registerAuth(serv *fiber.App, h *handlers_fiber.Handler, log *zap.SugaredLogger, loader middleware.UserLoader, cfg config.AuthConfig) {
	redirect := cfg.LoginRedirect
	if redirect == "" {
		redirect = "/"
	}

	serv.Use(middleware.LoadUser(log, loader))
	serv.Get("/", h.AuthIndex)
	serv.Get("/signup", h.SignupForm)
	serv.Post("/signup", h.Signup)
	serv.Get("/login", h.LoginForm)
	serv.Post("/login", h.Login)
	serv.Get("/logout", h.Logout)
	serv.Get("/secret", middleware.RequireLogin(redirect), h.Secret)
}

func registerContacts(serv *fiber.App, h *handlers_fiber.Handler) {
	serv.Use(cors.New())
	serv.Get("/contacts", h.GetContacts)
	serv.Post("/create_contact", h.CreateContact)
	serv.Patch("/update_contact/:user_id", h.UpdateContact)
	serv.Delete("/delete_contact/:user_id", h.DeleteContact)
}
