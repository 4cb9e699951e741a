package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/careeragentpro/backend/api/http/handlers"
)

// Handlers bundles everything Register wires onto the app.
type Handlers struct {
	Auth         *handlers.AuthHandler
	Health       *handlers.HealthHandler
	Jobs         *handlers.JobsHandler
	Resume       *handlers.ResumeHandler
	Resumes      *handlers.ResumesHandler
	Letters      *handlers.LettersHandler
	Export       *handlers.ExportHandler
	Applications *handlers.ApplicationsHandler
	State        *handlers.StateHandler
}

// Register wires all HTTP routes onto the given Fiber app. The auth
// middleware guards per-user routes; optionalAuth lets the public
// analysis routes pick up the caller's identity when a token is sent.
func Register(app *fiber.App, h Handlers, auth, optionalAuth fiber.Handler) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", h.Health.Health)
	v1.Get("/ready", h.Health.Ready)

	a := v1.Group("/auth")
	a.Post("/register", h.Auth.Register)
	a.Post("/login", h.Auth.Login)

	// Job posting extraction and analysis
	jg := v1.Group("/jobs", optionalAuth)
	jg.Post("/extract", h.Jobs.Extract)
	jg.Post("/analyze", h.Jobs.Analyze)
	jg.Post("/assess-fit", h.Jobs.AssessFit)
	jg.Get("/history", auth, h.Jobs.Recent)

	// Resume parsing, scoring and enhancement plus saved resumes.
	// The collection routes are registered first so that /resumes/parse
	// and friends stay public.
	rg := v1.Group("/resumes")
	rg.Post("/parse", optionalAuth, h.Resume.Parse)
	rg.Post("/score", optionalAuth, h.Resume.Score)
	rg.Post("/enhance", optionalAuth, h.Resume.Enhance)
	rg.Post("/validate-bullet", h.Resume.ValidateBullet)
	rg.Post("/", auth, h.Resumes.Save)
	rg.Get("/", auth, h.Resumes.List)
	rg.Get("/:id", auth, h.Resumes.Get)
	rg.Put("/:id", auth, h.Resumes.Update)
	rg.Delete("/:id", auth, h.Resumes.Delete)

	// Generated prose
	lg := v1.Group("/letters", optionalAuth)
	lg.Post("/cover", h.Letters.Cover)
	lg.Post("/communication", h.Letters.Communication)

	// Document export
	eg := v1.Group("/export")
	eg.Post("/html", h.Export.HTML)
	eg.Post("/rtf", h.Export.RTF)
	eg.Post("/latex", h.Export.LaTeX)

	// Application tracker
	ag := v1.Group("/applications", auth)
	ag.Post("/", h.Applications.Create)
	ag.Get("/", h.Applications.List)
	ag.Patch("/:id/status", h.Applications.UpdateStatus)
	ag.Delete("/:id", h.Applications.Delete)

	// Per-user UI state
	sg := v1.Group("/state", auth)
	sg.Delete("/", h.State.Clear)
	sg.Put("/:key", h.State.Put)
	sg.Get("/:key", h.State.Get)
	sg.Delete("/:key", h.State.Delete)
}
