// Package leaflog собирает приложение: хранилище, кеш, сервисы и маршруты HTTP API.
package leaflog

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/magabrotheeeer/leaflog/docs"
	"github.com/magabrotheeeer/leaflog/internal/config"
	"github.com/magabrotheeeer/leaflog/internal/http/handlers/admin/adminstats"
	"github.com/magabrotheeeer/leaflog/internal/http/handlers/admin/feedbacklist"
	"github.com/magabrotheeeer/leaflog/internal/http/handlers/admin/feedbackrespond"
	"github.com/magabrotheeeer/leaflog/internal/http/handlers/admin/userlist"
	"github.com/magabrotheeeer/leaflog/internal/http/handlers/admin/userstatus"
	"github.com/magabrotheeeer/leaflog/internal/http/handlers/health"
	"github.com/magabrotheeeer/leaflog/internal/http/handlers/plant/create"
	"github.com/magabrotheeeer/leaflog/internal/http/handlers/plant/fertilizer"
	"github.com/magabrotheeeer/leaflog/internal/http/handlers/plant/growthlog"
	"github.com/magabrotheeeer/leaflog/internal/http/handlers/plant/list"
	"github.com/magabrotheeeer/leaflog/internal/http/handlers/plant/read"
	"github.com/magabrotheeeer/leaflog/internal/http/handlers/plant/remove"
	"github.com/magabrotheeeer/leaflog/internal/http/handlers/plant/update"
	"github.com/magabrotheeeer/leaflog/internal/http/handlers/plant/water"
	"github.com/magabrotheeeer/leaflog/internal/http/handlers/reminder/remindercomplete"
	"github.com/magabrotheeeer/leaflog/internal/http/handlers/reminder/remindercreate"
	"github.com/magabrotheeeer/leaflog/internal/http/handlers/reminder/reminderlist"
	"github.com/magabrotheeeer/leaflog/internal/http/middlewarectx"
	"github.com/magabrotheeeer/leaflog/internal/metrics"
	"github.com/magabrotheeeer/leaflog/internal/services/admin"
	"github.com/magabrotheeeer/leaflog/internal/services/garden"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, gardenService *garden.Service, adminService *admin.Service, m *metrics.Metrics, limit config.RateLimit) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
		m.Middleware,
	)

	r.Get("/health", health.New(logger).ServeHTTP)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middlewarectx.RateLimitMiddleware(logger, limit.RPS, limit.Burst))

		r.Get("/plants", list.New(logger, gardenService).ServeHTTP)
		r.Post("/plants", create.New(logger, gardenService).ServeHTTP)
		r.Get("/plants/{id}", read.New(logger, gardenService).ServeHTTP)
		r.Patch("/plants/{id}", update.New(logger, gardenService).ServeHTTP)
		r.Delete("/plants/{id}", remove.New(logger, gardenService).ServeHTTP)
		r.Post("/plants/{id}/water", water.New(logger, gardenService).ServeHTTP)
		r.Post("/plants/{id}/growth-log", growthlog.New(logger, gardenService).ServeHTTP)
		r.Post("/plants/{id}/fertilizer", fertilizer.New(logger, gardenService).ServeHTTP)

		r.Get("/reminders", reminderlist.New(logger, gardenService).ServeHTTP)
		r.Post("/reminders", remindercreate.New(logger, gardenService).ServeHTTP)
		r.Post("/reminders/{id}/complete", remindercomplete.New(logger, gardenService).ServeHTTP)

		r.Route("/admin", func(r chi.Router) {
			r.Get("/stats", adminstats.New(logger, adminService).ServeHTTP)
			r.Get("/users", userlist.New(logger, adminService).ServeHTTP)
			r.Patch("/users/{id}/status", userstatus.New(logger, adminService).ServeHTTP)
			r.Get("/feedback", feedbacklist.New(logger, adminService).ServeHTTP)
			r.Post("/feedback/{id}/respond", feedbackrespond.New(logger, adminService).ServeHTTP)
		})
	})

	r.Handle("/metrics", m.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
