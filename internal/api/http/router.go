package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/mindtype/mindtype/internal/auth"
	authmw "github.com/mindtype/mindtype/internal/auth/middleware"
	"github.com/mindtype/mindtype/internal/config"
	"github.com/mindtype/mindtype/internal/eventlog"
	"github.com/mindtype/mindtype/internal/history"
	"github.com/mindtype/mindtype/internal/mbti"
	"github.com/mindtype/mindtype/internal/quiz"
	"github.com/mindtype/mindtype/internal/rbac"
	"github.com/mindtype/mindtype/internal/storage"
)

// Deps collects everything the router mounts. Events, Blobs and Log
// may be nil.
type Deps struct {
	Cfg     config.Config
	Auth    *authmw.AuthService
	Quiz    *quiz.Service
	Bank    *mbti.Bank
	Catalog *mbti.Catalog
	Results history.Store
	Events  *eventlog.Repo
	Blobs   storage.BlobStore
	Log     *zap.Logger
	Now     func() time.Time
}

func NewRouter(d Deps) chi.Router {
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	if d.Now == nil {
		d.Now = time.Now
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID, chimw.RealIP, RequestLogger(d.Log), chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))

	origins := d.Cfg.CORSOriginsOffline
	if d.Cfg.Mode == config.ModeOnline {
		origins = d.Cfg.CORSOriginsOnline
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Logins
	r.Post("/auth/guest", auth.GuestLoginHandler(d.Auth, d.Cfg))
	r.Post("/auth/admin", auth.AdminLoginHandler(d.Auth, d.Cfg))

	// Public catalog surfaces
	r.Get("/questions", ListQuestionsHandler(d.Bank))
	r.Get("/questions/{index}", GetQuestionHandler(d.Bank))
	r.Get("/types", ListTypesHandler(d.Catalog))
	r.Get("/types/{code}", GetTypeHandler(d.Catalog))

	// Protected API (JWT → role in context → RBAC)
	r.Group(func(pr chi.Router) {
		pr.Use(authmw.JWTMiddleware(d.Auth))

		pr.With(rbac.Require("session:create")).
			Post("/sessions", CreateSessionHandler(d.Quiz))
		pr.With(rbac.Require("session:view-own")).
			Get("/sessions/{sessionID}", GetSessionHandler(d.Quiz))
		pr.With(rbac.Require("session:answer")).
			Post("/sessions/{sessionID}/answers", RecordAnswerHandler(d.Quiz))
		pr.With(rbac.Require("session:navigate")).
			Post("/sessions/{sessionID}/navigate", NavigateHandler(d.Quiz))
		pr.With(rbac.Require("session:submit")).
			Post("/sessions/{sessionID}/submit", SubmitSessionHandler(d.Quiz))

		pr.With(rbac.Require("result:view-own")).
			Get("/results", ListResultsHandler(d.Results, d.Catalog))
		pr.With(rbac.Require("result:view-own")).
			Get("/results/recent", RecentResultHandler(d.Results, d.Catalog, d.Now))
		pr.With(rbac.Require("result:view-own")).
			Get("/results/stats", ResultStatsHandler(d.Results))
		pr.With(rbac.Require("result:export")).
			Get("/results/export", ExportResultsHandler(d.Results, d.Now))
		pr.With(rbac.Require("result:import")).
			Post("/results/import", ImportResultsHandler(d.Results, d.Events))
		pr.With(rbac.RequireAny("result:view-own", "result:purge")).
			Delete("/results", PurgeResultsHandler(d.Results, d.Events))

		if d.Blobs != nil {
			pr.With(rbac.Require("admin:export")).
				Post("/admin/export", SnapshotHandler(d.Results, d.Blobs, d.Now))
		}
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Handle("/metrics", promhttp.Handler())

	return r
}
