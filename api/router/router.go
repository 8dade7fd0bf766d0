package router

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"

	"github.com/wavefinderapp/payments-api/api/bootstrap"
	"github.com/wavefinderapp/payments-api/api/metrics"
)

// NewRouter returns the central HTTP router for the API.
func NewRouter() http.Handler {
	// Initialize app dependencies (non-fatal if it fails here; handlers re-check).
	if err := bootstrap.Ensure(); err != nil {
		slog.Error("bootstrap ensure failed", "err", err)
	}

	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "wavefinder-payments"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api", func(r chi.Router) {
		r.Post("/attach-payment-method", handleAttachPaymentMethod)
		r.Post("/confirm-intent", handleConfirmIntent)
		r.Post("/create-subscription", handleCreateSubscription)
		r.Post("/cancel-subscription", handleCancelSubscription)
		r.Get("/locations", handleListLocations)
	})
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	return r
}
