package main

import (
	"context"
	"errors"
	"expvar"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"feedbackdesk/docs" //this is required to generate swagger docs
	"feedbackdesk/internal/agent"
	"feedbackdesk/internal/chart"
	"feedbackdesk/internal/domain/storage"
	"feedbackdesk/internal/feedback"
	"feedbackdesk/internal/ids"
	"feedbackdesk/internal/llm"
	"feedbackdesk/internal/mailer"
	"feedbackdesk/internal/ratelimiter"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type application struct {
	config      config
	logger      *zap.SugaredLogger
	store       *storage.Container
	feedback    *feedback.Service
	plotter     *chart.Plotter
	plotIDs     *ids.Codec
	agent       *agent.Agent
	rateLimiter ratelimiter.Limiter
}

type config struct {
	addr        string
	env         string
	apiURL      string
	logLevel    string
	store       storage.Config
	llm         llm.Config
	plots       plotConfig
	alerts      alertConfig
	agent       agent.Config
	rateLimiter ratelimiter.Config

	statsInterval time.Duration
}

type plotConfig struct {
	dir           string
	idSalt        string
	cloudinaryURL string
}

type alertConfig struct {
	smtp       mailer.SMTPConfig
	emailTo    []string
	pushTokens []string
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	r.Use(app.RateLimiterMiddleware)

	// model calls can be slow; the request context is cancelled after this
	r.Use(middleware.Timeout(90 * time.Second))

	r.Route("/v1", func(r chi.Router) {
		r.Get("/health", app.healthCheckHandler)
		r.Get("/debug/vars", expvar.Handler().ServeHTTP)

		docsURL := fmt.Sprintf("%s/swagger/doc.json", app.config.addr)
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(docsURL)))

		r.Route("/feedback", func(r chi.Router) {
			r.Get("/", app.listFeedbackHandler)
			r.Post("/sentiment", app.detectSentimentHandler)
			r.Post("/reply", app.generateReplyHandler)
		})

		r.Route("/plots", func(r chi.Router) {
			r.Post("/", app.createPlotHandler)
			r.Get("/{plotID}", app.getPlotHandler)
		})

		r.Post("/agent", app.agentHandler)
	})

	return r
}

func (app *application) run(mux http.Handler) error {
	// Docs
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Host = app.config.apiURL
	docs.SwaggerInfo.BasePath = "/v1"

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: 2 * time.Minute,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	// Implementing graceful shutdown
	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server has started", "addr", app.config.addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}
