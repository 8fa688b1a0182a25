package main

import (
	"context"
	"expvar"
	"log"
	"runtime"
	"time"

	"feedbackdesk/internal/agent"
	"feedbackdesk/internal/chart"
	"feedbackdesk/internal/domain/storage"
	"feedbackdesk/internal/env"
	"feedbackdesk/internal/feedback"
	"feedbackdesk/internal/ids"
	"feedbackdesk/internal/llm"
	"feedbackdesk/internal/logger"
	"feedbackdesk/internal/mailer"
	"feedbackdesk/internal/media"
	"feedbackdesk/internal/notifications"
	"feedbackdesk/internal/ratelimiter"

	"github.com/joho/godotenv"
)

var version = "1.0.0"

// LoadRateLimiterConfig retrieves rate limiter settings from environment variables
func LoadRateLimiterConfig() ratelimiter.Config {
	return ratelimiter.Config{
		RequestsPerTimeFrame: env.GetInt("RATELIMITER_REQUESTS_COUNT", 200),
		TimeFrame:            5 * time.Second,
		Enabled:              env.GetBool("RATE_LIMITER_ENABLED", false),
	}
}

func loadConfig() config {
	return config{
		addr:     env.GetString("ADDR", ":8080"),
		env:      env.GetString("ENV", "development"),
		apiURL:   env.GetString("EXTERNAL_URL", "localhost:8080"),
		logLevel: env.GetString("LOG_LEVEL", "info"),
		store: storage.Config{
			Driver:      env.GetString("STORE_DRIVER", "csv"),
			CSVPath:     env.GetString("CSV_PATH", "reviews.csv"),
			SQLitePath:  env.GetString("SQLITE_PATH", "data/reviews.db"),
			PostgresDSN: env.GetString("DB_ADDR", ""),
			MaxConns:    int32(env.GetInt("DB_MAX_OPEN_CONNS", 10)),
			MaxIdleTime: env.GetString("DB_MAX_IDLE_TIME", "15m"),
		},
		llm: llm.Config{
			Endpoint:    env.GetString("GROQ_API_URL", llm.DefaultEndpoint),
			APIKey:      env.GetString("GROQ_API_KEY", ""),
			Model:       env.GetString("GROQ_MODEL", llm.DefaultModel),
			Temperature: env.GetFloat("GROQ_TEMPERATURE", llm.DefaultTemperature),
			Timeout:     env.GetDuration("GROQ_TIMEOUT", 60*time.Second),
		},
		plots: plotConfig{
			dir:           env.GetString("PLOT_DIR", "plots"),
			idSalt:        env.GetString("PLOT_ID_SALT", "feedbackdesk"),
			cloudinaryURL: env.GetString("CLOUDINARY_URL", ""),
		},
		alerts: alertConfig{
			smtp: mailer.SMTPConfig{
				Host:      env.GetString("SMTP_HOST", ""),
				Port:      env.GetInt("SMTP_PORT", 587),
				Username:  env.GetString("SMTP_USERNAME", ""),
				Password:  env.GetString("SMTP_PASSWORD", ""),
				FromEmail: env.GetString("ALERT_EMAIL_FROM", ""),
			},
			emailTo:    env.GetList("ALERT_EMAIL_TO"),
			pushTokens: env.GetList("EXPO_PUSH_TOKENS"),
		},
		agent: agent.Config{
			MaxIterations: env.GetInt("AGENT_MAX_ITERATIONS", agent.DefaultMaxIterations),
			Verbose:       env.GetBool("AGENT_VERBOSE", true),
		},
		rateLimiter:   LoadRateLimiterConfig(),
		statsInterval: env.GetDuration("STATS_INTERVAL", defaultStatsInterval),
	}
}

//	@title			Feedback Desk API
//	@description	Classify customer feedback, draft replies and chart sentiment over time.

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath	/v1
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg := loadConfig()

	logger := logger.New(cfg.logLevel)
	defer logger.Sync()

	llmClient, err := llm.NewGroqClient(cfg.llm)
	if err != nil {
		logger.Fatal(err)
	}

	// Storage
	ctx := context.Background()
	store, err := storage.NewContainer(ctx, cfg.store, logger)
	if err != nil {
		logger.Fatal(err)
	}
	defer store.Close()
	logger.Infow("review store ready", "driver", cfg.store.Driver)

	// Alerts for negative feedback
	var mail mailer.Client
	if cfg.alerts.smtp.Host != "" {
		m, err := mailer.NewSMTPMailer(cfg.alerts.smtp)
		if err != nil {
			logger.Fatal(err)
		}
		mail = m
	}
	var push notifications.PushSender
	if len(cfg.alerts.pushTokens) > 0 {
		push = notifications.NewExpoAdapter()
	}
	alerter := notifications.NewAlerter(notifications.AlerterConfig{
		Mailer:     mail,
		Recipients: cfg.alerts.emailTo,
		Push:       push,
		PushTokens: cfg.alerts.pushTokens,
		Logger:     logger,
	})
	logger.Infow("negative feedback alerts", "enabled", alerter.Enabled())

	svc := feedback.NewService(llmClient, store.Reviews, alerter, logger)

	// Plots
	var uploader chart.Uploader
	if cfg.plots.cloudinaryURL != "" {
		cld, err := media.NewCloudinaryUploader(cfg.plots.cloudinaryURL, media.DefaultFolder)
		if err != nil {
			logger.Fatal(err)
		}
		uploader = cld
	}
	plotter, err := chart.NewPlotter(store.Reviews, chart.Config{
		Dir:      cfg.plots.dir,
		Uploader: uploader,
		Logger:   logger,
	})
	if err != nil {
		logger.Fatal(err)
	}

	plotIDs, err := ids.NewCodec(cfg.plots.idSalt)
	if err != nil {
		logger.Fatal(err)
	}

	cfg.agent.Logger = logger
	assistant := agent.New(llmClient, agent.NewTools(svc, plotter), cfg.agent)

	app := &application{
		config:      cfg,
		logger:      logger,
		store:       store,
		feedback:    svc,
		plotter:     plotter,
		plotIDs:     plotIDs,
		agent:       assistant,
		rateLimiter: ratelimiter.NewFixedWindowLimiter(cfg.rateLimiter.RequestsPerTimeFrame, cfg.rateLimiter.TimeFrame),
	}

	// Metrics collected http://localhost:8080/v1/debug/vars
	expvar.NewString("version").Set(version)
	expvar.Publish("goroutines", expvar.Func(func() any {
		return runtime.NumGoroutine()
	}))

	statsCtx, stopStats := context.WithCancel(ctx)
	defer stopStats()
	app.refreshReviewStatsEvery(statsCtx, cfg.statsInterval)

	mux := app.mount()

	logger.Fatal(app.run(mux))
}
