package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"feedbackdesk/internal/agent"
	"feedbackdesk/internal/chart"
	"feedbackdesk/internal/domain/storage"
	"feedbackdesk/internal/env"
	"feedbackdesk/internal/feedback"
	"feedbackdesk/internal/llm"
	"feedbackdesk/internal/logger"
	"feedbackdesk/internal/media"

	"github.com/joho/godotenv"
)

const usage = `usage: feedbackdesk [flags] <command> [text]

commands:
  sentiment <feedback>   classify feedback without recording it
  reply <feedback>       classify, draft a reply and record the feedback
  plot <range>           chart sentiment over a date range, e.g. "last 7 days"
  agent <question>       let the assistant pick a tool
  demo                   run the sample session (default)

flags:
`

type config struct {
	logLevel      string
	store         storage.Config
	llm           llm.Config
	plotDir       string
	cloudinaryURL string
	agent         agent.Config
}

func loadConfig() config {
	return config{
		logLevel: env.GetString("LOG_LEVEL", "warn"),
		store: storage.Config{
			Driver:      env.GetString("STORE_DRIVER", "csv"),
			CSVPath:     env.GetString("CSV_PATH", "reviews.csv"),
			SQLitePath:  env.GetString("SQLITE_PATH", "data/reviews.db"),
			PostgresDSN: env.GetString("DB_ADDR", ""),
			MaxConns:    int32(env.GetInt("DB_MAX_OPEN_CONNS", 4)),
			MaxIdleTime: env.GetString("DB_MAX_IDLE_TIME", "15m"),
		},
		llm: llm.Config{
			Endpoint:    env.GetString("GROQ_API_URL", llm.DefaultEndpoint),
			APIKey:      env.GetString("GROQ_API_KEY", ""),
			Model:       env.GetString("GROQ_MODEL", llm.DefaultModel),
			Temperature: env.GetFloat("GROQ_TEMPERATURE", llm.DefaultTemperature),
			Timeout:     env.GetDuration("GROQ_TIMEOUT", 60*time.Second),
		},
		plotDir:       env.GetString("PLOT_DIR", "."),
		cloudinaryURL: env.GetString("CLOUDINARY_URL", ""),
		agent: agent.Config{
			MaxIterations: env.GetInt("AGENT_MAX_ITERATIONS", agent.DefaultMaxIterations),
			Verbose:       env.GetBool("AGENT_VERBOSE", true),
		},
	}
}

func main() {
	// a missing .env is fine, the environment may already be set
	_ = godotenv.Load()

	cfg := loadConfig()

	fs := flag.NewFlagSet("feedbackdesk", flag.ExitOnError)
	fs.StringVar(&cfg.store.Driver, "store", cfg.store.Driver, "review store driver: csv, sqlite or postgres")
	fs.StringVar(&cfg.store.CSVPath, "csv", cfg.store.CSVPath, "csv file for the csv store")
	fs.StringVar(&cfg.plotDir, "plots", cfg.plotDir, "directory for rendered plots")
	fs.StringVar(&cfg.logLevel, "log-level", cfg.logLevel, "debug, info, warn or error")
	fs.BoolVar(&cfg.agent.Verbose, "v", cfg.agent.Verbose, "log agent steps")
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usage)
		fs.PrintDefaults()
	}
	fs.Parse(os.Args[1:])

	logger := logger.New(cfg.logLevel)
	defer logger.Sync()

	llmClient, err := llm.NewGroqClient(cfg.llm)
	if err != nil {
		log.Fatalf("%v: set GROQ_API_KEY in the environment or .env", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := storage.NewContainer(ctx, cfg.store, logger)
	if err != nil {
		logger.Fatal(err)
	}
	defer store.Close()

	var uploader chart.Uploader
	if cfg.cloudinaryURL != "" {
		cld, err := media.NewCloudinaryUploader(cfg.cloudinaryURL, media.DefaultFolder)
		if err != nil {
			logger.Fatal(err)
		}
		uploader = cld
	}
	plotter, err := chart.NewPlotter(store.Reviews, chart.Config{Dir: cfg.plotDir, Uploader: uploader, Logger: logger})
	if err != nil {
		logger.Fatal(err)
	}

	svc := feedback.NewService(llmClient, store.Reviews, nil, logger)
	cfg.agent.Logger = logger

	app := &cli{
		out:     os.Stdout,
		svc:     svc,
		plotter: plotter,
		agent:   agent.New(llmClient, agent.NewTools(svc, plotter), cfg.agent),
	}

	cmd, text := "demo", ""
	if fs.NArg() > 0 {
		cmd = fs.Arg(0)
		text = strings.Join(fs.Args()[1:], " ")
	}

	if err := app.run(ctx, cmd, text); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
