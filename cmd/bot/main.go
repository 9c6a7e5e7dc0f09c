package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"TickerSentry/internal/config"
	"TickerSentry/internal/notifier"
	"TickerSentry/internal/provider"
	"TickerSentry/internal/recorder"
	"TickerSentry/internal/scheduler"
	"TickerSentry/internal/strategy"
	"TickerSentry/internal/universe"
)

func init() {
	// Optional; real deployments set env vars directly.
	_ = godotenv.Load()

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
	if os.Getenv("LOG_LEVEL") == "debug" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	var fetcher provider.Fetcher
	if cfg.DataSource.BaseURL != "" {
		fetcher = provider.NewRestFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	} else {
		fetcher = provider.NewYahooFetcher(cfg.Proxy)
	}
	log.Info().Str("fetcher", fetcher.Name()).Msg("data source selected")

	thresholds := cfg.EngineThresholds()
	engine, err := strategy.NewEngine(strategy.DefaultWeights(), thresholds)
	if err != nil {
		log.Fatal().Err(err).Msg("build scoring engine")
	}

	uni, err := universe.Load(cfg.Universe.CSVPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Universe.CSVPath).Msg("load universe")
	}
	log.Info().
		Int("portfolio", len(uni.PortfolioSymbols())).
		Int("watchlist", len(uni.WatchlistSymbols())).
		Msg("universe loaded")

	var channels notifier.Multi
	var telegram *notifier.TelegramNotifier
	if cfg.Telegram.BotToken != "" {
		telegram = notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
		channels = append(channels, telegram)
	}
	if cfg.EmailConfigured() {
		channels = append(channels, notifier.NewEmailNotifier(
			cfg.Email.SMTPHost, cfg.Email.SMTPPort,
			cfg.Email.Sender, cfg.Email.Password, cfg.Email.Recipient,
		))
	}

	var journal recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sqlite, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Warn().Err(err).Msg("sqlite unavailable, run journal disabled")
			journal = recorder.NewNoopRecorder()
		} else {
			journal = sqlite
		}
	} else {
		journal = recorder.NewNoopRecorder()
	}
	defer journal.Close()

	sched := scheduler.New(fetcher, engine, uni, channels, journal, thresholds,
		cfg.Analysis.DailyBars, cfg.Analysis.WeeklyBars)
	if err := sched.RegisterAll(cfg.Schedule.DailyCron, cfg.Schedule.WeeklyCron); err != nil {
		log.Fatal().Err(err).Msg("register schedules")
	}
	sched.Start()
	defer sched.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if telegram != nil {
		go telegram.StartPolling(ctx, sched.HandleCommand)
	}

	if os.Getenv("RUN_ON_START") == "true" {
		go sched.RunDailyNow()
	}

	log.Info().Msg("TickerSentry started")

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Info().Msg("shutting down")
}
