package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"MCXTracker/internal/cache"
	"MCXTracker/internal/collector"
	"MCXTracker/internal/config"
	"MCXTracker/internal/contract"
	"MCXTracker/internal/model"
	"MCXTracker/internal/notifier"
	"MCXTracker/internal/recorder"
	"MCXTracker/internal/scheduler"
	"MCXTracker/internal/server"
	"MCXTracker/internal/tracker"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] MCXTracker starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Contract table
	registry, err := contract.Load()
	if err != nil {
		log.Fatalf("[FATAL] load contract table: %v", err)
	}
	log.Printf("[INFO] contract table loaded: %v", registry.Names())

	// Init fetcher
	var fetcher collector.Fetcher
	if cfg.DataSource.BaseURL != "" {
		fetcher = collector.NewRestFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	} else {
		fetcher = collector.NewYahooFetcher(cfg.Proxy)
	}
	log.Printf("[INFO] data source: %s", fetcher.Name())

	// Core pipeline
	col := collector.NewCollector(fetcher)
	ttl := time.Duration(cfg.Tracker.CacheTTLMinutes) * time.Minute
	svc := tracker.NewService(col, registry, cache.New(ttl), cfg.DataSource.CurrencyTicker)

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// HTTP API
	srv := server.New(svc, cfg.Tracker.DefaultContract, cfg.Tracker.DutyPercent)
	go func() {
		log.Printf("[INFO] HTTP API listening on %s", cfg.Server.Addr)
		if err := srv.Run(cfg.Server.Addr); err != nil {
			log.Fatalf("[FATAL] http server: %v", err)
		}
	}()

	// Optional Telegram alert bot
	if cfg.Telegram.BotToken != "" {
		tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)

		var rec recorder.Recorder
		if cfg.Database.SQLitePath != "" {
			sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
			if err != nil {
				log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
				rec = recorder.NewNoopRecorder()
			} else {
				rec = sr
				defer sr.Close()
			}
		} else {
			rec = recorder.NewNoopRecorder()
		}

		period, _ := model.ParsePeriod(cfg.Tracker.Period)
		interval, _ := model.ParseInterval(cfg.Tracker.Interval)
		sched := scheduler.NewScheduler(ctx, svc, tn, rec,
			cfg.Tracker.Contracts, period, interval, cfg.Tracker.DutyPercent)
		if err := sched.Register(cfg.Schedule.DailyCron); err != nil {
			log.Fatalf("[FATAL] register cron tasks: %v", err)
		}
		sched.Start()
		defer sched.Stop()

		go tn.StartPolling(ctx, sched.HandleCommand)
		log.Println("[INFO] Telegram polling started")

		if os.Getenv("RUN_ON_START") == "true" {
			log.Println("[INFO] RUN_ON_START enabled, executing daily task now")
			go sched.RunDailyNow()
		}
	}

	log.Println("[INFO] MCXTracker is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] MCXTracker stopped")
}
