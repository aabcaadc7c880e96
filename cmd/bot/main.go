package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/yuvaraja22/wordle-bot/internal/api"
	"github.com/yuvaraja22/wordle-bot/internal/bot"
	"github.com/yuvaraja22/wordle-bot/internal/bridge"
	"github.com/yuvaraja22/wordle-bot/internal/config"
	"github.com/yuvaraja22/wordle-bot/internal/db"
	"github.com/yuvaraja22/wordle-bot/internal/leetcode"
	"github.com/yuvaraja22/wordle-bot/internal/logger"
	"github.com/yuvaraja22/wordle-bot/internal/repository/sqlite"
	"github.com/yuvaraja22/wordle-bot/internal/scheduler"
	"github.com/yuvaraja22/wordle-bot/internal/services"
)

func main() {
	cfg := config.Load()

	// Initialize logger
	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("Wordle Bot Starting")
	log.Info("===========================================")

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration: %v", err)
		os.Exit(1)
	}
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("bridge_url=%s", cfg.BridgeURL)
	log.Debug("stats_group=%s", cfg.StatsGroupID)
	log.Debug("word_group=%s", cfg.WordGroupID)
	log.Debug("leetcode_user=%s", cfg.LeetCodeUser)
	log.Debug("timezone=%s", cfg.Timezone)
	log.Debug("log_level=%s", cfg.LogLevel)

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Error("invalid timezone %q: %v", cfg.Timezone, err)
		os.Exit(1)
	}

	// Open database
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	remoteTimeout := time.Duration(cfg.RemoteTimeout) * time.Second

	// Wire repositories, services and the bot
	scoreService := services.NewScoreService(sqlite.NewScoreRepository(database.DB))
	statsService := services.NewStatsService(sqlite.NewStatsRepository(database.DB), leetcode.New(remoteTimeout))
	wordService := services.NewWordService(sqlite.NewWordRepository(database.DB))
	transport := bridge.New(cfg.BridgeURL, cfg.BridgeToken, remoteTimeout)

	b := bot.New(scoreService, statsService, wordService, transport,
		cfg.LeetCodeUser, cfg.StatsGroupID, cfg.WordGroupID)

	srv := &api.Server{
		Bot:          b,
		DB:           database.DB,
		WebhookToken: cfg.WebhookToken,
	}

	sched, err := scheduler.New(b, loc)
	if err != nil {
		log.Error("failed to build scheduler: %v", err)
		os.Exit(1)
	}
	sched.Start()

	// Configure HTTP server
	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start HTTP server
	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Debug("stopping scheduler")
	sched.Stop()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	log.Info("===========================================")
	log.Info("Wordle Bot Stopped")
	log.Info("===========================================")
}
