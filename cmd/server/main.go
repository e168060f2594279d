package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"github.com/shufflegram/backend/internal/bot"
	"github.com/shufflegram/backend/internal/engine"
	"github.com/shufflegram/backend/internal/repositories"
	"github.com/shufflegram/backend/internal/router"
	"github.com/shufflegram/backend/pkg/config"
)

const (
	fanOutWorkers   = 8
	fanOutPerSecond = 25 // stays under the Telegram broadcast rate cap
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database connections
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize databases: %v", err)
	}
	defer db.CloseDB()

	// Ledger repositories
	mongoDB := db.Mongo.Database("shufflegram")
	userRepo := repositories.NewMongoUserRepository(mongoDB)
	postRepo := repositories.NewMongoPostRepository(mongoDB)
	settingsRepo := repositories.NewMongoSettingsRepository(mongoDB)
	notificationRepo := repositories.NewPostgresNotificationRepository(db.Postgres)

	// Telegram transport
	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		log.Fatalf("Failed to connect to Telegram: %v", err)
	}

	// Engine with async fan-out through the Telegram deliverer
	deliverer := bot.NewTelegramDeliverer(api)
	fanout := engine.NewFanOut(deliverer, notificationRepo, fanOutWorkers, rate.Limit(fanOutPerSecond))
	eng := engine.New(userRepo, postRepo, settingsRepo, fanout, cfg.RootAdminID)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Update dispatcher: single goroutine, events handled one at a time
	dispatcher := bot.NewDispatcher(api, eng)
	go dispatcher.Run(ctx)

	// Admin and health HTTP surface
	e := echo.New()
	router.SetupMiddleware(e)
	router.SetupRoutes(e, db.Postgres, eng, notificationRepo, cfg)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP shutdown: %v", err)
	}

	// Let queued notifications drain before closing the databases.
	fanout.Flush()
}
