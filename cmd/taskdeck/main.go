package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/taskdeck-dev/taskdeck/db"
	"github.com/taskdeck-dev/taskdeck/internal/auth"
	"github.com/taskdeck-dev/taskdeck/internal/config"
	"github.com/taskdeck-dev/taskdeck/internal/handlers"
	"github.com/taskdeck-dev/taskdeck/internal/reminders"
	"github.com/taskdeck-dev/taskdeck/internal/router"
	"github.com/taskdeck-dev/taskdeck/internal/services"
	"github.com/taskdeck-dev/taskdeck/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	cfg, err := config.Load()

	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	conn, err := db.ConnectDatabase(cfg.DatabaseURL)

	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.MigrateDatabase(conn); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	users := store.NewGormCredentialStore(conn)
	tasks := store.NewGormTaskStore(conn)

	hasher := auth.NewPasswordHasher(cfg.BcryptCost)
	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)

	authService := services.NewAuthService(users, hasher, tokens)
	taskService := services.NewTaskService(tasks)

	notifier := services.NewWebhookNotifier(cfg.DiscordWebhook, cfg.SlackWebhook)
	scanner := reminders.NewScanner(tasks, notifier, cfg.ReminderInterval, cfg.ReminderLead)
	scanner.Start()
	defer scanner.Stop()

	r := router.New(handlers.NewAuthHandler(authService), handlers.NewTaskHandler(taskService), tokens)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
