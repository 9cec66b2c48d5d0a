package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/maweber/james-bot/internal/auth"
	"github.com/maweber/james-bot/internal/config"
	"github.com/maweber/james-bot/internal/database"
	"github.com/maweber/james-bot/internal/events"
	"github.com/maweber/james-bot/internal/flows"
	"github.com/maweber/james-bot/internal/handlers"
	"github.com/maweber/james-bot/internal/reminder"
	"github.com/maweber/james-bot/internal/telegram"
	"github.com/maweber/james-bot/internal/wizard"
	"github.com/maweber/james-bot/migrator/sqlite"
	"github.com/robfig/cron/v3"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := config.Load()
	if cfg.BotToken == "" {
		log.Fatal("BOT_TOKEN must be defined!")
	}

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Println("Running migrations...")
	if err := sqlite.Migrate(db.DB()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	repo := events.NewRepo(database.NewTableClient(db))
	checker := auth.New(cfg.ChatIDs())

	chat, err := telegram.New(cfg.BotToken)
	if err != nil {
		log.Fatalf("Failed to create telegram client: %v", err)
	}

	engine := wizard.NewEngine(flows.ErrorReply)
	flows.New(repo).RegisterAll(engine)

	handler := handlers.New(engine, checker, chat,
		&handlers.ShowNextBirthdaysCommand{Repo: repo, Now: time.Now},
		&handlers.ShowNextGarbagesCommand{Repo: repo, Now: time.Now},
	)

	reminders := reminder.New(repo, chat, checker.ChatIDs())
	sched := cron.New()
	if _, err := sched.AddFunc(cfg.BirthdayReminderCron, reminders.SendBirthdayReminders); err != nil {
		log.Fatalf("Invalid birthday reminder schedule %q: %v", cfg.BirthdayReminderCron, err)
	}
	if _, err := sched.AddFunc(cfg.GarbageReminderCron, reminders.SendGarbageReminders); err != nil {
		log.Fatalf("Invalid garbage reminder schedule %q: %v", cfg.GarbageReminderCron, err)
	}
	sched.Start()
	defer sched.Stop()

	go func() {
		http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			fmt.Fprintf(w, "OK")
		})
		log.Printf("Health endpoint on port %s", cfg.Port)
		if err := http.ListenAndServe(":"+cfg.Port, nil); err != nil {
			log.Fatalf("Failed to start health endpoint: %v", err)
		}
	}()

	chat.Poll(handler)
}
