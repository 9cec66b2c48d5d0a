package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	BotToken             string
	MaChatID             int64
	JoChatID             int64
	DatabasePath         string
	BirthdayReminderCron string
	GarbageReminderCron  string
	Port                 string
}

func Load() *Config {
	return &Config{
		BotToken:             getEnv("BOT_TOKEN", ""),
		MaChatID:             getEnvInt64("MA_CHAT_ID", 0),
		JoChatID:             getEnvInt64("JO_CHAT_ID", 0),
		DatabasePath:         getEnv("DATABASE_PATH", "./james.db"),
		BirthdayReminderCron: getEnv("BIRTHDAY_REMINDER_CRON", "0 8 * * *"),
		GarbageReminderCron:  getEnv("GARBAGE_REMINDER_CRON", "0 18 * * *"),
		Port:                 getEnv("PORT", "3000"),
	}
}

// ChatIDs returns the two allowed chat IDs, skipping unset ones.
func (c *Config) ChatIDs() []int64 {
	ids := make([]int64, 0, 2)
	for _, id := range []int64{c.MaChatID, c.JoChatID} {
		if id != 0 {
			ids = append(ids, id)
		}
	}
	return ids
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		log.Printf("Warning: %s is not a number, ignoring it", key)
		return defaultValue
	}
	return parsed
}
