// Package reminder implements the two daily jobs: birthday congratulations
// for today and garbage reminders for tomorrow, fanned out to every allowed
// chat.
package reminder

import (
	"fmt"
	"log"
	"time"

	"github.com/maweber/james-bot/internal/dates"
	"github.com/maweber/james-bot/internal/domain"
	"github.com/maweber/james-bot/internal/domain/contract"
	"github.com/maweber/james-bot/internal/domain/entity"
)

type Reminder struct {
	repo    contract.EventRepo
	chat    contract.ChatClient
	chatIDs []int64
	now     func() time.Time
}

func New(repo contract.EventRepo, chat contract.ChatClient, chatIDs []int64) *Reminder {
	return &Reminder{
		repo:    repo,
		chat:    chat,
		chatIDs: chatIDs,
		now:     time.Now,
	}
}

// SendBirthdayReminders notifies every allowed chat about each birthday
// falling on today's date.
func (r *Reminder) SendBirthdayReminders() {
	today := dates.DateOf(r.now())
	birthdays, err := r.repo.GetBirthdaysForDate(today)
	if err != nil {
		log.Printf("Birthday reminder: scanning for %s failed: %v", today, err)
		return
	}
	log.Printf("Birthday reminder: %d birthday(s) on %s", len(birthdays), today)
	r.fanOut(birthdays, birthdayMessage)
}

// SendGarbageReminders notifies every allowed chat about each collection
// date falling on tomorrow's date, so the bin goes out the evening before.
func (r *Reminder) SendGarbageReminders() {
	tomorrow := dates.DateOf(r.now().AddDate(0, 0, 1))
	garbages, err := r.repo.GetGarbagesForDate(tomorrow)
	if err != nil {
		log.Printf("Garbage reminder: scanning for %s failed: %v", tomorrow, err)
		return
	}
	log.Printf("Garbage reminder: %d collection date(s) on %s", len(garbages), tomorrow)
	r.fanOut(garbages, garbageMessage)
}

// fanOut sends one message per event and chat. A failed send is logged and
// the loop moves on.
func (r *Reminder) fanOut(events []*entity.Event, message func(*entity.Event) string) {
	for _, event := range events {
		for _, chatID := range r.chatIDs {
			if err := r.chat.SendMessage(chatID, message(event)); err != nil {
				log.Printf("Reminder for chat %d failed: %v", chatID, err)
				continue
			}
			log.Printf("Chat %d wurde informiert.", chatID)
		}
	}
}

func birthdayMessage(event *entity.Event) string {
	return fmt.Sprintf("Heute hat %s %s Geburtstag!\nVergiss nicht zu gratulieren 🎁",
		event.FirstName, event.SecondName)
}

func garbageMessage(event *entity.Event) string {
	return fmt.Sprintf("Morgen wird %s geholt! Denk dran, die Tonne %s rauszustellen. Wuff!",
		domain.GarbageDescription(event.GarbageType), domain.GarbageEmoji(event.GarbageType))
}
