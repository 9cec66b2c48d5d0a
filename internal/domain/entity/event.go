package entity

import (
	"fmt"

	"github.com/maweber/james-bot/internal/domain"
)

// Event is one persisted record: either a birthday or a garbage collection
// date. The Date field holds a "<day>-<month>" string without leading zeros
// and without a year; that exact format is what every filter predicate
// matches against, so it must never change.
type Event struct {
	EventID     string             `db:"event_id"`
	EventType   domain.EventType   `db:"event_type"`
	Date        string             `db:"date"`
	FirstName   string             `db:"first_name"`
	SecondName  string             `db:"second_name"`
	GarbageType domain.GarbageType `db:"garbage_type"`
}

// Description renders the event the way listings and keyboards show it.
func (e *Event) Description() string {
	if e.EventType == domain.EventTypeBirthday {
		return fmt.Sprintf("%s %s am %s", e.FirstName, e.SecondName, e.Date)
	}
	return fmt.Sprintf("%s am %s", e.GarbageType, e.Date)
}
