package contract

import (
	"github.com/maweber/james-bot/internal/dates"
	"github.com/maweber/james-bot/internal/domain"
	"github.com/maweber/james-bot/internal/domain/entity"
)

// EventRepo defines the contract for the event store. All list results are
// complete (pagination is handled internally) and sorted ascending by
// (month, day).
type EventRepo interface {
	AddBirthday(firstName, secondName string, day int, month dates.Month) error
	AddGarbage(garbageType domain.GarbageType, day int, month dates.Month) error
	DeleteEvent(eventID string) error

	BirthdayExists(firstName, secondName string, day int, month dates.Month) (bool, error)
	GarbageDateExists(garbageType domain.GarbageType, day int, month dates.Month) (bool, error)

	GetAllBirthdays() ([]*entity.Event, error)
	GetAllGarbages() ([]*entity.Event, error)
	GetBirthdaysForDate(date dates.Date) ([]*entity.Event, error)
	GetGarbagesForDate(date dates.Date) ([]*entity.Event, error)

	// GetBirthdaysInNextDays and GetGarbagesInNextDays match events whose
	// date equals any of the n+1 calendar days starting at from, querying
	// the store with batched IN groups.
	GetBirthdaysInNextDays(from dates.Date, n int) ([]*entity.Event, error)
	GetGarbagesInNextDays(from dates.Date, n int) ([]*entity.Event, error)
}
