// Package events implements the event store on top of the raw table
// boundary: it builds scan filters, drives the pagination loop and keeps
// the result ordering callers expect.
package events

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/maweber/james-bot/internal/dates"
	"github.com/maweber/james-bot/internal/domain"
	"github.com/maweber/james-bot/internal/domain/contract"
	"github.com/maweber/james-bot/internal/domain/entity"
)

type eventRepo struct {
	table contract.TableClient
}

// NewRepo returns an EventRepo backed by the given table client.
func NewRepo(table contract.TableClient) contract.EventRepo {
	return &eventRepo{table: table}
}

func (r *eventRepo) AddBirthday(firstName, secondName string, day int, month dates.Month) error {
	monthNum, err := dates.MonthNumber(month)
	if err != nil {
		return err
	}

	event := &entity.Event{
		EventID:    uuid.NewString(),
		EventType:  domain.EventTypeBirthday,
		Date:       dates.FormatDate(day, monthNum),
		FirstName:  firstName,
		SecondName: secondName,
	}

	if err := r.table.Put(event); err != nil {
		return fmt.Errorf("failed to add birthday: %w", err)
	}
	return nil
}

func (r *eventRepo) AddGarbage(garbageType domain.GarbageType, day int, month dates.Month) error {
	monthNum, err := dates.MonthNumber(month)
	if err != nil {
		return err
	}

	event := &entity.Event{
		EventID:     uuid.NewString(),
		EventType:   domain.EventTypeGarbage,
		Date:        dates.FormatDate(day, monthNum),
		GarbageType: garbageType,
	}

	if err := r.table.Put(event); err != nil {
		return fmt.Errorf("failed to add garbage date: %w", err)
	}
	return nil
}

func (r *eventRepo) DeleteEvent(eventID string) error {
	if err := r.table.Delete(eventID); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}

func (r *eventRepo) BirthdayExists(firstName, secondName string, day int, month dates.Month) (bool, error) {
	monthNum, err := dates.MonthNumber(month)
	if err != nil {
		return false, err
	}

	matches, err := r.scanAll(contract.ScanFilter{
		Equals: map[string]string{
			"event_type":  string(domain.EventTypeBirthday),
			"date":        dates.FormatDate(day, monthNum),
			"first_name":  firstName,
			"second_name": secondName,
		},
	})
	if err != nil {
		return false, err
	}
	return len(matches) > 0, nil
}

func (r *eventRepo) GarbageDateExists(garbageType domain.GarbageType, day int, month dates.Month) (bool, error) {
	monthNum, err := dates.MonthNumber(month)
	if err != nil {
		return false, err
	}

	matches, err := r.scanAll(contract.ScanFilter{
		Equals: map[string]string{
			"event_type":   string(domain.EventTypeGarbage),
			"date":         dates.FormatDate(day, monthNum),
			"garbage_type": string(garbageType),
		},
	})
	if err != nil {
		return false, err
	}
	return len(matches) > 0, nil
}

func (r *eventRepo) GetAllBirthdays() ([]*entity.Event, error) {
	return r.allOfType(domain.EventTypeBirthday)
}

func (r *eventRepo) GetAllGarbages() ([]*entity.Event, error) {
	return r.allOfType(domain.EventTypeGarbage)
}

func (r *eventRepo) GetBirthdaysForDate(date dates.Date) ([]*entity.Event, error) {
	return r.ofTypeForDate(domain.EventTypeBirthday, date)
}

func (r *eventRepo) GetGarbagesForDate(date dates.Date) ([]*entity.Event, error) {
	return r.ofTypeForDate(domain.EventTypeGarbage, date)
}

func (r *eventRepo) GetBirthdaysInNextDays(from dates.Date, n int) ([]*entity.Event, error) {
	return r.ofTypeInNextDays(domain.EventTypeBirthday, from, n)
}

func (r *eventRepo) GetGarbagesInNextDays(from dates.Date, n int) ([]*entity.Event, error) {
	return r.ofTypeInNextDays(domain.EventTypeGarbage, from, n)
}

func (r *eventRepo) allOfType(eventType domain.EventType) ([]*entity.Event, error) {
	return r.scanAll(contract.ScanFilter{
		Equals: map[string]string{"event_type": string(eventType)},
	})
}

func (r *eventRepo) ofTypeForDate(eventType domain.EventType, date dates.Date) ([]*entity.Event, error) {
	monthNum, err := dates.MonthNumber(date.Month)
	if err != nil {
		return nil, err
	}

	return r.scanAll(contract.ScanFilter{
		Equals: map[string]string{
			"event_type": string(eventType),
			"date":       dates.FormatDate(date.Day, monthNum),
		},
	})
}

// ofTypeInNextDays enumerates the n+1 calendar days starting at from and
// matches the date column against them. The store allows at most
// MaxValuesPerInGroup literals per IN group, so longer horizons are split
// into several OR'd groups.
func (r *eventRepo) ofTypeInNextDays(eventType domain.EventType, from dates.Date, n int) ([]*entity.Event, error) {
	monthNum, err := dates.MonthNumber(from.Month)
	if err != nil {
		return nil, err
	}

	start := dates.FormatDate(from.Day, monthNum)
	days := make([]string, 0, n+1)
	for offset := 0; offset <= n; offset++ {
		days = append(days, dates.AddDays(start, offset))
	}

	var groups []contract.InGroup
	for len(days) > 0 {
		size := len(days)
		if size > contract.MaxValuesPerInGroup {
			size = contract.MaxValuesPerInGroup
		}
		groups = append(groups, contract.InGroup{Field: "date", Values: days[:size]})
		days = days[size:]
	}

	return r.scanAll(contract.ScanFilter{
		Equals: map[string]string{"event_type": string(eventType)},
		AnyOf:  groups,
	})
}

// scanAll pages through the table until the continuation token runs out and
// returns the union of all pages sorted by (month, day).
func (r *eventRepo) scanAll(filter contract.ScanFilter) ([]*entity.Event, error) {
	var all []*entity.Event
	token := ""

	for {
		page, err := r.table.Scan(filter, token)
		if err != nil {
			return nil, fmt.Errorf("failed to scan events: %w", err)
		}
		all = append(all, page.Items...)
		if page.NextToken == "" {
			break
		}
		token = page.NextToken
	}

	sortByDate(all)
	return all, nil
}

// sortByDate orders events ascending by month, then day. This is plain
// calendar order, not distance from today: a December event always sorts
// after a January one even when December is sooner.
func sortByDate(items []*entity.Event) {
	sort.SliceStable(items, func(i, j int) bool {
		dayI, monthI, _ := dates.ParseDate(items[i].Date)
		dayJ, monthJ, _ := dates.ParseDate(items[j].Date)
		if monthI != monthJ {
			return monthI < monthJ
		}
		return dayI < dayJ
	})
}
