package flows

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/maweber/james-bot/internal/dates"
	"github.com/maweber/james-bot/internal/domain"
	"github.com/maweber/james-bot/internal/domain/entity"
	"github.com/maweber/james-bot/internal/wizard"
)

// ShowNextGarbages asks for a horizon in days and lists every stored
// collection date whose distance from today is at most the horizon.
// Negative distances (earlier this month) pass the filter as well, so the
// listing can include dates already gone.
func (f *Flows) ShowNextGarbages() *wizard.Wizard {
	return &wizard.Wizard{
		ID:    WizardShowNextGarbages,
		Title: "Mülldaten anzeigen",
		Steps: []wizard.Step{
			func(ctx *wizard.Context) error {
				ctx.ReplyKeyboard("Für wie viele Tage willst du die Mülldaten angezeigt bekommen?", horizonKeyboard())
				ctx.Next()
				return nil
			},
			func(ctx *wizard.Context) error {
				numberOfDays, err := strconv.Atoi(ctx.Input)
				if err != nil || numberOfDays < 0 {
					ctx.ReplyKeyboard("Das ist keine Anzahl an Tagen. Für wie viele Tage?", horizonKeyboard())
					ctx.Stay()
					return nil
				}

				items, err := f.repo.GetAllGarbages()
				if err != nil {
					return err
				}

				today := dates.DateOf(f.now())
				matching := make([]*entity.Event, 0, len(items))
				for _, item := range items {
					day, monthNum, err := dates.ParseDate(item.Date)
					if err != nil {
						continue
					}
					month, _ := dates.MonthName(monthNum)
					distance := dates.DaysBetween(today.Day, today.Month, day, month)
					if distance <= numberOfDays {
						matching = append(matching, item)
					}
				}

				var answer strings.Builder
				fmt.Fprintf(&answer, "Folgende Mülldaten gibt es in den nächsten %d Tagen:\n\n", numberOfDays)
				for _, item := range matching {
					fmt.Fprintf(&answer, "%s %s am %s\n",
						domain.GarbageDescription(item.GarbageType),
						domain.GarbageEmoji(item.GarbageType),
						item.Date)
				}
				ctx.Reply(answer.String())
				ctx.Leave()
				return nil
			},
		},
	}
}
