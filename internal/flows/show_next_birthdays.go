package flows

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/maweber/james-bot/internal/dates"
	"github.com/maweber/james-bot/internal/domain/entity"
	"github.com/maweber/james-bot/internal/wizard"
)

// ShowNextBirthdays asks for a horizon in days and lists every stored
// birthday whose distance from today falls inside [0, horizon]. The
// matching garbage flow accepts negative distances too; this one does not.
func (f *Flows) ShowNextBirthdays() *wizard.Wizard {
	return &wizard.Wizard{
		ID:    WizardShowNextBirthdays,
		Title: "Geburtstage anzeigen",
		Steps: []wizard.Step{
			func(ctx *wizard.Context) error {
				ctx.ReplyKeyboard("Für wie viele Tage willst du die Geburtstage angezeigt bekommen?", horizonKeyboard())
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

				items, err := f.repo.GetAllBirthdays()
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
					if distance >= 0 && distance <= numberOfDays {
						matching = append(matching, item)
					}
				}

				var answer strings.Builder
				fmt.Fprintf(&answer, "Folgende Personen haben in den nächsten %d Tagen Geburstag:\n\n", numberOfDays)
				for _, item := range matching {
					fmt.Fprintf(&answer, "%s %s am %s\n", item.FirstName, item.SecondName, item.Date)
				}
				ctx.Reply(answer.String())
				ctx.Leave()
				return nil
			},
		},
	}
}
