package flows

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/maweber/james-bot/internal/dates"
	"github.com/maweber/james-bot/internal/domain"
	"github.com/maweber/james-bot/internal/wizard"
)

type addPeriodicGarbageState struct {
	garbageType domain.GarbageType
	month       dates.Month
	day         int
}

// AddPeriodicGarbage collects bin color, a start date and a period in days,
// then stores every generated date until the end of the nominal year.
// Unlike AddGarbage there is no duplicate check for the generated series.
func (f *Flows) AddPeriodicGarbage() *wizard.Wizard {
	return &wizard.Wizard{
		ID:       WizardAddPeriodicGarbage,
		Title:    "Periodisches Mülldatum hinzufügen",
		NewState: func() any { return &addPeriodicGarbageState{} },
		Steps: []wizard.Step{
			func(ctx *wizard.Context) error {
				ctx.ReplyKeyboard("Für welche Müllfarbe möchtest du ein periodisches Mülldatum hinzufügen?", garbageColorKeyboard())
				ctx.Next()
				return nil
			},
			func(ctx *wizard.Context) error {
				state := ctx.State.(*addPeriodicGarbageState)
				garbageType, ok := parseGarbageType(ctx.Input)
				if !ok {
					ctx.ReplyKeyboard("Die Farbe kenne ich nicht. Für welche Müllfarbe?", garbageColorKeyboard())
					ctx.Stay()
					return nil
				}
				state.garbageType = garbageType
				ctx.ReplyKeyboard("In welchem Monat findet der erste Mülltermin statt?", monthKeyboard())
				ctx.Next()
				return nil
			},
			func(ctx *wizard.Context) error {
				state := ctx.State.(*addPeriodicGarbageState)
				month := dates.Month(ctx.Input)
				if _, err := dates.MonthNumber(month); err != nil {
					ctx.ReplyKeyboard("Den Monat kenne ich nicht. In welchem Monat findet der erste Mülltermin statt?", monthKeyboard())
					ctx.Stay()
					return nil
				}
				state.month = month
				ctx.ReplyKeyboard("Und an welchem Tag findet der erste Mülltermin statt?", dayOfMonthKeyboard())
				ctx.Next()
				return nil
			},
			func(ctx *wizard.Context) error {
				state := ctx.State.(*addPeriodicGarbageState)
				day, err := strconv.Atoi(ctx.Input)
				if err != nil || day < 1 || day > 31 {
					ctx.ReplyKeyboard("Das ist kein Tag. An welchem Tag findet der erste Mülltermin statt?", dayOfMonthKeyboard())
					ctx.Stay()
					return nil
				}
				state.day = day
				ctx.ReplyKeyboard("In welchem Tagesabstand finden die Mülltermine statt?", periodKeyboard())
				ctx.Next()
				return nil
			},
			func(ctx *wizard.Context) error {
				state := ctx.State.(*addPeriodicGarbageState)
				period, err := strconv.Atoi(ctx.Input)
				if err != nil || period < 1 {
					ctx.ReplyKeyboard("Das ist kein Tagesabstand. In welchem Tagesabstand?", periodKeyboard())
					ctx.Stay()
					return nil
				}

				series := dates.PeriodicSeries(state.day, state.month, period)
				formatted := make([]string, 0, len(series))
				for _, date := range series {
					if err := f.repo.AddGarbage(state.garbageType, date.Day, date.Month); err != nil {
						return err
					}
					formatted = append(formatted, date.String())
				}

				ctx.Reply(fmt.Sprintf("Ich habe folgende Mülldaten hinzugefügt: %s", strings.Join(formatted, ", ")))
				ctx.Leave()
				return nil
			},
		},
	}
}
