package flows

import (
	"fmt"
	"strconv"

	"github.com/maweber/james-bot/internal/dates"
	"github.com/maweber/james-bot/internal/domain"
	"github.com/maweber/james-bot/internal/wizard"
)

type addGarbageState struct {
	garbageType domain.GarbageType
	month       dates.Month
}

// AddGarbage collects bin color, month and day, refuses exact duplicates
// and stores a single collection date.
func (f *Flows) AddGarbage() *wizard.Wizard {
	return &wizard.Wizard{
		ID:       WizardAddGarbage,
		Title:    "Mülldatum hinzufügen",
		NewState: func() any { return &addGarbageState{} },
		Steps: []wizard.Step{
			func(ctx *wizard.Context) error {
				ctx.ReplyKeyboard("Für welche Müllfarbe möchtest du ein Mülldatum hinzufügen?", garbageColorKeyboard())
				ctx.Next()
				return nil
			},
			func(ctx *wizard.Context) error {
				state := ctx.State.(*addGarbageState)
				garbageType, ok := parseGarbageType(ctx.Input)
				if !ok {
					ctx.ReplyKeyboard("Die Farbe kenne ich nicht. Für welche Müllfarbe?", garbageColorKeyboard())
					ctx.Stay()
					return nil
				}
				state.garbageType = garbageType
				ctx.ReplyKeyboard("In welchem Monat?", monthKeyboard())
				ctx.Next()
				return nil
			},
			func(ctx *wizard.Context) error {
				state := ctx.State.(*addGarbageState)
				month := dates.Month(ctx.Input)
				if _, err := dates.MonthNumber(month); err != nil {
					ctx.ReplyKeyboard("Den Monat kenne ich nicht. In welchem Monat?", monthKeyboard())
					ctx.Stay()
					return nil
				}
				state.month = month
				ctx.ReplyKeyboard("Und an welchem Tag?", dayOfMonthKeyboard())
				ctx.Next()
				return nil
			},
			func(ctx *wizard.Context) error {
				state := ctx.State.(*addGarbageState)
				day, err := strconv.Atoi(ctx.Input)
				if err != nil || day < 1 || day > 31 {
					ctx.ReplyKeyboard("Das ist kein Tag. An welchem Tag?", dayOfMonthKeyboard())
					ctx.Stay()
					return nil
				}

				monthNum, _ := dates.MonthNumber(state.month)
				garbageDate := dates.FormatDate(day, monthNum)

				isDuplicate, err := f.repo.GarbageDateExists(state.garbageType, day, state.month)
				if err != nil {
					return err
				}
				if isDuplicate {
					ctx.Reply(DuplicateReply)
					ctx.Leave()
					return nil
				}

				if err := f.repo.AddGarbage(state.garbageType, day, state.month); err != nil {
					return err
				}
				ctx.Reply(fmt.Sprintf("Ich habe einen Mülltermin (%s) am %s hinzugefügt", state.garbageType, garbageDate))
				ctx.Leave()
				return nil
			},
		},
	}
}

func parseGarbageType(input string) (domain.GarbageType, bool) {
	for _, t := range domain.GarbageTypes {
		if string(t) == input {
			return t, true
		}
	}
	return "", false
}
