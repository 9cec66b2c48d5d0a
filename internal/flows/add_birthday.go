package flows

import (
	"fmt"
	"strconv"

	"github.com/maweber/james-bot/internal/dates"
	"github.com/maweber/james-bot/internal/wizard"
)

type addBirthdayState struct {
	firstName  string
	secondName string
	month      dates.Month
}

// AddBirthday collects name, month and day, refuses exact duplicates and
// stores the birthday. The duplicate check and the insert are two separate
// store calls; concurrent identical submissions can race past the check.
func (f *Flows) AddBirthday() *wizard.Wizard {
	return &wizard.Wizard{
		ID:       WizardAddBirthday,
		Title:    "Geburtstag hinzufügen",
		NewState: func() any { return &addBirthdayState{} },
		Steps: []wizard.Step{
			func(ctx *wizard.Context) error {
				ctx.Reply("Wie heißt die Person, deren Geburstag du hinzufügen möchtest?")
				ctx.Next()
				return nil
			},
			func(ctx *wizard.Context) error {
				state := ctx.State.(*addBirthdayState)
				firstName, secondName, ok := splitName(ctx.Input)
				if !ok {
					ctx.Reply("Ich brauche einen Namen, erst Vorname, dann Nachname.")
					ctx.Stay()
					return nil
				}
				state.firstName = firstName
				state.secondName = secondName
				ctx.ReplyKeyboard("In welchem Monat hat sie Geburtstag?", monthKeyboard())
				ctx.Next()
				return nil
			},
			func(ctx *wizard.Context) error {
				state := ctx.State.(*addBirthdayState)
				month := dates.Month(ctx.Input)
				if _, err := dates.MonthNumber(month); err != nil {
					ctx.ReplyKeyboard("Den Monat kenne ich nicht. In welchem Monat hat sie Geburtstag?", monthKeyboard())
					ctx.Stay()
					return nil
				}
				state.month = month
				ctx.ReplyKeyboard("Und an welchem Tag?", dayOfMonthKeyboard())
				ctx.Next()
				return nil
			},
			func(ctx *wizard.Context) error {
				state := ctx.State.(*addBirthdayState)
				day, err := strconv.Atoi(ctx.Input)
				if err != nil || day < 1 || day > 31 {
					ctx.ReplyKeyboard("Das ist kein Tag. An welchem Tag hat sie Geburtstag?", dayOfMonthKeyboard())
					ctx.Stay()
					return nil
				}

				firstName := capitalize(state.firstName)
				secondName := capitalize(state.secondName)
				birthdayDate := fmt.Sprintf("%d. %s", day, state.month)

				isDuplicate, err := f.repo.BirthdayExists(firstName, secondName, day, state.month)
				if err != nil {
					return err
				}
				if isDuplicate {
					ctx.Reply(DuplicateReply)
					ctx.Leave()
					return nil
				}

				if err := f.repo.AddBirthday(firstName, secondName, day, state.month); err != nil {
					return err
				}
				ctx.Reply(fmt.Sprintf("Ich habe den Geburstag von %s %s am %s hinzugefügt", firstName, secondName, birthdayDate))
				ctx.Leave()
				return nil
			},
		},
	}
}
