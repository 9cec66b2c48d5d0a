package flows

import (
	"fmt"

	"github.com/maweber/james-bot/internal/domain/entity"
	"github.com/maweber/james-bot/internal/wizard"
)

type deleteBirthdayState struct {
	events   []*entity.Event
	selected *entity.Event
}

// DeleteBirthday lists all stored birthdays on a numbered keyboard, asks
// for confirmation and deletes the picked one.
func (f *Flows) DeleteBirthday() *wizard.Wizard {
	return &wizard.Wizard{
		ID:       WizardDeleteBirthday,
		Title:    "Geburtstag entfernen",
		NewState: func() any { return &deleteBirthdayState{} },
		Steps: []wizard.Step{
			func(ctx *wizard.Context) error {
				state := ctx.State.(*deleteBirthdayState)
				events, err := f.repo.GetAllBirthdays()
				if err != nil {
					return err
				}
				if len(events) == 0 {
					ctx.Reply(NothingToDelete)
					ctx.Leave()
					return nil
				}
				state.events = events
				ctx.ReplyKeyboard("Folgende Geburtstage habe ich gespeichert, welchen möchtest du löschen?", selectionKeyboard(events))
				ctx.Next()
				return nil
			},
			func(ctx *wizard.Context) error {
				state := ctx.State.(*deleteBirthdayState)
				index, ok := parseSelection(ctx.Input, len(state.events))
				if !ok {
					ctx.ReplyKeyboard("Das habe ich nicht verstanden. Welchen Geburtstag möchtest du löschen?", selectionKeyboard(state.events))
					ctx.Stay()
					return nil
				}
				state.selected = state.events[index]
				ctx.ReplyKeyboard(
					fmt.Sprintf("Sicher das du folgenden Geburtstag löschen willst: %s %s am %s?",
						state.selected.FirstName, state.selected.SecondName, state.selected.Date),
					confirmKeyboard())
				ctx.Next()
				return nil
			},
			func(ctx *wizard.Context) error {
				state := ctx.State.(*deleteBirthdayState)
				if err := f.repo.DeleteEvent(state.selected.EventID); err != nil {
					return err
				}
				ctx.Reply(fmt.Sprintf("Ich habe den Geburtstag von %s %s am %s gelöscht",
					state.selected.FirstName, state.selected.SecondName, state.selected.Date))
				ctx.Leave()
				return nil
			},
		},
	}
}
