package flows

import (
	"fmt"

	"github.com/maweber/james-bot/internal/domain/entity"
	"github.com/maweber/james-bot/internal/wizard"
)

type deleteGarbageState struct {
	events   []*entity.Event
	selected *entity.Event
}

// DeleteGarbage lists all stored collection dates on a numbered keyboard,
// asks for confirmation and deletes the picked one.
func (f *Flows) DeleteGarbage() *wizard.Wizard {
	return &wizard.Wizard{
		ID:       WizardDeleteGarbage,
		Title:    "Mülldatum löschen",
		NewState: func() any { return &deleteGarbageState{} },
		Steps: []wizard.Step{
			func(ctx *wizard.Context) error {
				state := ctx.State.(*deleteGarbageState)
				events, err := f.repo.GetAllGarbages()
				if err != nil {
					return err
				}
				if len(events) == 0 {
					ctx.Reply(NothingToDelete)
					ctx.Leave()
					return nil
				}
				state.events = events
				ctx.ReplyKeyboard("Folgende Mülldaten habe ich gespeichert, welches möchtest du löschen?", selectionKeyboard(events))
				ctx.Next()
				return nil
			},
			func(ctx *wizard.Context) error {
				state := ctx.State.(*deleteGarbageState)
				index, ok := parseSelection(ctx.Input, len(state.events))
				if !ok {
					ctx.ReplyKeyboard("Das habe ich nicht verstanden. Welches Mülldatum möchtest du löschen?", selectionKeyboard(state.events))
					ctx.Stay()
					return nil
				}
				state.selected = state.events[index]
				ctx.ReplyKeyboard(
					fmt.Sprintf("Sicher das du folgendes Mülldatum löschen willst: %s am %s?",
						state.selected.GarbageType, state.selected.Date),
					confirmKeyboard())
				ctx.Next()
				return nil
			},
			func(ctx *wizard.Context) error {
				state := ctx.State.(*deleteGarbageState)
				if err := f.repo.DeleteEvent(state.selected.EventID); err != nil {
					return err
				}
				ctx.Reply(fmt.Sprintf("Ich habe das Mülldatum %s am %s gelöscht",
					state.selected.GarbageType, state.selected.Date))
				ctx.Leave()
				return nil
			},
		},
	}
}
