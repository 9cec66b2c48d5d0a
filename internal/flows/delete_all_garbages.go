package flows

import (
	"fmt"
	"log"

	"github.com/maweber/james-bot/internal/domain/entity"
	"github.com/maweber/james-bot/internal/wizard"
)

type deleteAllGarbagesState struct {
	events []*entity.Event
}

// DeleteAllGarbages deletes every stored collection date after a single
// confirmation, replying once per deleted date. Birthdays are untouched.
// There is no rollback; a failed delete is reported and the loop goes on.
func (f *Flows) DeleteAllGarbages() *wizard.Wizard {
	return &wizard.Wizard{
		ID:       WizardDeleteAllGarbages,
		Title:    "Alle Mülldaten löschen",
		NewState: func() any { return &deleteAllGarbagesState{} },
		Steps: []wizard.Step{
			func(ctx *wizard.Context) error {
				state := ctx.State.(*deleteAllGarbagesState)
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
				ctx.ReplyKeyboard(
					fmt.Sprintf("Bist du sicher, dass du alle %d Mülldaten löschen möchtest?", len(events)),
					confirmKeyboard())
				ctx.Next()
				return nil
			},
			func(ctx *wizard.Context) error {
				state := ctx.State.(*deleteAllGarbagesState)
				for _, event := range state.events {
					if err := f.repo.DeleteEvent(event.EventID); err != nil {
						log.Printf("delete all garbages: deleting event %s: %v", event.EventID, err)
						ctx.Reply("Beim Löschen ist etwas fehlgeschlagen.")
						continue
					}
					ctx.Reply(fmt.Sprintf("Mülldatum am %s gelöscht.", event.Date))
				}
				ctx.Leave()
				return nil
			},
		},
	}
}
