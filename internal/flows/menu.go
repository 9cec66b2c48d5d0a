package flows

import (
	"github.com/maweber/james-bot/internal/domain"
	"github.com/maweber/james-bot/internal/wizard"
)

// menu builds a two-step wizard that lists the option titles of the given
// flows and enters whichever one the user picks.
func menu(id, prompt string, options []*wizard.Wizard) *wizard.Wizard {
	keyboard := make([][]string, 0, len(options)+1)
	for _, w := range options {
		keyboard = append(keyboard, []string{w.Title})
	}
	keyboard = append(keyboard, []string{domain.CancelWord})

	byTitle := make(map[string]string, len(options))
	for _, w := range options {
		byTitle[w.Title] = w.ID
	}

	return &wizard.Wizard{
		ID: id,
		Steps: []wizard.Step{
			func(ctx *wizard.Context) error {
				ctx.ReplyKeyboard(prompt, keyboard)
				ctx.Next()
				return nil
			},
			func(ctx *wizard.Context) error {
				wizardID, ok := byTitle[ctx.Input]
				if !ok {
					ctx.ReplyKeyboard(prompt, keyboard)
					ctx.Stay()
					return nil
				}
				ctx.Enter(wizardID)
				return nil
			},
		},
	}
}
