// Package flows defines the concrete wizards: adding, listing and deleting
// birthdays and garbage dates, plus the two option menus that launch them.
package flows

import (
	"strings"
	"time"
	"unicode"

	"github.com/maweber/james-bot/internal/domain/contract"
	"github.com/maweber/james-bot/internal/wizard"
)

// Wizard IDs. The menus reference flows by these.
const (
	WizardAddBirthday        = "AddBirthday"
	WizardShowNextBirthdays  = "ShowNextBirthdays"
	WizardDeleteBirthday     = "DeleteBirthday"
	WizardAddGarbage         = "AddGarbage"
	WizardAddPeriodicGarbage = "AddPeriodicGarbage"
	WizardShowNextGarbages   = "ShowNextGarbages"
	WizardDeleteGarbage      = "DeleteGarbage"
	WizardDeleteAllGarbages  = "DeleteAllGarbages"
	WizardBirthdayMenu       = "BirthdayMenu"
	WizardGarbageMenu        = "GarbageMenu"
)

// Shared user-facing texts.
const (
	ErrorReply      = "Oh nein, da ist was schiefgelaufen..."
	DuplicateReply  = "Danke, aber diesen Eintrag habe ich bereits. Versuch's nochmal :)"
	NothingToDelete = "Es gibt nichts zu löschen."
)

// Flows builds every wizard against one event repo. The clock is a field
// so tests can pin "today".
type Flows struct {
	repo contract.EventRepo
	now  func() time.Time
}

func New(repo contract.EventRepo) *Flows {
	return &Flows{
		repo: repo,
		now:  time.Now,
	}
}

// RegisterAll registers all wizards, including the two menus, on the engine.
func (f *Flows) RegisterAll(engine *wizard.Engine) {
	garbageFlows := []*wizard.Wizard{
		f.AddGarbage(),
		f.AddPeriodicGarbage(),
		f.ShowNextGarbages(),
		f.DeleteGarbage(),
		f.DeleteAllGarbages(),
	}
	birthdayFlows := []*wizard.Wizard{
		f.AddBirthday(),
		f.ShowNextBirthdays(),
		f.DeleteBirthday(),
	}

	for _, w := range garbageFlows {
		engine.Register(w)
	}
	for _, w := range birthdayFlows {
		engine.Register(w)
	}

	engine.Register(menu(WizardGarbageMenu, "Müll also. Was willst du tun?", garbageFlows))
	engine.Register(menu(WizardBirthdayMenu, "Geburtstage also. Was willst du tun?", birthdayFlows))
}

// capitalize upper-cases the first rune, leaving the rest untouched.
func capitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// splitName splits free-text input into first name and the joined rest.
func splitName(input string) (firstName, secondName string, ok bool) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return "", "", false
	}
	return fields[0], strings.Join(fields[1:], " "), true
}
