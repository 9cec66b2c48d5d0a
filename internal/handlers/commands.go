package handlers

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/maweber/james-bot/internal/dates"
	"github.com/maweber/james-bot/internal/domain"
	"github.com/maweber/james-bot/internal/domain/contract"
	"github.com/maweber/james-bot/internal/flows"
)

// Command is a one-shot slash command. Execute always returns the full
// reply text; store failures are logged and answered with the apology.
type Command interface {
	Name() string
	Description() string
	UseExample() string
	Execute(args []string) string
}

// ShowNextBirthdaysCommand answers "/ShowNextBirthdays <n>" by querying
// the store for the next n calendar days directly, instead of fetching
// everything and filtering like the wizard does.
type ShowNextBirthdaysCommand struct {
	Repo contract.EventRepo
	Now  func() time.Time
}

func (c *ShowNextBirthdaysCommand) Name() string { return "ShowNextBirthdays" }

func (c *ShowNextBirthdaysCommand) Description() string {
	return "Geburtstage in den nächsten n Tagen anzeigen."
}

func (c *ShowNextBirthdaysCommand) UseExample() string { return "/ShowNextBirthdays 17" }

func (c *ShowNextBirthdaysCommand) Execute(args []string) string {
	numberOfDays, errMessage := parseHorizonArg(args, "Geburtstagen")
	if errMessage != "" {
		return errMessage
	}

	items, err := c.Repo.GetBirthdaysInNextDays(dates.DateOf(c.Now()), numberOfDays)
	if err != nil {
		log.Printf("show next birthdays command: %v", err)
		return flows.ErrorReply
	}

	var answer strings.Builder
	fmt.Fprintf(&answer, "Folgende Personen haben in den nächsten %d Tagen Geburstag:\n", numberOfDays)
	for _, item := range items {
		fmt.Fprintf(&answer, "%s %s am %s\n", item.FirstName, item.SecondName, item.Date)
	}
	return answer.String()
}

// ShowNextGarbagesCommand answers "/ShowNextGarbages <n>" the same way.
type ShowNextGarbagesCommand struct {
	Repo contract.EventRepo
	Now  func() time.Time
}

func (c *ShowNextGarbagesCommand) Name() string { return "ShowNextGarbages" }

func (c *ShowNextGarbagesCommand) Description() string {
	return "Mülldaten in den nächsten n Tagen anzeigen."
}

func (c *ShowNextGarbagesCommand) UseExample() string { return "/ShowNextGarbages 14" }

func (c *ShowNextGarbagesCommand) Execute(args []string) string {
	numberOfDays, errMessage := parseHorizonArg(args, "Mülldaten")
	if errMessage != "" {
		return errMessage
	}

	items, err := c.Repo.GetGarbagesInNextDays(dates.DateOf(c.Now()), numberOfDays)
	if err != nil {
		log.Printf("show next garbages command: %v", err)
		return flows.ErrorReply
	}

	var answer strings.Builder
	fmt.Fprintf(&answer, "Folgende Mülldaten gibt es in den nächsten %d Tagen:\n", numberOfDays)
	for _, item := range items {
		fmt.Fprintf(&answer, "%s am %s\n", domain.GarbageDescription(item.GarbageType), item.Date)
	}
	return answer.String()
}

func parseHorizonArg(args []string, what string) (numberOfDays int, errMessage string) {
	if len(args) != 1 {
		return 0, fmt.Sprintf("Ich brauche einen Parameter: Anzahl der nächsten Tage, in denen ich nach %s suchen soll.", what)
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 {
		return 0, "Hmm... Der Parameter sieht nicht richtig aus. Denk dran: Ich brauche eine Zahl >= 0."
	}
	return n, ""
}
