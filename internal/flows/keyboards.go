package flows

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/maweber/james-bot/internal/dates"
	"github.com/maweber/james-bot/internal/domain"
	"github.com/maweber/james-bot/internal/domain/entity"
)

// Every keyboard carries an Abbrechen button so the user can bail out of
// any step.

func dayOfMonthKeyboard() [][]string {
	return [][]string{
		{"1", "2", "3", "4", "5", "6", "7"},
		{"8", "9", "10", "11", "12", "13", "14"},
		{"15", "16", "17", "18", "19", "20", "21"},
		{"22", "23", "24", "25", "26", "27", "28"},
		{"29", "30", "31", domain.CancelWord},
	}
}

func monthKeyboard() [][]string {
	keyboard := make([][]string, 0, 5)
	for i := 0; i < len(dates.Months); i += 3 {
		row := []string{string(dates.Months[i]), string(dates.Months[i+1]), string(dates.Months[i+2])}
		keyboard = append(keyboard, row)
	}
	return append(keyboard, []string{domain.CancelWord})
}

func garbageColorKeyboard() [][]string {
	return [][]string{
		{string(domain.GarbageSchwarz), string(domain.GarbageGelb)},
		{string(domain.GarbageGruen), string(domain.GarbageBraun)},
		{domain.CancelWord},
	}
}

func horizonKeyboard() [][]string {
	return [][]string{
		{"7", "14", "31", "365"},
		{domain.CancelWord},
	}
}

func confirmKeyboard() [][]string {
	return [][]string{
		{"Ja"},
		{domain.CancelWord},
	}
}

func periodKeyboard() [][]string {
	return [][]string{
		{"14", "28"},
		{domain.CancelWord},
	}
}

// selectionKeyboard numbers the events one per row as "N: <description>".
// parseSelection reads that numeric prefix back.
func selectionKeyboard(events []*entity.Event) [][]string {
	keyboard := make([][]string, 0, len(events)+1)
	for i, event := range events {
		keyboard = append(keyboard, []string{fmt.Sprintf("%d: %s", i+1, event.Description())})
	}
	return append(keyboard, []string{domain.CancelWord})
}

func parseSelection(input string, count int) (index int, ok bool) {
	prefix, _, _ := strings.Cut(input, ":")
	n, err := strconv.Atoi(strings.TrimSpace(prefix))
	if err != nil || n < 1 || n > count {
		return 0, false
	}
	return n - 1, true
}
