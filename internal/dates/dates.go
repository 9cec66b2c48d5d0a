// Package dates implements the day/month calendar the bot runs on: dates
// have no year, every month counts as 30 days for distance purposes, and
// the year wraps around after December.
package dates

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Month is a German month name as shown on the month keyboard.
type Month string

const (
	Januar    Month = "Januar"
	Februar   Month = "Februar"
	Maerz     Month = "März"
	April     Month = "April"
	Mai       Month = "Mai"
	Juni      Month = "Juni"
	Juli      Month = "Juli"
	August    Month = "August"
	September Month = "September"
	Oktober   Month = "Oktober"
	November  Month = "November"
	Dezember  Month = "Dezember"
)

// Months lists all month names in calendar order.
var Months = []Month{
	Januar, Februar, Maerz, April, Mai, Juni,
	Juli, August, September, Oktober, November, Dezember,
}

// ErrInvalidMonth is returned for month names or numbers outside the calendar.
var ErrInvalidMonth = errors.New("invalid month")

// referenceYear anchors day arithmetic on a real calendar. 2025 is not a
// leap year, so adding days to 28-2 rolls straight into March.
const referenceYear = 2025

// Date is a day/month pair without a year.
type Date struct {
	Day   int
	Month Month
}

func (d Date) String() string {
	num, _ := MonthNumber(d.Month)
	return FormatDate(d.Day, num)
}

// MonthNumber maps a month name to its 1-based number.
func MonthNumber(name Month) (int, error) {
	for i, m := range Months {
		if m == name {
			return i + 1, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidMonth, name)
}

// MonthName maps a 1-based month number to its name.
func MonthName(num int) (Month, error) {
	if num < 1 || num > 12 {
		return "", fmt.Errorf("%w: %d", ErrInvalidMonth, num)
	}
	return Months[num-1], nil
}

// FormatDate renders the canonical "<day>-<month>" string, no leading
// zeros. Every stored record and every filter predicate uses this format.
func FormatDate(day, monthNum int) string {
	return strconv.Itoa(day) + "-" + strconv.Itoa(monthNum)
}

// ParseDate splits a "<day>-<month>" string into its numeric parts.
func ParseDate(date string) (day, monthNum int, err error) {
	parts := strings.SplitN(date, "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("malformed date %q", date)
	}
	day, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("malformed date %q", date)
	}
	monthNum, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("malformed date %q", date)
	}
	return day, monthNum, nil
}

// DaysBetween computes the distance from one date to another in the
// 30-day-month model: ((toMonth-fromMonth) mod 12)*30 + (toDay-fromDay).
// The result is negative when toDay < fromDay at zero month offset; that
// is deliberate and callers rely on it.
func DaysBetween(fromDay int, fromMonth Month, toDay int, toMonth Month) int {
	fromNum, _ := MonthNumber(fromMonth)
	toNum, _ := MonthNumber(toMonth)
	return ((toNum-fromNum)+12)%12*30 + (toDay - fromDay)
}

// RawSubtract is the signed 30-day-month difference date1 - date2 without
// any wraparound correction.
func RawSubtract(date1, date2 string) int {
	day1, month1, _ := ParseDate(date1)
	day2, month2, _ := ParseDate(date2)
	return (month1-month2)*30 + (day1 - day2)
}

// Subtract is RawSubtract with year wraparound: a non-positive raw result
// is mapped to 365 - raw. Note the minus sign; the historical formula is
// kept as-is for compatibility even though 365 + raw would match the
// "days until next occurrence" reading.
func Subtract(date1, date2 string) int {
	distance := RawSubtract(date1, date2)
	if distance <= 0 {
		return 365 - distance
	}
	return distance
}

// AddDays adds n real calendar days to a "<day>-<month>" date by
// projecting it onto the reference year and stripping the year back off.
func AddDays(date string, days int) string {
	day, monthNum, _ := ParseDate(date)
	t := time.Date(referenceYear, time.Month(monthNum), day, 0, 0, 0, 0, time.UTC)
	t = t.AddDate(0, 0, days)
	return FormatDate(t.Day(), int(t.Month()))
}

// PeriodicSeries generates the collection dates starting at the given date
// and repeating every periodDays until the end of the nominal year. The
// series length is ceil(Subtract("31-12", start) / periodDays); starting on
// 31-12 itself yields a full wrapped year of dates because Subtract never
// returns zero.
func PeriodicSeries(startDay int, startMonth Month, periodDays int) []Date {
	startNum, _ := MonthNumber(startMonth)
	start := FormatDate(startDay, startNum)

	total := Subtract("31-12", start)
	count := total / periodDays
	if total%periodDays != 0 {
		count++
	}

	series := make([]Date, 0, count)
	current := start
	for i := 0; i < count; i++ {
		day, monthNum, _ := ParseDate(current)
		name, _ := MonthName(monthNum)
		series = append(series, Date{Day: day, Month: name})
		current = AddDays(current, periodDays)
	}
	return series
}

// DateOf strips a wall-clock time down to its day/month pair.
func DateOf(t time.Time) Date {
	name, _ := MonthName(int(t.Month()))
	return Date{Day: t.Day(), Month: name}
}

// Today returns the host clock's current day/month.
func Today() Date {
	return DateOf(time.Now())
}

// Tomorrow returns the host clock's next day/month.
func Tomorrow() Date {
	return DateOf(time.Now().AddDate(0, 0, 1))
}
