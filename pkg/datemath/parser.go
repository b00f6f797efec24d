// Package datemath resolves the normalized deadline labels produced by
// extraction ("Friday", "next week", "03/15") to absolute times. The
// extraction core never calls this; only export paths that need a real
// date (calendar events) do.
package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parser converts deadline labels to absolute time.Time values.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Europe/Berlin"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

var months = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

var (
	numericDate = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})$`)
	monthDay    = regexp.MustCompile(`^([a-z]+)\s+(\d{1,2})$`)
)

// Resolve converts a deadline label to the start of the day it denotes,
// using baseTime as the reference point (usually time.Now()). Labels
// outside the recognized vocabulary return an error; callers treat that
// as "no resolvable date", not a failure.
func (p *Parser) Resolve(label string, baseTime time.Time) (time.Time, error) {
	norm := strings.ToLower(strings.TrimSpace(label))
	norm = strings.Join(strings.Fields(norm), " ")

	switch norm {
	case "today", "eod", "end of day":
		return p.startOfDay(baseTime), nil
	case "tomorrow":
		return p.startOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "next week":
		return p.startOfDay(baseTime.AddDate(0, 0, 7)), nil
	case "this week", "end of week":
		return p.nextWeekday(time.Friday, baseTime), nil
	}

	if wd, ok := weekdays[norm]; ok {
		return p.nextWeekday(wd, baseTime), nil
	}

	if m := numericDate.FindStringSubmatch(norm); m != nil {
		return p.resolveNumeric(m[1], m[2], baseTime)
	}

	if m := monthDay.FindStringSubmatch(norm); m != nil {
		return p.resolveMonthDay(m[1], m[2], baseTime)
	}

	return baseTime, fmt.Errorf("unrecognized deadline label %q", label)
}

// nextWeekday returns the next occurrence of the target weekday strictly
// after the base day; "Friday" said on a Friday means the following one.
func (p *Parser) nextWeekday(target time.Weekday, baseTime time.Time) time.Time {
	daysUntil := int(target - baseTime.In(p.location).Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return p.startOfDay(baseTime.AddDate(0, 0, daysUntil))
}

// resolveNumeric handles MM/DD, rolling into next year when the date has
// already passed.
func (p *Parser) resolveNumeric(monthStr, dayStr string, baseTime time.Time) (time.Time, error) {
	month, _ := strconv.Atoi(monthStr)
	day, _ := strconv.Atoi(dayStr)
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return baseTime, fmt.Errorf("invalid numeric date %s/%s", monthStr, dayStr)
	}

	candidate := time.Date(baseTime.Year(), time.Month(month), day, 0, 0, 0, 0, p.location)
	if candidate.Before(p.startOfDay(baseTime)) {
		candidate = candidate.AddDate(1, 0, 0)
	}
	return candidate, nil
}

// resolveMonthDay handles "march 5" and abbreviated month forms.
func (p *Parser) resolveMonthDay(monthName, dayStr string, baseTime time.Time) (time.Time, error) {
	if len(monthName) < 3 {
		return baseTime, fmt.Errorf("unknown month %q", monthName)
	}
	month, ok := months[monthName[:3]]
	if !ok {
		return baseTime, fmt.Errorf("unknown month %q", monthName)
	}

	day, _ := strconv.Atoi(dayStr)
	if day < 1 || day > 31 {
		return baseTime, fmt.Errorf("invalid day %q", dayStr)
	}

	candidate := time.Date(baseTime.Year(), month, day, 0, 0, 0, 0, p.location)
	if candidate.Before(p.startOfDay(baseTime)) {
		candidate = candidate.AddDate(1, 0, 0)
	}
	return candidate, nil
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 at the end of the given start-of-day time.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}
