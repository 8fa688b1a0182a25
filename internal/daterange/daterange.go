// Package daterange turns phrases like "last 7 days", "2025-08-01 to
// 2025-08-10" or "yesterday" into an inclusive [start, end] interval.
package daterange

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

var ErrUnparseable = errors.New("could not parse date range")

var (
	lastDaysRe = regexp.MustCompile(`last (\d+|[a-z]+) days`)
	bareNumber = regexp.MustCompile(`^\d+$`)
)

var wordNumbers = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
}

// month/day without a year
var yearlessLayouts = []string{
	"January 2",
	"Jan 2",
	"2 January",
	"2 Jan",
}

type Parser struct {
	natural *when.Parser
}

func New() *Parser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return &Parser{natural: w}
}

var std = New()

// Parse uses a shared Parser.
func Parse(input string, now time.Time) (time.Time, time.Time, error) {
	return std.Parse(input, now)
}

// Parse resolves input relative to now. Rules are tried in order: today,
// yesterday, "A, B", "A to B", "last N days", then a single date.
func (p *Parser) Parse(input string, now time.Time) (time.Time, time.Time, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	if s == "" {
		return time.Time{}, time.Time{}, ErrUnparseable
	}

	switch s {
	case "today":
		return wholeDay(now)
	case "yesterday":
		return wholeDay(now.AddDate(0, 0, -1))
	}

	if strings.Contains(s, ",") {
		parts := strings.Split(s, ",")
		if len(parts) == 2 && !bareNumber.MatchString(strings.TrimSpace(parts[1])) {
			if start, end, ok := p.parsePair(parts[0], parts[1], now); ok {
				return start, end, nil
			}
		}
	}

	if strings.Contains(s, " to ") {
		parts := strings.Split(s, " to ")
		if len(parts) == 2 {
			if start, end, ok := p.parsePair(parts[0], parts[1], now); ok {
				if start.Year() < 2000 {
					start = withYear(start, now.Year())
				}
				if end.Year() < 2000 {
					end = withYear(end, now.Year())
				}
				return start, end, nil
			}
		}
	}

	if strings.HasPrefix(s, "last") {
		if m := lastDaysRe.FindStringSubmatch(s); m != nil {
			if n, ok := dayCount(m[1]); ok {
				return now.AddDate(0, 0, -n), now, nil
			}
		}
	}

	d, hasYear, ok := p.parseDate(s, now)
	if !ok {
		return time.Time{}, time.Time{}, ErrUnparseable
	}
	if !hasYear && d.After(now) {
		d = d.AddDate(-1, 0, 0)
	}
	return d, endOfDayIfMidnight(d), nil
}

// parsePair parses both ends of a range. Yearless ends prefer the past: a
// yearless end later than now moves back a year, as does a yearless start
// when the end is yearless too. A start still after its end then moves back
// a year (dec 20 to jan 5).
func (p *Parser) parsePair(a, b string, now time.Time) (time.Time, time.Time, bool) {
	start, startHasYear, ok := p.parseDate(strings.TrimSpace(a), now)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	end, endHasYear, ok := p.parseDate(strings.TrimSpace(b), now)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	if !endHasYear && end.After(now) {
		end = end.AddDate(-1, 0, 0)
	}
	if !startHasYear && !endHasYear && start.After(now) {
		start = start.AddDate(-1, 0, 0)
	}
	if !startHasYear && start.After(end) {
		start = start.AddDate(-1, 0, 0)
	}
	return start, endOfDayIfMidnight(end), true
}

// parseDate reports whether the phrase carried an explicit year; yearless
// month/day forms are placed in now's year.
func (p *Parser) parseDate(s string, now time.Time) (time.Time, bool, bool) {
	if s == "" {
		return time.Time{}, false, false
	}
	loc := now.Location()

	for _, layout := range yearlessLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return withYear(t, now.Year()), false, true
		}
	}

	if !bareNumber.MatchString(s) {
		if t, err := dateparse.ParseIn(s, loc); err == nil {
			return t, true, true
		}
	}

	r, err := p.natural.Parse(s, now)
	if err == nil && r != nil {
		return r.Time.In(loc), true, true
	}

	return time.Time{}, false, false
}

func dayCount(s string) (int, bool) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	n, ok := wordNumbers[s]
	return n, ok
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func wholeDay(t time.Time) (time.Time, time.Time, error) {
	start := startOfDay(t)
	return start, start.AddDate(0, 0, 1).Add(-time.Nanosecond), nil
}

// endOfDayIfMidnight widens a date-only value to cover the whole day.
func endOfDayIfMidnight(t time.Time) time.Time {
	if t.Equal(startOfDay(t)) {
		return t.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return t
}

func withYear(t time.Time, year int) time.Time {
	return time.Date(year, t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}
