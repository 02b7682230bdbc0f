package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Entry is a parsed quick-entry line: a calendar date, an optional
// "HH:MM" time range, and the remaining text as the title.
type Entry struct {
	Date    time.Time
	HasTime bool
	Start   string
	End     string
	Title   string
}

// EntryParser turns lines like "tomorrow 14:00-15:30 Dentist" into
// appointment fields. The reference clock is injectable for tests.
type EntryParser struct {
	now      time.Time
	location *time.Location
}

func NewEntryParser() *EntryParser {
	return &EntryParser{
		now:      time.Now(),
		location: time.Local,
	}
}

func (p *EntryParser) SetNow(now time.Time) {
	p.now = now
}

func (p *EntryParser) Parse(input string) (*Entry, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, fmt.Errorf("empty input")
	}

	result := &Entry{}
	remaining := input

	// Try a relative date first, then an absolute one; default to today.
	if date, text, ok := p.parseRelativeDate(remaining); ok {
		result.Date = date
		remaining = text
	} else if date, text, ok := p.parseAbsoluteDate(remaining); ok {
		result.Date = date
		remaining = text
	} else {
		result.Date = p.today()
	}

	if start, end, text, ok := p.parseTimeRange(remaining); ok {
		result.HasTime = true
		result.Start = start
		result.End = end
		remaining = text
	}

	result.Title = strings.TrimSpace(remaining)
	if result.Title == "" {
		return nil, fmt.Errorf("missing title")
	}
	return result, nil
}

func (p *EntryParser) parseRelativeDate(input string) (time.Time, string, bool) {
	lower := strings.ToLower(input)

	if strings.HasPrefix(lower, "today") {
		return p.today(), strings.TrimSpace(input[5:]), true
	}

	if strings.HasPrefix(lower, "tomorrow") || strings.HasPrefix(lower, "tmrw") {
		prefixLen := 8
		if strings.HasPrefix(lower, "tmrw") {
			prefixLen = 4
		}
		return p.today().AddDate(0, 0, 1), strings.TrimSpace(input[prefixLen:]), true
	}

	// Next/this weekday
	weekdayRe := regexp.MustCompile(`^(next|this)\s+(mon|monday|tue|tuesday|wed|wednesday|thu|thursday|fri|friday|sat|saturday|sun|sunday)\b`)
	if matches := weekdayRe.FindStringSubmatch(lower); matches != nil {
		isNext := matches[1] == "next"
		weekday := parseWeekday(matches[2])
		date := p.findNextWeekday(weekday, isNext)
		return date, strings.TrimSpace(input[len(matches[0]):]), true
	}

	// In N days/weeks/months
	inRe := regexp.MustCompile(`^in\s+(\d+)\s+(day|days|week|weeks|month|months)\b`)
	if matches := inRe.FindStringSubmatch(lower); matches != nil {
		n, _ := strconv.Atoi(matches[1])
		date := p.today()

		switch {
		case strings.HasPrefix(matches[2], "day"):
			date = date.AddDate(0, 0, n)
		case strings.HasPrefix(matches[2], "week"):
			date = date.AddDate(0, 0, n*7)
		case strings.HasPrefix(matches[2], "month"):
			date = date.AddDate(0, n, 0)
		}

		return date, strings.TrimSpace(input[len(matches[0]):]), true
	}

	return time.Time{}, input, false
}

func (p *EntryParser) parseAbsoluteDate(input string) (time.Time, string, bool) {
	// YYYY-MM-DD
	isoRe := regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})`)
	if matches := isoRe.FindStringSubmatch(input); matches != nil {
		year, _ := strconv.Atoi(matches[1])
		month, _ := strconv.Atoi(matches[2])
		day, _ := strconv.Atoi(matches[3])

		date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, p.location)
		return date, strings.TrimSpace(input[len(matches[0]):]), true
	}

	// MM/DD/YYYY or MM/DD (assume current year)
	dateRe := regexp.MustCompile(`^(\d{1,2})/(\d{1,2})(?:/(\d{4}))?`)
	if matches := dateRe.FindStringSubmatch(input); matches != nil {
		month, _ := strconv.Atoi(matches[1])
		day, _ := strconv.Atoi(matches[2])
		year := p.now.Year()
		if matches[3] != "" {
			year, _ = strconv.Atoi(matches[3])
		}

		date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, p.location)
		return date, strings.TrimSpace(input[len(matches[0]):]), true
	}

	// Month DD, YYYY or Month DD
	monthNameRe := regexp.MustCompile(`^(jan|january|feb|february|mar|march|apr|april|may|jun|june|jul|july|aug|august|sep|september|oct|october|nov|november|dec|december)\s+(\d{1,2})(?:,?\s+(\d{4}))?`)
	if matches := monthNameRe.FindStringSubmatch(strings.ToLower(input)); matches != nil {
		month := parseMonth(matches[1])
		day, _ := strconv.Atoi(matches[2])
		year := p.now.Year()
		if matches[3] != "" {
			year, _ = strconv.Atoi(matches[3])
		}

		date := time.Date(year, month, day, 0, 0, 0, 0, p.location)
		return date, strings.TrimSpace(input[len(matches[0]):]), true
	}

	return time.Time{}, input, false
}

// parseTimeRange recognizes "14:00-15:30", "2pm-4pm", "14:00" and
// "2:30pm". A single time gets a one-hour default duration.
func (p *EntryParser) parseTimeRange(input string) (string, string, string, bool) {
	lower := strings.ToLower(input)

	if strings.HasPrefix(lower, "at ") {
		lower = lower[3:]
		input = input[3:]
	}

	rangeRe := regexp.MustCompile(`^(\d{1,2}):?(\d{2})?\s*(am|pm)?\s*-\s*(\d{1,2}):?(\d{2})?\s*(am|pm)?`)
	if matches := rangeRe.FindStringSubmatch(lower); matches != nil {
		start := clockMinutes(matches[1], matches[2], matches[3])
		end := clockMinutes(matches[4], matches[5], matches[6])
		return formatClock(start), formatClock(end), strings.TrimSpace(input[len(matches[0]):]), true
	}

	timeRe := regexp.MustCompile(`^(\d{1,2}):(\d{2})\s*(am|pm)?|^(\d{1,2})\s*(am|pm)`)
	if matches := timeRe.FindStringSubmatch(lower); matches != nil {
		var start int
		if matches[1] != "" {
			start = clockMinutes(matches[1], matches[2], matches[3])
		} else {
			start = clockMinutes(matches[4], "", matches[5])
		}

		end := start + 60
		if end > 24*60 {
			end = 24 * 60
		}
		return formatClock(start), formatClock(end), strings.TrimSpace(input[len(matches[0]):]), true
	}

	return "", "", input, false
}

func clockMinutes(hourStr, minStr, ampm string) int {
	hour, _ := strconv.Atoi(hourStr)
	min := 0
	if minStr != "" {
		min, _ = strconv.Atoi(minStr)
	}

	if ampm == "pm" && hour < 12 {
		hour += 12
	} else if ampm == "am" && hour == 12 {
		hour = 0
	}

	return hour*60 + min
}

func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

func parseWeekday(s string) time.Weekday {
	switch strings.ToLower(s) {
	case "mon", "monday":
		return time.Monday
	case "tue", "tuesday":
		return time.Tuesday
	case "wed", "wednesday":
		return time.Wednesday
	case "thu", "thursday":
		return time.Thursday
	case "fri", "friday":
		return time.Friday
	case "sat", "saturday":
		return time.Saturday
	default:
		return time.Sunday
	}
}

func parseMonth(s string) time.Month {
	switch strings.ToLower(s) {
	case "feb", "february":
		return time.February
	case "mar", "march":
		return time.March
	case "apr", "april":
		return time.April
	case "may":
		return time.May
	case "jun", "june":
		return time.June
	case "jul", "july":
		return time.July
	case "aug", "august":
		return time.August
	case "sep", "september":
		return time.September
	case "oct", "october":
		return time.October
	case "nov", "november":
		return time.November
	case "dec", "december":
		return time.December
	default:
		return time.January
	}
}

func (p *EntryParser) findNextWeekday(target time.Weekday, skipThisWeek bool) time.Time {
	date := p.today()
	daysUntilTarget := int(target - date.Weekday())

	if daysUntilTarget <= 0 || skipThisWeek {
		daysUntilTarget += 7
	}

	return date.AddDate(0, 0, daysUntilTarget)
}

func (p *EntryParser) today() time.Time {
	y, m, d := p.now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, p.location)
}
