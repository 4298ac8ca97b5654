package dates

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	apperrors "turnos-backend/internal/errors"
)

// ISOLayout is the canonical date form used across the API and storage
const ISOLayout = "2006-01-02"

// Config controls the calendar's timezone, display locale and week start
type Config struct {
	Timezone     string
	Locale       string
	WeekStartsOn string
}

// Calendar produces and manipulates dates under a fixed timezone and locale
type Calendar struct {
	location    *time.Location
	locale      string
	mondayFirst bool
}

var (
	isoPattern   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	shortPattern = regexp.MustCompile(`^(\d{1,2})[/-](\d{1,2})[/-](\d{4})$`)
)

// New creates a calendar from configuration; zero values fall back to
// the Buenos Aires timezone, Spanish locale and Monday week start.
func New(cfg Config) (*Calendar, error) {
	tz := cfg.Timezone
	if tz == "" {
		tz = "America/Argentina/Buenos_Aires"
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", tz, err)
	}

	locale := cfg.Locale
	if locale == "" {
		locale = "es-AR"
	}

	weekStart := strings.ToLower(cfg.WeekStartsOn)
	if weekStart == "" {
		weekStart = "monday"
	}

	return &Calendar{
		location:    loc,
		locale:      locale,
		mondayFirst: weekStart == "monday",
	}, nil
}

// Default returns a calendar with the default configuration
func Default() *Calendar {
	cal, _ := New(Config{})
	return cal
}

// Date is a calendar day anchored to its calendar's timezone
type Date struct {
	t   time.Time
	cal *Calendar
}

// Today returns the current date in the calendar's timezone
func (c *Calendar) Today() Date {
	now := time.Now().In(c.location)
	return c.fromYMD(now.Year(), now.Month(), now.Day())
}

// FromISO parses a canonical YYYY-MM-DD string
func (c *Calendar) FromISO(s string) (Date, error) {
	if !isoPattern.MatchString(s) {
		return Date{}, apperrors.ErrInvalidDateFormat
	}
	t, err := time.ParseInLocation(ISOLayout, s, c.location)
	if err != nil {
		return Date{}, apperrors.ErrInvalidDateFormat
	}
	return Date{t: t, cal: c}, nil
}

// FromUnixMillis builds a date from an epoch timestamp in milliseconds
func (c *Calendar) FromUnixMillis(ms int64) Date {
	t := time.UnixMilli(ms).In(c.location)
	return c.fromYMD(t.Year(), t.Month(), t.Day())
}

// FromTime truncates a time value to its calendar day
func (c *Calendar) FromTime(t time.Time) Date {
	t = t.In(c.location)
	return c.fromYMD(t.Year(), t.Month(), t.Day())
}

// ParseFlexible accepts a canonical ISO date or the short slash/dash form.
// The short form is read day-first except under US English locales.
func (c *Calendar) ParseFlexible(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if isoPattern.MatchString(s) {
		return c.FromISO(s)
	}

	m := shortPattern.FindStringSubmatch(s)
	if m == nil {
		return Date{}, apperrors.ErrInvalidDateFormat
	}

	first, _ := strconv.Atoi(m[1])
	second, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])

	day, month := first, second
	if c.monthFirst() {
		day, month = second, first
	}

	if month < 1 || month > 12 || day < 1 || day > daysIn(year, time.Month(month)) {
		return Date{}, apperrors.ErrInvalidDateFormat
	}

	return c.fromYMD(year, time.Month(month), day), nil
}

func (c *Calendar) monthFirst() bool {
	return strings.HasPrefix(strings.ToLower(c.locale), "en-us")
}

func (c *Calendar) fromYMD(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, c.location), cal: c}
}

// ISO formats the date as YYYY-MM-DD
func (d Date) ISO() string {
	return d.t.Format(ISOLayout)
}

// Display formats the date as a localized long-form string
func (d Date) Display() string {
	if strings.HasPrefix(strings.ToLower(d.cal.locale), "es") {
		return fmt.Sprintf("%s %d de %s de %d",
			spanishWeekdays[d.t.Weekday()], d.t.Day(), spanishMonths[d.t.Month()-1], d.t.Year())
	}
	return d.t.Format("Monday, January 2, 2006")
}

// Day returns the day of the month
func (d Date) Day() int {
	return d.t.Day()
}

// Month returns the month, 1-12
func (d Date) Month() int {
	return int(d.t.Month())
}

// Year returns the year
func (d Date) Year() int {
	return d.t.Year()
}

// DayOfWeek returns the weekday number. With Monday-start weeks the
// numbering is ISO (Monday=1, Sunday=7), otherwise Go's (Sunday=0).
func (d Date) DayOfWeek() int {
	wd := int(d.t.Weekday())
	if d.cal.mondayFirst {
		if wd == 0 {
			return 7
		}
		return wd
	}
	return wd
}

// DaysInMonth returns the number of days in the date's month
func (d Date) DaysInMonth() int {
	return daysIn(d.t.Year(), d.t.Month())
}

// AddDays returns the date shifted forward by n days
func (d Date) AddDays(n int) Date {
	return d.cal.FromTime(d.t.AddDate(0, 0, n))
}

// SubDays returns the date shifted backward by n days
func (d Date) SubDays(n int) Date {
	return d.AddDays(-n)
}

// Before reports whether d is earlier than other
func (d Date) Before(other Date) bool {
	return d.ISO() < other.ISO()
}

// After reports whether d is later than other
func (d Date) After(other Date) bool {
	return d.ISO() > other.ISO()
}

// Equal reports whether d and other are the same calendar day
func (d Date) Equal(other Date) bool {
	return d.ISO() == other.ISO()
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

var spanishMonths = [12]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

var spanishWeekdays = [7]string{
	"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado",
}
