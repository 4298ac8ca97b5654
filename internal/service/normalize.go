package service

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"turnos-backend/internal/dates"
)

// Normalization of the relaxed textual fields found in imported
// spreadsheet rows and API payloads. Each function returns the canonical
// form or a reason the input cannot be read; structural validation of the
// canonical forms lives in validate.go.

var clockPattern = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?\s*([aApP][mM])?$`)

// NormalizeDate converts an ISO or short-form date to canonical
// YYYY-MM-DD using the calendar's locale for day/month order.
// Canonical input is returned unchanged.
func NormalizeDate(cal *dates.Calendar, raw string) (string, error) {
	d, err := cal.ParseFlexible(raw)
	if err != nil {
		return "", fmt.Errorf("unrecognized date %q", raw)
	}
	return d.ISO(), nil
}

// NormalizeTime converts flexible clock notations to canonical HH:MM.
// Accepted forms: "H", "H:MM" and "H[:MM] AM/PM" (12-hour).
func NormalizeTime(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	m := clockPattern.FindStringSubmatch(s)
	if m == nil {
		return "", fmt.Errorf("unrecognized time %q", raw)
	}

	hour, _ := strconv.Atoi(m[1])
	minute := 0
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}
	meridiem := strings.ToLower(m[3])

	if meridiem != "" {
		if hour < 1 || hour > 12 {
			return "", fmt.Errorf("unrecognized time %q", raw)
		}
		if meridiem == "am" && hour == 12 {
			hour = 0
		}
		if meridiem == "pm" && hour < 12 {
			hour += 12
		}
	} else if hour > 23 {
		return "", fmt.Errorf("unrecognized time %q", raw)
	}

	if minute > 59 {
		return "", fmt.Errorf("unrecognized time %q", raw)
	}

	return fmt.Sprintf("%02d:%02d", hour, minute), nil
}

// NormalizeVacationFlag coerces boolean, numeric and localized string
// forms of the vacation flag. Anything unrecognized reads as false.
func NormalizeVacationFlag(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "sí", "si", "true", "1", "verdadero", "yes":
		return true
	}
	return false
}
