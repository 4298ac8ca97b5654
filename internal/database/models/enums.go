package models

import "strings"

// ShiftType identifies which shift a working day covers
type ShiftType string

const (
	ShiftTypeMorning   ShiftType = "morning"
	ShiftTypeAfternoon ShiftType = "afternoon"
	ShiftTypeNight     ShiftType = "night"
)

// IsValid checks if the shift type is one of the enumerated values
func (s ShiftType) IsValid() bool {
	switch s {
	case ShiftTypeMorning, ShiftTypeAfternoon, ShiftTypeNight:
		return true
	}
	return false
}

// ParseShiftType maps free text to a shift type, accepting the Spanish
// names used in imported spreadsheets alongside the canonical values.
func ParseShiftType(s string) (ShiftType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "morning", "mañana", "manana":
		return ShiftTypeMorning, true
	case "afternoon", "tarde":
		return ShiftTypeAfternoon, true
	case "night", "noche":
		return ShiftTypeNight, true
	}
	return "", false
}

// AllShiftTypes returns the closed set of shift types
func AllShiftTypes() []ShiftType {
	return []ShiftType{ShiftTypeMorning, ShiftTypeAfternoon, ShiftTypeNight}
}
