package api

import "strings"

// Voice board groups. ICE and CSE share the SOCIE board; SBL_B and SBL_L
// share the SBL board.
const (
	GroupSOCIE = "SOCIE"
	GroupSBL   = "SBL"
)

// FacultyGroups lists the faculties behind each voice board group
var FacultyGroups = map[string][]string{
	GroupSOCIE: {"ICE", "CSE"},
	GroupSBL:   {"SBL_B", "SBL_L"},
}

// FacultyGroup maps a faculty code to its voice board group, or "" when
// the faculty is unknown.
func FacultyGroup(faculty string) string {
	switch strings.ToUpper(strings.TrimSpace(faculty)) {
	case "ICE", "CSE":
		return GroupSOCIE
	case "SBL_B", "SBL_L":
		return GroupSBL
	default:
		return ""
	}
}

// ValidGroup reports whether a string names a voice board group
func ValidGroup(group string) bool {
	return group == GroupSOCIE || group == GroupSBL
}
