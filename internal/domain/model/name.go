package model

import "strings"

// MaxApplicationNameLength bounds user-supplied application names.
const MaxApplicationNameLength = 50

// ValidateApplicationName checks a proposed application name against the
// naming rules and returns every violated rule. The uniqueness check is a
// case-sensitive exact match against existing; callers renaming an
// application must exclude its own current name from existing first.
func ValidateApplicationName(name string, existing []string) []string {
	var violations []string
	if name == "" {
		violations = append(violations, "Name must not be empty")
	} else {
		if name != strings.TrimSpace(name) {
			violations = append(violations, "Name must not have leading or trailing whitespace")
		}
		if len(name) > MaxApplicationNameLength {
			violations = append(violations, "Name must be less than 50 characters")
		}
	}
	for _, n := range existing {
		if n == name {
			violations = append(violations, "Name must be unique across applications")
			break
		}
	}
	return violations
}
