package model

import (
	"strings"
	"testing"
)

func TestValidateApplicationName(t *testing.T) {
	existing := []string{"Checkout", "Payments"}

	testCases := []struct {
		name       string
		input      string
		violations []string
	}{
		{
			name:       "valid unique name",
			input:      "Orders",
			violations: nil,
		},
		{
			name:       "empty name",
			input:      "",
			violations: []string{"Name must not be empty"},
		},
		{
			name:       "duplicate name",
			input:      "Checkout",
			violations: []string{"Name must be unique across applications"},
		},
		{
			name:       "leading whitespace",
			input:      " Orders",
			violations: []string{"Name must not have leading or trailing whitespace"},
		},
		{
			name:       "trailing whitespace",
			input:      "Orders ",
			violations: []string{"Name must not have leading or trailing whitespace"},
		},
		{
			name:       "too long",
			input:      strings.Repeat("x", MaxApplicationNameLength+1),
			violations: []string{"Name must be less than 50 characters"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ValidateApplicationName(tc.input, existing)
			if len(got) != len(tc.violations) {
				t.Fatalf("expected %d violations, got %v", len(tc.violations), got)
			}
			for i, want := range tc.violations {
				if got[i] != want {
					t.Fatalf("expected violation %q, got %q", want, got[i])
				}
			}
		})
	}
}

func TestValidateApplicationNameCaseSensitive(t *testing.T) {
	// Uniqueness is a case-sensitive exact match.
	if got := ValidateApplicationName("checkout", []string{"Checkout"}); len(got) != 0 {
		t.Fatalf("expected no violations for different case, got %v", got)
	}
}

func TestValidateApplicationNameCollectsAllViolations(t *testing.T) {
	input := " " + strings.Repeat("x", MaxApplicationNameLength+1)
	got := ValidateApplicationName(input, []string{input})
	if len(got) != 3 {
		t.Fatalf("expected every violated rule to be reported, got %v", got)
	}
}
