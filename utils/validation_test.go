package utils

import "testing"

func TestValidatePhone(t *testing.T) {
	valid := []string{"+5511987654321", "11987654321", "+1 (415) 555-0123"}
	for _, p := range valid {
		if !ValidatePhone(p) {
			t.Fatalf("expected %q to be valid", p)
		}
	}

	invalid := []string{"", "abc", "0123", "+"}
	for _, p := range invalid {
		if ValidatePhone(p) {
			t.Fatalf("expected %q to be invalid", p)
		}
	}
}
