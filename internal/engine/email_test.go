package engine

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"a@b.com", true},
		{"michael@mergington.edu", true},
		{strings.Repeat("a", 50) + "@mergington.edu", true},
		{"first.last+tag@sub.example.org", true},
		{"tëst@mergington.edu", true},
		{"用户@mergington.edu", true},
		{"'; DROP TABLE users; --@mergington.edu", false},
		{"1'OR'1'='1@mergington.edu", true},
		{"notanemail", false},
		{"@mergington.edu", false},
		{"test@", false},
		{"test@@mergington.edu", false},
		{"a@b@c.com", false},
		{"test@localhost", false},
		{"", false},
		{" a@b.com", false},
		{"a@b.com\n", false},
	}

	for _, tt := range tests {
		err := ValidateEmail(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ValidateEmail(%q) = %v, want nil", tt.input, err)
		}
		if !tt.valid && !errors.Is(err, ErrInvalidEmail) {
			t.Errorf("ValidateEmail(%q) = %v, want ErrInvalidEmail", tt.input, err)
		}
	}
}
