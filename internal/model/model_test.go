package model

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
	"testing"
)

// crockfordBase32 matches valid ULID strings (26 chars, Crockford Base32 alphabet).
var crockfordBase32 = regexp.MustCompile(`^[0123456789ABCDEFGHJKMNPQRSTVWXYZ]{26}$`)

func TestNewIDFormat(t *testing.T) {
	id := NewID()
	if !crockfordBase32.MatchString(id) {
		t.Errorf("NewID() = %q, does not match Crockford Base32 ULID format", id)
	}
}

func TestNewIDUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewID()
		if seen[id] {
			t.Fatalf("NewID() produced duplicate: %s", id)
		}
		seen[id] = true
	}
}

func TestNewActivityValid(t *testing.T) {
	a, err := NewActivity("Chess Club", "Strategy", "Fridays", 2, "a@b.com")
	if err != nil {
		t.Fatalf("NewActivity: %v", err)
	}
	if a.Name != "Chess Club" {
		t.Errorf("Name = %q, want %q", a.Name, "Chess Club")
	}
	if a.SpotsLeft() != 1 {
		t.Errorf("SpotsLeft = %d, want 1", a.SpotsLeft())
	}
	if !a.HasParticipant("a@b.com") {
		t.Error("HasParticipant(a@b.com) = false, want true")
	}
}

func TestNewActivityInvariants(t *testing.T) {
	tests := []struct {
		name         string
		activity     string
		max          int
		participants []string
	}{
		{"empty name", "", 5, nil},
		{"zero capacity", "Club", 0, nil},
		{"negative capacity", "Club", -1, nil},
		{"over capacity", "Club", 1, []string{"a@b.com", "c@d.com"}},
		{"duplicate participant", "Club", 5, []string{"a@b.com", "a@b.com"}},
	}

	for _, tt := range tests {
		_, err := NewActivity(tt.activity, "d", "s", tt.max, tt.participants...)
		if !errors.Is(err, ErrInvalidActivity) {
			t.Errorf("%s: err = %v, want ErrInvalidActivity", tt.name, err)
		}
	}
}

func TestNewActivityCopiesParticipants(t *testing.T) {
	in := []string{"a@b.com"}
	a, err := NewActivity("Club", "d", "s", 3, in...)
	if err != nil {
		t.Fatalf("NewActivity: %v", err)
	}
	in[0] = "changed@b.com"
	if a.Participants[0] != "a@b.com" {
		t.Errorf("Participants[0] = %q, caller slice leaked into record", a.Participants[0])
	}
}

func TestActivityClone(t *testing.T) {
	a, _ := NewActivity("Club", "d", "s", 3, "a@b.com")
	c := a.Clone()
	c.Participants[0] = "x@y.com"
	if a.Participants[0] != "a@b.com" {
		t.Errorf("Clone shares participant storage with original")
	}
}

func TestCatalogMarshalPreservesOrder(t *testing.T) {
	zed, _ := NewActivity("Zed Club", "z", "Mon", 2)
	alpha, _ := NewActivity("Alpha Club", "a", "Tue", 3, "a@b.com")
	cat := Catalog{zed, alpha}

	data, err := json.Marshal(cat)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	s := string(data)
	if strings.Index(s, "Zed Club") > strings.Index(s, "Alpha Club") {
		t.Errorf("catalog order not preserved: %s", s)
	}
	if !strings.Contains(s, `"participants":[]`) {
		t.Errorf("empty participants should encode as [], got %s", s)
	}

	var decoded Catalog
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	names := decoded.Names()
	if len(names) != 2 || names[0] != "Zed Club" || names[1] != "Alpha Club" {
		t.Errorf("decoded names = %v, want [Zed Club Alpha Club]", names)
	}
	got, ok := decoded.Get("Alpha Club")
	if !ok || got.MaxParticipants != 3 || !got.HasParticipant("a@b.com") {
		t.Errorf("decoded Alpha Club = %+v", got)
	}
}

func TestCatalogGetExactMatch(t *testing.T) {
	chess, _ := NewActivity("Chess Club", "d", "s", 2)
	cat := Catalog{chess}

	for _, name := range []string{"chess club", " Chess Club", "Chess Club "} {
		if _, ok := cat.Get(name); ok {
			t.Errorf("Get(%q) matched, want exact-match lookup only", name)
		}
	}
}

func TestNewConfirmationMessages(t *testing.T) {
	signup := NewConfirmation(ActionSignup, "Chess Club", "a@b.com")
	if signup.Message != "Signed up a@b.com for Chess Club" {
		t.Errorf("signup message = %q", signup.Message)
	}
	if !crockfordBase32.MatchString(signup.ID) {
		t.Errorf("confirmation ID = %q, not a ULID", signup.ID)
	}

	remove := NewConfirmation(ActionRemove, "Chess Club", "a@b.com")
	if remove.Message != "Removed a@b.com from Chess Club" {
		t.Errorf("remove message = %q", remove.Message)
	}
}
