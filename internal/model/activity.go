package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidActivity is returned when an activity record violates its invariants.
var ErrInvalidActivity = errors.New("invalid activity")

// Activity is a named extracurricular offering with a participant capacity.
// The name is the lookup key and is not part of the JSON body; it becomes the
// object key when a Catalog is encoded.
type Activity struct {
	Name            string   `json:"-"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// NewActivity builds an Activity and checks that the name is set, the capacity
// is positive, and the initial participants are unique and fit the capacity.
func NewActivity(name, description, schedule string, maxParticipants int, participants ...string) (Activity, error) {
	if name == "" {
		return Activity{}, fmt.Errorf("%w: empty name", ErrInvalidActivity)
	}
	if maxParticipants <= 0 {
		return Activity{}, fmt.Errorf("%w: %q: max_participants must be positive, got %d", ErrInvalidActivity, name, maxParticipants)
	}
	if len(participants) > maxParticipants {
		return Activity{}, fmt.Errorf("%w: %q: %d participants exceed capacity %d", ErrInvalidActivity, name, len(participants), maxParticipants)
	}

	seen := make(map[string]struct{}, len(participants))
	for _, email := range participants {
		if _, dup := seen[email]; dup {
			return Activity{}, fmt.Errorf("%w: %q: duplicate participant %q", ErrInvalidActivity, name, email)
		}
		seen[email] = struct{}{}
	}

	return Activity{
		Name:            name,
		Description:     description,
		Schedule:        schedule,
		MaxParticipants: maxParticipants,
		Participants:    append([]string{}, participants...),
	}, nil
}

// Validate re-checks the invariants of a record built without NewActivity,
// such as one decoded from a seed file.
func (a Activity) Validate() error {
	_, err := NewActivity(a.Name, a.Description, a.Schedule, a.MaxParticipants, a.Participants...)
	return err
}

// Clone returns a deep copy of the activity.
func (a Activity) Clone() Activity {
	c := a
	c.Participants = append([]string{}, a.Participants...)
	return c
}

// HasParticipant reports whether email is enrolled.
func (a Activity) HasParticipant(email string) bool {
	for _, p := range a.Participants {
		if p == email {
			return true
		}
	}
	return false
}

// SpotsLeft returns the number of free places.
func (a Activity) SpotsLeft() int {
	return a.MaxParticipants - len(a.Participants)
}

// Catalog is an ordered set of activities. Order is the seeding order and is
// kept when the catalog is encoded as a JSON object.
type Catalog []Activity

// Get returns the activity with the given name using an exact match.
func (c Catalog) Get(name string) (Activity, bool) {
	for _, a := range c {
		if a.Name == name {
			return a, true
		}
	}
	return Activity{}, false
}

// Names returns the activity names in catalog order.
func (c Catalog) Names() []string {
	names := make([]string, len(c))
	for i, a := range c {
		names[i] = a.Name
	}
	return names
}

// Clone returns a deep copy of the catalog.
func (c Catalog) Clone() Catalog {
	out := make(Catalog, len(c))
	for i, a := range c {
		out[i] = a.Clone()
	}
	return out
}

// MarshalJSON encodes the catalog as an object keyed by activity name,
// preserving catalog order.
func (c Catalog) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, a := range c {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(a.Name)
		if err != nil {
			return nil, err
		}
		if a.Participants == nil {
			a.Participants = []string{}
		}
		val, err := json.Marshal(a)
		if err != nil {
			return nil, fmt.Errorf("encode activity %q: %w", a.Name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes an object keyed by activity name, keeping the key
// order of the document.
func (c *Catalog) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("catalog: expected object, got %v", tok)
	}

	var out Catalog
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, _ := tok.(string)
		var a Activity
		if err := dec.Decode(&a); err != nil {
			return fmt.Errorf("decode activity %q: %w", name, err)
		}
		a.Name = name
		out = append(out, a)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*c = out
	return nil
}
