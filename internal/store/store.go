package store

import (
	"errors"

	"github.com/seantiz/roster/internal/model"
)

var (
	// ErrActivityNotFound is returned when no activity has the given name.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAlreadyEnrolled is returned when the email is already a participant.
	ErrAlreadyEnrolled = errors.New("already enrolled")
	// ErrCapacityExceeded is returned when the activity is full.
	ErrCapacityExceeded = errors.New("capacity exceeded")
	// ErrNotEnrolled is returned when removing an email that is not a participant.
	ErrNotEnrolled = errors.New("not enrolled")
	// ErrDuplicateActivity is returned when a seed catalog repeats a name.
	ErrDuplicateActivity = errors.New("duplicate activity")
)

// ActivityStats holds enrollment counts for a single activity.
type ActivityStats struct {
	Name            string `json:"name"`
	Participants    int    `json:"participants"`
	MaxParticipants int    `json:"max_participants"`
	SpotsLeft       int    `json:"spots_left"`
}

// Stats holds aggregate enrollment counts across the catalog.
type Stats struct {
	Activities        int             `json:"activities"`
	TotalParticipants int             `json:"total_participants"`
	TotalCapacity     int             `json:"total_capacity"`
	FullActivities    int             `json:"full_activities"`
	ByActivity        []ActivityStats `json:"by_activity"`
}

// Store defines the operations on the activity registry. Implementations must
// make each mutation, including its checks, atomic with respect to every
// other operation.
type Store interface {
	ListActivities() model.Catalog
	GetActivity(name string) (model.Activity, error)
	AddParticipant(name, email string) error
	RemoveParticipant(name, email string) error
	Stats() Stats
	Reset()
}
