package model

import (
	"fmt"
	"time"
)

// Enrollment actions.
const (
	ActionSignup = "signup"
	ActionRemove = "remove"
)

// Confirmation is returned for a successful signup or removal.
type Confirmation struct {
	ID       string    `json:"id"`
	Action   string    `json:"action"`
	Activity string    `json:"activity"`
	Email    string    `json:"email"`
	Message  string    `json:"message"`
	At       time.Time `json:"at"`
}

// NewConfirmation builds a confirmation for action on activity and email.
func NewConfirmation(action, activity, email string) Confirmation {
	var msg string
	switch action {
	case ActionSignup:
		msg = fmt.Sprintf("Signed up %s for %s", email, activity)
	case ActionRemove:
		msg = fmt.Sprintf("Removed %s from %s", email, activity)
	default:
		msg = fmt.Sprintf("%s %s for %s", action, email, activity)
	}

	return Confirmation{
		ID:       NewID(),
		Action:   action,
		Activity: activity,
		Email:    email,
		Message:  msg,
		At:       time.Now().UTC(),
	}
}
