package engine

import (
	"log/slog"

	"github.com/seantiz/roster/internal/model"
	"github.com/seantiz/roster/internal/store"
)

// Engine implements list, signup and remove on top of a Store.
type Engine struct {
	store  store.Store
	logger *slog.Logger
}

// NewEngine creates an enrollment engine and publishes the initial
// per-activity gauges.
func NewEngine(s store.Store, logger *slog.Logger) *Engine {
	e := &Engine{
		store:  s,
		logger: logger,
	}
	e.observeAll()
	return e
}

// List returns a snapshot of every activity in catalog order.
func (e *Engine) List() model.Catalog {
	return e.store.ListActivities()
}

// Get returns a snapshot of a single activity.
func (e *Engine) Get(name string) (model.Activity, error) {
	a, err := e.store.GetActivity(name)
	if err != nil {
		return model.Activity{}, &EnrollmentError{Op: "get", Activity: name, Err: err}
	}
	return a, nil
}

// Stats returns enrollment counts from the store.
func (e *Engine) Stats() store.Stats {
	return e.store.Stats()
}

// Signup enrolls email in activity. The email shape is checked before the
// store is consulted.
func (e *Engine) Signup(activity, email string) (model.Confirmation, error) {
	return e.apply(model.ActionSignup, activity, email, e.store.AddParticipant)
}

// Remove withdraws email from activity.
func (e *Engine) Remove(activity, email string) (model.Confirmation, error) {
	return e.apply(model.ActionRemove, activity, email, e.store.RemoveParticipant)
}

// Reset restores the seed catalog. It exists for test fixtures.
func (e *Engine) Reset() {
	e.store.Reset()
	e.observeAll()
	e.logger.Info("catalog reset to seed")
}

func (e *Engine) apply(op, activity, email string, mutate func(name, email string) error) (model.Confirmation, error) {
	if err := ValidateEmail(email); err != nil {
		return model.Confirmation{}, e.reject(op, activity, email, err)
	}
	if err := mutate(activity, email); err != nil {
		return model.Confirmation{}, e.reject(op, activity, email, err)
	}

	enrollmentOps.WithLabelValues(op, resultOK).Inc()
	if a, err := e.store.GetActivity(activity); err == nil {
		observeActivity(a)
	}

	e.logger.Debug("enrollment changed",
		"operation", op,
		"activity", activity,
		"email", email,
	)
	return model.NewConfirmation(op, activity, email), nil
}

func (e *Engine) reject(op, activity, email string, err error) error {
	kind := Kind(err)
	enrollmentOps.WithLabelValues(op, kind).Inc()
	e.logger.Info("enrollment rejected",
		"operation", op,
		"activity", activity,
		"email", email,
		"kind", kind,
		"error", err,
	)
	return &EnrollmentError{Op: op, Activity: activity, Email: email, Err: err}
}

func (e *Engine) observeAll() {
	for _, a := range e.store.ListActivities() {
		observeActivity(a)
	}
}
