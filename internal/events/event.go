package events

import (
	"context"
	"time"

	"github.com/google/uuid"

	clubsetup "github.com/goliatone/go-club-setup"
)

type EventType string

const (
	// StepCompleted is emitted when a child entity is created for a club.
	StepCompleted EventType = "setup.step_completed"
	// SetupCompleted is emitted when the final wizard step is reached.
	SetupCompleted EventType = "setup.completed"
)

// StepEvent reports progress in a club's setup wizard.
type StepEvent struct {
	ID         string              `json:"id"`
	Type       EventType           `json:"type"`
	ClubID     uuid.UUID           `json:"clubId"`
	Step       clubsetup.SetupStep `json:"step"`
	Source     string              `json:"source,omitempty"`
	OccurredAt time.Time           `json:"occurredAt"`
}

// NewStepEvent stamps an event with a fresh ID and the current time.
func NewStepEvent(typ EventType, clubID uuid.UUID, step clubsetup.SetupStep, source string) StepEvent {
	return StepEvent{
		ID:         uuid.NewString(),
		Type:       typ,
		ClubID:     clubID,
		Step:       step,
		Source:     source,
		OccurredAt: time.Now().UTC(),
	}
}

// Emitter publishes setup events.
type Emitter interface {
	Emit(ctx context.Context, event StepEvent) error
}

// Handler reacts to a single event.
type Handler func(ctx context.Context, event StepEvent) error

// Sink observes events after every handler has run.
type Sink interface {
	Publish(ctx context.Context, event StepEvent) error
}

// EmitterFunc adapts a function into an Emitter.
type EmitterFunc func(ctx context.Context, event StepEvent) error

func (f EmitterFunc) Emit(ctx context.Context, event StepEvent) error { return f(ctx, event) }

// Nop drops every event.
var Nop Emitter = EmitterFunc(func(context.Context, StepEvent) error { return nil })
