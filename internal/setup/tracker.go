package setup

import (
	"context"
	"slices"
	"time"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	clubsetup "github.com/goliatone/go-club-setup"
	"github.com/goliatone/go-club-setup/internal/apperr"
	"github.com/goliatone/go-club-setup/internal/events"
	"github.com/goliatone/go-club-setup/internal/logging"
)

// ClubStore is the subset of the club store the tracker needs.
type ClubStore interface {
	GetByID(ctx context.Context, id uuid.UUID, criteria ...repository.SelectCriteria) (*clubsetup.Club, error)
	Update(ctx context.Context, record *clubsetup.Club, criteria ...repository.UpdateCriteria) (*clubsetup.Club, error)
}

// CompleteInput finishes a setup session at FinalStep.
type CompleteInput struct {
	ClubID    uuid.UUID           `json:"clubId"`
	FinalStep clubsetup.SetupStep `json:"finalStep"`
}

// State is the tracking portion of a club.
type State struct {
	Status         clubsetup.SetupStatus
	CurrentStep    clubsetup.SetupStep
	CompletedSteps []clubsetup.SetupStep
	LastSavedAt    time.Time
}

// Apply copies the state onto club.
func (s State) Apply(club *clubsetup.Club) {
	step := s.CurrentStep
	saved := s.LastSavedAt
	club.SetupStatus = s.Status
	club.CurrentStep = &step
	club.CompletedSteps = slices.Clone(s.CompletedSteps)
	club.LastSavedAt = &saved
}

// Tracker moves clubs through the setup wizard.
type Tracker struct {
	clubs  ClubStore
	logger logging.Logger
	now    func() time.Time
}

type Option func(*Tracker)

func WithLogger(logger logging.Logger) Option {
	return func(t *Tracker) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		if now != nil {
			t.now = now
		}
	}
}

func NewTracker(clubs ClubStore, opts ...Option) *Tracker {
	t := &Tracker{
		clubs:  clubs,
		logger: logging.Nop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// trackingColumns limits tracker writes to the wizard state.
func trackingColumns(q *bun.UpdateQuery) *bun.UpdateQuery {
	return q.Column("setup_status", "current_step", "completed_steps", "last_saved_at", "updated_at")
}

// InitialState is the state of a freshly created club.
func (t *Tracker) InitialState() State {
	return State{
		Status:         clubsetup.SetupStatusDraft,
		CurrentStep:    clubsetup.StepClubSetup,
		CompletedSteps: []clubsetup.SetupStep{clubsetup.StepClubSetup},
		LastSavedAt:    t.now(),
	}
}

// UpdateSetupTracking records step as completed and makes it current.
func (t *Tracker) UpdateSetupTracking(ctx context.Context, clubID uuid.UUID, step clubsetup.SetupStep) (*clubsetup.Club, error) {
	logger := t.log(ctx, "update_tracking", clubID, step)

	if !step.Valid() {
		events.RecordTransition("step", "invalid")
		return nil, apperr.Validation("Invalid setup step: %s", step)
	}

	club, err := t.load(ctx, clubID)
	if err != nil {
		logger.Error("failed to load club: %v", err)
		events.RecordTransition("step", "error")
		return nil, err
	}

	if !slices.Contains(club.CompletedSteps, step) {
		club.CompletedSteps = append(club.CompletedSteps, step)
	}
	current := step
	saved := t.now()
	club.SetupStatus = clubsetup.SetupStatusInProgress
	club.CurrentStep = &current
	club.LastSavedAt = &saved

	return t.save(ctx, logger, "step", club)
}

// CompleteClubSetup marks the session completed at input.FinalStep.
func (t *Tracker) CompleteClubSetup(ctx context.Context, input CompleteInput) (*clubsetup.Club, error) {
	logger := t.log(ctx, "complete_setup", input.ClubID, input.FinalStep)

	if !input.FinalStep.Valid() {
		events.RecordTransition("complete", "invalid")
		return nil, apperr.Validation("Invalid setup step: %s", input.FinalStep)
	}

	club, err := t.load(ctx, input.ClubID)
	if err != nil {
		logger.Error("failed to load club: %v", err)
		events.RecordTransition("complete", "error")
		return nil, err
	}

	club.CompletedSteps = dedupe(append(club.CompletedSteps, input.FinalStep))
	current := input.FinalStep
	saved := t.now()
	club.SetupStatus = clubsetup.SetupStatusCompleted
	club.CurrentStep = &current
	club.LastSavedAt = &saved

	return t.save(ctx, logger, "complete", club)
}

// AbandonClubSetup marks the session abandoned. Progress is kept so a later
// step can resume it.
func (t *Tracker) AbandonClubSetup(ctx context.Context, clubID uuid.UUID) (*clubsetup.Club, error) {
	var step clubsetup.SetupStep
	logger := t.log(ctx, "abandon_setup", clubID, step)

	club, err := t.load(ctx, clubID)
	if err != nil {
		logger.Error("failed to load club: %v", err)
		events.RecordTransition("abandon", "error")
		return nil, err
	}

	saved := t.now()
	club.SetupStatus = clubsetup.SetupStatusAbandoned
	club.LastSavedAt = &saved

	return t.save(ctx, logger, "abandon", club)
}

// Subscribe wires the tracker to setup events.
func (t *Tracker) Subscribe(bus *events.Bus) {
	bus.Subscribe(events.StepCompleted, func(ctx context.Context, event events.StepEvent) error {
		_, err := t.UpdateSetupTracking(ctx, event.ClubID, event.Step)
		return err
	})
	bus.Subscribe(events.SetupCompleted, func(ctx context.Context, event events.StepEvent) error {
		_, err := t.CompleteClubSetup(ctx, CompleteInput{ClubID: event.ClubID, FinalStep: event.Step})
		return err
	})
}

func (t *Tracker) load(ctx context.Context, clubID uuid.UUID) (*clubsetup.Club, error) {
	club, err := t.clubs.GetByID(ctx, clubID)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, apperr.NotFound("Club with ID %s not found", clubID)
		}
		return nil, err
	}
	if club == nil {
		return nil, apperr.NotFound("Club with ID %s not found", clubID)
	}
	return club, nil
}

func (t *Tracker) save(ctx context.Context, logger logging.Logger, transition string, club *clubsetup.Club) (*clubsetup.Club, error) {
	saved, err := t.clubs.Update(ctx, club, trackingColumns)
	if err != nil {
		logger.Error("failed to save setup tracking: %v", err)
		events.RecordTransition(transition, "error")
		return nil, err
	}
	events.RecordTransition(transition, "success")
	logger.Info("setup tracking saved with status %s", club.SetupStatus)
	return saved, nil
}

func (t *Tracker) log(ctx context.Context, operation string, clubID uuid.UUID, step clubsetup.SetupStep) logging.Logger {
	fields := logging.Fields{
		"operation": operation,
		"club_id":   clubID.String(),
	}
	if step != "" {
		fields["step"] = string(step)
	}
	return logging.FromContext(ctx, t.logger).WithFields(fields)
}

func dedupe(steps []clubsetup.SetupStep) []clubsetup.SetupStep {
	out := make([]clubsetup.SetupStep, 0, len(steps))
	for _, step := range steps {
		if !slices.Contains(out, step) {
			out = append(out, step)
		}
	}
	return out
}
