package service

import (
	"context"

	"dario.cat/mergo"
	"github.com/google/uuid"

	clubsetup "github.com/goliatone/go-club-setup"
	"github.com/goliatone/go-club-setup/internal/apperr"
	"github.com/goliatone/go-club-setup/internal/events"
	"github.com/goliatone/go-club-setup/internal/store"
)

type WorkingHoursService struct {
	crud crudService[*clubsetup.WorkingHoursCalendar]
}

func NewWorkingHoursService(calendars store.Store[*clubsetup.WorkingHoursCalendar], opts ...Option) *WorkingHoursService {
	return &WorkingHoursService{
		crud: newCRUD(calendars, "working_hours", "Working hours calendar", "wh",
			func(w *clubsetup.WorkingHoursCalendar) *uuid.UUID { return &w.ID }, buildOptions(opts)),
	}
}

func (s *WorkingHoursService) GetByClubID(ctx context.Context, clubID uuid.UUID) (*clubsetup.WorkingHoursCalendar, error) {
	return s.crud.first(ctx,
		apperr.NotFound("Working hours calendar for club %s not found", clubID),
		s.crud.byClub(clubID),
	)
}

// Create fills unset calendar settings with the defaults and completes the
// working_hours step.
func (s *WorkingHoursService) Create(ctx context.Context, calendar *clubsetup.WorkingHoursCalendar) (*clubsetup.WorkingHoursCalendar, error) {
	if err := requireClub(calendar.ClubID); err != nil {
		return nil, err
	}
	if err := withDefaultSettings(calendar); err != nil {
		return nil, err
	}
	created, err := s.crud.create(ctx, calendar)
	if err != nil {
		return nil, err
	}
	if err := s.crud.track(ctx, events.StepCompleted, created.ClubID, clubsetup.StepWorkingHours); err != nil {
		return nil, err
	}
	return created, nil
}

func (s *WorkingHoursService) Update(ctx context.Context, id uuid.UUID, patch Patch) (*clubsetup.WorkingHoursCalendar, error) {
	return s.crud.update(ctx, id, patch, withDefaultSettings)
}

func (s *WorkingHoursService) DeleteByClubID(ctx context.Context, clubID uuid.UUID) (string, error) {
	calendar, err := s.GetByClubID(ctx, clubID)
	if err != nil {
		return "", err
	}
	if err := s.crud.delete(ctx, calendar); err != nil {
		return "", err
	}
	return s.crud.deleted(), nil
}

func withDefaultSettings(calendar *clubsetup.WorkingHoursCalendar) error {
	if calendar.CalendarSettings == nil {
		calendar.CalendarSettings = &clubsetup.CalendarSettings{}
	}
	if err := mergo.Merge(calendar.CalendarSettings, clubsetup.DefaultCalendarSettings()); err != nil {
		return apperr.Validation("Invalid calendar settings: %v", err)
	}
	for _, day := range calendar.AvailableDays {
		if !day.Day.Valid() {
			return apperr.Validation("Invalid weekday: %s", day.Day)
		}
	}
	return nil
}
