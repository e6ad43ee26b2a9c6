package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clubsetup "github.com/goliatone/go-club-setup"
)

type recordingSink struct {
	events []StepEvent
	err    error
}

func (s *recordingSink) Publish(_ context.Context, event StepEvent) error {
	s.events = append(s.events, event)
	return s.err
}

func TestBusRunsHandlersInOrder(t *testing.T) {
	bus := NewBus()
	var calls []string

	bus.Subscribe(StepCompleted, func(context.Context, StepEvent) error {
		calls = append(calls, "first")
		return nil
	})
	bus.Subscribe(StepCompleted, func(context.Context, StepEvent) error {
		calls = append(calls, "second")
		return nil
	})
	bus.Subscribe(SetupCompleted, func(context.Context, StepEvent) error {
		calls = append(calls, "other")
		return nil
	})

	err := bus.Emit(context.Background(), NewStepEvent(StepCompleted, uuid.New(), clubsetup.StepResources, "resource"))
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestBusReturnsFirstHandlerError(t *testing.T) {
	sink := &recordingSink{}
	bus := NewBus(WithSink(sink))
	boom := errors.New("club not found")
	secondCalled := false

	bus.Subscribe(StepCompleted, func(context.Context, StepEvent) error { return boom })
	bus.Subscribe(StepCompleted, func(context.Context, StepEvent) error {
		secondCalled = true
		return nil
	})

	err := bus.Emit(context.Background(), NewStepEvent(StepCompleted, uuid.New(), clubsetup.StepCoaches, "coach"))
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.False(t, secondCalled)
	assert.Empty(t, sink.events)
}

func TestBusSinkFailuresAreNotReturned(t *testing.T) {
	sink := &recordingSink{err: errors.New("stream down")}
	bus := NewBus()
	bus.AddSink(sink)

	event := NewStepEvent(SetupCompleted, uuid.New(), clubsetup.StepTeamMembers, "team_member")
	require.NoError(t, bus.Emit(context.Background(), event))
	require.Len(t, sink.events, 1)
	assert.Equal(t, event.ID, sink.events[0].ID)
}

func TestBusCountsEmits(t *testing.T) {
	before := testutil.ToFloat64(eventsEmittedTotal.WithLabelValues(string(StepCompleted), "success"))

	bus := NewBus()
	require.NoError(t, bus.Emit(context.Background(), NewStepEvent(StepCompleted, uuid.New(), clubsetup.StepPricing, "pricing")))

	after := testutil.ToFloat64(eventsEmittedTotal.WithLabelValues(string(StepCompleted), "success"))
	assert.Equal(t, before+1, after)
}

func TestRedisStreamPublisher(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	publisher := NewRedisStreamPublisher(client, "", nil)
	assert.Equal(t, DefaultStream, publisher.Stream())

	clubID := uuid.New()
	event := NewStepEvent(StepCompleted, clubID, clubsetup.StepAmenities, "amenity")
	require.NoError(t, publisher.Publish(context.Background(), event))

	messages, err := client.XRange(context.Background(), DefaultStream, "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, string(StepCompleted), messages[0].Values["type"])

	var decoded StepEvent
	require.NoError(t, json.Unmarshal([]byte(messages[0].Values["event"].(string)), &decoded))
	assert.Equal(t, event.ID, decoded.ID)
	assert.Equal(t, clubID, decoded.ClubID)
	assert.Equal(t, clubsetup.StepAmenities, decoded.Step)
}

func TestRedisStreamPublisherRejectsEmptyID(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	publisher := NewRedisStreamPublisher(client, "test:stream", nil)
	err := publisher.Publish(context.Background(), StepEvent{Type: StepCompleted})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "event ID cannot be empty")
}

func TestNewRedisClient(t *testing.T) {
	client, err := NewRedisClient("redis://localhost:6379/2")
	require.NoError(t, err)
	assert.Equal(t, 2, client.Options().DB)

	_, err = NewRedisClient("::not a url")
	require.Error(t, err)
}

func TestRedisStreamPublisherPanicsWithoutClient(t *testing.T) {
	assert.Panics(t, func() {
		NewRedisStreamPublisher(nil, "", nil)
	})
}
