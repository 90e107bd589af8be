package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishInvokesSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()

	var seen []Event
	d.Subscribe(EventStaffOnboarded, func(_ context.Context, e Event) error {
		seen = append(seen, e)
		return nil
	})

	event := Event{ID: "evt-1", Type: EventStaffOnboarded, Timestamp: time.Now()}
	require.NoError(t, d.Publish(context.Background(), event))

	require.Len(t, seen, 1)
	assert.Equal(t, "evt-1", seen[0].ID)
}

func TestPublishIgnoresOtherEventTypes(t *testing.T) {
	d := NewInMemoryDispatcher()

	called := false
	d.Subscribe(EventDepartmentCreated, func(_ context.Context, _ Event) error {
		called = true
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), Event{Type: EventStaffOnboarded}))
	assert.False(t, called)
}

func TestFailingHandlerDoesNotStopOthers(t *testing.T) {
	d := NewInMemoryDispatcher()

	var secondCalled bool
	d.Subscribe(EventAdminPromoted, func(_ context.Context, _ Event) error {
		return errors.New("handler failure")
	})
	d.Subscribe(EventAdminPromoted, func(_ context.Context, _ Event) error {
		secondCalled = true
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), Event{Type: EventAdminPromoted}))
	assert.True(t, secondCalled)
}
