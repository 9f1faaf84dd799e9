package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatcherDeliversToAllHandlers(t *testing.T) {
	d := NewInMemoryDispatcher()
	var calls []string

	d.Subscribe(EventUserCreated, func(_ context.Context, e Event) error {
		calls = append(calls, "first:"+e.SubjectID)
		return errors.New("first failed")
	})
	d.Subscribe(EventUserCreated, func(_ context.Context, e Event) error {
		calls = append(calls, "second:"+e.SubjectID)
		return nil
	})
	d.Subscribe(EventUserDeleted, func(context.Context, Event) error {
		calls = append(calls, "deleted")
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventUserCreated, SubjectID: "7"})
	assert.EqualError(t, err, "first failed")
	assert.Equal(t, []string{"first:7", "second:7"}, calls)
}

func TestDispatcherWithoutListeners(t *testing.T) {
	d := NewInMemoryDispatcher()
	assert.NoError(t, d.Publish(context.Background(), Event{Type: EventUserUpdated}))
}
