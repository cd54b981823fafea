package testutil

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockEventHandlerRecords(t *testing.T) {
	handler := NewMockEventHandler("order.placed")
	assert.Equal(t, []string{"order.placed"}, handler.EventTypes())

	event := NewTestEvent("order.placed")
	require.NoError(t, handler.Handle(context.Background(), event))

	handled := handler.Handled()
	require.Len(t, handled, 1)
	assert.Equal(t, event.EventID(), handled[0].EventID())
	assert.Equal(t, 1, handler.HandledCount())
}

func TestMockEventHandlerError(t *testing.T) {
	handler := NewMockEventHandler()
	handler.SetError(errors.New("handler down"))

	err := handler.Handle(context.Background(), NewTestEvent("order.placed"))
	assert.Error(t, err)
	// events are still recorded on error
	assert.Equal(t, 1, handler.HandledCount())
}

func TestMockEventHandlerReset(t *testing.T) {
	handler := NewMockEventHandler()
	require.NoError(t, handler.Handle(context.Background(), NewTestEvent("a")))
	require.Equal(t, 1, handler.HandledCount())

	handler.Reset()
	assert.Zero(t, handler.HandledCount())
}

func TestWaitForEventCount(t *testing.T) {
	handler := NewMockEventHandler()

	go func() {
		time.Sleep(20 * time.Millisecond)
		_ = handler.Handle(context.Background(), NewTestEvent("a"))
		_ = handler.Handle(context.Background(), NewTestEvent("b"))
	}()

	assert.True(t, WaitForEventCount(t, handler, 2, time.Second))
	assert.False(t, WaitForCondition(t, func() bool { return false }, 30*time.Millisecond, 5*time.Millisecond))
}

func TestTestEventFields(t *testing.T) {
	event := NewTestEvent("cart.updated")

	assert.Equal(t, "cart.updated", event.EventType())
	assert.Equal(t, "TestAggregate", event.AggregateType())
	assert.NotZero(t, event.EventID())
	assert.WithinDuration(t, time.Now(), event.OccurredAt(), time.Second)
}
