package sse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_PublishSubscribe(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe(TopicAdmin)
	defer cleanup()

	hub.Publish(TopicAdmin, Event{Name: "clock", Data: "payload"})

	select {
	case ev := <-ch:
		assert.Equal(t, TopicAdmin, ev.Topic)
		assert.Equal(t, "clock", ev.Name)
		assert.Equal(t, "payload", ev.Data)
	default:
		t.Fatal("expected an event")
	}
}

func TestHub_TopicsAreIsolated(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe("other")
	defer cleanup()

	hub.Publish(TopicAdmin, Event{Name: "clock"})

	select {
	case ev := <-ch:
		t.Fatalf("unexpected event %+v", ev)
	default:
	}
}

func TestHub_FullBufferDropsEvents(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe(TopicAdmin)
	defer cleanup()

	for i := 0; i < hub.bufferSize+5; i++ {
		hub.Publish(TopicAdmin, Event{Name: "clock", Data: i})
	}
	assert.Len(t, ch, hub.bufferSize)
}

func TestHub_Cleanup(t *testing.T) {
	hub := NewHub()

	_, cleanupA := hub.Subscribe(TopicAdmin)
	chB, cleanupB := hub.Subscribe(TopicAdmin)
	require.Equal(t, 2, hub.SubscriberCount(TopicAdmin))

	cleanupA()
	cleanupA()
	assert.Equal(t, 1, hub.SubscriberCount(TopicAdmin))
	assert.Equal(t, 1, hub.TotalSubscribers())

	cleanupB()
	_, open := <-chB
	assert.False(t, open)
	assert.Equal(t, 0, hub.TotalSubscribers())
}

func TestHub_CloseEndsSubscriptions(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe(TopicAdmin)
	hub.Close()

	_, open := <-ch
	assert.False(t, open)
	assert.Equal(t, 0, hub.TotalSubscribers())

	// cleanup after Close must not close the channel twice
	assert.NotPanics(t, cleanup)
}
