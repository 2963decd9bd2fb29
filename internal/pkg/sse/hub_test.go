package sse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_PublishToSubscriber(t *testing.T) {
	hub := NewHub(4)
	ch, cleanup := hub.Subscribe("u1")
	defer cleanup()

	hub.Publish("u1", Event{Event: "leave.submitted", Data: "r1"})
	hub.Publish("u2", Event{Event: "leave.submitted", Data: "other"})

	require.Len(t, ch, 1)
	ev := <-ch
	assert.Equal(t, "u1", ev.UserID)
	assert.Equal(t, "leave.submitted", ev.Event)
	assert.Equal(t, "r1", ev.Data)
}

func TestHub_DropsWhenFull(t *testing.T) {
	hub := NewHub(1)
	ch, cleanup := hub.Subscribe("u1")
	defer cleanup()

	hub.Publish("u1", Event{Event: "a"})
	hub.Publish("u1", Event{Event: "b"})

	require.Len(t, ch, 1)
	assert.Equal(t, "a", (<-ch).Event)
}

func TestHub_CleanupAndCounts(t *testing.T) {
	hub := NewHub(0)
	_, c1 := hub.Subscribe("u1")
	_, c2 := hub.Subscribe("u1")
	_, c3 := hub.Subscribe("u2")

	assert.Equal(t, 2, hub.SubscriberCount("u1"))
	assert.Equal(t, 3, hub.TotalSubscribers())

	c1()
	c1()
	assert.Equal(t, 1, hub.SubscriberCount("u1"))

	c2()
	c3()
	assert.Equal(t, 0, hub.TotalSubscribers())
}

func TestHub_Close(t *testing.T) {
	hub := NewHub(2)
	ch, cleanup := hub.Subscribe("u1")

	hub.Close()
	_, open := <-ch
	assert.False(t, open)
	cleanup()

	late, lateCleanup := hub.Subscribe("u1")
	defer lateCleanup()
	_, open = <-late
	assert.False(t, open)
	assert.Equal(t, 0, hub.TotalSubscribers())
}
