package inventory

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestEventBus(t *testing.T) {
	t.Run("subscribers receive published events", func(t *testing.T) {
		listenCh := make(chan any, 1)
		expectedEvent := RoomDeleted{RoomID: 2}

		eb := NewEventBus()
		eb.Subscribe(listenCh)
		eb.Publish(expectedEvent)

		select {
		case actualEvent := <-listenCh:
			assert.Equal(t, expectedEvent, actualEvent)
		default:
			assert.Fail(t, "no event received")
		}
	})

	t.Run("unsubscribed channels stop receiving events", func(t *testing.T) {
		listenCh := make(chan any, 1)

		eb := NewEventBus()
		eb.Subscribe(listenCh)
		eb.Unsubscribe(listenCh)
		eb.Publish(RoomDeleted{RoomID: 2})

		select {
		case <-listenCh:
			assert.Fail(t, "event received after unsubscribe")
		default:
		}
	})

	t.Run("a full subscriber channel does not block publishing", func(t *testing.T) {
		listenCh := make(chan any)

		eb := NewEventBus()
		eb.Subscribe(listenCh)
		eb.Publish(InventoryCleared{})
	})
}
