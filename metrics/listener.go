package metrics

import (
	"github.com/dummyhome/controller/inventory"
)

type roomLister interface {
	Rooms() []inventory.Room
}

// Listener keeps the gauges in step with the inventory by consuming
// events from the bus.
type Listener struct {
	Metrics         *Metrics
	Store           roomLister
	EventSubscriber inventory.EventSubscriber

	stop chan bool
}

func (l *Listener) Start() {
	l.stop = make(chan bool, 1)

	ch := make(chan any, 100)
	l.EventSubscriber.Subscribe(ch)

	l.Metrics.Observe(l.Store.Rooms())

	go l.handleEvents(ch)
}

func (l *Listener) Stop() {
	if l.stop != nil {
		l.stop <- true
	}
}

func (l *Listener) handleEvents(ch chan any) {
	for {
		select {
		case event := <-ch:
			l.updateOnEvent(event)
		case <-l.stop:
			return
		}
	}
}

func (l *Listener) updateOnEvent(e any) {
	switch event := e.(type) {
	case inventory.MutationRejected:
		l.Metrics.QuotaRejected(event.Device)
	case inventory.ProjectSubmitted:
		l.Metrics.SubmitSucceeded()
		l.Metrics.Observe(l.Store.Rooms())
	case inventory.ProjectSubmitFailed:
		l.Metrics.SubmitFailed()
	case inventory.RoomAdded, inventory.RoomDeleted, inventory.RoomRenamed,
		inventory.CountChanged, inventory.SubItemRenamed, inventory.SubItemToggled,
		inventory.InventoryLoaded, inventory.InventoryCleared:
		l.Metrics.Observe(l.Store.Rooms())
	}
}
