package v1

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dummyhome/controller/inventory"
	"github.com/gorilla/websocket"
	"github.com/shimmeringbee/logwrap"
)

type eventsController struct {
	store       *inventory.Store
	eventbus    inventory.EventSubscriber
	eventMapper eventMapper
	logger      logwrap.Logger
}

const ConnectionEventBufferSize = 16

func (z *eventsController) serveServerSideEvent(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Expose-Headers", "Content-Type")

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	doneCh := r.Context().Done()
	eventsCh := make(chan any, ConnectionEventBufferSize)

	z.eventbus.Subscribe(eventsCh)
	defer z.eventbus.Unsubscribe(eventsCh)

	flusher := w.(http.Flusher)

	z.sendLoop(func(b []byte) error {
		data := append(b, '\n', '\n')
		if n, err := w.Write(data); err != nil {
			return err
		} else if len(data) != n {
			return fmt.Errorf("failed to send full event: %d != %d", len(data), n)
		}

		flusher.Flush()
		return nil
	}, eventsCh, doneCh)
}

var wsUpgrader = websocket.Upgrader{}

func (z *eventsController) serveWebsocket(w http.ResponseWriter, r *http.Request) {
	c, err := wsUpgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	defer c.Close()

	z.serveWebsocketConnection(c)
}

func (z *eventsController) serveWebsocketConnection(c *websocket.Conn) {
	eventsCh := make(chan any, ConnectionEventBufferSize)
	shutdownCh := make(chan struct{}, 1)

	z.eventbus.Subscribe(eventsCh)

	// Signal shutdown before closing the events channel, the send loop
	// must not wake on the close first. The buffer keeps the send from
	// blocking when the loop has already exited on a write failure.
	defer func() {
		z.eventbus.Unsubscribe(eventsCh)

		shutdownCh <- struct{}{}
		close(eventsCh)
	}()

	go z.sendLoop(func(b []byte) error {
		return c.WriteMessage(websocket.TextMessage, b)
	}, eventsCh, shutdownCh)

	// Drain the connection until the client goes away.
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			return
		}
	}
}

func (z *eventsController) sendLoop(publish func([]byte) error, ch chan any, shutCh <-chan struct{}) {
	initial := z.eventMapper.InitialMessage(z.store.Rooms())

	if d, err := json.Marshal(initial); err != nil {
		z.logger.LogError(context.Background(), "Failed to marshal initial event message.", logwrap.Err(err))
		return
	} else if err := publish(d); err != nil {
		z.logger.LogError(context.Background(), "Failed to send initial event message.", logwrap.Err(err))
		return
	}

	for {
		select {
		case event := <-ch:
			if event == nil {
				return
			}

			msg, ok := z.eventMapper.MapEvent(event)
			if !ok {
				continue
			}

			if d, err := json.Marshal(msg); err != nil {
				z.logger.LogError(context.Background(), "Failed to marshal event message.", logwrap.Err(err))
				return
			} else if err := publish(d); err != nil {
				z.logger.LogError(context.Background(), "Failed to send event message.", logwrap.Err(err))
				return
			}
		case <-shutCh:
			return
		}
	}
}

type EventMessage struct {
	Type    string
	Payload any
}

type eventMapper struct{}

func (m eventMapper) InitialMessage(rooms []inventory.Room) EventMessage {
	apiRooms := make([]ExportedRoom, 0, len(rooms))
	for _, room := range rooms {
		apiRooms = append(apiRooms, exportRoom(room))
	}

	return EventMessage{Type: "InventoryState", Payload: apiRooms}
}

func (m eventMapper) MapEvent(e any) (EventMessage, bool) {
	switch event := e.(type) {
	case inventory.RoomAdded:
		return EventMessage{Type: "RoomAdded", Payload: exportRoom(event.Room)}, true
	case inventory.RoomDeleted:
		return EventMessage{Type: "RoomDeleted", Payload: event.RoomID}, true
	case inventory.RoomRenamed:
		return EventMessage{Type: "RoomRenamed", Payload: event}, true
	case inventory.CountChanged:
		return EventMessage{Type: "CountChanged", Payload: event}, true
	case inventory.SubItemRenamed:
		return EventMessage{Type: "SubItemRenamed", Payload: event}, true
	case inventory.SubItemToggled:
		return EventMessage{Type: "SubItemToggled", Payload: event}, true
	case inventory.InventoryLoaded:
		return m.InitialMessage(event.Rooms), true
	case inventory.InventoryCleared:
		return EventMessage{Type: "InventoryCleared"}, true
	case inventory.ProjectSubmitted:
		return EventMessage{Type: "ProjectSubmitted", Payload: event.Cleared}, true
	case inventory.ProjectSubmitFailed:
		return EventMessage{Type: "ProjectSubmitFailed", Payload: event.Reason.Error()}, true
	}

	return EventMessage{}, false
}
