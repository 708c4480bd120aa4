package mqtt

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/dummyhome/controller/inventory"
	"github.com/shimmeringbee/logwrap"
)

type Publisher func(ctx context.Context, topic string, payload []byte) error

type mqttError string

func (m mqttError) Error() string {
	return string(m)
}

const UnknownTopic = mqttError("unknown topic")

type ProjectService interface {
	Submit(ctx context.Context) error
	ClearAll(ctx context.Context) error
}

type Interface struct {
	Publisher Publisher
	stop      chan bool

	Store           *inventory.Store
	Service         ProjectService
	EventSubscriber inventory.EventSubscriber

	Logger logwrap.Logger

	PublishStateOnConnect bool
}

func (i *Interface) IncomingMessage(ctx context.Context, topic string, payload []byte) error {
	switch topic {
	case "project/submit":
		return i.Service.Submit(ctx)
	case "project/clear":
		return i.Service.ClearAll(ctx)
	}

	return fmt.Errorf("%w: %s", UnknownTopic, topic)
}

func EmptyPublisher(ctx context.Context, topic string, payload []byte) error {
	return nil
}

func (i *Interface) Connected(ctx context.Context, publisher Publisher) error {
	i.Publisher = publisher

	if i.PublishStateOnConnect {
		i.Logger.LogInfo(ctx, "MQTT connected, publishing current state of all rooms.")
		go i.publishAll()
	}

	return nil
}

func (i *Interface) Disconnected() {
	i.Publisher = EmptyPublisher
}

func (i *Interface) Start() {
	i.stop = make(chan bool, 1)

	ch := make(chan any, 100)
	i.EventSubscriber.Subscribe(ch)

	go i.handleEvents(ch)
}

func (i *Interface) Stop() {
	if i.stop != nil {
		i.stop <- true
	}
}

func (i *Interface) handleEvents(ch chan any) {
	for {
		select {
		case event := <-ch:
			i.serviceUpdateOnEvent(event)
		case <-i.stop:
			return
		}
	}
}

const MaximumServiceUpdateTime = 1 * time.Second

func (i *Interface) serviceUpdateOnEvent(e any) {
	ctx, cancel := context.WithTimeout(context.Background(), MaximumServiceUpdateTime)
	defer cancel()

	switch event := e.(type) {
	case inventory.RoomAdded:
		i.publishRoom(ctx, event.Room.ID)
	case inventory.RoomRenamed:
		i.publishRoom(ctx, event.RoomID)
	case inventory.CountChanged:
		i.publishRoom(ctx, event.RoomID)
	case inventory.SubItemRenamed:
		i.publishRoom(ctx, event.RoomID)
	case inventory.SubItemToggled:
		i.publishRoom(ctx, event.RoomID)
	case inventory.RoomDeleted:
		i.publishDeleted(ctx, event.RoomID)
	case inventory.InventoryLoaded:
		i.publishAll()
	case inventory.InventoryCleared:
		i.publishAll()
	case inventory.ProjectSubmitted:
		i.publishSubmitResult(ctx, "submitted")
		i.publishAll()
	case inventory.ProjectSubmitFailed:
		i.publishSubmitResult(ctx, "failed")
	default:
		return
	}

	i.publishDirty(ctx)
}

func (i *Interface) publishAll() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, room := range i.Store.Rooms() {
		i.publishRoomState(ctx, room)
	}
}

func (i *Interface) publishRoom(ctx context.Context, id int) {
	room, found := i.Store.Room(id)
	if !found {
		return
	}

	i.publishRoomState(ctx, room)
}

func (i *Interface) publishRoomState(ctx context.Context, room inventory.Room) {
	payload, err := json.Marshal(room)
	if err != nil {
		i.Logger.LogError(ctx, "Failed to marshal room state for mqtt.", logwrap.Err(err))
		return
	}

	topic := fmt.Sprintf("rooms/%d", room.ID)

	if err := i.Publisher(ctx, topic, payload); err != nil {
		i.Logger.LogError(ctx, "Failed to publish room state to mqtt.", logwrap.Datum("topic", topic), logwrap.Err(err))
	}
}

func (i *Interface) publishDeleted(ctx context.Context, id int) {
	// Retained messages are cleared by publishing an empty payload.
	topic := fmt.Sprintf("rooms/%d", id)

	if err := i.Publisher(ctx, topic, []byte{}); err != nil {
		i.Logger.LogError(ctx, "Failed to clear room state on mqtt.", logwrap.Datum("topic", topic), logwrap.Err(err))
	}
}

func (i *Interface) publishDirty(ctx context.Context) {
	payload := []byte(strconv.FormatBool(i.Store.IsDirty()))

	if err := i.Publisher(ctx, "project/dirty", payload); err != nil {
		i.Logger.LogError(ctx, "Failed to publish dirty flag to mqtt.", logwrap.Err(err))
	}
}

func (i *Interface) publishSubmitResult(ctx context.Context, result string) {
	if err := i.Publisher(ctx, "project/lastsubmit", []byte(result)); err != nil {
		i.Logger.LogError(ctx, "Failed to publish submit result to mqtt.", logwrap.Err(err))
	}
}
