package inventory

import (
	"fmt"
	"sync"
	"unicode/utf8"
)

const (
	ErrRoomNotFound    = InventoryError("room not found")
	ErrDeviceNotFound  = InventoryError("device not found")
	ErrSubItemNotFound = InventoryError("sub item index out of range")
	ErrLastRoom        = InventoryError("at least one room is required")
	ErrTooManyRooms    = InventoryError("maximum 5 rooms allowed")
	ErrRoomNameTooLong = InventoryError("room name cannot exceed 30 characters")
	ErrNegativeCount   = InventoryError("device count cannot be negative")
)

const MaxRooms = 5
const MaxRoomNameLength = 30

// Store is the authoritative in-memory inventory: the room tree, the
// baseline snapshot used for the unsaved-changes check, and the id of
// the room a client is currently working in. Every mutation validates
// first and applies atomically under the lock, a rejected mutation
// leaves the tree untouched.
type Store struct {
	lock *sync.Mutex

	rooms         []Room
	baseline      []Room
	currentRoomID int

	publisher EventPublisher
}

func NewStore(publisher EventPublisher) *Store {
	if publisher == nil {
		publisher = NullEventPublisher
	}

	rooms := DefaultRooms()

	return &Store{
		lock:          &sync.Mutex{},
		rooms:         rooms,
		baseline:      CloneRooms(rooms),
		currentRoomID: rooms[0].ID,
		publisher:     publisher,
	}
}

// Rooms returns a deep copy of the room tree, callers never share
// backing arrays with the store.
func (s *Store) Rooms() []Room {
	s.lock.Lock()
	defer s.lock.Unlock()

	return CloneRooms(s.rooms)
}

func (s *Store) Room(id int) (Room, bool) {
	s.lock.Lock()
	defer s.lock.Unlock()

	for _, room := range s.rooms {
		if room.ID == id {
			return room.Clone(), true
		}
	}

	return Room{}, false
}

func (s *Store) CurrentRoom() Room {
	s.lock.Lock()
	defer s.lock.Unlock()

	for _, room := range s.rooms {
		if room.ID == s.currentRoomID {
			return room.Clone()
		}
	}

	return s.rooms[0].Clone()
}

func (s *Store) SetCurrentRoom(id int) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, err := s.room(id); err != nil {
		return err
	}

	s.currentRoomID = id
	return nil
}

// ChangeCount grows or shrinks a device's sub-item list to newCount,
// after the cross-room quota check has accepted the proposal. New
// sub-items are named "<device name> <n>" with a 1-based index,
// shrinking truncates from the tail.
func (s *Store) ChangeCount(roomID int, deviceName string, newCount int) error {
	if newCount < 0 {
		return ErrNegativeCount
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	device, err := s.device(roomID, deviceName)
	if err != nil {
		return err
	}

	if err := CheckCount(s.rooms, roomID, deviceName, device.Type, newCount); err != nil {
		s.publisher.Publish(MutationRejected{RoomID: roomID, Device: deviceName, Reason: err})
		return err
	}

	if newCount < len(device.SubItems) {
		device.SubItems = device.SubItems[:newCount]
	}

	for len(device.SubItems) < newCount {
		device.SubItems = append(device.SubItems, SubItem{
			Name: fmt.Sprintf("%s %d", device.Name, len(device.SubItems)+1),
		})
	}

	device.Count = newCount

	s.publisher.Publish(CountChanged{RoomID: roomID, Device: deviceName, Count: newCount})
	return nil
}

func (s *Store) RenameSubItem(roomID int, deviceName string, index int, newName string) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	device, err := s.device(roomID, deviceName)
	if err != nil {
		return err
	}

	if index < 0 || index >= len(device.SubItems) {
		return ErrSubItemNotFound
	}

	device.SubItems[index].Name = newName

	s.publisher.Publish(SubItemRenamed{RoomID: roomID, Device: deviceName, Index: index, Name: newName})
	return nil
}

// ToggleCheckbox sets the doorbell flag on a smart lock sub-item. The
// system-wide doorbell ceiling is only consulted when checking, a
// different sub-item already holding the doorbell rejects the change.
func (s *Store) ToggleCheckbox(roomID int, deviceName string, index int, checked bool) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	device, err := s.device(roomID, deviceName)
	if err != nil {
		return err
	}

	if index < 0 || index >= len(device.SubItems) {
		return ErrSubItemNotFound
	}

	if checked && device.Type == SmartLock {
		if err := CheckDoorbell(s.rooms, roomID, deviceName, index); err != nil {
			s.publisher.Publish(MutationRejected{RoomID: roomID, Device: deviceName, Reason: err})
			return err
		}
	}

	device.SubItems[index].Checked = checked

	s.publisher.Publish(SubItemToggled{RoomID: roomID, Device: deviceName, Index: index, Checked: checked})
	return nil
}

// AddRoom creates a room with the default device list and makes it the
// current room. Identifiers are max(existing)+1 and never below 1.
func (s *Store) AddRoom(name string) (Room, error) {
	if utf8.RuneCountInString(name) > MaxRoomNameLength {
		return Room{}, ErrRoomNameTooLong
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	if len(s.rooms) >= MaxRooms {
		return Room{}, ErrTooManyRooms
	}

	newID := 1
	for _, room := range s.rooms {
		if room.ID >= newID {
			newID = room.ID + 1
		}
	}

	room := Room{ID: newID, Name: name, Devices: DefaultDevices()}
	s.rooms = append(s.rooms, room)
	s.currentRoomID = newID

	s.publisher.Publish(RoomAdded{Room: room.Clone()})
	return room.Clone(), nil
}

func (s *Store) DeleteRoom(id int) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if len(s.rooms) <= 1 {
		return ErrLastRoom
	}

	index := -1
	for i, room := range s.rooms {
		if room.ID == id {
			index = i
			break
		}
	}

	if index == -1 {
		return ErrRoomNotFound
	}

	s.rooms = append(s.rooms[:index], s.rooms[index+1:]...)

	if s.currentRoomID == id {
		s.currentRoomID = s.rooms[0].ID
	}

	s.publisher.Publish(RoomDeleted{RoomID: id})
	return nil
}

func (s *Store) RenameRoom(id int, name string) error {
	if utf8.RuneCountInString(name) > MaxRoomNameLength {
		return ErrRoomNameTooLong
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	room, err := s.room(id)
	if err != nil {
		return err
	}

	room.Name = name

	s.publisher.Publish(RoomRenamed{RoomID: id, Name: name})
	return nil
}

// SetRooms installs a freshly decoded tree and rebaselines, the store
// reports clean immediately afterwards. An empty tree falls back to
// the default single room.
func (s *Store) SetRooms(rooms []Room) {
	if len(rooms) == 0 {
		rooms = DefaultRooms()
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	s.rooms = CloneRooms(rooms)
	s.baseline = CloneRooms(rooms)
	s.currentRoomID = s.rooms[0].ID

	s.publisher.Publish(InventoryLoaded{Rooms: CloneRooms(rooms)})
}

// ResetToDefaults returns the store to a single default room, used
// after the remote endpoint has acknowledged a clear-all.
func (s *Store) ResetToDefaults() {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.rooms = DefaultRooms()
	s.baseline = DefaultRooms()
	s.currentRoomID = s.rooms[0].ID

	s.publisher.Publish(InventoryCleared{})
}

// Rebaseline snapshots the current tree as the last-persisted state.
func (s *Store) Rebaseline() {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.baseline = CloneRooms(s.rooms)
}

// RebaselineTo records the given tree as the last-persisted state,
// used after a successful submit. The submitter passes the snapshot it
// actually uploaded, so a mutation that landed while the upload was in
// flight still reads as dirty.
func (s *Store) RebaselineTo(rooms []Room) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.baseline = CloneRooms(rooms)
}

// IsDirty reports whether the tree differs structurally from the
// baseline snapshot.
func (s *Store) IsDirty() bool {
	s.lock.Lock()
	defer s.lock.Unlock()

	return !roomsEquivalent(s.rooms, s.baseline)
}

func (s *Store) room(id int) (*Room, error) {
	for i := range s.rooms {
		if s.rooms[i].ID == id {
			return &s.rooms[i], nil
		}
	}

	return nil, ErrRoomNotFound
}

func (s *Store) device(roomID int, name string) (*Device, error) {
	room, err := s.room(roomID)
	if err != nil {
		return nil, err
	}

	for i := range room.Devices {
		if room.Devices[i].Name == name {
			return &room.Devices[i], nil
		}
	}

	return nil, ErrDeviceNotFound
}
