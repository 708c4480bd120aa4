package inventory

// Events published by the Store and the project service, consumed by
// the MQTT interface and the metrics listener.

type RoomAdded struct {
	Room Room
}

type RoomDeleted struct {
	RoomID int
}

type RoomRenamed struct {
	RoomID int
	Name   string
}

type CountChanged struct {
	RoomID int
	Device string
	Count  int
}

type SubItemRenamed struct {
	RoomID int
	Device string
	Index  int
	Name   string
}

type SubItemToggled struct {
	RoomID  int
	Device  string
	Index   int
	Checked bool
}

// MutationRejected is published when a quota check turns a mutation
// away, the store itself is untouched.
type MutationRejected struct {
	RoomID int
	Device string
	Reason error
}

type InventoryLoaded struct {
	Rooms []Room
}

type InventoryCleared struct{}

type ProjectSubmitted struct {
	Cleared bool
}

type ProjectSubmitFailed struct {
	Reason error
}
