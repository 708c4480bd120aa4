package inventory

// DeviceType is the closed set of device categories a room carries.
// Codec and validator code switches exhaustively over these values.
type DeviceType int

const (
	NonDimmableLight DeviceType = iota
	DimmableLight
	SlidingDoor
	GarageDoor
	SmartLock
	ExhaustFan
)

func (t DeviceType) String() string {
	switch t {
	case NonDimmableLight:
		return "non_dimmable_light"
	case DimmableLight:
		return "dimmable_light"
	case SlidingDoor:
		return "sliding_door"
	case GarageDoor:
		return "garage_door"
	case SmartLock:
		return "smart_lock"
	case ExhaustFan:
		return "exhaust_fan"
	default:
		return "unknown"
	}
}

// SubItem is a single concrete sub-device instance. Checked marks a
// doorbell and is only meaningful on smart locks.
type SubItem struct {
	Name    string
	Checked bool
}

// Device is the per-category aggregate within a room. Count always
// equals len(SubItems) after a mutation completes. Panels is only set
// for sliding doors. MaxDevices is display metadata for clients, the
// cross-room ceilings in quota.go are the enforced limits.
type Device struct {
	Name       string
	Status     string
	Count      int
	Type       DeviceType
	Panels     int
	MaxDevices int
	SubItems   []SubItem
}

func (d Device) Clone() Device {
	clone := d
	clone.SubItems = append([]SubItem(nil), d.SubItems...)
	return clone
}

type Room struct {
	ID      int
	Name    string
	Devices []Device
}

func (r Room) Clone() Room {
	clone := r
	clone.Devices = make([]Device, 0, len(r.Devices))

	for _, device := range r.Devices {
		clone.Devices = append(clone.Devices, device.Clone())
	}

	return clone
}

// CloneRooms deep copies a room tree, used for baseline snapshots and
// for handing state out of the store without sharing backing arrays.
func CloneRooms(rooms []Room) []Room {
	clone := make([]Room, 0, len(rooms))

	for _, room := range rooms {
		clone = append(clone, room.Clone())
	}

	return clone
}

// DefaultDevice returns the empty template for a category. The panels
// argument is only consulted for sliding doors.
func DefaultDevice(t DeviceType, panels int) Device {
	switch t {
	case NonDimmableLight:
		return Device{Name: "Non-dimmable lights", Status: "Off", Type: t, MaxDevices: 20}
	case DimmableLight:
		return Device{Name: "Dimmable lights", Status: "Off", Type: t, MaxDevices: 20}
	case SlidingDoor:
		name := "2 Panel sliding door"
		if panels == 3 {
			name = "3 Panel sliding door"
		}
		return Device{Name: name, Status: "Closed", Type: t, Panels: panels, MaxDevices: 10}
	case GarageDoor:
		return Device{Name: "Garage door", Status: "Closed", Type: t, MaxDevices: 1}
	case SmartLock:
		return Device{Name: "Smart lock", Status: "Active", Type: t, MaxDevices: 5}
	case ExhaustFan:
		return Device{Name: "Exhaust fan", Status: "Off", Type: t, MaxDevices: 5}
	default:
		return Device{}
	}
}

// DefaultDevices is the fixed category list every room starts with, in
// the order the rest of the system expects.
func DefaultDevices() []Device {
	return []Device{
		DefaultDevice(NonDimmableLight, 0),
		DefaultDevice(DimmableLight, 0),
		DefaultDevice(SlidingDoor, 2),
		DefaultDevice(SlidingDoor, 3),
		DefaultDevice(GarageDoor, 0),
		DefaultDevice(SmartLock, 0),
		DefaultDevice(ExhaustFan, 0),
	}
}

// DefaultRooms is the fallback inventory used before a remote load has
// succeeded and after a clear-all.
func DefaultRooms() []Room {
	return []Room{
		{
			ID:      1,
			Name:    "Living Room",
			Devices: DefaultDevices(),
		},
	}
}
