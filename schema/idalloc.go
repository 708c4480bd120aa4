package schema

// External record identifier ranges, one per category.
const (
	LightingIDFloor    = 1   // 1-100
	SlidingDoorIDFloor = 101 // 101-200
	GarageDoorIDFloor  = 201 // 201-300
	SmartLockIDFloor   = 301 // 301-400
	DoorbellIDFloor    = 401 // 401-500
	ExhaustFanIDFloor  = 600 // 600-605
)

// Allocator hands out external record identifiers monotonically from
// the per-category ranges. It is a plain value owned by whoever drives
// encoding, Reset returns every counter to its range floor and is
// called after the remote project file has been successfully
// rewritten.
type Allocator struct {
	nextLighting    int
	nextSlidingDoor int
	nextGarageDoor  int
	nextSmartLock   int
	nextDoorbell    int
	nextExhaustFan  int
}

func NewAllocator() *Allocator {
	a := &Allocator{}
	a.Reset()
	return a
}

func (a *Allocator) Reset() {
	a.nextLighting = LightingIDFloor
	a.nextSlidingDoor = SlidingDoorIDFloor
	a.nextGarageDoor = GarageDoorIDFloor
	a.nextSmartLock = SmartLockIDFloor
	a.nextDoorbell = DoorbellIDFloor
	a.nextExhaustFan = ExhaustFanIDFloor
}

func (a *Allocator) NextLighting() int {
	id := a.nextLighting
	a.nextLighting++
	return id
}

func (a *Allocator) NextSlidingDoor() int {
	id := a.nextSlidingDoor
	a.nextSlidingDoor++
	return id
}

func (a *Allocator) NextGarageDoor() int {
	id := a.nextGarageDoor
	a.nextGarageDoor++
	return id
}

func (a *Allocator) NextSmartLock() int {
	id := a.nextSmartLock
	a.nextSmartLock++
	return id
}

func (a *Allocator) NextDoorbell() int {
	id := a.nextDoorbell
	a.nextDoorbell++
	return id
}

func (a *Allocator) NextExhaustFan() int {
	id := a.nextExhaustFan
	a.nextExhaustFan++
	return id
}
