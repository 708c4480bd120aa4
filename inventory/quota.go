package inventory

type InventoryError string

func (e InventoryError) Error() string {
	return string(e)
}

const (
	ErrTooManyLights       = InventoryError("total lights (dimmable + non-dimmable) across all rooms cannot exceed 40")
	ErrTooManySlidingDoors = InventoryError("total sliding doors (2 panel + 3 panel) across all rooms cannot exceed 20")
	ErrTooManyGarageDoors  = InventoryError("maximum 1 garage door allowed across all rooms")
	ErrTooManySmartLocks   = InventoryError("total smart locks across all rooms cannot exceed 5")
	ErrTooManyExhaustFans  = InventoryError("total exhaust fans across all rooms cannot exceed 5")
	ErrTooManyDoorbells    = InventoryError("only 1 doorbell is allowed across all rooms, uncheck the existing doorbell first")
)

const (
	MaxTotalLights       = 40
	MaxTotalSlidingDoors = 20
	MaxTotalGarageDoors  = 1
	MaxTotalSmartLocks   = 5
	MaxTotalExhaustFans  = 5
	MaxTotalDoorbells    = 1
)

// sharesQuota reports whether two categories count against the same
// ceiling. Both light types share one, as do both sliding door
// variants, every other category stands alone.
func sharesQuota(a DeviceType, b DeviceType) bool {
	if a == NonDimmableLight || a == DimmableLight {
		return b == NonDimmableLight || b == DimmableLight
	}

	return a == b
}

// CheckCount decides whether setting the named device in roomID to
// proposed keeps the category's aggregate across all rooms within its
// ceiling. It only inspects the snapshot it is given and never
// mutates anything.
func CheckCount(rooms []Room, roomID int, deviceName string, deviceType DeviceType, proposed int) error {
	total := 0

	for _, room := range rooms {
		for _, device := range room.Devices {
			if !sharesQuota(deviceType, device.Type) {
				continue
			}

			if room.ID == roomID && device.Name == deviceName {
				total += proposed
			} else {
				total += device.Count
			}
		}
	}

	switch deviceType {
	case NonDimmableLight, DimmableLight:
		if total > MaxTotalLights {
			return ErrTooManyLights
		}
	case SlidingDoor:
		if total > MaxTotalSlidingDoors {
			return ErrTooManySlidingDoors
		}
	case GarageDoor:
		if total > MaxTotalGarageDoors {
			return ErrTooManyGarageDoors
		}
	case SmartLock:
		if total > MaxTotalSmartLocks {
			return ErrTooManySmartLocks
		}
	case ExhaustFan:
		if total > MaxTotalExhaustFans {
			return ErrTooManyExhaustFans
		}
	}

	return nil
}

// CheckDoorbell decides whether the identified smart lock sub-item may
// have its doorbell checked. At most one doorbell exists system-wide,
// a sub-item that is already the checked one may always stay checked.
func CheckDoorbell(rooms []Room, roomID int, deviceName string, index int) error {
	for _, room := range rooms {
		for _, device := range room.Devices {
			if device.Type != SmartLock {
				continue
			}

			for i, item := range device.SubItems {
				if !item.Checked {
					continue
				}

				if room.ID == roomID && device.Name == deviceName && i == index {
					continue
				}

				return ErrTooManyDoorbells
			}
		}
	}

	return nil
}
