package schema

import (
	"encoding/json"
	"github.com/dummyhome/controller/inventory"
	"github.com/tidwall/gjson"
)

// Decode maps a remote project file onto the internal room tree. The
// remote data is untrusted: every section is probed and unmarshalled
// independently, anything missing or malformed becomes an empty
// collection. Decode never fails. A project file with no rooms yields
// the default single room.
func Decode(data []byte) []inventory.Room {
	var roomRecords []RoomRecord
	section(data, "projectRooms.rooms", &roomRecords)

	if len(roomRecords) == 0 {
		return inventory.DefaultRooms()
	}

	var lightingDevices []LightingDevice
	section(data, "smartBuildingSystems.lightingSystem.lightingDevices", &lightingDevices)

	var lightingZones []LightingZone
	section(data, "smartBuildingSystems.lightingSystem.lightingZones", &lightingZones)

	var slidingDoors []SlidingDoorDevice
	section(data, "smartBuildingSystems.openingSystem.slidingDoorDevices", &slidingDoors)

	var exhaustFans []ExhaustFanRecord
	section(data, "smartBuildingSystems.exhaustFan", &exhaustFans)

	var garageDoors []GarageDoorController
	section(data, "smartBuildingDevices.garageDoorController", &garageDoors)

	var lockingControllers []LockingController
	section(data, "smartBuildingDevices.lockingControllers", &lockingControllers)

	var doorbells []Doorbell
	section(data, "smartBuildingDevices.doorbells", &doorbells)

	var rooms []inventory.Room

	for _, record := range roomRecords {
		var devices []inventory.Device
		devices = append(devices, extractLights(lightingZones, lightingDevices, record.ID)...)
		devices = append(devices, extractSlidingDoors(slidingDoors, record.ID)...)
		devices = append(devices, extractGarageDoors(garageDoors, record.ID)...)
		devices = append(devices, extractSmartLocks(lockingControllers, doorbells, record.ID)...)
		devices = append(devices, extractExhaustFans(exhaustFans, record.ID)...)

		rooms = append(rooms, inventory.Room{
			ID:      record.ID,
			Name:    record.DisplayName,
			Devices: devices,
		})
	}

	return rooms
}

// section unmarshals one nested collection, leaving the target alone
// when the path is absent or its content does not parse.
func section(data []byte, path string, target any) {
	result := gjson.GetBytes(data, path)
	if !result.Exists() {
		return
	}

	_ = json.Unmarshal([]byte(result.Raw), target)
}

// extractLights splits the room's lighting zone/device pairs into the
// non-dimmable and dimmable aggregates. A zone without a matching
// device record in the room is skipped.
func extractLights(zones []LightingZone, devices []LightingDevice, roomID int) []inventory.Device {
	nonDimmable := inventory.DefaultDevice(inventory.NonDimmableLight, 0)
	dimmable := inventory.DefaultDevice(inventory.DimmableLight, 0)

	for _, zone := range zones {
		device, found := lightingDeviceForZone(devices, zone.ID, roomID)
		if !found {
			continue
		}

		item := inventory.SubItem{Name: device.DisplayName}

		if zone.Dimmable {
			dimmable.SubItems = append(dimmable.SubItems, item)
		} else {
			nonDimmable.SubItems = append(nonDimmable.SubItems, item)
		}
	}

	nonDimmable.Count = len(nonDimmable.SubItems)
	dimmable.Count = len(dimmable.SubItems)

	return []inventory.Device{nonDimmable, dimmable}
}

func lightingDeviceForZone(devices []LightingDevice, zoneID int, roomID int) (LightingDevice, bool) {
	for _, device := range devices {
		if device.ID == zoneID && device.RoomID == roomID {
			return device, true
		}
	}

	return LightingDevice{}, false
}

// extractSlidingDoors splits the room's sliding doors by panel count,
// records with any other panel count are dropped.
func extractSlidingDoors(doors []SlidingDoorDevice, roomID int) []inventory.Device {
	twoPanel := inventory.DefaultDevice(inventory.SlidingDoor, 2)
	threePanel := inventory.DefaultDevice(inventory.SlidingDoor, 3)

	for _, door := range doors {
		if door.RoomID != roomID {
			continue
		}

		item := inventory.SubItem{Name: door.DisplayName}

		switch door.Panels {
		case 2:
			twoPanel.SubItems = append(twoPanel.SubItems, item)
		case 3:
			threePanel.SubItems = append(threePanel.SubItems, item)
		}
	}

	twoPanel.Count = len(twoPanel.SubItems)
	threePanel.Count = len(threePanel.SubItems)

	return []inventory.Device{twoPanel, threePanel}
}

func extractGarageDoors(controllers []GarageDoorController, roomID int) []inventory.Device {
	garageDoor := inventory.DefaultDevice(inventory.GarageDoor, 0)

	for _, controller := range controllers {
		if controller.RoomID != roomID {
			continue
		}

		garageDoor.SubItems = append(garageDoor.SubItems, inventory.SubItem{Name: controller.DisplayName})
	}

	garageDoor.Count = len(garageDoor.SubItems)

	return []inventory.Device{garageDoor}
}

// extractSmartLocks marks a lock's sub-item checked when some doorbell
// record references the lock's identifier.
func extractSmartLocks(controllers []LockingController, doorbells []Doorbell, roomID int) []inventory.Device {
	smartLock := inventory.DefaultDevice(inventory.SmartLock, 0)

	for _, controller := range controllers {
		if controller.RoomID != roomID {
			continue
		}

		smartLock.SubItems = append(smartLock.SubItems, inventory.SubItem{
			Name:    controller.DisplayName,
			Checked: hasDoorbell(doorbells, controller.ID),
		})
	}

	smartLock.Count = len(smartLock.SubItems)

	return []inventory.Device{smartLock}
}

func hasDoorbell(doorbells []Doorbell, smartLockID int) bool {
	for _, doorbell := range doorbells {
		if doorbell.SmartLockID == smartLockID {
			return true
		}
	}

	return false
}

func extractExhaustFans(fans []ExhaustFanRecord, roomID int) []inventory.Device {
	exhaustFan := inventory.DefaultDevice(inventory.ExhaustFan, 0)

	for _, fan := range fans {
		if fan.RoomID != roomID {
			continue
		}

		name := fan.DisplayName
		if name == "" {
			name = fan.Name
		}

		exhaustFan.SubItems = append(exhaustFan.SubItems, inventory.SubItem{Name: name})
	}

	exhaustFan.Count = len(exhaustFan.SubItems)

	return []inventory.Device{exhaustFan}
}
