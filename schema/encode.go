package schema

import (
	"fmt"
	"github.com/dummyhome/controller/inventory"
)

// Fixed physical dimensions the endpoint expects on door records.
var slidingDoorDimension = Dimension{Width: 3675, Height: 2690}
var garageDoorDimension = Dimension{Width: 3275, Height: 2675}

// SmartSwitchIDBase offsets smart switch identifiers from room ids.
const SmartSwitchIDBase = 1000

// Encode renders the room tree as a complete project file, allocating
// fresh record identifiers from alloc. Identifiers are monotonic
// within the allocator's lifetime, repeated encodes of the same tree
// produce different ids until the allocator is reset.
func Encode(rooms []inventory.Room, alloc *Allocator, projectID string, projectName string) ProjectFile {
	file := EncodeEmpty(rooms, projectID, projectName)

	file.SmartBuildingSystems = &SmartBuildingSystems{
		LightingSystem: LightingSystem{
			LightingGroups:  []LightingGroup{},
			LightingZones:   []LightingZone{},
			LightingDevices: []LightingDevice{},
		},
		OpeningSystem: OpeningSystem{
			SlidingDoorDevices: []SlidingDoorDevice{},
		},
		ExhaustFans: []ExhaustFanRecord{},
	}

	file.SmartBuildingDevices = &SmartBuildingDevices{
		GarageDoorControllers: []GarageDoorController{},
		LockingControllers:    []LockingController{},
		Doorbells:             []Doorbell{},
	}

	for _, room := range rooms {
		file.SmartSwitches = append(file.SmartSwitches, SmartSwitch{
			ID:          SmartSwitchIDBase + room.ID,
			DisplayName: fmt.Sprintf("Smart Switch - %s", room.Name),
			RoomID:      room.ID,
		})
	}

	for _, room := range rooms {
		for _, device := range room.Devices {
			switch device.Type {
			case inventory.NonDimmableLight:
				appendLighting(file.SmartBuildingSystems, device, false, room.ID, alloc)
			case inventory.DimmableLight:
				appendLighting(file.SmartBuildingSystems, device, true, room.ID, alloc)
			case inventory.SlidingDoor:
				appendSlidingDoors(file.SmartBuildingSystems, device, room.ID, alloc)
			case inventory.GarageDoor:
				appendGarageDoors(file.SmartBuildingDevices, device, room.ID, alloc)
			case inventory.SmartLock:
				appendSmartLocks(file.SmartBuildingDevices, device, room.ID, alloc)
			case inventory.ExhaustFan:
				appendExhaustFans(file.SmartBuildingSystems, device, room.ID, alloc)
			}
		}
	}

	return file
}

// EncodeEmpty renders the clear-all payload: project header and room
// list only, no device sections.
func EncodeEmpty(rooms []inventory.Room, projectID string, projectName string) ProjectFile {
	records := []RoomRecord{}

	for _, room := range rooms {
		records = append(records, RoomRecord{
			ID:          room.ID,
			DisplayName: room.Name,
			FloorID:     0,
		})
	}

	return ProjectFile{
		ProjectID:   projectID,
		ProjectName: projectName,
		ProjectRooms: ProjectRooms{
			Rooms: records,
		},
	}
}

// appendLighting emits the device, zone and group triple per sub-item,
// all three sharing one identifier.
func appendLighting(systems *SmartBuildingSystems, device inventory.Device, dimmable bool, roomID int, alloc *Allocator) {
	for _, item := range device.SubItems {
		id := alloc.NextLighting()

		systems.LightingSystem.LightingDevices = append(systems.LightingSystem.LightingDevices, LightingDevice{
			ID:          id,
			DisplayName: item.Name,
			RoomID:      roomID,
			IsFeatured:  true,
		})

		systems.LightingSystem.LightingZones = append(systems.LightingSystem.LightingZones, LightingZone{
			ID:                id,
			ZoneID:            0,
			Dimmable:          dimmable,
			LightingDeviceIDs: []int{id},
		})

		systems.LightingSystem.LightingGroups = append(systems.LightingSystem.LightingGroups, LightingGroup{
			ID:              id,
			DisplayName:     item.Name,
			IsFeatured:      true,
			LightingZoneIDs: []int{id},
		})
	}
}

func appendSlidingDoors(systems *SmartBuildingSystems, device inventory.Device, roomID int, alloc *Allocator) {
	for _, item := range device.SubItems {
		systems.OpeningSystem.SlidingDoorDevices = append(systems.OpeningSystem.SlidingDoorDevices, SlidingDoorDevice{
			ID:          alloc.NextSlidingDoor(),
			DisplayName: item.Name,
			RoomID:      roomID,
			IsFeatured:  true,
			Panels:      device.Panels,
			Dimension:   slidingDoorDimension,
		})
	}
}

func appendGarageDoors(devices *SmartBuildingDevices, device inventory.Device, roomID int, alloc *Allocator) {
	for _, item := range device.SubItems {
		devices.GarageDoorControllers = append(devices.GarageDoorControllers, GarageDoorController{
			ID:          alloc.NextGarageDoor(),
			DisplayName: item.Name,
			RoomID:      roomID,
			IsFeatured:  true,
			Dimension:   garageDoorDimension,
		})
	}
}

// appendSmartLocks emits one locking controller per sub-item, plus a
// doorbell record referencing the lock when the sub-item is checked.
func appendSmartLocks(devices *SmartBuildingDevices, device inventory.Device, roomID int, alloc *Allocator) {
	for _, item := range device.SubItems {
		id := alloc.NextSmartLock()

		devices.LockingControllers = append(devices.LockingControllers, LockingController{
			ID:          id,
			DisplayName: item.Name,
			RoomID:      roomID,
			IsFeatured:  true,
		})

		if item.Checked {
			devices.Doorbells = append(devices.Doorbells, Doorbell{
				ID:          alloc.NextDoorbell(),
				DisplayName: fmt.Sprintf("%s Doorbell", item.Name),
				RoomID:      roomID,
				SmartLockID: id,
			})
		}
	}
}

func appendExhaustFans(systems *SmartBuildingSystems, device inventory.Device, roomID int, alloc *Allocator) {
	for _, item := range device.SubItems {
		systems.ExhaustFans = append(systems.ExhaustFans, ExhaustFanRecord{
			ID:          alloc.NextExhaustFan(),
			ZoneID:      0,
			DisplayName: item.Name,
			RoomID:      roomID,
			IsFeatured:  true,
		})
	}
}
