package schema

import (
	"encoding/json"
	"github.com/dummyhome/controller/inventory"
	"github.com/stretchr/testify/assert"
	"testing"
)

func testRooms() []inventory.Room {
	rooms := inventory.DefaultRooms()

	setCount := func(index int, count int) {
		device := &rooms[0].Devices[index]
		for i := 0; i < count; i++ {
			device.SubItems = append(device.SubItems, inventory.SubItem{Name: device.Name})
		}
		device.Count = count
	}

	setCount(0, 2) // non-dimmable lights
	setCount(1, 1) // dimmable lights
	setCount(2, 1) // 2 panel sliding door
	setCount(3, 1) // 3 panel sliding door
	setCount(4, 1) // garage door
	setCount(5, 2) // smart locks
	setCount(6, 1) // exhaust fan

	rooms[0].Devices[5].SubItems[1].Checked = true

	return rooms
}

func TestEncode(t *testing.T) {
	t.Run("emits the project header, room records and smart switches", func(t *testing.T) {
		file := Encode(testRooms(), NewAllocator(), "983399104480051190", "Dummy Home")

		assert.Equal(t, "983399104480051190", file.ProjectID)
		assert.Equal(t, "Dummy Home", file.ProjectName)

		assert.Len(t, file.ProjectRooms.Rooms, 1)
		assert.Equal(t, RoomRecord{ID: 1, DisplayName: "Living Room", FloorID: 0}, file.ProjectRooms.Rooms[0])

		assert.Len(t, file.SmartSwitches, 1)
		assert.Equal(t, SmartSwitch{ID: 1001, DisplayName: "Smart Switch - Living Room", RoomID: 1}, file.SmartSwitches[0])
	})

	t.Run("lighting emits a device, zone and group triple sharing one id", func(t *testing.T) {
		file := Encode(testRooms(), NewAllocator(), "p", "n")

		lighting := file.SmartBuildingSystems.LightingSystem
		assert.Len(t, lighting.LightingDevices, 3)
		assert.Len(t, lighting.LightingZones, 3)
		assert.Len(t, lighting.LightingGroups, 3)

		for i := range lighting.LightingDevices {
			id := lighting.LightingDevices[i].ID
			assert.Equal(t, id, lighting.LightingZones[i].ID)
			assert.Equal(t, id, lighting.LightingGroups[i].ID)
			assert.Equal(t, []int{id}, lighting.LightingZones[i].LightingDeviceIDs)
			assert.Equal(t, []int{id}, lighting.LightingGroups[i].LightingZoneIDs)
		}

		// Non-dimmable devices encode first, then dimmable.
		assert.False(t, lighting.LightingZones[0].Dimmable)
		assert.False(t, lighting.LightingZones[1].Dimmable)
		assert.True(t, lighting.LightingZones[2].Dimmable)

		assert.Equal(t, 1, lighting.LightingDevices[0].ID)
		assert.Equal(t, 2, lighting.LightingDevices[1].ID)
		assert.Equal(t, 3, lighting.LightingDevices[2].ID)
	})

	t.Run("sliding doors carry panel count and the fixed dimension", func(t *testing.T) {
		file := Encode(testRooms(), NewAllocator(), "p", "n")

		doors := file.SmartBuildingSystems.OpeningSystem.SlidingDoorDevices
		assert.Len(t, doors, 2)

		assert.Equal(t, 101, doors[0].ID)
		assert.Equal(t, 2, doors[0].Panels)
		assert.Equal(t, 102, doors[1].ID)
		assert.Equal(t, 3, doors[1].Panels)

		for _, door := range doors {
			assert.Equal(t, Dimension{Width: 3675, Height: 2690}, door.Dimension)
		}
	})

	t.Run("garage doors carry the fixed dimension and range ids", func(t *testing.T) {
		file := Encode(testRooms(), NewAllocator(), "p", "n")

		garageDoors := file.SmartBuildingDevices.GarageDoorControllers
		assert.Len(t, garageDoors, 1)
		assert.Equal(t, 201, garageDoors[0].ID)
		assert.Equal(t, Dimension{Width: 3275, Height: 2675}, garageDoors[0].Dimension)
	})

	t.Run("a checked smart lock emits a doorbell back-referencing the lock", func(t *testing.T) {
		file := Encode(testRooms(), NewAllocator(), "p", "n")

		locks := file.SmartBuildingDevices.LockingControllers
		assert.Len(t, locks, 2)
		assert.Equal(t, 301, locks[0].ID)
		assert.Equal(t, 302, locks[1].ID)

		doorbells := file.SmartBuildingDevices.Doorbells
		assert.Len(t, doorbells, 1)
		assert.Equal(t, 401, doorbells[0].ID)
		assert.Equal(t, 302, doorbells[0].SmartLockID)
		assert.Equal(t, "Smart lock Doorbell", doorbells[0].DisplayName)
	})

	t.Run("exhaust fans start at the 600 range", func(t *testing.T) {
		file := Encode(testRooms(), NewAllocator(), "p", "n")

		fans := file.SmartBuildingSystems.ExhaustFans
		assert.Len(t, fans, 1)
		assert.Equal(t, 600, fans[0].ID)
	})

	t.Run("ids continue monotonically across encodes until the allocator resets", func(t *testing.T) {
		alloc := NewAllocator()

		first := Encode(testRooms(), alloc, "p", "n")
		second := Encode(testRooms(), alloc, "p", "n")

		assert.Equal(t, 1, first.SmartBuildingSystems.LightingSystem.LightingDevices[0].ID)
		assert.Equal(t, 4, second.SmartBuildingSystems.LightingSystem.LightingDevices[0].ID)

		alloc.Reset()

		third := Encode(testRooms(), alloc, "p", "n")
		assert.Equal(t, 1, third.SmartBuildingSystems.LightingSystem.LightingDevices[0].ID)
	})

	t.Run("EncodeEmpty emits only the header and room list", func(t *testing.T) {
		file := EncodeEmpty(testRooms(), "983399104480051190", "Dummy Home")

		assert.Equal(t, "983399104480051190", file.ProjectID)
		assert.Len(t, file.ProjectRooms.Rooms, 1)
		assert.Nil(t, file.SmartBuildingSystems)
		assert.Nil(t, file.SmartBuildingDevices)
		assert.Empty(t, file.SmartSwitches)

		data, err := json.Marshal(file)
		assert.NoError(t, err)
		assert.NotContains(t, string(data), "smartBuildingSystems")
		assert.NotContains(t, string(data), "smartBuildingDevices")
	})
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	t.Run("decoding an encoded tree preserves counts and checked flags", func(t *testing.T) {
		original := testRooms()

		file := Encode(original, NewAllocator(), "p", "n")

		data, err := json.Marshal(file)
		assert.NoError(t, err)

		decoded := Decode(data)
		assert.Len(t, decoded, len(original))

		for i, room := range original {
			assert.Equal(t, room.ID, decoded[i].ID)
			assert.Equal(t, room.Name, decoded[i].Name)
			assert.Len(t, decoded[i].Devices, len(room.Devices))

			for j, device := range room.Devices {
				assert.Equal(t, device.Type, decoded[i].Devices[j].Type)
				assert.Equal(t, device.Count, decoded[i].Devices[j].Count)

				for k, item := range device.SubItems {
					assert.Equal(t, item.Checked, decoded[i].Devices[j].SubItems[k].Checked)
				}
			}
		}
	})
}
