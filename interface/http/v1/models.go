package v1

import (
	"github.com/dummyhome/controller/inventory"
)

type ExportedSubItem struct {
	Name    string
	Checked bool
}

type ExportedDevice struct {
	Name       string
	Status     string
	Category   string
	Count      int
	Panels     int
	MaxDevices int
	SubItems   []ExportedSubItem
}

type ExportedRoom struct {
	ID      int
	Name    string
	Devices []ExportedDevice
}

type ProjectStatus struct {
	Dirty      bool
	Submitting bool
}

func exportSubItem(item inventory.SubItem) ExportedSubItem {
	return ExportedSubItem{
		Name:    item.Name,
		Checked: item.Checked,
	}
}

func exportDevice(device inventory.Device) ExportedDevice {
	subItems := make([]ExportedSubItem, 0, len(device.SubItems))
	for _, item := range device.SubItems {
		subItems = append(subItems, exportSubItem(item))
	}

	return ExportedDevice{
		Name:       device.Name,
		Status:     device.Status,
		Category:   device.Type.String(),
		Count:      device.Count,
		Panels:     device.Panels,
		MaxDevices: device.MaxDevices,
		SubItems:   subItems,
	}
}

func exportRoom(room inventory.Room) ExportedRoom {
	devices := make([]ExportedDevice, 0, len(room.Devices))
	for _, device := range room.Devices {
		devices = append(devices, exportDevice(device))
	}

	return ExportedRoom{
		ID:      room.ID,
		Name:    room.Name,
		Devices: devices,
	}
}
