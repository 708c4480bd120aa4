package schema

// Types mirroring the remote building-automation project file. Field
// names follow the endpoint's JSON exactly, including the "iD"
// spelling of identifiers.

type ProjectFile struct {
	ProjectID            string                `json:"projectId,omitempty"`
	ProjectName          string                `json:"projectName,omitempty"`
	ProjectRooms         ProjectRooms          `json:"projectRooms"`
	SmartBuildingSystems *SmartBuildingSystems `json:"smartBuildingSystems,omitempty"`
	SmartSwitches        []SmartSwitch         `json:"smartSwitches,omitempty"`
	SmartBuildingDevices *SmartBuildingDevices `json:"smartBuildingDevices,omitempty"`
}

type ProjectRooms struct {
	Rooms []RoomRecord `json:"rooms"`
}

type RoomRecord struct {
	ID          int    `json:"iD"`
	DisplayName string `json:"displayName"`
	FloorID     int    `json:"floorId"`
}

type SmartBuildingSystems struct {
	LightingSystem LightingSystem     `json:"lightingSystem"`
	OpeningSystem  OpeningSystem      `json:"openingSystem"`
	ExhaustFans    []ExhaustFanRecord `json:"exhaustFan"`
}

type LightingSystem struct {
	LightingGroups  []LightingGroup  `json:"lightingGroups"`
	LightingZones   []LightingZone   `json:"lightingZones"`
	LightingDevices []LightingDevice `json:"lightingDevices"`
}

type LightingDevice struct {
	ID          int    `json:"iD"`
	DisplayName string `json:"displayName"`
	RoomID      int    `json:"roomId"`
	IsFeatured  bool   `json:"isFeatured"`
}

type LightingZone struct {
	ID                int   `json:"iD"`
	ZoneID            int   `json:"zoneId"`
	Dimmable          bool  `json:"dimmable"`
	LightingDeviceIDs []int `json:"lightingDeviceIds"`
}

type LightingGroup struct {
	ID              int    `json:"iD"`
	DisplayName     string `json:"displayName"`
	IsFeatured      bool   `json:"isFeatured"`
	LightingZoneIDs []int  `json:"lightingZoneIds"`
}

type OpeningSystem struct {
	SlidingDoorDevices []SlidingDoorDevice `json:"slidingDoorDevices"`
}

type Dimension struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type SlidingDoorDevice struct {
	ID          int       `json:"iD"`
	DisplayName string    `json:"displayName"`
	RoomID      int       `json:"roomId"`
	IsFeatured  bool      `json:"isFeatured"`
	Panels      int       `json:"panels"`
	Dimension   Dimension `json:"dimension"`
}

// ExhaustFanRecord carries both displayName and name, older project
// files used the latter.
type ExhaustFanRecord struct {
	ID          int    `json:"iD"`
	ZoneID      int    `json:"zoneId"`
	DisplayName string `json:"displayName"`
	Name        string `json:"name,omitempty"`
	RoomID      int    `json:"roomId"`
	IsFeatured  bool   `json:"isFeatured"`
}

type SmartBuildingDevices struct {
	GarageDoorControllers []GarageDoorController `json:"garageDoorController"`
	LockingControllers    []LockingController    `json:"lockingControllers"`
	Doorbells             []Doorbell             `json:"doorbells"`
}

type GarageDoorController struct {
	ID          int       `json:"iD"`
	DisplayName string    `json:"displayName"`
	RoomID      int       `json:"roomId"`
	IsFeatured  bool      `json:"isFeatured"`
	Dimension   Dimension `json:"dimension"`
}

type LockingController struct {
	ID          int    `json:"iD"`
	DisplayName string `json:"displayName"`
	RoomID      int    `json:"roomId"`
	IsFeatured  bool   `json:"isFeatured"`
}

type Doorbell struct {
	ID          int    `json:"iD"`
	DisplayName string `json:"displayName"`
	RoomID      int    `json:"roomId"`
	SmartLockID int    `json:"smartLockId"`
}

type SmartSwitch struct {
	ID          int    `json:"iD"`
	DisplayName string `json:"displayName"`
	RoomID      int    `json:"roomId"`
}
