package models

import (
	"gorm.io/datatypes"
)

// Query-only models for the game server's database. The game schema is
// owned by the FiveM server; nothing here is migrated or written.

// GamePlayer is one character row in the game's players table.
type GamePlayer struct {
	CitizenID string         `gorm:"column:citizenid" json:"citizenid"`
	License   string         `gorm:"column:license" json:"-"`
	Discord   string         `gorm:"column:discord" json:"-"`
	CharInfo  datatypes.JSON `gorm:"column:charinfo" json:"charinfo"`
	Money     datatypes.JSON `gorm:"column:money" json:"money"`
	Job       datatypes.JSON `gorm:"column:job" json:"job"`
	Metadata  datatypes.JSON `gorm:"column:metadata" json:"metadata,omitempty"`
}

func (GamePlayer) TableName() string {
	return "players"
}

// GameVehicle is one owned vehicle in the game's player_vehicles table.
type GameVehicle struct {
	Plate   string `gorm:"column:plate" json:"plate"`
	Vehicle string `gorm:"column:vehicle" json:"vehicle"`
	Garage  string `gorm:"column:garage" json:"garage"`
	State   int    `gorm:"column:state" json:"state"`
}

func (GameVehicle) TableName() string {
	return "player_vehicles"
}

// GameSkin is the character's saved appearance in the playerskins table.
type GameSkin struct {
	CitizenID string         `gorm:"column:citizenid" json:"-"`
	Model     string         `gorm:"column:model" json:"model"`
	Skin      datatypes.JSON `gorm:"column:skin" json:"skin"`
	Active    int            `gorm:"column:active" json:"-"`
}

func (GameSkin) TableName() string {
	return "playerskins"
}

// GameInventory is one stored inventory in the ox_inventory table,
// keyed by the owning character.
type GameInventory struct {
	Owner string         `gorm:"column:owner" json:"-"`
	Name  string         `gorm:"column:name" json:"name"`
	Data  datatypes.JSON `gorm:"column:data" json:"items"`
}

func (GameInventory) TableName() string {
	return "ox_inventory"
}

// Character is the API view of a game character with its enrichments.
// Enrichment queries are best effort: a missing sub-table yields an
// empty slice, never an error.
type Character struct {
	CitizenID  string          `json:"citizenid"`
	CharInfo   datatypes.JSON  `json:"charinfo"`
	Money      datatypes.JSON  `json:"money"`
	Job        datatypes.JSON  `json:"job"`
	Metadata   datatypes.JSON  `json:"metadata,omitempty"`
	Vehicles   []GameVehicle   `json:"vehicles"`
	Inventory  []GameInventory `json:"inventory"`
	Appearance *GameSkin       `json:"appearance,omitempty"`
}
