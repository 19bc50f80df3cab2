package models

import (
	"time"
)

// AdminLog action types.
const (
	ActionApplication  = "APPLICATION"
	ActionAnnouncement = "ANNOUNCEMENT"
	ActionServer       = "SERVER"
	ActionSystem       = "SYSTEM"
)

// AdminLog represents the admin_logs table. Append-only; one row per
// admin-initiated mutation.
type AdminLog struct {
	LogID          int       `gorm:"primaryKey;column:log_id" json:"log_id"`
	AdminDiscordID string    `gorm:"column:admin_discord_id" json:"admin_discord_id"`
	AdminName      string    `gorm:"column:admin_name" json:"admin_name"`
	ActionType     string    `gorm:"column:action_type" json:"action_type"`
	ActionDetails  string    `gorm:"column:action_details" json:"action_details"`
	CreateAt       time.Time `gorm:"column:create_at" json:"create_at"`
}

func (AdminLog) TableName() string {
	return "admin_logs"
}
