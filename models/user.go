package models

import (
	"time"
)

// Role values stored on users.role.
const (
	RoleCitizen = "citizen"
	RoleAdmin   = "admin"
)

// User represents the users table. Rows are upserted keyed by discord_id
// on every successful Discord sign-in.
type User struct {
	UserID        int        `gorm:"primaryKey;column:user_id" json:"user_id"`
	DiscordID     string     `gorm:"column:discord_id;uniqueIndex;size:32" json:"discord_id"`
	Username      string     `gorm:"column:username" json:"username"`
	Discriminator string     `gorm:"column:discriminator" json:"discriminator"`
	Avatar        *string    `gorm:"column:avatar" json:"avatar,omitempty"`
	Role          string     `gorm:"column:role;type:enum('citizen','admin');default:'citizen'" json:"role"`
	CreateAt      time.Time  `gorm:"column:create_at" json:"create_at"`
	UpdateAt      time.Time  `gorm:"column:update_at" json:"update_at"`
	DeleteAt      *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// DisplayName renders the legacy name#discriminator form when Discord
// still reports a discriminator, plain username otherwise.
func (u *User) DisplayName() string {
	if u.Discriminator == "" || u.Discriminator == "0" {
		return u.Username
	}
	return u.Username + "#" + u.Discriminator
}
