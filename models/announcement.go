package models

import (
	"time"
)

// Announcement represents the announcements table. LegacyKey marks rows
// absorbed from the statically coded announcements that predate the
// admin panel; it is set once when a legacy entry is first edited.
type Announcement struct {
	AnnouncementID int       `gorm:"primaryKey;column:announcement_id" json:"announcement_id"`
	LegacyKey      *string   `gorm:"column:legacy_key;uniqueIndex;size:64" json:"legacy_key,omitempty"`
	Title          string    `gorm:"column:title" json:"title"`
	Content        string    `gorm:"column:content" json:"content"`
	Image          *string   `gorm:"column:image" json:"image,omitempty"`
	AuthorID       *int      `gorm:"column:author_id" json:"author_id,omitempty"`
	AuthorName     string    `gorm:"column:author_name" json:"author_name"`
	IsPinned       bool      `gorm:"column:is_pinned;default:false" json:"is_pinned"`
	CreateAt       time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt       time.Time `gorm:"column:update_at" json:"update_at"`
}

func (Announcement) TableName() string {
	return "announcements"
}
