package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Application review statuses. Transitions are unconstrained: an admin
// may move an application between any two statuses.
const (
	StatusPending   = "pending"
	StatusInterview = "interview"
	StatusAccepted  = "accepted"
	StatusDeclined  = "declined"
)

// ValidStatus reports whether s is one of the four review statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusInterview, StatusAccepted, StatusDeclined:
		return true
	}
	return false
}

// Application represents the applications table. Content is an opaque
// JSON map of question id -> answer string captured at submission time;
// answers for questions edited or deleted later are kept as-is, with no
// referential check against the questions table.
type Application struct {
	ApplicationID int            `gorm:"primaryKey;column:application_id" json:"application_id"`
	UserID        int            `gorm:"column:user_id;index" json:"user_id"`
	TypeID        int            `gorm:"column:type_id;index" json:"type_id"`
	Content       datatypes.JSON `gorm:"column:content" json:"content"`
	Status        string         `gorm:"column:status;type:enum('pending','interview','accepted','declined');default:'pending'" json:"status"`
	Notes         *string        `gorm:"column:notes" json:"notes,omitempty"`
	CreateAt      time.Time      `gorm:"column:create_at" json:"create_at"`
	UpdateAt      time.Time      `gorm:"column:update_at" json:"update_at"`

	User User            `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Type ApplicationType `gorm:"foreignKey:TypeID;constraint:OnDelete:CASCADE" json:"type,omitempty"`
}

func (Application) TableName() string {
	return "applications"
}

// Answers decodes the stored content blob back into the submitted
// question-id -> answer map.
func (a *Application) Answers() (map[string]string, error) {
	answers := make(map[string]string)
	if len(a.Content) == 0 {
		return answers, nil
	}
	if err := json.Unmarshal(a.Content, &answers); err != nil {
		return nil, err
	}
	return answers, nil
}
