package models

import (
	"time"
)

// ApplicationType represents the application_types table: one row per
// whitelist track (police, EMS, gang, ...) with per-status Discord
// webhook URLs and role ids.
type ApplicationType struct {
	TypeID      int     `gorm:"primaryKey;column:type_id" json:"type_id"`
	Name        string  `gorm:"column:name" json:"name"`
	Slug        string  `gorm:"column:slug;uniqueIndex;size:191" json:"slug"`
	Description *string `gorm:"column:description" json:"description"`
	Icon        *string `gorm:"column:icon" json:"icon"`
	CoverImage  *string `gorm:"column:cover_image" json:"cover_image"`
	IsActive    bool    `gorm:"column:is_active;default:true" json:"is_active"`

	// Per-status webhook URLs. Empty means no notification for that status.
	WebhookPending   *string `gorm:"column:webhook_pending" json:"webhook_pending,omitempty"`
	WebhookInterview *string `gorm:"column:webhook_interview" json:"webhook_interview,omitempty"`
	WebhookAccepted  *string `gorm:"column:webhook_accepted" json:"webhook_accepted,omitempty"`
	WebhookDeclined  *string `gorm:"column:webhook_declined" json:"webhook_declined,omitempty"`

	// Separate staff-audit channel, fired on every status change.
	WebhookLog *string `gorm:"column:webhook_log" json:"webhook_log,omitempty"`

	// Per-status Discord role ids granted to the applicant.
	RolePending   *string `gorm:"column:role_pending" json:"role_pending,omitempty"`
	RoleInterview *string `gorm:"column:role_interview" json:"role_interview,omitempty"`
	RoleAccepted  *string `gorm:"column:role_accepted" json:"role_accepted,omitempty"`
	RoleDeclined  *string `gorm:"column:role_declined" json:"role_declined,omitempty"`

	CreateAt time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt time.Time `gorm:"column:update_at" json:"update_at"`

	Questions []Question `gorm:"foreignKey:TypeID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`
}

func (ApplicationType) TableName() string {
	return "application_types"
}

// WebhookForStatus returns the configured webhook URL for a status,
// empty string when unset.
func (t *ApplicationType) WebhookForStatus(status string) string {
	var url *string
	switch status {
	case StatusPending:
		url = t.WebhookPending
	case StatusInterview:
		url = t.WebhookInterview
	case StatusAccepted:
		url = t.WebhookAccepted
	case StatusDeclined:
		url = t.WebhookDeclined
	}
	if url == nil {
		return ""
	}
	return *url
}

// RoleForStatus returns the configured Discord role id for a status,
// empty string when unset.
func (t *ApplicationType) RoleForStatus(status string) string {
	var role *string
	switch status {
	case StatusPending:
		role = t.RolePending
	case StatusInterview:
		role = t.RoleInterview
	case StatusAccepted:
		role = t.RoleAccepted
	case StatusDeclined:
		role = t.RoleDeclined
	}
	if role == nil {
		return ""
	}
	return *role
}

// Question represents the questions table. The public form renders
// questions sorted by (section_order, order_num) and grouped by
// section_title in first-seen order.
type Question struct {
	QuestionID   int     `gorm:"primaryKey;column:question_id" json:"question_id"`
	TypeID       int     `gorm:"column:type_id;index" json:"type_id"`
	SectionTitle string  `gorm:"column:section_title" json:"section_title"`
	Label        string  `gorm:"column:label" json:"label"`
	FieldType    string  `gorm:"column:field_type;default:'text'" json:"field_type"`
	Options      *string `gorm:"column:options" json:"options,omitempty"`
	IsRequired   bool    `gorm:"column:is_required;default:false" json:"is_required"`
	OrderNum     int     `gorm:"column:order_num;default:0" json:"order_num"`
	SectionOrder int     `gorm:"column:section_order;default:0" json:"section_order"`
}

func (Question) TableName() string {
	return "questions"
}
