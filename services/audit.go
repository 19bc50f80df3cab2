package services

import (
	"log"
	"time"

	"rp-community-api/models"

	"gorm.io/gorm"
)

// LogAdminAction appends one admin_logs row. A failed insert is logged
// and swallowed so audit trouble never fails the mutation it describes.
func LogAdminAction(db *gorm.DB, adminDiscordID, adminName, actionType, details string) {
	entry := models.AdminLog{
		AdminDiscordID: adminDiscordID,
		AdminName:      adminName,
		ActionType:     actionType,
		ActionDetails:  details,
		CreateAt:       time.Now(),
	}

	if err := db.Create(&entry).Error; err != nil {
		log.Printf("admin log: insert failed: %v", err)
	}
}
