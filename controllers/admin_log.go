// controllers/admin_log.go
package controllers

import (
	"net/http"

	"rp-community-api/config"
	"rp-community-api/models"

	"github.com/gin-gonic/gin"
)

// GetAdminLogs returns the most recent 100 audit rows.
func GetAdminLogs(c *gin.Context) {
	var logs []models.AdminLog
	if err := config.DB.Order("create_at DESC").Limit(100).Find(&logs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    logs,
		"count":   len(logs),
	})
}
