// controllers/dashboard.go
package controllers

import (
	"net/http"

	"rp-community-api/config"
	"rp-community-api/models"

	"github.com/gin-gonic/gin"
)

// GetDashboard returns the signed-in user's summary: role, most recent
// applications and every application type. Inactive types stay in the
// list so past applications keep their context.
func GetDashboard(c *gin.Context) {
	userID, _ := c.Get("userID")
	role, _ := c.Get("role")

	var recent []models.Application
	if err := config.DB.Preload("Type").
		Where("user_id = ?", userID).
		Order("create_at DESC").
		Limit(5).
		Find(&recent).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var types []models.ApplicationType
	if err := config.DB.Order("name ASC").Find(&types).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":             true,
		"role":                role,
		"recent_applications": recent,
		"application_types":   types,
	})
}
