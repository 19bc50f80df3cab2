// controllers/application_type.go
package controllers

import (
	"fmt"
	"net/http"
	"time"

	"rp-community-api/config"
	"rp-community-api/models"
	"rp-community-api/services"
	"rp-community-api/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ===== PUBLIC =====

// GetActiveApplicationTypes lists types open for applications.
func GetActiveApplicationTypes(c *gin.Context) {
	var types []models.ApplicationType
	if err := config.DB.Where("is_active = ?", true).Order("name ASC").Find(&types).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    types,
		"count":   len(types),
	})
}

// GetApplicationForm serves the dynamic form for one type by slug:
// the type plus its questions grouped into ordered sections.
func GetApplicationForm(c *gin.Context) {
	slug := c.Param("slug")

	var appType models.ApplicationType
	if err := config.DB.Where("slug = ? AND is_active = ?", slug, true).First(&appType).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Application type not found"})
		return
	}

	var questions []models.Question
	if err := config.DB.Where("type_id = ?", appType.TypeID).
		Order("section_order ASC, order_num ASC").
		Find(&questions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"type":     appType,
		"sections": services.BuildForm(questions),
	})
}

// ===== ADMIN =====

type ApplicationTypeRequest struct {
	Name             string  `json:"name" binding:"required"`
	Description      *string `json:"description"`
	Icon             *string `json:"icon"`
	CoverImage       *string `json:"cover_image"`
	IsActive         *bool   `json:"is_active"`
	WebhookPending   *string `json:"webhook_pending"`
	WebhookInterview *string `json:"webhook_interview"`
	WebhookAccepted  *string `json:"webhook_accepted"`
	WebhookDeclined  *string `json:"webhook_declined"`
	WebhookLog       *string `json:"webhook_log"`
	RolePending      *string `json:"role_pending"`
	RoleInterview    *string `json:"role_interview"`
	RoleAccepted     *string `json:"role_accepted"`
	RoleDeclined     *string `json:"role_declined"`
}

// GetAllApplicationTypes lists every type, inactive ones included.
func GetAllApplicationTypes(c *gin.Context) {
	var types []models.ApplicationType
	if err := config.DB.Order("name ASC").Find(&types).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    types,
		"count":   len(types),
	})
}

// GetApplicationType returns one type with its questions.
func GetApplicationType(c *gin.Context) {
	id := c.Param("id")

	var appType models.ApplicationType
	if err := config.DB.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("section_order ASC, order_num ASC")
	}).Where("type_id = ?", id).First(&appType).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Application type not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    appType,
	})
}

// CreateApplicationType creates a type; the slug is derived from the
// name and kept unique by the database, so a duplicate name surfaces
// the driver's duplicate-key error.
func CreateApplicationType(c *gin.Context) {
	var req ApplicationTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	appType := models.ApplicationType{
		Name:             utils.SanitizeInput(req.Name),
		Slug:             utils.Slugify(req.Name),
		Description:      req.Description,
		Icon:             req.Icon,
		CoverImage:       req.CoverImage,
		IsActive:         true,
		WebhookPending:   req.WebhookPending,
		WebhookInterview: req.WebhookInterview,
		WebhookAccepted:  req.WebhookAccepted,
		WebhookDeclined:  req.WebhookDeclined,
		WebhookLog:       req.WebhookLog,
		RolePending:      req.RolePending,
		RoleInterview:    req.RoleInterview,
		RoleAccepted:     req.RoleAccepted,
		RoleDeclined:     req.RoleDeclined,
		CreateAt:         now,
		UpdateAt:         now,
	}
	if req.IsActive != nil {
		appType.IsActive = *req.IsActive
	}

	if err := config.DB.Create(&appType).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	adminLogFromContext(c, models.ActionSystem, fmt.Sprintf("Created application type '%s'", appType.Name))

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Application type created successfully",
		"data":    appType,
	})
}

// UpdateApplicationType edits a type in place. The slug follows a name
// change.
func UpdateApplicationType(c *gin.Context) {
	id := c.Param("id")

	var appType models.ApplicationType
	if err := config.DB.Where("type_id = ?", id).First(&appType).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Application type not found"})
		return
	}

	var req ApplicationTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appType.Name = utils.SanitizeInput(req.Name)
	appType.Slug = utils.Slugify(req.Name)
	appType.Description = req.Description
	appType.Icon = req.Icon
	appType.CoverImage = req.CoverImage
	if req.IsActive != nil {
		appType.IsActive = *req.IsActive
	}
	appType.WebhookPending = req.WebhookPending
	appType.WebhookInterview = req.WebhookInterview
	appType.WebhookAccepted = req.WebhookAccepted
	appType.WebhookDeclined = req.WebhookDeclined
	appType.WebhookLog = req.WebhookLog
	appType.RolePending = req.RolePending
	appType.RoleInterview = req.RoleInterview
	appType.RoleAccepted = req.RoleAccepted
	appType.RoleDeclined = req.RoleDeclined
	appType.UpdateAt = time.Now()

	if err := config.DB.Save(&appType).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	adminLogFromContext(c, models.ActionSystem, fmt.Sprintf("Updated application type '%s'", appType.Name))

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Application type updated successfully",
		"data":    appType,
	})
}

// DeleteApplicationType hard-deletes a type and cascades its questions
// and applications. Soft-disabling via is_active is the normal path;
// deletion is for types created by mistake.
func DeleteApplicationType(c *gin.Context) {
	id := c.Param("id")

	var appType models.ApplicationType
	if err := config.DB.Where("type_id = ?", id).First(&appType).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Application type not found"})
		return
	}

	if err := config.DB.Where("type_id = ?", appType.TypeID).Delete(&models.Question{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := config.DB.Where("type_id = ?", appType.TypeID).Delete(&models.Application{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := config.DB.Delete(&appType).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	adminLogFromContext(c, models.ActionSystem, fmt.Sprintf("Deleted application type '%s'", appType.Name))

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Application type deleted successfully",
	})
}

// adminLogFromContext appends an admin log row using the request
// identity set by the auth middleware.
func adminLogFromContext(c *gin.Context, actionType, details string) {
	discordID, _ := c.Get("discordID")
	name, _ := c.Get("userName")
	services.LogAdminAction(config.DB, fmt.Sprint(discordID), fmt.Sprint(name), actionType, details)
}
