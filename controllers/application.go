// controllers/application.go
package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"rp-community-api/config"
	"rp-community-api/models"
	"rp-community-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

type SubmitApplicationRequest struct {
	TypeID  int               `json:"type_id" binding:"required"`
	Answers map[string]string `json:"answers" binding:"required"`
}

// SubmitApplication stores one application row with status pending and
// fires the pending webhook best effort. There is no idempotency key:
// resubmitting creates another row. Required-field checks live in the
// form renderer; the server only verifies the type.
func SubmitApplication(c *gin.Context) {
	userID, _ := c.Get("userID")

	var req SubmitApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var appType models.ApplicationType
	if err := config.DB.Where("type_id = ? AND is_active = ?", req.TypeID, true).First(&appType).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid application type"})
		return
	}

	var questions []models.Question
	config.DB.Where("type_id = ?", appType.TypeID).Find(&questions)

	content, err := json.Marshal(services.NormalizeAnswers(questions, req.Answers))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid answers"})
		return
	}

	now := time.Now()
	application := models.Application{
		UserID:   userID.(int),
		TypeID:   appType.TypeID,
		Content:  datatypes.JSON(content),
		Status:   models.StatusPending,
		CreateAt: now,
		UpdateAt: now,
	}

	if err := config.DB.Create(&application).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Notification is informational only; the row above is already
	// durable whatever happens here.
	var user models.User
	if err := config.DB.Where("user_id = ?", application.UserID).First(&user).Error; err == nil {
		application.User = user
		go services.DefaultNotifier.NotifySubmission(&application, &appType)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Application submitted successfully",
		"data":    application,
	})
}

// GetMyApplications lists the signed-in user's applications.
func GetMyApplications(c *gin.Context) {
	userID, _ := c.Get("userID")

	var applications []models.Application
	if err := config.DB.Preload("Type").
		Where("user_id = ?", userID).
		Order("create_at DESC").
		Find(&applications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    applications,
		"count":   len(applications),
	})
}

// ===== ADMIN =====

// GetApplications lists applications for review, filterable by type
// and status.
func GetApplications(c *gin.Context) {
	query := config.DB.Model(&models.Application{}).Preload("User").Preload("Type")

	if typeID := c.Query("type_id"); typeID != "" {
		query = query.Where("type_id = ?", typeID)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var applications []models.Application
	if err := query.Order("create_at DESC").Find(&applications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    applications,
		"count":   len(applications),
	})
}

// GetApplication returns one application with applicant and type.
func GetApplication(c *gin.Context) {
	id := c.Param("id")

	var application models.Application
	if err := config.DB.Preload("User").Preload("Type").
		Where("application_id = ?", id).
		First(&application).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    application,
	})
}

type ReviewRequest struct {
	Status string  `json:"status" binding:"required"`
	Notes  *string `json:"notes"`
}

// UpdateApplicationStatus is the review pipeline: persist status and
// notes, append the audit row, then fan out the applicant webhook, the
// staff-log webhook and the status role grant. Transitions are
// unconstrained, and re-setting the current status runs the full
// pipeline again. Only the database write can fail the request; every
// later step is best effort.
func UpdateApplicationStatus(c *gin.Context) {
	id := c.Param("id")

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	var application models.Application
	if err := config.DB.Where("application_id = ?", id).First(&application).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		return
	}

	application.Status = req.Status
	if req.Notes != nil {
		application.Notes = req.Notes
	}
	application.UpdateAt = time.Now()

	if err := config.DB.Save(&application).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	adminName, _ := c.Get("userName")
	adminLogFromContext(c, models.ActionApplication,
		fmt.Sprintf("Set application #%d to %s", application.ApplicationID, application.Status))

	// Re-fetch joined with applicant and the type's webhook config.
	if err := config.DB.Preload("User").Preload("Type").
		Where("application_id = ?", application.ApplicationID).
		First(&application).Error; err == nil {
		appType := application.Type
		staffName := fmt.Sprint(adminName)
		go func() {
			services.DefaultNotifier.NotifyApplicant(&application, &appType)
			services.DefaultNotifier.NotifyStaffLog(&application, &appType, staffName)
			if role := appType.RoleForStatus(application.Status); role != "" {
				services.GrantRole(application.User.DiscordID, role)
			}
		}()
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Application updated successfully",
		"data":    application,
	})
}
