// controllers/question.go
package controllers

import (
	"fmt"
	"net/http"

	"rp-community-api/config"
	"rp-community-api/models"

	"github.com/gin-gonic/gin"
)

type QuestionRequest struct {
	TypeID       int     `json:"type_id" binding:"required"`
	SectionTitle string  `json:"section_title"`
	Label        string  `json:"label" binding:"required"`
	FieldType    string  `json:"field_type"`
	Options      *string `json:"options"`
	IsRequired   bool    `json:"is_required"`
	OrderNum     int     `json:"order_num"`
	SectionOrder int     `json:"section_order"`
}

// GetQuestions lists a type's questions in render order.
func GetQuestions(c *gin.Context) {
	typeID := c.Param("id")

	var questions []models.Question
	if err := config.DB.Where("type_id = ?", typeID).
		Order("section_order ASC, order_num ASC").
		Find(&questions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    questions,
		"count":   len(questions),
	})
}

// CreateQuestion adds one question. The field_type tag is stored as
// given; unknown tags render as plain text rather than being rejected.
func CreateQuestion(c *gin.Context) {
	var req QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var appType models.ApplicationType
	if err := config.DB.Where("type_id = ?", req.TypeID).First(&appType).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid application type"})
		return
	}

	question := models.Question{
		TypeID:       req.TypeID,
		SectionTitle: req.SectionTitle,
		Label:        req.Label,
		FieldType:    req.FieldType,
		Options:      req.Options,
		IsRequired:   req.IsRequired,
		OrderNum:     req.OrderNum,
		SectionOrder: req.SectionOrder,
	}

	if err := config.DB.Create(&question).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	adminLogFromContext(c, models.ActionSystem, fmt.Sprintf("Added question to '%s'", appType.Name))

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Question created successfully",
		"data":    question,
	})
}

// UpdateQuestion edits a question. Historical answers keep the old
// question id as their key, so edits can orphan stored answers; that
// matches the submission contract and is left alone.
func UpdateQuestion(c *gin.Context) {
	id := c.Param("id")

	var question models.Question
	if err := config.DB.Where("question_id = ?", id).First(&question).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Question not found"})
		return
	}

	var req QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	question.TypeID = req.TypeID
	question.SectionTitle = req.SectionTitle
	question.Label = req.Label
	question.FieldType = req.FieldType
	question.Options = req.Options
	question.IsRequired = req.IsRequired
	question.OrderNum = req.OrderNum
	question.SectionOrder = req.SectionOrder

	if err := config.DB.Save(&question).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	adminLogFromContext(c, models.ActionSystem, fmt.Sprintf("Updated question #%d", question.QuestionID))

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Question updated successfully",
		"data":    question,
	})
}

// DeleteQuestion removes a question. Stored answers keyed by its id
// stay in place.
func DeleteQuestion(c *gin.Context) {
	id := c.Param("id")

	var question models.Question
	if err := config.DB.Where("question_id = ?", id).First(&question).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Question not found"})
		return
	}

	if err := config.DB.Delete(&question).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	adminLogFromContext(c, models.ActionSystem, fmt.Sprintf("Deleted question #%d", question.QuestionID))

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Question deleted successfully",
	})
}

type ReorderEntry struct {
	QuestionID   int `json:"question_id" binding:"required"`
	OrderNum     int `json:"order_num"`
	SectionOrder int `json:"section_order"`
}

// ReorderQuestions applies a bulk ordering update. Subsequent fetches
// return questions sorted by (section_order, order_num) matching the
// submitted order.
func ReorderQuestions(c *gin.Context) {
	var entries []ReorderEntry
	if err := c.ShouldBindJSON(&entries); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(entries) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No questions to reorder"})
		return
	}

	for _, entry := range entries {
		if err := config.DB.Model(&models.Question{}).
			Where("question_id = ?", entry.QuestionID).
			Updates(map[string]interface{}{
				"order_num":     entry.OrderNum,
				"section_order": entry.SectionOrder,
			}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	adminLogFromContext(c, models.ActionSystem, fmt.Sprintf("Reordered %d questions", len(entries)))

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Questions reordered successfully",
	})
}
