// controllers/knowledgebase.go
package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"rp-community-api/config"
	"rp-community-api/models"
	"rp-community-api/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

// GetKnowledgebasePage serves one bilingual page by slug (public).
func GetKnowledgebasePage(c *gin.Context) {
	slug := c.Param("slug")

	var page models.KnowledgebasePage
	if err := config.DB.Where("slug = ?", slug).First(&page).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    page,
	})
}

// GetKnowledgebasePages lists all pages (admin).
func GetKnowledgebasePages(c *gin.Context) {
	var pages []models.KnowledgebasePage
	if err := config.DB.Order("slug ASC").Find(&pages).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    pages,
		"count":   len(pages),
	})
}

type KnowledgebaseRequest struct {
	Slug   string         `json:"slug" binding:"required"`
	DataEn map[string]any `json:"data_en"`
	DataSi map[string]any `json:"data_si"`
}

func jsonBlob(data map[string]any) (datatypes.JSON, error) {
	if data == nil {
		return nil, nil
	}
	blob, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(blob), nil
}

func (r *KnowledgebaseRequest) blobs() (datatypes.JSON, datatypes.JSON, error) {
	en, err := jsonBlob(r.DataEn)
	if err != nil {
		return nil, nil, err
	}
	si, err := jsonBlob(r.DataSi)
	if err != nil {
		return nil, nil, err
	}
	return en, si, nil
}

// CreateKnowledgebasePage creates a page; slug uniqueness is enforced
// by the database.
func CreateKnowledgebasePage(c *gin.Context) {
	var req KnowledgebaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	en, si, err := req.blobs()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page data"})
		return
	}

	now := time.Now()
	page := models.KnowledgebasePage{
		Slug:     utils.Slugify(req.Slug),
		DataEn:   en,
		DataSi:   si,
		CreateAt: now,
		UpdateAt: now,
	}

	if err := config.DB.Create(&page).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	adminLogFromContext(c, models.ActionSystem, fmt.Sprintf("Created knowledgebase page '%s'", page.Slug))

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Page created successfully",
		"data":    page,
	})
}

// UpdateKnowledgebasePage replaces a page's slug and both language
// documents.
func UpdateKnowledgebasePage(c *gin.Context) {
	id := c.Param("id")

	var page models.KnowledgebasePage
	if err := config.DB.Where("page_id = ?", id).First(&page).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
		return
	}

	var req KnowledgebaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	en, si, err := req.blobs()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page data"})
		return
	}

	page.Slug = utils.Slugify(req.Slug)
	page.DataEn = en
	page.DataSi = si
	page.UpdateAt = time.Now()

	if err := config.DB.Save(&page).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	adminLogFromContext(c, models.ActionSystem, fmt.Sprintf("Updated knowledgebase page '%s'", page.Slug))

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Page updated successfully",
		"data":    page,
	})
}

// DeleteKnowledgebasePage removes a page.
func DeleteKnowledgebasePage(c *gin.Context) {
	id := c.Param("id")

	var page models.KnowledgebasePage
	if err := config.DB.Where("page_id = ?", id).First(&page).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
		return
	}

	if err := config.DB.Delete(&page).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	adminLogFromContext(c, models.ActionSystem, fmt.Sprintf("Deleted knowledgebase page '%s'", page.Slug))

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Page deleted successfully",
	})
}
