// controllers/announcement.go
package controllers

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"rp-community-api/config"
	"rp-community-api/models"

	"github.com/gin-gonic/gin"
)

// legacyAnnouncements are the statically coded announcements that
// predate the admin panel. They are served alongside database rows
// until an admin edits one, at which point it is absorbed into the
// announcements table under its legacy key.
var legacyAnnouncements = []models.Announcement{
	{
		LegacyKey:  ptr("legacy-grand-opening"),
		Title:      "Grand Opening",
		Content:    "The city is now open. Read the rules and apply for your whitelist on the applications page.",
		AuthorName: "Server Team",
		IsPinned:   true,
	},
	{
		LegacyKey:  ptr("legacy-whitelist-info"),
		Title:      "Whitelist Applications",
		Content:    "Whitelist applications are reviewed daily. You will be pinged on Discord when your status changes.",
		AuthorName: "Server Team",
	},
}

func ptr(s string) *string { return &s }

// GetAnnouncements merges database rows with legacy entries that have
// not been absorbed yet, pinned first, newest first within each group.
func GetAnnouncements(c *gin.Context) {
	var announcements []models.Announcement
	if err := config.DB.Order("is_pinned DESC, create_at DESC").Find(&announcements).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	absorbed := make(map[string]bool, len(announcements))
	for _, a := range announcements {
		if a.LegacyKey != nil {
			absorbed[*a.LegacyKey] = true
		}
	}
	for _, legacy := range legacyAnnouncements {
		if !absorbed[*legacy.LegacyKey] {
			announcements = append(announcements, legacy)
		}
	}

	sort.SliceStable(announcements, func(i, j int) bool {
		if announcements[i].IsPinned != announcements[j].IsPinned {
			return announcements[i].IsPinned
		}
		return announcements[i].CreateAt.After(announcements[j].CreateAt)
	})

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    announcements,
		"count":   len(announcements),
	})
}

type AnnouncementRequest struct {
	Title    string  `json:"title" binding:"required"`
	Content  string  `json:"content" binding:"required"`
	Image    *string `json:"image"`
	IsPinned bool    `json:"is_pinned"`
}

// CreateAnnouncement adds an announcement authored by the signed-in
// admin.
func CreateAnnouncement(c *gin.Context) {
	var req AnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, _ := c.Get("userID")
	userName, _ := c.Get("userName")

	now := time.Now()
	authorID := userID.(int)
	announcement := models.Announcement{
		Title:      req.Title,
		Content:    req.Content,
		Image:      req.Image,
		AuthorID:   &authorID,
		AuthorName: fmt.Sprint(userName),
		IsPinned:   req.IsPinned,
		CreateAt:   now,
		UpdateAt:   now,
	}

	if err := config.DB.Create(&announcement).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	adminLogFromContext(c, models.ActionAnnouncement, fmt.Sprintf("Created announcement '%s'", announcement.Title))

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Announcement created successfully",
		"data":    announcement,
	})
}

// UpdateAnnouncement edits an announcement. Editing a legacy entry
// (id of the form "legacy-*") absorbs it into the table first.
func UpdateAnnouncement(c *gin.Context) {
	id := c.Param("id")

	var req AnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var announcement models.Announcement
	if strings.HasPrefix(id, "legacy-") {
		found := false
		for _, legacy := range legacyAnnouncements {
			if *legacy.LegacyKey == id {
				announcement = legacy
				found = true
				break
			}
		}
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": "Announcement not found"})
			return
		}

		// Absorb into the table if a previous edit has not already.
		var existing models.Announcement
		if err := config.DB.Where("legacy_key = ?", id).First(&existing).Error; err == nil {
			announcement = existing
		} else {
			announcement.CreateAt = time.Now()
		}
	} else {
		if err := config.DB.Where("announcement_id = ?", id).First(&announcement).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Announcement not found"})
			return
		}
	}

	userID, _ := c.Get("userID")
	userName, _ := c.Get("userName")
	authorID := userID.(int)

	announcement.Title = req.Title
	announcement.Content = req.Content
	announcement.Image = req.Image
	announcement.IsPinned = req.IsPinned
	announcement.AuthorID = &authorID
	announcement.AuthorName = fmt.Sprint(userName)
	announcement.UpdateAt = time.Now()

	if err := config.DB.Save(&announcement).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	adminLogFromContext(c, models.ActionAnnouncement, fmt.Sprintf("Updated announcement '%s'", announcement.Title))

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Announcement updated successfully",
		"data":    announcement,
	})
}

// DeleteAnnouncement removes an announcement row.
func DeleteAnnouncement(c *gin.Context) {
	id := c.Param("id")

	var announcement models.Announcement
	if err := config.DB.Where("announcement_id = ?", id).First(&announcement).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Announcement not found"})
		return
	}

	if err := config.DB.Delete(&announcement).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	adminLogFromContext(c, models.ActionAnnouncement, fmt.Sprintf("Deleted announcement '%s'", announcement.Title))

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Announcement deleted successfully",
	})
}
