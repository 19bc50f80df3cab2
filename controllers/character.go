// controllers/character.go
package controllers

import (
	"net/http"

	"rp-community-api/config"
	"rp-community-api/models"

	"github.com/gin-gonic/gin"
)

// GetMyCharacters reads the signed-in user's characters from the game
// database, keyed by their Discord-linked identifier. Every enrichment
// query is tolerant: a missing sub-table yields an empty slice so one
// broken game resource never hides the character list.
func GetMyCharacters(c *gin.Context) {
	discordID, _ := c.Get("discordID")

	if config.GameDB == nil {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    []models.Character{},
			"message": "Game database not linked",
		})
		return
	}

	var players []models.GamePlayer
	if err := config.GameDB.Where("discord = ?", "discord:"+discordID.(string)).
		Find(&players).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	characters := make([]models.Character, 0, len(players))
	for _, player := range players {
		character := models.Character{
			CitizenID: player.CitizenID,
			CharInfo:  player.CharInfo,
			Money:     player.Money,
			Job:       player.Job,
			Metadata:  player.Metadata,
			Vehicles:  []models.GameVehicle{},
			Inventory: []models.GameInventory{},
		}

		var vehicles []models.GameVehicle
		if err := config.GameDB.Where("citizenid = ?", player.CitizenID).Find(&vehicles).Error; err == nil {
			character.Vehicles = vehicles
		}

		var skins []models.GameSkin
		if err := config.GameDB.Where("citizenid = ? AND active = ?", player.CitizenID, 1).
			Limit(1).Find(&skins).Error; err == nil && len(skins) > 0 {
			character.Appearance = &skins[0]
		}

		var inventories []models.GameInventory
		if err := config.GameDB.Where("owner = ?", player.CitizenID).Find(&inventories).Error; err == nil {
			character.Inventory = inventories
		}

		characters = append(characters, character)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    characters,
		"count":   len(characters),
	})
}
