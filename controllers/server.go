// controllers/server.go
package controllers

import (
	"fmt"
	"net/http"

	"rp-community-api/models"
	"rp-community-api/services"

	"github.com/gin-gonic/gin"
)

// Fivem overrides the game-server client in tests. The default client
// is built per request so FIVEM_API_URL is read after .env loading.
var Fivem *services.FivemClient

func fivem() *services.FivemClient {
	if Fivem != nil {
		return Fivem
	}
	return services.NewFivemClient()
}

// GetServerPlayers proxies the live player list.
func GetServerPlayers(c *gin.Context) {
	data, err := fivem().Players()
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
	})
}

// GetServerData proxies server data (uptime, resources, counts).
func GetServerData(c *gin.Context) {
	data, err := fivem().Data()
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
	})
}

// GetServerItem proxies one inventory item lookup.
func GetServerItem(c *gin.Context) {
	data, err := fivem().Item(c.Param("name"))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
	})
}

// PostServerAction relays an admin action to the game server with the
// shared-secret token attached. Remote failure is a soft error for the
// admin panel; a successful action is audit-logged.
func PostServerAction(c *gin.Context) {
	var req services.ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Action == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Action is required"})
		return
	}

	data, err := fivem().Action(req)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": err.Error()})
		return
	}

	adminLogFromContext(c, models.ActionServer,
		fmt.Sprintf("Executed server action '%s' on player '%s'", req.Action, req.PlayerID))

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
	})
}
