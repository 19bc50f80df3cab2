package controllers

import (
	"net/http"
	"os"
	"strconv"
	"time"

	"rp-community-api/config"
	"rp-community-api/middleware"
	"rp-community-api/models"
	"rp-community-api/services"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm/clause"
)

// Discord calls behind vars so tests can stand in for the real API.
var (
	exchangeCode = services.ExchangeCode
	fetchProfile = services.FetchProfile
)

type DiscordLoginRequest struct {
	Code string `json:"code" binding:"required"`
}

type LoginResponse struct {
	Token   string      `json:"token"`
	User    models.User `json:"user"`
	Message string      `json:"message"`
}

// DiscordLogin exchanges an OAuth authorization code, upserts the user
// keyed by discord_id and issues a session token. Guild join and the
// pending-role grant are best effort and never block sign-in.
func DiscordLogin(c *gin.Context) {
	var req DiscordLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	accessToken, err := exchangeCode(req.Code)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Discord sign-in failed"})
		return
	}

	profile, err := fetchProfile(accessToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Discord sign-in failed"})
		return
	}

	now := time.Now()
	user := models.User{
		DiscordID:     profile.ID,
		Username:      profile.Username,
		Discriminator: profile.Discriminator,
		Role:          models.RoleCitizen,
		CreateAt:      now,
		UpdateAt:      now,
	}
	if profile.Avatar != "" {
		avatar := profile.Avatar
		user.Avatar = &avatar
	}

	// Upsert keyed by discord_id; the role column is left alone so an
	// admin stays an admin across sign-ins.
	err = config.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "discord_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"username", "discriminator", "avatar", "update_at"}),
	}).Create(&user).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Re-read to pick up the stored role and id after the upsert.
	if err := config.DB.Where("discord_id = ?", profile.ID).First(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	go services.JoinGuild(user.DiscordID, accessToken)

	token, err := generateToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token:   token,
		User:    user,
		Message: "Login successful",
	})
}

// GetProfile returns the signed-in user's profile.
func GetProfile(c *gin.Context) {
	userID, _ := c.Get("userID")

	var user models.User
	if err := config.DB.Where("user_id = ?", userID).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"user":     user,
		"is_admin": user.IsAdmin(),
	})
}

// generateToken creates the session JWT
func generateToken(user models.User) (string, error) {
	expireHours, err := strconv.Atoi(os.Getenv("JWT_EXPIRE_HOURS"))
	if err != nil {
		expireHours = 24 // default 24 hours
	}

	claims := middleware.Claims{
		UserID:    user.UserID,
		DiscordID: user.DiscordID,
		Role:      user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(expireHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
