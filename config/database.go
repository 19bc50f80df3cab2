package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB is the community database (users, applications, announcements, logs).
var DB *gorm.DB

// GameDB is the read-only connection to the game server's database.
// It stays nil when GAME_DB_HOST is not configured; character lookups
// then report "not linked" instead of failing.
var GameDB *gorm.DB

func dsnFromEnv(prefix string) string {
	host := os.Getenv(prefix + "_HOST")
	port := os.Getenv(prefix + "_PORT")
	if port == "" {
		port = "3306"
	}
	name := os.Getenv(prefix + "_NAME")
	user := os.Getenv(prefix + "_USER")
	password := os.Getenv(prefix + "_PASSWORD")

	// readTimeout caps every query at 15s so a stuck game-DB join cannot
	// hold a request open indefinitely.
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local&timeout=5s&readTimeout=15s&writeTimeout=15s",
		user,
		password,
		host,
		port,
		name,
	)
}

func gormConfig() *gorm.Config {
	environment := strings.ToLower(os.Getenv("ENVIRONMENT"))
	debugSQL := strings.ToLower(os.Getenv("DEBUG_SQL"))

	// In production, suppress SQL logs unless explicitly re-enabled via DEBUG_SQL=true.
	logLevel := logger.Info
	if environment == "production" && debugSQL != "true" {
		logLevel = logger.Warn
	}

	return &gorm.Config{
		Logger: logger.New(
			log.New(LogWriter, "\r\n", log.LstdFlags),
			logger.Config{LogLevel: logLevel},
		),
	}
}

// InitDB opens the community database and applies pool limits.
func InitDB() {
	var err error

	DB, err = gorm.Open(mysql.Open(dsnFromEnv("DB")), gormConfig())
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		log.Fatal("Failed to access database pool:", err)
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Println("Database connected successfully")
}

// InitGameDB opens the game server database if configured. Reads against
// this connection are tolerant of missing tables, so a partial game
// schema is not fatal.
func InitGameDB() {
	if os.Getenv("GAME_DB_HOST") == "" {
		log.Println("GAME_DB_HOST not set, character lookups disabled")
		return
	}

	var err error
	GameDB, err = gorm.Open(mysql.Open(dsnFromEnv("GAME_DB")), gormConfig())
	if err != nil {
		log.Printf("Warning: failed to connect to game database: %v", err)
		GameDB = nil
		return
	}

	sqlDB, err := GameDB.DB()
	if err == nil {
		sqlDB.SetMaxOpenConns(5)
		sqlDB.SetMaxIdleConns(2)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	log.Println("Game database connected successfully")
}
