package controllers

import (
	"github.com/VindiceCode/plantprince/config"
	"github.com/VindiceCode/plantprince/models"

	"gorm.io/gorm"
)

// MigrateModels runs the database migrations
func MigrateModels(db *gorm.DB) {
	config.DB = db
	db.AutoMigrate(&models.RequestLog{})
}
