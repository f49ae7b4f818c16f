package site

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusActive    = "ACTIVE"
	StatusPaused    = "PAUSED"
	StatusCompleted = "COMPLETED"
)

type Site struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name            string     `gorm:"type:varchar(255);not null"`
	Address         string     `gorm:"type:text;not null"`
	Latitude        *float64   `gorm:"column:latitude"`
	Longitude       *float64   `gorm:"column:longitude"`
	GeofenceRadiusM *float64   `gorm:"column:geofence_radius_m"`
	StartDate       time.Time  `gorm:"type:date;not null"`
	EndDate         *time.Time `gorm:"type:date"`
	Status          string     `gorm:"type:varchar(20);not null;default:'ACTIVE';index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

func (Site) TableName() string {
	return "sites"
}
