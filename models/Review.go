package models

import "gorm.io/gorm"

type Review struct {
	gorm.Model
	UserID     uint     `json:"userID" gorm:"not null;index"`
	PropertyID uint     `json:"propertyID" gorm:"not null;index"`
	User       User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Property   Property `json:"property,omitempty" gorm:"foreignKey:PropertyID"`
	Rating     int      `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment    string   `json:"comment" gorm:"type:text"`
	IsPositive bool     `json:"isPositive" gorm:"default:false"`
}
