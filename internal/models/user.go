package models

import "gorm.io/gorm"

type User struct {
	gorm.Model

	Username     string  `gorm:"uniqueIndex;not null"`
	Email        *string `gorm:"index"`
	PasswordHash string  `gorm:"not null" json:"-"`

	// Relationships
	Tasks []Task `gorm:"foreignKey:OwnerID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
