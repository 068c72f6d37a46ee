// File: /models/user.go
package models

import (
	"time"
)

type User struct {
	ID           uint      `json:"user_id" gorm:"primaryKey;column:user_id"`
	Username     string    `json:"username" gorm:"not null;size:100"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null;size:255"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;not null;size:255"`
	CreatedAt    time.Time `json:"created_at"`

	CarbonRecords []CarbonRecord `json:"-" gorm:"foreignKey:UserID"`
}
