package models

import "time"

const DefaultDailyCalorieGoal = 2000

type User struct {
	ID               uint   `gorm:"primaryKey"`
	Email            string `gorm:"uniqueIndex;not null"`
	PasswordHash     string `gorm:"not null"`
	DisplayName      string
	DailyCalorieGoal int       `gorm:"not null;default:2000"`
	CreatedAt        time.Time `gorm:"not null"`
}
