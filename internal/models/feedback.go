package models

import "time"

// MealFeedback keeps user reactions separate from the meal's nutrition
// data. One row per meal at most.
type MealFeedback struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	MealID    uint      `gorm:"not null;uniqueIndex" json:"-"`
	UserID    uint      `gorm:"not null;index" json:"-"`
	Rating    int       `gorm:"not null;default:0" json:"rating"`
	Comment   string    `json:"comment"`
	Favorite  bool      `gorm:"not null;default:false" json:"favorite"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
