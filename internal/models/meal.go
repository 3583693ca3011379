package models

import "time"

const (
	ProcessingUnprocessed        = "UNPROCESSED"
	ProcessingMinimallyProcessed = "MINIMALLY_PROCESSED"
	ProcessingProcessed          = "PROCESSED"
	ProcessingHighlyProcessed    = "HIGHLY_PROCESSED"
)

type MealRecord struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          uint      `gorm:"not null;index:idx_meal_user_time" json:"-"`
	Name            string    `json:"name"`
	FoodCategory    string    `json:"foodCategory"`
	ProcessingLevel string    `json:"processingLevel"`
	UploadTime      time.Time `gorm:"not null;index:idx_meal_user_time" json:"uploadTime"`
	Calories        float64   `gorm:"not null;default:0" json:"calories"`
	ProteinGrams    float64   `gorm:"not null;default:0" json:"proteinGrams"`
	CarbsGrams      float64   `gorm:"not null;default:0" json:"carbsGrams"`
	FatGrams        float64   `gorm:"not null;default:0" json:"fatGrams"`
	FiberGrams      float64   `gorm:"not null;default:0" json:"fiberGrams"`
	SugarGrams      float64   `gorm:"not null;default:0" json:"sugarGrams"`
	SodiumMg        float64   `gorm:"not null;default:0" json:"sodiumMg"`
	FluidsMl        float64   `gorm:"not null;default:0" json:"fluidsMl"`
	AlcoholGrams    float64   `gorm:"not null;default:0" json:"alcoholGrams"`
	CaffeineMg      float64   `gorm:"not null;default:0" json:"caffeineMg"`
	Allergens       []string  `gorm:"serializer:json" json:"allergens"`
	Additives       []string  `gorm:"serializer:json" json:"additives"`
	HealthRiskNotes string    `json:"healthRiskNotes"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func KnownProcessingLevels() []string {
	return []string{
		ProcessingUnprocessed,
		ProcessingMinimallyProcessed,
		ProcessingProcessed,
		ProcessingHighlyProcessed,
	}
}

// IsProcessed reports whether the meal counts toward the processed-food
// percentage. Only the two upper processing tiers qualify.
func (meal MealRecord) IsProcessed() bool {
	return meal.ProcessingLevel == ProcessingProcessed || meal.ProcessingLevel == ProcessingHighlyProcessed
}
