package db

import "gorm.io/gorm"

type Repositories struct {
	Users    *UserRepository
	Meals    *MealRepository
	Feedback *FeedbackRepository
	Quotas   *QuotaRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:    NewUserRepository(database),
		Meals:    NewMealRepository(database),
		Feedback: NewFeedbackRepository(database),
		Quotas:   NewQuotaRepository(database),
	}
}
