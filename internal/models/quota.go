package models

import "time"

const DefaultDailyAnalysisLimit = 5

// AnalysisQuota counts AI meal-analysis requests inside a rolling 24h
// window. The counter resets when the window expires.
type AnalysisQuota struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      uint      `gorm:"not null;uniqueIndex"`
	UsedCount   int       `gorm:"not null;default:0"`
	WindowStart time.Time `gorm:"not null"`
	UpdatedAt   time.Time
}

// TableName pins the table to the name used by the SQL migrations;
// GORM's pluralizer leaves "quota" unchanged, which would otherwise
// map this model to "analysis_quota".
func (AnalysisQuota) TableName() string {
	return "analysis_quotas"
}
