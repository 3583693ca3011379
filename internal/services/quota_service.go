package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/terraincognita07/morsel/internal/models"
)

var ErrQuotaExhausted = errors.New("analysis quota exhausted")

const quotaWindow = 24 * time.Hour

type QuotaRepository interface {
	FindByUser(userID uint) (models.AnalysisQuota, bool, error)
	Save(quota *models.AnalysisQuota) error
}

// QuotaService gates AI meal-analysis requests: a per-user counter that
// resets quotaWindow after the first use.
type QuotaService struct {
	quotas     QuotaRepository
	dailyLimit int
}

type QuotaStatus struct {
	Allowed   bool      `json:"allowed"`
	Remaining int       `json:"remaining"`
	ResetsAt  time.Time `json:"resetsAt"`
}

func NewQuotaService(quotas QuotaRepository, dailyLimit int) *QuotaService {
	if dailyLimit <= 0 {
		dailyLimit = models.DefaultDailyAnalysisLimit
	}
	return &QuotaService{quotas: quotas, dailyLimit: dailyLimit}
}

func (service *QuotaService) Check(userID uint, now time.Time) (QuotaStatus, error) {
	quota, found, err := service.quotas.FindByUser(userID)
	if err != nil {
		return QuotaStatus{}, fmt.Errorf("load analysis quota: %w", err)
	}

	if !found || windowExpired(quota, now) {
		return QuotaStatus{
			Allowed:   true,
			Remaining: service.dailyLimit,
			ResetsAt:  now.Add(quotaWindow),
		}, nil
	}

	remaining := service.dailyLimit - quota.UsedCount
	if remaining < 0 {
		remaining = 0
	}
	return QuotaStatus{
		Allowed:   quota.UsedCount < service.dailyLimit,
		Remaining: remaining,
		ResetsAt:  quota.WindowStart.Add(quotaWindow),
	}, nil
}

// Record consumes one analysis slot. It re-checks the limit so a caller
// that skips Check still cannot overrun the quota.
func (service *QuotaService) Record(userID uint, now time.Time) (QuotaStatus, error) {
	quota, found, err := service.quotas.FindByUser(userID)
	if err != nil {
		return QuotaStatus{}, fmt.Errorf("load analysis quota: %w", err)
	}

	if !found {
		quota = models.AnalysisQuota{UserID: userID, WindowStart: now}
	} else if windowExpired(quota, now) {
		quota.UsedCount = 0
		quota.WindowStart = now
	}

	if quota.UsedCount >= service.dailyLimit {
		return QuotaStatus{
			Allowed:   false,
			Remaining: 0,
			ResetsAt:  quota.WindowStart.Add(quotaWindow),
		}, ErrQuotaExhausted
	}

	quota.UsedCount++
	if err := service.quotas.Save(&quota); err != nil {
		return QuotaStatus{}, fmt.Errorf("save analysis quota: %w", err)
	}

	remaining := service.dailyLimit - quota.UsedCount
	return QuotaStatus{
		Allowed:   true,
		Remaining: remaining,
		ResetsAt:  quota.WindowStart.Add(quotaWindow),
	}, nil
}

func windowExpired(quota models.AnalysisQuota, now time.Time) bool {
	return !now.Before(quota.WindowStart.Add(quotaWindow))
}
