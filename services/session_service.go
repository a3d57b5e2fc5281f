package services

import (
	"time"

	"fiber-lims/logger"
	"fiber-lims/models"

	"gorm.io/gorm"
)

// SweepExpiredSessions deactivates sessions past their expiry. Wired
// to a nightly cron job in main.
func SweepExpiredSessions(db *gorm.DB) {
	result := db.Model(&models.UserSession{}).
		Where("is_active = ? AND expires_at <= ?", true, time.Now()).
		Update("is_active", false)
	if result.Error != nil {
		logger.Get().WithError(result.Error).Error("session sweep failed")
		return
	}
	if result.RowsAffected > 0 {
		logger.Get().WithField("sessions", result.RowsAffected).Info("deactivated expired sessions")
	}
}
