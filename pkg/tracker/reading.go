package tracker

import (
	"time"

	"github.com/glucolog/health-tracker-service/pkg/common"
	"github.com/glucolog/health-tracker-service/pkg/models"
	"go.uber.org/zap"
	"gorm.io/gorm/clause"
)

func (t *Tracker) listReadings(userID string) ([]models.DailyReading, error) {
	readings := []models.DailyReading{}
	err := t.Db.Conn.
		Where("user_id = ?", userID).
		Order("date desc").
		Find(&readings).Error
	return readings, err
}

func (t *Tracker) upsertReading(userID string, input *models.DailyReading) error {
	logger := common.GetLoggerWith(
		common.LoggerNameTrackerCore,
		zap.String(common.LoggerFieldTrackerCategory, common.LoggerCategoryReading),
	)

	reading := models.DailyReading{
		UserID:         userID,
		Date:           input.Date,
		SugarMorning:   input.SugarMorning,
		SugarNight:     input.SugarNight,
		InsulinMorning: input.InsulinMorning,
		InsulinNight:   input.InsulinNight,
		Notes:          input.Notes,
	}

	logger.Info("Received reading for user", zap.Reflect("reading", reading))

	// the store enforces one row per (user, date): conflicting writes
	// overwrite, last write wins
	err := t.Db.Conn.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
		UpdateAll: true,
	}).Create(&reading).Error

	if err == nil {
		logger.Info("Upserted reading for user", zap.Reflect("reading", reading))
	}

	return err
}

func (t *Tracker) hasReadingOn(userID string, date time.Time) (bool, error) {
	var count int64
	err := t.Db.Conn.Model(&models.DailyReading{}).
		Where("user_id = ? AND date = ?", userID, date).
		Count(&count).Error
	return count > 0, err
}

type IReadingImpl struct {
	tracker *Tracker
}

func (ir *IReadingImpl) ListReadings(userID string) ([]models.DailyReading, error) {
	return ir.tracker.listReadings(userID)
}

func (ir *IReadingImpl) UpsertReading(userID string, input *models.DailyReading) error {
	return ir.tracker.upsertReading(userID, input)
}

func (ir *IReadingImpl) HasReadingOn(userID string, date time.Time) (bool, error) {
	return ir.tracker.hasReadingOn(userID, date)
}

func (t *Tracker) GetIReading() IReading {
	return &IReadingImpl{tracker: t}
}
