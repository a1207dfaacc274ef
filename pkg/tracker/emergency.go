package tracker

import (
	"time"

	"github.com/glucolog/health-tracker-service/pkg/common"
	"github.com/glucolog/health-tracker-service/pkg/models"
	"go.uber.org/zap"
)

// EmergencyNotification is the canonical webhook payload: the persisted
// event plus a client-side timestamp. Symptoms and actions are native
// arrays on the wire.
type EmergencyNotification struct {
	Event     *models.EmergencyEvent `json:"event"`
	Timestamp time.Time              `json:"timestamp"`
}

func (t *Tracker) createEmergency(userID string, event *models.EmergencyEvent, meds []models.EmergencyMedication) (*models.EmergencyEvent, models.NotificationStatus, models.MedicationSaveStatus, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameTrackerCore,
		zap.String(common.LoggerFieldTrackerCategory, common.LoggerCategoryEmergency),
	)

	created := models.EmergencyEvent{
		UserID:       userID,
		EventDate:    event.EventDate,
		EventTime:    event.EventTime,
		SugarLevel:   event.SugarLevel,
		Symptoms:     event.Symptoms,
		ActionsTaken: event.ActionsTaken,
		Notes:        event.Notes,
	}

	logger.Info("Received emergency event for user", zap.Reflect("event", created))

	if err := t.Db.Conn.Create(&created).Error; err != nil {
		return nil, models.NotificationFailed, models.MedicationsFailed, err
	}

	logger.Info("Emergency event saved", zap.Reflect("event", created))

	// medication insert failure never rolls back the event; the
	// inconsistency window is accepted and reported to the caller
	medStatus := models.MedicationsSaved
	if len(meds) > 0 {
		for i := range meds {
			meds[i].EventID = created.ID
		}
		if err := t.Db.Conn.Create(&meds).Error; err != nil {
			logger.Error("Failed to save emergency medications", zap.Error(err))
			medStatus = models.MedicationsFailed
		} else {
			logger.Info("Emergency medications saved", zap.Int("count", len(meds)))
		}
	}

	status := t.notify(&created)

	return &created, status, medStatus, nil
}

func (t *Tracker) notify(event *models.EmergencyEvent) models.NotificationStatus {
	logger := common.GetLoggerWith(
		common.LoggerNameTrackerCore,
		zap.String(common.LoggerFieldTrackerCategory, common.LoggerCategoryNotification),
	)

	if t.Notifier == nil {
		logger.Warn("No notifier configured, skipping emergency notification")
		return models.NotificationFailed
	}

	payload := EmergencyNotification{
		Event:     event,
		Timestamp: time.Now(),
	}

	if err := t.Notifier.Notify(payload); err != nil {
		logger.Warn("Emergency notification delivery failed", zap.Error(err))
		return models.NotificationFailed
	}

	logger.Info("Emergency notification delivered", zap.Uint("event_id", event.ID))
	return models.NotificationSent
}

func (t *Tracker) listEmergencies(userID string) ([]models.EmergencyEvent, error) {
	events := []models.EmergencyEvent{}
	err := t.Db.Conn.
		Where("user_id = ?", userID).
		Order("event_date desc, event_time desc").
		Find(&events).Error
	return events, err
}

// getEventMedications scopes the lookup to the owning user; an event that
// belongs to someone else is indistinguishable from one that does not exist.
func (t *Tracker) getEventMedications(userID string, eventID uint) ([]models.EmergencyMedication, error) {
	var event models.EmergencyEvent
	if err := t.Db.Conn.First(&event, "id = ? AND user_id = ?", eventID, userID).Error; err != nil {
		return nil, err
	}

	meds := []models.EmergencyMedication{}
	err := t.Db.Conn.
		Where("event_id = ?", eventID).
		Find(&meds).Error
	return meds, err
}

type IEmergencyImpl struct {
	tracker *Tracker
}

func (ie *IEmergencyImpl) CreateEmergency(userID string, event *models.EmergencyEvent, meds []models.EmergencyMedication) (*models.EmergencyEvent, models.NotificationStatus, models.MedicationSaveStatus, error) {
	return ie.tracker.createEmergency(userID, event, meds)
}

func (ie *IEmergencyImpl) ListEmergencies(userID string) ([]models.EmergencyEvent, error) {
	return ie.tracker.listEmergencies(userID)
}

func (ie *IEmergencyImpl) GetEventMedications(userID string, eventID uint) ([]models.EmergencyMedication, error) {
	return ie.tracker.getEventMedications(userID, eventID)
}

func (t *Tracker) GetIEmergency() IEmergency {
	return &IEmergencyImpl{tracker: t}
}
