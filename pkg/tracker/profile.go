package tracker

import (
	"github.com/glucolog/health-tracker-service/pkg/common"
	"github.com/glucolog/health-tracker-service/pkg/models"
	"go.uber.org/zap"
)

func (t *Tracker) getProfile(userID string) (*models.ProfileData, error) {
	var profile models.Profile
	if err := t.Db.Conn.First(&profile, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}

	return &models.ProfileData{
		FullName:         profile.FullName,
		IsDemo:           profile.IsDemo,
		TelegramContacts: models.DecodeContacts(profile.TelegramContacts),
		SecondaryEmails:  models.DecodeContacts(profile.SecondaryEmails),
	}, nil
}

// updateProfile mutates name and contacts only. The demo flag is set at
// account provisioning and is not user-editable.
func (t *Tracker) updateProfile(userID string, input *models.ProfileData) error {
	logger := common.GetLoggerWith(
		common.LoggerNameTrackerCore,
		zap.String(common.LoggerFieldTrackerCategory, common.LoggerCategoryProfile),
	)

	var profile models.Profile
	if err := t.Db.Conn.First(&profile, "user_id = ?", userID).Error; err != nil {
		return err
	}

	profile.FullName = input.FullName
	profile.TelegramContacts = models.EncodeContacts(input.TelegramContacts)
	profile.SecondaryEmails = models.EncodeContacts(input.SecondaryEmails)

	logger.Info("Updating profile for user", zap.String("user_id", userID))

	err := t.Db.Conn.Save(&profile).Error

	if err == nil {
		logger.Info("Profile updated for user", zap.String("user_id", userID))
	}

	return err
}

type IProfileImpl struct {
	tracker *Tracker
}

func (ip *IProfileImpl) GetProfile(userID string) (*models.ProfileData, error) {
	return ip.tracker.getProfile(userID)
}

func (ip *IProfileImpl) UpdateProfile(userID string, input *models.ProfileData) error {
	return ip.tracker.updateProfile(userID, input)
}

func (t *Tracker) GetIProfile() IProfile {
	return &IProfileImpl{tracker: t}
}
