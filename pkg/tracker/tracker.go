package tracker

import (
	"time"

	"github.com/glucolog/health-tracker-service/pkg/db"
	"github.com/glucolog/health-tracker-service/pkg/models"
)

type IReading interface {
	ListReadings(userID string) ([]models.DailyReading, error)
	UpsertReading(userID string, input *models.DailyReading) error
	HasReadingOn(userID string, date time.Time) (bool, error)
}

type IEmergency interface {
	CreateEmergency(userID string, event *models.EmergencyEvent, meds []models.EmergencyMedication) (*models.EmergencyEvent, models.NotificationStatus, models.MedicationSaveStatus, error)
	ListEmergencies(userID string) ([]models.EmergencyEvent, error)
	GetEventMedications(userID string, eventID uint) ([]models.EmergencyMedication, error)
}

type IProfile interface {
	GetProfile(userID string) (*models.ProfileData, error)
	UpdateProfile(userID string, input *models.ProfileData) error
}

type IAccount interface {
	Register(email, password, fullName string) (*models.User, error)
	Authenticate(email, password string) (*models.User, error)
}

// INotifier is the relay seam: satisfied by *relay.Relay in production and
// by a mock in tests.
type INotifier interface {
	Notify(payload any) error
}

type Tracker struct {
	Db        db.DB
	Reading   IReading
	Emergency IEmergency
	Profile   IProfile
	Account   IAccount
	Notifier  INotifier
}

type ServiceOpts struct {
	Reading   IReading
	Emergency IEmergency
	Profile   IProfile
	Account   IAccount
	Notifier  INotifier
}

func (t *Tracker) WithServices(opts ServiceOpts) *Tracker {
	if opts.Reading != nil {
		t.Reading = opts.Reading
	}
	if opts.Emergency != nil {
		t.Emergency = opts.Emergency
	}
	if opts.Profile != nil {
		t.Profile = opts.Profile
	}
	if opts.Account != nil {
		t.Account = opts.Account
	}
	if opts.Notifier != nil {
		t.Notifier = opts.Notifier
	}
	return t
}
