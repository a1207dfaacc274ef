package models

import "time"

// SymptomVocabulary and ActionVocabulary are the fixed tag sets offered in the
// emergency form. Free-text tags are stored alongside them as entered.
var SymptomVocabulary = []string{
	"sweating",
	"trembling",
	"dizziness",
	"confusion",
	"blurred vision",
	"weakness",
	"nausea",
	"rapid heartbeat",
}

var ActionVocabulary = []string{
	"took fast-acting sugar",
	"took glucagon",
	"ate a meal",
	"adjusted insulin dose",
	"called a doctor",
	"rested",
}

type User struct {
	ID           string `gorm:"primaryKey"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	CreatedAt    time.Time
}

type Profile struct {
	UserID   string `gorm:"primaryKey"`
	FullName string
	IsDemo   bool

	// Contacts are persisted in the delimited "identifier:relation" wire
	// encoding. Use EncodeContacts/DecodeContacts at the boundary.
	TelegramContacts []string `gorm:"serializer:json" json:"telegram_ids"`
	SecondaryEmails  []string `gorm:"serializer:json" json:"secondary_emails"`
}

// ProfileData is the decoded shape handed to callers: contacts as tagged
// structs, never the delimited strings.
type ProfileData struct {
	FullName         string
	IsDemo           bool
	TelegramContacts []Contact
	SecondaryEmails  []Contact
}

// NotificationStatus reports the outcome of the best-effort webhook
// notification attached to an emergency event. Delivery failure never fails
// the event creation itself.
type NotificationStatus string

const (
	NotificationSent   NotificationStatus = "sent"
	NotificationFailed NotificationStatus = "failed"
)

// MedicationSaveStatus reports whether an emergency's medications were all
// persisted. A failed save never rolls back the event itself.
type MedicationSaveStatus string

const (
	MedicationsSaved  MedicationSaveStatus = "saved"
	MedicationsFailed MedicationSaveStatus = "failed"
)

// DailyReading holds one day of sugar levels (mg/dL) and insulin doses
// (units). At most one row per (user, date), enforced by the unique index
// and upsert-on-conflict writes.
type DailyReading struct {
	ID             uint      `gorm:"primaryKey"`
	UserID         string    `gorm:"not null;uniqueIndex:uidx_reading_user_date"`
	Date           time.Time `gorm:"type:date;not null;uniqueIndex:uidx_reading_user_date"`
	SugarMorning   float64   `json:"sugar_morning"`
	SugarNight     float64   `json:"sugar_night"`
	InsulinMorning float64   `json:"insulin_morning"`
	InsulinNight   float64   `json:"insulin_night"`
	Notes          string    `json:"notes,omitempty"`
}

// EmergencyEvent is immutable once created; there is no edit path.
type EmergencyEvent struct {
	ID           uint      `gorm:"primaryKey"`
	UserID       string    `gorm:"index"`
	EventDate    time.Time `gorm:"type:date" json:"event_date"`
	EventTime    string    `json:"event_time"`
	SugarLevel   float64   `json:"sugar_level"`
	Symptoms     []string  `gorm:"serializer:json" json:"symptoms"`
	ActionsTaken []string  `gorm:"serializer:json" json:"actions_taken,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time
}

type EmergencyMedication struct {
	ID      uint    `gorm:"primaryKey"`
	EventID uint    `gorm:"index" json:"event_id"`
	MedName string  `json:"med_name"`
	Dose    float64 `json:"dose"`
}
