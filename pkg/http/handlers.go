package http

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/glucolog/health-tracker-service/pkg/common"
	"github.com/glucolog/health-tracker-service/pkg/models"
	"github.com/glucolog/health-tracker-service/pkg/relay"
	"github.com/glucolog/health-tracker-service/pkg/tracker"
	"go.uber.org/zap"
	"gorm.io/gorm"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
)

func sessionUserID(c *gin.Context) string {
	return c.GetString(SessionKeyUser)
}

// isDemoUser reads the demo flag off the session user's profile. Demo
// accounts get simulated success on every write path; reads run normally.
func (rs *RestfulServer) isDemoUser(userID string) (bool, error) {
	profile, err := rs.Tracker.Profile.GetProfile(userID)
	if err != nil {
		return false, err
	}
	return profile.IsDemo, nil
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

var registerRequestSchema = z.Struct(z.Shape{
	"Email":    z.String().Email().Required(),
	"Password": z.String().Min(8).Required(),
	"FullName": z.String().Min(1).Required(),
})

func (rs *RestfulServer) Register(c *gin.Context) {
	var req RegisterRequest
	if err := registerRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	user, err := rs.Tracker.Account.Register(req.Email, req.Password, req.FullName)
	if err != nil {
		if errors.Is(err, tracker.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	session := sessions.Default(c)
	session.Set(SessionKeyUser, user.ID)
	if err := session.Save(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user_id": user.ID, "email": user.Email})
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

var loginRequestSchema = z.Struct(z.Shape{
	"Email":    z.String().Email().Required(),
	"Password": z.String().Min(1).Required(),
})

func (rs *RestfulServer) Login(c *gin.Context) {
	var req LoginRequest
	if err := loginRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	user, err := rs.Tracker.Account.Authenticate(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, tracker.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	session := sessions.Default(c)
	session.Set(SessionKeyUser, user.ID)
	if err := session.Save(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user_id": user.ID, "email": user.Email})
}

func (rs *RestfulServer) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (rs *RestfulServer) GetProfile(c *gin.Context) {
	userID := sessionUserID(c)

	profile, err := rs.Tracker.Profile.GetProfile(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"full_name":        profile.FullName,
		"is_demo":          profile.IsDemo,
		"telegram_ids":     profile.TelegramContacts,
		"secondary_emails": profile.SecondaryEmails,
	})
}

type ContactRequest struct {
	Identifier    string `json:"identifier" zog:"identifier"`
	RelationLabel string `json:"relation_label" zog:"relation_label"`
}

type ProfileRequest struct {
	FullName        string           `json:"full_name"`
	TelegramIDs     []ContactRequest `json:"telegram_ids"`
	SecondaryEmails []ContactRequest `json:"secondary_emails"`
}

var contactRequestSchema = z.Struct(z.Shape{
	"Identifier":    z.String().Min(1).Required(),
	"RelationLabel": z.String(),
})

var profileRequestSchema = z.Struct(z.Shape{
	"FullName":        z.String().Min(1).Required(),
	"TelegramIDs":     z.Slice(contactRequestSchema),
	"SecondaryEmails": z.Slice(contactRequestSchema),
})

func contactsFromRequest(reqs []ContactRequest) []models.Contact {
	return common.Mapper(reqs, func(r ContactRequest) models.Contact {
		return models.Contact{Identifier: r.Identifier, RelationLabel: r.RelationLabel}
	})
}

func (rs *RestfulServer) UpdateProfile(c *gin.Context) {
	userID := sessionUserID(c)

	var req ProfileRequest
	if err := profileRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	demo, err := rs.isDemoUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if demo {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "demo": true})
		return
	}

	input := &models.ProfileData{
		FullName:         req.FullName,
		TelegramContacts: contactsFromRequest(req.TelegramIDs),
		SecondaryEmails:  contactsFromRequest(req.SecondaryEmails),
	}

	if err := rs.Tracker.Profile.UpdateProfile(userID, input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (rs *RestfulServer) ListReadings(c *gin.Context) {
	userID := sessionUserID(c)

	readings, err := rs.Tracker.Reading.ListReadings(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, readings)
}

type ReadingRequest struct {
	Date           string  `json:"date"`
	SugarMorning   float64 `json:"sugar_morning"`
	SugarNight     float64 `json:"sugar_night"`
	InsulinMorning float64 `json:"insulin_morning"`
	InsulinNight   float64 `json:"insulin_night"`
	Notes          string  `json:"notes"`
	Overwrite      bool    `json:"overwrite"`
}

var readingRequestSchema = z.Struct(z.Shape{
	"Date":           z.String().Min(1).Required(),
	"SugarMorning":   z.Float64().Required(),
	"SugarNight":     z.Float64().Required(),
	"InsulinMorning": z.Float64().Required(),
	"InsulinNight":   z.Float64().Required(),
	"Notes":          z.String(),
	"Overwrite":      z.Bool(),
})

func (rs *RestfulServer) PostReading(c *gin.Context) {
	userID := sessionUserID(c)

	if !rs.CheckUserLimiter(userID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req ReadingRequest
	if err := readingRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be formatted as YYYY-MM-DD"})
		return
	}

	demo, err := rs.isDemoUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if demo {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "demo": true})
		return
	}

	// overwriting an existing date needs the caller's explicit confirmation
	if !req.Overwrite {
		exists, err := rs.Tracker.Reading.HasReadingOn(userID, date)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if exists {
			c.JSON(http.StatusConflict, gin.H{
				"duplicate_date": true,
				"error":          "a reading for this date already exists",
			})
			return
		}
	}

	if err := rs.Tracker.Reading.UpsertReading(userID, &models.DailyReading{
		Date:           date,
		SugarMorning:   req.SugarMorning,
		SugarNight:     req.SugarNight,
		InsulinMorning: req.InsulinMorning,
		InsulinNight:   req.InsulinNight,
		Notes:          req.Notes,
	}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (rs *RestfulServer) ListEmergencies(c *gin.Context) {
	userID := sessionUserID(c)

	events, err := rs.Tracker.Emergency.ListEmergencies(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, events)
}

// zog does not resolve snake_case wire keys inside nested slice schemas on
// its own; the zog tags carry the mapping for fields parsed through
// z.Slice(structSchema).
type MedicationRequest struct {
	MedName string  `json:"med_name" zog:"med_name"`
	Dose    float64 `json:"dose" zog:"dose"`
}

type EmergencyRequest struct {
	EventDate    string              `json:"event_date"`
	EventTime    string              `json:"event_time"`
	SugarLevel   float64             `json:"sugar_level"`
	Symptoms     []string            `json:"symptoms"`
	ActionsTaken []string            `json:"actions_taken"`
	Notes        string              `json:"notes"`
	Medications  []MedicationRequest `json:"medications"`
}

var medicationRequestSchema = z.Struct(z.Shape{
	"MedName": z.String().Min(1).Required(),
	"Dose":    z.Float64().Required(),
})

var emergencyRequestSchema = z.Struct(z.Shape{
	"EventDate":    z.String().Min(1).Required(),
	"EventTime":    z.String().Min(1).Required(),
	"SugarLevel":   z.Float64().Required(),
	"Symptoms":     z.Slice(z.String().Min(1)).Min(1).Required(),
	"ActionsTaken": z.Slice(z.String().Min(1)),
	"Notes":        z.String(),
	"Medications":  z.Slice(medicationRequestSchema),
})

func (rs *RestfulServer) PostEmergency(c *gin.Context) {
	userID := sessionUserID(c)

	if !rs.CheckUserLimiter(userID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req EmergencyRequest
	if err := emergencyRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	eventDate, err := time.Parse("2006-01-02", req.EventDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "event_date must be formatted as YYYY-MM-DD"})
		return
	}
	if _, err := time.Parse("15:04", req.EventTime); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "event_time must be formatted as HH:MM"})
		return
	}

	demo, err := rs.isDemoUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if demo {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "demo": true})
		return
	}

	meds := common.Mapper(req.Medications, func(m MedicationRequest) models.EmergencyMedication {
		return models.EmergencyMedication{MedName: m.MedName, Dose: m.Dose}
	})

	event := &models.EmergencyEvent{
		EventDate:    eventDate,
		EventTime:    req.EventTime,
		SugarLevel:   req.SugarLevel,
		Symptoms:     req.Symptoms,
		ActionsTaken: req.ActionsTaken,
		Notes:        req.Notes,
	}

	created, notification, medStatus, err := rs.Tracker.Emergency.CreateEmergency(userID, event, meds)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"event":        created,
		"notification": notification,
		"medications":  medStatus,
	})
}

func (rs *RestfulServer) GetEventMedications(c *gin.Context) {
	userID := sessionUserID(c)

	eventID, err := strconv.ParseUint(c.Param("event_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "event_id must be a number"})
		return
	}

	meds, err := rs.Tracker.Emergency.GetEventMedications(userID, uint(eventID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, meds)
}

func (rs *RestfulServer) WebhookProxy(c *gin.Context) {
	logger := common.GetLoggerWith(common.LoggerNameRestfulServer)

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable request body"})
		return
	}

	if rs.Relay == nil || !rs.Relay.Configured() {
		logger.Error("Webhook proxy invoked without destination configuration")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "missing configuration"})
		return
	}

	status, respBody, err := rs.Relay.Forward(body)
	if err != nil {
		if errors.Is(err, relay.ErrMissingConfiguration) {
			logger.Error("Webhook proxy invoked without destination configuration")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "missing configuration"})
			return
		}
		logger.Error("Webhook forward failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Data(status, "application/json", respBody)
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
