package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/time/rate"

	"github.com/glucolog/health-tracker-service/pkg/common"
	"github.com/glucolog/health-tracker-service/pkg/db"
	"github.com/glucolog/health-tracker-service/pkg/models"
	"github.com/glucolog/health-tracker-service/pkg/relay"
	_ "github.com/glucolog/health-tracker-service/pkg/testing"
	"github.com/glucolog/health-tracker-service/pkg/tracker"
	"github.com/glucolog/health-tracker-service/pkg/tracker/mocks"
)

func setupTestServer() *RestfulServer {
	trackerObj := tracker.Tracker{
		Db: *db.GetInstance(db.UseMemorySqliteDialector()),
	}
	trackerObj.WithServices(tracker.ServiceOpts{
		Reading:   trackerObj.GetIReading(),
		Emergency: trackerObj.GetIEmergency(),
		Profile:   trackerObj.GetIProfile(),
		Account:   trackerObj.GetIAccount(),
	})

	rs := &RestfulServer{
		Server:        gin.Default(),
		Tracker:       &trackerObj,
		SessionSecret: "test-session-secret",
		// default we use no limiter, if need, later assign it rs.RateLimiterStore = tracker.NewRateLimiterStore(...)
	}

	rs.Setup()

	return rs
}

func doJSON(rs *RestfulServer, method, path string, payload any, cookies []*http.Cookie) *httptest.ResponseRecorder {
	var body []byte
	if payload != nil {
		body, _ = json.Marshal(payload)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	rs.Server.ServeHTTP(w, req)
	return w
}

func registerTestUser(t *testing.T, rs *RestfulServer) (string, []*http.Cookie, string) {
	t.Helper()

	email := uuid.NewString() + "@example.com"
	w := doJSON(rs, "POST", "/api/auth/register", gin.H{
		"email":     email,
		"password":  "a-long-password",
		"full_name": "Test User",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	userID := resp["user_id"].(string)

	return email, w.Result().Cookies(), userID
}

func TestHealthCheck(t *testing.T) {
	rs := setupTestServer()

	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()

	rs.Server.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestRegisterLoginLogout(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()

	email, cookies, _ := registerTestUser(t, rs)

	// duplicate registration is rejected
	w := doJSON(rs, "POST", "/api/auth/register", gin.H{
		"email":     email,
		"password":  "another-password",
		"full_name": "Someone Else",
	}, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	// session cookie grants access
	w = doJSON(rs, "GET", "/api/profile", nil, cookies)
	assert.Equal(t, http.StatusOK, w.Code)

	// login with wrong password fails
	w = doJSON(rs, "POST", "/api/auth/login", gin.H{"email": email, "password": "wrong-password"}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// login with right password succeeds
	w = doJSON(rs, "POST", "/api/auth/login", gin.H{"email": email, "password": "a-long-password"}, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// logout clears the session
	w = doJSON(rs, "POST", "/api/auth/logout", nil, cookies)
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(rs, "GET", "/api/profile", nil, w.Result().Cookies())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUnauthenticatedAccess(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()

	for _, route := range []struct{ method, path string }{
		{"GET", "/api/profile"},
		{"GET", "/api/readings"},
		{"POST", "/api/readings"},
		{"GET", "/api/emergencies"},
		{"POST", "/api/emergencies"},
	} {
		w := doJSON(rs, route.method, route.path, gin.H{}, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", route.method, route.path)
	}
}

func TestPostAndListReadings(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	_, cookies, _ := registerTestUser(t, rs)

	w := doJSON(rs, "POST", "/api/readings", gin.H{
		"date":            "2024-03-10",
		"sugar_morning":   110.0,
		"sugar_night":     140.0,
		"insulin_morning": 12.0,
		"insulin_night":   10.0,
		"notes":           "long walk",
	}, cookies)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(rs, "GET", "/api/readings", nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)

	var readings []models.DailyReading
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &readings))
	require.Len(t, readings, 1)
	assert.Equal(t, 110.0, readings[0].SugarMorning)
	assert.Equal(t, "long walk", readings[0].Notes)
}

func TestPostReadingDuplicateDate(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	_, cookies, _ := registerTestUser(t, rs)

	payload := gin.H{
		"date":            "2024-03-11",
		"sugar_morning":   100.0,
		"sugar_night":     120.0,
		"insulin_morning": 10.0,
		"insulin_night":   8.0,
	}
	w := doJSON(rs, "POST", "/api/readings", payload, cookies)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// same date again without confirmation is refused
	payload["sugar_morning"] = 95.0
	w = doJSON(rs, "POST", "/api/readings", payload, cookies)
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), `"duplicate_date":true`)

	// with the overwrite flag the second submission wins
	payload["overwrite"] = true
	w = doJSON(rs, "POST", "/api/readings", payload, cookies)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(rs, "GET", "/api/readings", nil, cookies)
	var readings []models.DailyReading
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &readings))

	count := 0
	for _, r := range readings {
		if r.Date.Format("2006-01-02") == "2024-03-11" {
			count++
			assert.Equal(t, 95.0, r.SugarMorning)
		}
	}
	assert.Equal(t, 1, count, "a single row per (user, date) must remain")
}

func TestPostReadingValidation(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	_, cookies, _ := registerTestUser(t, rs)

	// empty payload is rejected before any store call
	w := doJSON(rs, "POST", "/api/readings", gin.H{}, cookies)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// malformed date
	w = doJSON(rs, "POST", "/api/readings", gin.H{
		"date":            "11/03/2024",
		"sugar_morning":   100.0,
		"sugar_night":     120.0,
		"insulin_morning": 10.0,
		"insulin_night":   8.0,
	}, cookies)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPostEmergencyAndListing(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()

	// destination accepting the notification
	dest := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer dest.Close()
	rs.Tracker.Notifier = relay.New(dest.URL, "s3cret", 1)

	_, cookies, userID := registerTestUser(t, rs)

	w := doJSON(rs, "POST", "/api/emergencies", gin.H{
		"event_date":  "2024-05-02",
		"event_time":  "14:30",
		"sugar_level": 42.0,
		"symptoms":    []string{"sweating", "felt strange"},
		"actions_taken": []string{
			"took fast-acting sugar",
		},
		"notes": "after workout",
		"medications": []gin.H{
			{"med_name": "glucagon", "dose": 1.0},
		},
	}, cookies)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"notification":"sent"`)
	assert.Contains(t, w.Body.String(), `"medications":"saved"`)

	var resp struct {
		Event models.EmergencyEvent `json:"event"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, userID, resp.Event.UserID)
	require.NotZero(t, resp.Event.ID)

	w = doJSON(rs, "GET", "/api/emergencies", nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)
	var events []models.EmergencyEvent
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &events))
	require.Len(t, events, 1)
	assert.Equal(t, []string{"sweating", "felt strange"}, events[0].Symptoms)

	medsPath := fmt.Sprintf("/api/emergencies/%d/medications", resp.Event.ID)
	w = doJSON(rs, "GET", medsPath, nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)
	var meds []models.EmergencyMedication
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &meds))
	require.Len(t, meds, 1)
	assert.Equal(t, "glucagon", meds[0].MedName)
	assert.Equal(t, 1.0, meds[0].Dose)

	// another user cannot read the event's medications
	_, otherCookies, _ := registerTestUser(t, rs)
	w = doJSON(rs, "GET", medsPath, nil, otherCookies)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPostEmergencyNotificationFailureStillCreates(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()

	dest := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer dest.Close()
	rs.Tracker.Notifier = relay.New(dest.URL, "s3cret", 1)

	_, cookies, _ := registerTestUser(t, rs)

	w := doJSON(rs, "POST", "/api/emergencies", gin.H{
		"event_date":  "2024-05-03",
		"event_time":  "09:00",
		"sugar_level": 38.0,
		"symptoms":    []string{"dizziness"},
	}, cookies)
	require.Equal(t, http.StatusCreated, w.Code, "record persistence must not be blocked by delivery failure")
	assert.Contains(t, w.Body.String(), `"notification":"failed"`)

	w = doJSON(rs, "GET", "/api/emergencies", nil, cookies)
	var events []models.EmergencyEvent
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &events))
	assert.Len(t, events, 1)
}

func TestPostEmergencyMedicationSaveFailureIsSurfaced(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	_, cookies, userID := registerTestUser(t, rs)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockEmergency := mocks.NewMockIEmergency(ctrl)
	mockEmergency.
		EXPECT().
		CreateEmergency(userID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(uid string, event *models.EmergencyEvent, meds []models.EmergencyMedication) (*models.EmergencyEvent, models.NotificationStatus, models.MedicationSaveStatus, error) {
			// nested snake_case keys must land on the struct fields
			require.Len(t, meds, 1)
			assert.Equal(t, "glucagon", meds[0].MedName)
			assert.Equal(t, 1.0, meds[0].Dose)
			return &models.EmergencyEvent{ID: 7, UserID: uid}, models.NotificationSent, models.MedicationsFailed, nil
		}).
		Times(1)
	rs.Tracker.WithServices(tracker.ServiceOpts{Emergency: mockEmergency})

	w := doJSON(rs, "POST", "/api/emergencies", gin.H{
		"event_date":  "2024-05-06",
		"event_time":  "12:00",
		"sugar_level": 41.0,
		"symptoms":    []string{"sweating"},
		"medications": []gin.H{
			{"med_name": "glucagon", "dose": 1.0},
		},
	}, cookies)

	// the event itself was persisted, so the create still succeeds; the
	// dropped medications are reported alongside the record
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"medications":"failed"`)
}

func TestProfileUpdateRoundTrip(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	_, cookies, _ := registerTestUser(t, rs)

	w := doJSON(rs, "PUT", "/api/profile", gin.H{
		"full_name": "Renamed User",
		"telegram_ids": []gin.H{
			{"identifier": "123456789", "relation_label": "mother"},
		},
		"secondary_emails": []gin.H{
			{"identifier": "doc@example.com", "relation_label": "doctor"},
		},
	}, cookies)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(rs, "GET", "/api/profile", nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)

	var profile struct {
		FullName    string           `json:"full_name"`
		IsDemo      bool             `json:"is_demo"`
		TelegramIDs []models.Contact `json:"telegram_ids"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	assert.Equal(t, "Renamed User", profile.FullName)
	assert.False(t, profile.IsDemo)
	require.Len(t, profile.TelegramIDs, 1)
	assert.Equal(t, "mother", profile.TelegramIDs[0].RelationLabel)
}

func TestWriteRateLimit(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	rs.RateLimiterStore = tracker.NewRateLimiterStore(rate.Limit(0.001), 1)

	_, cookies, _ := registerTestUser(t, rs)

	payload := gin.H{
		"date":            "2024-06-01",
		"sugar_morning":   100.0,
		"sugar_night":     120.0,
		"insulin_morning": 10.0,
		"insulin_night":   8.0,
	}
	w := doJSON(rs, "POST", "/api/readings", payload, cookies)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(rs, "POST", "/api/readings", payload, cookies)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}
