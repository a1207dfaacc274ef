package http

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/glucolog/health-tracker-service/pkg/relay"
	"github.com/glucolog/health-tracker-service/pkg/tracker"
	"golang.org/x/time/rate"
)

const (
	SessionName    = "glucolog_session"
	SessionKeyUser = "user_id"
)

type RestfulServer struct {
	Server           *gin.Engine
	Tracker          *tracker.Tracker
	Relay            *relay.Relay
	RateLimiterStore *tracker.RateLimiterStore
	SessionSecret    string
}

func (rs *RestfulServer) GetLimiter(userID string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(userID)
	}
}

func (rs *RestfulServer) CheckUserLimiter(userID string) bool {
	limiter := rs.GetLimiter(userID)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

// RequireUser guards the per-user routes: requests without an authenticated
// session get 401 before any store call.
func (rs *RestfulServer) RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID, ok := session.Get(SessionKeyUser).(string)
		if !ok || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Set(SessionKeyUser, userID)
		c.Next()
	}
}

func (rs *RestfulServer) Setup() {
	// the webhook-proxy contract requires 405 on non-POST, not gin's
	// default 404
	rs.Server.HandleMethodNotAllowed = true

	store := cookie.NewStore([]byte(rs.SessionSecret))
	rs.Server.Use(sessions.Sessions(SessionName, store))

	rs.Server.GET("/healthz", rs.HealthCheck)
	rs.Server.POST("/api/webhook-proxy", rs.WebhookProxy)

	auth := rs.Server.Group("/api/auth")
	{
		auth.POST("/register", rs.Register)
		auth.POST("/login", rs.Login)
		auth.POST("/logout", rs.Logout)
	}

	api := rs.Server.Group("/api", rs.RequireUser())
	{
		api.GET("/profile", rs.GetProfile)
		api.PUT("/profile", rs.UpdateProfile)
		api.GET("/readings", rs.ListReadings)
		api.POST("/readings", rs.PostReading)
		api.GET("/emergencies", rs.ListEmergencies)
		api.POST("/emergencies", rs.PostEmergency)
		api.GET("/emergencies/:event_id/medications", rs.GetEventMedications)
	}
}
