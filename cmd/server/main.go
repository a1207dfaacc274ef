package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glucolog/health-tracker-service/pkg/common"
	"github.com/glucolog/health-tracker-service/pkg/db"
	trackerHttp "github.com/glucolog/health-tracker-service/pkg/http"
	"github.com/glucolog/health-tracker-service/pkg/relay"
	"github.com/glucolog/health-tracker-service/pkg/tracker"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	glucoDbType := os.Getenv(common.EnvKeyGlucoDBType)
	switch glucoDbType {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	default:
		log.Fatal("Unknown GLUCO_DB_TYPE: " + glucoDbType)
	}

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyGlucoHttpHostPort))

	sessionSecret := strings.TrimSpace(os.Getenv(common.EnvKeyGlucoSessionSecret))
	if sessionSecret == "" {
		log.Fatal("GLUCO_SESSION_SECRET not set in .env")
	}

	var defaultRate float64
	var defaultBurst int64

	if defaultRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeyGlucoDefaultRate), 64); err != nil {
		log.Fatal("Invalid GLUCO_DEFAULT_RATE, or not set in .env, should be a float64 value")
	}

	if defaultBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeyGlucoDefaultBurst), 10, 64); err != nil {
		log.Fatal("Invalid GLUCO_DEFAULT_BURST, or not set in .env, should be an int value")
	}

	retryDelay := time.Second
	if raw := strings.TrimSpace(os.Getenv(common.EnvKeyGlucoWebhookRetryDelayMs)); raw != "" {
		ms, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			log.Fatal("Invalid GLUCO_WEBHOOK_RETRY_DELAY_MS, should be an int value in milliseconds")
		}
		retryDelay = time.Duration(ms) * time.Millisecond
	}

	logger := common.GetLogger()

	// relay config is checked per request so the service still boots
	// without a webhook destination; delivery then fails closed
	webhookRelay := relay.New(
		strings.TrimSpace(os.Getenv(common.EnvKeyGlucoWebhookURL)),
		strings.TrimSpace(os.Getenv(common.EnvKeyGlucoWebhookSecret)),
		retryDelay,
	)
	if !webhookRelay.Configured() {
		logger.Warn("Webhook destination or secret not configured, emergency notifications will fail")
	}

	trackerCore := tracker.Tracker{
		Db: *dbInstance,
	}
	trackerCore.WithServices(tracker.ServiceOpts{
		Reading:   trackerCore.GetIReading(),
		Emergency: trackerCore.GetIEmergency(),
		Profile:   trackerCore.GetIProfile(),
		Account:   trackerCore.GetIAccount(),
		Notifier:  webhookRelay,
	})

	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":1080"
	}

	logger.Info("Starting HTTP server on port " + httpHostPort)
	rs := &trackerHttp.RestfulServer{
		Server:           gin.Default(),
		Tracker:          &trackerCore,
		Relay:            webhookRelay,
		RateLimiterStore: tracker.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst)),
		SessionSecret:    sessionSecret,
	}
	rs.Setup()

	logger.Info("http server created with:",
		zap.String("default_limiter",
			fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", defaultRate, defaultBurst)))

	logger.Info("Starting HTTP server on: " + httpHostPort)
	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
