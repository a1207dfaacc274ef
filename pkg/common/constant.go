package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyGlucoDBType string = "GLUCO_DB_TYPE"
	EnvKeyGlucoDbPath string = "GLUCO_DB_PATH"

	EnvKeyGlucoHttpHostPort string = "GLUCO_HTTP_HOST_PORT"

	EnvKeyGlucoSessionSecret string = "GLUCO_SESSION_SECRET"

	EnvKeyGlucoWebhookURL          string = "GLUCO_WEBHOOK_URL"
	EnvKeyGlucoWebhookSecret       string = "GLUCO_WEBHOOK_SECRET"
	EnvKeyGlucoWebhookRetryDelayMs string = "GLUCO_WEBHOOK_RETRY_DELAY_MS"

	EnvKeyGlucoDefaultRate  string = "GLUCO_DEFAULT_RATE"
	EnvKeyGlucoDefaultBurst string = "GLUCO_DEFAULT_BURST"

	LoggerNameTrackerCore      string = "tracker_core"
	LoggerNameRestfulServer    string = "restful_server"
	LoggerNameWebhookRelay     string = "webhook_relay"
	LoggerFieldTrackerCategory string = "category"
	LoggerCategoryReading      string = "reading"
	LoggerCategoryEmergency    string = "emergency"
	LoggerCategoryProfile      string = "profile"
	LoggerCategoryAccount      string = "account"
	LoggerCategoryNotification string = "notification"
)
