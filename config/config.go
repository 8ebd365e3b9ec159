package config

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Config holds the project config values
type Config struct {
	URL          string
	DatabaseName string
	BaseURL      string
	Port         string

	// FakeJoinThreshold is the minimum tenure before a join counts as
	// genuine. Departures earlier than this are reclassified as fake.
	FakeJoinThreshold time.Duration

	// ResyncCron is the cron expression used for the periodic invite
	// snapshot resync job.
	ResyncCron string

	// ReconcileSessionTTL is the idle timeout for manual reconciliation
	// sessions. Expired sessions transition to Abandoned.
	ReconcileSessionTTL time.Duration

	// GatewayURL is the base url of the platform gateway sidecar that
	// serves live invite and member state.
	GatewayURL string

	// GatewayToken authenticates requests to the platform gateway.
	GatewayToken string

	// SpaceIDs are the spaces to warm snapshots for at startup.
	SpaceIDs []string
}

// New sets up all config related services
func New() *Config {

	// .env is optional, real deployments set env vars directly
	_ = godotenv.Load()

	//setup zap logger and replace default logger
	logger := zap.NewExample()
	defer logger.Sync()
	_ = zap.ReplaceGlobals(logger)

	return &Config{
		URL:                 os.Getenv("DB_URI"),
		DatabaseName:        os.Getenv("DB_NAME"),
		BaseURL:             os.Getenv("BASE_URL"),
		Port:                os.Getenv("PORT"),
		FakeJoinThreshold:   durationEnv("FAKE_JOIN_THRESHOLD", 24*time.Hour),
		ResyncCron:          stringEnv("RESYNC_CRON", "0 * * * *"),
		ReconcileSessionTTL: durationEnv("RECONCILE_SESSION_TTL", 15*time.Minute),
		GatewayURL:          os.Getenv("GATEWAY_URL"),
		GatewayToken:        os.Getenv("GATEWAY_TOKEN"),
		SpaceIDs:            listEnv("SPACE_IDS"),
	}

}

func stringEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func listEnv(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		zap.S().Warnw("invalid duration in env, using default",
			"key", key,
			"value", v,
			"default", fallback,
		)
		return fallback
	}
	return d
}

// ErrorStatus is a useful function that will log, write http headers and body for a
// give message, status code and err
func ErrorStatus(message string, httpStatusCode int, w http.ResponseWriter, err error) {
	zap.S().With(err).Error(message)
	w.WriteHeader(httpStatusCode)
	w.Write([]byte(fmt.Sprintf(`{"response": "%s, %v"}`, message, err)))
}
