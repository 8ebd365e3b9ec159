package config

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	os.Setenv("DB_URI", "mongodb://127.0.0.1:27017")
	os.Setenv("DB_NAME", "test")
	conf := New()

	assert.NotEmpty(t, conf)
	assert.Equal(t, 24*time.Hour, conf.FakeJoinThreshold)
	assert.Equal(t, "0 * * * *", conf.ResyncCron)
}

func TestNewWithOverrides(t *testing.T) {
	os.Setenv("FAKE_JOIN_THRESHOLD", "48h")
	os.Setenv("RECONCILE_SESSION_TTL", "5m")
	defer os.Unsetenv("FAKE_JOIN_THRESHOLD")
	defer os.Unsetenv("RECONCILE_SESSION_TTL")

	conf := New()

	assert.Equal(t, 48*time.Hour, conf.FakeJoinThreshold)
	assert.Equal(t, 5*time.Minute, conf.ReconcileSessionTTL)
}

func TestDurationEnvInvalidFallsBack(t *testing.T) {
	os.Setenv("FAKE_JOIN_THRESHOLD", "not-a-duration")
	defer os.Unsetenv("FAKE_JOIN_THRESHOLD")

	d := durationEnv("FAKE_JOIN_THRESHOLD", 24*time.Hour)
	assert.Equal(t, 24*time.Hour, d)
}

func TestErrorStatus(t *testing.T) {

	ErrorStatus("error it borked", http.StatusBadRequest, httptest.NewRecorder(), errors.New("bad request"))
	assert.True(t, true)
}
