package tracker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestShortLivedUnderThreshold(t *testing.T) {
	classifier := Classifier{Threshold: 24 * time.Hour}
	joined := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	assert.True(t, classifier.ShortLived(joined, joined.Add(2*time.Hour)))
	assert.True(t, classifier.ShortLived(joined, joined.Add(23*time.Hour+59*time.Minute)))
}

func TestExactThresholdIsGenuine(t *testing.T) {
	classifier := Classifier{Threshold: 24 * time.Hour}
	joined := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	assert.False(t, classifier.ShortLived(joined, joined.Add(24*time.Hour)))
	assert.False(t, classifier.ShortLived(joined, joined.Add(30*24*time.Hour)))
}
