package logger_test

import (
	"context"
	"testing"

	"fantasy-league-backend/internal/logger"

	"github.com/stretchr/testify/assert"
)

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := logger.ContextWithRequestID(context.Background(), "abc-123")

	requestID, ok := logger.RequestIDFromContext(ctx)

	assert.True(t, ok)
	assert.Equal(t, "abc-123", requestID)
}

func TestRequestIDAbsent(t *testing.T) {
	requestID, ok := logger.RequestIDFromContext(context.Background())

	assert.False(t, ok)
	assert.Empty(t, requestID)
}

func TestWithContextCarriesRequestID(t *testing.T) {
	ctx := logger.ContextWithRequestID(context.Background(), "abc-123")

	log := logger.WithContext(ctx)

	assert.Equal(t, "abc-123", log.Data["request_id"])
}

func TestWithContextWithoutRequestID(t *testing.T) {
	log := logger.WithContext(context.Background())

	_, present := log.Data["request_id"]
	assert.False(t, present)
}
