package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/taldoflemis/brain.test-gateway/internal/session/domain"
)

func TestExpiryInstant_Expired_Returns(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		instant  domain.ExpiryInstant
		expected bool
	}{
		{
			name:     "not_expired_when_in_future",
			instant:  domain.ExpiryInstant(now.Add(time.Hour).String()),
			expected: false,
		},
		{
			name:     "expired_when_in_past",
			instant:  domain.ExpiryInstant(now.Add(-time.Hour).String()),
			expected: true,
		},
		{
			name:     "expired_when_equal_to_now",
			instant:  domain.ExpiryInstant(now.String()),
			expected: true,
		},
		{
			name:     "not_expired_with_monotonic_clock_suffix",
			instant:  domain.ExpiryInstant("2024-05-01 13:00:00 +0000 UTC m=+3600.000000001"),
			expected: false,
		},
		{
			name:     "expired_with_monotonic_clock_suffix_in_past",
			instant:  domain.ExpiryInstant("2024-05-01 11:00:00 +0000 UTC m=+0.000000001"),
			expected: true,
		},
		{
			name:     "not_expired_with_fractional_seconds",
			instant:  domain.ExpiryInstant("2024-05-01 13:00:00.123456789 +0000 UTC"),
			expected: false,
		},
		{
			name:     "not_expired_with_numeric_zone_offset",
			instant:  domain.ExpiryInstant("2024-05-01 10:00:00 -0300 -03"),
			expected: false,
		},
		{
			name:     "expired_when_empty",
			instant:  domain.ExpiryInstant(""),
			expected: true,
		},
		{
			name:     "expired_when_malformed",
			instant:  domain.ExpiryInstant("tomorrow at noon"),
			expected: true,
		},
		{
			name:     "not_expired_when_rfc3339_formatted_in_future",
			instant:  domain.ExpiryInstant("2024-05-01T13:00:00Z"),
			expected: false,
		},
		{
			name:     "expired_when_rfc3339_formatted_in_past",
			instant:  domain.ExpiryInstant("2024-05-01T11:00:00Z"),
			expected: true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, tc.instant.Expired(now))
		})
	}
}

func TestSession_Errored_Returns(t *testing.T) {
	session := domain.Session{}
	assert.False(t, session.Errored())

	errored := session.WithError(domain.ErrorTagRefreshFailed)
	assert.True(t, errored.Errored())
	assert.False(t, session.Errored())
}
