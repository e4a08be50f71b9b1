package timezone_test

import (
	"testing"
	"time"

	"hotel/shared/timezone"

	"github.com/stretchr/testify/assert"
)

func TestTimezoneInit(t *testing.T) {
	assert.False(t, timezone.Now().IsZero())
	assert.NotNil(t, timezone.GetLocation())
}

func TestTimezoneFormat(t *testing.T) {
	testTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	formatted := timezone.Format(testTime, time.RFC3339)
	parsed, err := time.Parse(time.RFC3339, formatted)

	assert.NoError(t, err)
	assert.True(t, parsed.Equal(testTime))
}

func TestParseDate(t *testing.T) {
	parsed, err := timezone.ParseDate("2024-01-01")
	assert.NoError(t, err)
	assert.Equal(t, 2024, parsed.Year())
	assert.Equal(t, timezone.GetLocation(), parsed.Location())

	_, err = timezone.ParseDate("01/01/2024")
	assert.Error(t, err)
}

func TestNights(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		checkOut time.Time
		expected int
	}{
		{name: "two whole days", checkOut: base.AddDate(0, 0, 2), expected: 2},
		{name: "partial day rounds up", checkOut: base.Add(25 * time.Hour), expected: 2},
		{name: "same instant", checkOut: base, expected: 0},
		{name: "check out before check in", checkOut: base.Add(-time.Hour), expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, timezone.Nights(base, tt.checkOut))
		})
	}
}
