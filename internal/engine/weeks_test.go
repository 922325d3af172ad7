package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/go-lifeweeks/internal/engine"
)

// TestWeeksLived verifies the week counter against pinned reference dates.
// Wall-clock time is never used: reproducibility requires explicit dates.
func TestWeeksLived(t *testing.T) {
	tests := []struct {
		name      string
		birth     time.Time
		reference time.Time
		want      int
	}{
		{
			name:      "Reference example (12419 days)",
			birth:     time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
			reference: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			want:      1774,
		},
		{
			name:      "Same day",
			birth:     time.Date(2000, 6, 15, 0, 0, 0, 0, time.UTC),
			reference: time.Date(2000, 6, 15, 0, 0, 0, 0, time.UTC),
			want:      0,
		},
		{
			name:      "Six days is still zero weeks",
			birth:     time.Date(2000, 6, 15, 0, 0, 0, 0, time.UTC),
			reference: time.Date(2000, 6, 21, 0, 0, 0, 0, time.UTC),
			want:      0,
		},
		{
			name:      "Exactly one week",
			birth:     time.Date(2000, 6, 15, 0, 0, 0, 0, time.UTC),
			reference: time.Date(2000, 6, 22, 0, 0, 0, 0, time.UTC),
			want:      1,
		},
		{
			name:      "Reference before birth clamps to zero",
			birth:     time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
			reference: time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC),
			want:      0,
		},
		{
			name:      "Time of day is ignored",
			birth:     time.Date(2000, 6, 15, 23, 59, 0, 0, time.UTC),
			reference: time.Date(2000, 6, 22, 0, 1, 0, 0, time.UTC),
			want:      1,
		},
		{
			name:      "Mixed zones count calendar days",
			birth:     time.Date(2000, 6, 15, 22, 0, 0, 0, time.FixedZone("UTC+9", 9*3600)),
			reference: time.Date(2000, 6, 22, 1, 0, 0, 0, time.UTC),
			want:      1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, engine.WeeksLived(tt.birth, tt.reference))
		})
	}
}

// TestWeeksLived_Monotonic checks that advancing the reference date never
// decreases the count.
func TestWeeksLived_Monotonic(t *testing.T) {
	birth := time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)

	prev := 0
	for day := 0; day < 400; day++ {
		ref := birth.AddDate(0, 0, day)
		got := engine.WeeksLived(birth, ref)
		assert.GreaterOrEqual(t, got, prev, "count decreased at day %d", day)
		assert.Equal(t, day/7, got, "count mismatch at day %d", day)
		prev = got
	}
}

func TestValidateBirthDate(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		birth   time.Time
		wantErr error
	}{
		{
			name:  "Valid date",
			birth: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "Today is allowed",
			birth: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "Floor boundary is allowed",
			birth: time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "Tomorrow is rejected",
			birth:   time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC),
			wantErr: engine.ErrBirthAfterNow,
		},
		{
			name:    "Before floor is rejected",
			birth:   time.Date(1899, 12, 31, 0, 0, 0, 0, time.UTC),
			wantErr: engine.ErrBirthBeforeFloor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := engine.ValidateBirthDate(tt.birth, now)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateLifeExpectancy(t *testing.T) {
	assert.NoError(t, engine.ValidateLifeExpectancy(50))
	assert.NoError(t, engine.ValidateLifeExpectancy(80))
	assert.NoError(t, engine.ValidateLifeExpectancy(100))
	assert.ErrorIs(t, engine.ValidateLifeExpectancy(49), engine.ErrExpectancyRange)
	assert.ErrorIs(t, engine.ValidateLifeExpectancy(101), engine.ErrExpectancyRange)
	assert.ErrorIs(t, engine.ValidateLifeExpectancy(-1), engine.ErrExpectancyRange)
}
