package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{"plain", "2024-01-05", NewDate(2024, time.January, 5), false},
		{"surrounding space", " 2024-12-31 ", NewDate(2024, time.December, 31), false},
		{"leap day", "2024-02-29", NewDate(2024, time.February, 29), false},
		{"empty is zero", "", Date{}, false},
		{"not a leap year", "2023-02-29", Date{}, true},
		{"bad month", "2024-13-01", Date{}, true},
		{"with time", "2024-01-05T00:00:00Z", Date{}, true},
		{"garbage", "tomorrow", Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDate)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDate_IgnoresLocalZoneOffset(t *testing.T) {
	orig := time.Local
	t.Cleanup(func() { time.Local = orig })

	// West of UTC is where a UTC-midnight parse would slip to the previous day.
	time.Local = time.FixedZone("UTC-10", -10*60*60)

	d, err := ParseDate("2024-01-05")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2024, time.January, 5), d)
	assert.Equal(t, "2024-01-05", d.String())
	assert.Equal(t, 5, d.Time(time.Local).Day())
}

func TestDateOf_UsesTimeLocation(t *testing.T) {
	late := time.Date(2024, time.January, 5, 23, 30, 0, 0, time.FixedZone("PST", -8*60*60))
	assert.Equal(t, NewDate(2024, time.January, 5), DateOf(late))
}

func TestDate_AddDays(t *testing.T) {
	assert.Equal(t, NewDate(2024, time.March, 1), NewDate(2024, time.February, 29).AddDays(1))
	assert.Equal(t, NewDate(2025, time.January, 1), NewDate(2024, time.December, 31).AddDays(1))
	assert.Equal(t, NewDate(2024, time.December, 31), NewDate(2025, time.January, 1).AddDays(-1))
}

func TestDate_Compare(t *testing.T) {
	a := NewDate(2024, time.January, 5)
	b := NewDate(2024, time.January, 10)
	c := NewDate(2023, time.December, 31)

	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(NewDate(2024, time.January, 5)))
	assert.Equal(t, -1, c.Compare(a), "year decides first")
}

func TestDate_ZeroValue(t *testing.T) {
	var d Date
	assert.True(t, d.IsZero())
	assert.Equal(t, "", d.String())
	assert.False(t, NewDate(2024, time.January, 1).IsZero())
}

func TestDate_JSON(t *testing.T) {
	type wrapper struct {
		Date Date `json:"date"`
	}

	data, err := json.Marshal(wrapper{Date: NewDate(2024, time.July, 4)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2024-07-04"}`, string(data))

	var w wrapper
	require.NoError(t, json.Unmarshal([]byte(`{"date":"2024-07-04"}`), &w))
	assert.Equal(t, NewDate(2024, time.July, 4), w.Date)

	err = json.Unmarshal([]byte(`{"date":"07/04/2024"}`), &w)
	assert.ErrorIs(t, err, ErrInvalidDate)
}
