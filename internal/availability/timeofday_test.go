package availability

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in   string
		want TimeOfDay
	}{
		{"9:00 AM", 540},
		{"09:00 AM", 540},
		{"12:00 AM", 0},
		{"12:30 AM", 30},
		{"12:00 PM", 720},
		{"1:05 PM", 785},
		{"11:59 PM", 1439},
		{" 4:30 pm ", 990},
		{"4:30PM", 990},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTimeOfDay_Malformed(t *testing.T) {
	for _, in := range []string{"", "9:00", "13:00 PM", "0:30 AM", "9:60 AM", "9:5 AM", "nine AM", "9:00 XM", "+9:00 AM", "9h00 AM"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseTimeOfDay(in)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedTime)
		})
	}
}

func TestTimeOfDay_String(t *testing.T) {
	assert.Equal(t, "12:00 AM", TimeOfDay(0).String())
	assert.Equal(t, "9:00 AM", TimeOfDay(540).String())
	assert.Equal(t, "12:00 PM", TimeOfDay(720).String())
	assert.Equal(t, "3:10 PM", TimeOfDay(910).String())
	assert.Equal(t, "11:59 PM", TimeOfDay(1439).String())
	assert.Equal(t, "12:00 AM", TimeOfDay(MinutesPerDay).String())
}

func TestTimeOfDay_RoundTrip(t *testing.T) {
	for m := TimeOfDay(0); m < MinutesPerDay; m++ {
		got, err := ParseTimeOfDay(m.String())
		require.NoError(t, err)
		require.Equal(t, m, got)
	}
}

func TestTimeOfDay_JSON(t *testing.T) {
	b, err := json.Marshal(Slot{Start: 540, End: 630})
	require.NoError(t, err)
	assert.JSONEq(t, `{"start":"9:00 AM","end":"10:30 AM"}`, string(b))

	var s Slot
	require.NoError(t, json.Unmarshal([]byte(`{"start":"1:00 PM","end":"2:30 PM"}`), &s))
	assert.Equal(t, Slot{Start: 780, End: 870}, s)

	assert.Error(t, json.Unmarshal([]byte(`{"start":"25:00","end":"2:30 PM"}`), &s))
}

func TestTimeOfDay_RoundUp(t *testing.T) {
	assert.Equal(t, TimeOfDay(910), TimeOfDay(907).RoundUp(10))
	assert.Equal(t, TimeOfDay(910), TimeOfDay(910).RoundUp(10))
	assert.Equal(t, TimeOfDay(690), TimeOfDay(681).RoundUp(10))
	assert.Equal(t, TimeOfDay(0), TimeOfDay(0).RoundUp(10))
}
