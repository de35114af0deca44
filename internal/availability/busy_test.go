package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLegacyDuration(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"90 mins", 90, true},
		{"90", 90, true},
		{"1 hour", 60, true},
		{"2 hrs", 120, true},
		{"2hrs", 120, true},
		{"1 hour 30 mins", 90, true},
		{"1h30m", 90, true},
		{"1.5 hours", 90, true},
		{"45 Minutes", 45, true},
		{"", 0, false},
		{"about an hour", 0, false},
		{"0 mins", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseLegacyDuration(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReservationDuration(t *testing.T) {
	catalog := Catalog{Durations: map[string]int{"Retouching": 150}}

	t.Run("catalog wins over stored duration", func(t *testing.T) {
		d, err := ReservationDuration(Reservation{Service: "Retouching", Duration: "30 mins"}, catalog)
		require.NoError(t, err)
		assert.Equal(t, 150, d)
	})

	t.Run("stored duration for removed service", func(t *testing.T) {
		d, err := ReservationDuration(Reservation{Service: "Braids", Duration: "2 hours"}, catalog)
		require.NoError(t, err)
		assert.Equal(t, 120, d)
	})

	t.Run("default when nothing is readable", func(t *testing.T) {
		d, err := ReservationDuration(Reservation{Service: "Braids", Duration: "n/a"}, catalog)
		require.NoError(t, err)
		assert.Equal(t, DefaultDuration, d)
	})
}

func TestBuildBusyRanges(t *testing.T) {
	catalog := Catalog{Durations: map[string]int{"Retouching": 150, "Trim": 30}}

	ranges, err := BuildBusyRanges([]Reservation{
		{Date: "2026-03-02", Start: "9:00 AM", Service: "Retouching"},
		{Date: "2026-03-02", Start: "5:30 PM", Service: "Trim"},
		{Date: "2026-03-03", Start: "1:00 PM", Service: "Gone", Duration: "45 mins"},
	}, catalog)
	require.NoError(t, err)

	assert.Equal(t, []BusyRange{
		{Date: "2026-03-02", Start: 540, End: 690},
		{Date: "2026-03-02", Start: 1050, End: 1080},
		{Date: "2026-03-03", Start: 780, End: 825},
	}, ranges)
}

func TestBuildBusyRanges_MalformedStart(t *testing.T) {
	_, err := BuildBusyRanges([]Reservation{
		{Date: "2026-03-02", Start: "9 o'clock", Service: "Trim"},
	}, Catalog{Durations: map[string]int{"Trim": 30}})
	assert.ErrorIs(t, err, ErrMalformedTime)
}

func TestBusyRange_Overlaps(t *testing.T) {
	b := BusyRange{Start: 600, End: 660}

	assert.True(t, b.Overlaps(630, 700))
	assert.True(t, b.Overlaps(540, 601))
	assert.True(t, b.Overlaps(610, 620))
	assert.False(t, b.Overlaps(660, 720), "touching at the end is not an overlap")
	assert.False(t, b.Overlaps(540, 600), "touching at the start is not an overlap")
}
