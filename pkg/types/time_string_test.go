package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMinutes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "midnight", input: "00:00", want: 0},
		{name: "morning", input: "09:30", want: 570},
		{name: "with seconds and zone", input: "10:15:00+00", want: 615},
		{name: "empty", input: "", want: 0},
		{name: "no colon", input: "0930", want: 0},
		{name: "letters", input: "ab:cd", want: 0},
		{name: "missing minutes", input: "09:", want: 0},
		{name: "seconds dropped", input: "09:30:00", want: 570},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseMinutes(tt.input))
		})
	}
}

func TestFromMinutes(t *testing.T) {
	assert.Equal(t, TimeString("08:00"), FromMinutes(480))
	assert.Equal(t, TimeString("23:05"), FromMinutes(23*60+5))
	assert.Equal(t, TimeString("24:00"), FromMinutes(24*60))
	assert.Equal(t, TimeString("00:00"), FromMinutes(-10))
}

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("14:45:00+03")
	require.NoError(t, err)
	assert.Equal(t, TimeString("14:45"), ts)

	_, err = NewTimeStringFromString("25:00")
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromString("9:00")
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_AddMinutes(t *testing.T) {
	end, err := TimeString("22:00").AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("23:00"), end)

	end, err = TimeString("23:00").AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("24:00"), end)

	_, err = TimeString("23:30").AddMinutes(60)
	assert.ErrorIs(t, err, ErrTimeOverflow)
}

func TestTimeString_Compare(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("10:01").IsAfter("10:00"))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("08:30:00-03"))
	assert.Equal(t, TimeString("08:30"), ts)

	require.NoError(t, ts.Scan([]byte("17:00:00+00")))
	assert.Equal(t, TimeString("17:00"), ts)

	require.NoError(t, ts.Scan(time.Date(0, 1, 1, 6, 5, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("06:05"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = TimeString("12:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "12:00", v)
}
