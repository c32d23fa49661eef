package market

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Parallel()

	want := NewDate(2024, time.March, 5)
	tests := []struct {
		name string
		in   string
	}{
		{"iso", "2024-03-05"},
		{"iso short", "2024-3-5"},
		{"slashes ymd", "2024/03/05"},
		{"us", "03/05/2024"},
		{"us short", "3/5/2024"},
		{"dmy abbrev", "05-Mar-2024"},
		{"long", "March 5, 2024"},
		{"compact", "20240305"},
		{"datetime", "2024-03-05 16:00:00"},
		{"rfc3339", "2024-03-05T16:00:00Z"},
		{"padded", "  2024-03-05 "},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseDate(tt.in, nil)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestParseDateErrors(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "yesterday", "2024-13-01", "31/31/2024"} {
		_, err := ParseDate(in, nil)
		assert.Error(t, err, in)
	}
}

func TestParseDateCustomLayouts(t *testing.T) {
	t.Parallel()

	got, err := ParseDate("05.03.2024", []string{"02.01.2006"})
	require.NoError(t, err)
	assert.Equal(t, NewDate(2024, time.March, 5), got)

	_, err = ParseDate("2024-03-05", []string{"02.01.2006"})
	assert.Error(t, err)
}

func TestDateCompare(t *testing.T) {
	t.Parallel()

	a := NewDate(2024, time.January, 31)
	b := a.AddDays(1)

	assert.Equal(t, NewDate(2024, time.February, 1), b)
	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.Equal(t, 0, a.Compare(NewDate(2024, time.January, 31)))
	assert.Equal(t, -1, a.Compare(NewDate(2025, time.January, 1)))
	assert.Equal(t, 1, a.Compare(NewDate(2024, time.January, 30)))
}

func TestDateString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2024-03-05", NewDate(2024, time.March, 5).String())
	assert.Equal(t, "", Date{}.String())
	assert.True(t, Date{}.IsZero())
}
