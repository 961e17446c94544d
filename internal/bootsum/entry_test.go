package bootsum

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysInMonth(t *testing.T) {
	t.Parallel()

	want := map[uint8]uint8{
		1: 31, 2: 28, 3: 31, 4: 30, 5: 31, 6: 30,
		7: 31, 8: 31, 9: 30, 10: 31, 11: 30, 12: 31,
	}
	for month, days := range want {
		assert.Equal(t, days, DaysInMonth(month), "month %d", month)
	}

	assert.Zero(t, DaysInMonth(0), "month 0 is not a month")
	assert.Zero(t, DaysInMonth(13), "month 13 is not a month")
}

func TestEntry_Sum(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		entry Entry
		want  uint16
	}{
		{name: "smallest", entry: NewEntry(1, 1, 0, 15), want: 16},
		{name: "largest", entry: NewEntry(12, 31, 59, 59), want: 490},
		{name: "mid year", entry: NewEntry(6, 15, 30, 45), want: 165},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.entry.Sum())
		})
	}
}

func TestEntry_Valid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		entry Entry
		want  bool
	}{
		{name: "first of year", entry: NewEntry(1, 1, 0, 15), want: true},
		{name: "last of year", entry: NewEntry(12, 31, 59, 59), want: true},
		{name: "february 28", entry: NewEntry(2, 28, 0, 15), want: true},
		{name: "february 29", entry: NewEntry(2, 29, 0, 15), want: false},
		{name: "april 31", entry: NewEntry(4, 31, 0, 15), want: false},
		{name: "day zero", entry: NewEntry(3, 0, 0, 15), want: false},
		{name: "month 13", entry: NewEntry(13, 1, 0, 15), want: false},
		{name: "minute 60", entry: NewEntry(1, 1, 60, 15), want: false},
		{name: "second below window", entry: NewEntry(1, 1, 0, 14), want: false},
		{name: "second 60", entry: NewEntry(1, 1, 0, 60), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.entry.Valid())
		})
	}
}

func TestEntry_JSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(NewEntry(2, 15, 55, 15))
	require.NoError(t, err)
	assert.JSONEq(t, `[2, 15, 55, 15]`, string(data))

	var e Entry
	require.NoError(t, json.Unmarshal([]byte(`[12,31,59,59]`), &e))
	assert.Equal(t, NewEntry(12, 31, 59, 59), e)
}

func TestEntry_UnmarshalJSON_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{name: "too few fields", input: `[1, 2, 3]`},
		{name: "too many fields", input: `[1, 2, 3, 4, 5]`},
		{name: "object", input: `{"month": 1}`},
		{name: "string", input: `"01-01"`},
		{name: "negative field", input: `[1, -2, 3, 15]`},
		{name: "field above byte", input: `[1, 2, 300, 15]`},
		{name: "null", input: `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var e Entry
			assert.Error(t, e.UnmarshalJSON([]byte(tt.input)))
		})
	}
}
