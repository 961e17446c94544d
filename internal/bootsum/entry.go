package bootsum

import (
	"encoding/json"
	"fmt"
)

const (
	// Seconds below this value are never enumerated, and candidates
	// sharing a key and (month, day) prefer the second closest to it.
	MinSecond = 15
	MaxSecond = 59
	MaxMinute = 59
)

// Entry is one (month, day, minute, second) candidate stored under a
// boot time sum.
//
// Month is 1-12, Day is 1 through DaysInMonth(Month), Minute is 0-59
// and Second is 15-59.
type Entry struct {
	_ struct{} `cbor:",toarray"`

	Month  uint8
	Day    uint8
	Minute uint8
	Second uint8
}

// NewEntry returns an Entry for the given fields.
func NewEntry(month, day, minute, second uint8) Entry {
	return Entry{Month: month, Day: day, Minute: minute, Second: second}
}

// DaysInMonth returns the number of days in month, with February fixed
// at 28. It returns 0 for months outside 1-12.
func DaysInMonth(month uint8) uint8 {
	if month < 1 || month > 12 {
		return 0
	}
	if month == 2 {
		return 28
	}
	// bit m set means month m has 31 days
	const bits = 0b1010110101010
	return 30 + uint8((int(bits)>>month)&1)
}

// Sum returns the boot time sum month*day + minute + second.
func (e Entry) Sum() uint16 {
	return uint16(e.Month)*uint16(e.Day) + uint16(e.Minute) + uint16(e.Second)
}

// Valid reports whether every field is inside its calendar range.
func (e Entry) Valid() bool {
	return e.Day >= 1 && e.Day <= DaysInMonth(e.Month) &&
		e.Minute <= MaxMinute &&
		e.Second >= MinSecond && e.Second <= MaxSecond
}

// sameDate reports whether both entries fall on the same (month, day).
func (e Entry) sameDate(other Entry) bool {
	return e.Month == other.Month && e.Day == other.Day
}

// secondDistance is the absolute distance of the second from MinSecond.
func (e Entry) secondDistance() int {
	d := int(e.Second) - MinSecond
	if d < 0 {
		return -d
	}
	return d
}

func (e Entry) String() string {
	return fmt.Sprintf("%02d-%02d %02d:%02d", e.Month, e.Day, e.Minute, e.Second)
}

// MarshalJSON encodes the entry as [month, day, minute, second].
func (e Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal([4]int{int(e.Month), int(e.Day), int(e.Minute), int(e.Second)})
}

// UnmarshalJSON decodes a 4-element array written by MarshalJSON.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var fields []int
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("failed to decode entry: %w", err)
	}
	if len(fields) != 4 {
		return fmt.Errorf("failed to decode entry: expected 4 fields, got %d", len(fields))
	}
	for _, f := range fields {
		if f < 0 || f > 255 {
			return fmt.Errorf("failed to decode entry: field %d out of range", f)
		}
	}

	*e = NewEntry(uint8(fields[0]), uint8(fields[1]), uint8(fields[2]), uint8(fields[3]))
	return nil
}
