package store

import "time"

// Core Data timestamps count seconds since 2001-01-01 00:00:00 UTC.
// Unix timestamps count from 1970-01-01, so the fixed offset between the
// two epochs is 978307200 seconds.
const coreDataEpochOffset = 978307200

// Sanity bounds for converted timestamps. Values outside these are
// sentinel or corrupt data, not real dates.
const (
	maxCoreTime      = 2147483647  // max 32-bit timestamp
	maxUnixTimestamp = 4102444800  // year 2100
)

// coreTimeToTime converts a Core Data timestamp to a wall-clock time.
// Zero, negative, and out-of-range values are treated as absent and
// return nil rather than producing an invalid date.
func coreTimeToTime(coreTime float64) *time.Time {
	if coreTime <= 0 || coreTime > maxCoreTime {
		return nil
	}

	unix := coreTime + coreDataEpochOffset
	if unix < 0 || unix > maxUnixTimestamp {
		return nil
	}

	sec := int64(unix)
	nsec := int64((unix - float64(sec)) * float64(time.Second))
	t := time.Unix(sec, nsec).UTC()
	return &t
}
