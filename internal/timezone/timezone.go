package timezone

import "time"

// The clinic operates in a single locale; appointment dates are
// interpreted in its timezone.
const DefaultTimezone = "Asia/Phnom_Penh"

func Location() *time.Location {
	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location())
}
