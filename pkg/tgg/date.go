package tgg

import "time"

// DateLayout renders dates as "January, 02, 2006"
const DateLayout = "January, 02, 2006"

// FormatTimestamp renders unix seconds as a UTC calendar date
func FormatTimestamp(ts uint32) string {
	return time.Unix(int64(ts), 0).UTC().Format(DateLayout)
}
