package history

import (
	"regexp"
	"strconv"
	"time"
)

// Report filenames embed their creation time as YYYYMMDD_HHMMSS
// (e.g. output_20240101_120000.pdf, written by the device firmware).
var timestampPattern = regexp.MustCompile(`(\d{8})_(\d{6})`)

// ExtractTimestamp parses the embedded timestamp out of a file name. The
// digits are taken as local time, no timezone conversion. A name without a
// match returns now; absence is a handled case, never an error.
func ExtractTimestamp(name string, now time.Time) time.Time {
	m := timestampPattern.FindStringSubmatch(name)
	if m == nil {
		return now
	}
	date, hms := m[1], m[2]
	year, _ := strconv.Atoi(date[0:4])
	month, _ := strconv.Atoi(date[4:6])
	day, _ := strconv.Atoi(date[6:8])
	hour, _ := strconv.Atoi(hms[0:2])
	min, _ := strconv.Atoi(hms[2:4])
	sec, _ := strconv.Atoi(hms[4:6])
	return time.Date(year, time.Month(month), day, hour, min, sec, 0, time.Local)
}
