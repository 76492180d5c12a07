package pkg

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// orderIDMaxLen is the provider's hard limit on order id length.
const orderIDMaxLen = 50

// BuildOrderID builds the correlation key shared with the provider:
// KAS-<week>-<short student id>-<base36 millisecond timestamp>.
// The student component is the first 8 characters of the uuid with separators
// stripped; the timestamp component keeps rapid retries from colliding. The
// result always fits the provider's 50 character limit.
func BuildOrderID(weekNumber int, studentID string, now time.Time) string {
	short := strings.ReplaceAll(studentID, "-", "")
	if len(short) > 8 {
		short = short[:8]
	}
	ts := strconv.FormatInt(now.UnixMilli(), 36)
	return fmt.Sprintf("KAS-%d-%s-%s", weekNumber, short, ts)
}
