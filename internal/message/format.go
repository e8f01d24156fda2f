// Package message renders the alert and all-clear text templates. All
// functions are pure given an explicit timestamp.
package message

import (
	"fmt"
	"strings"
	"time"

	"github.com/glofwatch/glof-alerts/internal/models"
)

const timestampLayout = "2006-01-02 15:04 IST"

// Timestamp renders t in the fixed local format used in alert messages.
func Timestamp(t time.Time) string {
	return t.Format(timestampLayout)
}

// FormatAlert renders the GLOF alert template. An empty timestamp defaults
// to the current time; extraInfo, when non-empty, is appended as an
// "Additional Info" line.
func FormatAlert(lakeName string, level models.RiskLevel, timestamp, extraInfo string) string {
	if timestamp == "" {
		timestamp = Timestamp(time.Now())
	}

	msg := fmt.Sprintf(`⚠️ *[%s GLOF ALERT]*

*Glacial Lake:* %s
*Risk Level:* %s
*Time:* %s

*Immediate evacuation advised. Emergency team notified.*`,
		strings.ToUpper(level.String()), lakeName, level, timestamp)

	if extraInfo != "" {
		msg += fmt.Sprintf("\n\n*Additional Info:* %s", extraInfo)
	}

	return msg
}

// FormatAllClear renders the all-clear template announcing that a previously
// elevated risk has subsided.
func FormatAllClear(lakeName, timestamp string) string {
	if timestamp == "" {
		timestamp = Timestamp(time.Now())
	}

	return fmt.Sprintf(`✅ *[GLOF ALL CLEAR]*

*Glacial Lake:* %s
*Status:* Risk Level Reduced
*Time:* %s

*Immediate threat has passed. Continue monitoring.*`,
		lakeName, timestamp)
}
