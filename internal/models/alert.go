package models

import (
	"fmt"
	"strings"
	"time"
)

type RiskLevel string

const (
	RiskLow      RiskLevel = "Low Risk"
	RiskModerate RiskLevel = "Moderate Risk"
	RiskHigh     RiskLevel = "High Risk"
	RiskCritical RiskLevel = "Critical"
)

func (r RiskLevel) String() string { return string(r) }

// RiskLevelFromScore maps a numeric risk score (0-100) to a level.
// Scores of 40 and below collapse into MODERATE; LOW is never produced
// by this mapping even though the level itself exists.
func RiskLevelFromScore(score float64) RiskLevel {
	switch {
	case score > 70:
		return RiskCritical
	case score > 40:
		return RiskHigh
	default:
		return RiskModerate
	}
}

type AlertStatus string

const (
	AlertPending       AlertStatus = "PENDING"
	AlertSent          AlertStatus = "SENT"
	AlertFailed        AlertStatus = "FAILED"
	AlertOfflineQueued AlertStatus = "OFFLINE_QUEUED"
)

// Alert is a single dispatch record. It lives in memory for the duration
// of the send call, except when queued offline, in which case it stays in
// the offline queue until a caller drains it. Status only moves forward:
// PENDING -> {SENT, FAILED, OFFLINE_QUEUED}.
type Alert struct {
	ID          string
	GlacialLake string
	RiskLevel   RiskLevel
	Timestamp   string
	Message     string
	ContactIDs  []string
	Status      AlertStatus
	CreatedAt   time.Time
	SentAt      *time.Time
	RetryCount  int
	Extra       map[string]string
}

// NewAlertID derives the alert identity from the lake name and send time,
// e.g. "glof_Pangong_Tso_20260830_154501".
func NewAlertID(lakeName string, at time.Time) string {
	return fmt.Sprintf("glof_%s_%s", strings.ReplaceAll(lakeName, " ", "_"), at.Format("20060102_150405"))
}
