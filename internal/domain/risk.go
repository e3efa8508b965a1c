package domain

import (
	"time"

	"github.com/google/uuid"
)

// RiskLevel is the ordinal severity of a negative-mood pattern.
type RiskLevel string

const (
	RiskNone   RiskLevel = "none"
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

func (l RiskLevel) String() string { return string(l) }

func (l RiskLevel) IsValid() bool {
	switch l {
	case RiskNone, RiskLow, RiskMedium, RiskHigh:
		return true
	}
	return false
}

// Rank orders levels: none < low < medium < high.
func (l RiskLevel) Rank() int {
	switch l {
	case RiskLow:
		return 1
	case RiskMedium:
		return 2
	case RiskHigh:
		return 3
	}
	return 0
}

// AtLeast returns the higher of l and min.
func (l RiskLevel) AtLeast(min RiskLevel) RiskLevel {
	if min.Rank() > l.Rank() {
		return min
	}
	return l
}

// Escalate raises the level by one step, saturating at high.
func (l RiskLevel) Escalate() RiskLevel {
	switch l {
	case RiskNone:
		return RiskLow
	case RiskLow:
		return RiskMedium
	}
	return RiskHigh
}

// RiskAnalysis is a derived, non-persisted verdict over a recent window.
type RiskAnalysis struct {
	IsAtRisk                bool
	RiskLevel               RiskLevel
	Reasons                 []string
	RecentNegativeCount     int
	ConsecutiveNegativeDays int
}

// RiskLog records a medium or high verdict for follow-up notification.
type RiskLog struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	RiskLevel     RiskLevel
	TriggerReason string
	DetectedAt    time.Time
	IsNotified    bool
}

// ShouldLog reports whether a verdict is severe enough to be recorded.
func (a RiskAnalysis) ShouldLog() bool {
	return a.RiskLevel == RiskMedium || a.RiskLevel == RiskHigh
}

// RiskNotificationMessage returns the alert text shown for a level.
// RiskNone has no message.
func RiskNotificationMessage(level RiskLevel) string {
	switch level {
	case RiskHigh:
		return "A serious warning sign was found in your recent emotion pattern. We recommend reaching out to a professional."
	case RiskMedium:
		return "Negative emotions have persisted recently. Take a moment to reflect and consider talking to a counselor if needed."
	case RiskLow:
		return "Negative emotions have been recurring lately. Take some time to look after yourself."
	}
	return ""
}
