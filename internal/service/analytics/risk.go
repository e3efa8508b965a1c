package analytics

import (
	"fmt"

	"github.com/heartmarshall/moodbook-backend/internal/domain"
)

const (
	// DefaultRiskWindow is the number of most recent entries analysed.
	DefaultRiskWindow = 14

	streakThreshold   = 7
	highRiskThreshold = 5
	smallSampleSize   = 3
)

// ratio thresholds, highest first.
var ratioLevels = []struct {
	min   float64
	level domain.RiskLevel
}{
	{0.8, domain.RiskHigh},
	{0.6, domain.RiskMedium},
	{0.4, domain.RiskLow},
}

// AnalyzeRisk evaluates the first windowSize entries of recent, which must be
// ordered most recent first. A non-positive windowSize means DefaultRiskWindow.
//
// Signals, applied in order, each appending a reason when it fires:
//   - negative ratio sets the base level;
//   - with three or fewer entries any negative entry means at least low;
//   - a leading negative streak of seven or more escalates one step;
//   - five or more sad, angry or anxious entries escalate one step.
func AnalyzeRisk(recent []domain.DiaryEntry, windowSize int) domain.RiskAnalysis {
	if windowSize <= 0 {
		windowSize = DefaultRiskWindow
	}
	window := recent[:min(windowSize, len(recent))]

	res := domain.RiskAnalysis{
		RiskLevel: domain.RiskNone,
		Reasons:   []string{},
	}
	if len(window) == 0 {
		return res
	}

	highRisk := 0
	streakOpen := true
	for _, e := range window {
		neg := e.EmotionCategory.IsNegative()
		if neg {
			res.RecentNegativeCount++
		}
		if e.EmotionCategory.IsHighRisk() {
			highRisk++
		}
		if streakOpen && neg {
			res.ConsecutiveNegativeDays++
		} else {
			streakOpen = false
		}
	}

	n := len(window)
	ratio := float64(res.RecentNegativeCount) / float64(n)
	for _, rl := range ratioLevels {
		if ratio >= rl.min {
			res.RiskLevel = rl.level
			res.Reasons = append(res.Reasons, fmt.Sprintf(
				"%d of the last %d entries were negative (%.0f%%)", res.RecentNegativeCount, n, ratio*100))
			break
		}
	}

	if n <= smallSampleSize && res.RecentNegativeCount > 0 && res.RiskLevel == domain.RiskNone {
		res.RiskLevel = domain.RiskLow
		res.Reasons = append(res.Reasons, fmt.Sprintf(
			"negative emotion in %d of only %d recent entries", res.RecentNegativeCount, n))
	}

	if res.ConsecutiveNegativeDays >= streakThreshold {
		res.RiskLevel = res.RiskLevel.Escalate()
		res.Reasons = append(res.Reasons, fmt.Sprintf(
			"negative emotions recorded for %d entries in a row", res.ConsecutiveNegativeDays))
	}

	if highRisk >= highRiskThreshold {
		res.RiskLevel = res.RiskLevel.Escalate()
		res.Reasons = append(res.Reasons, fmt.Sprintf(
			"high-risk emotions (sad, angry, anxious) recorded %d times", highRisk))
	}

	res.IsAtRisk = res.RiskLevel != domain.RiskNone
	return res
}
