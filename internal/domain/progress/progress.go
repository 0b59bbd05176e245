// Package progress contains the pure goal-progress calculations: completion
// percentage, pace classification, derived display status, and the
// ledger-based consumption total for limit goals. Functions here are
// side-effect free and deterministic for a given goal and reference date.
package progress

import (
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// PaceStatus classifies actual progress against time-implied expected progress.
type PaceStatus string

const (
	PaceBehind  PaceStatus = "behind"
	PaceOnTrack PaceStatus = "on_track"
	PaceAhead   PaceStatus = "ahead"
)

// DisplayStatus is the badge shown to the user. It is derived, never stored,
// and distinct from the goal's lifecycle status.
type DisplayStatus string

const (
	StatusAchieved  DisplayStatus = "achieved"
	StatusPaused    DisplayStatus = "paused"
	StatusOverdue   DisplayStatus = "overdue"
	StatusAttention DisplayStatus = "attention"
	StatusActive    DisplayStatus = "active"
)

// AlertLevel signals how close a limit goal is to its spending cap. It is
// reported separately from the display status: a limit goal at 100% still
// shows the achieved badge, while the alert carries the breach signal.
type AlertLevel string

const (
	AlertNone     AlertLevel = "none"
	AlertWarning  AlertLevel = "warning"
	AlertExceeded AlertLevel = "exceeded"
)

// paceBand is the fixed tolerance, in percentage points, around expected
// progress within which a goal counts as on track.
const paceBand = 10.0

// warningThreshold is the consumed share at which a limit goal starts
// demanding attention.
const warningThreshold = 80.0

// Percentage returns how much of the target has been reached, clamped to
// [0, 100]. For limit goals the same ratio reads as "how much of the cap is
// consumed"; the interpretation difference is presentational only.
func Percentage(goal *entity.Goal) float64 {
	return clamp(goal.CurrentValue/goal.TargetValue*100, 0, 100)
}

// LimitConsumption sums the absolute amounts of expense transactions whose
// category contains the goal's category (case-insensitive) and whose date
// falls within the calendar month of the reference date. The window is
// re-anchored to the reference date on every call; it deliberately ignores
// the goal's own start/end dates.
func LimitConsumption(goal *entity.Goal, transactions []*entity.Transaction, referenceDate time.Time) float64 {
	category := strings.ToLower(goal.Category)
	total := decimal.Zero

	for _, t := range transactions {
		if t.Type != entity.TransactionTypeExpense {
			continue
		}
		if !strings.Contains(strings.ToLower(t.Category), category) {
			continue
		}
		if t.Date.Month() != referenceDate.Month() || t.Date.Year() != referenceDate.Year() {
			continue
		}
		total = total.Add(t.Amount.Abs())
	}

	return total.InexactFloat64()
}

// DaysRemaining returns the whole days left until the goal's end date.
// Positive means days left, zero means due today, negative means overdue by
// that many days.
func DaysRemaining(goal *entity.Goal, referenceDate time.Time) int {
	diff := goal.EndDate.Sub(referenceDate)
	return int(math.Ceil(diff.Hours() / 24))
}

// ExpectedProgress returns the progress percentage implied by how much of the
// goal window has elapsed at the reference date, clamped to [0, 100]. A
// zero-length window counts as fully elapsed once the end date is reached.
func ExpectedProgress(goal *entity.Goal, referenceDate time.Time) float64 {
	total := goal.EndDate.Sub(goal.StartDate)
	if total <= 0 {
		if referenceDate.Before(goal.EndDate) {
			return 0
		}
		return 100
	}

	elapsed := referenceDate.Sub(goal.StartDate)
	return clamp(float64(elapsed)/float64(total)*100, 0, 100)
}

// Pace classifies the goal as behind, on track, or ahead by comparing actual
// progress to expected progress with a fixed tolerance band.
func Pace(goal *entity.Goal, referenceDate time.Time) PaceStatus {
	actual := Percentage(goal)
	expected := ExpectedProgress(goal, referenceDate)

	switch {
	case actual < expected-paceBand:
		return PaceBehind
	case actual > expected+paceBand:
		return PaceAhead
	default:
		return PaceOnTrack
	}
}

// Status derives the display badge for a goal. Precedence, first match wins:
// achieved at 100%, paused, overdue, attention (limit goals at 80%+), active.
func Status(goal *entity.Goal, referenceDate time.Time) DisplayStatus {
	percentage := Percentage(goal)

	if percentage >= 100 {
		return StatusAchieved
	}
	if goal.Status == entity.GoalStatusPaused {
		return StatusPaused
	}
	if goal.EndDate.Before(referenceDate) {
		return StatusOverdue
	}
	if goal.Kind == entity.GoalKindLimit && percentage >= warningThreshold {
		return StatusAttention
	}
	return StatusActive
}

// LimitAlert reports how close a limit goal is to its cap. Accumulation goals
// never alert.
func LimitAlert(goal *entity.Goal) AlertLevel {
	if goal.Kind != entity.GoalKindLimit {
		return AlertNone
	}

	percentage := Percentage(goal)
	switch {
	case percentage >= 100:
		return AlertExceeded
	case percentage >= warningThreshold:
		return AlertWarning
	default:
		return AlertNone
	}
}

// Overshoot reports whether the raw current value exceeds the target. The
// percentage is clamped for display, so overshoot is flagged separately.
func Overshoot(goal *entity.Goal) bool {
	return goal.CurrentValue > goal.TargetValue
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
