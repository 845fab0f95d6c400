// Package goal contains goal-related use cases.
package goal

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-planner/backend/internal/domain/entity"
)

// approxDaysPerMonth is the fixed month length used when projecting required
// savings. Deliberately not calendar-accurate.
const approxDaysPerMonth = 30

// Progress holds the derived presentation fields of a goal. They are computed
// fresh on every read and never persisted.
type Progress struct {
	ProgressPercentage     float64         `json:"progressPercentage"`
	RemainingAmount        decimal.Decimal `json:"remainingAmount"`
	DaysRemaining          *int            `json:"daysRemaining"`
	RequiredMonthlySavings decimal.Decimal `json:"requiredMonthlySavings"`
}

// CalculateProgress derives all progress fields for a goal at the given moment.
// It is a pure function of the goal's stored fields.
func CalculateProgress(g *entity.Goal, now time.Time) Progress {
	days := DaysRemaining(g, now)
	return Progress{
		ProgressPercentage:     ProgressPercentage(g),
		RemainingAmount:        RemainingAmount(g),
		DaysRemaining:          days,
		RequiredMonthlySavings: RequiredMonthlySavings(g, days),
	}
}

// ProgressPercentage returns currentAmount/targetAmount*100, or 0 when the
// target is zero or negative.
func ProgressPercentage(g *entity.Goal) float64 {
	if g.TargetAmount.LessThanOrEqual(decimal.Zero) {
		return 0
	}
	pct, _ := g.CurrentAmount.Mul(decimal.NewFromInt(100)).Div(g.TargetAmount).Round(2).Float64()
	return pct
}

// RemainingAmount returns the amount still missing to reach the target,
// floored at zero for overshot goals.
func RemainingAmount(g *entity.Goal) decimal.Decimal {
	remaining := g.TargetAmount.Sub(g.CurrentAmount)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

// DaysRemaining returns the number of days until the deadline, rounded up.
// Nil without a deadline; zero or negative once the deadline has passed.
func DaysRemaining(g *entity.Goal, now time.Time) *int {
	if g.Deadline == nil {
		return nil
	}
	days := int(math.Ceil(g.Deadline.Sub(now).Hours() / 24))
	return &days
}

// RequiredMonthlySavings returns the monthly amount needed to close the gap
// before the deadline, using a fixed 30-day month. Zero when there is no
// deadline or it has passed; the raw remaining amount when the month count
// would otherwise be zero.
func RequiredMonthlySavings(g *entity.Goal, daysRemaining *int) decimal.Decimal {
	if daysRemaining == nil || *daysRemaining <= 0 {
		return decimal.Zero
	}

	remaining := RemainingAmount(g)
	// Real-number division: for any daysRemaining >= 1 the month count is
	// nonzero, unlike integer division which would fault below 30 days.
	months := decimal.NewFromInt(int64(*daysRemaining)).Div(decimal.NewFromInt(approxDaysPerMonth))
	if months.IsZero() {
		return remaining
	}
	return remaining.Div(months).Round(2)
}
