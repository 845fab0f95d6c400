package goal

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budget-planner/backend/internal/domain/entity"
)

func testGoal(target, current string, deadline *time.Time) *entity.Goal {
	return &entity.Goal{
		TargetAmount:  decimal.RequireFromString(target),
		CurrentAmount: decimal.RequireFromString(current),
		Deadline:      deadline,
		Status:        entity.GoalStatusActive,
	}
}

func TestProgressPercentage(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		current string
		want    float64
	}{
		{name: "partial progress", target: "1000", current: "250", want: 25},
		{name: "completed exactly", target: "1000", current: "1000", want: 100},
		{name: "overshot goal exceeds one hundred", target: "1000", current: "1200", want: 120},
		{name: "zero target", target: "0", current: "500", want: 0},
		{name: "negative target", target: "-100", current: "500", want: 0},
		{name: "fractional rounds to two places", target: "300", current: "100", want: 33.33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := testGoal(tt.target, tt.current, nil)
			assert.InDelta(t, tt.want, ProgressPercentage(g), 0.001)
		})
	}
}

func TestRemainingAmount(t *testing.T) {
	t.Run("positive gap", func(t *testing.T) {
		g := testGoal("1000", "300", nil)
		assert.True(t, RemainingAmount(g).Equal(decimal.RequireFromString("700")))
	})

	t.Run("overshot goal floors at zero", func(t *testing.T) {
		g := testGoal("1000", "1500", nil)
		assert.True(t, RemainingAmount(g).IsZero())
	})

	t.Run("current plus remaining covers the target", func(t *testing.T) {
		g := testGoal("1000", "642.17", nil)
		covered := g.CurrentAmount.Add(RemainingAmount(g))
		assert.True(t, covered.GreaterThanOrEqual(g.TargetAmount))
	})
}

func TestDaysRemaining(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("nil without a deadline", func(t *testing.T) {
		g := testGoal("1000", "0", nil)
		assert.Nil(t, DaysRemaining(g, now))
	})

	t.Run("rounds partial days up", func(t *testing.T) {
		deadline := now.Add(36 * time.Hour)
		g := testGoal("1000", "0", &deadline)

		days := DaysRemaining(g, now)
		require.NotNil(t, days)
		assert.Equal(t, 2, *days)
	})

	t.Run("past deadline goes negative", func(t *testing.T) {
		deadline := now.AddDate(0, 0, -10)
		g := testGoal("1000", "0", &deadline)

		days := DaysRemaining(g, now)
		require.NotNil(t, days)
		assert.Negative(t, *days)
	})
}

func TestRequiredMonthlySavings(t *testing.T) {
	t.Run("zero without a deadline", func(t *testing.T) {
		g := testGoal("1000", "0", nil)
		assert.True(t, RequiredMonthlySavings(g, nil).IsZero())
	})

	t.Run("zero once the deadline has passed", func(t *testing.T) {
		g := testGoal("1000", "0", nil)
		days := -5
		assert.True(t, RequiredMonthlySavings(g, &days).IsZero())
	})

	t.Run("divides the gap across thirty day months", func(t *testing.T) {
		g := testGoal("1000", "400", nil)
		days := 60
		got := RequiredMonthlySavings(g, &days)
		assert.True(t, got.Equal(decimal.RequireFromString("300")), got.String())
	})

	t.Run("short deadlines use a fractional month", func(t *testing.T) {
		g := testGoal("1000", "700", nil)
		days := 15
		// Half a month left, so the gap doubles.
		got := RequiredMonthlySavings(g, &days)
		assert.True(t, got.Equal(decimal.RequireFromString("600")), got.String())
	})

	t.Run("zero for an already overshot goal", func(t *testing.T) {
		g := testGoal("1000", "1200", nil)
		days := 30
		assert.True(t, RequiredMonthlySavings(g, &days).IsZero())
	})
}

func TestCalculateProgress(t *testing.T) {
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("all fields derive from the same moment", func(t *testing.T) {
		deadline := now.AddDate(0, 0, 30)
		g := testGoal("3000", "1500", &deadline)

		p := CalculateProgress(g, now)

		assert.InDelta(t, 50.0, p.ProgressPercentage, 0.001)
		assert.True(t, p.RemainingAmount.Equal(decimal.RequireFromString("1500")))
		require.NotNil(t, p.DaysRemaining)
		assert.Equal(t, 30, *p.DaysRemaining)
		assert.True(t, p.RequiredMonthlySavings.Equal(decimal.RequireFromString("1500")))
	})

	t.Run("repeated calls at the same moment are identical", func(t *testing.T) {
		deadline := now.AddDate(0, 2, 0)
		g := testGoal("5000", "1234.56", &deadline)

		first := CalculateProgress(g, now)
		second := CalculateProgress(g, now)

		assert.Equal(t, first, second)
	})
}
