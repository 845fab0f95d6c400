// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoalCategory tags a savings goal with the purpose it serves.
type GoalCategory string

const (
	GoalCategoryEmergencyFund    GoalCategory = "emergency_fund"
	GoalCategoryVacation         GoalCategory = "vacation"
	GoalCategoryDebtPayoff       GoalCategory = "debt_payoff"
	GoalCategoryHouseDownPayment GoalCategory = "house_down_payment"
	GoalCategoryCarPurchase      GoalCategory = "car_purchase"
	GoalCategoryEducation        GoalCategory = "education"
	GoalCategoryRetirement       GoalCategory = "retirement"
	GoalCategoryInvestment       GoalCategory = "investment"
	GoalCategoryOther            GoalCategory = "other"
)

// GoalPriority represents the priority of a savings goal.
type GoalPriority string

const (
	GoalPriorityLow    GoalPriority = "low"
	GoalPriorityMedium GoalPriority = "medium"
	GoalPriorityHigh   GoalPriority = "high"
)

// GoalStatus represents the lifecycle state of a savings goal.
type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "active"
	GoalStatusPaused    GoalStatus = "paused"
	GoalStatusCompleted GoalStatus = "completed"
	GoalStatusCancelled GoalStatus = "cancelled"
)

// Goal represents a savings target. CurrentAmount only changes through the
// contribution workflow; the transition to completed happens there as well.
type Goal struct {
	ID                  uuid.UUID
	UserID              uuid.UUID
	Name                string
	Description         string
	TargetAmount        decimal.Decimal
	CurrentAmount       decimal.Decimal
	Category            GoalCategory
	Priority            GoalPriority
	Deadline            *time.Time
	Status              GoalStatus
	AutoContribute      bool
	MonthlyContribution decimal.Decimal
	LastContribution    *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// NewGoal creates a new active Goal entity. The monthly contribution is
// forced to zero unless auto-contribute is enabled.
func NewGoal(
	userID uuid.UUID,
	name, description string,
	targetAmount decimal.Decimal,
	category GoalCategory,
	priority GoalPriority,
	deadline *time.Time,
	autoContribute bool,
	monthlyContribution decimal.Decimal,
) *Goal {
	if !autoContribute {
		monthlyContribution = decimal.Zero
	}

	now := time.Now().UTC()
	return &Goal{
		ID:                  uuid.New(),
		UserID:              userID,
		Name:                name,
		Description:         description,
		TargetAmount:        targetAmount,
		CurrentAmount:       decimal.Zero,
		Category:            category,
		Priority:            priority,
		Deadline:            deadline,
		Status:              GoalStatusActive,
		AutoContribute:      autoContribute,
		MonthlyContribution: monthlyContribution,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}

// ContributionType represents how a goal contribution was made.
type ContributionType string

const (
	ContributionTypeManual    ContributionType = "manual"
	ContributionTypeAutomatic ContributionType = "automatic"
	ContributionTypeMilestone ContributionType = "milestone"
)

// GoalContribution is an append-only funding event against a goal.
type GoalContribution struct {
	ID               uuid.UUID
	GoalID           uuid.UUID
	UserID           uuid.UUID
	Amount           decimal.Decimal
	Description      string
	ContributionDate time.Time
	Type             ContributionType
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewGoalContribution creates a new GoalContribution entity dated now.
func NewGoalContribution(
	goalID, userID uuid.UUID,
	amount decimal.Decimal,
	description string,
	contributionType ContributionType,
) *GoalContribution {
	now := time.Now().UTC()
	return &GoalContribution{
		ID:               uuid.New(),
		GoalID:           goalID,
		UserID:           userID,
		Amount:           amount,
		Description:      description,
		ContributionDate: now,
		Type:             contributionType,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// GoalWithContributions represents a goal with its most recent contributions.
type GoalWithContributions struct {
	Goal          *Goal
	Contributions []*GoalContribution
}
